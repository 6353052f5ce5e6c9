// Package eulertour is your in-memory playground for building graphs and
// walking every edge of them exactly once, from core primitives to lazy
// Hierholzer tours and gonum interop.
//
// 🚀 What is eulertour?
//
//	A modern, thread-safe library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Connectivity: reachability checks & component extraction
//		• Euler tours: lazy, resumable walks over directed & undirected graphs
//		• Eulerian tests: degree balance + connectivity in one call
//		• Builders: deterministic cycles, paths, stars, complete graphs, roses
//		• Converters: adopt graphs assembled with gonum.org/v1/gonum
//
// ✨ Why choose eulertour?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, deterministic edge order, in-code docs
//   - Pull-based laziness – draw one arc at a time, or drain the whole trail
//   - Extensible – functional options on graphs, tours and builders alike
//
// Under the hood, everything is organized under five subpackages:
//
//	builder/      — deterministic graph generators with pluggable IDs & weights
//	connectivity/ — BFS-based reachability over directed & undirected graphs
//	core/         — fundamental Graph & Edge types, thread-safe primitives
//	euler/        — directed & undirected tours, trails and the Eulerian test
//	gonumgraph/   — one-way converters from gonum simple & multi graphs
//
// Quick ASCII example:
//
//	    1───2       3───4
//	     \   \     /   /
//	      `───0───´───´
//
//	represents a figure eight: two triangles sharing vertex 0. Every vertex
//	has even degree, so a single closed walk covers all six edges.
//
// Dive into the package docs and examples for full tours, builder recipes
// and the gonum bridge.
//
//	go get github.com/katalvlaran/eulertour
package eulertour
