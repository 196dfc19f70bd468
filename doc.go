// Package search provides a generic, strategy-driven state-space search engine.
//
// The engine knows nothing about grids. A caller supplies a Graph (successor
// function plus goal predicate) and, for the informed strategies, a cost
// function per call:
//
//   - Engine: bind a graph, SetState, then Search with a Strategy.
//   - Replay: turn the recorded discovery trace and the path into frames for UIs.
//   - RunAll: run several strategies side by side, one engine per worker.
//
// Breadth-first, depth-first, uniform-cost, greedy best-first and A* share a
// single search loop; the only difference between them is the frontier pop
// policy.
package search
