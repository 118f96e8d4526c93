// Package solvers is the root of two independent solver cores used in
// physical-design layout optimization: LP-based coloring for conflict-graph
// decomposition (double/triple/quadruple patterning) and a dual min-cost-flow
// solver for systems of difference constraints (legalization, compaction,
// scheduling LPs).
//
// Subpackages:
//
//	core/     — thread-safe Graph/Vertex/Edge primitives shared by both cores
//	dijkstra/ — shortest paths on weighted core.Graph; reused by mcf's
//	            successive-shortest-path engine once arc costs are non-negative
//	lp/       — a small dense Big-M simplex LP engine satisfying the contract the
//	            coloring core needs (addVar/addConstr/optimize/getValue/getSlack)
//	coloring/ — the LP-coloring core: model builder, iterative refiner,
//	            odd-cycle detector, binding-analysis rounder, greedy applier
//	mcf/      — the dual-MCF core: linear model intake, flow-graph builder,
//	            negative-cost arc rewriter, pluggable min-cost-flow engines
//
// Both cores are pure computations over an immutable input model; they own
// their intermediate state exclusively and write results back exactly once,
// on success. Neither core performs file I/O, wire serialization, or CLI
// wrapping — those are the caller's responsibility.
package solvers
