// Package mcf solves systems of difference constraints
//
//	x_i - x_j >= b_ij,  d_i <= x_i <= u_i
//
// by dualizing them into a min-cost-flow problem and reading the optimal
// solution's node potentials back as the x_i.
//
// Graph is a purpose-built directed flow network: nodes carry integer
// supply/demand, arcs carry integer cost and capacity, mirroring
// core.Graph's constructor-then-mutate, mutex-guarded idiom but modeling
// the (capacity, cost, flow) triple a single core.Graph Edge.Weight cannot.
//
// Engine is a tagged parameter bag standing in for four named min-cost-flow
// algorithms (capacity scaling, cost scaling, network simplex, cycle
// canceling); every kind is currently serviced by the same
// successive-shortest-augmenting-path implementation in ssp.go, which
// reuses core.Graph and dijkstra.Dijkstra against a residual network
// rebuilt each phase.
//
// LinearModel is the difference-constraint intake: it builds the dual
// flow network (reduction.go), rewrites any negative-cost arc so every
// engine can run on it (arcinvert.go), solves, and decodes the result.
package mcf
