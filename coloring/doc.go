// Package coloring implements the LP-relaxation heuristic for k-coloring
// (k = 3 or 4) an undirected conflict graph.
//
// A vertex's color is encoded as two LP bit-variables; for three colors a
// cover constraint keeps the encoding within {00,10,01}, while four colors
// use the full 2-bit range. Solve drives a small loop: optimize the
// relaxation, stop once every bit is integral, otherwise nudge the
// objective (each fractional vertex's bit pair and every edge's endpoint
// bits) and add odd-cycle cuts, and try again until no cut is added or,
// by default, twice the vertex count rounds have run. Whatever is still
// fractional at that point is rounded by binding-constraint analysis.
// Unless some vertex is precolored, each edge whose endpoints still share
// a color is then recolored locally to a pair of distinct colors that
// neither endpoint's other neighbors use; this repair alone is enough to
// guarantee a proper coloring whenever k exceeds the conflict graph's
// maximum degree.
package coloring
