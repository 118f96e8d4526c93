package coloring

import "github.com/dpatterning/solvers/core"

// anchorVertex fixes the conflict graph's highest-degree vertex to color 0,
// breaking the relaxation's color-permutation symmetry (any valid coloring
// can be relabeled so this vertex is color 0, so fixing it loses no
// solutions while halving the search the refine loop has to do). Callers
// must only invoke this when no vertex is precolored — precoloring already
// breaks the symmetry, and anchoring on top of it can fix a second vertex
// to a color a cover constraint then forbids it from sharing, turning a
// feasible instance infeasible.
func anchorVertex(g *core.Graph, mdl *model) {
	var best string
	bestDegree := -1
	for _, vid := range g.Vertices() {
		in, out, undirected, err := g.Degree(vid)
		if err != nil {
			continue
		}
		if d := in + out + undirected; d > bestDegree {
			bestDegree = d
			best = vid
		}
	}
	if best == "" {
		return
	}

	bv := mdl.bits[best]
	fixVar(mdl.lp, bv[0], 0)
	fixVar(mdl.lp, bv[1], 0)
}
