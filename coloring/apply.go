package coloring

import "github.com/dpatterning/solvers/core"

// applyAndRefine decodes every vertex's rounded bit pair into a color, then,
// unless any vertex was precolored, repairs residual conflicts: for every
// conflict edge whose endpoints decoded to the same color, it tries every
// ordered pair of distinct colors (c1,c2) in ascending order and assigns the
// first pair that leaves both endpoints free of any color already held by a
// neighbor other than the other endpoint.
func applyAndRefine(g *core.Graph, k int, rounded map[string][2]float64, precolored map[string]int) (map[string]int, error) {
	final := make(map[string]int, len(rounded))
	for vid, bits := range rounded {
		final[vid] = decodeColor(k, bits[0], bits[1])
	}
	for vid, c := range precolored {
		final[vid] = c
	}

	if len(precolored) > 0 {
		return final, nil
	}

	for _, e := range g.Edges() {
		if e.From == e.To || final[e.From] != final[e.To] {
			continue
		}
		if err := repairEdge(g, final, k, e.From, e.To); err != nil {
			return nil, err
		}
	}

	return final, nil
}

// repairEdge tries every ordered pair of distinct colors (c1,c2) for (s,t),
// in ascending order, and assigns the first pair under which neither
// endpoint collides with any neighbor other than the other endpoint of this
// edge. If no such pair exists, s and t are left as they were.
func repairEdge(g *core.Graph, final map[string]int, k int, s, t string) error {
	forbiddenS, err := otherNeighborColors(g, final, s, t)
	if err != nil {
		return err
	}
	forbiddenT, err := otherNeighborColors(g, final, t, s)
	if err != nil {
		return err
	}

	for c1 := 0; c1 < k; c1++ {
		if forbiddenS[c1] {
			continue
		}
		for c2 := 0; c2 < k; c2++ {
			if c1 == c2 || forbiddenT[c2] {
				continue
			}
			final[s], final[t] = c1, c2

			return nil
		}
	}

	return nil
}

// otherNeighborColors reports which colors appear, in final, on any of v's
// neighbors other than exclude.
func otherNeighborColors(g *core.Graph, final map[string]int, v, exclude string) (map[int]bool, error) {
	neighborIDs, err := g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}

	forbidden := make(map[int]bool, len(neighborIDs))
	for _, nb := range neighborIDs {
		if nb == exclude {
			continue
		}
		if c, ok := final[nb]; ok {
			forbidden[c] = true
		}
	}

	return forbidden, nil
}
