package coloring

import (
	"fmt"

	"github.com/dpatterning/solvers/core"
	"github.com/dpatterning/solvers/lp"
)

// model bundles the LP relaxation with the bookkeeping needed to decode it
// back into vertex colors.
type model struct {
	lp *lp.Model

	// bits maps each vertex ID to its (b1, b2) encoding variables.
	bits map[string][2]lp.Var

	k        int
	cutCount int
}

// buildModel constructs the relaxed LP for a k-coloring of g: two bounded
// bit-variables per vertex (plus, for three colors, a cover constraint
// limiting their sum to 1), the four per-edge cover constraints that forbid
// identical 2-bit codes on each conflict edge's endpoints, and fixed bounds
// for any precolored vertex.
func buildModel(g *core.Graph, k int, precolored map[string]int) (*model, error) {
	m := &model{
		lp:   lp.NewModel(),
		bits: make(map[string][2]lp.Var),
		k:    k,
	}

	for _, vid := range g.Vertices() {
		b1 := m.lp.AddVar(0, 1, 0, vid+"#b1")
		b2 := m.lp.AddVar(0, 1, 0, vid+"#b2")
		m.bits[vid] = [2]lp.Var{b1, b2}

		if k == K3 {
			if _, err := m.lp.AddConstr(map[lp.Var]float64{b1: 1, b2: 1}, lp.LE, 1, vid+"#cover"); err != nil {
				return nil, err
			}
		}

		if color, ok := precolored[vid]; ok {
			v1, v2 := encodeColor(k, color)
			fixVar(m.lp, b1, v1)
			fixVar(m.lp, b2, v2)
		}
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		sb, ok1 := m.bits[e.From]
		tb, ok2 := m.bits[e.To]
		if !ok1 || !ok2 {
			continue
		}
		if err := addEdgeCoverConstraints(m.lp, e.ID, sb, tb); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// forbiddenCodes is the four identical 2-bit codes a proper coloring must
// never let an edge's two endpoints share.
var forbiddenCodes = [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// addEdgeCoverConstraints adds the four cover constraints forbidding edge
// (s,t) from sharing an identical 2-bit code: for each forbidden code
// (c1,c2), at least one of the four comparator terms — s1, s2, t1, t2
// matched against c1, c2, c1, c2 — must fail. Substituting +1 for "bit
// compared against 0" and -1 for "bit compared against 1" turns each of
// the four inequalities into one linear row: coeff(b) = 1-2*c,
// rhs = 1-2*(c1+c2).
func addEdgeCoverConstraints(mdl *lp.Model, edgeID string, s, t [2]lp.Var) error {
	for idx, code := range forbiddenCodes {
		c1, c2 := code[0], code[1]
		coeff1 := float64(1 - 2*c1)
		coeff2 := float64(1 - 2*c2)
		rhs := float64(1 - 2*(c1+c2))

		expr := map[lp.Var]float64{
			s[0]: coeff1,
			s[1]: coeff2,
			t[0]: coeff1,
			t[1]: coeff2,
		}
		name := fmt.Sprintf("%s#cover%d", edgeID, idx)
		if _, err := mdl.AddConstr(expr, lp.GE, rhs, name); err != nil {
			return err
		}
	}

	return nil
}

// fixVar pins v to val by collapsing its bounds to a single point.
func fixVar(mdl *lp.Model, v lp.Var, val float64) {
	_ = mdl.SetUB(v, val)
	_ = mdl.SetLB(v, val)
}

// encodeColor maps a color index in [0,k) to its 2-bit (b1,b2) encoding.
func encodeColor(k, color int) (float64, float64) {
	switch color {
	case 0:
		return 0, 0
	case 1:
		return 1, 0
	case 2:
		return 0, 1
	default:
		return 1, 1 // only reachable for k == K4, color == 3
	}
}

// decodeColor is encodeColor's inverse over already-integral bits. For
// k == K3 the "11" pattern has no assigned color; it is clamped to 2, the
// same slot "01" decodes to, since the K3 encoding never legitimately
// produces "11" once the cover constraint holds.
func decodeColor(k int, b1, b2 float64) int {
	r1, r2 := round01(b1), round01(b2)
	switch {
	case r1 == 0 && r2 == 0:
		return 0
	case r1 == 1 && r2 == 0:
		return 1
	case r1 == 0 && r2 == 1:
		return 2
	default:
		if k == K4 {
			return 3
		}

		return 2
	}
}
