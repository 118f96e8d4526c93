package coloring

import (
	"math"

	"github.com/dpatterning/solvers/lp"
)

// candidateEncodings returns every valid (b1,b2) integer encoding for k
// colors, in lexicographic order.
func candidateEncodings(k int) [][2]float64 {
	if k == K4 {
		return [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	}

	return [][2]float64{{0, 0}, {0, 1}, {1, 0}}
}

// roundBinding rounds every vertex's bit pair to an integral candidate.
// Vertices already integral within eps are kept as-is. Fractional
// vertices are rounded to the candidate that satisfies the most of that
// vertex's currently-binding constraints (slack within eps of zero);
// ties are broken toward the lexicographically smallest candidate, since
// candidateEncodings is already lex-ordered and a strict ">" comparison
// keeps the first-seen winner.
func roundBinding(mdl *model, eps float64) map[string][2]float64 {
	rounded := make(map[string][2]float64, len(mdl.bits))
	candidates := candidateEncodings(mdl.k)

	for vid, bv := range mdl.bits {
		b1, err1 := mdl.lp.Value(bv[0])
		b2, err2 := mdl.lp.Value(bv[1])
		if err1 != nil || err2 != nil {
			rounded[vid] = candidates[0]

			continue
		}

		if isInteger(b1, eps) && isInteger(b2, eps) {
			rounded[vid] = [2]float64{round01f(b1), round01f(b2)}

			continue
		}

		binding := bindingConstraints(mdl.lp, bv, eps)
		best := candidates[0]
		bestScore := -1
		for _, cand := range candidates {
			score := satisfiedCount(mdl.lp, binding, bv, cand, eps)
			if score > bestScore {
				bestScore = score
				best = cand
			}
		}
		rounded[vid] = best
	}

	return rounded
}

// bindingConstraints returns the constraints touching either of bv's two
// variables whose slack is within eps of zero in the current solution.
func bindingConstraints(mdl *lp.Model, bv [2]lp.Var, eps float64) []lp.Constr {
	var out []lp.Constr
	seen := make(map[lp.Constr]bool)
	for _, v := range bv {
		for _, c := range mdl.Column(v) {
			if seen[c] {
				continue
			}
			seen[c] = true
			slack, err := mdl.Slack(c)
			if err == nil && math.Abs(slack) <= eps {
				out = append(out, c)
			}
		}
	}

	return out
}

// satisfiedCount counts how many of the given binding constraints remain
// satisfied if bv were fixed to cand, holding every other variable at its
// current solution value. Since each constraint is binding, its current
// left-hand side equals its RHS, so only the change contributed by bv's
// two variables has to be added. Constraints that also reference vertices
// outside bv (edge cover constraints, odd-cycle cuts) are evaluated the same
// way; the greedy refiner later enforces the real coloring constraint
// (adjacent vertices differ) structurally rather than through the LP.
func satisfiedCount(mdl *lp.Model, binding []lp.Constr, bv [2]lp.Var, cand [2]float64, eps float64) int {
	v1, _ := mdl.Value(bv[0])
	v2, _ := mdl.Value(bv[1])
	score := 0
	for _, c := range binding {
		c1, _ := mdl.Coeff(c, bv[0])
		c2, _ := mdl.Coeff(c, bv[1])
		rhs, _ := mdl.RHS(c)
		sense, _ := mdl.ConstrSense(c)

		lhs := rhs + c1*(cand[0]-v1) + c2*(cand[1]-v2)
		ok := true
		switch sense {
		case lp.LE:
			ok = lhs <= rhs+eps
		case lp.GE:
			ok = lhs >= rhs-eps
		case lp.EQ:
			ok = math.Abs(lhs-rhs) <= eps
		}
		if ok {
			score++
		}
	}

	return score
}
