package coloring

import (
	"fmt"

	"github.com/dpatterning/solvers/core"
	"github.com/dpatterning/solvers/lp"
)

// Solve computes a k-coloring of g's conflict graph.
//
// It builds the relaxed LP (buildModel), fixes a symmetry-breaking anchor
// vertex when no vertex is precolored (anchorVertex), then iterates:
// optimize, stop if every bit is already integral, otherwise perturb the
// objective (perturbObjective) and add cuts for up to four odd cycles
// found by findOddCycles (later rounds may find the same cycles again),
// stopping when no cut is added and otherwise bounded by
// Options.MaxIterations (default 2*|V|). Whatever remains
// fractional is rounded by binding-constraint analysis (roundBinding) and
// the result is repaired into a proper coloring (applyAndRefine).
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.K != K3 && options.K != K4 {
		return nil, ErrInvalidK
	}
	if g == nil || g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if err := validatePrecoloring(g, options); err != nil {
		return nil, err
	}

	maxIter := options.MaxIterations
	if maxIter <= 0 {
		maxIter = 2 * g.VertexCount()
	}

	mdl, err := buildModel(g, options.K, options.Precolored)
	if err != nil {
		return nil, err
	}
	if len(options.Precolored) == 0 {
		anchorVertex(g, mdl)
	}

	oddAdded := 0
	iter := 0
	for ; iter < maxIter; iter++ {
		status, err := mdl.lp.Optimize()
		if err != nil {
			return nil, err
		}
		if status == lp.Infeasible {
			return nil, ErrInfeasibleRelaxation
		}
		if status == lp.Unbounded {
			return nil, fmt.Errorf("coloring: relaxation unbounded at iteration %d", iter)
		}

		census := nonIntegerCensus(mdl, epsilon)
		logProgress(options, iter, census)
		if census == 0 {
			break
		}

		perturbObjective(g, mdl, epsilon)

		cycles, err := findOddCycles(g, 4)
		if err != nil {
			return nil, err
		}
		added := false
		for _, cyc := range cycles {
			if addOddCycleCut(mdl, cyc) {
				added = true
				oddAdded++
			}
		}
		if !added {
			break
		}
	}

	// The last iteration may have mutated the model (perturbation/cuts)
	// without re-solving; force one final solve so rounding reads a fresh
	// optimum.
	finalStatus, err := mdl.lp.Optimize()
	if err != nil {
		return nil, err
	}
	if finalStatus == lp.Infeasible {
		return nil, ErrInfeasibleRelaxation
	}

	stopCensus := nonIntegerCensus(mdl, epsilon)
	rounded := roundBinding(mdl, epsilon)
	colors, err := applyAndRefine(g, options.K, rounded, options.Precolored)
	if err != nil {
		return nil, err
	}

	return &Result{
		Colors:           colors,
		Iterations:       iter,
		OddCyclesAdded:   oddAdded,
		NonIntegerAtStop: stopCensus,
	}, nil
}

// validatePrecoloring rejects precolor assignments outside [0,K) and any
// two adjacent vertices precolored the same.
func validatePrecoloring(g *core.Graph, options *Options) error {
	for vid, c := range options.Precolored {
		if !g.HasVertex(vid) {
			return ErrUnknownPrecolorVertex
		}
		if c < 0 || c >= options.K {
			return ErrPrecolorOutOfRange
		}
	}
	for vid, c := range options.Precolored {
		neighborIDs, err := g.NeighborIDs(vid)
		if err != nil {
			return err
		}
		for _, nb := range neighborIDs {
			if nc, ok := options.Precolored[nb]; ok && nc == c {
				return ErrPrecolorConflict
			}
		}
	}

	return nil
}

// nonIntegerCensus counts vertex bit-variables whose LP value is not within
// epsilon of an integer.
func nonIntegerCensus(mdl *model, eps float64) int {
	count := 0
	for _, bv := range mdl.bits {
		for _, v := range bv {
			if val, err := mdl.lp.Value(v); err == nil && !isInteger(val, eps) {
				count++
			}
		}
	}

	return count
}

// perturbObjective applies the iterative refiner's two small objective
// terms. They only select among optimal solutions of the current
// relaxation — they never tighten or loosen its feasible set — so neither
// term can turn a feasible relaxation infeasible.
//
// Pair-direction term: for every vertex whose bit pair is not yet fully
// integral, add v2-v1 to the objective if v1>v2, else v1-v2 — rewarding
// whichever bit is currently larger and penalizing the other, nudging the
// pair toward a definite 0/1 split.
//
// Edge-direction term: for every conflict edge (s,t) and each bit index
// i in {0,1}, add t_i-s_i if s_i>t_i, else s_i-t_i — discouraging the two
// endpoints from settling on equal bit values.
func perturbObjective(g *core.Graph, mdl *model, eps float64) {
	for _, bv := range mdl.bits {
		v1, err1 := mdl.lp.Value(bv[0])
		v2, err2 := mdl.lp.Value(bv[1])
		if err1 != nil || err2 != nil {
			continue
		}
		if isInteger(v1, eps) && isInteger(v2, eps) {
			continue
		}
		pushApart(mdl.lp, bv[0], bv[1], v1, v2)
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		sb, ok1 := mdl.bits[e.From]
		tb, ok2 := mdl.bits[e.To]
		if !ok1 || !ok2 {
			continue
		}
		for i := 0; i < 2; i++ {
			si, errS := mdl.lp.Value(sb[i])
			ti, errT := mdl.lp.Value(tb[i])
			if errS != nil || errT != nil {
				continue
			}
			pushApart(mdl.lp, sb[i], tb[i], si, ti)
		}
	}
}

// pushApart adds +1/-1 objective coefficients to a and b so the next
// optimize prefers to grow whichever of aVal, bVal is currently larger and
// shrink the other (b is the one grown when the values are equal).
func pushApart(mdl *lp.Model, a, b lp.Var, aVal, bVal float64) {
	if aVal > bVal {
		_ = mdl.AddObjTerm(b, 1)
		_ = mdl.AddObjTerm(a, -1)
	} else {
		_ = mdl.AddObjTerm(a, 1)
		_ = mdl.AddObjTerm(b, -1)
	}
}

func logProgress(options *Options, iter, census int) {
	if !options.Verbose {
		return
	}
	fmt.Fprintf(options.Out, "coloring: iteration %d non-integer=%d\n", iter, census)
}
