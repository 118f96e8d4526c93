package mcf

import "fmt"

// referenceNode is the dual reduction's implicit anchor variable y_0,
// fixed at zero; every decoded variable value is relative to it.
const referenceNode = "\x00ref"

// DiffConstraint is one inequality x_i - x_j >= B of a difference
// constraint system.
type DiffConstraint struct {
	Xi, Xj string
	B      int64
}

// LinearModel is a system of difference constraints over named variables
// plus a non-negative per-variable objective coefficient. Solve finds the
// componentwise-minimal feasible assignment — the assignment every other
// feasible assignment dominates coordinate-wise — and reports its
// objective value, which a non-negative weighting makes the true minimum.
type LinearModel struct {
	vars          []string
	seen          map[string]bool
	objCoeff      map[string]int64
	hasLowerBound map[string]bool
	constraints   []DiffConstraint
}

// NewLinearModel returns an empty difference-constraint system.
func NewLinearModel() *LinearModel {
	return &LinearModel{
		seen:          make(map[string]bool),
		objCoeff:      make(map[string]int64),
		hasLowerBound: make(map[string]bool),
	}
}

// SetObjCoeff sets variable v's non-negative objective weight.
func (m *LinearModel) SetObjCoeff(v string, coeff int64) error {
	if coeff < 0 {
		return ErrNegativeObjCoeff
	}
	m.addVar(v)
	m.objCoeff[v] = coeff

	return nil
}

// AddConstraint registers the difference constraint xi - xj >= b.
func (m *LinearModel) AddConstraint(xi, xj string, b int64) {
	m.addVar(xi)
	m.addVar(xj)
	m.constraints = append(m.constraints, DiffConstraint{Xi: xi, Xj: xj, B: b})
}

// SetBounds registers d_i <= v <= u_i as difference constraints against
// the implicit reference variable. Pass NoBound for hi to leave v
// unbounded above.
func (m *LinearModel) SetBounds(v string, lo, hi int64) error {
	if hi < lo {
		return ErrBadBounds
	}
	m.addVar(v)
	m.constraints = append(m.constraints, DiffConstraint{Xi: v, Xj: referenceNode, B: lo})
	m.hasLowerBound[v] = true
	if hi < NoBound {
		m.constraints = append(m.constraints, DiffConstraint{Xi: referenceNode, Xj: v, B: -hi})
	}

	return nil
}

func (m *LinearModel) addVar(v string) {
	if !m.seen[v] {
		m.seen[v] = true
		m.vars = append(m.vars, v)
	}
}

// effectiveConstraints is m.constraints plus an implicit v - y_0 >= 0 for
// every variable SetBounds never gave an explicit lower bound, so every
// declared variable is reachable from the reference node.
func (m *LinearModel) effectiveConstraints() []DiffConstraint {
	out := make([]DiffConstraint, len(m.constraints))
	copy(out, m.constraints)
	for _, v := range m.vars {
		if !m.hasLowerBound[v] {
			out = append(out, DiffConstraint{Xi: v, Xj: referenceNode, B: 0})
		}
	}

	return out
}

// DiffResult is the outcome of solving a LinearModel.
type DiffResult struct {
	Status    Status
	Values    map[string]int64
	Objective int64
}

// Solve reduces m to a min-cost-flow network (the transportation dual of
// the longest-path-from-reference computation that the componentwise-
// minimal feasible point reduces to), inverts any negative-cost arcs,
// runs engine, and decodes the flow's node potentials back into variable
// values. A positive cycle in the constraint graph — detected directly,
// since it makes the longest-path computation ill-posed before any flow
// network is even built — reports StatusInfeasible.
func (m *LinearModel) Solve(engine Engine) (*DiffResult, error) {
	constraints := m.effectiveConstraints()
	if hasPositiveCycle(m.vars, constraints) {
		return &DiffResult{Status: StatusInfeasible}, nil
	}

	g, err := m.buildGraph(constraints)
	if err != nil {
		return nil, err
	}
	g.InvertNegativeCostArcs()

	result, err := g.Solve(engine)
	if err != nil {
		return nil, err
	}
	if result.Status != StatusOptimal {
		return &DiffResult{Status: result.Status}, nil
	}

	refPotential := result.Potentials[referenceNode]
	values := make(map[string]int64, len(m.vars))
	var objective int64
	for _, v := range m.vars {
		x := refPotential - result.Potentials[v]
		values[v] = x
		objective += m.objCoeff[v] * x
	}

	return &DiffResult{Status: StatusOptimal, Values: values, Objective: objective}, nil
}

// buildGraph constructs the transportation-problem dual of the
// longest-path-from-reference computation: the reference node supplies
// one unit for every variable, each variable demands exactly one unit,
// and each constraint xi - xj >= b becomes an arc (xj -> xi) of cost -b —
// a negative cost rewards routing flow along tighter constraints, which
// is exactly what maximizing path weight (minimizing path cost) means.
func (m *LinearModel) buildGraph(constraints []DiffConstraint) (*Graph, error) {
	g := NewGraph()
	if err := g.AddNode(referenceNode, int64(len(m.vars))); err != nil {
		return nil, err
	}
	for _, v := range m.vars {
		if err := g.AddNode(v, -1); err != nil {
			return nil, err
		}
	}
	for i, c := range constraints {
		if _, err := g.AddArc(c.Xj, c.Xi, -c.B, Uncapacitated); err != nil {
			return nil, fmt.Errorf("mcf: constraint %d (%s - %s >= %d): %w", i, c.Xi, c.Xj, c.B, err)
		}
	}

	return g, nil
}

// hasPositiveCycle runs Bellman-Ford-style relaxation for the longest path
// from the (implicitly zero) reference node over constraints, including
// the reference node itself as a relaxation target: an upper-bound
// constraint that would push the reference node's value above its fixed
// zero is exactly a positive cycle closing back through it. Relaxation
// that still finds an improvement after |vars|+1 rounds means a positive
// cycle is reachable, making the system infeasible.
func hasPositiveCycle(vars []string, constraints []DiffConstraint) bool {
	dist := make(map[string]int64, len(vars)+1)
	dist[referenceNode] = 0
	for _, v := range vars {
		dist[v] = 0
	}

	relax := func() bool {
		changed := false
		for _, c := range constraints {
			if dist[c.Xj]+c.B > dist[c.Xi] {
				dist[c.Xi] = dist[c.Xj] + c.B
				changed = true
			}
		}

		return changed
	}

	rounds := len(vars) + 1
	for i := 0; i < rounds; i++ {
		if !relax() {
			return false
		}
	}

	return relax()
}
