package lp

import "math"

// Model is a mutable linear-programming problem: a set of bounded
// variables, a set of linear constraints over them, and a linear objective
// to minimize. It is the engine the coloring package drives through the
// addVar/addConstr/setObjective/optimize/getValue/getSlack/getCoeff
// contract.
//
// A Model is not safe for concurrent use; building it, calling Optimize
// (any number of times) and reading results must all happen from a single
// goroutine.
type Model struct {
	varLB  []float64
	varUB  []float64
	varObj []float64
	varRow []string // name, for diagnostics only

	constrExpr  []map[int]float64 // var idx -> coefficient
	constrSense []Sense
	constrRHS   []float64
	constrName  []string

	// column[v] lists the indices of constraints touching variable v, in the
	// order they were added. Used by Column(v) for binding-analysis rounding.
	column [][]int

	status Status
	value  []float64 // solved variable values, valid iff status == Optimal
	slack  []float64 // solved constraint slacks, valid iff status == Optimal
}

// NewModel returns an empty Model ready for AddVar/AddConstr calls.
func NewModel() *Model {
	return &Model{status: NotSolved}
}

// AddVar registers a new bounded, continuous decision variable with the
// given objective coefficient and returns a handle to it. ub may be +Inf
// for no upper bound. A lb of -Inf does not make the variable free:
// Optimize then solves with the variable bounded below by 0.
func (m *Model) AddVar(lb, ub, objCoeff float64, name string) Var {
	m.varLB = append(m.varLB, lb)
	m.varUB = append(m.varUB, ub)
	m.varObj = append(m.varObj, objCoeff)
	m.varRow = append(m.varRow, name)
	m.column = append(m.column, nil)
	m.status = NotSolved

	return Var{idx: len(m.varLB) - 1}
}

// AddObjTerm adds coeff to v's existing objective coefficient. Mirrors the
// accumulate-then-set objective pattern of building an objective term by
// term before a single Optimize call.
func (m *Model) AddObjTerm(v Var, coeff float64) error {
	if !m.validVar(v) {
		return ErrUnknownVar
	}
	m.varObj[v.idx] += coeff
	m.status = NotSolved

	return nil
}

// ResetObjective zeroes every variable's objective coefficient.
func (m *Model) ResetObjective() {
	for i := range m.varObj {
		m.varObj[i] = 0
	}
	m.status = NotSolved
}

// AddConstr registers sum(expr[v]*v) sense rhs as a new constraint and
// returns a handle to it.
func (m *Model) AddConstr(expr map[Var]float64, sense Sense, rhs float64, name string) (Constr, error) {
	row := make(map[int]float64, len(expr))
	for v, coeff := range expr {
		if !m.validVar(v) {
			return Constr{}, ErrUnknownVar
		}
		row[v.idx] += coeff
	}

	ci := len(m.constrExpr)
	m.constrExpr = append(m.constrExpr, row)
	m.constrSense = append(m.constrSense, sense)
	m.constrRHS = append(m.constrRHS, rhs)
	m.constrName = append(m.constrName, name)
	for vi := range row {
		m.column[vi] = append(m.column[vi], ci)
	}
	m.status = NotSolved

	return Constr{idx: ci}, nil
}

// Update is a no-op retained for parity with LP-solver APIs that batch
// model edits and require an explicit flush before Optimize; this Model
// has no pending state to flush.
func (m *Model) Update() error { return nil }

// SetLB changes v's lower bound. Invalidates any prior solve.
func (m *Model) SetLB(v Var, lb float64) error {
	if !m.validVar(v) {
		return ErrUnknownVar
	}
	if lb > m.varUB[v.idx] {
		return ErrBadBounds
	}
	m.varLB[v.idx] = lb
	m.status = NotSolved

	return nil
}

// SetUB changes v's upper bound. Invalidates any prior solve.
func (m *Model) SetUB(v Var, ub float64) error {
	if !m.validVar(v) {
		return ErrUnknownVar
	}
	if ub < m.varLB[v.idx] {
		return ErrBadBounds
	}
	m.varUB[v.idx] = ub
	m.status = NotSolved

	return nil
}

// LB returns v's current lower bound.
func (m *Model) LB(v Var) (float64, error) {
	if !m.validVar(v) {
		return 0, ErrUnknownVar
	}

	return m.varLB[v.idx], nil
}

// UB returns v's current upper bound.
func (m *Model) UB(v Var) (float64, error) {
	if !m.validVar(v) {
		return 0, ErrUnknownVar
	}

	return m.varUB[v.idx], nil
}

// Status returns the outcome of the most recent Optimize call.
func (m *Model) Status() Status { return m.status }

// Value returns v's value in the current solution.
func (m *Model) Value(v Var) (float64, error) {
	if !m.validVar(v) {
		return 0, ErrUnknownVar
	}
	if m.status != Optimal {
		return 0, ErrNotOptimized
	}

	return m.value[v.idx], nil
}

// Slack returns rhs - lhs for a <= constraint (or its sign-flipped
// equivalent for >=; always 0 for =) in the current solution.
func (m *Model) Slack(c Constr) (float64, error) {
	if !m.validConstr(c) {
		return 0, ErrUnknownConstr
	}
	if m.status != Optimal {
		return 0, ErrNotOptimized
	}

	return m.slack[c.idx], nil
}

// ConstrSense returns c's relational operator.
func (m *Model) ConstrSense(c Constr) (Sense, error) {
	if !m.validConstr(c) {
		return 0, ErrUnknownConstr
	}

	return m.constrSense[c.idx], nil
}

// RHS returns constraint c's right-hand-side constant.
func (m *Model) RHS(c Constr) (float64, error) {
	if !m.validConstr(c) {
		return 0, ErrUnknownConstr
	}

	return m.constrRHS[c.idx], nil
}

// Coeff returns the coefficient of v within constraint c (0 if v does not
// appear in c).
func (m *Model) Coeff(c Constr, v Var) (float64, error) {
	if !m.validConstr(c) {
		return 0, ErrUnknownConstr
	}
	if !m.validVar(v) {
		return 0, ErrUnknownVar
	}

	return m.constrExpr[c.idx][v.idx], nil
}

// Column returns every constraint that references v, in the order they
// were added. The binding-analysis rounder uses this to enumerate the
// constraints a candidate rounding would affect.
func (m *Model) Column(v Var) []Constr {
	if !m.validVar(v) {
		return nil
	}
	cols := make([]Constr, len(m.column[v.idx]))
	for i, ci := range m.column[v.idx] {
		cols[i] = Constr{idx: ci}
	}

	return cols
}

// NumVars returns the number of registered variables.
func (m *Model) NumVars() int { return len(m.varLB) }

// NumConstrs returns the number of registered constraints.
func (m *Model) NumConstrs() int { return len(m.constrExpr) }

func (m *Model) validVar(v Var) bool  { return v.idx >= 0 && v.idx < len(m.varLB) }
func (m *Model) validConstr(c Constr) bool {
	return c.idx >= 0 && c.idx < len(m.constrExpr)
}

// finite reports whether f is neither +-Inf.
func finite(f float64) bool { return !math.IsInf(f, 0) }
