package lp

import (
	"gonum.org/v1/gonum/mat"
)

// epsilon is the numerical tolerance used throughout the simplex for
// feasibility, optimality, and ratio-test comparisons.
const epsilon = 1e-6

// bigM is the penalty cost attached to artificial variables. It must
// dominate every real objective coefficient these models can produce.
const bigM = 1e7

// row is one standardized (RHS >= 0) constraint row built from a Model
// constraint or an explicit upper-bound row (z_i <= ub_i - lb_i), expressed
// over z-space where z_i = x_i - lb_i >= 0.
type row struct {
	coeffs map[int]float64 // structural column index -> coefficient
	sense  Sense
	rhs    float64
}

// extra records which standard-form columns (slack/surplus/artificial) a
// row was assigned; -1 means the column is absent for that row.
type extra struct {
	slackCol, surplusCol, artCol int
}

// Optimize solves the model with a dense Big-M primal simplex and records
// the resulting Status plus, when Optimal, every variable's value and
// every constraint's slack. It always re-solves from scratch; the models
// this package targets are small enough that warm-starting would not pay
// for its own complexity.
func (m *Model) Optimize() (Status, error) {
	m.status = NotSolved
	m.value = nil
	m.slack = nil

	n := m.NumVars()
	if n == 0 {
		m.status = Optimal
		m.value = []float64{}
		m.slack = make([]float64, m.NumConstrs())

		return m.status, nil
	}

	rows := m.buildRows()

	status, z, err := m.simplex(n, rows)
	if err != nil {
		return NotSolved, err
	}
	m.status = status
	if status != Optimal {
		return m.status, nil
	}

	// Undo the z_i = x_i - lb_i substitution (unbounded-below columns were
	// shifted at lb=0 internally, so no correction is needed there).
	m.value = make([]float64, n)
	for i := 0; i < n; i++ {
		lb := m.varLB[i]
		if !finite(lb) {
			lb = 0
		}
		m.value[i] = z[i] + lb
	}

	m.slack = make([]float64, m.NumConstrs())
	for ci, r := range m.constrExpr {
		lhs := 0.0
		for vi, coeff := range r {
			lhs += coeff * m.value[vi]
		}
		switch m.constrSense[ci] {
		case LE:
			m.slack[ci] = m.constrRHS[ci] - lhs
		case GE:
			m.slack[ci] = lhs - m.constrRHS[ci]
		default:
			m.slack[ci] = 0
		}
	}

	return m.status, nil
}

// buildRows lowers the model's constraints plus explicit finite-upper-bound
// rows into standardized rows over z-space.
func (m *Model) buildRows() []row {
	n := m.NumVars()
	rows := make([]row, 0, m.NumConstrs()+n)

	for ci, expr := range m.constrExpr {
		adj := m.constrRHS[ci]
		coeffs := make(map[int]float64, len(expr))
		for vi, c := range expr {
			coeffs[vi] = c
			if lb := m.varLB[vi]; finite(lb) && lb != 0 {
				adj -= c * lb
			}
		}
		rows = append(rows, row{coeffs: coeffs, sense: m.constrSense[ci], rhs: adj})
	}

	for vi := 0; vi < n; vi++ {
		lb, ub := m.varLB[vi], m.varUB[vi]
		if !finite(ub) {
			continue
		}
		span := ub
		if finite(lb) {
			span = ub - lb
		}
		rows = append(rows, row{coeffs: map[int]float64{vi: 1}, sense: LE, rhs: span})
	}

	return rows
}

// simplex runs a Big-M primal simplex over nStruct non-negative structural
// columns (cost taken from m.varObj) and the given standardized rows,
// returning the structural solution vector on Optimal.
func (m *Model) simplex(nStruct int, rows []row) (Status, []float64, error) {
	nRows := len(rows)
	if nRows == 0 {
		// Every structural variable with a finite upper bound produced a
		// bound row in buildRows, so an empty row set means every variable
		// is unbounded above; a negative objective coefficient on any such
		// variable makes the model unbounded, and otherwise the objective is
		// minimized at z=0.
		z := make([]float64, nStruct)
		for _, c := range m.varObj {
			if c < -epsilon {
				return Unbounded, nil, nil
			}
		}

		return Optimal, z, nil
	}

	// Normalize RHS >= 0 by flipping row sign (and sense) where needed.
	norm := make([]row, nRows)
	for i, r := range rows {
		if r.rhs < 0 {
			flipped := make(map[int]float64, len(r.coeffs))
			for k, v := range r.coeffs {
				flipped[k] = -v
			}
			sense := r.sense
			switch sense {
			case LE:
				sense = GE
			case GE:
				sense = LE
			}
			norm[i] = row{coeffs: flipped, sense: sense, rhs: -r.rhs}
		} else {
			norm[i] = r
		}
	}

	nExtra := 0
	extras := make([]extra, nRows)
	for i, r := range norm {
		extras[i] = extra{-1, -1, -1}
		switch r.sense {
		case LE:
			extras[i].slackCol = nStruct + nExtra
			nExtra++
		case GE:
			extras[i].surplusCol = nStruct + nExtra
			nExtra++
			extras[i].artCol = nStruct + nExtra
			nExtra++
		case EQ:
			extras[i].artCol = nStruct + nExtra
			nExtra++
		}
	}

	nCols := nStruct + nExtra
	tab := mat.NewDense(nRows+1, nCols+1, nil)
	basis := make([]int, nRows)

	for i, r := range norm {
		for k, v := range r.coeffs {
			tab.Set(i, k, v)
		}
		e := extras[i]
		switch r.sense {
		case LE:
			tab.Set(i, e.slackCol, 1)
			basis[i] = e.slackCol
		case GE:
			tab.Set(i, e.surplusCol, -1)
			tab.Set(i, e.artCol, 1)
			basis[i] = e.artCol
		case EQ:
			tab.Set(i, e.artCol, 1)
			basis[i] = e.artCol
		}
		tab.Set(i, nCols, r.rhs)
	}

	cost := make([]float64, nCols)
	for i := 0; i < nStruct; i++ {
		cost[i] = m.varObj[i]
	}
	for _, e := range extras {
		if e.artCol >= 0 {
			cost[e.artCol] = bigM
		}
	}

	// Seed the objective row: reduced_cost[j] = cost[j] - sum_i cost[basis[i]]*tab[i][j].
	for j := 0; j <= nCols; j++ {
		var sum float64
		for i := 0; i < nRows; i++ {
			sum += cost[basis[i]] * tab.At(i, j)
		}
		if j < nCols {
			tab.Set(nRows, j, cost[j]-sum)
		} else {
			tab.Set(nRows, j, -sum) // running objective value, negated
		}
	}

	maxIter := 200*(nRows+nCols) + 1000
	converged := false
	for iter := 0; iter < maxIter; iter++ {
		enter := -1
		best := -epsilon
		for j := 0; j < nCols; j++ {
			if v := tab.At(nRows, j); v < best {
				best = v
				enter = j
			}
		}
		if enter == -1 {
			converged = true

			break // optimal: no column improves the objective further
		}

		leave := -1
		bestRatio := 0.0
		for i := 0; i < nRows; i++ {
			a := tab.At(i, enter)
			if a <= epsilon {
				continue
			}
			ratio := tab.At(i, nCols) / a
			if leave == -1 || ratio < bestRatio-epsilon {
				leave = i
				bestRatio = ratio
			}
		}
		if leave == -1 {
			return Unbounded, nil, nil
		}

		pivot(tab, leave, enter, nRows, nCols)
		basis[leave] = enter
	}

	if !converged {
		return NotSolved, nil, ErrIterationLimit
	}

	for i := 0; i < nRows; i++ {
		if extras[i].artCol >= 0 && basis[i] == extras[i].artCol && tab.At(i, nCols) > epsilon {
			return Infeasible, nil, nil
		}
	}

	z := make([]float64, nStruct)
	for i := 0; i < nRows; i++ {
		if basis[i] < nStruct {
			z[basis[i]] = tab.At(i, nCols)
		}
	}

	return Optimal, z, nil
}

// pivot performs Gauss-Jordan elimination on column `enter`, using row
// `leave` as pivot, across every row of the (nRows+1)x(nCols+1) tableau
// (the last row is the objective row).
func pivot(tab *mat.Dense, leave, enter, nRows, nCols int) {
	pv := tab.At(leave, enter)
	for j := 0; j <= nCols; j++ {
		tab.Set(leave, j, tab.At(leave, j)/pv)
	}
	for i := 0; i <= nRows; i++ {
		if i == leave {
			continue
		}
		factor := tab.At(i, enter)
		if factor == 0 {
			continue
		}
		for j := 0; j <= nCols; j++ {
			tab.Set(i, j, tab.At(i, j)-factor*tab.At(leave, j))
		}
	}
}
