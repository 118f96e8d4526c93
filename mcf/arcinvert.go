package mcf

// InvertNegativeCostArcs rewrites every negative-cost arc (u, v, cost c <
// 0, capacity U) into an equivalent non-negative-cost arc (v, u, cost -c,
// capacity U), adjusting the endpoints' supplies by -U (tail) and +U
// (head) so flow conservation keeps describing the same feasible region:
// sending flow f along the original arc costs c*f; substituting the
// residual amount f' = U-f along the reversed arc costs -c*f' plus the
// constant c*U, and the conservation equations balance exactly when the
// endpoints' supplies absorb that U of redirected flow.
//
// It must run, and only needs to run, before Solve on a Graph that may
// contain negative-cost arcs; Solve itself requires every arc's cost be
// non-negative. Every arc this package's difference-constraint reduction
// builds has a finite Capacity (Uncapacitated is a large finite sentinel,
// never a true infinity), so the U in this bookkeeping is always
// well-defined.
func (g *Graph) InvertNegativeCostArcs() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, a := range g.arcs {
		if a.Cost >= 0 {
			continue
		}
		u, v, cap := a.From, a.To, a.Capacity
		a.From, a.To = v, u
		a.Cost = -a.Cost
		g.nodes[u].Supply -= cap
		g.nodes[v].Supply += cap
	}
}
