package mcf

import (
	"math"

	"github.com/dpatterning/solvers/core"
	"github.com/dpatterning/solvers/dijkstra"
)

// Result is the outcome of a Solve call.
type Result struct {
	Status     Status
	Flows      map[string]int64 // arc ID -> flow
	Potentials map[string]int64 // node ID -> dual potential
}

// Solve runs engine over g. Every kind currently dispatches to the same
// successive-shortest-augmenting-path implementation (see EngineKind).
// g's total supply must sum to zero and every arc's cost must already be
// non-negative; call InvertNegativeCostArcs first if it might not be.
func (g *Graph) Solve(engine Engine) (*Result, error) {
	_ = engine // kind/parameters accepted for API shape; see EngineKind.

	if g.TotalSupply() != 0 {
		return nil, ErrUnbalancedSupply
	}
	for _, a := range g.Arcs() {
		if a.Cost < 0 {
			return nil, ErrNegativeCost
		}
	}

	flows, potentials, status, err := solveSSP(g)
	if err != nil {
		return nil, err
	}
	if status == StatusOptimal {
		g.mu.Lock()
		for _, a := range g.arcs {
			a.Flow = flows[a.ID]
		}
		g.mu.Unlock()
	}

	return &Result{Status: status, Flows: flows, Potentials: potentials}, nil
}

// solveSSP implements successive shortest augmenting paths: each phase
// picks a node with unrouted supply, finds the cheapest path (by reduced
// cost, via a residual core.Graph and dijkstra.Dijkstra) to the nearest
// node with unmet demand, and pushes as much flow as that path's residual
// capacity, the source's remaining supply and the target's remaining
// demand all allow. Each phase's shortest-path distances are
// added into the running node potentials (Johnson's reweighting), which
// keeps every later phase's reduced costs non-negative so Dijkstra stays
// valid throughout.
func solveSSP(g *Graph) (map[string]int64, map[string]int64, Status, error) {
	nodeIDs := g.Nodes()
	arcs := g.Arcs()

	excess := make(map[string]int64, len(nodeIDs))
	potential := make(map[string]int64, len(nodeIDs))
	flow := make(map[string]int64, len(arcs))
	for _, id := range nodeIDs {
		excess[id] = g.nodes[id].Supply
		potential[id] = 0
	}
	for _, a := range arcs {
		flow[a.ID] = 0
	}

	var totalSupply int64
	for _, id := range nodeIDs {
		if excess[id] > 0 {
			totalSupply += excess[id]
		}
	}
	maxPhases := len(nodeIDs) + 16
	if totalSupply < math.MaxInt64-int64(maxPhases) {
		maxPhases += int(totalSupply)
	}

	for phase := 0; ; phase++ {
		if phase > maxPhases {
			return nil, nil, StatusInfeasible, ErrIterationLimit
		}

		s := findPositiveExcess(nodeIDs, excess)
		if s == "" {
			break
		}

		residual := buildResidualGraph(nodeIDs, arcs, flow, potential)
		dist, prev, err := dijkstra.Dijkstra(residual, dijkstra.Source(s), dijkstra.WithReturnPath())
		if err != nil {
			return nil, nil, StatusInfeasible, err
		}

		t, ok := nearestDeficit(nodeIDs, excess, dist)
		if !ok {
			return nil, nil, StatusInfeasible, nil
		}

		for _, id := range nodeIDs {
			if d, reached := dist[id]; reached && d < math.MaxInt64 {
				potential[id] += d
			}
		}

		path := walkPath(prev, s, t)
		delta := pathBottleneck(arcs, flow, path)
		if need := excess[s]; need < delta {
			delta = need
		}
		if need := -excess[t]; need < delta {
			delta = need
		}
		if delta <= 0 {
			return nil, nil, StatusInfeasible, nil
		}

		applyFlow(arcs, flow, path, delta)
		excess[s] -= delta
		excess[t] += delta
	}

	return flow, potential, StatusOptimal, nil
}

func findPositiveExcess(ids []string, excess map[string]int64) string {
	for _, id := range ids {
		if excess[id] > 0 {
			return id
		}
	}

	return ""
}

// nearestDeficit returns the reachable node with negative excess closest
// (by current reduced-cost distance) to the search source, or ok=false if
// no deficit node is reachable at all.
func nearestDeficit(ids []string, excess, dist map[string]int64) (string, bool) {
	best := ""
	var bestDist int64
	for _, id := range ids {
		if excess[id] >= 0 {
			continue
		}
		d, reached := dist[id]
		if !reached || d >= math.MaxInt64 {
			continue
		}
		if best == "" || d < bestDist {
			best, bestDist = id, d
		}
	}

	return best, best != ""
}

// buildResidualGraph produces a directed, weighted core.Graph of the
// current residual network: a forward edge for every arc with spare
// capacity, a backward edge for every arc carrying flow, both weighted by
// reduced cost (cost + potential[from] - potential[to]). Edges whose
// reduced cost would be negative are omitted defensively; they should
// never arise if potentials are maintained correctly.
func buildResidualGraph(nodeIDs []string, arcs []*Arc, flow, potential map[string]int64) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for _, id := range nodeIDs {
		_ = g.AddVertex(id)
	}
	for _, a := range arcs {
		f := flow[a.ID]
		if f < a.Capacity {
			if rc := a.Cost + potential[a.From] - potential[a.To]; rc >= 0 {
				_, _ = g.AddEdge(a.From, a.To, rc)
			}
		}
		if f > 0 {
			if rc := -a.Cost + potential[a.To] - potential[a.From]; rc >= 0 {
				_, _ = g.AddEdge(a.To, a.From, rc)
			}
		}
	}

	return g
}

func walkPath(prev map[string]string, s, t string) []string {
	var rev []string
	for cur := t; cur != s; cur = prev[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, s)

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

func findArcBetween(arcs []*Arc, from, to string) (*Arc, bool) {
	for _, a := range arcs {
		if a.From == from && a.To == to {
			return a, true
		}
	}

	return nil, false
}

// pathBottleneck mirrors buildResidualGraph's edge choice for each
// consecutive pair in path: a forward arc from->to with spare capacity,
// else a backward traversal of an arc to->from currently carrying flow.
func pathBottleneck(arcs []*Arc, flow map[string]int64, path []string) int64 {
	bottleneck := int64(math.MaxInt64)
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if a, ok := findArcBetween(arcs, u, v); ok && flow[a.ID] < a.Capacity {
			if res := a.Capacity - flow[a.ID]; res < bottleneck {
				bottleneck = res
			}
			continue
		}
		if a, ok := findArcBetween(arcs, v, u); ok && flow[a.ID] > 0 {
			if flow[a.ID] < bottleneck {
				bottleneck = flow[a.ID]
			}
			continue
		}

		return 0
	}

	return bottleneck
}

func applyFlow(arcs []*Arc, flow map[string]int64, path []string, delta int64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if a, ok := findArcBetween(arcs, u, v); ok && flow[a.ID] < a.Capacity {
			flow[a.ID] += delta
			continue
		}
		if a, ok := findArcBetween(arcs, v, u); ok {
			flow[a.ID] -= delta
		}
	}
}
