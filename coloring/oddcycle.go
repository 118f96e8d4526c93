package coloring

import (
	"fmt"

	"github.com/dpatterning/solvers/core"
	"github.com/dpatterning/solvers/lp"
)

// oddCycle is a sequence of vertex IDs tracing a simple odd-length cycle in
// the conflict graph.
type oddCycle []string

// findOddCycles runs a single DFS pass over g, coloring each vertex with
// its distance-from-root parity, and reports up to limit cycles closed by
// a back edge between two vertices of equal parity — exactly the back
// edges that would force an odd cycle under any proper 2-coloring attempt.
// limit <= 0 means unbounded.
func findOddCycles(g *core.Graph, limit int) ([]oddCycle, error) {
	parity := make(map[string]int)
	parent := make(map[string]string)
	visited := make(map[string]bool)
	var cycles []oddCycle

	var dfs func(u string) error
	dfs = func(u string) error {
		visited[u] = true
		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			return err
		}
		for _, v := range neighbors {
			if v == parent[u] {
				continue
			}
			if !visited[v] {
				parent[v] = u
				parity[v] = 1 - parity[u]
				if err := dfs(v); err != nil {
					return err
				}

				continue
			}
			if parity[v] == parity[u] {
				if limit > 0 && len(cycles) >= limit {
					continue
				}
				cycles = append(cycles, reconstructCycle(parent, u, v))
			}
		}

		return nil
	}

	for _, vid := range g.Vertices() {
		if !visited[vid] {
			parity[vid] = 0
			if err := dfs(vid); err != nil {
				return nil, err
			}
		}
	}

	return cycles, nil
}

// reconstructCycle walks u and v back toward the root, splicing the two
// ancestor chains together at their first common vertex to produce the
// cycle the u-v back edge closes.
func reconstructCycle(parent map[string]string, u, v string) oddCycle {
	pathU := []string{u}
	seen := map[string]int{u: 0}
	for p, ok := parent[u]; ok; p, ok = parent[p] {
		pathU = append(pathU, p)
		seen[p] = len(pathU) - 1
	}

	pathV := []string{v}
	lcaIdx := -1
	for p := v; ; {
		if idx, ok := seen[p]; ok {
			lcaIdx = idx

			break
		}
		next, ok := parent[p]
		if !ok {
			break
		}
		pathV = append(pathV, next)
		p = next
	}
	if lcaIdx == -1 {
		lcaIdx = len(pathU) - 1
	}

	// pathV already ends at the common vertex, so pathU resumes just below it.
	cycle := append(oddCycle{}, pathV...)
	for i := lcaIdx - 1; i >= 0; i-- {
		cycle = append(cycle, pathU[i])
	}

	return cycle
}

// addOddCycleCut adds, for each bit index i in {0,1}, the pair of
// constraints sum(v_i) >= 1 and sum(v_i) <= L-1 over cyc's vertices — the
// two degenerate all-0 / all-1 assignments a true odd cycle can never
// realize under a proper coloring, for both bits of the 2-bit encoding. It
// reports whether at least one cut was actually added (cycles with fewer
// than three distinct vertices add nothing; precolored vertices are cut like
// any other).
func addOddCycleCut(mdl *model, cyc oddCycle) bool {
	if len(cyc) < 3 {
		return false
	}

	var vars []string
	seen := make(map[string]bool, len(cyc))
	for _, vid := range cyc {
		if seen[vid] {
			continue
		}
		seen[vid] = true
		if _, ok := mdl.bits[vid]; ok {
			vars = append(vars, vid)
		}
	}
	if len(vars) < 3 {
		return false
	}

	added := false
	for i := 0; i < 2; i++ {
		expr := make(map[lp.Var]float64, len(vars))
		for _, vid := range vars {
			expr[mdl.bits[vid][i]] = 1
		}

		name := fmt.Sprintf("oddcycle%d-b%d", mdl.cutCount, i)
		if _, err := mdl.lp.AddConstr(expr, lp.GE, 1, name+"-lo"); err != nil {
			continue
		}
		if _, err := mdl.lp.AddConstr(expr, lp.LE, float64(len(expr)-1), name+"-hi"); err != nil {
			continue
		}
		added = true
	}
	mdl.cutCount++

	return added
}
