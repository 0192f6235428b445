package service

import (
	"sort"

	"github.com/tsgraph/tsgraph/domain"
)

// cycleColor is the three-state DFS marking used to detect back-edges:
// unvisited, on the current DFS stack, or finished.
type cycleColor int

const (
	colorUnvisited cycleColor = iota
	colorOnStack
	colorFinished
)

// Cycle is one back-edge-bearing path discovered during the DFS, reported
// as the slice of the current path from the back-edge's target to the
// node that closed it.
type Cycle struct {
	ModuleIDs []int
}

// FindCycles walks g with a three-color DFS starting from every module id
// in ascending order, reporting each back-edge-bearing path once per
// DFS-tree occurrence (distinct from a strongly-connected-components
// grouping: two disjoint cycles sharing no edge are reported separately,
// and a single SCC larger than its constituent simple cycles can yield
// more than one reported Cycle).
func FindCycles(g *domain.DependencyGraph) []Cycle {
	color := make(map[int]cycleColor)
	var path []int
	var cycles []Cycle

	var visit func(node int)
	visit = func(node int) {
		color[node] = colorOnStack
		path = append(path, node)

		neighbors := sortedIDs(g.DependenciesOf(node))
		for _, next := range neighbors {
			switch color[next] {
			case colorUnvisited:
				visit(next)
			case colorOnStack:
				cycles = append(cycles, Cycle{ModuleIDs: backEdgeSlice(path, next)})
			case colorFinished:
				// Already explored via another path; not a back edge.
			}
		}

		path = path[:len(path)-1]
		color[node] = colorFinished
	}

	for _, id := range g.NodeIDs() {
		if color[id] == colorUnvisited {
			visit(id)
		}
	}
	return cycles
}

// backEdgeSlice returns a fresh copy of path from target's first
// occurrence through the end, the cycle closed by the back edge into
// target.
func backEdgeSlice(path []int, target int) []int {
	for i, id := range path {
		if id == target {
			out := make([]int, len(path)-i)
			copy(out, path[i:])
			return out
		}
	}
	return nil
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
