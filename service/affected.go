package service

import (
	"sort"

	"github.com/tsgraph/tsgraph/domain"
)

// Affected runs a reverse BFS from changed over the inverse dependency
// map, optionally restricted to entry modules.
func Affected(m *domain.SymbolsMap, g *domain.DependencyGraph, changed []string, entriesOnly bool) []string {
	moduleIDForPath := func(path string) (int, bool) {
		return m.ModuleIDForPath(path)
	}

	visited := make(map[string]bool)
	result := make(map[string]bool)
	queue := make([]string, 0, len(changed))
	queue = append(queue, changed...)
	for _, p := range changed {
		visited[p] = true
	}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		id, ok := moduleIDForPath(path)
		if !ok {
			continue
		}
		for dependent := range g.DependentsOf(id) {
			depMod := m.Module(dependent)
			if !entriesOnly || depMod.IsEntry {
				result[depMod.Path] = true
			}
			if !visited[depMod.Path] {
				visited[depMod.Path] = true
				queue = append(queue, depMod.Path)
			}
		}
	}

	out := make([]string, 0, len(result))
	for p := range result {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
