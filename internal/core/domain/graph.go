package domain

import "go.trai.ch/zerr"

// DependencyGraph models the package-to-package dependency edges of the
// whole registry. The validator builds one from every package's
// reconstructed latest metadata (plus any pending update) to detect
// circular dependencies before a write is committed.
type DependencyGraph struct {
	edges map[string][]string
}

// NewDependencyGraph creates an empty dependency graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[string][]string),
	}
}

// AddPackage records a package and its hatch dependencies. Adding the same
// package twice replaces its edge list, which is how a pending update
// overrides the currently stored metadata.
func (g *DependencyGraph) AddPackage(name string, deps []Dependency) {
	edges := make([]string, 0, len(deps))
	for _, d := range deps {
		edges = append(edges, d.Name)
	}
	g.edges[name] = edges
}

// Validate runs a depth-first search over every package and returns
// ErrCycleDetected, with the cycle path attached, if the graph contains a
// cycle. Edges pointing at packages unknown to the registry are ignored:
// dangling dependencies are a constraint-resolution concern, not a cycle.
func (g *DependencyGraph) Validate() error {
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.edges[u] {
			if _, known := g.edges[dep]; !known {
				continue
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for name := range g.edges {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *DependencyGraph) buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}
