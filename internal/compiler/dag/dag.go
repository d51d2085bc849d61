// Package dag implements a directed acyclic graph over logical entry keys,
// with a stable topological sort used to order resource creation so parents
// always precede children.
package dag

import (
	"fmt"
	"sort"
)

// Graph is a DAG keyed by comparable vertex IDs. Vertices remember the order
// they were added in; the topological sort breaks ties by that order, so a
// caller that inserts vertices deterministically gets deterministic output.
type Graph[T comparable] struct {
	vertices map[T]*vertex[T]
	next     int
}

type vertex[T comparable] struct {
	id        T
	order     int
	dependsOn map[T]struct{}
}

// New creates an empty graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{vertices: make(map[T]*vertex[T])}
}

// AddVertex registers a vertex. Adding the same ID twice is an error.
func (g *Graph[T]) AddVertex(id T) error {
	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("vertex %v already exists", id)
	}
	g.vertices[id] = &vertex[T]{
		id:        id,
		order:     g.next,
		dependsOn: make(map[T]struct{}),
	}
	g.next++
	return nil
}

// AddDependency records that from depends on to, i.e. to must be ordered
// before from. Both vertices must exist, and an edge that would close a
// cycle is rejected with a CycleError. A self-dependency is the shortest
// cycle and reports the same way.
func (g *Graph[T]) AddDependency(from, to T) error {
	fv, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("vertex %v does not exist", from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("dependency %v does not exist", to)
	}
	if from == to {
		return &CycleError[T]{Path: []T{from, from}}
	}
	// The new edge closes a cycle iff to already reaches from.
	if path := g.reaches(to, from); path != nil {
		return &CycleError[T]{Path: append([]T{from}, path...)}
	}
	fv.dependsOn[to] = struct{}{}
	return nil
}

// Len returns the number of vertices.
func (g *Graph[T]) Len() int {
	return len(g.vertices)
}

// TopologicalSort returns every vertex ordered so that dependencies precede
// dependents. Unconstrained vertices keep their insertion order. A cycle
// (possible only if the graph was built outside AddDependency) yields a
// CycleError.
func (g *Graph[T]) TopologicalSort() ([]T, error) {
	pending := make([]*vertex[T], 0, len(g.vertices))
	for _, v := range g.vertices {
		pending = append(pending, v)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].order < pending[j].order })

	sorted := make([]T, 0, len(pending))
	placed := make(map[T]struct{}, len(pending))
	for len(pending) > 0 {
		progressed := false
		rest := pending[:0]
		for _, v := range pending {
			if g.satisfied(v, placed) {
				sorted = append(sorted, v.id)
				placed[v.id] = struct{}{}
				progressed = true
			} else {
				rest = append(rest, v)
			}
		}
		pending = rest
		if !progressed {
			return nil, &CycleError[T]{Path: g.findCycle(pending)}
		}
	}
	return sorted, nil
}

func (g *Graph[T]) satisfied(v *vertex[T], placed map[T]struct{}) bool {
	for dep := range v.dependsOn {
		if _, ok := placed[dep]; !ok {
			return false
		}
	}
	return true
}

// reaches returns a dependency path from src to dst following dependsOn
// edges, or nil if dst is unreachable from src.
func (g *Graph[T]) reaches(src, dst T) []T {
	visited := make(map[T]struct{})
	var walk func(id T) []T
	walk = func(id T) []T {
		if id == dst {
			return []T{id}
		}
		if _, seen := visited[id]; seen {
			return nil
		}
		visited[id] = struct{}{}
		for dep := range g.vertices[id].dependsOn {
			if path := walk(dep); path != nil {
				return append([]T{id}, path...)
			}
		}
		return nil
	}
	return walk(src)
}

// findCycle extracts one cycle from a set of vertices known to contain one.
func (g *Graph[T]) findCycle(stuck []*vertex[T]) []T {
	inStuck := make(map[T]struct{}, len(stuck))
	for _, v := range stuck {
		inStuck[v.id] = struct{}{}
	}
	for _, v := range stuck {
		seen := make(map[T]int)
		var path []T
		cur := v
		for {
			if idx, ok := seen[cur.id]; ok {
				return append(path[idx:], cur.id)
			}
			seen[cur.id] = len(path)
			path = append(path, cur.id)
			advanced := false
			for dep := range cur.dependsOn {
				if _, ok := inStuck[dep]; ok {
					cur = g.vertices[dep]
					advanced = true
					break
				}
			}
			if !advanced {
				break
			}
		}
	}
	return nil
}

// CycleError reports a dependency cycle. Path starts and ends at the same
// vertex.
type CycleError[T comparable] struct {
	Path []T
}

func (e *CycleError[T]) Error() string {
	return fmt.Sprintf("graph contains a cycle: %v", e.Path)
}

// AsCycleError returns err as a *CycleError if it is one, else nil.
func AsCycleError[T comparable](err error) *CycleError[T] {
	ce, ok := err.(*CycleError[T])
	if !ok {
		return nil
	}
	return ce
}
