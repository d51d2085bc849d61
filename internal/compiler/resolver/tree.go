// Package resolver turns validated entry collections into resolved views:
// the resource forest with ancestor chains and creation order, and the
// per-method authorizer identity.
package resolver

import (
	"fmt"
	"strings"

	"github.com/restgraph/restgraph/compiler/definition"
	"github.com/restgraph/restgraph/internal/compiler/dag"
)

// Node is one resolved path segment.
type Node struct {
	// Key is the entry's logical key.
	Key string
	// PathPart is the single path segment, verbatim from the entry.
	PathPart string
	// ParentKey is the parent entry key, empty for children of the root.
	ParentKey string
	// Ancestors lists ancestor keys root-first, excluding the node itself.
	Ancestors []string
	// Path is the full slash-joined path from the root, with leading "/".
	Path string
	// Depth is len(Ancestors) + 1.
	Depth int
}

// Tree is the resolved resource forest.
type Tree struct {
	// Order lists every resource key in creation order: a parent always
	// precedes its children, and otherwise keys keep sorted order.
	Order []string
	// Nodes indexes resolved nodes by key.
	Nodes map[string]*Node
}

// ResolveTree computes ancestor chains and a stable creation order for a
// validated resource collection. Inserting vertices in sorted key order makes
// the output identical across runs and across map orderings of the input.
func ResolveTree(resources map[string]definition.ResourceEntry) (*Tree, error) {
	g := dag.New[string]()
	keys := definition.SortedKeys(resources)
	for _, key := range keys {
		if err := g.AddVertex(key); err != nil {
			return nil, fmt.Errorf("resolving resource tree: %w", err)
		}
	}
	for _, key := range keys {
		parent := resources[key].ParentKey
		if parent == "" {
			continue
		}
		if err := g.AddDependency(key, parent); err != nil {
			return nil, fmt.Errorf("resolving resource tree: %w", err)
		}
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("resolving resource tree: %w", err)
	}

	tree := &Tree{
		Order: order,
		Nodes: make(map[string]*Node, len(order)),
	}
	// Creation order guarantees a node's parent is resolved before the node.
	for _, key := range order {
		entry := resources[key]
		node := &Node{
			Key:       key,
			PathPart:  entry.PathPart,
			ParentKey: entry.ParentKey,
		}
		if entry.ParentKey == "" {
			node.Path = "/" + entry.PathPart
		} else {
			parent := tree.Nodes[entry.ParentKey]
			node.Ancestors = append(append([]string{}, parent.Ancestors...), parent.Key)
			node.Path = parent.Path + "/" + entry.PathPart
		}
		node.Depth = len(node.Ancestors) + 1
		tree.Nodes[key] = node
	}
	return tree, nil
}

// Chain returns the ancestor chain of key including the key itself,
// root-first, e.g. [orders, order_id].
func (t *Tree) Chain(key string) []string {
	node, ok := t.Nodes[key]
	if !ok {
		return nil
	}
	return append(append([]string{}, node.Ancestors...), key)
}

// String renders the forest in creation order, for debugging.
func (t *Tree) String() string {
	var b strings.Builder
	for _, key := range t.Order {
		fmt.Fprintf(&b, "%s -> %s\n", key, t.Nodes[key].Path)
	}
	return b.String()
}
