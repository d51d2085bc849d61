package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restgraph/restgraph/compiler/definition"
)

func TestResolveTreeAncestorChains(t *testing.T) {
	resources := map[string]definition.ResourceEntry{
		"orders":   {PathPart: "orders"},
		"order_id": {PathPart: "{id}", ParentKey: "orders"},
		"items":    {PathPart: "items", ParentKey: "order_id"},
	}

	tree, err := ResolveTree(resources)
	require.NoError(t, err)

	assert.Equal(t, []string{"items", "order_id", "orders"}, definition.SortedKeys(tree.Nodes))
	assert.Equal(t, []string{"orders", "order_id", "items"}, tree.Order)

	assert.Empty(t, tree.Nodes["orders"].Ancestors)
	assert.Equal(t, "/orders", tree.Nodes["orders"].Path)
	assert.Equal(t, 1, tree.Nodes["orders"].Depth)

	assert.Equal(t, []string{"orders"}, tree.Nodes["order_id"].Ancestors)
	assert.Equal(t, "/orders/{id}", tree.Nodes["order_id"].Path)

	assert.Equal(t, []string{"orders", "order_id"}, tree.Nodes["items"].Ancestors)
	assert.Equal(t, "/orders/{id}/items", tree.Nodes["items"].Path)
	assert.Equal(t, 3, tree.Nodes["items"].Depth)

	assert.Equal(t, []string{"orders", "order_id"}, tree.Chain("order_id"))
	assert.Nil(t, tree.Chain("missing"))
}

func TestResolveTreeParentsPrecedeChildren(t *testing.T) {
	// Keys chosen so sorted order disagrees with dependency order.
	resources := map[string]definition.ResourceEntry{
		"a_leaf": {PathPart: "leaf", ParentKey: "z_root"},
		"z_root": {PathPart: "root"},
	}

	tree, err := ResolveTree(resources)
	require.NoError(t, err)
	assert.Equal(t, []string{"z_root", "a_leaf"}, tree.Order)
}

func TestResolveTreeSiblingsKeepSortedOrder(t *testing.T) {
	resources := map[string]definition.ResourceEntry{
		"root":    {PathPart: "api"},
		"orders":  {PathPart: "orders", ParentKey: "root"},
		"id_part": {PathPart: "{id}", ParentKey: "root"},
	}

	tree, err := ResolveTree(resources)
	require.NoError(t, err)

	// Siblings are distinct children; no merging of path parts.
	assert.Equal(t, "/api/orders", tree.Nodes["orders"].Path)
	assert.Equal(t, "/api/{id}", tree.Nodes["id_part"].Path)
	assert.Equal(t, []string{"root", "id_part", "orders"}, tree.Order)
}

func TestResolveTreeDeterministic(t *testing.T) {
	build := func() map[string]definition.ResourceEntry {
		return map[string]definition.ResourceEntry{
			"users":    {PathPart: "users"},
			"user_id":  {PathPart: "{id}", ParentKey: "users"},
			"orders":   {PathPart: "orders"},
			"order_id": {PathPart: "{id}", ParentKey: "orders"},
			"items":    {PathPart: "items", ParentKey: "order_id"},
		}
	}

	first, err := ResolveTree(build())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		next, err := ResolveTree(build())
		require.NoError(t, err)
		assert.Equal(t, first.Order, next.Order)
		assert.Equal(t, first.Nodes, next.Nodes)
	}
}

func TestResolveTreeReportsCycle(t *testing.T) {
	resources := map[string]definition.ResourceEntry{
		"a": {PathPart: "a", ParentKey: "b"},
		"b": {PathPart: "b", ParentKey: "a"},
	}

	tree, err := ResolveTree(resources)
	assert.Nil(t, tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}
