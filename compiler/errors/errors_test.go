package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStructure(t *testing.T) {
	tests := []struct {
		name     string
		v        *Violation
		code     Code
		category Category
		entryKey string
		field    string
		contains string
	}{
		{
			name:     "unknown parent",
			v:        NewUnknownParent("order_id", "ordersz"),
			code:     ErrUnknownParent,
			category: CategoryReference,
			entryKey: "order_id",
			field:    "parent_key",
			contains: `parent_key "ordersz" not found`,
		},
		{
			name:     "unknown resource",
			v:        NewUnknownResource("get_order", "orders_x"),
			code:     ErrUnknownResource,
			category: CategoryReference,
			entryKey: "get_order",
			field:    "resource_key",
			contains: `method "get_order": resource_key "orders_x" not found`,
		},
		{
			name:     "unknown method",
			v:        NewUnknownMethod("integration", "backend", "gone"),
			code:     ErrUnknownMethod,
			category: CategoryReference,
			entryKey: "backend",
			field:    "method_key",
			contains: `integration "backend": method_key "gone" not found`,
		},
		{
			name:     "empty path part",
			v:        NewEmptyPathPart("blank"),
			code:     ErrEmptyPathPart,
			category: CategoryShape,
			entryKey: "blank",
			field:    "path_part",
			contains: "must not be empty",
		},
		{
			name:     "invalid status code",
			v:        NewInvalidStatusCode("method response", "resp", "9000"),
			code:     ErrInvalidStatusCode,
			category: CategoryShape,
			entryKey: "resp",
			field:    "status_code",
			contains: `"9000" is not a three-digit`,
		},
		{
			name:     "parent cycle",
			v:        NewParentCycle([]string{"a", "b", "a"}),
			code:     ErrParentCycle,
			category: CategoryCycle,
			entryKey: "a",
			field:    "parent_key",
			contains: "a -> b -> a",
		},
		{
			name:     "duplicate integration",
			v:        NewDuplicateIntegration("second", "first", "get_order"),
			code:     ErrDuplicateIntegration,
			category: CategoryConflict,
			entryKey: "second",
			field:    "method_key",
			contains: "one backend per method",
		},
		{
			name:     "authorizer unresolvable",
			v:        NewAuthorizerUnresolvable("get_order", "CUSTOM"),
			code:     ErrAuthorizerUnresolvable,
			category: CategoryConflict,
			entryKey: "get_order",
			field:    "authorization",
			contains: "none is resolvable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.v.Code)
			assert.Equal(t, tt.category, tt.v.Category)
			assert.Equal(t, tt.entryKey, tt.v.EntryKey)
			assert.Equal(t, tt.field, tt.v.Field)
			assert.Contains(t, tt.v.Message, tt.contains)
			assert.NotEmpty(t, tt.v.Suggestion)
		})
	}
}

func TestFormatCompact(t *testing.T) {
	v := NewUnknownResource("get_order", "orders_x")
	compact := FormatCompact(v)
	assert.Contains(t, compact, "reference:")
	assert.Contains(t, compact, "get_order.resource_key")
	assert.Contains(t, compact, "[REF101]")
	assert.Equal(t, compact, v.Error())
}

func TestFormatListSummary(t *testing.T) {
	list := ViolationList{
		NewUnknownResource("get_order", "orders_x"),
		NewEmptyPathPart("blank"),
		NewEmptyPathPart("blank2"),
	}

	out := FormatList(list)
	assert.True(t, strings.HasPrefix(out, "Compilation failed with 3 violation(s)"))
	assert.Contains(t, out, "1 reference")
	assert.Contains(t, out, "2 shape")

	assert.Equal(t, out, list.Error())
	assert.Equal(t, "no violations", ViolationList{}.Error())
}

func TestCountByCategory(t *testing.T) {
	list := ViolationList{
		NewUnknownParent("a", "b"),
		NewParentCycle([]string{"a", "b", "a"}),
		NewParentCycle([]string{"c", "d", "c"}),
	}
	counts := list.CountByCategory()
	assert.Equal(t, 1, counts[CategoryReference])
	assert.Equal(t, 2, counts[CategoryCycle])
	assert.Equal(t, 0, counts[CategoryShape])
	assert.True(t, list.HasViolations())
}

func TestViolationJSON(t *testing.T) {
	v := NewDuplicateIntegration("second", "first", "get_order")
	raw, err := v.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "CON400", decoded["code"])
	assert.Equal(t, "conflict", decoded["category"])
	assert.Equal(t, "second", decoded["entry_key"])

	listRaw, err := ViolationList{v}.ToJSON()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(listRaw), "["))
}
