package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"z": 1, "a": 2, "m": 3}
	assert.Equal(t, []string{"a", "m", "z"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int(nil)))
}

func TestHTTPMethodValid(t *testing.T) {
	for _, m := range []HTTPMethod{MethodGet, MethodHead, MethodOptions, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodAny} {
		assert.True(t, m.Valid(), "%s", m)
	}
	assert.False(t, HTTPMethod("FETCH").Valid())
	assert.False(t, HTTPMethod("get").Valid())
	assert.False(t, HTTPMethod("").Valid())
}

func TestAuthorizationMode(t *testing.T) {
	assert.True(t, AuthNone.Valid())
	assert.True(t, AuthIAM.Valid())
	assert.False(t, AuthorizationMode("SOMETIMES").Valid())

	assert.False(t, AuthNone.RequiresAuthorizer())
	assert.False(t, AuthIAM.RequiresAuthorizer())
	assert.True(t, AuthCustom.RequiresAuthorizer())
	assert.True(t, AuthCognitoUserPools.RequiresAuthorizer())
}

func TestIntegrationTypeValid(t *testing.T) {
	assert.True(t, IntegrationAWSProxy.Valid())
	assert.True(t, IntegrationMock.Valid())
	assert.False(t, IntegrationType("CARRIER_PIGEON").Valid())
}

func TestDecodeYAML(t *testing.T) {
	doc := []byte(`
resources:
  orders:
    path_part: orders
  order_id:
    path_part: "{id}"
    parent_key: orders
methods:
  get_order:
    resource_key: order_id
    http_method: GET
    authorization: NONE
integrations:
  get_order_backend:
    method_key: get_order
    type: AWS_PROXY
    timeout_milliseconds: 29000
stage:
  name: prod
  variables:
    tier: gold
`)

	snap, err := DecodeYAML(doc)
	require.NoError(t, err)

	assert.Equal(t, "orders", snap.Resources["order_id"].ParentKey)
	assert.Equal(t, "{id}", snap.Resources["order_id"].PathPart)
	assert.Equal(t, MethodGet, snap.Methods["get_order"].HTTPMethod)
	assert.Equal(t, AuthNone, snap.Methods["get_order"].Authorization)
	assert.Equal(t, IntegrationAWSProxy, snap.Integrations["get_order_backend"].Type)
	assert.Equal(t, 29000, snap.Integrations["get_order_backend"].TimeoutMilliseconds)
	assert.Equal(t, "prod", snap.Stage.Name)
	assert.Equal(t, "gold", snap.Stage.Variables["tier"])
}

func TestDecodeYAMLRejectsGarbage(t *testing.T) {
	_, err := DecodeYAML([]byte("resources: [not, a, map]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding snapshot")
}

func TestJSONRoundTrip(t *testing.T) {
	snap := &Snapshot{
		Resources: map[string]ResourceEntry{
			"orders": {PathPart: "orders"},
		},
		Methods: map[string]MethodEntry{
			"list_orders": {ResourceKey: "orders", HTTPMethod: MethodGet, Authorization: AuthIAM},
		},
		Stage: StageSettings{Name: "prod"},
	}

	raw, err := snap.EncodeJSON()
	require.NoError(t, err)

	decoded, err := DecodeJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	// Canonical encoding: identical logical content, identical bytes.
	again, err := decoded.EncodeJSON()
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}
