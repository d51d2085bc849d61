package resolver

import (
	"fmt"

	"github.com/restgraph/restgraph/compiler/definition"
)

// ResolveAuthorizer resolves a method's authorizer identity. It returns an
// empty identifier when the method's mode needs no authorizer. Otherwise the
// module-managed authorizer key is tried first and, only when it does not
// resolve, the externally supplied identifier: keeping authorizer identity
// management centralized when possible.
func ResolveAuthorizer(method definition.MethodEntry, authorizers map[string]definition.AuthorizerEntry) (string, error) {
	if !method.Authorization.RequiresAuthorizer() {
		return "", nil
	}
	if method.AuthorizerKey != "" {
		if managed, ok := authorizers[method.AuthorizerKey]; ok {
			return managed.ProviderID, nil
		}
	}
	if method.AuthorizerID != "" {
		return method.AuthorizerID, nil
	}
	return "", fmt.Errorf("authorization %s requires an authorizer but none is resolvable", method.Authorization)
}
