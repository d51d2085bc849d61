package errors

// Conflict violation codes (CON400-499)
const (
	// ErrDuplicateIntegration indicates two integrations targeting the same method
	ErrDuplicateIntegration Code = "CON400"
	// ErrAuthorizerUnresolvable indicates a method whose mode requires an
	// authorizer but neither resolution path is usable
	ErrAuthorizerUnresolvable Code = "CON401"
)

// NewDuplicateIntegration creates a CON400 violation against the later
// integration key (in sorted key order).
func NewDuplicateIntegration(integrationKey, firstIntegrationKey, methodKey string) *Violation {
	return newViolation(
		ErrDuplicateIntegration,
		"duplicate_integration",
		CategoryConflict,
		integrationKey,
		"method_key",
		"integration %q: method %q already has integration %q (one backend per method)",
		integrationKey, methodKey, firstIntegrationKey,
	).WithSuggestion("Point the integration at a different method, or remove one of the duplicates")
}

// NewAuthorizerUnresolvable creates a CON401 violation.
func NewAuthorizerUnresolvable(methodKey, mode string) *Violation {
	return newViolation(
		ErrAuthorizerUnresolvable,
		"authorizer_unresolvable",
		CategoryConflict,
		methodKey,
		"authorization",
		"method %q: authorization %s requires an authorizer but none is resolvable",
		methodKey, mode,
	).WithSuggestion("Set authorizer_key to a module-managed authorizer, or supply an external authorizer_id")
}
