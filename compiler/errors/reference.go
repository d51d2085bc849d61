package errors

// Reference violation codes (REF100-199)
const (
	// ErrUnknownParent indicates a resource parent_key naming no resource
	ErrUnknownParent Code = "REF100"
	// ErrUnknownResource indicates a method resource_key naming no resource
	ErrUnknownResource Code = "REF101"
	// ErrUnknownMethod indicates a method_key naming no method
	ErrUnknownMethod Code = "REF102"
	// ErrUnknownMethodResponse indicates a method_response_key naming no method response
	ErrUnknownMethodResponse Code = "REF103"
)

// NewUnknownParent creates a REF100 violation.
func NewUnknownParent(resourceKey, parentKey string) *Violation {
	return newViolation(
		ErrUnknownParent,
		"unknown_parent",
		CategoryReference,
		resourceKey,
		"parent_key",
		"resource %q: parent_key %q not found",
		resourceKey, parentKey,
	).WithSuggestion("Reference an existing resource key, or omit parent_key to attach the segment to the root")
}

// NewUnknownResource creates a REF101 violation.
func NewUnknownResource(methodKey, resourceKey string) *Violation {
	return newViolation(
		ErrUnknownResource,
		"unknown_resource",
		CategoryReference,
		methodKey,
		"resource_key",
		"method %q: resource_key %q not found",
		methodKey, resourceKey,
	).WithSuggestion("Reference an existing resource key, or omit resource_key to bind the method to the root")
}

// NewUnknownMethod creates a REF102 violation. The caller names the entry
// kind so integrations and method responses read distinctly in output.
func NewUnknownMethod(entryKind, entryKey, methodKey string) *Violation {
	return newViolation(
		ErrUnknownMethod,
		"unknown_method",
		CategoryReference,
		entryKey,
		"method_key",
		"%s %q: method_key %q not found",
		entryKind, entryKey, methodKey,
	).WithSuggestion("Reference an existing method key")
}

// NewUnknownMethodResponse creates a REF103 violation.
func NewUnknownMethodResponse(integrationResponseKey, methodResponseKey string) *Violation {
	return newViolation(
		ErrUnknownMethodResponse,
		"unknown_method_response",
		CategoryReference,
		integrationResponseKey,
		"method_response_key",
		"integration response %q: method_response_key %q not found",
		integrationResponseKey, methodResponseKey,
	).WithSuggestion("Reference an existing method response key")
}
