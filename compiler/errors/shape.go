package errors

// Shape violation codes (SHP200-299)
const (
	// ErrEmptyPathPart indicates a resource with an empty path segment
	ErrEmptyPathPart Code = "SHP200"
	// ErrInvalidHTTPMethod indicates a verb outside the fixed verb set
	ErrInvalidHTTPMethod Code = "SHP201"
	// ErrInvalidAuthorizationMode indicates a mode outside the fixed mode set
	ErrInvalidAuthorizationMode Code = "SHP202"
	// ErrInvalidIntegrationType indicates a type outside the fixed type set
	ErrInvalidIntegrationType Code = "SHP203"
	// ErrInvalidStatusCode indicates a status code outside the 1xx-5xx pattern
	ErrInvalidStatusCode Code = "SHP204"
)

// NewEmptyPathPart creates a SHP200 violation.
func NewEmptyPathPart(resourceKey string) *Violation {
	return newViolation(
		ErrEmptyPathPart,
		"empty_path_part",
		CategoryShape,
		resourceKey,
		"path_part",
		"resource %q: path_part must not be empty",
		resourceKey,
	).WithSuggestion("Set path_part to a single path segment, e.g. \"orders\" or \"{id}\"")
}

// NewInvalidHTTPMethod creates a SHP201 violation.
func NewInvalidHTTPMethod(methodKey, verb string) *Violation {
	return newViolation(
		ErrInvalidHTTPMethod,
		"invalid_http_method",
		CategoryShape,
		methodKey,
		"http_method",
		"method %q: http_method %q is not a supported verb",
		methodKey, verb,
	).WithSuggestion("Use one of GET, HEAD, OPTIONS, POST, PUT, PATCH, DELETE, ANY")
}

// NewInvalidAuthorizationMode creates a SHP202 violation.
func NewInvalidAuthorizationMode(methodKey, mode string) *Violation {
	return newViolation(
		ErrInvalidAuthorizationMode,
		"invalid_authorization_mode",
		CategoryShape,
		methodKey,
		"authorization",
		"method %q: authorization %q is not a supported mode",
		methodKey, mode,
	).WithSuggestion("Use one of NONE, AWS_IAM, CUSTOM, COGNITO_USER_POOLS")
}

// NewInvalidIntegrationType creates a SHP203 violation.
func NewInvalidIntegrationType(integrationKey, typ string) *Violation {
	return newViolation(
		ErrInvalidIntegrationType,
		"invalid_integration_type",
		CategoryShape,
		integrationKey,
		"type",
		"integration %q: type %q is not a supported integration type",
		integrationKey, typ,
	).WithSuggestion("Use one of HTTP, HTTP_PROXY, AWS, AWS_PROXY, MOCK")
}

// NewInvalidStatusCode creates a SHP204 violation. The caller names the
// entry kind so method responses and integration responses read distinctly.
func NewInvalidStatusCode(entryKind, entryKey, statusCode string) *Violation {
	return newViolation(
		ErrInvalidStatusCode,
		"invalid_status_code",
		CategoryShape,
		entryKey,
		"status_code",
		"%s %q: status_code %q is not a three-digit 1xx-5xx code",
		entryKind, entryKey, statusCode,
	).WithSuggestion("Use a three-digit HTTP status code string, e.g. \"200\"")
}
