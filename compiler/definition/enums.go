package definition

// HTTPMethod is one of the fixed verb set a method may bind.
type HTTPMethod string

const (
	MethodGet     HTTPMethod = "GET"
	MethodHead    HTTPMethod = "HEAD"
	MethodOptions HTTPMethod = "OPTIONS"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodPatch   HTTPMethod = "PATCH"
	MethodDelete  HTTPMethod = "DELETE"
	// MethodAny matches every verb on the resource.
	MethodAny HTTPMethod = "ANY"
)

// Valid reports whether m is in the fixed verb set.
func (m HTTPMethod) Valid() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions, MethodPost,
		MethodPut, MethodPatch, MethodDelete, MethodAny:
		return true
	}
	return false
}

// AuthorizationMode is one of the fixed authorization mode set.
type AuthorizationMode string

const (
	// AuthNone performs no authorization.
	AuthNone AuthorizationMode = "NONE"
	// AuthIAM authorizes via signed requests; no authorizer entity involved.
	AuthIAM AuthorizationMode = "AWS_IAM"
	// AuthCustom delegates to a custom authorizer.
	AuthCustom AuthorizationMode = "CUSTOM"
	// AuthCognitoUserPools delegates to a user-pool authorizer.
	AuthCognitoUserPools AuthorizationMode = "COGNITO_USER_POOLS"
)

// Valid reports whether a is in the fixed mode set.
func (a AuthorizationMode) Valid() bool {
	switch a {
	case AuthNone, AuthIAM, AuthCustom, AuthCognitoUserPools:
		return true
	}
	return false
}

// RequiresAuthorizer reports whether methods using this mode must resolve an
// authorizer. NONE and AWS_IAM resolve to no authorizer at all.
func (a AuthorizationMode) RequiresAuthorizer() bool {
	return a == AuthCustom || a == AuthCognitoUserPools
}

// IntegrationType is one of the fixed backend integration type set.
type IntegrationType string

const (
	IntegrationHTTP      IntegrationType = "HTTP"
	IntegrationHTTPProxy IntegrationType = "HTTP_PROXY"
	IntegrationAWS       IntegrationType = "AWS"
	IntegrationAWSProxy  IntegrationType = "AWS_PROXY"
	IntegrationMock      IntegrationType = "MOCK"
)

// Valid reports whether t is in the fixed integration type set.
func (t IntegrationType) Valid() bool {
	switch t {
	case IntegrationHTTP, IntegrationHTTPProxy, IntegrationAWS,
		IntegrationAWSProxy, IntegrationMock:
		return true
	}
	return false
}
