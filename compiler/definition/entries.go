package definition

// ResourceEntry is one path segment. ParentKey references another
// ResourceEntry; empty means the segment hangs directly off the API root.
// PathPart is used verbatim as a single segment and is never merged with
// siblings, so "{id}" and "orders" can coexist under the same parent.
type ResourceEntry struct {
	PathPart  string `json:"path_part" yaml:"path_part"`
	ParentKey string `json:"parent_key,omitempty" yaml:"parent_key,omitempty"`
}

// MethodEntry binds one HTTP verb to a resource. ResourceKey references a
// ResourceEntry; empty means the method is bound to the API root. When
// Authorization requires an authorizer, AuthorizerKey (module-managed) takes
// precedence over AuthorizerID (externally supplied).
type MethodEntry struct {
	ResourceKey         string            `json:"resource_key,omitempty" yaml:"resource_key,omitempty"`
	HTTPMethod          HTTPMethod        `json:"http_method" yaml:"http_method"`
	Authorization       AuthorizationMode `json:"authorization" yaml:"authorization"`
	AuthorizerKey       string            `json:"authorizer_key,omitempty" yaml:"authorizer_key,omitempty"`
	AuthorizerID        string            `json:"authorizer_id,omitempty" yaml:"authorizer_id,omitempty"`
	AuthorizationScopes []string          `json:"authorization_scopes,omitempty" yaml:"authorization_scopes,omitempty"`
	APIKeyRequired      bool              `json:"api_key_required,omitempty" yaml:"api_key_required,omitempty"`
	OperationName       string            `json:"operation_name,omitempty" yaml:"operation_name,omitempty"`
	RequestParameters   map[string]bool   `json:"request_parameters,omitempty" yaml:"request_parameters,omitempty"`
	RequestModels       map[string]string `json:"request_models,omitempty" yaml:"request_models,omitempty"`
	Description         string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// IntegrationEntry is the backend wiring for one method. MethodKey is a
// required reference to a MethodEntry; at most one integration may target a
// given method.
type IntegrationEntry struct {
	MethodKey             string            `json:"method_key" yaml:"method_key"`
	Type                  IntegrationType   `json:"type" yaml:"type"`
	URI                   string            `json:"uri,omitempty" yaml:"uri,omitempty"`
	IntegrationHTTPMethod string            `json:"integration_http_method,omitempty" yaml:"integration_http_method,omitempty"`
	TimeoutMilliseconds   int               `json:"timeout_milliseconds,omitempty" yaml:"timeout_milliseconds,omitempty"`
	PassthroughBehavior   string            `json:"passthrough_behavior,omitempty" yaml:"passthrough_behavior,omitempty"`
	ContentHandling       string            `json:"content_handling,omitempty" yaml:"content_handling,omitempty"`
	RequestTemplates      map[string]string `json:"request_templates,omitempty" yaml:"request_templates,omitempty"`
	RequestParameters     map[string]string `json:"request_parameters,omitempty" yaml:"request_parameters,omitempty"`
	CacheKeyParameters    []string          `json:"cache_key_parameters,omitempty" yaml:"cache_key_parameters,omitempty"`
	CacheNamespace        string            `json:"cache_namespace,omitempty" yaml:"cache_namespace,omitempty"`
}

// MethodResponseEntry declares one response shape a method can return.
// MethodKey is a required reference to a MethodEntry; StatusCode must be a
// three-digit code in the 1xx-5xx range.
type MethodResponseEntry struct {
	MethodKey          string            `json:"method_key" yaml:"method_key"`
	StatusCode         string            `json:"status_code" yaml:"status_code"`
	ResponseModels     map[string]string `json:"response_models,omitempty" yaml:"response_models,omitempty"`
	ResponseParameters map[string]bool   `json:"response_parameters,omitempty" yaml:"response_parameters,omitempty"`
}

// IntegrationResponseEntry maps a backend response onto a declared method
// response. MethodResponseKey is a required reference to a
// MethodResponseEntry.
type IntegrationResponseEntry struct {
	MethodResponseKey  string            `json:"method_response_key" yaml:"method_response_key"`
	StatusCode         string            `json:"status_code" yaml:"status_code"`
	SelectionPattern   string            `json:"selection_pattern,omitempty" yaml:"selection_pattern,omitempty"`
	ResponseTemplates  map[string]string `json:"response_templates,omitempty" yaml:"response_templates,omitempty"`
	ResponseParameters map[string]string `json:"response_parameters,omitempty" yaml:"response_parameters,omitempty"`
	ContentHandling    string            `json:"content_handling,omitempty" yaml:"content_handling,omitempty"`
}

// AuthorizerEntry is a module-managed authorizer. ProviderID is the
// identifier the provisioning layer assigned (or will assign) to it; it is
// what a method's authorizer reference ultimately resolves to.
type AuthorizerEntry struct {
	Name       string `json:"name" yaml:"name"`
	ProviderID string `json:"provider_id" yaml:"provider_id"`
}

// StageSettings are the cross-cutting stage-level settings. They carry no
// cross-references but participate in the change fingerprint, so edits here
// trigger a redeployment like any entry edit.
type StageSettings struct {
	Name                 string            `json:"name" yaml:"name"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	Variables            map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	XRayTracingEnabled   bool              `json:"xray_tracing_enabled,omitempty" yaml:"xray_tracing_enabled,omitempty"`
	CacheClusterEnabled  bool              `json:"cache_cluster_enabled,omitempty" yaml:"cache_cluster_enabled,omitempty"`
	CacheClusterSize     string            `json:"cache_cluster_size,omitempty" yaml:"cache_cluster_size,omitempty"`
	LoggingLevel         string            `json:"logging_level,omitempty" yaml:"logging_level,omitempty"`
	MetricsEnabled       bool              `json:"metrics_enabled,omitempty" yaml:"metrics_enabled,omitempty"`
	ThrottlingRateLimit  float64           `json:"throttling_rate_limit,omitempty" yaml:"throttling_rate_limit,omitempty"`
	ThrottlingBurstLimit int               `json:"throttling_burst_limit,omitempty" yaml:"throttling_burst_limit,omitempty"`
}
