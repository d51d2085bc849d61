package compiler

import "github.com/restgraph/restgraph/compiler/definition"

// Resource is one resolved path segment in the compiled graph.
type Resource struct {
	Key       string   `json:"key"`
	PathPart  string   `json:"path_part"`
	ParentKey string   `json:"parent_key,omitempty"`
	Ancestors []string `json:"ancestors,omitempty"`
	Path      string   `json:"path"`
}

// Method is one resolved HTTP method binding. AuthorizerID is empty when the
// authorization mode needs no authorizer; otherwise it is the resolved
// identifier, with a module-managed authorizer winning over an external id.
type Method struct {
	Key                 string                       `json:"key"`
	ResourceKey         string                       `json:"resource_key,omitempty"`
	HTTPMethod          definition.HTTPMethod        `json:"http_method"`
	Authorization       definition.AuthorizationMode `json:"authorization"`
	AuthorizerID        string                       `json:"authorizer_id,omitempty"`
	AuthorizationScopes []string                     `json:"authorization_scopes,omitempty"`
	APIKeyRequired      bool                         `json:"api_key_required,omitempty"`
	OperationName       string                       `json:"operation_name,omitempty"`
	RequestParameters   map[string]bool              `json:"request_parameters,omitempty"`
	RequestModels       map[string]string            `json:"request_models,omitempty"`
}

// Integration is the resolved backend wiring for one method.
type Integration struct {
	Key                   string                     `json:"key"`
	MethodKey             string                     `json:"method_key"`
	Type                  definition.IntegrationType `json:"type"`
	URI                   string                     `json:"uri,omitempty"`
	IntegrationHTTPMethod string                     `json:"integration_http_method,omitempty"`
	TimeoutMilliseconds   int                        `json:"timeout_milliseconds,omitempty"`
	PassthroughBehavior   string                     `json:"passthrough_behavior,omitempty"`
	ContentHandling       string                     `json:"content_handling,omitempty"`
	RequestTemplates      map[string]string          `json:"request_templates,omitempty"`
	RequestParameters     map[string]string          `json:"request_parameters,omitempty"`
	CacheKeyParameters    []string                   `json:"cache_key_parameters,omitempty"`
	CacheNamespace        string                     `json:"cache_namespace,omitempty"`
}

// MethodResponse is one resolved response shape declaration.
type MethodResponse struct {
	Key                     string            `json:"key"`
	MethodKey               string            `json:"method_key"`
	StatusCode              string            `json:"status_code"`
	ResponseModels          map[string]string `json:"response_models,omitempty"`
	ResponseParameters      map[string]bool   `json:"response_parameters,omitempty"`
	IntegrationResponseKeys []string          `json:"integration_response_keys,omitempty"`
}

// IntegrationResponse maps a backend response onto a method response.
type IntegrationResponse struct {
	Key                string            `json:"key"`
	MethodResponseKey  string            `json:"method_response_key"`
	StatusCode         string            `json:"status_code"`
	SelectionPattern   string            `json:"selection_pattern,omitempty"`
	ResponseTemplates  map[string]string `json:"response_templates,omitempty"`
	ResponseParameters map[string]string `json:"response_parameters,omitempty"`
	ContentHandling    string            `json:"content_handling,omitempty"`
}

// Result is one compiled API definition: the validated, dependency-ordered
// resource graph plus the change fingerprint. It is immutable; the
// provisioning collaborator consumes the graph and the deployment
// collaborator consumes the fingerprint.
type Result struct {
	// Resources lists resolved path segments in creation order: every
	// parent precedes its children.
	Resources []Resource `json:"resources"`
	// Methods indexes resolved method bindings by entry key.
	Methods map[string]Method `json:"methods"`
	// Integrations indexes resolved backend wiring by entry key.
	Integrations map[string]Integration `json:"integrations"`
	// MethodResponses indexes resolved response declarations by entry key,
	// each carrying its integration response keys so deployment can depend
	// on all response wiring being in place.
	MethodResponses map[string]MethodResponse `json:"method_responses"`
	// IntegrationResponses indexes resolved backend response mappings by
	// entry key.
	IntegrationResponses map[string]IntegrationResponse `json:"integration_responses"`
	// Stage carries the stage settings through unchanged.
	Stage definition.StageSettings `json:"stage"`
	// Fingerprint is the deterministic digest over the whole normalized
	// snapshot, used as the redeployment trigger.
	Fingerprint string `json:"fingerprint"`
}

// Resource returns the resolved resource for key, or nil.
func (r *Result) Resource(key string) *Resource {
	for i := range r.Resources {
		if r.Resources[i].Key == key {
			return &r.Resources[i]
		}
	}
	return nil
}
