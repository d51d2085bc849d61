// Package definition holds the raw, flat REST API definition as authored:
// four key-indexed entry collections (path resources, methods, integrations,
// responses) plus module-managed authorizers and stage settings. The package
// performs no resolution itself; it only stores entries and provides the
// deterministic iteration order the rest of the compiler relies on.
package definition

import "sort"

// Snapshot is one immutable API definition handed to the compiler. Entries
// reference each other by logical string key (the map key), never by
// position. A snapshot is re-validated and re-resolved on every compilation
// pass; nothing in it is mutated in place.
type Snapshot struct {
	Resources            map[string]ResourceEntry            `json:"resources" yaml:"resources"`
	Methods              map[string]MethodEntry              `json:"methods" yaml:"methods"`
	Integrations         map[string]IntegrationEntry         `json:"integrations" yaml:"integrations"`
	MethodResponses      map[string]MethodResponseEntry      `json:"method_responses" yaml:"method_responses"`
	IntegrationResponses map[string]IntegrationResponseEntry `json:"integration_responses" yaml:"integration_responses"`
	Authorizers          map[string]AuthorizerEntry          `json:"authorizers" yaml:"authorizers"`
	Stage                StageSettings                       `json:"stage" yaml:"stage"`
}

// SortedKeys returns the keys of a string-keyed map in ascending order.
// Every component that walks a collection does so through this helper, so
// map iteration order never leaks into output or diagnostics.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
