// Package validator checks every cross-reference and shape constraint in a
// definition snapshot. All checks are independent and all of them run, so a
// single pass reports every problem at once; any violation is fatal for the
// compilation pass and no graph or fingerprint is produced.
package validator

import (
	"regexp"
	"sort"

	"github.com/restgraph/restgraph/compiler/definition"
	"github.com/restgraph/restgraph/compiler/errors"
	"github.com/restgraph/restgraph/internal/compiler/dag"
	"github.com/restgraph/restgraph/internal/compiler/resolver"
)

var statusCodePattern = regexp.MustCompile(`^[1-5][0-9]{2}$`)

// View is the cross-indexed, read-only view over a snapshot that passed
// validation. Indexes are recomputed on every pass and never persisted.
type View struct {
	// ChildrenByParent maps a resource key to its child keys, sorted.
	// The empty key holds the children of the API root.
	ChildrenByParent map[string][]string
	// IntegrationByMethod maps a method key to its single integration key.
	IntegrationByMethod map[string]string
	// ResponsesByMethod maps a method key to its method response keys, sorted.
	ResponsesByMethod map[string][]string
	// IntegrationResponsesByResponse maps a method response key to its
	// integration response keys, sorted.
	IntegrationResponsesByResponse map[string][]string
}

// Validate runs every check over the snapshot. It returns the cross-indexed
// view when the snapshot is clean, or the full violation list when it is not;
// never both.
func Validate(snap *definition.Snapshot) (*View, errors.ViolationList) {
	var violations errors.ViolationList

	violations = append(violations, checkResources(snap)...)
	violations = append(violations, checkMethods(snap)...)
	violations = append(violations, checkIntegrations(snap)...)
	violations = append(violations, checkMethodResponses(snap)...)
	violations = append(violations, checkIntegrationResponses(snap)...)

	if violations.HasViolations() {
		return nil, violations
	}
	return buildView(snap), nil
}

// checkResources verifies path parts, parent references, and acyclicity of
// the parent chain.
func checkResources(snap *definition.Snapshot) errors.ViolationList {
	var violations errors.ViolationList

	keys := definition.SortedKeys(snap.Resources)
	g := dag.New[string]()
	for _, key := range keys {
		_ = g.AddVertex(key)
	}
	for _, key := range keys {
		entry := snap.Resources[key]
		if entry.PathPart == "" {
			violations = append(violations, errors.NewEmptyPathPart(key))
		}
		if entry.ParentKey == "" {
			continue
		}
		if _, ok := snap.Resources[entry.ParentKey]; !ok {
			violations = append(violations, errors.NewUnknownParent(key, entry.ParentKey))
			continue
		}
		if err := g.AddDependency(key, entry.ParentKey); err != nil {
			if ce := dag.AsCycleError[string](err); ce != nil {
				violations = append(violations, errors.NewParentCycle(ce.Path))
			}
		}
	}
	return violations
}

// checkMethods verifies resource references, the verb set, the mode set, and
// that a required authorizer is resolvable through at least one path.
func checkMethods(snap *definition.Snapshot) errors.ViolationList {
	var violations errors.ViolationList

	for _, key := range definition.SortedKeys(snap.Methods) {
		entry := snap.Methods[key]
		if entry.ResourceKey != "" {
			if _, ok := snap.Resources[entry.ResourceKey]; !ok {
				violations = append(violations, errors.NewUnknownResource(key, entry.ResourceKey))
			}
		}
		if !entry.HTTPMethod.Valid() {
			violations = append(violations, errors.NewInvalidHTTPMethod(key, string(entry.HTTPMethod)))
		}
		if !entry.Authorization.Valid() {
			violations = append(violations, errors.NewInvalidAuthorizationMode(key, string(entry.Authorization)))
			continue
		}
		if _, err := resolver.ResolveAuthorizer(entry, snap.Authorizers); err != nil {
			violations = append(violations, errors.NewAuthorizerUnresolvable(key, string(entry.Authorization)))
		}
	}
	return violations
}

// checkIntegrations verifies method references, the integration type set,
// and the one-backend-per-method invariant.
func checkIntegrations(snap *definition.Snapshot) errors.ViolationList {
	var violations errors.ViolationList

	firstByMethod := make(map[string]string)
	for _, key := range definition.SortedKeys(snap.Integrations) {
		entry := snap.Integrations[key]
		if _, ok := snap.Methods[entry.MethodKey]; !ok {
			violations = append(violations, errors.NewUnknownMethod("integration", key, entry.MethodKey))
		}
		if !entry.Type.Valid() {
			violations = append(violations, errors.NewInvalidIntegrationType(key, string(entry.Type)))
		}
		if first, dup := firstByMethod[entry.MethodKey]; dup {
			violations = append(violations, errors.NewDuplicateIntegration(key, first, entry.MethodKey))
		} else {
			firstByMethod[entry.MethodKey] = key
		}
	}
	return violations
}

func checkMethodResponses(snap *definition.Snapshot) errors.ViolationList {
	var violations errors.ViolationList

	for _, key := range definition.SortedKeys(snap.MethodResponses) {
		entry := snap.MethodResponses[key]
		if _, ok := snap.Methods[entry.MethodKey]; !ok {
			violations = append(violations, errors.NewUnknownMethod("method response", key, entry.MethodKey))
		}
		if !statusCodePattern.MatchString(entry.StatusCode) {
			violations = append(violations, errors.NewInvalidStatusCode("method response", key, entry.StatusCode))
		}
	}
	return violations
}

func checkIntegrationResponses(snap *definition.Snapshot) errors.ViolationList {
	var violations errors.ViolationList

	for _, key := range definition.SortedKeys(snap.IntegrationResponses) {
		entry := snap.IntegrationResponses[key]
		if _, ok := snap.MethodResponses[entry.MethodResponseKey]; !ok {
			violations = append(violations, errors.NewUnknownMethodResponse(key, entry.MethodResponseKey))
		}
		if !statusCodePattern.MatchString(entry.StatusCode) {
			violations = append(violations, errors.NewInvalidStatusCode("integration response", key, entry.StatusCode))
		}
	}
	return violations
}

// buildView computes the derived indexes for a snapshot known to be clean.
func buildView(snap *definition.Snapshot) *View {
	view := &View{
		ChildrenByParent:               make(map[string][]string),
		IntegrationByMethod:            make(map[string]string),
		ResponsesByMethod:              make(map[string][]string),
		IntegrationResponsesByResponse: make(map[string][]string),
	}
	for key, entry := range snap.Resources {
		view.ChildrenByParent[entry.ParentKey] = append(view.ChildrenByParent[entry.ParentKey], key)
	}
	for key, entry := range snap.Integrations {
		view.IntegrationByMethod[entry.MethodKey] = key
	}
	for key, entry := range snap.MethodResponses {
		view.ResponsesByMethod[entry.MethodKey] = append(view.ResponsesByMethod[entry.MethodKey], key)
	}
	for key, entry := range snap.IntegrationResponses {
		view.IntegrationResponsesByResponse[entry.MethodResponseKey] = append(view.IntegrationResponsesByResponse[entry.MethodResponseKey], key)
	}
	for _, children := range view.ChildrenByParent {
		sort.Strings(children)
	}
	for _, responses := range view.ResponsesByMethod {
		sort.Strings(responses)
	}
	for _, irs := range view.IntegrationResponsesByResponse {
		sort.Strings(irs)
	}
	return view
}
