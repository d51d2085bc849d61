// Package compiler resolves a flat, key-referenced REST API definition into
// a validated, dependency-ordered resource graph and a deterministic change
// fingerprint.
//
// A compilation pass is pure and synchronous: it performs no I/O, consumes an
// immutable snapshot, and either returns the full list of validation
// violations or a complete Result, never a partial graph. Concurrent passes
// over distinct snapshots are safe.
package compiler

import (
	"go.uber.org/zap"

	"github.com/restgraph/restgraph/compiler/definition"
	"github.com/restgraph/restgraph/compiler/errors"
	"github.com/restgraph/restgraph/internal/compiler/fingerprint"
	"github.com/restgraph/restgraph/internal/compiler/resolver"
	"github.com/restgraph/restgraph/internal/compiler/validator"
)

// Compiler runs compilation passes. The zero value is usable; New applies
// options.
type Compiler struct {
	log *zap.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger attaches a structured logger. Compilation stays silent without
// one.
func WithLogger(log *zap.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile validates and resolves one snapshot. On validation failure the
// returned error is an errors.ViolationList carrying every violation found;
// no graph or fingerprint is produced.
func (c *Compiler) Compile(snap *definition.Snapshot) (*Result, error) {
	view, violations := validator.Validate(snap)
	if violations.HasViolations() {
		c.log.Warn("compilation failed",
			zap.Int("violations", len(violations)),
		)
		return nil, violations
	}

	tree, err := resolver.ResolveTree(snap.Resources)
	if err != nil {
		// Unreachable after validation; surfaced rather than swallowed.
		return nil, err
	}

	result := &Result{
		Resources:            make([]Resource, 0, len(tree.Order)),
		Methods:              make(map[string]Method, len(snap.Methods)),
		Integrations:         make(map[string]Integration, len(snap.Integrations)),
		MethodResponses:      make(map[string]MethodResponse, len(snap.MethodResponses)),
		IntegrationResponses: make(map[string]IntegrationResponse, len(snap.IntegrationResponses)),
		Stage:                snap.Stage,
	}

	for _, key := range tree.Order {
		node := tree.Nodes[key]
		result.Resources = append(result.Resources, Resource{
			Key:       node.Key,
			PathPart:  node.PathPart,
			ParentKey: node.ParentKey,
			Ancestors: node.Ancestors,
			Path:      node.Path,
		})
	}

	for _, key := range definition.SortedKeys(snap.Methods) {
		entry := snap.Methods[key]
		authorizerID, err := resolver.ResolveAuthorizer(entry, snap.Authorizers)
		if err != nil {
			// Unreachable after validation; surfaced rather than swallowed.
			return nil, err
		}
		result.Methods[key] = Method{
			Key:                 key,
			ResourceKey:         entry.ResourceKey,
			HTTPMethod:          entry.HTTPMethod,
			Authorization:       entry.Authorization,
			AuthorizerID:        authorizerID,
			AuthorizationScopes: entry.AuthorizationScopes,
			APIKeyRequired:      entry.APIKeyRequired,
			OperationName:       entry.OperationName,
			RequestParameters:   entry.RequestParameters,
			RequestModels:       entry.RequestModels,
		}
	}

	for _, key := range definition.SortedKeys(snap.Integrations) {
		entry := snap.Integrations[key]
		result.Integrations[key] = Integration{
			Key:                   key,
			MethodKey:             entry.MethodKey,
			Type:                  entry.Type,
			URI:                   entry.URI,
			IntegrationHTTPMethod: entry.IntegrationHTTPMethod,
			TimeoutMilliseconds:   entry.TimeoutMilliseconds,
			PassthroughBehavior:   entry.PassthroughBehavior,
			ContentHandling:       entry.ContentHandling,
			RequestTemplates:      entry.RequestTemplates,
			RequestParameters:     entry.RequestParameters,
			CacheKeyParameters:    entry.CacheKeyParameters,
			CacheNamespace:        entry.CacheNamespace,
		}
	}

	for _, key := range definition.SortedKeys(snap.MethodResponses) {
		entry := snap.MethodResponses[key]
		result.MethodResponses[key] = MethodResponse{
			Key:                     key,
			MethodKey:               entry.MethodKey,
			StatusCode:              entry.StatusCode,
			ResponseModels:          entry.ResponseModels,
			ResponseParameters:      entry.ResponseParameters,
			IntegrationResponseKeys: view.IntegrationResponsesByResponse[key],
		}
	}

	for _, key := range definition.SortedKeys(snap.IntegrationResponses) {
		entry := snap.IntegrationResponses[key]
		result.IntegrationResponses[key] = IntegrationResponse{
			Key:                key,
			MethodResponseKey:  entry.MethodResponseKey,
			StatusCode:         entry.StatusCode,
			SelectionPattern:   entry.SelectionPattern,
			ResponseTemplates:  entry.ResponseTemplates,
			ResponseParameters: entry.ResponseParameters,
			ContentHandling:    entry.ContentHandling,
		}
	}

	fp, err := fingerprint.Compute(snap)
	if err != nil {
		return nil, err
	}
	result.Fingerprint = fp

	c.log.Info("compilation succeeded",
		zap.Int("resources", len(result.Resources)),
		zap.Int("methods", len(result.Methods)),
		zap.String("fingerprint", fp),
	)
	return result, nil
}

// Compile runs a single pass with a default Compiler.
func Compile(snap *definition.Snapshot) (*Result, error) {
	return New().Compile(snap)
}

// Violations extracts the violation list from a Compile error, or nil when
// err is not a validation failure.
func Violations(err error) errors.ViolationList {
	if vl, ok := err.(errors.ViolationList); ok {
		return vl
	}
	return nil
}
