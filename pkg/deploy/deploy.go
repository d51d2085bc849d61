// Package deploy cuts deployment records from compiled API definitions:
// exactly one record per distinct change fingerprint per API. Re-triggering
// with an unchanged fingerprint is a no-op. Provisioning failures belong to
// the external collaborator that performs the actual deployment; there is no
// Failed state and no retry here.
package deploy

import (
	"context"
	"errors"
	"time"
)

// State is the lifecycle state of a deployment record.
type State string

const (
	// StatePending means the graph is resolved and the fingerprint computed,
	// but the external collaborator has not deployed it yet.
	StatePending State = "pending"
	// StateDeployed is terminal for a fingerprint.
	StateDeployed State = "deployed"
)

// Deployment is one immutable, versioned artifact: "this exact API shape".
type Deployment struct {
	// ID is a unique record identifier.
	ID string `json:"id"`
	// APIID identifies the API the record belongs to.
	APIID string `json:"api_id"`
	// Fingerprint is the change fingerprint the record was cut for.
	Fingerprint string `json:"fingerprint"`
	// State is pending or deployed.
	State State `json:"state"`
	// CreatedAt is when the record was cut.
	CreatedAt time.Time `json:"created_at"`
	// DeployedAt is when the record reached the deployed state.
	DeployedAt time.Time `json:"deployed_at,omitempty"`
}

// ErrNotFound is returned by stores when no record exists for an API id and
// fingerprint pair.
var ErrNotFound = errors.New("deployment not found")

// Store persists deployment history. All implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the record for the pair, or ErrNotFound.
	Get(ctx context.Context, apiID, fingerprint string) (*Deployment, error)
	// Put inserts or replaces the record for its pair.
	Put(ctx context.Context, d *Deployment) error
	// List returns every record for the API, newest first.
	List(ctx context.Context, apiID string) ([]*Deployment, error)
}
