package deploy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restgraph/restgraph/compiler"
)

// Trigger turns compiled results into deployment records.
type Trigger struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

// TriggerOption configures a Trigger.
type TriggerOption func(*Trigger)

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) TriggerOption {
	return func(t *Trigger) {
		t.log = log
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) TriggerOption {
	return func(t *Trigger) {
		t.now = now
	}
}

// NewTrigger creates a Trigger over the given history store.
func NewTrigger(store Store, opts ...TriggerOption) *Trigger {
	t := &Trigger{
		store: store,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cut produces the deployment record for the result's fingerprint. When the
// fingerprint has already been observed for the API the existing record is
// returned and created is false, whatever its state: an unchanged
// fingerprint never cuts twice. A compiled Result implies all response
// wiring is resolved, so the record may legitimately depend on it.
func (t *Trigger) Cut(ctx context.Context, apiID string, result *compiler.Result) (d *Deployment, created bool, err error) {
	existing, err := t.store.Get(ctx, apiID, result.Fingerprint)
	if err == nil {
		t.log.Debug("fingerprint unchanged, deployment is a no-op",
			zap.String("api_id", apiID),
			zap.String("fingerprint", result.Fingerprint),
		)
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("looking up deployment history: %w", err)
	}

	d = &Deployment{
		ID:          uuid.NewString(),
		APIID:       apiID,
		Fingerprint: result.Fingerprint,
		State:       StatePending,
		CreatedAt:   t.now().UTC(),
	}
	if err := t.store.Put(ctx, d); err != nil {
		return nil, false, fmt.Errorf("recording deployment: %w", err)
	}
	t.log.Info("deployment cut",
		zap.String("api_id", apiID),
		zap.String("deployment_id", d.ID),
		zap.String("fingerprint", d.Fingerprint),
	)
	return d, true, nil
}

// MarkDeployed transitions a pending record to the terminal deployed state
// once the external collaborator reports success. Marking an already
// deployed record again is a no-op.
func (t *Trigger) MarkDeployed(ctx context.Context, d *Deployment) error {
	if d.State == StateDeployed {
		return nil
	}
	d.State = StateDeployed
	d.DeployedAt = t.now().UTC()
	if err := t.store.Put(ctx, d); err != nil {
		return fmt.Errorf("recording deployment state: %w", err)
	}
	return nil
}
