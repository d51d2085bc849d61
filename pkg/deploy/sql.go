package deploy

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore persists deployment history in a relational database through
// database/sql. Statements use $n placeholders and ON CONFLICT upserts, so
// any PostgreSQL-compatible driver (pgx stdlib, lib/pq) works.
//
// Expected schema:
//
//	CREATE TABLE deployments (
//	    id          TEXT PRIMARY KEY,
//	    api_id      TEXT NOT NULL,
//	    fingerprint TEXT NOT NULL,
//	    state       TEXT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL,
//	    deployed_at TIMESTAMPTZ,
//	    UNIQUE (api_id, fingerprint)
//	);
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a store over an open database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, apiID, fingerprint string) (*Deployment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, api_id, fingerprint, state, created_at, deployed_at
		 FROM deployments WHERE api_id = $1 AND fingerprint = $2`,
		apiID, fingerprint,
	)
	d, err := scanDeployment(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sql deployment lookup: %w", err)
	}
	return d, nil
}

// Put implements Store.
func (s *SQLStore) Put(ctx context.Context, d *Deployment) error {
	var deployedAt interface{}
	if !d.DeployedAt.IsZero() {
		deployedAt = d.DeployedAt
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deployments (id, api_id, fingerprint, state, created_at, deployed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (api_id, fingerprint)
		 DO UPDATE SET state = EXCLUDED.state, deployed_at = EXCLUDED.deployed_at`,
		d.ID, d.APIID, d.Fingerprint, string(d.State), d.CreatedAt, deployedAt,
	)
	if err != nil {
		return fmt.Errorf("sql deployment write: %w", err)
	}
	return nil
}

// List implements Store.
func (s *SQLStore) List(ctx context.Context, apiID string) ([]*Deployment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, api_id, fingerprint, state, created_at, deployed_at
		 FROM deployments WHERE api_id = $1 ORDER BY created_at DESC`,
		apiID,
	)
	if err != nil {
		return nil, fmt.Errorf("sql deployment scan: %w", err)
	}
	defer rows.Close()

	var out []*Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, fmt.Errorf("sql deployment scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql deployment scan: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeployment(row rowScanner) (*Deployment, error) {
	var (
		d          Deployment
		state      string
		deployedAt sql.NullTime
	)
	if err := row.Scan(&d.ID, &d.APIID, &d.Fingerprint, &state, &d.CreatedAt, &deployedAt); err != nil {
		return nil, err
	}
	d.State = State(state)
	if deployedAt.Valid {
		d.DeployedAt = deployedAt.Time.UTC()
	} else {
		d.DeployedAt = time.Time{}
	}
	return &d, nil
}
