package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists deployment history in Redis: one JSON value per
// (api id, fingerprint) pair under a hash per API, so history survives the
// process and is shared across planners.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisStore creates a store over an existing client. keyPrefix namespaces
// the hashes; empty defaults to "restgraph:deployments".
func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "restgraph:deployments"
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) apiKey(apiID string) string {
	return s.keyPrefix + ":" + apiID
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, apiID, fingerprint string) (*Deployment, error) {
	raw, err := s.client.HGet(ctx, s.apiKey(apiID), fingerprint).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis deployment lookup: %w", err)
	}
	var d Deployment
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decoding deployment record: %w", err)
	}
	return &d, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, d *Deployment) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding deployment record: %w", err)
	}
	if err := s.client.HSet(ctx, s.apiKey(d.APIID), d.Fingerprint, raw).Err(); err != nil {
		return fmt.Errorf("redis deployment write: %w", err)
	}
	return nil
}

// List implements Store.
func (s *RedisStore) List(ctx context.Context, apiID string) ([]*Deployment, error) {
	values, err := s.client.HGetAll(ctx, s.apiKey(apiID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis deployment scan: %w", err)
	}
	out := make([]*Deployment, 0, len(values))
	for _, raw := range values {
		var d Deployment
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			return nil, fmt.Errorf("decoding deployment record: %w", err)
		}
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
