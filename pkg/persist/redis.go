package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
	"github.com/redis/go-redis/v9"
)

// RedisPersister keeps the latest snapshot in redis for readers that do
// not replay.
type RedisPersister struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisPersister wraps client. Keys expire after ttl; zero keeps them.
func NewRedisPersister(client *redis.Client, prefix string, ttl time.Duration) *RedisPersister {
	return &RedisPersister{client: client, prefix: prefix, ttl: ttl}
}

func (p *RedisPersister) latestKey() string { return p.prefix + "snapshot:latest" }

// Persist writes the body and manifest in one transaction.
func (p *RedisPersister) Persist(ctx context.Context, snap *dispatch.Snapshot) error {
	rec := RecordOf(snap)
	hex, err := hashKey(rec.Hash)
	if err != nil {
		return err
	}
	manifest, err := json.Marshal(rec.manifest())
	if err != nil {
		return err
	}
	pipe := p.client.TxPipeline()
	pipe.Set(ctx, p.prefix+"snapshot:"+hex, []byte(rec.Body), p.ttl)
	pipe.Set(ctx, p.latestKey(), manifest, p.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis persist failed: %w", err)
	}
	return nil
}

// Latest loads and verifies the latest snapshot.
func (p *RedisPersister) Latest(ctx context.Context) (*Record, error) {
	data, err := p.client.Get(ctx, p.latestKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse snapshot manifest: %w", err)
	}
	hex, err := hashKey(rec.Hash)
	if err != nil {
		return nil, err
	}
	body, err := p.client.Get(ctx, p.prefix+"snapshot:"+hex).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	rec.Body = body
	if err := rec.Verify(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Close closes the client.
func (p *RedisPersister) Close() error { return p.client.Close() }
