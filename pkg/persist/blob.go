package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
)

// BlobStore is a flat key/value object store.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	// Get returns ErrNotFound for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

const latestKey = "latest.json"

// BlobPersister writes snapshot bodies under their content hash and
// points latest.json at the most recent one.
type BlobPersister struct {
	store  BlobStore
	prefix string
}

// NewBlobPersister creates a persister over store. prefix is prepended to
// every key.
func NewBlobPersister(store BlobStore, prefix string) *BlobPersister {
	return &BlobPersister{store: store, prefix: prefix}
}

func (p *BlobPersister) bodyKey(hash string) (string, error) {
	hex, err := hashKey(hash)
	if err != nil {
		return "", err
	}
	return p.prefix + "snapshots/" + hex + ".json", nil
}

// Persist stores snap. Bodies already present are not rewritten.
func (p *BlobPersister) Persist(ctx context.Context, snap *dispatch.Snapshot) error {
	rec := RecordOf(snap)
	key, err := p.bodyKey(rec.Hash)
	if err != nil {
		return err
	}
	exists, err := p.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check snapshot body: %w", err)
	}
	if !exists {
		if err := p.store.Put(ctx, key, rec.Body); err != nil {
			return fmt.Errorf("store snapshot body: %w", err)
		}
	}
	manifest, err := json.Marshal(rec.manifest())
	if err != nil {
		return err
	}
	if err := p.store.Put(ctx, p.prefix+latestKey, manifest); err != nil {
		return fmt.Errorf("store snapshot manifest: %w", err)
	}
	return nil
}

// Latest loads and verifies the most recent snapshot.
func (p *BlobPersister) Latest(ctx context.Context) (*Record, error) {
	data, err := p.store.Get(ctx, p.prefix+latestKey)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse snapshot manifest: %w", err)
	}
	key, err := p.bodyKey(rec.Hash)
	if err != nil {
		return nil, err
	}
	if rec.Body, err = p.store.Get(ctx, key); err != nil {
		return nil, err
	}
	if err := rec.Verify(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FileBlobStore keeps blobs as files under a base directory.
type FileBlobStore struct {
	baseDir string
	mu      sync.RWMutex
}

// NewFileBlobStore creates the base directory if needed.
func NewFileBlobStore(baseDir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure snapshot dir: %w", err)
	}
	return &FileBlobStore{baseDir: baseDir}, nil
}

func (s *FileBlobStore) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

// Put writes through a temp file and rename.
func (s *FileBlobStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit blob: %w", err)
	}
	return nil
}

func (s *FileBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *FileBlobStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
