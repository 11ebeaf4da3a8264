// Package persist stores committed snapshots.
//
// Every backend stores the same Record: snapshot metadata plus the
// canonical body. Blob stores (filesystem, S3, GCS) address bodies by
// content hash and keep a "latest" manifest; the SQL store keeps one row
// per distinct snapshot; redis keeps the latest snapshot for fast readers.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/canonicalize"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
)

// ErrNotFound is returned when no snapshot has been stored.
var ErrNotFound = errors.New("persist: snapshot not found")

// Record is the stored form of a snapshot.
type Record struct {
	ID          string          `json:"id"`
	Hash        string          `json:"hash"`
	Version     uint64          `json:"version"`
	Events      int             `json:"events"`
	LastSeq     uint64          `json:"last_seq"`
	Projections []string        `json:"projections"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// RecordOf builds the record for snap.
func RecordOf(snap *dispatch.Snapshot) Record {
	return Record{
		ID:          snap.ID.String(),
		Hash:        snap.Hash,
		Version:     snap.Version,
		Events:      snap.Events,
		LastSeq:     snap.LastSeq,
		Projections: snap.Names(),
		Body:        snap.Canonical,
	}
}

// Verify checks the body against the recorded hash.
func (r *Record) Verify() error {
	if got := canonicalize.HashBytes(r.Body); got != r.Hash {
		return fmt.Errorf("persist: snapshot %s: body hash %s does not match", r.ID, got)
	}
	return nil
}

// manifest is the record without its body.
func (r Record) manifest() Record {
	r.Body = nil
	return r
}

// hashKey turns "sha256:<hex>" into "<hex>".
func hashKey(hash string) (string, error) {
	hex, ok := strings.CutPrefix(hash, "sha256:")
	if !ok || hex == "" {
		return "", fmt.Errorf("invalid hash format: %s", hash)
	}
	return hex, nil
}
