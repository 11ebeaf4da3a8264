package dispatch

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/canonicalize"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
	"github.com/google/uuid"
)

// SnapshotNamespace is the UUID namespace for snapshot identifiers.
var SnapshotNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/EDDiscovery/EliteDangerousCore/snapshot"))

// Snapshot is an immutable, published set of projection views.
//
// Hash and ID are derived from the canonical content only, so two folds of
// the same records produce the same Hash and ID whatever their Version.
type Snapshot struct {
	Version uint64    `json:"version"`
	ID      uuid.UUID `json:"id"`
	Hash    string    `json:"hash"`
	// Events is the number of events folded into the set, merged
	// constituents counted individually.
	Events  int    `json:"events"`
	LastSeq uint64 `json:"last_seq"`

	// Views holds each projection's Snapshot value by name.
	Views map[string]any `json:"-"`
	// Parts holds each view's canonical JSON.
	Parts map[string]json.RawMessage `json:"-"`
	// Canonical is the RFC 8785 encoding of Parts as one object.
	Canonical []byte `json:"-"`

	projections []projection.Projection
}

// View returns the named projection view.
func (s *Snapshot) View(name string) (any, bool) {
	v, ok := s.Views[name]
	return v, ok
}

// ViewAs returns the named view asserted to T.
func ViewAs[T any](s *Snapshot, name string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.Views[name]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Names returns the projection names in fold order.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.projections))
	for i, p := range s.projections {
		out[i] = p.Name()
	}
	return out
}

func buildSnapshot(version uint64, events int, lastSeq uint64, projections []projection.Projection) (*Snapshot, error) {
	s := &Snapshot{
		Version:     version,
		Events:      events,
		LastSeq:     lastSeq,
		Views:       make(map[string]any, len(projections)),
		Parts:       make(map[string]json.RawMessage, len(projections)),
		projections: projections,
	}
	for _, p := range projections {
		view := p.Snapshot()
		b, err := canonicalize.JCS(view)
		if err != nil {
			return nil, fmt.Errorf("canonicalize %s: %w", p.Name(), err)
		}
		s.Views[p.Name()] = view
		s.Parts[p.Name()] = b
	}
	canonical, err := canonicalize.JCS(maps.Clone(s.Parts))
	if err != nil {
		return nil, fmt.Errorf("canonicalize snapshot: %w", err)
	}
	s.Canonical = canonical
	s.Hash = canonicalize.HashBytes(canonical)
	s.ID = uuid.NewSHA1(SnapshotNamespace, []byte(s.Hash))
	return s, nil
}
