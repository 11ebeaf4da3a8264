package persist

import (
	"context"
	"errors"
	"io"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
)

// Multi fans a snapshot out to several persisters. Every member is tried;
// failures are joined.
type Multi struct {
	members []dispatch.Persister
}

// NewMulti combines members.
func NewMulti(members ...dispatch.Persister) *Multi {
	return &Multi{members: members}
}

// Len returns the number of members.
func (m *Multi) Len() int { return len(m.members) }

func (m *Multi) Persist(ctx context.Context, snap *dispatch.Snapshot) error {
	var errs []error
	for _, p := range m.members {
		if err := p.Persist(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every member that holds resources.
func (m *Multi) Close() error {
	var errs []error
	for _, p := range m.members {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Loader reads back the latest stored snapshot.
type Loader interface {
	Latest(ctx context.Context) (*Record, error)
}

// Latest returns the first snapshot a member can load, in member order.
func (m *Multi) Latest(ctx context.Context) (*Record, error) {
	var errs []error
	for _, p := range m.members {
		l, ok := p.(Loader)
		if !ok {
			continue
		}
		rec, err := l.Latest(ctx)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, ErrNotFound) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNotFound
}
