// Package projection defines the contract shared by the derived stores the
// dispatcher folds the event sequence into.
//
// A projection owns its state exclusively. The dispatcher applies events to
// a private working copy (a fresh projection for a full replay, a Clone of
// the committed one for an append) and only publishes that copy once the
// whole batch has been folded, so Apply may mutate its receiver freely.
package projection

import (
	"fmt"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Projection is one derived store.
type Projection interface {
	// Name identifies the projection in snapshots and persisted records.
	Name() string
	// Interest is the capability set the projection consumes. The
	// dispatcher only calls Apply for events sharing a bit with it.
	Interest() event.Capability
	// Apply folds one event into the state. Merged events never reach
	// Apply; the dispatcher hands over their members one by one.
	Apply(ev event.Event) error
	// Clone returns an independent deep copy.
	Clone() Projection
	// Snapshot returns an immutable, JSON-encodable view of the state.
	Snapshot() any
}

// Factory builds an empty projection.
type Factory func() Projection

// ApplyError reports a projection that rejected an event.
type ApplyError struct {
	Projection string
	Seq        uint64
	Type       event.Type
	Err        error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("projection %s: event %d (%s): %v", e.Projection, e.Seq, e.Type, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }
