// Package dispatch folds ordered events into the projections and publishes
// the result as an immutable snapshot set.
//
// A fold runs on private working state: a fresh projection set for Replay,
// clones of the committed set for Append. The new snapshot is published with
// one atomic pointer swap once every event has been applied, so readers
// calling Current never see a partial fold. Any fault discards the working
// state and leaves the previous snapshot authoritative.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/observability"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Persister stores a committed snapshot.
type Persister interface {
	Persist(ctx context.Context, snap *Snapshot) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithProjections replaces the default projection set.
func WithProjections(factories ...projection.Factory) Option {
	return func(d *Dispatcher) { d.factories = factories }
}

// WithMaxEvents bounds the number of events a single Replay or Append may
// fold. Zero means unlimited.
func WithMaxEvents(n int) Option {
	return func(d *Dispatcher) { d.maxEvents = n }
}

// WithPersister stores every committed snapshot.
func WithPersister(p Persister) Option {
	return func(d *Dispatcher) { d.persister = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithTracer sets the tracer.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) { d.tracer = t }
}

// WithMetrics sets the replay instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithObserver registers a state transition observer.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// WithClock overrides the clock for testing.
func WithClock(clock func() time.Time) Option {
	return func(d *Dispatcher) { d.clock = clock }
}

// Dispatcher is the replay state machine.
type Dispatcher struct {
	factories []projection.Factory
	maxEvents int
	persister Persister
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *observability.Metrics
	observer  Observer
	clock     func() time.Time

	current atomic.Pointer[Snapshot]
	state   atomic.Int32

	mu         sync.Mutex // serializes writers
	persistErr error
}

// New creates a dispatcher. Projection names must be unique.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		factories: DefaultProjections(),
		logger:    slog.Default(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("component", "dispatch")
	if d.tracer == nil {
		d.tracer = observability.Tracer()
	}
	if len(d.factories) == 0 {
		return nil, errors.New("dispatch: no projections configured")
	}
	seen := make(map[string]bool, len(d.factories))
	for _, f := range d.factories {
		name := f().Name()
		if seen[name] {
			return nil, fmt.Errorf("dispatch: duplicate projection %q", name)
		}
		seen[name] = true
	}
	return d, nil
}

// Current returns the last committed snapshot, or nil before the first
// commit. It never blocks.
func (d *Dispatcher) Current() *Snapshot {
	return d.current.Load()
}

// State returns the current lifecycle state.
func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// PersistErr returns the error of the most recent persist attempt.
func (d *Dispatcher) PersistErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.persistErr
}

// Replay folds events into a fresh projection set and publishes it.
func (d *Dispatcher) Replay(ctx context.Context, events []event.Event) (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	working := make([]projection.Projection, len(d.factories))
	for i, f := range d.factories {
		working[i] = f()
	}
	return d.run(ctx, "dispatch.replay", working, 0, 0, events)
}

// Append folds events onto clones of the committed projections. Before the
// first commit it behaves like Replay.
func (d *Dispatcher) Append(ctx context.Context, events []event.Event) (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	base := d.current.Load()
	if base == nil {
		working := make([]projection.Projection, len(d.factories))
		for i, f := range d.factories {
			working[i] = f()
		}
		return d.run(ctx, "dispatch.append", working, 0, 0, events)
	}
	working := make([]projection.Projection, len(base.projections))
	for i, p := range base.projections {
		working[i] = p.Clone()
	}
	return d.run(ctx, "dispatch.append", working, base.Events, base.LastSeq, events)
}

func (d *Dispatcher) run(ctx context.Context, op string, working []projection.Projection, folded int, lastSeq uint64, events []event.Event) (*Snapshot, error) {
	start := d.clock()
	flat := event.Flatten(events)

	ctx, span := d.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.Int("events", len(flat)),
		attribute.Int("projections", len(working)),
	))
	defer span.End()

	d.transition(Replaying)

	applied, lastSeq, fault := d.fold(ctx, working, flat, lastSeq)
	if fault != nil {
		return nil, d.abort(ctx, span, fault)
	}

	var version uint64 = 1
	if prev := d.current.Load(); prev != nil {
		version = prev.Version + 1
	}
	snap, err := buildSnapshot(version, folded+len(flat), lastSeq, working)
	if err != nil {
		return nil, d.abort(ctx, span, &ReplayFault{Stage: StageSnapshot, Cause: err})
	}

	d.current.Store(snap)
	d.transition(Committed)

	for name, n := range applied {
		d.metrics.RecordApplied(ctx, name, n)
	}
	d.metrics.RecordCommit(ctx, d.clock().Sub(start))
	span.SetAttributes(attribute.String("snapshot.hash", snap.Hash), attribute.Int64("snapshot.version", int64(snap.Version)))
	d.logger.DebugContext(ctx, "snapshot committed",
		"version", snap.Version,
		"events", snap.Events,
		"hash", snap.Hash,
	)

	if d.persister != nil {
		d.persistErr = d.persister.Persist(ctx, snap)
		if d.persistErr != nil {
			span.RecordError(d.persistErr)
			d.logger.ErrorContext(ctx, "snapshot persist failed", "version", snap.Version, "error", d.persistErr)
		}
	}
	return snap, nil
}

func (d *Dispatcher) fold(ctx context.Context, working []projection.Projection, flat []event.Event, lastSeq uint64) (map[string]int, uint64, *ReplayFault) {
	applied := make(map[string]int, len(working))
	for i, ev := range flat {
		h := ev.Head()
		if err := ctx.Err(); err != nil {
			return nil, 0, &ReplayFault{Stage: StageCancelled, Seq: h.SequenceID, Cause: err, Retryable: true}
		}
		if d.maxEvents > 0 && i >= d.maxEvents {
			return nil, 0, &ReplayFault{Stage: StageBudget, Seq: h.SequenceID, Cause: fmt.Errorf("%w: limit %d", ErrBudgetExceeded, d.maxEvents)}
		}

		caps := ev.Capabilities()
		if len(h.Degraded) > 0 {
			caps |= event.CapDiagnostic
		}
		for _, p := range working {
			if !caps.Has(p.Interest()) {
				continue
			}
			if err := applyOne(p, ev); err != nil {
				return nil, 0, &ReplayFault{Stage: StageApply, Seq: h.SequenceID, Cause: err}
			}
			applied[p.Name()]++
		}
		if h.SequenceID > lastSeq {
			lastSeq = h.SequenceID
		}
	}
	return applied, lastSeq, nil
}

func applyOne(p projection.Projection, ev event.Event) (err error) {
	h := ev.Head()
	defer func() {
		if r := recover(); r != nil {
			err = &projection.ApplyError{Projection: p.Name(), Seq: h.SequenceID, Type: h.Type, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := p.Apply(ev); err != nil {
		var ae *projection.ApplyError
		if errors.As(err, &ae) {
			return err
		}
		return &projection.ApplyError{Projection: p.Name(), Seq: h.SequenceID, Type: h.Type, Err: err}
	}
	return nil
}

func (d *Dispatcher) abort(ctx context.Context, span trace.Span, fault *ReplayFault) error {
	d.transition(Aborted)
	if d.current.Load() != nil {
		d.transition(Committed)
	} else {
		d.transition(Idle)
	}
	span.RecordError(fault)
	span.SetStatus(codes.Error, fault.Stage)
	d.metrics.RecordFault(ctx, fault.Stage)
	d.logger.WarnContext(ctx, "replay aborted",
		"stage", fault.Stage,
		"seq", fault.Seq,
		"retryable", fault.Retryable,
		"error", fault.Cause,
	)
	return fault
}

func (d *Dispatcher) transition(to State) {
	from := State(d.state.Swap(int32(to)))
	if d.observer != nil && from != to {
		d.observer(from, to)
	}
}
