// Package session runs a journal end to end: raw records in, a committed
// snapshot set out.
//
// The stages are prescan (decode contexts), parallel decode, time repair
// and stable sort, side-file reconciliation, scan valuation, merge and
// dispatch. Only decode runs in parallel; every later stage depends on
// total event order.
package session

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/decode"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/merge"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/observability"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/sidefile"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/valuation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// decodeBatch is the number of records one decode task handles.
const decodeBatch = 256

// Result is the outcome of one run.
type Result struct {
	Snapshot *dispatch.Snapshot
	// Events is the ordered, merged sequence that was dispatched.
	Events []event.Event

	Records   int
	Residuals int
	// DecodeErrors holds the failures behind residuals of known types.
	DecodeErrors   []*decode.DecodeError
	SideFileErrors []*sidefile.SideFileError
	// OutOfOrder lists sequence ids of records stamped earlier than a
	// record before them.
	OutOfOrder []uint64
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the decode parallelism. Zero or less uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithDecoder replaces the default decoder.
func WithDecoder(d *decode.Decoder) Option {
	return func(p *Pipeline) { p.decoder = d }
}

// WithMerger replaces the default merge engine.
func WithMerger(m *merge.Engine) Option {
	return func(p *Pipeline) { p.merger = m }
}

// WithSideFiles enables side-file reconciliation from src.
func WithSideFiles(src sidefile.Source) Option {
	return func(p *Pipeline) { p.sideFiles = src }
}

// WithDispatcher replaces the default dispatcher.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(p *Pipeline) { p.dispatcher = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTracer sets the tracer.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// WithMetrics sets the replay instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithDiagnosticRate bounds how many per-record diagnostics are logged.
func WithDiagnosticRate(limit rate.Limit, burst int) Option {
	return func(p *Pipeline) { p.limiter = rate.NewLimiter(limit, burst) }
}

// Pipeline wires the stages together. A Pipeline may be reused; Run calls
// are serialized by the dispatcher.
type Pipeline struct {
	workers    int
	decoder    *decode.Decoder
	merger     *merge.Engine
	valuer     *valuation.Engine
	sideFiles  sidefile.Source
	reconciler *sidefile.Reconciler
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *observability.Metrics
	limiter    *rate.Limiter
}

// New builds a pipeline with default stages.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		valuer:  valuation.New(),
		logger:  slog.Default(),
		limiter: rate.NewLimiter(rate.Every(time.Second), 20),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "session")
	if p.workers <= 0 {
		p.workers = runtime.GOMAXPROCS(0)
	}
	if p.tracer == nil {
		p.tracer = observability.Tracer()
	}
	if p.decoder == nil {
		p.decoder = decode.New(decode.WithLogger(p.logger))
	}
	if p.merger == nil {
		p.merger = merge.New(merge.WithLogger(p.logger))
	}
	if p.dispatcher == nil {
		d, err := dispatch.New(dispatch.WithLogger(p.logger), dispatch.WithTracer(p.tracer), dispatch.WithMetrics(p.metrics))
		if err != nil {
			return nil, err
		}
		p.dispatcher = d
	}
	if p.sideFiles != nil {
		r, err := sidefile.New(p.decoder, p.sideFiles, sidefile.WithLogger(p.logger))
		if err != nil {
			return nil, err
		}
		p.reconciler = r
	}
	return p, nil
}

// Dispatcher returns the dispatcher holding the committed snapshot.
func (p *Pipeline) Dispatcher() *dispatch.Dispatcher { return p.dispatcher }

// Run processes records, given in journal order, and commits the result.
// Decode and side-file failures are reported in the Result; only a
// dispatch fault or cancellation fails the run.
func (p *Pipeline) Run(ctx context.Context, records [][]byte) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "session.run", trace.WithAttributes(attribute.Int("records", len(records))))
	defer span.End()

	contexts := Prescan(records)
	events, decodeErrs, err := p.decodeAll(ctx, records, contexts)
	if err != nil {
		return nil, err
	}

	res := &Result{Records: len(records), DecodeErrors: decodeErrs}
	for _, ev := range events {
		if _, ok := ev.(*event.Residual); ok {
			res.Residuals++
		}
	}
	p.metrics.RecordDecoded(ctx, len(events), res.Residuals)

	d := &diagnostics{limiter: p.limiter, logger: p.logger}
	for _, derr := range decodeErrs {
		d.log(ctx, "record degraded to residual", "tag", derr.Tag, "kind", derr.Kind, "error", derr)
	}

	res.OutOfOrder = repairTime(events)
	for _, seq := range res.OutOfOrder {
		d.log(ctx, "record out of order", "seq", seq)
	}
	slices.SortStableFunc(events, func(a, b event.Event) int {
		switch {
		case event.Before(a, b):
			return -1
		case event.Before(b, a):
			return 1
		}
		return 0
	})

	contextOf := func(ev event.Event) decode.Context {
		return contexts[ev.Head().SequenceID-1]
	}
	if p.reconciler != nil {
		events, res.SideFileErrors = p.reconciler.Reconcile(events, contextOf)
		for _, serr := range res.SideFileErrors {
			d.log(ctx, "side file not reconciled", "file", serr.File, "kind", serr.Kind, "error", serr.Err)
		}
	}

	pass := p.valuer.NewPass()
	for _, ev := range events {
		c := contextOf(ev)
		pass.Observe(ev, valuation.Era{Revision: c.Revision, Odyssey: c.Odyssey})
	}

	res.Events = p.merger.Merge(events)
	d.flush(ctx)

	snap, err := p.dispatcher.Replay(ctx, res.Events)
	if err != nil {
		span.RecordError(err)
		return res, err
	}
	res.Snapshot = snap

	p.logger.InfoContext(ctx, "session replayed",
		"records", res.Records,
		"events", len(res.Events),
		"residuals", res.Residuals,
		"side_file_errors", len(res.SideFileErrors),
		"out_of_order", len(res.OutOfOrder),
		"snapshot", snap.Hash,
	)
	return res, nil
}

// decodeAll decodes records in parallel batches; results keep record order.
func (p *Pipeline) decodeAll(ctx context.Context, records [][]byte, contexts []decode.Context) ([]event.Event, []*decode.DecodeError, error) {
	events := make([]event.Event, len(records))
	errs := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for start := 0; start < len(records); start += decodeBatch {
		end := min(start+decodeBatch, len(records))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				events[i], errs[i] = p.decoder.Decode(records[i], contexts[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, &dispatch.ReplayFault{Stage: dispatch.StageCancelled, Cause: err, Retryable: true}
	}

	var decodeErrs []*decode.DecodeError
	for _, err := range errs {
		var derr *decode.DecodeError
		if errors.As(err, &derr) {
			decodeErrs = append(decodeErrs, derr)
		} else if err != nil {
			decodeErrs = append(decodeErrs, &decode.DecodeError{Kind: decode.KindMalformed, Err: err})
		}
	}
	return events, decodeErrs, nil
}

// repairTime gives records without a usable timestamp the time of the
// record before them, and returns the sequence ids of records stamped
// earlier than the latest time seen so far. events must be in record order.
func repairTime(events []event.Event) []uint64 {
	var (
		prev, latest time.Time
		late         []uint64
	)
	for _, ev := range events {
		h := ev.Head()
		if h.Time.IsZero() {
			h.Time = prev
		}
		if h.Time.Before(latest) {
			late = append(late, h.SequenceID)
		} else {
			latest = h.Time
		}
		prev = h.Time
	}
	return late
}

// diagnostics throttles per-record warnings.
type diagnostics struct {
	limiter    *rate.Limiter
	logger     *slog.Logger
	suppressed int
}

func (d *diagnostics) log(ctx context.Context, msg string, args ...any) {
	if d.limiter.Allow() {
		d.logger.WarnContext(ctx, msg, args...)
		return
	}
	d.suppressed++
}

func (d *diagnostics) flush(ctx context.Context) {
	if d.suppressed > 0 {
		d.logger.WarnContext(ctx, "diagnostics suppressed", "count", d.suppressed)
	}
}
