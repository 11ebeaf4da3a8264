package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/diagnostics"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/inventory"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func head(seq uint64, typ event.Type) event.Header {
	return event.Header{SequenceID: seq, Type: typ, Time: t0.Add(time.Duration(seq) * time.Second)}
}

func gold() event.Named { return event.Named{ID: "gold", Label: "Gold"} }

func buySell() []event.Event {
	return []event.Event{
		&event.MarketBuy{Header: head(1, event.TypeMarketBuy), Commodity: gold(), Count: 5, BuyPrice: 100, TotalCost: 500},
		&event.MarketSell{Header: head(2, event.TypeMarketSell), Commodity: gold(), Count: 5, SellPrice: 90, TotalSale: 450},
	}
}

func newDispatcher(t *testing.T, opts ...dispatch.Option) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(opts...)
	require.NoError(t, err)
	return d
}

func TestBuyThenSellScenario(t *testing.T) {
	d := newDispatcher(t)
	assert.Nil(t, d.Current())
	assert.Equal(t, dispatch.Idle, d.State())

	snap, err := d.Replay(context.Background(), buySell())
	require.NoError(t, err)
	assert.Equal(t, dispatch.Committed, d.State())
	assert.Same(t, snap, d.Current())
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, 2, snap.Events)
	assert.Equal(t, uint64(2), snap.LastSeq)

	led, ok := dispatch.ViewAs[ledger.Snapshot](snap, ledger.Name)
	require.True(t, ok)
	require.Len(t, led.Entries, 2)
	assert.Equal(t, int64(-500), led.Entries[0].Amount)
	assert.Equal(t, int64(450), led.Entries[1].Amount)
	assert.Equal(t, int64(-50), led.Balance)

	inv, ok := dispatch.ViewAs[inventory.Snapshot](snap, inventory.Name)
	require.True(t, ok)
	assert.Zero(t, inv.Items[inventory.Key(inventory.CategoryCommodity, "gold")].Count)
}

func TestReplayIsByteIdentical(t *testing.T) {
	a, err := newDispatcher(t).Replay(context.Background(), buySell())
	require.NoError(t, err)
	b, err := newDispatcher(t).Replay(context.Background(), buySell())
	require.NoError(t, err)

	assert.Equal(t, a.Canonical, b.Canonical)
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.ID, b.ID)
}

func TestAppendMatchesFullReplay(t *testing.T) {
	events := buySell()
	full, err := newDispatcher(t).Replay(context.Background(), events)
	require.NoError(t, err)

	d := newDispatcher(t)
	_, err = d.Replay(context.Background(), events[:1])
	require.NoError(t, err)
	appended, err := d.Append(context.Background(), events[1:])
	require.NoError(t, err)

	assert.Equal(t, uint64(2), appended.Version)
	assert.Equal(t, full.Hash, appended.Hash)
	assert.Equal(t, full.Events, appended.Events)
}

func TestAppendDoesNotTouchCommittedSnapshot(t *testing.T) {
	d := newDispatcher(t)
	events := buySell()
	first, err := d.Replay(context.Background(), events[:1])
	require.NoError(t, err)
	before := first.Hash

	_, err = d.Append(context.Background(), events[1:])
	require.NoError(t, err)

	led, _ := dispatch.ViewAs[ledger.Snapshot](first, ledger.Name)
	assert.Len(t, led.Entries, 1)
	assert.Equal(t, before, first.Hash)
}

func TestCancelledReplayKeepsPreviousSnapshot(t *testing.T) {
	var transitions []string
	d := newDispatcher(t, dispatch.WithObserver(func(from, to dispatch.State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	}))
	committed, err := d.Replay(context.Background(), buySell())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Append(ctx, buySell())
	require.Error(t, err)

	var fault *dispatch.ReplayFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, dispatch.StageCancelled, fault.Stage)
	assert.True(t, fault.Retryable)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Same(t, committed, d.Current())
	assert.Equal(t, dispatch.Committed, d.State())
	assert.Equal(t, []string{
		"IDLE->REPLAYING", "REPLAYING->COMMITTED",
		"COMMITTED->REPLAYING", "REPLAYING->ABORTED", "ABORTED->COMMITTED",
	}, transitions)
}

func TestFaultBeforeFirstCommitReturnsToIdle(t *testing.T) {
	d := newDispatcher(t, dispatch.WithMaxEvents(1))
	_, err := d.Replay(context.Background(), buySell())

	var fault *dispatch.ReplayFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, dispatch.StageBudget, fault.Stage)
	assert.Equal(t, uint64(2), fault.Seq)
	assert.False(t, fault.Retryable)
	assert.ErrorIs(t, err, dispatch.ErrBudgetExceeded)
	assert.NotEmpty(t, fault.Recommendation())
	assert.Nil(t, d.Current())
	assert.Equal(t, dispatch.Idle, d.State())
}

type panicky struct{}

func (panicky) Name() string                   { return "panicky" }
func (panicky) Interest() event.Capability     { return event.CapLedger }
func (panicky) Apply(event.Event) error        { panic("boom") }
func (p panicky) Clone() projection.Projection { return p }
func (panicky) Snapshot() any                  { return struct{}{} }

type failing struct{ panicky }

func (failing) Name() string            { return "failing" }
func (failing) Apply(event.Event) error { return errors.New("rejected") }

func TestProjectionPanicBecomesFault(t *testing.T) {
	d := newDispatcher(t, dispatch.WithProjections(ledger.Factory, func() projection.Projection { return panicky{} }))
	_, err := d.Replay(context.Background(), buySell())

	var fault *dispatch.ReplayFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, dispatch.StageApply, fault.Stage)
	assert.False(t, fault.Retryable)

	var applyErr *projection.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "panicky", applyErr.Projection)
	assert.Equal(t, uint64(1), applyErr.Seq)
	assert.Nil(t, d.Current())
}

func TestProjectionErrorBecomesFault(t *testing.T) {
	d := newDispatcher(t, dispatch.WithProjections(func() projection.Projection { return failing{} }))
	_, err := d.Replay(context.Background(), buySell())
	var applyErr *projection.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "failing", applyErr.Projection)
	assert.EqualError(t, applyErr.Unwrap(), "rejected")
}

func TestDuplicateProjectionNamesAreRejected(t *testing.T) {
	_, err := dispatch.New(dispatch.WithProjections(ledger.Factory, ledger.Factory))
	assert.Error(t, err)
}

func TestMergedEventsAreFlattened(t *testing.T) {
	events := buySell()
	merged := &event.Merged{Primary: events[0], Constituents: events[1:], Summary: event.MergeSummary{Count: 2}}

	snap, err := newDispatcher(t).Replay(context.Background(), []event.Event{merged})
	require.NoError(t, err)
	led, _ := dispatch.ViewAs[ledger.Snapshot](snap, ledger.Name)
	assert.Len(t, led.Entries, 2)
	assert.Equal(t, 2, snap.Events)
}

func TestDegradedEventsReachDiagnostics(t *testing.T) {
	buy := buySell()[0]
	buy.Head().Degraded = []string{"Commodity"}
	residual := &event.Residual{Header: head(3, event.TypeResidual), Tag: "NeverSeenBefore", Reason: event.ReasonUnknownDiscriminator}

	snap, err := newDispatcher(t).Replay(context.Background(), []event.Event{buy, residual})
	require.NoError(t, err)
	diag, ok := dispatch.ViewAs[diagnostics.Snapshot](snap, diagnostics.Name)
	require.True(t, ok)
	assert.Len(t, diag.Residuals, 1)
	require.Len(t, diag.Degraded, 1)
	assert.Equal(t, uint64(1), diag.Degraded[0].Seq)
}

func TestResidualDoesNotChangeOtherProjections(t *testing.T) {
	base, err := newDispatcher(t).Replay(context.Background(), buySell())
	require.NoError(t, err)

	withResidual := append(buySell(), &event.Residual{Header: head(3, event.TypeResidual), Tag: "Fabricated"})
	snap, err := newDispatcher(t).Replay(context.Background(), withResidual)
	require.NoError(t, err)

	for _, name := range []string{ledger.Name, inventory.Name, "vehicle", "stats", "cartography"} {
		assert.JSONEq(t, string(base.Parts[name]), string(snap.Parts[name]), name)
	}
	assert.NotEqual(t, base.Hash, snap.Hash)
}

type recordingPersister struct {
	mu    sync.Mutex
	snaps []*dispatch.Snapshot
	err   error
}

func (p *recordingPersister) Persist(_ context.Context, s *dispatch.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snaps = append(p.snaps, s)
	return p.err
}

func TestPersistFailureKeepsCommit(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	d := newDispatcher(t, dispatch.WithPersister(p))

	snap, err := d.Replay(context.Background(), buySell())
	require.NoError(t, err)
	assert.Same(t, snap, d.Current())
	assert.Len(t, p.snaps, 1)
	assert.EqualError(t, d.PersistErr(), "disk full")
}

func TestReadersNeverSeePartialState(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()
	_, err := d.Replay(ctx, buySell())
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := d.Current()
				led, _ := dispatch.ViewAs[ledger.Snapshot](snap, ledger.Name)
				if len(led.Entries)%2 != 0 {
					t.Errorf("observed partial fold: %d entries", len(led.Entries))
					return
				}
			}
		}()
	}
	for range 20 {
		_, err := d.Append(ctx, buySell())
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
	assert.Equal(t, uint64(21), d.Current().Version)
}
