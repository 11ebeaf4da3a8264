package sidefile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/decode"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/sidefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	marketLine   = `{"timestamp":"2024-05-01T12:00:00Z","event":"Market","MarketID":128016640,"StationName":"Abraham Lincoln","StarSystem":"Sol"}`
	olderMarket  = `{"timestamp":"2024-05-01T11:00:00Z","event":"Market","MarketID":1,"StationName":"Old","StarSystem":"Sol"}`
	marketSide   = `{"timestamp":"2024-05-01T12:00:00Z","event":"Market","MarketID":128016640,"StationName":"Abraham Lincoln","StarSystem":"Sol","Items":[{"id":128049202,"Name":"$gold_name;","Name_Localised":"Gold","Category":"$MARKET_category_metals;","Category_Localised":"Metals","BuyPrice":9401,"SellPrice":9000,"Stock":10,"Demand":1}]}`
	staleSide    = `{"timestamp":"2024-05-01T11:59:00Z","event":"Market","MarketID":128016640,"Items":[]}`
	noItemsSide  = `{"timestamp":"2024-05-01T12:00:00Z","event":"Market"}`
	clearedRoute = `{"timestamp":"2024-05-01T12:00:00Z","event":"NavRouteClear","Route":[]}`
)

type failingSource struct{}

func (failingSource) Read(event.SideFileKind) ([]byte, bool, error) {
	return nil, false, errors.New("permission denied")
}

func decodeAll(t *testing.T, dec *decode.Decoder, lines ...string) []event.Event {
	t.Helper()
	out := make([]event.Event, len(lines))
	for i, l := range lines {
		ev, err := dec.Decode([]byte(l), decode.Context{SequenceID: uint64(i + 1)})
		require.NoError(t, err)
		out[i] = ev
	}
	return out
}

func noContext(event.Event) decode.Context { return decode.Context{} }

func newReconciler(t *testing.T, src sidefile.Source) (*sidefile.Reconciler, *decode.Decoder) {
	t.Helper()
	dec := decode.New()
	r, err := sidefile.New(dec, src)
	require.NoError(t, err)
	return r, dec
}

func TestLatestEventIsReconciledByIdentity(t *testing.T) {
	r, dec := newReconciler(t, sidefile.MapSource{event.SideFileMarket: []byte(marketSide)})
	events := decodeAll(t, dec, olderMarket, marketLine)

	out, errs := r.Reconcile(events, noContext)
	require.Empty(t, errs)
	require.Len(t, out, 2)

	assert.Same(t, events[0], out[0], "older event keeps its embedded data")
	m, ok := out[1].(*event.Market)
	require.True(t, ok)
	require.Len(t, m.Items, 1)
	assert.Equal(t, int64(9401), m.Items[0].BuyPrice)
	assert.Equal(t, uint64(2), m.SequenceID)
	assert.Equal(t, events[1].Head().Time, m.Time)

	orig := events[1].(*event.Market)
	assert.Empty(t, orig.Items, "input slice is not modified")
}

func TestSideFileFailuresKeepEmbeddedData(t *testing.T) {
	tests := []struct {
		name   string
		src    sidefile.Source
		target error
	}{
		{"unreadable", failingSource{}, sidefile.ErrUnreadable},
		{"empty", sidefile.MapSource{event.SideFileMarket: []byte("  ")}, sidefile.ErrUnreadable},
		{"not json", sidefile.MapSource{event.SideFileMarket: []byte("{")}, sidefile.ErrMalformed},
		{"schema", sidefile.MapSource{event.SideFileMarket: []byte(noItemsSide)}, sidefile.ErrMalformed},
		{"stale", sidefile.MapSource{event.SideFileMarket: []byte(staleSide)}, sidefile.ErrTimestampMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, dec := newReconciler(t, tt.src)
			events := decodeAll(t, dec, marketLine)

			out, errs := r.Reconcile(events, noContext)
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], tt.target)
			assert.Equal(t, event.SideFileMarket, errs[0].File)
			assert.Equal(t, uint64(1), errs[0].Seq)
			assert.Same(t, events[0], out[0])
		})
	}
}

func TestMissingSideFileIsNotAnError(t *testing.T) {
	r, dec := newReconciler(t, sidefile.MapSource{})
	events := decodeAll(t, dec, marketLine)
	out, errs := r.Reconcile(events, noContext)
	assert.Empty(t, errs)
	assert.Same(t, events[0], out[0])
}

func TestSideFileForAnotherEventIsStale(t *testing.T) {
	r, dec := newReconciler(t, sidefile.MapSource{event.SideFileNavRoute: []byte(clearedRoute)})
	events := decodeAll(t, dec, `{"timestamp":"2024-05-01T12:00:00Z","event":"NavRoute"}`)
	_, errs := r.Reconcile(events, noContext)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], sidefile.ErrTimestampMismatch)
}

func TestDirSourceReadsGameLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Market.json"), append([]byte{0xEF, 0xBB, 0xBF}, marketSide...), 0o600))

	src := sidefile.DirSource{Dir: dir}
	_, ok, err := src.Read(event.SideFileCargo)
	require.NoError(t, err)
	assert.False(t, ok)

	r, dec := newReconciler(t, src)
	out, errs := r.Reconcile(decodeAll(t, dec, marketLine), noContext)
	require.Empty(t, errs)
	assert.Len(t, out[0].(*event.Market).Items, 1)
}
