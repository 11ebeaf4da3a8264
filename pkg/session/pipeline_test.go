package session_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/diagnostics"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/inventory"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/ledger"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/session"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/sidefile"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fileheader = `{"timestamp":"2024-05-01T12:00:00Z","event":"Fileheader","part":1,"language":"English/UK","Odyssey":true,"gameversion":"4.0.0.1904","build":"r302145/r0 "}`
	loadGame   = `{"timestamp":"2024-05-01T12:00:05Z","event":"LoadGame","Commander":"Jameson","Ship":"CobraMkIII","ShipID":1,"Credits":1000,"Loan":0}`
	buyGold    = `{"timestamp":"2024-05-01T12:01:00Z","event":"MarketBuy","MarketID":128016640,"Type":"gold","Type_Localised":"Gold","Count":5,"BuyPrice":100,"TotalCost":500}`
	sellGold   = `{"timestamp":"2024-05-01T12:02:00Z","event":"MarketSell","MarketID":128016640,"Type":"gold","Type_Localised":"Gold","Count":5,"SellPrice":90,"TotalSale":450,"AvgPricePaid":100}`
	jump       = `{"timestamp":"2024-05-01T12:03:00Z","event":"FSDJump","StarSystem":"Alpha Centauri","SystemAddress":1,"StarPos":[3.03,-0.09,3.16],"JumpDist":4.38,"FuelUsed":0.5,"FuelLevel":15.5}`
	fabricated = `{"timestamp":"2024-05-01T12:04:00Z","event":"FabricatedNeverSeen","Anything":[1,2,3]}`
)

func chat(sec int, msg string) string {
	return fmt.Sprintf(`{"timestamp":"2024-05-01T12:05:%02dZ","event":"ReceiveText","From":"X","Message":%q,"Channel":"player"}`, sec, msg)
}

func records(lines ...string) [][]byte {
	out := make([][]byte, len(lines))
	for i, l := range lines {
		out[i] = []byte(l)
	}
	return out
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, lines []string, opts ...session.Option) *session.Result {
	t.Helper()
	p, err := session.New(append([]session.Option{session.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	res, err := p.Run(context.Background(), records(lines...))
	require.NoError(t, err)
	require.NotNil(t, res.Snapshot)
	return res
}

func TestBuyThenSellNetsToZero(t *testing.T) {
	res := run(t, []string{fileheader, buyGold, sellGold})

	led, ok := dispatch.ViewAs[ledger.Snapshot](res.Snapshot, ledger.Name)
	require.True(t, ok)
	require.Len(t, led.Entries, 2)
	assert.Equal(t, int64(-500), led.Entries[0].Amount)
	assert.Equal(t, int64(450), led.Entries[1].Amount)
	assert.Equal(t, int64(-50), led.Balance)

	inv, _ := dispatch.ViewAs[inventory.Snapshot](res.Snapshot, inventory.Name)
	assert.Zero(t, inv.Items[inventory.Key(inventory.CategoryCommodity, "gold")].Count)
}

func TestChatRunMergesIntoOneAggregate(t *testing.T) {
	res := run(t, []string{chat(0, "a"), chat(10, "b"), chat(20, "c")})
	require.Len(t, res.Events, 1)
	m, ok := res.Events[0].(*event.Merged)
	require.True(t, ok)
	assert.Len(t, m.Constituents, 2)
	assert.Equal(t, 3, m.Summary.Count)
}

func TestUnknownTagYieldsOneResidual(t *testing.T) {
	base := []string{fileheader, loadGame, buyGold, sellGold, jump}
	clean := run(t, base)
	dirty := run(t, append(base, fabricated))

	assert.Equal(t, clean.Residuals+1, dirty.Residuals)
	assert.Empty(t, dirty.DecodeErrors)
	for name, part := range clean.Snapshot.Parts {
		if name == diagnostics.Name {
			continue
		}
		assert.JSONEq(t, string(part), string(dirty.Snapshot.Parts[name]), name)
	}
	diag, _ := dispatch.ViewAs[diagnostics.Snapshot](dirty.Snapshot, diagnostics.Name)
	require.Len(t, diag.Residuals, 1)
	assert.Equal(t, "FabricatedNeverSeen", diag.Residuals[0].Tag)
}

func TestUnknownTagInTheMiddleLeavesBalancesAlone(t *testing.T) {
	clean := run(t, []string{fileheader, loadGame, buyGold, sellGold, jump})
	dirty := run(t, []string{fileheader, loadGame, buyGold, fabricated, sellGold, jump})

	for _, name := range []string{inventory.Name, "stats"} {
		assert.JSONEq(t, string(clean.Snapshot.Parts[name]), string(dirty.Snapshot.Parts[name]), name)
	}
	a, _ := dispatch.ViewAs[ledger.Snapshot](clean.Snapshot, ledger.Name)
	b, _ := dispatch.ViewAs[ledger.Snapshot](dirty.Snapshot, ledger.Name)
	assert.Equal(t, a.Balance, b.Balance)
	assert.Len(t, b.Entries, len(a.Entries))
}

func TestMalformedKnownRecordIsReported(t *testing.T) {
	res := run(t, []string{fileheader, `{"timestamp":"2024-05-01T12:01:00Z","event":"MarketBuy","Type":"gold","Count":"five"}`, sellGold})
	assert.Equal(t, 1, res.Residuals)
	require.Len(t, res.DecodeErrors, 1)
	assert.Equal(t, "MarketBuy", res.DecodeErrors[0].Tag)
}

func TestOutOfOrderRecordsAreSortedAndFlagged(t *testing.T) {
	res := run(t, []string{fileheader, sellGold, buyGold})
	assert.Equal(t, []uint64{3}, res.OutOfOrder)

	led, _ := dispatch.ViewAs[ledger.Snapshot](res.Snapshot, ledger.Name)
	require.Len(t, led.Entries, 2)
	assert.Equal(t, int64(-500), led.Entries[0].Amount, "buy sorts before sell")
}

func TestMissingTimestampInheritsPreviousTime(t *testing.T) {
	res := run(t, []string{buyGold, `{"event":"MarketSell","Type":"gold","Count":5}`, jump})
	require.Len(t, res.Events, 3)
	assert.Equal(t, res.Events[0].Head().Time, res.Events[1].Head().Time)
	assert.Empty(t, res.OutOfOrder)
}

func TestSideFilesAreReconciled(t *testing.T) {
	market := `{"timestamp":"2024-05-01T12:06:00Z","event":"Market","MarketID":128016640,"StationName":"Abraham Lincoln","StarSystem":"Sol"}`
	side := `{"timestamp":"2024-05-01T12:06:00Z","event":"Market","MarketID":128016640,"StationName":"Abraham Lincoln","StarSystem":"Sol","Items":[{"id":128049202,"Name":"$gold_name;","Name_Localised":"Gold","Category":"$MARKET_category_metals;","Category_Localised":"Metals","BuyPrice":9401,"SellPrice":9000,"Stock":10,"Demand":1}]}`

	res := run(t, []string{fileheader, buyGold, market}, session.WithSideFiles(sidefile.MapSource{event.SideFileMarket: []byte(side)}))
	assert.Empty(t, res.SideFileErrors)
	m, ok := res.Events[len(res.Events)-1].(*event.Market)
	require.True(t, ok)
	assert.Len(t, m.Items, 1)
}

func TestCancelledRunIsRetryableFault(t *testing.T) {
	p, err := session.New(session.WithLogger(quietLogger()))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Run(ctx, records(fileheader, buyGold))
	var fault *dispatch.ReplayFault
	require.ErrorAs(t, err, &fault)
	assert.True(t, fault.Retryable)
	assert.Nil(t, p.Dispatcher().Current())
}

func TestPrescanTracksSessionsAndRevisions(t *testing.T) {
	legacy := `{"timestamp":"2017-01-01T00:00:00Z","event":"Fileheader","part":1,"gameversion":"2.2 (Beta 2)"}`
	continued := `{"timestamp":"2017-01-01T01:00:00Z","event":"Fileheader","part":2,"gameversion":"2.2"}`

	ctxs := session.Prescan(records(legacy, buyGold, continued, fileheader, buyGold))
	require.Len(t, ctxs, 5)
	assert.Equal(t, uint64(1), ctxs[0].SequenceID)
	assert.Equal(t, 1, ctxs[1].Session)
	assert.Equal(t, "2.2.0", ctxs[1].Revision.String())
	assert.False(t, ctxs[1].Odyssey)
	assert.Equal(t, 1, ctxs[2].Session, "part 2 continues the session")
	assert.Equal(t, 2, ctxs[4].Session)
	assert.Equal(t, "4.0.0", ctxs[4].Revision.String())
	assert.True(t, ctxs[4].Odyssey)
}

func TestReadRecordsSkipsBlankLines(t *testing.T) {
	in := "\xEF\xBB\xBF" + fileheader + "\n\n  \n" + buyGold + "\r\n"
	recs, err := session.ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, fileheader, string(recs[0]))
	assert.Equal(t, buyGold, string(recs[1]))
}

func TestReplayIsDeterministic(t *testing.T) {
	pool := []string{loadGame, buyGold, sellGold, jump, fabricated, chat(1, "a"), chat(2, "b"),
		`{"timestamp":"2024-05-01T12:00:30Z","event":"RefuelAll","Cost":120,"Amount":2.4}`,
		`{"timestamp":"2024-05-01T12:00:40Z","event":"Docked","StationName":"Abraham Lincoln","StarSystem":"Sol","MarketID":128016640}`,
		`not json at all`,
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("same records give byte-identical snapshots", prop.ForAll(
		func(picks []int, workers int) bool {
			lines := []string{fileheader}
			for _, i := range picks {
				lines = append(lines, pool[i])
			}
			a := run(t, lines, session.WithWorkers(workers))
			b := run(t, lines, session.WithWorkers(1))
			return string(a.Snapshot.Canonical) == string(b.Snapshot.Canonical) && a.Snapshot.ID == b.Snapshot.ID
		},
		gen.SliceOf(gen.IntRange(0, len(pool)-1)),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

func TestMalformedSubRecordsReachProjectionsAsEmptySlots(t *testing.T) {
	loadout := `{"timestamp":"2024-05-01T12:00:10Z","event":"Loadout","Ship":"cobramkiii","ShipID":1,"Modules":[{"Slot":"MainEngines","Item":"int_engine_size4_class5","On":true},7,{"Item":"no slot"}]}`
	cargo := `{"timestamp":"2024-05-01T12:00:20Z","event":"Cargo","Vessel":"Ship","Count":1,"Inventory":["junk",{"Name":"gold","Count":1}]}`
	route := `{"timestamp":"2024-05-01T12:00:30Z","event":"NavRoute","Route":[{"StarSystem":"Sol","SystemAddress":10477373803,"StarPos":[0,0,0],"StarClass":"G"},null,"x"]}`

	res := run(t, []string{fileheader, loadout, cargo, route})
	require.Len(t, res.Events, 4)
	assert.Len(t, res.Events[1].(*event.Loadout).Modules, 3)
	assert.NotEmpty(t, res.Events[1].Head().Degraded)

	diag, _ := dispatch.ViewAs[diagnostics.Snapshot](res.Snapshot, diagnostics.Name)
	assert.NotEmpty(t, diag.Degraded)
	inv, _ := dispatch.ViewAs[inventory.Snapshot](res.Snapshot, inventory.Name)
	assert.Equal(t, int64(1), inv.Items[inventory.Key(inventory.CategoryCommodity, "gold")].Count)
}
