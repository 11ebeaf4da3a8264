package ledger_test

import (
	"testing"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/ledger"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func header(seq uint64, typ event.Type) event.Header {
	return event.Header{SequenceID: seq, Type: typ, Time: t0.Add(time.Duration(seq) * time.Minute)}
}

func gold() event.Named { return event.Named{ID: "gold", Label: "Gold"} }

func TestBuyThenSellNetsMinusFifty(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Apply(&event.MarketBuy{Header: header(1, event.TypeMarketBuy), Commodity: gold(), Count: 5, BuyPrice: 100, TotalCost: 500}))
	require.NoError(t, l.Apply(&event.MarketSell{Header: header(2, event.TypeMarketSell), Commodity: gold(), Count: 5, SellPrice: 90, TotalSale: 450}))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-500), entries[0].Amount)
	assert.Equal(t, int64(450), entries[1].Amount)
	assert.Equal(t, uint64(2), entries[1].EventID)
	assert.Equal(t, "Sold 5 Gold", entries[1].Description)
	assert.Equal(t, int64(-50), l.Balance())
	assert.NoError(t, l.Verify())
}

func TestLoadGameReconciles(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Apply(&event.LoadGame{Header: header(1, event.TypeLoadGame), Commander: "Jameson", Credits: 1000}))
	require.NoError(t, l.Apply(&event.RefuelAll{Header: header(2, event.TypeRefuelAll), Cost: 100}))
	require.NoError(t, l.Apply(&event.LoadGame{Header: header(3, event.TypeLoadGame), Commander: "Jameson", Credits: 950}))

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Opening balance", entries[0].Description)
	assert.Equal(t, int64(1000), entries[0].Amount)
	assert.Equal(t, int64(50), entries[2].Amount)
	assert.Equal(t, "Balance reconciled at load", entries[2].Description)
	assert.Equal(t, int64(950), l.Balance())
}

func TestLoadGameMatchingBalanceBooksNothing(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Apply(&event.LoadGame{Header: header(1, event.TypeLoadGame), Credits: 200}))
	require.NoError(t, l.Apply(&event.LoadGame{Header: header(2, event.TypeLoadGame), Credits: 200}))
	assert.Len(t, l.Entries(), 1)
}

func TestMovements(t *testing.T) {
	sell := int64(300)
	reward, donation, fine := int64(5000), int64(1000), int64(250)
	tests := []struct {
		name string
		ev   event.Event
		want int64
	}{
		{"ship buy with trade-in", &event.ShipyardBuy{Header: header(1, event.TypeShipyardBuy), ShipPrice: 1000, SellPrice: &sell}, -700},
		{"module store without cost", &event.ModuleStore{Header: header(1, event.TypeModuleStore)}, 0},
		{"mission with donation", &event.MissionCompleted{Header: header(1, event.TypeMissionCompleted), Reward: &reward, Donation: &donation}, 4000},
		{"mission failed fine", &event.MissionFailed{Header: header(1, event.TypeMissionFailed), Fine: &fine}, -250},
		{"legacy exploration sale", &event.SellExplorationData{Header: header(1, event.TypeSellExplorationData), BaseValue: 100, Bonus: 20}, 120},
		{"voucher", &event.RedeemVoucher{Header: header(1, event.TypeRedeemVoucher), Type: "bounty", Amount: 42}, 42},
		{"rebuy", &event.Resurrect{Header: header(1, event.TypeResurrect), Option: "rebuy", Cost: 99}, -99},
		{"organic data with bonus", &event.SellOrganicData{Header: header(1, event.TypeSellOrganicData), BioData: []*event.OrganicSale{{Value: 1000, Bonus: 4000}, nil, {Value: 500}}}, 5500},
		{"limpets", &event.BuyDrones{Header: header(1, event.TypeBuyDrones), Count: 4, BuyPrice: 101, TotalCost: 404}, -404},
		{"remote module fetch", &event.FetchRemoteModule{Header: header(1, event.TypeFetchRemoteModule), TransferCost: 3000}, -3000},
		{"carrier withdrawal", &event.CarrierBankTransfer{Header: header(1, event.TypeCarrierBankTransfer), Withdraw: 800}, 800},
		{"carrier deposit", &event.CarrierBankTransfer{Header: header(1, event.TypeCarrierBankTransfer), Deposit: 800}, -800},
		{"powerplay salary", &event.PowerplaySalary{Header: header(1, event.TypePowerplaySalary), Power: "Zachary Hudson", Amount: 10000}, 10000},
		{"suit purchase", &event.BuySuit{Header: header(1, event.TypeBuySuit), Price: 150000}, -150000},
		{"taxi", &event.BookTaxi{Header: header(1, event.TypeBookTaxi), Cost: 1200, DestinationSystem: "Sol"}, -1200},
		{"search and rescue", &event.SearchAndRescue{Header: header(1, event.TypeSearchAndRescue), Name: event.Named{ID: "occupiedcryopod"}, Count: 2, Reward: 12000}, 12000},
		{"unrelated event", &event.Shutdown{Header: header(1, event.TypeShutdown)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()
			require.NoError(t, l.Apply(tt.ev))
			assert.Equal(t, tt.want, l.Balance())
			if tt.want == 0 {
				assert.Empty(t, l.Entries())
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Apply(&event.BuyAmmo{Header: header(1, event.TypeBuyAmmo), Cost: 10}))
	c := l.Clone().(*ledger.Ledger)
	require.NoError(t, c.Apply(&event.BuyAmmo{Header: header(2, event.TypeBuyAmmo), Cost: 10}))

	assert.Len(t, l.Entries(), 1)
	assert.Len(t, c.Entries(), 2)
	assert.Equal(t, int64(-10), l.Balance())
}

// op is one generated credit movement: Kind picks the variant, Amount its
// magnitude.
type op struct {
	Kind   int
	Amount int64
}

func build(ops []op) []event.Event {
	out := make([]event.Event, 0, len(ops))
	for i, o := range ops {
		h := header(uint64(i+1), "")
		switch o.Kind {
		case 0:
			h.Type = event.TypeMarketBuy
			out = append(out, &event.MarketBuy{Header: h, Commodity: gold(), Count: 1, TotalCost: o.Amount})
		case 1:
			h.Type = event.TypeMarketSell
			out = append(out, &event.MarketSell{Header: h, Commodity: gold(), Count: 1, TotalSale: o.Amount})
		case 2:
			h.Type = event.TypeLoadGame
			out = append(out, &event.LoadGame{Header: h, Credits: o.Amount})
		case 3:
			h.Type = event.TypeRedeemVoucher
			out = append(out, &event.RedeemVoucher{Header: h, Type: "bounty", Amount: o.Amount})
		default:
			h.Type = event.TypePayFines
			out = append(out, &event.PayFines{Header: h, Amount: o.Amount})
		}
	}
	return out
}

func TestLedgerConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genOps := gen.SliceOf(gopter.CombineGens(
		gen.IntRange(0, 4),
		gen.Int64Range(0, 1_000_000_000),
	).Map(func(v []any) op {
		return op{Kind: v[0].(int), Amount: v[1].(int64)}
	}))

	properties.Property("final balance equals the sum of booked amounts", prop.ForAll(
		func(ops []op) bool {
			l := ledger.New()
			for _, ev := range build(ops) {
				if err := l.Apply(ev); err != nil {
					return false
				}
			}
			var sum int64
			for _, e := range l.Entries() {
				sum += e.Amount
			}
			return sum == l.Balance() && l.Verify() == nil
		},
		genOps,
	))

	properties.TestingRun(t)
}
