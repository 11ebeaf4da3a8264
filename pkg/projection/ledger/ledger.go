// Package ledger folds credit movements into a running transaction ledger.
//
// Every entry carries the signed amount and the balance after it, so the
// final balance always equals the sum of the amounts in order. LoadGame
// reports the true balance; the ledger books the difference to its own
// running figure as a reconciliation entry rather than overwriting it.
package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "ledger"

// Entry is one booked movement.
type Entry struct {
	EventID     uint64     `json:"event_id"`
	Time        time.Time  `json:"time"`
	Type        event.Type `json:"type"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Balance     int64      `json:"balance"`
}

// Snapshot is the published view.
type Snapshot struct {
	Entries []Entry `json:"entries"`
	Balance int64   `json:"balance"`
}

// Ledger is the transaction ledger projection.
type Ledger struct {
	entries []Entry
	balance int64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Factory builds empty ledgers for the dispatcher.
func Factory() projection.Projection { return New() }

func (l *Ledger) Name() string               { return Name }
func (l *Ledger) Interest() event.Capability { return event.CapLedger }

// Apply books the credit movement of ev, if any. Zero movements are not
// booked.
func (l *Ledger) Apply(ev event.Event) error {
	amount, desc, ok := movement(ev, l.balance, len(l.entries) == 0)
	if !ok || amount == 0 {
		return nil
	}
	h := ev.Head()
	l.balance += amount
	l.entries = append(l.entries, Entry{
		EventID:     h.SequenceID,
		Time:        h.Time,
		Type:        h.Type,
		Description: desc,
		Amount:      amount,
		Balance:     l.balance,
	})
	return nil
}

func (l *Ledger) Clone() projection.Projection {
	return &Ledger{entries: slices.Clone(l.entries), balance: l.balance}
}

func (l *Ledger) Snapshot() any {
	return Snapshot{Entries: slices.Clone(l.entries), Balance: l.balance}
}

// Balance returns the running balance.
func (l *Ledger) Balance() int64 { return l.balance }

// Entries returns a copy of the booked entries.
func (l *Ledger) Entries() []Entry { return slices.Clone(l.entries) }

// Verify checks that every running balance is its predecessor plus the
// entry amount, and that the final balance matches.
func (l *Ledger) Verify() error {
	var running int64
	for i, e := range l.entries {
		running += e.Amount
		if e.Balance != running {
			return fmt.Errorf("ledger broken at entry %d (event %d): balance %d, want %d", i, e.EventID, e.Balance, running)
		}
	}
	if running != l.balance {
		return fmt.Errorf("ledger balance %d does not match entries %d", l.balance, running)
	}
	return nil
}

// movement returns the signed credit change described by ev.
func movement(ev event.Event, balance int64, first bool) (int64, string, bool) {
	switch e := ev.(type) {
	case *event.LoadGame:
		if first {
			return e.Credits - balance, "Opening balance", true
		}
		return e.Credits - balance, "Balance reconciled at load", true

	case *event.MarketBuy:
		return -e.TotalCost, fmt.Sprintf("Bought %d %s", e.Count, e.Commodity), true
	case *event.MarketSell:
		return e.TotalSale, fmt.Sprintf("Sold %d %s", e.Count, e.Commodity), true
	case *event.BuyTradeData:
		return -e.Cost, "Trade data for " + e.System, true

	case *event.SellExplorationData:
		total := e.TotalEarnings
		if total == 0 {
			total = e.BaseValue + e.Bonus
		}
		return total, fmt.Sprintf("Cartographic data, %d systems", len(e.Systems)), true
	case *event.MultiSellExplorationData:
		total := e.TotalEarnings
		if total == 0 {
			total = e.BaseValue + e.Bonus
		}
		return total, fmt.Sprintf("Cartographic data, %d systems", len(e.Discovered)), true

	case *event.ShipyardBuy:
		amount := -e.ShipPrice
		if e.SellPrice != nil {
			amount += *e.SellPrice
		}
		return amount, "Bought " + e.ShipType.String(), true
	case *event.ShipyardSell:
		return e.ShipPrice, "Sold " + e.ShipType.String(), true
	case *event.ShipyardTransfer:
		return -e.TransferPrice, "Transfer of " + e.ShipType.String(), true

	case *event.ModuleBuy:
		amount := -e.BuyPrice
		if e.SellPrice != nil {
			amount += *e.SellPrice
		}
		return amount, "Bought " + e.BuyItem.String(), true
	case *event.ModuleSell:
		return e.SellPrice, "Sold " + e.SellItem.String(), true
	case *event.ModuleStore:
		return -deref(e.Cost), "Stored " + e.StoredItem.String(), true
	case *event.ModuleRetrieve:
		return -deref(e.Cost), "Retrieved " + e.RetrievedItem.String(), true

	case *event.RefuelAll:
		return -e.Cost, "Refuel", true
	case *event.RefuelPartial:
		return -e.Cost, "Partial refuel", true
	case *event.RepairAll:
		return -e.Cost, "Repair all", true
	case *event.Repair:
		return -e.Cost, "Repair", true
	case *event.BuyAmmo:
		return -e.Cost, "Ammunition", true
	case *event.RestockVehicle:
		return -e.Cost, "Restock " + e.Vehicle.String(), true

	case *event.CrewHire:
		return -e.Cost, "Hired " + e.Name, true
	case *event.NpcCrewPaidWage:
		return -e.Amount, "Wage to " + e.NpcCrewName, true

	case *event.RedeemVoucher:
		return e.Amount, "Redeemed " + e.Type + " voucher", true
	case *event.PayFines:
		return -e.Amount, "Fines paid", true
	case *event.PayBounties:
		return -e.Amount, "Bounties paid", true
	case *event.Resurrect:
		return -e.Cost, "Rebuy (" + e.Option + ")", true

	case *event.MissionCompleted:
		return deref(e.Reward) - deref(e.Donation), "Mission " + e.Name.String(), true
	case *event.MissionFailed:
		return -deref(e.Fine), "Mission failed " + e.Name.String(), true
	case *event.MissionAbandoned:
		return -deref(e.Fine), "Mission abandoned " + e.Name.String(), true
	case *event.CommunityGoalReward:
		return e.Reward, "Community goal " + e.Name, true
	case *event.SearchAndRescue:
		return e.Reward, fmt.Sprintf("Search and rescue %d %s", e.Count, e.Name), true

	case *event.SellOrganicData:
		return e.Total(), fmt.Sprintf("Organic data (%d samples)", len(e.BioData)), true
	case *event.BuyDrones:
		return -e.TotalCost, fmt.Sprintf("Bought %d limpets", e.Count), true
	case *event.SellDrones:
		return e.TotalSale, fmt.Sprintf("Sold %d limpets", e.Count), true
	case *event.ModuleSellRemote:
		return e.SellPrice, "Sold stored " + e.SellItem.String(), true
	case *event.FetchRemoteModule:
		return -e.TransferCost, "Transfer of " + e.StoredItem.String(), true

	case *event.CarrierBuy:
		return -e.Price, "Fleet carrier " + e.Callsign, true
	case *event.CarrierBankTransfer:
		return e.Withdraw - e.Deposit, "Carrier bank transfer", true
	case *event.PowerplaySalary:
		return e.Amount, "Powerplay salary from " + e.Power, true

	case *event.BuySuit:
		return -e.Price, "Bought " + e.Name.String(), true
	case *event.SellSuit:
		return e.Price, "Sold " + e.Name.String(), true
	case *event.BuyWeapon:
		return -e.Price, "Bought " + e.Name.String(), true
	case *event.SellWeapon:
		return e.Price, "Sold " + e.Name.String(), true
	case *event.BookTaxi:
		return -e.Cost, "Taxi to " + e.DestinationSystem, true
	}
	return 0, "", false
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
