// Package stats keeps career counters grouped by category and keyed by
// context such as a system, station or faction.
package stats

import (
	"maps"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "stats"

// Categories.
const (
	Jumps             = "jumps"
	CarrierJumps      = "carrier_jumps"
	Docked            = "docked"
	Touchdowns        = "touchdowns"
	Scans             = "scans"
	Honks             = "honks"
	Mapped            = "mapped"
	ExplorationSales  = "exploration_sales"
	Purchases         = "purchases"
	Sales             = "sales"
	Mining            = "mining"
	Bounties          = "bounties"
	Bonds             = "bonds"
	Vouchers          = "vouchers"
	Deaths            = "deaths"
	Interdicted       = "interdicted"
	Interdictions     = "interdictions"
	MissionsAccepted  = "missions_accepted"
	MissionsCompleted = "missions_completed"
	MissionsFailed    = "missions_failed"
	MissionsAbandoned = "missions_abandoned"
	Materials         = "materials"
	VehiclesLost      = "vehicles_lost"
	Ranks             = "ranks"
	DockingDenied     = "docking_denied"
	ConeBoosts        = "cone_boosts"
	SignalDrops       = "signal_drops"
	Codex             = "codex"
	Organics          = "organics"
	Prospected        = "prospected"
	Datalinks         = "datalinks"
	Crimes            = "crimes"
	Escapes           = "escapes"
	PlayerKills       = "player_kills"
	Rescues           = "rescues"
	Crafts            = "crafts"
)

// Counter aggregates one key. Credits sum exact money; Amount sums
// non-monetary measures such as jump distance.
type Counter struct {
	Count   int64   `json:"count"`
	Credits int64   `json:"credits,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// Snapshot is the published view: category → key → counter.
type Snapshot struct {
	Categories map[string]map[string]Counter `json:"categories"`
}

// Stats is the statistics projection.
type Stats struct {
	categories map[string]map[string]Counter
}

// New returns empty statistics.
func New() *Stats {
	return &Stats{categories: make(map[string]map[string]Counter)}
}

// Factory builds empty statistics for the dispatcher.
func Factory() projection.Projection { return New() }

func (s *Stats) Name() string               { return Name }
func (s *Stats) Interest() event.Capability { return event.CapStats }

func (s *Stats) Clone() projection.Projection {
	return &Stats{categories: s.copyCategories()}
}

func (s *Stats) Snapshot() any {
	return Snapshot{Categories: s.copyCategories()}
}

func (s *Stats) copyCategories() map[string]map[string]Counter {
	out := make(map[string]map[string]Counter, len(s.categories))
	for cat, keys := range s.categories {
		out[cat] = maps.Clone(keys)
	}
	return out
}

// Get returns one counter.
func (s *Stats) Get(category, key string) Counter {
	return s.categories[category][key]
}

// Total sums every key of a category.
func (s *Stats) Total(category string) Counter {
	var t Counter
	for _, c := range s.categories[category] {
		t.Count += c.Count
		t.Credits += c.Credits
		t.Amount += c.Amount
	}
	return t
}

func (s *Stats) Apply(ev event.Event) error {
	switch e := ev.(type) {
	case *event.FSDJump:
		s.add(Jumps, e.StarSystem, 1, 0, e.JumpDist)
	case *event.CarrierJump:
		s.add(CarrierJumps, e.StarSystem, 1, 0, 0)
	case *event.Docked:
		s.add(Docked, e.StationName+" @ "+e.StarSystem, 1, 0, 0)
	case *event.Touchdown:
		s.add(Touchdowns, optString(e.Body), 1, 0, 0)

	case *event.Scan:
		var credits int64
		if v, ok := e.FrozenValuation(); ok {
			credits = v.Best.Value
		}
		s.add(Scans, scanClass(e), 1, credits, 0)
	case *event.FSSDiscoveryScan:
		s.add(Honks, optString(e.SystemName), 1, 0, float64(e.BodyCount))
	case *event.DiscoveryScan:
		s.add(Honks, "", 1, 0, float64(e.Bodies))
	case *event.SAAScanComplete:
		key := "inefficient"
		if e.Efficient() {
			key = "efficient"
		}
		s.add(Mapped, key, 1, 0, float64(e.ProbesUsed))
	case *event.SellExplorationData:
		s.add(ExplorationSales, "legacy", int64(len(e.Systems)), e.TotalEarnings, 0)
	case *event.MultiSellExplorationData:
		s.add(ExplorationSales, "multi", int64(len(e.Discovered)), e.TotalEarnings, 0)

	case *event.SellOrganicData:
		s.add(ExplorationSales, "organic", int64(len(e.BioData)), e.Total(), 0)
	case *event.ScanOrganic:
		if e.ScanType == "Analyse" {
			s.add(Organics, e.Species.ID, 1, 0, 0)
		}
	case *event.CodexEntry:
		s.add(Codex, e.Category.ID, 1, deref(e.VoucherAmount), 0)
	case *event.JetConeBoost:
		s.add(ConeBoosts, "", 1, 0, e.BoostValue)
	case *event.USSDrop:
		s.add(SignalDrops, e.USSType.ID, 1, 0, float64(e.USSThreat))
	case *event.DockingDenied:
		s.add(DockingDenied, e.Reason, 1, 0, 0)

	case *event.MarketBuy:
		s.add(Purchases, e.Commodity.ID, int64(e.Count), e.TotalCost, 0)
	case *event.MarketSell:
		s.add(Sales, e.Commodity.ID, int64(e.Count), e.TotalSale, 0)
	case *event.MiningRefined:
		s.add(Mining, e.Commodity.ID, 1, 0, 0)
	case *event.ProspectedAsteroid:
		s.add(Prospected, e.Content.ID, 1, 0, 0)
	case *event.SearchAndRescue:
		s.add(Rescues, e.Name.ID, int64(e.Count), e.Reward, 0)

	case *event.Bounty:
		s.add(Bounties, e.VictimFaction, 1, e.TotalReward, 0)
	case *event.FactionKillBond:
		s.add(Bonds, e.AwardingFaction, 1, e.Reward, 0)
	case *event.CapShipBond:
		s.add(Bonds, e.AwardingFaction, 1, e.Reward, 0)
	case *event.DatalinkVoucher:
		s.add(Datalinks, e.PayeeFaction, 1, e.Reward, 0)
	case *event.CommitCrime:
		s.add(Crimes, e.CrimeType, 1, deref(e.Fine)+deref(e.Bounty), 0)
	case *event.EscapeInterdiction:
		s.add(Escapes, e.Interdictor, 1, 0, 0)
	case *event.PVPKill:
		s.add(PlayerKills, e.Victim, 1, 0, 0)
	case *event.RedeemVoucher:
		s.add(Vouchers, e.Type, 1, e.Amount, 0)
	case *event.Died:
		s.add(Deaths, killedBy(e), 1, 0, 0)
	case *event.Interdicted:
		s.add(Interdicted, firstOf(e.Interdictor, e.Faction), 1, 0, 0)
	case *event.Interdiction:
		s.add(Interdictions, firstOf(e.Interdicted, e.Faction), 1, 0, 0)
	case *event.SRVDestroyed:
		s.add(VehiclesLost, "srv", 1, 0, 0)
	case *event.FighterDestroyed:
		s.add(VehiclesLost, "fighter", 1, 0, 0)

	case *event.MissionAccepted:
		s.add(MissionsAccepted, e.Faction, 1, 0, 0)
	case *event.MissionCompleted:
		var reward int64
		if e.Reward != nil {
			reward = *e.Reward
		}
		s.add(MissionsCompleted, e.Faction, 1, reward, 0)
	case *event.MissionFailed:
		s.add(MissionsFailed, e.Name.ID, 1, 0, 0)
	case *event.MissionAbandoned:
		s.add(MissionsAbandoned, e.Name.ID, 1, 0, 0)

	case *event.MaterialCollected:
		s.add(Materials, strings.ToLower(e.Category), int64(e.Count), 0, 0)

	case *event.EngineerCraft:
		s.add(Crafts, e.BlueprintName, 1, 0, float64(e.Level))

	case *event.Rank:
		s.setRanks(e.Ranks)
	case *event.Promotion:
		s.setRanks(e.Ranks)
	}
	return nil
}

func (s *Stats) add(category, key string, count, credits int64, amount float64) {
	keys, ok := s.categories[category]
	if !ok {
		keys = make(map[string]Counter)
		s.categories[category] = keys
	}
	c := keys[key]
	c.Count += count
	c.Credits += credits
	c.Amount += amount
	keys[key] = c
}

// setRanks records the latest rank per table; Count holds the rank value.
func (s *Stats) setRanks(ranks map[string]int) {
	for table, v := range ranks {
		keys, ok := s.categories[Ranks]
		if !ok {
			keys = make(map[string]Counter)
			s.categories[Ranks] = keys
		}
		keys[table] = Counter{Count: int64(v)}
	}
}

func scanClass(e *event.Scan) string {
	switch {
	case e.StarType != nil:
		return *e.StarType
	case e.PlanetClass != nil:
		return *e.PlanetClass
	}
	return string(e.Kind)
}

func killedBy(e *event.Died) string {
	if len(e.Killers) == 0 || e.Killers[0] == nil {
		return "unknown"
	}
	if len(e.Killers) > 1 {
		return "wing"
	}
	return e.Killers[0].Name
}

func firstOf(vals ...*string) string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return *v
		}
	}
	return "unknown"
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
