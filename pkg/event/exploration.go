package event

import (
	"sync"
	"sync/atomic"
)

// BodyKind classifies a scanned body.
type BodyKind string

const (
	BodyStar   BodyKind = "star"
	BodyPlanet BodyKind = "planet"
	BodyBelt   BodyKind = "belt"
)

// Composition is the bulk make-up of a body, in percent.
type Composition struct {
	Ice   float64 `json:"ice"`
	Rock  float64 `json:"rock"`
	Metal float64 `json:"metal"`
}

// Share is a named percentage such as a surface material or an atmosphere gas.
type Share struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// Scan describes a scanned star, planet or belt cluster.
type Scan struct {
	Header
	ScanType              string       `json:"scan_type,omitempty"`
	BodyName              string       `json:"body_name"`
	BodyID                *int         `json:"body_id,omitempty"`
	StarSystem            *string      `json:"star_system,omitempty"`
	SystemAddress         *int64       `json:"system_address,omitempty"`
	DistanceFromArrivalLS float64      `json:"distance_from_arrival_ls"`
	Kind                  BodyKind     `json:"kind"`
	StarType              *string      `json:"star_type,omitempty"`
	PlanetClass           *string      `json:"planet_class,omitempty"`
	StellarMass           *float64     `json:"stellar_mass,omitempty"`
	MassEM                *float64     `json:"mass_em,omitempty"`
	Radius                *float64     `json:"radius,omitempty"`
	SurfaceTemperature    *float64     `json:"surface_temperature,omitempty"`
	TerraformState        *string      `json:"terraform_state,omitempty"`
	Landable              *bool        `json:"landable,omitempty"`
	WasDiscovered         *bool        `json:"was_discovered,omitempty"`
	WasMapped             *bool        `json:"was_mapped,omitempty"`
	Composition           *Composition `json:"composition,omitempty"`
	Materials             []*Share     `json:"materials,omitempty"`
	Atmosphere            []*Share     `json:"atmosphere,omitempty"`

	valueOnce sync.Once
	value     atomic.Pointer[Valuation]
}

func (*Scan) Capabilities() Capability { return CapLocation | CapStats }

// Terraformable reports whether the body is or was a terraforming candidate.
func (s *Scan) Terraformable() bool {
	if s.TerraformState == nil {
		return false
	}
	switch *s.TerraformState {
	case "Terraformable", "Terraforming", "Terraformed":
		return true
	}
	return false
}

// Valuation returns the frozen valuation of the scan, computing it with
// compute on first use. Later calls ignore compute and return the first
// result, so the value reflects discovery state at scan time.
func (s *Scan) Valuation(compute func(*Scan) Valuation) Valuation {
	s.valueOnce.Do(func() {
		v := compute(s)
		v.Computed = true
		s.value.Store(&v)
	})
	if v := s.value.Load(); v != nil {
		return *v
	}
	return Valuation{}
}

// FrozenValuation returns the memoized valuation without computing one.
// It is safe to call while another goroutine runs Valuation.
func (s *Scan) FrozenValuation() (Valuation, bool) {
	v := s.value.Load()
	if v == nil {
		return Valuation{}, false
	}
	return *v, true
}

// TierKind names a valuation tier.
type TierKind string

const (
	TierBase                       TierKind = "base"
	TierMapped                     TierKind = "mapped"
	TierFirstMapped                TierKind = "first_mapped"
	TierFirstDiscoveredFirstMapped TierKind = "first_discovered_first_mapped"
)

// Tier is one valuation outcome. Efficient is the value with the
// efficient-mapping bonus; it equals Value for the base tier.
type Tier struct {
	Kind       TierKind `json:"kind"`
	Value      int64    `json:"value"`
	Efficient  int64    `json:"efficient"`
	Defined    bool     `json:"defined"`
	Achievable bool     `json:"achievable"`
}

// BestValue is the highest-priority tier still achievable at scan time.
type BestValue struct {
	Kind      TierKind `json:"kind"`
	Efficient bool     `json:"efficient"`
	Value     int64    `json:"value"`
}

// Valuation is the frozen estimate attached to a Scan.
type Valuation struct {
	Base                       Tier      `json:"base"`
	Mapped                     Tier      `json:"mapped"`
	FirstMapped                Tier      `json:"first_mapped"`
	FirstDiscoveredFirstMapped Tier      `json:"first_discovered_first_mapped"`
	FirstDiscovered            int64     `json:"first_discovered"`
	Best                       BestValue `json:"best"`
	Computed                   bool      `json:"-"`
}

// Tiers lists the defined tiers in priority order. With showImpossible
// unset, tiers that can no longer be achieved are left out.
func (v Valuation) Tiers(showImpossible bool) []Tier {
	var out []Tier
	for _, t := range []Tier{v.Mapped, v.FirstMapped, v.FirstDiscoveredFirstMapped, v.Base} {
		if !t.Defined {
			continue
		}
		if !showImpossible && !t.Achievable {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FSSDiscoveryScan is the honk: a count of bodies in the system.
type FSSDiscoveryScan struct {
	Header
	// Progress is a percentage, 0..100.
	Progress      float64 `json:"progress"`
	BodyCount     int     `json:"body_count"`
	NonBodyCount  int     `json:"non_body_count"`
	SystemName    *string `json:"system_name,omitempty"`
	SystemAddress *int64  `json:"system_address,omitempty"`
}

func (*FSSDiscoveryScan) Capabilities() Capability { return CapLocation | CapStats }

// FSSAllBodiesFound reports the system fully scanned.
type FSSAllBodiesFound struct {
	Header
	SystemName    string `json:"system_name"`
	SystemAddress *int64 `json:"system_address,omitempty"`
	Count         int    `json:"count"`
}

func (*FSSAllBodiesFound) Capabilities() Capability { return CapLocation }

// SAAScanComplete reports a body surface-mapped by the commander.
type SAAScanComplete struct {
	Header
	BodyName         string `json:"body_name"`
	BodyID           *int   `json:"body_id,omitempty"`
	SystemAddress    *int64 `json:"system_address,omitempty"`
	ProbesUsed       int    `json:"probes_used"`
	EfficiencyTarget int    `json:"efficiency_target"`
}

// Efficient reports whether the mapping met the efficiency target.
func (s *SAAScanComplete) Efficient() bool {
	return s.ProbesUsed > 0 && s.ProbesUsed <= s.EfficiencyTarget
}

func (*SAAScanComplete) Capabilities() Capability { return CapLocation | CapStats }

// SellExplorationData is the pre-3.3 cartographic sale.
type SellExplorationData struct {
	Header
	Systems       []string `json:"systems,omitempty"`
	Discovered    []string `json:"discovered,omitempty"`
	BaseValue     int64    `json:"base_value"`
	Bonus         int64    `json:"bonus"`
	TotalEarnings int64    `json:"total_earnings"`
}

func (*SellExplorationData) Capabilities() Capability { return CapLedger | CapStats }

// SoldSystem is one system in a multi-system cartographic sale.
type SoldSystem struct {
	SystemName string `json:"system_name"`
	NumBodies  int    `json:"num_bodies"`
}

// MultiSellExplorationData is the 3.3+ cartographic sale.
type MultiSellExplorationData struct {
	Header
	Discovered    []*SoldSystem `json:"discovered,omitempty"`
	BaseValue     int64         `json:"base_value"`
	Bonus         int64         `json:"bonus"`
	TotalEarnings int64         `json:"total_earnings"`
}

func (*MultiSellExplorationData) Capabilities() Capability { return CapLedger | CapStats }

// DiscoveryScan is the legacy discovery scanner result.
type DiscoveryScan struct {
	Header
	SystemAddress *int64 `json:"system_address,omitempty"`
	Bodies        int    `json:"bodies"`
}

func (*DiscoveryScan) Capabilities() Capability { return CapStats }

// Signal is a count of one signal type on a body.
type Signal struct {
	Type  Named `json:"type"`
	Count int   `json:"count"`
}

// SAASignalsFound lists the signals a surface map revealed.
type SAASignalsFound struct {
	Header
	BodyName      string    `json:"body_name"`
	BodyID        *int      `json:"body_id,omitempty"`
	SystemAddress *int64    `json:"system_address,omitempty"`
	Signals       []*Signal `json:"signals,omitempty"`
	Genuses       []*Named  `json:"genuses,omitempty"`
}

func (*SAASignalsFound) Capabilities() Capability { return CapLocation }

// FSSBodySignals lists the signals the spectrum analyser found on a body.
type FSSBodySignals struct {
	Header
	BodyName      string    `json:"body_name"`
	BodyID        *int      `json:"body_id,omitempty"`
	SystemAddress *int64    `json:"system_address,omitempty"`
	Signals       []*Signal `json:"signals,omitempty"`
}

func (*FSSBodySignals) Capabilities() Capability { return CapLocation }

// FSSSignalDiscovered is a signal source resolved by the spectrum analyser.
type FSSSignalDiscovered struct {
	Header
	SystemAddress *int64   `json:"system_address,omitempty"`
	SignalName    Named    `json:"signal_name"`
	SignalType    *string  `json:"signal_type,omitempty"`
	IsStation     bool     `json:"is_station"`
	USSType       *Named   `json:"uss_type,omitempty"`
	ThreatLevel   *int     `json:"threat_level,omitempty"`
	TimeRemaining *float64 `json:"time_remaining,omitempty"`
}

func (*FSSSignalDiscovered) Capabilities() Capability { return CapLocation }

// CodexEntry is a codex discovery.
type CodexEntry struct {
	Header
	EntryID       int64  `json:"entry_id"`
	Name          Named  `json:"name"`
	SubCategory   Named  `json:"sub_category"`
	Category      Named  `json:"category"`
	Region        Named  `json:"region"`
	System        string `json:"system"`
	SystemAddress *int64 `json:"system_address,omitempty"`
	BodyID        *int   `json:"body_id,omitempty"`
	IsNewEntry    bool   `json:"is_new_entry"`
	VoucherAmount *int64 `json:"voucher_amount,omitempty"`
}

func (*CodexEntry) Capabilities() Capability { return CapStats }

// ScanBaryCentre is the scan of an orbital barycentre.
type ScanBaryCentre struct {
	Header
	StarSystem    string   `json:"star_system"`
	SystemAddress *int64   `json:"system_address,omitempty"`
	BodyID        int      `json:"body_id"`
	SemiMajorAxis *float64 `json:"semi_major_axis,omitempty"`
	OrbitalPeriod *float64 `json:"orbital_period,omitempty"`
}

func (*ScanBaryCentre) Capabilities() Capability { return CapNone }

// NavBeaconScan is a nav beacon download; it reports the body count.
type NavBeaconScan struct {
	Header
	SystemAddress *int64 `json:"system_address,omitempty"`
	NumBodies     int    `json:"num_bodies"`
}

func (*NavBeaconScan) Capabilities() Capability { return CapLocation }

// ScanOrganic is one stage of a biological sample.
type ScanOrganic struct {
	Header
	ScanType      string `json:"scan_type"`
	Genus         Named  `json:"genus"`
	Species       Named  `json:"species"`
	Variant       *Named `json:"variant,omitempty"`
	SystemAddress *int64 `json:"system_address,omitempty"`
	Body          int    `json:"body"`
}

func (*ScanOrganic) Capabilities() Capability { return CapStats }

// OrganicSale is one sample sold to Vista Genomics.
type OrganicSale struct {
	Genus   Named  `json:"genus"`
	Species Named  `json:"species"`
	Variant *Named `json:"variant,omitempty"`
	Value   int64  `json:"value"`
	Bonus   int64  `json:"bonus"`
}

// SellOrganicData is a sale of biological samples.
type SellOrganicData struct {
	Header
	MarketID *int64         `json:"market_id,omitempty"`
	BioData  []*OrganicSale `json:"bio_data,omitempty"`
}

// Total is the sum of values and bonuses.
func (s *SellOrganicData) Total() int64 {
	var t int64
	for _, b := range s.BioData {
		if b != nil {
			t += b.Value + b.Bonus
		}
	}
	return t
}

func (*SellOrganicData) Capabilities() Capability { return CapLedger | CapStats }
