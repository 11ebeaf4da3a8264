package event

// SystemFaction identifies the controlling faction of a system or station.
type SystemFaction struct {
	Name         string  `json:"name"`
	FactionState *string `json:"faction_state,omitempty"`
}

// Faction is one entry of the system faction table.
type Faction struct {
	Name         string `json:"name"`
	FactionState string `json:"faction_state,omitempty"`
	Government   string `json:"government,omitempty"`
	Allegiance   string `json:"allegiance,omitempty"`
	// Influence is a percentage, 0..100.
	Influence float64 `json:"influence"`
	// MyReputation is a percentage, -100..100.
	MyReputation *float64 `json:"my_reputation,omitempty"`
}

// SystemInfo is the political and economic summary attached to arrivals.
type SystemInfo struct {
	Allegiance    *string        `json:"allegiance,omitempty"`
	Economy       *Named         `json:"economy,omitempty"`
	Government    *Named         `json:"government,omitempty"`
	Security      *Named         `json:"security,omitempty"`
	Population    *int64         `json:"population,omitempty"`
	SystemFaction *SystemFaction `json:"system_faction,omitempty"`
	Factions      []*Faction     `json:"factions,omitempty"`
}

// Location is written at session start and after respawn.
type Location struct {
	Header
	StarSystem    string  `json:"star_system"`
	SystemAddress *int64  `json:"system_address,omitempty"`
	StarPos       *Coords `json:"star_pos,omitempty"`
	Docked        bool    `json:"docked"`
	StationName   *string `json:"station_name,omitempty"`
	StationType   *string `json:"station_type,omitempty"`
	MarketID      *int64  `json:"market_id,omitempty"`
	Body          *string `json:"body,omitempty"`
	BodyID        *int    `json:"body_id,omitempty"`
	SystemInfo
}

func (*Location) Capabilities() Capability { return CapLocation }

// FSDJump is a hyperspace jump into a new system.
type FSDJump struct {
	Header
	StarSystem    string   `json:"star_system"`
	SystemAddress *int64   `json:"system_address,omitempty"`
	StarPos       *Coords  `json:"star_pos,omitempty"`
	JumpDist      float64  `json:"jump_dist"`
	FuelUsed      float64  `json:"fuel_used"`
	FuelLevel     *float64 `json:"fuel_level,omitempty"`
	SystemInfo
}

func (*FSDJump) Capabilities() Capability { return CapLocation | CapStats | CapVehicle }

// CarrierJump moves a docked commander with their fleet carrier.
type CarrierJump struct {
	Header
	StarSystem    string  `json:"star_system"`
	SystemAddress *int64  `json:"system_address,omitempty"`
	StarPos       *Coords `json:"star_pos,omitempty"`
	Docked        bool    `json:"docked"`
	StationName   *string `json:"station_name,omitempty"`
	MarketID      *int64  `json:"market_id,omitempty"`
	SystemInfo
}

func (*CarrierJump) Capabilities() Capability { return CapLocation | CapStats }

// StartJump begins a hyperspace or supercruise charge.
type StartJump struct {
	Header
	JumpType      string  `json:"jump_type"`
	StarSystem    *string `json:"star_system,omitempty"`
	SystemAddress *int64  `json:"system_address,omitempty"`
	StarClass     *string `json:"star_class,omitempty"`
}

func (*StartJump) Capabilities() Capability { return CapNone }

// FSDTarget selects the next jump target.
type FSDTarget struct {
	Header
	Name                  string  `json:"name"`
	SystemAddress         *int64  `json:"system_address,omitempty"`
	StarClass             *string `json:"star_class,omitempty"`
	RemainingJumpsInRoute *int    `json:"remaining_jumps_in_route,omitempty"`
}

func (*FSDTarget) Capabilities() Capability { return CapNone }

// Docked reports landing at a station or carrier.
type Docked struct {
	Header
	StationName     string         `json:"station_name"`
	StationType     *string        `json:"station_type,omitempty"`
	StarSystem      string         `json:"star_system"`
	SystemAddress   *int64         `json:"system_address,omitempty"`
	MarketID        *int64         `json:"market_id,omitempty"`
	StationFaction  *SystemFaction `json:"station_faction,omitempty"`
	DistFromStarLS  *float64       `json:"dist_from_star_ls,omitempty"`
	StationServices []string       `json:"station_services,omitempty"`
}

func (*Docked) Capabilities() Capability { return CapLocation | CapStats }

// Undocked reports leaving a station.
type Undocked struct {
	Header
	StationName string  `json:"station_name"`
	StationType *string `json:"station_type,omitempty"`
	MarketID    *int64  `json:"market_id,omitempty"`
}

func (*Undocked) Capabilities() Capability { return CapNone }

// SupercruiseEntry reports entering supercruise.
type SupercruiseEntry struct {
	Header
	StarSystem    string `json:"star_system"`
	SystemAddress *int64 `json:"system_address,omitempty"`
}

func (*SupercruiseEntry) Capabilities() Capability { return CapNone }

// SupercruiseExit reports dropping near a body.
type SupercruiseExit struct {
	Header
	StarSystem    string  `json:"star_system"`
	SystemAddress *int64  `json:"system_address,omitempty"`
	Body          string  `json:"body"`
	BodyID        *int    `json:"body_id,omitempty"`
	BodyType      *string `json:"body_type,omitempty"`
}

func (*SupercruiseExit) Capabilities() Capability { return CapNone }

// ApproachBody reports entering orbital cruise around a body.
type ApproachBody struct {
	Header
	StarSystem    string `json:"star_system"`
	SystemAddress *int64 `json:"system_address,omitempty"`
	Body          string `json:"body"`
	BodyID        *int   `json:"body_id,omitempty"`
}

func (*ApproachBody) Capabilities() Capability { return CapLocation }

// Surface is the shared shape of Touchdown and Liftoff.
type Surface struct {
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	StarSystem       *string  `json:"star_system,omitempty"`
	SystemAddress    *int64   `json:"system_address,omitempty"`
	Body             *string  `json:"body,omitempty"`
	BodyID           *int     `json:"body_id,omitempty"`
	PlayerControlled *bool    `json:"player_controlled,omitempty"`
}

// Touchdown reports landing on a planet surface.
type Touchdown struct {
	Header
	Surface
}

func (*Touchdown) Capabilities() Capability { return CapLocation | CapStats }

// Liftoff reports leaving a planet surface.
type Liftoff struct {
	Header
	Surface
}

func (*Liftoff) Capabilities() Capability { return CapNone }

// RouteLeg is one hop of a plotted route.
type RouteLeg struct {
	StarSystem    string `json:"star_system"`
	SystemAddress int64  `json:"system_address"`
	StarPos       Coords `json:"star_pos"`
	StarClass     string `json:"star_class,omitempty"`
}

// NavRoute carries the plotted route; detail arrives in NavRoute.json.
type NavRoute struct {
	Header
	Route []*RouteLeg `json:"route,omitempty"`
}

func (*NavRoute) Capabilities() Capability { return CapLocation }

// NavRouteClear discards the plotted route.
type NavRouteClear struct {
	Header
}

func (*NavRouteClear) Capabilities() Capability { return CapLocation }

// DockingRequested is a docking request sent to a station.
type DockingRequested struct {
	Header
	StationName string  `json:"station_name"`
	StationType *string `json:"station_type,omitempty"`
	MarketID    *int64  `json:"market_id,omitempty"`
}

func (*DockingRequested) Capabilities() Capability { return CapNone }

// DockingGranted assigns a landing pad.
type DockingGranted struct {
	Header
	StationName string  `json:"station_name"`
	StationType *string `json:"station_type,omitempty"`
	MarketID    *int64  `json:"market_id,omitempty"`
	LandingPad  int     `json:"landing_pad"`
}

func (*DockingGranted) Capabilities() Capability { return CapNone }

// DockingDenied refuses a docking request.
type DockingDenied struct {
	Header
	StationName string  `json:"station_name"`
	StationType *string `json:"station_type,omitempty"`
	MarketID    *int64  `json:"market_id,omitempty"`
	Reason      string  `json:"reason"`
}

func (*DockingDenied) Capabilities() Capability { return CapStats }

// Transfer describes where the commander boards or leaves a vehicle on foot.
type Transfer struct {
	SRV           bool    `json:"srv"`
	Taxi          bool    `json:"taxi"`
	Multicrew     bool    `json:"multicrew"`
	ID            *int    `json:"id,omitempty"`
	StarSystem    string  `json:"star_system,omitempty"`
	SystemAddress *int64  `json:"system_address,omitempty"`
	Body          *string `json:"body,omitempty"`
	OnStation     bool    `json:"on_station"`
	OnPlanet      bool    `json:"on_planet"`
	StationName   *string `json:"station_name,omitempty"`
}

// Embark is the commander boarding a ship, SRV or taxi from foot.
type Embark struct {
	Header
	Transfer
}

func (*Embark) Capabilities() Capability { return CapVehicle }

// Disembark is the commander stepping out on foot.
type Disembark struct {
	Header
	Transfer
}

func (*Disembark) Capabilities() Capability { return CapVehicle }

// JetConeBoost is a neutron or white dwarf cone supercharge.
type JetConeBoost struct {
	Header
	BoostValue float64 `json:"boost_value"`
}

func (*JetConeBoost) Capabilities() Capability { return CapStats }

// USSDrop is a drop out of supercruise at an unidentified signal source.
type USSDrop struct {
	Header
	USSType   Named `json:"uss_type"`
	USSThreat int   `json:"uss_threat"`
}

func (*USSDrop) Capabilities() Capability { return CapStats }

// LeaveBody is leaving a body's orbital cruise zone.
type LeaveBody struct {
	Header
	StarSystem    string `json:"star_system"`
	SystemAddress *int64 `json:"system_address,omitempty"`
	Body          string `json:"body"`
	BodyID        *int   `json:"body_id,omitempty"`
}

func (*LeaveBody) Capabilities() Capability { return CapNone }
