package event

// Fileheader opens every journal file.
type Fileheader struct {
	Header
	Part        int    `json:"part"`
	Language    string `json:"language,omitempty"`
	GameVersion string `json:"game_version,omitempty"`
	Build       string `json:"build,omitempty"`
	Odyssey     *bool  `json:"odyssey,omitempty"`
}

func (*Fileheader) Capabilities() Capability { return CapNone }

// Continued marks a journal split into a new part.
type Continued struct {
	Header
	Part int `json:"part"`
}

func (*Continued) Capabilities() Capability { return CapNone }

// LoadGame starts a commander session and reports the cash balance.
type LoadGame struct {
	Header
	Commander    string   `json:"commander"`
	FID          *string  `json:"fid,omitempty"`
	Ship         *Named   `json:"ship,omitempty"`
	ShipID       *int     `json:"ship_id,omitempty"`
	ShipName     *string  `json:"ship_name,omitempty"`
	ShipIdent    *string  `json:"ship_ident,omitempty"`
	FuelLevel    *float64 `json:"fuel_level,omitempty"`
	FuelCapacity *float64 `json:"fuel_capacity,omitempty"`
	GameMode     *string  `json:"game_mode,omitempty"`
	Credits      int64    `json:"credits"`
	Loan         *int64   `json:"loan,omitempty"`
	Odyssey      *bool    `json:"odyssey,omitempty"`
}

func (*LoadGame) Capabilities() Capability { return CapLedger | CapVehicle }

// Commander names the commander early in a session.
type Commander struct {
	Header
	Name string  `json:"name"`
	FID  *string `json:"fid,omitempty"`
}

func (*Commander) Capabilities() Capability { return CapNone }

// Shutdown is written when the game exits cleanly.
type Shutdown struct {
	Header
}

func (*Shutdown) Capabilities() Capability { return CapNone }

// Rank reports the commander's ranks keyed by rank table.
type Rank struct {
	Header
	Ranks map[string]int `json:"ranks"`
}

func (*Rank) Capabilities() Capability { return CapStats }

// Progress reports percent progress towards the next rank.
type Progress struct {
	Header
	Percent map[string]float64 `json:"percent"`
}

func (*Progress) Capabilities() Capability { return CapNone }

// Promotion reports one or more rank increases.
type Promotion struct {
	Header
	Ranks map[string]int `json:"ranks"`
}

func (*Promotion) Capabilities() Capability { return CapStats }
