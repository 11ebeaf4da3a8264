package event

// FactionReward is a reward share paid by one faction.
type FactionReward struct {
	Faction string `json:"faction"`
	Amount  int64  `json:"amount"`
}

// Bounty is a bounty voucher earned for a kill.
type Bounty struct {
	Header
	Target           *Named           `json:"target,omitempty"`
	VictimFaction    string           `json:"victim_faction"`
	TotalReward      int64            `json:"total_reward"`
	Rewards          []*FactionReward `json:"rewards,omitempty"`
	SharedWithOthers *int             `json:"shared_with_others,omitempty"`
}

func (*Bounty) Capabilities() Capability { return CapStats }

// FactionKillBond is a combat bond earned in a conflict zone.
type FactionKillBond struct {
	Header
	Reward          int64  `json:"reward"`
	AwardingFaction string `json:"awarding_faction"`
	VictimFaction   string `json:"victim_faction"`
}

func (*FactionKillBond) Capabilities() Capability { return CapStats }

// RedeemVoucher cashes bounty, bond or trade vouchers.
type RedeemVoucher struct {
	Header
	Type     string           `json:"type"`
	Amount   int64            `json:"amount"`
	Factions []*FactionReward `json:"factions,omitempty"`
	// BrokerPercentage is a percentage, 0..100.
	BrokerPercentage *float64 `json:"broker_percentage,omitempty"`
}

func (*RedeemVoucher) Capabilities() Capability { return CapLedger | CapStats }

// PayFines pays outstanding fines.
type PayFines struct {
	Header
	Amount   int64   `json:"amount"`
	AllFines bool    `json:"all_fines"`
	Faction  *string `json:"faction,omitempty"`
}

func (*PayFines) Capabilities() Capability { return CapLedger }

// PayBounties pays bounties on the commander.
type PayBounties struct {
	Header
	Amount   int64   `json:"amount"`
	AllFines bool    `json:"all_fines"`
	Faction  *string `json:"faction,omitempty"`
}

func (*PayBounties) Capabilities() Capability { return CapLedger }

// Killer identifies one attacker in a wing kill.
type Killer struct {
	Name string `json:"name"`
	Ship string `json:"ship,omitempty"`
	Rank string `json:"rank,omitempty"`
}

// Died reports the commander's death. Wing kills list several killers.
type Died struct {
	Header
	Killers []*Killer `json:"killers,omitempty"`
}

func (*Died) Capabilities() Capability { return CapVehicle | CapStats }

// Resurrect reports the rebuy choice after death.
type Resurrect struct {
	Header
	Option   string `json:"option"`
	Cost     int64  `json:"cost"`
	Bankrupt bool   `json:"bankrupt"`
}

func (*Resurrect) Capabilities() Capability { return CapLedger | CapVehicle }

// Interdicted reports the commander pulled out of supercruise.
type Interdicted struct {
	Header
	Submitted   bool    `json:"submitted"`
	Interdictor *string `json:"interdictor,omitempty"`
	IsPlayer    bool    `json:"is_player"`
	Faction     *string `json:"faction,omitempty"`
}

func (*Interdicted) Capabilities() Capability { return CapStats }

// Interdiction reports the commander interdicting another ship.
type Interdiction struct {
	Header
	Success     bool    `json:"success"`
	Interdicted *string `json:"interdicted,omitempty"`
	IsPlayer    bool    `json:"is_player"`
	Faction     *string `json:"faction,omitempty"`
}

func (*Interdiction) Capabilities() Capability { return CapStats }

// CapShipBond is a combat bond for a capital ship engagement.
type CapShipBond struct {
	Header
	Reward          int64  `json:"reward"`
	AwardingFaction string `json:"awarding_faction"`
	VictimFaction   string `json:"victim_faction"`
}

func (*CapShipBond) Capabilities() Capability { return CapStats }

// DatalinkVoucher is a voucher earned by scanning a data link.
type DatalinkVoucher struct {
	Header
	Reward        int64  `json:"reward"`
	VictimFaction string `json:"victim_faction"`
	PayeeFaction  string `json:"payee_faction"`
}

func (*DatalinkVoucher) Capabilities() Capability { return CapStats }

// CommitCrime is a crime the commander committed.
type CommitCrime struct {
	Header
	CrimeType string  `json:"crime_type"`
	Faction   string  `json:"faction"`
	Victim    *string `json:"victim,omitempty"`
	Fine      *int64  `json:"fine,omitempty"`
	Bounty    *int64  `json:"bounty,omitempty"`
}

func (*CommitCrime) Capabilities() Capability { return CapStats }

// CrimeVictim is a crime committed against the commander.
type CrimeVictim struct {
	Header
	Offender  string `json:"offender"`
	CrimeType string `json:"crime_type"`
	Fine      *int64 `json:"fine,omitempty"`
	Bounty    *int64 `json:"bounty,omitempty"`
}

func (*CrimeVictim) Capabilities() Capability { return CapNone }

// EscapeInterdiction is an interdiction the commander evaded.
type EscapeInterdiction struct {
	Header
	Interdictor string `json:"interdictor"`
	IsPlayer    bool   `json:"is_player"`
}

func (*EscapeInterdiction) Capabilities() Capability { return CapStats }

// PVPKill is a player kill.
type PVPKill struct {
	Header
	Victim     string `json:"victim"`
	CombatRank int    `json:"combat_rank"`
}

func (*PVPKill) Capabilities() Capability { return CapStats }

// UnderAttack reports the ship, fighter or a wingmate taking fire.
type UnderAttack struct {
	Header
	Target string `json:"target"`
}

func (*UnderAttack) Capabilities() Capability { return CapNone }
