package event

// LaunchSRV deploys the surface recon vehicle.
type LaunchSRV struct {
	Header
	SRVType          *Named `json:"srv_type,omitempty"`
	Loadout          string `json:"loadout,omitempty"`
	ID               *int   `json:"id,omitempty"`
	PlayerControlled bool   `json:"player_controlled"`
}

func (*LaunchSRV) Capabilities() Capability { return CapVehicle }

// DockSRV recovers the SRV into the ship.
type DockSRV struct {
	Header
	SRVType *Named `json:"srv_type,omitempty"`
	ID      *int   `json:"id,omitempty"`
}

func (*DockSRV) Capabilities() Capability { return CapVehicle }

// SRVDestroyed reports the SRV lost.
type SRVDestroyed struct {
	Header
	SRVType *Named `json:"srv_type,omitempty"`
	ID      *int   `json:"id,omitempty"`
}

func (*SRVDestroyed) Capabilities() Capability { return CapVehicle | CapStats }

// LaunchFighter deploys a ship-launched fighter.
type LaunchFighter struct {
	Header
	Loadout          string `json:"loadout,omitempty"`
	ID               *int   `json:"id,omitempty"`
	PlayerControlled bool   `json:"player_controlled"`
}

func (*LaunchFighter) Capabilities() Capability { return CapVehicle }

// DockFighter recovers a fighter.
type DockFighter struct {
	Header
	ID *int `json:"id,omitempty"`
}

func (*DockFighter) Capabilities() Capability { return CapVehicle }

// FighterDestroyed reports a fighter lost.
type FighterDestroyed struct {
	Header
	ID *int `json:"id,omitempty"`
}

func (*FighterDestroyed) Capabilities() Capability { return CapVehicle | CapStats }

// FighterRebuilt reports a fighter ready again in its bay.
type FighterRebuilt struct {
	Header
	Loadout string `json:"loadout,omitempty"`
	ID      *int   `json:"id,omitempty"`
}

func (*FighterRebuilt) Capabilities() Capability { return CapVehicle }

// VehicleSwitch moves the commander between mothership and fighter.
type VehicleSwitch struct {
	Header
	To string `json:"to"`
}

func (*VehicleSwitch) Capabilities() Capability { return CapVehicle }

// CrewMemberJoins reports a multicrew player boarding.
type CrewMemberJoins struct {
	Header
	Crew         string `json:"crew"`
	Telepresence *bool  `json:"telepresence,omitempty"`
}

func (*CrewMemberJoins) Capabilities() Capability { return CapVehicle }

// CrewMemberQuits reports a multicrew player leaving.
type CrewMemberQuits struct {
	Header
	Crew         string `json:"crew"`
	Telepresence *bool  `json:"telepresence,omitempty"`
}

func (*CrewMemberQuits) Capabilities() Capability { return CapVehicle }

// CrewHire hires an NPC pilot.
type CrewHire struct {
	Header
	Name       string `json:"name"`
	CrewID     *int64 `json:"crew_id,omitempty"`
	Faction    string `json:"faction"`
	Cost       int64  `json:"cost"`
	CombatRank int    `json:"combat_rank"`
}

func (*CrewHire) Capabilities() Capability { return CapLedger | CapVehicle }

// CrewFire dismisses an NPC pilot.
type CrewFire struct {
	Header
	Name   string `json:"name"`
	CrewID *int64 `json:"crew_id,omitempty"`
}

func (*CrewFire) Capabilities() Capability { return CapVehicle }

// NpcCrewPaidWage is the NPC pilot's share of earnings.
type NpcCrewPaidWage struct {
	Header
	NpcCrewName string `json:"npc_crew_name"`
	NpcCrewID   *int64 `json:"npc_crew_id,omitempty"`
	Amount      int64  `json:"amount"`
}

func (*NpcCrewPaidWage) Capabilities() Capability { return CapLedger }

// JoinACrew reports the commander boarding another player's ship.
type JoinACrew struct {
	Header
	Captain string `json:"captain"`
}

func (*JoinACrew) Capabilities() Capability { return CapVehicle }

// QuitACrew reports the commander leaving another player's ship.
type QuitACrew struct {
	Header
	Captain string `json:"captain"`
}

func (*QuitACrew) Capabilities() Capability { return CapVehicle }
