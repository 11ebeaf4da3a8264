package event

import "time"

// MissionAccepted records a mission taken from a faction.
type MissionAccepted struct {
	Header
	MissionID          int64      `json:"mission_id"`
	Name               Named      `json:"name"`
	Faction            string     `json:"faction"`
	DestinationSystem  *string    `json:"destination_system,omitempty"`
	DestinationStation *string    `json:"destination_station,omitempty"`
	Reward             *int64     `json:"reward,omitempty"`
	Expiry             *time.Time `json:"expiry,omitempty"`
	Commodity          *Named     `json:"commodity,omitempty"`
	Count              *int       `json:"count,omitempty"`
}

func (*MissionAccepted) Capabilities() Capability { return CapStats }

// ItemReward is a commodity or material handed over on completion.
type ItemReward struct {
	Name     Named  `json:"name"`
	Category string `json:"category,omitempty"`
	Count    int    `json:"count"`
}

// MissionCompleted records a mission handed in.
type MissionCompleted struct {
	Header
	MissionID       int64         `json:"mission_id"`
	Name            Named         `json:"name"`
	Faction         string        `json:"faction"`
	Reward          *int64        `json:"reward,omitempty"`
	Donation        *int64        `json:"donation,omitempty"`
	Commodity       *Named        `json:"commodity,omitempty"`
	Count           *int          `json:"count,omitempty"`
	CommodityReward []*ItemReward `json:"commodity_reward,omitempty"`
	MaterialsReward []*ItemReward `json:"materials_reward,omitempty"`
}

func (*MissionCompleted) Capabilities() Capability { return CapLedger | CapInventory | CapStats }

// MissionFailed records a failed mission.
type MissionFailed struct {
	Header
	MissionID int64  `json:"mission_id"`
	Name      Named  `json:"name"`
	Fine      *int64 `json:"fine,omitempty"`
}

func (*MissionFailed) Capabilities() Capability { return CapLedger | CapStats }

// MissionAbandoned records an abandoned mission.
type MissionAbandoned struct {
	Header
	MissionID int64  `json:"mission_id"`
	Name      Named  `json:"name"`
	Fine      *int64 `json:"fine,omitempty"`
}

func (*MissionAbandoned) Capabilities() Capability { return CapLedger | CapStats }

// CommunityGoalEntry is one goal of a community goal listing.
type CommunityGoalEntry struct {
	CGID               int64      `json:"cgid"`
	Title              string     `json:"title"`
	SystemName         string     `json:"system_name"`
	MarketName         string     `json:"market_name"`
	Expiry             *time.Time `json:"expiry,omitempty"`
	IsComplete         bool       `json:"is_complete"`
	CurrentTotal       int64      `json:"current_total"`
	PlayerContribution int64      `json:"player_contribution"`
	NumContributors    int64      `json:"num_contributors"`
	// PlayerPercentileBand is a percentage, 0..100.
	PlayerPercentileBand float64 `json:"player_percentile_band"`
	PlayerInTopRank      *bool   `json:"player_in_top_rank,omitempty"`
	Bonus                *int64  `json:"bonus,omitempty"`
}

// CommunityGoal lists the community goals the commander contributes to.
type CommunityGoal struct {
	Header
	CurrentGoals []*CommunityGoalEntry `json:"current_goals,omitempty"`
}

func (*CommunityGoal) Capabilities() Capability { return CapNone }

// CommunityGoalReward pays out a community goal.
type CommunityGoalReward struct {
	Header
	CGID   *int64 `json:"cgid,omitempty"`
	Name   string `json:"name"`
	System string `json:"system"`
	Reward int64  `json:"reward"`
}

func (*CommunityGoalReward) Capabilities() Capability { return CapLedger }

// MissionRedirected moves a mission's destination.
type MissionRedirected struct {
	Header
	MissionID             int64  `json:"mission_id"`
	Name                  Named  `json:"name"`
	NewDestinationStation string `json:"new_destination_station,omitempty"`
	OldDestinationStation string `json:"old_destination_station,omitempty"`
	NewDestinationSystem  string `json:"new_destination_system,omitempty"`
	OldDestinationSystem  string `json:"old_destination_system,omitempty"`
}

func (*MissionRedirected) Capabilities() Capability { return CapNone }

// SearchAndRescue is salvage handed in to a search and rescue contact.
type SearchAndRescue struct {
	Header
	MarketID *int64 `json:"market_id,omitempty"`
	Name     Named  `json:"name"`
	Count    int    `json:"count"`
	Reward   int64  `json:"reward"`
}

func (*SearchAndRescue) Capabilities() Capability { return CapLedger | CapInventory | CapStats }

// CommunityGoalJoin signs up for a community goal.
type CommunityGoalJoin struct {
	Header
	CGID   int64  `json:"cgid"`
	Name   string `json:"name"`
	System string `json:"system"`
}

func (*CommunityGoalJoin) Capabilities() Capability { return CapNone }

// CommunityGoalDiscard leaves a community goal.
type CommunityGoalDiscard struct {
	Header
	CGID   int64  `json:"cgid"`
	Name   string `json:"name"`
	System string `json:"system"`
}

func (*CommunityGoalDiscard) Capabilities() Capability { return CapNone }
