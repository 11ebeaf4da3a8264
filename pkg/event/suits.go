package event

// BuySuit is a suit purchase.
type BuySuit struct {
	Header
	Name     Named    `json:"name"`
	Price    int64    `json:"price"`
	SuitID   int64    `json:"suit_id"`
	SuitMods []string `json:"suit_mods,omitempty"`
}

func (*BuySuit) Capabilities() Capability { return CapLedger }

// SellSuit is a suit sale.
type SellSuit struct {
	Header
	Name   Named `json:"name"`
	Price  int64 `json:"price"`
	SuitID int64 `json:"suit_id"`
}

func (*SellSuit) Capabilities() Capability { return CapLedger }

// BuyWeapon is a hand weapon purchase.
type BuyWeapon struct {
	Header
	Name         Named    `json:"name"`
	Price        int64    `json:"price"`
	SuitModuleID int64    `json:"suit_module_id"`
	Class        int      `json:"class"`
	WeaponMods   []string `json:"weapon_mods,omitempty"`
}

func (*BuyWeapon) Capabilities() Capability { return CapLedger }

// SellWeapon is a hand weapon sale.
type SellWeapon struct {
	Header
	Name         Named `json:"name"`
	Price        int64 `json:"price"`
	SuitModuleID int64 `json:"suit_module_id"`
}

func (*SellWeapon) Capabilities() Capability { return CapLedger }

// BookTaxi is a taxi or dropship booking.
type BookTaxi struct {
	Header
	Cost                int64  `json:"cost"`
	DestinationSystem   string `json:"destination_system"`
	DestinationLocation string `json:"destination_location"`
	Retreat             bool   `json:"retreat"`
}

func (*BookTaxi) Capabilities() Capability { return CapLedger }

// CollectItems picks up on-foot goods, components or data.
type CollectItems struct {
	Header
	Name    Named  `json:"name"`
	Type    string `json:"type"`
	OwnerID int64  `json:"owner_id"`
	Count   int    `json:"count"`
	Stolen  bool   `json:"stolen"`
}

func (*CollectItems) Capabilities() Capability { return CapInventory }
