package event

// Module is one fitted module of a loadout.
type Module struct {
	Slot     string `json:"slot"`
	Item     Named  `json:"item"`
	On       bool   `json:"on"`
	Priority *int   `json:"priority,omitempty"`
	// Health is a percentage, 0..100.
	Health *float64 `json:"health,omitempty"`
	Value  *int64   `json:"value,omitempty"`
}

// FuelCapacity is the size of the main tank and the reservoir.
type FuelCapacity struct {
	Main    float64 `json:"main"`
	Reserve float64 `json:"reserve"`
}

// Loadout is the complete fit of the current ship.
type Loadout struct {
	Header
	Ship         Named         `json:"ship"`
	ShipID       int           `json:"ship_id"`
	ShipName     *string       `json:"ship_name,omitempty"`
	ShipIdent    *string       `json:"ship_ident,omitempty"`
	HullValue    *int64        `json:"hull_value,omitempty"`
	ModulesValue *int64        `json:"modules_value,omitempty"`
	HullHealth   *float64      `json:"hull_health,omitempty"`
	Rebuy        *int64        `json:"rebuy,omitempty"`
	FuelCapacity *FuelCapacity `json:"fuel_capacity,omitempty"`
	Modules      []*Module     `json:"modules,omitempty"`
}

func (*Loadout) Capabilities() Capability { return CapVehicle }

// ShipyardBuy is a ship purchase, optionally storing or selling the old ship.
type ShipyardBuy struct {
	Header
	ShipType     Named   `json:"ship_type"`
	ShipPrice    int64   `json:"ship_price"`
	StoreOldShip *string `json:"store_old_ship,omitempty"`
	StoreShipID  *int    `json:"store_ship_id,omitempty"`
	SellOldShip  *string `json:"sell_old_ship,omitempty"`
	SellShipID   *int    `json:"sell_ship_id,omitempty"`
	SellPrice    *int64  `json:"sell_price,omitempty"`
	MarketID     *int64  `json:"market_id,omitempty"`
}

func (*ShipyardBuy) Capabilities() Capability { return CapLedger | CapVehicle }

// ShipyardSell is the sale of a stored ship.
type ShipyardSell struct {
	Header
	ShipType   Named  `json:"ship_type"`
	SellShipID int    `json:"sell_ship_id"`
	ShipPrice  int64  `json:"ship_price"`
	MarketID   *int64 `json:"market_id,omitempty"`
}

func (*ShipyardSell) Capabilities() Capability { return CapLedger | CapVehicle }

// ShipyardSwap switches to a stored ship.
type ShipyardSwap struct {
	Header
	ShipType     Named   `json:"ship_type"`
	ShipID       int     `json:"ship_id"`
	StoreOldShip *string `json:"store_old_ship,omitempty"`
	StoreShipID  *int    `json:"store_ship_id,omitempty"`
	SellOldShip  *string `json:"sell_old_ship,omitempty"`
	SellShipID   *int    `json:"sell_ship_id,omitempty"`
}

func (*ShipyardSwap) Capabilities() Capability { return CapVehicle }

// ShipyardNew follows ShipyardBuy with the id of the new hull.
type ShipyardNew struct {
	Header
	ShipType  Named `json:"ship_type"`
	NewShipID int   `json:"new_ship_id"`
}

func (*ShipyardNew) Capabilities() Capability { return CapVehicle }

// ShipyardTransfer requests delivery of a stored ship.
type ShipyardTransfer struct {
	Header
	ShipType      Named   `json:"ship_type"`
	ShipID        int     `json:"ship_id"`
	System        string  `json:"system"`
	Distance      float64 `json:"distance"`
	TransferPrice int64   `json:"transfer_price"`
}

func (*ShipyardTransfer) Capabilities() Capability { return CapLedger }

// SetUserShipName renames a ship.
type SetUserShipName struct {
	Header
	Ship         Named  `json:"ship"`
	ShipID       int    `json:"ship_id"`
	UserShipName string `json:"user_ship_name"`
	UserShipID   string `json:"user_ship_id"`
}

func (*SetUserShipName) Capabilities() Capability { return CapVehicle }

// ModuleBuy fits a purchased module, optionally selling or storing the old one.
type ModuleBuy struct {
	Header
	Slot       string `json:"slot"`
	BuyItem    Named  `json:"buy_item"`
	BuyPrice   int64  `json:"buy_price"`
	SellItem   *Named `json:"sell_item,omitempty"`
	SellPrice  *int64 `json:"sell_price,omitempty"`
	StoredItem *Named `json:"stored_item,omitempty"`
	Ship       Named  `json:"ship"`
	ShipID     int    `json:"ship_id"`
}

func (*ModuleBuy) Capabilities() Capability { return CapLedger | CapVehicle }

// ModuleSell sells a fitted module.
type ModuleSell struct {
	Header
	Slot      string `json:"slot"`
	SellItem  Named  `json:"sell_item"`
	SellPrice int64  `json:"sell_price"`
	Ship      Named  `json:"ship"`
	ShipID    int    `json:"ship_id"`
}

func (*ModuleSell) Capabilities() Capability { return CapLedger | CapVehicle }

// ModuleStore moves a fitted module into storage.
type ModuleStore struct {
	Header
	Slot            string `json:"slot"`
	StoredItem      Named  `json:"stored_item"`
	Ship            Named  `json:"ship"`
	ShipID          int    `json:"ship_id"`
	ReplacementItem *Named `json:"replacement_item,omitempty"`
	Cost            *int64 `json:"cost,omitempty"`
}

func (*ModuleStore) Capabilities() Capability { return CapLedger | CapVehicle }

// ModuleRetrieve fits a module from storage.
type ModuleRetrieve struct {
	Header
	Slot          string `json:"slot"`
	RetrievedItem Named  `json:"retrieved_item"`
	Ship          Named  `json:"ship"`
	ShipID        int    `json:"ship_id"`
	SwapOutItem   *Named `json:"swap_out_item,omitempty"`
	Cost          *int64 `json:"cost,omitempty"`
}

func (*ModuleRetrieve) Capabilities() Capability { return CapLedger | CapVehicle }

// RefuelAll fills the main tank.
type RefuelAll struct {
	Header
	Cost   int64   `json:"cost"`
	Amount float64 `json:"amount"`
}

func (*RefuelAll) Capabilities() Capability { return CapLedger | CapVehicle }

// RefuelPartial buys part of a tank.
type RefuelPartial struct {
	Header
	Cost   int64   `json:"cost"`
	Amount float64 `json:"amount"`
}

func (*RefuelPartial) Capabilities() Capability { return CapLedger | CapVehicle }

// RepairAll repairs hull and modules.
type RepairAll struct {
	Header
	Cost int64 `json:"cost"`
}

func (*RepairAll) Capabilities() Capability { return CapLedger | CapVehicle }

// Repair repairs individual items. Older journals carried a single Item.
type Repair struct {
	Header
	Items []string `json:"items"`
	Cost  int64    `json:"cost"`
}

func (*Repair) Capabilities() Capability { return CapLedger | CapVehicle }

// BuyAmmo restocks ammunition.
type BuyAmmo struct {
	Header
	Cost int64 `json:"cost"`
}

func (*BuyAmmo) Capabilities() Capability { return CapLedger }

// RestockVehicle buys a replacement SRV or fighter.
type RestockVehicle struct {
	Header
	Vehicle Named  `json:"vehicle"`
	Loadout string `json:"loadout,omitempty"`
	Cost    int64  `json:"cost"`
	Count   int    `json:"count"`
}

func (*RestockVehicle) Capabilities() Capability { return CapLedger | CapVehicle }

// FuelScoop reports fuel scooped from a star.
type FuelScoop struct {
	Header
	Scooped float64 `json:"scooped"`
	Total   float64 `json:"total"`
}

func (*FuelScoop) Capabilities() Capability { return CapVehicle }

// ReservoirReplenished reports the main tank topping up the reservoir.
type ReservoirReplenished struct {
	Header
	FuelMain      float64 `json:"fuel_main"`
	FuelReservoir float64 `json:"fuel_reservoir"`
}

func (*ReservoirReplenished) Capabilities() Capability { return CapVehicle }

// HullDamage reports hull integrity after damage.
type HullDamage struct {
	Header
	// Health is a percentage, 0..100.
	Health      float64 `json:"health"`
	PlayerPilot bool    `json:"player_pilot"`
	Fighter     bool    `json:"fighter"`
}

func (*HullDamage) Capabilities() Capability { return CapVehicle }

// OutfittingItem is one module for sale.
type OutfittingItem struct {
	ID       int64 `json:"id"`
	Name     Named `json:"name"`
	BuyPrice int64 `json:"buy_price"`
}

// Outfitting is an outfitting visit; the list arrives in Outfitting.json.
type Outfitting struct {
	Header
	MarketID    int64             `json:"market_id"`
	StationName string            `json:"station_name"`
	StarSystem  string            `json:"star_system"`
	Items       []*OutfittingItem `json:"items,omitempty"`
}

func (*Outfitting) Capabilities() Capability { return CapNone }

// ShipyardItem is one hull for sale.
type ShipyardItem struct {
	ID        int64 `json:"id"`
	ShipType  Named `json:"ship_type"`
	ShipPrice int64 `json:"ship_price"`
}

// Shipyard is a shipyard visit; the list arrives in Shipyard.json.
type Shipyard struct {
	Header
	MarketID    int64           `json:"market_id"`
	StationName string          `json:"station_name"`
	StarSystem  string          `json:"star_system"`
	PriceList   []*ShipyardItem `json:"price_list,omitempty"`
}

func (*Shipyard) Capabilities() Capability { return CapNone }

// ModuleSellRemote sells a module from remote storage.
type ModuleSellRemote struct {
	Header
	StorageSlot int    `json:"storage_slot"`
	SellItem    Named  `json:"sell_item"`
	ServerID    int64  `json:"server_id"`
	SellPrice   int64  `json:"sell_price"`
	Ship        *Named `json:"ship,omitempty"`
	ShipID      *int   `json:"ship_id,omitempty"`
}

func (*ModuleSellRemote) Capabilities() Capability { return CapLedger }

// ModuleSwap exchanges the contents of two slots on one ship.
type ModuleSwap struct {
	Header
	MarketID *int64 `json:"market_id,omitempty"`
	FromSlot string `json:"from_slot"`
	ToSlot   string `json:"to_slot"`
	FromItem Named  `json:"from_item"`
	// ToItem is nil when the destination slot was empty.
	ToItem *Named `json:"to_item,omitempty"`
	Ship   Named  `json:"ship"`
	ShipID int    `json:"ship_id"`
}

func (*ModuleSwap) Capabilities() Capability { return CapVehicle }

// FetchRemoteModule orders a stored module shipped to the current station.
type FetchRemoteModule struct {
	Header
	StorageSlot  int   `json:"storage_slot"`
	StoredItem   Named `json:"stored_item"`
	ServerID     int64 `json:"server_id"`
	TransferCost int64 `json:"transfer_cost"`
	TransferTime *int  `json:"transfer_time,omitempty"`
	Ship         Named `json:"ship"`
	ShipID       int   `json:"ship_id"`
}

func (*FetchRemoteModule) Capabilities() Capability { return CapLedger }

// StoredModule is one module sent to storage in bulk.
type StoredModule struct {
	Slot                  string   `json:"slot"`
	Name                  Named    `json:"name"`
	Hot                   bool     `json:"hot"`
	EngineerModifications *string  `json:"engineer_modifications,omitempty"`
	Level                 *int     `json:"level,omitempty"`
	Quality               *float64 `json:"quality,omitempty"`
}

// MassModuleStore sends several modules to storage at once.
type MassModuleStore struct {
	Header
	MarketID *int64          `json:"market_id,omitempty"`
	Ship     Named           `json:"ship"`
	ShipID   int             `json:"ship_id"`
	Items    []*StoredModule `json:"items,omitempty"`
}

func (*MassModuleStore) Capabilities() Capability { return CapVehicle }

// AfmuRepairs is a field repair of one module.
type AfmuRepairs struct {
	Header
	Module        Named `json:"module"`
	FullyRepaired bool  `json:"fully_repaired"`
	// Health is a percentage, 0..100.
	Health float64 `json:"health"`
}

func (*AfmuRepairs) Capabilities() Capability { return CapVehicle }

// HeatWarning fires when the ship passes 100% heat.
type HeatWarning struct{ Header }

func (*HeatWarning) Capabilities() Capability { return CapNone }

// HeatDamage fires when heat starts damaging modules.
type HeatDamage struct{ Header }

func (*HeatDamage) Capabilities() Capability { return CapNone }

// SelfDestruct precedes the Died event it causes.
type SelfDestruct struct{ Header }

func (*SelfDestruct) Capabilities() Capability { return CapNone }
