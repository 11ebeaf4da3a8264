package event

// MarketItem is one commodity line of a market listing.
type MarketItem struct {
	ID        int64 `json:"id"`
	Name      Named `json:"name"`
	Category  Named `json:"category"`
	BuyPrice  int64 `json:"buy_price"`
	SellPrice int64 `json:"sell_price"`
	Stock     int64 `json:"stock"`
	Demand    int64 `json:"demand"`
}

// Market is a market visit; the price list arrives in Market.json.
type Market struct {
	Header
	MarketID    int64         `json:"market_id"`
	StationName string        `json:"station_name"`
	StarSystem  string        `json:"star_system"`
	Items       []*MarketItem `json:"items,omitempty"`
}

func (*Market) Capabilities() Capability { return CapInventory }

// MarketBuy is a commodity purchase.
type MarketBuy struct {
	Header
	MarketID  *int64 `json:"market_id,omitempty"`
	Commodity Named  `json:"commodity"`
	Count     int    `json:"count"`
	BuyPrice  int64  `json:"buy_price"`
	TotalCost int64  `json:"total_cost"`
}

func (*MarketBuy) Capabilities() Capability { return CapLedger | CapInventory | CapStats }

// MarketSell is a commodity sale.
type MarketSell struct {
	Header
	MarketID     *int64 `json:"market_id,omitempty"`
	Commodity    Named  `json:"commodity"`
	Count        int    `json:"count"`
	SellPrice    int64  `json:"sell_price"`
	TotalSale    int64  `json:"total_sale"`
	AvgPricePaid *int64 `json:"avg_price_paid,omitempty"`
	IllegalGoods *bool  `json:"illegal_goods,omitempty"`
	StolenGoods  *bool  `json:"stolen_goods,omitempty"`
	BlackMarket  *bool  `json:"black_market,omitempty"`
}

func (*MarketSell) Capabilities() Capability { return CapLedger | CapInventory | CapStats }

// BuyTradeData is a purchase of trade data for a system.
type BuyTradeData struct {
	Header
	System string `json:"system"`
	Cost   int64  `json:"cost"`
}

func (*BuyTradeData) Capabilities() Capability { return CapLedger }

// CollectCargo is one canister scooped.
type CollectCargo struct {
	Header
	Commodity Named `json:"commodity"`
	Stolen    bool  `json:"stolen"`
}

func (*CollectCargo) Capabilities() Capability { return CapInventory }

// EjectCargo is cargo jettisoned or abandoned.
type EjectCargo struct {
	Header
	Commodity Named `json:"commodity"`
	Count     int   `json:"count"`
	Abandoned bool  `json:"abandoned"`
}

func (*EjectCargo) Capabilities() Capability { return CapInventory }

// CargoItem is one line of a cargo manifest.
type CargoItem struct {
	Name   Named `json:"name"`
	Count  int   `json:"count"`
	Stolen int   `json:"stolen"`
}

// Cargo is a full cargo manifest; older journals keep it in Cargo.json.
type Cargo struct {
	Header
	Vessel    string       `json:"vessel"`
	Count     *int         `json:"count,omitempty"`
	Inventory []*CargoItem `json:"inventory,omitempty"`
}

func (*Cargo) Capabilities() Capability { return CapInventory }

// MiningRefined is one ton of refined ore.
type MiningRefined struct {
	Header
	Commodity Named `json:"commodity"`
}

func (*MiningRefined) Capabilities() Capability { return CapInventory | CapStats }

// CargoDepot is a collection or delivery step of a wing cargo mission.
type CargoDepot struct {
	Header
	MissionID           int64   `json:"mission_id"`
	UpdateType          string  `json:"update_type"`
	CargoType           *Named  `json:"cargo_type,omitempty"`
	Count               *int    `json:"count,omitempty"`
	StartMarketID       *int64  `json:"start_market_id,omitempty"`
	EndMarketID         *int64  `json:"end_market_id,omitempty"`
	ItemsCollected      int     `json:"items_collected"`
	ItemsDelivered      int     `json:"items_delivered"`
	TotalItemsToDeliver int     `json:"total_items_to_deliver"`
	Progress            float64 `json:"progress"`
}

func (*CargoDepot) Capabilities() Capability { return CapInventory }

// CargoTransferLine is one commodity moved between ship, SRV and carrier.
type CargoTransferLine struct {
	Type      Named  `json:"type"`
	Count     int    `json:"count"`
	Direction string `json:"direction"`
}

// CargoTransfer moves cargo between the ship and a carrier or SRV.
type CargoTransfer struct {
	Header
	Transfers []*CargoTransferLine `json:"transfers,omitempty"`
}

func (*CargoTransfer) Capabilities() Capability { return CapInventory }

// BuyDrones is a limpet purchase.
type BuyDrones struct {
	Header
	Type      string `json:"type"`
	Count     int    `json:"count"`
	BuyPrice  int64  `json:"buy_price"`
	TotalCost int64  `json:"total_cost"`
}

func (*BuyDrones) Capabilities() Capability { return CapLedger | CapInventory }

// SellDrones is a limpet sale.
type SellDrones struct {
	Header
	Type      string `json:"type"`
	Count     int    `json:"count"`
	SellPrice int64  `json:"sell_price"`
	TotalSale int64  `json:"total_sale"`
}

func (*SellDrones) Capabilities() Capability { return CapLedger | CapInventory }

// LaunchDrone is one limpet launched.
type LaunchDrone struct {
	Header
	Type string `json:"type"`
}

func (*LaunchDrone) Capabilities() Capability { return CapInventory }

// ProspectedMaterial is one material share of a prospected asteroid.
type ProspectedMaterial struct {
	Name Named `json:"name"`
	// Proportion is a percentage, 0..100.
	Proportion float64 `json:"proportion"`
}

// ProspectedAsteroid is a prospector limpet report.
type ProspectedAsteroid struct {
	Header
	Materials          []*ProspectedMaterial `json:"materials,omitempty"`
	Content            Named                 `json:"content"`
	MotherlodeMaterial *Named                `json:"motherlode_material,omitempty"`
	// Remaining is a percentage, 0..100.
	Remaining float64 `json:"remaining"`
}

func (*ProspectedAsteroid) Capabilities() Capability { return CapStats }
