package event

// MaterialCollected adds engineering materials.
type MaterialCollected struct {
	Header
	Category string `json:"category"`
	Name     Named  `json:"name"`
	Count    int    `json:"count"`
}

func (*MaterialCollected) Capabilities() Capability { return CapInventory | CapStats }

// MaterialDiscarded removes engineering materials.
type MaterialDiscarded struct {
	Header
	Category string `json:"category"`
	Name     Named  `json:"name"`
	Count    int    `json:"count"`
}

func (*MaterialDiscarded) Capabilities() Capability { return CapInventory }

// MaterialCount is one line of the materials inventory.
type MaterialCount struct {
	Name  Named `json:"name"`
	Count int   `json:"count"`
}

// Materials is the full materials inventory written at session start.
type Materials struct {
	Header
	Raw          []*MaterialCount `json:"raw,omitempty"`
	Manufactured []*MaterialCount `json:"manufactured,omitempty"`
	Encoded      []*MaterialCount `json:"encoded,omitempty"`
}

func (*Materials) Capabilities() Capability { return CapInventory }

// EngineerContribution hands credits, commodities or materials to an
// engineer towards an unlock.
type EngineerContribution struct {
	Header
	Engineer      string  `json:"engineer"`
	EngineerID    int64   `json:"engineer_id"`
	Type          string  `json:"type"`
	Commodity     *Named  `json:"commodity,omitempty"`
	Material      *Named  `json:"material,omitempty"`
	Faction       *string `json:"faction,omitempty"`
	Quantity      int     `json:"quantity"`
	TotalQuantity int     `json:"total_quantity"`
}

func (*EngineerContribution) Capabilities() Capability { return CapInventory }

// EngineerCraft applies a blueprint; the ingredients are consumed.
type EngineerCraft struct {
	Header
	Engineer                string           `json:"engineer"`
	EngineerID              int64            `json:"engineer_id"`
	BlueprintName           string           `json:"blueprint_name"`
	BlueprintID             int64            `json:"blueprint_id"`
	Level                   int              `json:"level"`
	Quality                 *float64         `json:"quality,omitempty"`
	ApplyExperimentalEffect *string          `json:"apply_experimental_effect,omitempty"`
	Slot                    *string          `json:"slot,omitempty"`
	Module                  *Named           `json:"module,omitempty"`
	Ingredients             []*MaterialCount `json:"ingredients,omitempty"`
}

func (*EngineerCraft) Capabilities() Capability { return CapInventory | CapStats }

// MaterialTradeLine is one side of a material trader exchange.
type MaterialTradeLine struct {
	Material Named  `json:"material"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// MaterialTrade exchanges materials at a material trader.
type MaterialTrade struct {
	Header
	MarketID   int64              `json:"market_id"`
	TraderType string             `json:"trader_type"`
	Paid       *MaterialTradeLine `json:"paid,omitempty"`
	Received   *MaterialTradeLine `json:"received,omitempty"`
}

func (*MaterialTrade) Capabilities() Capability { return CapInventory }

// BrokerMaterial is one material paid to a technology broker.
type BrokerMaterial struct {
	Name     Named  `json:"name"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TechnologyBroker unlocks modules for commodities and materials.
type TechnologyBroker struct {
	Header
	BrokerType    string            `json:"broker_type"`
	MarketID      int64             `json:"market_id"`
	ItemsUnlocked []*Named          `json:"items_unlocked,omitempty"`
	Commodities   []*MaterialCount  `json:"commodities,omitempty"`
	Materials     []*BrokerMaterial `json:"materials,omitempty"`
}

func (*TechnologyBroker) Capabilities() Capability { return CapInventory }
