// Package inventory keeps signed quantities and last trade prices of
// cargo commodities and engineering materials.
package inventory

import (
	"maps"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "inventory"

// Categories. Materials use their journal category, lowercased.
const (
	CategoryCommodity    = "commodity"
	CategoryRaw          = "raw"
	CategoryManufactured = "manufactured"
	CategoryEncoded      = "encoded"
	CategoryMaterial     = "material"
	// CategoryMicroResource holds on-foot goods, components and data.
	CategoryMicroResource = "microresource"
)

// limpets is the commodity line drone purchases and launches move.
var limpets = event.Named{ID: "drones", Label: "Limpet"}

// Item is one inventory line. Count is signed: selling goods the log never
// showed being acquired goes negative rather than being clamped.
type Item struct {
	Category  string      `json:"category"`
	Name      event.Named `json:"name"`
	Count     int64       `json:"count"`
	LastPrice *int64      `json:"last_price,omitempty"`
	// MarketPrice is the latest sell price seen in a market listing.
	MarketPrice *int64 `json:"market_price,omitempty"`
}

// Snapshot is the published view, keyed by "category/id".
type Snapshot struct {
	Items map[string]Item `json:"items"`
}

// Inventory is the inventory projection.
type Inventory struct {
	items map[string]Item
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{items: make(map[string]Item)}
}

// Factory builds empty inventories for the dispatcher.
func Factory() projection.Projection { return New() }

func (inv *Inventory) Name() string               { return Name }
func (inv *Inventory) Interest() event.Capability { return event.CapInventory }

func (inv *Inventory) Clone() projection.Projection {
	return &Inventory{items: maps.Clone(inv.items)}
}

func (inv *Inventory) Snapshot() any {
	return Snapshot{Items: maps.Clone(inv.items)}
}

// Get returns the line for the given category and identifier.
func (inv *Inventory) Get(category, id string) (Item, bool) {
	it, ok := inv.items[Key(category, id)]
	return it, ok
}

// Key is the inventory key of an item.
func Key(category, id string) string {
	return category + "/" + strings.ToLower(id)
}

func (inv *Inventory) Apply(ev event.Event) error {
	switch e := ev.(type) {
	case *event.MarketBuy:
		inv.add(CategoryCommodity, e.Commodity, int64(e.Count), &e.BuyPrice)
	case *event.MarketSell:
		inv.add(CategoryCommodity, e.Commodity, -int64(e.Count), &e.SellPrice)
	case *event.CollectCargo:
		inv.add(CategoryCommodity, e.Commodity, 1, nil)
	case *event.EjectCargo:
		inv.add(CategoryCommodity, e.Commodity, -int64(e.Count), nil)
	case *event.MiningRefined:
		inv.add(CategoryCommodity, e.Commodity, 1, nil)
	case *event.BuyDrones:
		inv.add(CategoryCommodity, limpets, int64(e.Count), &e.BuyPrice)
	case *event.SellDrones:
		inv.add(CategoryCommodity, limpets, -int64(e.Count), &e.SellPrice)
	case *event.LaunchDrone:
		inv.add(CategoryCommodity, limpets, -1, nil)
	case *event.CargoDepot:
		inv.cargoDepot(e)
	case *event.CargoTransfer:
		for _, t := range e.Transfers {
			if t == nil {
				continue
			}
			if t.Direction == "toship" {
				inv.add(CategoryCommodity, t.Type, int64(t.Count), nil)
			} else {
				inv.add(CategoryCommodity, t.Type, -int64(t.Count), nil)
			}
		}
	case *event.SearchAndRescue:
		inv.add(CategoryCommodity, e.Name, -int64(e.Count), nil)
	case *event.Cargo:
		inv.cargo(e)
	case *event.Market:
		inv.market(e)

	case *event.MaterialCollected:
		inv.add(materialCategory(e.Category), e.Name, int64(e.Count), nil)
	case *event.MaterialDiscarded:
		inv.add(materialCategory(e.Category), e.Name, -int64(e.Count), nil)
	case *event.Materials:
		inv.materials(e)
	case *event.MaterialTrade:
		if e.Paid != nil {
			inv.add(materialCategory(e.Paid.Category), e.Paid.Material, -int64(e.Paid.Quantity), nil)
		}
		if e.Received != nil {
			inv.add(materialCategory(e.Received.Category), e.Received.Material, int64(e.Received.Quantity), nil)
		}
	case *event.EngineerCraft:
		for _, in := range e.Ingredients {
			if in != nil {
				inv.consume(in.Name, int64(in.Count))
			}
		}
	case *event.EngineerContribution:
		switch {
		case e.Commodity != nil:
			inv.add(CategoryCommodity, *e.Commodity, -int64(e.Quantity), nil)
		case e.Material != nil:
			inv.consume(*e.Material, int64(e.Quantity))
		}
	case *event.TechnologyBroker:
		for _, c := range e.Commodities {
			if c != nil {
				inv.add(CategoryCommodity, c.Name, -int64(c.Count), nil)
			}
		}
		for _, m := range e.Materials {
			if m != nil {
				inv.add(materialCategory(m.Category), m.Name, -int64(m.Count), nil)
			}
		}
	case *event.CollectItems:
		inv.add(CategoryMicroResource, e.Name, int64(e.Count), nil)

	case *event.MissionCompleted:
		if e.Commodity != nil && e.Count != nil {
			inv.add(CategoryCommodity, *e.Commodity, -int64(*e.Count), nil)
		}
		for _, r := range e.CommodityReward {
			if r != nil {
				inv.add(CategoryCommodity, r.Name, int64(r.Count), nil)
			}
		}
		for _, r := range e.MaterialsReward {
			if r != nil {
				inv.add(materialCategory(r.Category), r.Name, int64(r.Count), nil)
			}
		}
	}
	return nil
}

func (inv *Inventory) add(category string, name event.Named, delta int64, price *int64) {
	key := Key(category, name.ID)
	it, ok := inv.items[key]
	if !ok {
		it = Item{Category: category, Name: name}
	}
	if it.Name.Label == "" {
		it.Name.Label = name.Label
	}
	it.Count += delta
	if price != nil {
		p := *price
		it.LastPrice = &p
	}
	inv.items[key] = it
}

// cargo replaces every commodity count with the manifest. Lines missing
// from the manifest drop to zero but keep their prices. A manifest whose
// detail lives in an unreconciled side file is skipped.
func (inv *Inventory) cargo(e *event.Cargo) {
	if e.Vessel != "" && !strings.EqualFold(e.Vessel, "Ship") {
		return
	}
	if e.Inventory == nil && (e.Count == nil || *e.Count != 0) {
		return
	}
	inv.reset(func(it Item) bool { return it.Category == CategoryCommodity })
	for _, c := range e.Inventory {
		if c != nil {
			inv.add(CategoryCommodity, c.Name, int64(c.Count), nil)
		}
	}
}

func (inv *Inventory) materials(e *event.Materials) {
	inv.reset(func(it Item) bool { return it.Category != CategoryCommodity })
	for category, list := range map[string][]*event.MaterialCount{
		CategoryRaw:          e.Raw,
		CategoryManufactured: e.Manufactured,
		CategoryEncoded:      e.Encoded,
	} {
		for _, m := range list {
			if m != nil {
				inv.add(category, m.Name, int64(m.Count), nil)
			}
		}
	}
}

func (inv *Inventory) market(e *event.Market) {
	for _, m := range e.Items {
		if m == nil {
			continue
		}
		key := Key(CategoryCommodity, m.Name.ID)
		it, ok := inv.items[key]
		if !ok {
			continue
		}
		p := m.SellPrice
		it.MarketPrice = &p
		inv.items[key] = it
	}
}

func (inv *Inventory) reset(match func(Item) bool) {
	for key, it := range inv.items {
		if match(it) {
			it.Count = 0
			inv.items[key] = it
		}
	}
}

// cargoDepot applies a wing mission collection or delivery. Other update
// types only report progress.
func (inv *Inventory) cargoDepot(e *event.CargoDepot) {
	if e.CargoType == nil || e.Count == nil {
		return
	}
	switch e.UpdateType {
	case "Collect":
		inv.add(CategoryCommodity, *e.CargoType, int64(*e.Count), nil)
	case "Deliver":
		inv.add(CategoryCommodity, *e.CargoType, -int64(*e.Count), nil)
	}
}

// consume removes an ingredient whose category the event does not name.
// It charges the line already held, trying materials before commodities.
func (inv *Inventory) consume(name event.Named, count int64) {
	for _, cat := range []string{CategoryRaw, CategoryManufactured, CategoryEncoded, CategoryCommodity} {
		if _, ok := inv.items[Key(cat, name.ID)]; ok {
			inv.add(cat, name, -count, nil)
			return
		}
	}
	inv.add(CategoryMaterial, name, -count, nil)
}

func materialCategory(c string) string {
	c = strings.ToLower(c)
	c = strings.TrimPrefix(c, "$microresource_category_")
	c = strings.TrimSuffix(c, ";")
	switch c {
	case CategoryRaw, CategoryManufactured, CategoryEncoded:
		return c
	}
	return CategoryMaterial
}
