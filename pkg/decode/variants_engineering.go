package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readMaterialTradeLine(r *reader) *event.MaterialTradeLine {
	return &event.MaterialTradeLine{
		Material: r.Named("Material"),
		Category: r.StringOr("Category", ""),
		Quantity: r.Int("Quantity"),
	}
}

func readBrokerMaterial(r *reader) *event.BrokerMaterial {
	return &event.BrokerMaterial{
		Name:     r.Named("Name"),
		Category: r.StringOr("Category", ""),
		Count:    r.Int("Count"),
	}
}

func readUnlocked(r *reader) *event.Named {
	n := r.Named("Name")
	return &n
}

var engineeringVariants = map[event.Type]decodeFunc{
	event.TypeEngineerContribution: func(r *reader, h event.Header) event.Event {
		return &event.EngineerContribution{
			Header:        h,
			Engineer:      r.StringOr("Engineer", ""),
			EngineerID:    r.Int64("EngineerID"),
			Type:          r.String("Type"),
			Commodity:     r.OptNamed("Commodity"),
			Material:      r.OptNamed("Material"),
			Faction:       r.OptString("Faction"),
			Quantity:      r.Int("Quantity"),
			TotalQuantity: r.IntOr("TotalQuantity", 0),
		}
	},
	event.TypeEngineerCraft: func(r *reader, h event.Header) event.Event {
		return &event.EngineerCraft{
			Header:                  h,
			Engineer:                r.StringOr("Engineer", ""),
			EngineerID:              r.Int64("EngineerID"),
			BlueprintName:           r.String("BlueprintName"),
			BlueprintID:             r.Int64("BlueprintID"),
			Level:                   r.Int("Level"),
			Quality:                 r.OptFloat("Quality"),
			ApplyExperimentalEffect: r.OptString("ApplyExperimentalEffect"),
			Slot:                    r.OptString("Slot"),
			Module:                  r.OptNamed("Module"),
			Ingredients:             each(r, "Ingredients", readMaterialCount),
		}
	},
	event.TypeMaterialTrade: func(r *reader, h event.Header) event.Event {
		return &event.MaterialTrade{
			Header:     h,
			MarketID:   r.Int64("MarketID"),
			TraderType: r.StringOr("TraderType", ""),
			Paid:       sub(r, "Paid", readMaterialTradeLine),
			Received:   sub(r, "Received", readMaterialTradeLine),
		}
	},
	event.TypeTechnologyBroker: func(r *reader, h event.Header) event.Event {
		return &event.TechnologyBroker{
			Header:        h,
			BrokerType:    r.StringOr("BrokerType", ""),
			MarketID:      r.Int64("MarketID"),
			ItemsUnlocked: each(r, "ItemsUnlocked", readUnlocked),
			Commodities:   each(r, "Commodities", readMaterialCount),
			Materials:     each(r, "Materials", readBrokerMaterial),
		}
	},
}
