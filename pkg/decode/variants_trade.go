package decode

import (
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

func readMarketItem(r *reader) *event.MarketItem {
	return &event.MarketItem{
		ID:        r.Int64("id"),
		Name:      r.Named("Name"),
		Category:  r.Named("Category"),
		BuyPrice:  r.CreditsOr("BuyPrice"),
		SellPrice: r.CreditsOr("SellPrice"),
		Stock:     r.CreditsOr("Stock"),
		Demand:    r.CreditsOr("Demand"),
	}
}

func readCargoItem(r *reader) *event.CargoItem {
	return &event.CargoItem{
		Name:   r.Named("Name"),
		Count:  r.Int("Count"),
		Stolen: r.IntOr("Stolen", 0),
	}
}

var tradeVariants = map[event.Type]decodeFunc{
	event.TypeMarket: func(r *reader, h event.Header) event.Event {
		return &event.Market{
			Header:      h,
			MarketID:    r.Int64("MarketID"),
			StationName: r.StringOr("StationName", ""),
			StarSystem:  r.StringOr("StarSystem", ""),
			Items:       each(r, "Items", readMarketItem),
		}
	},
	event.TypeMarketBuy: func(r *reader, h event.Header) event.Event {
		return &event.MarketBuy{
			Header:    h,
			MarketID:  r.OptInt64("MarketID"),
			Commodity: r.Named("Type"),
			Count:     r.Int("Count"),
			BuyPrice:  r.Credits("BuyPrice"),
			TotalCost: r.Credits("TotalCost"),
		}
	},
	event.TypeMarketSell: func(r *reader, h event.Header) event.Event {
		return &event.MarketSell{
			Header:       h,
			MarketID:     r.OptInt64("MarketID"),
			Commodity:    r.Named("Type"),
			Count:        r.Int("Count"),
			SellPrice:    r.Credits("SellPrice"),
			TotalSale:    r.Credits("TotalSale"),
			AvgPricePaid: r.OptCredits("AvgPricePaid"),
			IllegalGoods: r.OptBool("IllegalGoods"),
			StolenGoods:  r.OptBool("StolenGoods"),
			BlackMarket:  r.OptBool("BlackMarket"),
		}
	},
	event.TypeBuyTradeData: func(r *reader, h event.Header) event.Event {
		return &event.BuyTradeData{Header: h, System: r.String("System"), Cost: r.Credits("Cost")}
	},
	event.TypeCollectCargo: func(r *reader, h event.Header) event.Event {
		return &event.CollectCargo{Header: h, Commodity: r.Named("Type"), Stolen: r.Flag("Stolen")}
	},
	event.TypeEjectCargo: func(r *reader, h event.Header) event.Event {
		return &event.EjectCargo{
			Header:    h,
			Commodity: r.Named("Type"),
			Count:     r.Int("Count"),
			Abandoned: r.Flag("Abandoned"),
		}
	},
	event.TypeCargo: func(r *reader, h event.Header) event.Event {
		return &event.Cargo{
			Header:    h,
			Vessel:    r.StringOr("Vessel", "Ship"),
			Count:     r.OptInt("Count"),
			Inventory: each(r, "Inventory", readCargoItem),
		}
	},
	event.TypeMiningRefined: func(r *reader, h event.Header) event.Event {
		return &event.MiningRefined{Header: h, Commodity: r.Named("Type")}
	},
}

func readCargoTransferLine(r *reader) *event.CargoTransferLine {
	return &event.CargoTransferLine{
		Type:      r.Named("Type"),
		Count:     r.Int("Count"),
		Direction: strings.ToLower(r.String("Direction")),
	}
}

func readProspectedMaterial(r *reader) *event.ProspectedMaterial {
	return &event.ProspectedMaterial{Name: r.Named("Name"), Proportion: r.Percent("Proportion", ratioPercent)}
}

var cargoVariants = map[event.Type]decodeFunc{
	event.TypeCargoDepot: func(r *reader, h event.Header) event.Event {
		return &event.CargoDepot{
			Header:              h,
			MissionID:           r.Int64("MissionID"),
			UpdateType:          r.String("UpdateType"),
			CargoType:           r.OptNamed("CargoType"),
			Count:               r.OptInt("Count"),
			StartMarketID:       r.OptInt64("StartMarketID"),
			EndMarketID:         r.OptInt64("EndMarketID"),
			ItemsCollected:      r.IntOr("ItemsCollected", 0),
			ItemsDelivered:      r.IntOr("ItemsDelivered", 0),
			TotalItemsToDeliver: r.IntOr("TotalItemsToDeliver", 0),
			Progress:            r.FloatOr("Progress", 0),
		}
	},
	event.TypeCargoTransfer: func(r *reader, h event.Header) event.Event {
		return &event.CargoTransfer{Header: h, Transfers: each(r, "Transfers", readCargoTransferLine)}
	},
	event.TypeBuyDrones: func(r *reader, h event.Header) event.Event {
		return &event.BuyDrones{
			Header:    h,
			Type:      r.StringOr("Type", "Drones"),
			Count:     r.Int("Count"),
			BuyPrice:  r.Credits("BuyPrice"),
			TotalCost: r.Credits("TotalCost"),
		}
	},
	event.TypeSellDrones: func(r *reader, h event.Header) event.Event {
		return &event.SellDrones{
			Header:    h,
			Type:      r.StringOr("Type", "Drones"),
			Count:     r.Int("Count"),
			SellPrice: r.Credits("SellPrice"),
			TotalSale: r.Credits("TotalSale"),
		}
	},
	event.TypeLaunchDrone: func(r *reader, h event.Header) event.Event {
		return &event.LaunchDrone{Header: h, Type: r.String("Type")}
	},
	event.TypeProspectedAsteroid: func(r *reader, h event.Header) event.Event {
		return &event.ProspectedAsteroid{
			Header:             h,
			Materials:          each(r, "Materials", readProspectedMaterial),
			Content:            r.Named("Content"),
			MotherlodeMaterial: r.OptNamed("MotherlodeMaterial"),
			Remaining:          r.Percent("Remaining", ratioPercent),
		}
	},
}
