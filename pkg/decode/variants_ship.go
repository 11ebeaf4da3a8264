package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readModule(r *reader) *event.Module {
	return &event.Module{
		Slot:     r.String("Slot"),
		Item:     r.Named("Item"),
		On:       r.Flag("On"),
		Priority: r.OptInt("Priority"),
		Health:   r.OptPercent("Health", ratioFraction),
		Value:    r.OptCredits("Value"),
	}
}

func readFuelCapacity(r *reader) *event.FuelCapacity {
	return &event.FuelCapacity{Main: r.Float("Main"), Reserve: r.FloatOr("Reserve", 0)}
}

func readOutfittingItem(r *reader) *event.OutfittingItem {
	return &event.OutfittingItem{ID: r.Int64("id"), Name: r.Named("Name"), BuyPrice: r.Credits("BuyPrice")}
}

func readShipyardItem(r *reader) *event.ShipyardItem {
	return &event.ShipyardItem{ID: r.Int64("id"), ShipType: r.Named("ShipType"), ShipPrice: r.Credits("ShipPrice")}
}

var shipVariants = map[event.Type]decodeFunc{
	event.TypeLoadout: func(r *reader, h event.Header) event.Event {
		return &event.Loadout{
			Header:       h,
			Ship:         r.Named("Ship"),
			ShipID:       r.Int("ShipID"),
			ShipName:     r.OptString("ShipName"),
			ShipIdent:    r.OptString("ShipIdent"),
			HullValue:    r.OptCredits("HullValue"),
			ModulesValue: r.OptCredits("ModulesValue"),
			HullHealth:   r.OptPercent("HullHealth", ratioFraction),
			Rebuy:        r.OptCredits("Rebuy"),
			FuelCapacity: sub(r, "FuelCapacity", readFuelCapacity),
			Modules:      each(r, "Modules", readModule),
		}
	},
	event.TypeShipyardBuy: func(r *reader, h event.Header) event.Event {
		return &event.ShipyardBuy{
			Header:       h,
			ShipType:     r.Named("ShipType"),
			ShipPrice:    r.Credits("ShipPrice"),
			StoreOldShip: r.OptString("StoreOldShip"),
			StoreShipID:  r.OptInt("StoreShipID"),
			SellOldShip:  r.OptString("SellOldShip"),
			SellShipID:   r.OptInt("SellShipID"),
			SellPrice:    r.OptCredits("SellPrice"),
			MarketID:     r.OptInt64("MarketID"),
		}
	},
	event.TypeShipyardSell: func(r *reader, h event.Header) event.Event {
		return &event.ShipyardSell{
			Header:     h,
			ShipType:   r.Named("ShipType"),
			SellShipID: r.Int("SellShipID"),
			ShipPrice:  r.Credits("ShipPrice"),
			MarketID:   r.OptInt64("MarketID"),
		}
	},
	event.TypeShipyardSwap: func(r *reader, h event.Header) event.Event {
		return &event.ShipyardSwap{
			Header:       h,
			ShipType:     r.Named("ShipType"),
			ShipID:       r.Int("ShipID"),
			StoreOldShip: r.OptString("StoreOldShip"),
			StoreShipID:  r.OptInt("StoreShipID"),
			SellOldShip:  r.OptString("SellOldShip"),
			SellShipID:   r.OptInt("SellShipID"),
		}
	},
	event.TypeShipyardNew: func(r *reader, h event.Header) event.Event {
		return &event.ShipyardNew{Header: h, ShipType: r.Named("ShipType"), NewShipID: r.Int("NewShipID")}
	},
	event.TypeShipyardTransfer: func(r *reader, h event.Header) event.Event {
		return &event.ShipyardTransfer{
			Header:        h,
			ShipType:      r.Named("ShipType"),
			ShipID:        r.Int("ShipID"),
			System:        r.StringOr("System", ""),
			Distance:      r.FloatOr("Distance", 0),
			TransferPrice: r.Credits("TransferPrice"),
		}
	},
	event.TypeSetUserShipName: func(r *reader, h event.Header) event.Event {
		return &event.SetUserShipName{
			Header:       h,
			Ship:         r.Named("Ship"),
			ShipID:       r.Int("ShipID"),
			UserShipName: r.StringOr("UserShipName", ""),
			UserShipID:   r.StringOr("UserShipId", ""),
		}
	},
	event.TypeModuleBuy: func(r *reader, h event.Header) event.Event {
		return &event.ModuleBuy{
			Header:     h,
			Slot:       r.String("Slot"),
			BuyItem:    r.Named("BuyItem"),
			BuyPrice:   r.Credits("BuyPrice"),
			SellItem:   r.OptNamed("SellItem"),
			SellPrice:  r.OptCredits("SellPrice"),
			StoredItem: r.OptNamed("StoredItem"),
			Ship:       r.Named("Ship"),
			ShipID:     r.Int("ShipID"),
		}
	},
	event.TypeModuleSell: func(r *reader, h event.Header) event.Event {
		return &event.ModuleSell{
			Header:    h,
			Slot:      r.String("Slot"),
			SellItem:  r.Named("SellItem"),
			SellPrice: r.Credits("SellPrice"),
			Ship:      r.Named("Ship"),
			ShipID:    r.Int("ShipID"),
		}
	},
	event.TypeModuleStore: func(r *reader, h event.Header) event.Event {
		return &event.ModuleStore{
			Header:          h,
			Slot:            r.String("Slot"),
			StoredItem:      r.Named("StoredItem"),
			Ship:            r.Named("Ship"),
			ShipID:          r.Int("ShipID"),
			ReplacementItem: r.OptNamed("ReplacementItem"),
			Cost:            r.OptCredits("Cost"),
		}
	},
	event.TypeModuleRetrieve: func(r *reader, h event.Header) event.Event {
		return &event.ModuleRetrieve{
			Header:        h,
			Slot:          r.String("Slot"),
			RetrievedItem: r.Named("RetrievedItem"),
			Ship:          r.Named("Ship"),
			ShipID:        r.Int("ShipID"),
			SwapOutItem:   r.OptNamed("SwapOutItem"),
			Cost:          r.OptCredits("Cost"),
		}
	},
	event.TypeRefuelAll: func(r *reader, h event.Header) event.Event {
		return &event.RefuelAll{Header: h, Cost: r.Credits("Cost"), Amount: r.FloatOr("Amount", 0)}
	},
	event.TypeRefuelPartial: func(r *reader, h event.Header) event.Event {
		return &event.RefuelPartial{Header: h, Cost: r.Credits("Cost"), Amount: r.FloatOr("Amount", 0)}
	},
	event.TypeRepairAll: func(r *reader, h event.Header) event.Event {
		return &event.RepairAll{Header: h, Cost: r.Credits("Cost")}
	},
	event.TypeRepair: func(r *reader, h event.Header) event.Event {
		return &event.Repair{Header: h, Items: r.Strings("Items"), Cost: r.Credits("Cost")}
	},
	event.TypeBuyAmmo: func(r *reader, h event.Header) event.Event {
		return &event.BuyAmmo{Header: h, Cost: r.Credits("Cost")}
	},
	event.TypeRestockVehicle: func(r *reader, h event.Header) event.Event {
		return &event.RestockVehicle{
			Header:  h,
			Vehicle: r.Named("Vehicle"),
			Loadout: r.StringOr("Loadout", ""),
			Cost:    r.Credits("Cost"),
			Count:   r.IntOr("Count", 1),
		}
	},
	event.TypeFuelScoop: func(r *reader, h event.Header) event.Event {
		return &event.FuelScoop{Header: h, Scooped: r.Float("Scooped"), Total: r.Float("Total")}
	},
	event.TypeReservoirReplenished: func(r *reader, h event.Header) event.Event {
		return &event.ReservoirReplenished{
			Header:        h,
			FuelMain:      r.Float("FuelMain"),
			FuelReservoir: r.Float("FuelReservoir"),
		}
	},
	event.TypeHullDamage: func(r *reader, h event.Header) event.Event {
		return &event.HullDamage{
			Header:      h,
			Health:      r.Percent("Health", ratioFraction),
			PlayerPilot: r.Flag("PlayerPilot"),
			Fighter:     r.Flag("Fighter"),
		}
	},
	event.TypeOutfitting: func(r *reader, h event.Header) event.Event {
		return &event.Outfitting{
			Header:      h,
			MarketID:    r.Int64("MarketID"),
			StationName: r.StringOr("StationName", ""),
			StarSystem:  r.StringOr("StarSystem", ""),
			Items:       each(r, "Items", readOutfittingItem),
		}
	},
	event.TypeShipyard: func(r *reader, h event.Header) event.Event {
		return &event.Shipyard{
			Header:      h,
			MarketID:    r.Int64("MarketID"),
			StationName: r.StringOr("StationName", ""),
			StarSystem:  r.StringOr("StarSystem", ""),
			PriceList:   each(r, "PriceList", readShipyardItem),
		}
	},
}

func readStoredModule(r *reader) *event.StoredModule {
	return &event.StoredModule{
		Slot:                  r.String("Slot"),
		Name:                  r.Named("Name"),
		Hot:                   r.Flag("Hot"),
		EngineerModifications: r.OptString("EngineerModifications"),
		Level:                 r.OptInt("Level"),
		Quality:               r.OptFloat("Quality"),
	}
}

var shipSystemVariants = map[event.Type]decodeFunc{
	event.TypeModuleSellRemote: func(r *reader, h event.Header) event.Event {
		return &event.ModuleSellRemote{
			Header:      h,
			StorageSlot: r.Int("StorageSlot"),
			SellItem:    r.Named("SellItem"),
			ServerID:    r.Int64("ServerId"),
			SellPrice:   r.Credits("SellPrice"),
			Ship:        r.OptNamed("Ship"),
			ShipID:      r.OptInt("ShipID"),
		}
	},
	event.TypeModuleSwap: func(r *reader, h event.Header) event.Event {
		e := &event.ModuleSwap{
			Header:   h,
			MarketID: r.OptInt64("MarketID"),
			FromSlot: r.String("FromSlot"),
			ToSlot:   r.String("ToSlot"),
			FromItem: r.Named("FromItem"),
			Ship:     r.Named("Ship"),
			ShipID:   r.Int("ShipID"),
		}
		// An empty destination is written as the literal "Null".
		if to := r.OptNamed("ToItem"); to != nil && to.ID != "null" && to.ID != "" {
			e.ToItem = to
		}
		return e
	},
	event.TypeFetchRemoteModule: func(r *reader, h event.Header) event.Event {
		return &event.FetchRemoteModule{
			Header:       h,
			StorageSlot:  r.Int("StorageSlot"),
			StoredItem:   r.Named("StoredItem"),
			ServerID:     r.Int64("ServerId"),
			TransferCost: r.Credits("TransferCost"),
			TransferTime: r.OptInt("TransferTime"),
			Ship:         r.Named("Ship"),
			ShipID:       r.Int("ShipID"),
		}
	},
	event.TypeMassModuleStore: func(r *reader, h event.Header) event.Event {
		return &event.MassModuleStore{
			Header:   h,
			MarketID: r.OptInt64("MarketID"),
			Ship:     r.Named("Ship"),
			ShipID:   r.Int("ShipID"),
			Items:    each(r, "Items", readStoredModule),
		}
	},
	event.TypeAfmuRepairs: func(r *reader, h event.Header) event.Event {
		return &event.AfmuRepairs{
			Header:        h,
			Module:        r.Named("Module"),
			FullyRepaired: r.Flag("FullyRepaired"),
			Health:        r.Percent("Health", ratioFraction),
		}
	},
	event.TypeHeatWarning: func(r *reader, h event.Header) event.Event {
		return &event.HeatWarning{Header: h}
	},
	event.TypeHeatDamage: func(r *reader, h event.Header) event.Event {
		return &event.HeatDamage{Header: h}
	},
	event.TypeSelfDestruct: func(r *reader, h event.Header) event.Event {
		return &event.SelfDestruct{Header: h}
	},
}
