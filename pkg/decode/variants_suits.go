package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

var suitVariants = map[event.Type]decodeFunc{
	event.TypeBuySuit: func(r *reader, h event.Header) event.Event {
		return &event.BuySuit{
			Header:   h,
			Name:     r.Named("Name"),
			Price:    r.Credits("Price"),
			SuitID:   r.Int64("SuitID"),
			SuitMods: r.Strings("SuitMods"),
		}
	},
	event.TypeSellSuit: func(r *reader, h event.Header) event.Event {
		return &event.SellSuit{Header: h, Name: r.Named("Name"), Price: r.Credits("Price"), SuitID: r.Int64("SuitID")}
	},
	event.TypeBuyWeapon: func(r *reader, h event.Header) event.Event {
		return &event.BuyWeapon{
			Header:       h,
			Name:         r.Named("Name"),
			Price:        r.Credits("Price"),
			SuitModuleID: r.Int64("SuitModuleID"),
			Class:        r.IntOr("Class", 1),
			WeaponMods:   r.Strings("WeaponMods"),
		}
	},
	event.TypeSellWeapon: func(r *reader, h event.Header) event.Event {
		return &event.SellWeapon{
			Header:       h,
			Name:         r.Named("Name"),
			Price:        r.Credits("Price"),
			SuitModuleID: r.Int64("SuitModuleID"),
		}
	},
	event.TypeBookTaxi: func(r *reader, h event.Header) event.Event {
		return &event.BookTaxi{
			Header:              h,
			Cost:                r.Credits("Cost"),
			DestinationSystem:   r.StringOr("DestinationSystem", ""),
			DestinationLocation: r.StringOr("DestinationLocation", ""),
			Retreat:             r.Flag("Retreat"),
		}
	},
	event.TypeCollectItems: func(r *reader, h event.Header) event.Event {
		return &event.CollectItems{
			Header:  h,
			Name:    r.Named("Name"),
			Type:    r.StringOr("Type", ""),
			OwnerID: r.Int64("OwnerID"),
			Count:   r.IntOr("Count", 1),
			Stolen:  r.Flag("Stolen"),
		}
	},
}
