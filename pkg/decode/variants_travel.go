package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readSystemFaction(r *reader) *event.SystemFaction {
	return &event.SystemFaction{Name: r.String("Name"), FactionState: r.OptString("FactionState")}
}

func readFaction(r *reader) *event.Faction {
	return &event.Faction{
		Name:         r.String("Name"),
		FactionState: r.StringOr("FactionState", ""),
		Government:   r.StringOr("Government", ""),
		Allegiance:   r.StringOr("Allegiance", ""),
		Influence:    r.Percent("Influence", ratioFraction),
		MyReputation: r.OptPercent("MyReputation", ratioEra),
	}
}

func readSystemInfo(r *reader) event.SystemInfo {
	return event.SystemInfo{
		Allegiance:    r.OptString("SystemAllegiance"),
		Economy:       r.OptNamed("SystemEconomy"),
		Government:    r.OptNamed("SystemGovernment"),
		Security:      r.OptNamed("SystemSecurity"),
		Population:    r.OptInt64("Population"),
		SystemFaction: sub(r, "SystemFaction", readSystemFaction),
		Factions:      each(r, "Factions", readFaction),
	}
}

func readSurface(r *reader) event.Surface {
	return event.Surface{
		Latitude:         r.OptFloat("Latitude"),
		Longitude:        r.OptFloat("Longitude"),
		StarSystem:       r.OptString("StarSystem"),
		SystemAddress:    r.OptInt64("SystemAddress"),
		Body:             r.OptString("Body"),
		BodyID:           r.OptInt("BodyID"),
		PlayerControlled: r.OptBool("PlayerControlled"),
	}
}

func readRouteLeg(r *reader) *event.RouteLeg {
	leg := &event.RouteLeg{
		StarSystem:    r.String("StarSystem"),
		SystemAddress: r.Int64("SystemAddress"),
		StarClass:     r.StringOr("StarClass", ""),
	}
	if !r.Has("StarPos") {
		r.missing("StarPos")
		return leg
	}
	if pos := r.Coords("StarPos"); pos != nil {
		leg.StarPos = *pos
	}
	return leg
}

var travelVariants = map[event.Type]decodeFunc{
	event.TypeLocation: func(r *reader, h event.Header) event.Event {
		return &event.Location{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			StarPos:       r.Coords("StarPos"),
			Docked:        r.Flag("Docked"),
			StationName:   r.OptString("StationName"),
			StationType:   r.OptString("StationType"),
			MarketID:      r.OptInt64("MarketID"),
			Body:          r.OptString("Body"),
			BodyID:        r.OptInt("BodyID"),
			SystemInfo:    readSystemInfo(r),
		}
	},
	event.TypeFSDJump: func(r *reader, h event.Header) event.Event {
		return &event.FSDJump{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			StarPos:       r.Coords("StarPos"),
			JumpDist:      r.FloatOr("JumpDist", 0),
			FuelUsed:      r.FloatOr("FuelUsed", 0),
			FuelLevel:     r.OptFloat("FuelLevel"),
			SystemInfo:    readSystemInfo(r),
		}
	},
	event.TypeCarrierJump: func(r *reader, h event.Header) event.Event {
		return &event.CarrierJump{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			StarPos:       r.Coords("StarPos"),
			Docked:        r.Flag("Docked"),
			StationName:   r.OptString("StationName"),
			MarketID:      r.OptInt64("MarketID"),
			SystemInfo:    readSystemInfo(r),
		}
	},
	event.TypeStartJump: func(r *reader, h event.Header) event.Event {
		return &event.StartJump{
			Header:        h,
			JumpType:      r.String("JumpType"),
			StarSystem:    r.OptString("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			StarClass:     r.OptEnum(enumStarType, "StarClass"),
		}
	},
	event.TypeFSDTarget: func(r *reader, h event.Header) event.Event {
		return &event.FSDTarget{
			Header:                h,
			Name:                  r.String("Name"),
			SystemAddress:         r.OptInt64("SystemAddress"),
			StarClass:             r.OptEnum(enumStarType, "StarClass"),
			RemainingJumpsInRoute: r.OptInt("RemainingJumpsInRoute"),
		}
	},
	event.TypeDocked: func(r *reader, h event.Header) event.Event {
		return &event.Docked{
			Header:          h,
			StationName:     r.String("StationName"),
			StationType:     r.OptString("StationType"),
			StarSystem:      r.String("StarSystem"),
			SystemAddress:   r.OptInt64("SystemAddress"),
			MarketID:        r.OptInt64("MarketID"),
			StationFaction:  sub(r, "StationFaction", readSystemFaction),
			DistFromStarLS:  r.OptFloat("DistFromStarLS"),
			StationServices: r.Strings("StationServices"),
		}
	},
	event.TypeUndocked: func(r *reader, h event.Header) event.Event {
		return &event.Undocked{
			Header:      h,
			StationName: r.String("StationName"),
			StationType: r.OptString("StationType"),
			MarketID:    r.OptInt64("MarketID"),
		}
	},
	event.TypeSupercruiseEntry: func(r *reader, h event.Header) event.Event {
		return &event.SupercruiseEntry{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
		}
	},
	event.TypeSupercruiseExit: func(r *reader, h event.Header) event.Event {
		return &event.SupercruiseExit{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Body:          r.StringOr("Body", ""),
			BodyID:        r.OptInt("BodyID"),
			BodyType:      r.OptString("BodyType"),
		}
	},
	event.TypeApproachBody: func(r *reader, h event.Header) event.Event {
		return &event.ApproachBody{
			Header:        h,
			StarSystem:    r.String("StarSystem"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Body:          r.String("Body"),
			BodyID:        r.OptInt("BodyID"),
		}
	},
	event.TypeTouchdown: func(r *reader, h event.Header) event.Event {
		return &event.Touchdown{Header: h, Surface: readSurface(r)}
	},
	event.TypeLiftoff: func(r *reader, h event.Header) event.Event {
		return &event.Liftoff{Header: h, Surface: readSurface(r)}
	},
	event.TypeNavRoute: func(r *reader, h event.Header) event.Event {
		return &event.NavRoute{Header: h, Route: each(r, "Route", readRouteLeg)}
	},
	event.TypeNavRouteClear: func(_ *reader, h event.Header) event.Event {
		return &event.NavRouteClear{Header: h}
	},
}

func readTransfer(r *reader) event.Transfer {
	return event.Transfer{
		SRV:           r.Flag("SRV"),
		Taxi:          r.Flag("Taxi"),
		Multicrew:     r.Flag("Multicrew"),
		ID:            r.OptInt("ID"),
		StarSystem:    r.StringOr("StarSystem", ""),
		SystemAddress: r.OptInt64("SystemAddress"),
		Body:          r.OptString("Body"),
		OnStation:     r.Flag("OnStation"),
		OnPlanet:      r.Flag("OnPlanet"),
		StationName:   r.OptString("StationName"),
	}
}

var dockingVariants = map[event.Type]decodeFunc{
	event.TypeDockingRequested: func(r *reader, h event.Header) event.Event {
		return &event.DockingRequested{
			Header:      h,
			StationName: r.String("StationName"),
			StationType: r.OptString("StationType"),
			MarketID:    r.OptInt64("MarketID"),
		}
	},
	event.TypeDockingGranted: func(r *reader, h event.Header) event.Event {
		return &event.DockingGranted{
			Header:      h,
			StationName: r.String("StationName"),
			StationType: r.OptString("StationType"),
			MarketID:    r.OptInt64("MarketID"),
			LandingPad:  r.Int("LandingPad"),
		}
	},
	event.TypeDockingDenied: func(r *reader, h event.Header) event.Event {
		return &event.DockingDenied{
			Header:      h,
			StationName: r.String("StationName"),
			StationType: r.OptString("StationType"),
			MarketID:    r.OptInt64("MarketID"),
			Reason:      r.StringOr("Reason", "Unknown"),
		}
	},
	event.TypeEmbark: func(r *reader, h event.Header) event.Event {
		return &event.Embark{Header: h, Transfer: readTransfer(r)}
	},
	event.TypeDisembark: func(r *reader, h event.Header) event.Event {
		return &event.Disembark{Header: h, Transfer: readTransfer(r)}
	},
	event.TypeJetConeBoost: func(r *reader, h event.Header) event.Event {
		return &event.JetConeBoost{Header: h, BoostValue: r.Float("BoostValue")}
	},
	event.TypeUSSDrop: func(r *reader, h event.Header) event.Event {
		return &event.USSDrop{Header: h, USSType: r.Named("USSType"), USSThreat: r.IntOr("USSThreat", 0)}
	},
	event.TypeLeaveBody: func(r *reader, h event.Header) event.Event {
		return &event.LeaveBody{
			Header:        h,
			StarSystem:    r.StringOr("StarSystem", ""),
			SystemAddress: r.OptInt64("SystemAddress"),
			Body:          r.String("Body"),
			BodyID:        r.OptInt("BodyID"),
		}
	},
}
