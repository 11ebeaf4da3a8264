package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readComposition(r *reader) *event.Composition {
	return &event.Composition{
		Ice:   r.Percent("Ice", ratioFraction),
		Rock:  r.Percent("Rock", ratioFraction),
		Metal: r.Percent("Metal", ratioFraction),
	}
}

func readShare(r *reader) *event.Share {
	return &event.Share{Name: r.String("Name"), Percent: r.Percent("Percent", ratioPercent)}
}

func readSoldSystem(r *reader) *event.SoldSystem {
	return &event.SoldSystem{SystemName: r.String("SystemName"), NumBodies: r.IntOr("NumBodies", 0)}
}

// Belt clusters carry neither a star type nor a planet class.
func bodyKind(s *event.Scan) event.BodyKind {
	switch {
	case s.StarType != nil:
		return event.BodyStar
	case s.PlanetClass != nil:
		return event.BodyPlanet
	}
	return event.BodyBelt
}

var explorationVariants = map[event.Type]decodeFunc{
	event.TypeScan: func(r *reader, h event.Header) event.Event {
		s := &event.Scan{
			Header:                h,
			ScanType:              r.StringOr("ScanType", ""),
			BodyName:              r.String("BodyName"),
			BodyID:                r.OptInt("BodyID"),
			StarSystem:            r.OptString("StarSystem"),
			SystemAddress:         r.OptInt64("SystemAddress"),
			DistanceFromArrivalLS: r.FloatOr("DistanceFromArrivalLS", 0),
			StarType:              r.OptEnum(enumStarType, "StarType"),
			PlanetClass:           r.OptEnum(enumPlanetClass, "PlanetClass"),
			StellarMass:           r.OptFloat("StellarMass"),
			MassEM:                r.OptFloat("MassEM"),
			Radius:                r.OptFloat("Radius"),
			SurfaceTemperature:    r.OptFloat("SurfaceTemperature"),
			TerraformState:        r.OptEnum(enumTerraform, "TerraformState"),
			Landable:              r.OptBool("Landable"),
			WasDiscovered:         r.OptBool("WasDiscovered"),
			WasMapped:             r.OptBool("WasMapped"),
			Composition:           sub(r, "Composition", readComposition),
			Materials:             each(r, "Materials", readShare),
			Atmosphere:            each(r, "AtmosphereComposition", readShare),
		}
		if s.TerraformState != nil && *s.TerraformState == "" {
			s.TerraformState = nil
		}
		s.Kind = bodyKind(s)
		return s
	},
	event.TypeFSSDiscoveryScan: func(r *reader, h event.Header) event.Event {
		return &event.FSSDiscoveryScan{
			Header:        h,
			Progress:      r.Percent("Progress", ratioFraction),
			BodyCount:     r.Int("BodyCount"),
			NonBodyCount:  r.IntOr("NonBodyCount", 0),
			SystemName:    r.OptString("SystemName"),
			SystemAddress: r.OptInt64("SystemAddress"),
		}
	},
	event.TypeFSSAllBodiesFound: func(r *reader, h event.Header) event.Event {
		return &event.FSSAllBodiesFound{
			Header:        h,
			SystemName:    r.String("SystemName"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Count:         r.IntOr("Count", 0),
		}
	},
	event.TypeSAAScanComplete: func(r *reader, h event.Header) event.Event {
		return &event.SAAScanComplete{
			Header:           h,
			BodyName:         r.String("BodyName"),
			BodyID:           r.OptInt("BodyID"),
			SystemAddress:    r.OptInt64("SystemAddress"),
			ProbesUsed:       r.IntOr("ProbesUsed", 0),
			EfficiencyTarget: r.IntOr("EfficiencyTarget", 0),
		}
	},
	event.TypeSellExplorationData: func(r *reader, h event.Header) event.Event {
		return &event.SellExplorationData{
			Header:        h,
			Systems:       r.Strings("Systems"),
			Discovered:    r.Strings("Discovered"),
			BaseValue:     r.Credits("BaseValue"),
			Bonus:         r.CreditsOr("Bonus"),
			TotalEarnings: r.CreditsOr("TotalEarnings"),
		}
	},
	event.TypeMultiSellExplorationData: func(r *reader, h event.Header) event.Event {
		return &event.MultiSellExplorationData{
			Header:        h,
			Discovered:    each(r, "Discovered", readSoldSystem),
			BaseValue:     r.Credits("BaseValue"),
			Bonus:         r.CreditsOr("Bonus"),
			TotalEarnings: r.Credits("TotalEarnings"),
		}
	},
	event.TypeDiscoveryScan: func(r *reader, h event.Header) event.Event {
		return &event.DiscoveryScan{
			Header:        h,
			SystemAddress: r.OptInt64("SystemAddress"),
			Bodies:        r.IntOr("Bodies", 0),
		}
	},
}

func readSignal(r *reader) *event.Signal {
	return &event.Signal{Type: r.Named("Type"), Count: r.Int("Count")}
}

func readGenus(r *reader) *event.Named {
	n := r.Named("Genus")
	return &n
}

func readOrganicSale(r *reader) *event.OrganicSale {
	return &event.OrganicSale{
		Genus:   r.Named("Genus"),
		Species: r.Named("Species"),
		Variant: r.OptNamed("Variant"),
		Value:   r.Credits("Value"),
		Bonus:   r.CreditsOr("Bonus"),
	}
}

var signalVariants = map[event.Type]decodeFunc{
	event.TypeSAASignalsFound: func(r *reader, h event.Header) event.Event {
		return &event.SAASignalsFound{
			Header:        h,
			BodyName:      r.String("BodyName"),
			BodyID:        r.OptInt("BodyID"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Signals:       each(r, "Signals", readSignal),
			Genuses:       each(r, "Genuses", readGenus),
		}
	},
	event.TypeFSSBodySignals: func(r *reader, h event.Header) event.Event {
		return &event.FSSBodySignals{
			Header:        h,
			BodyName:      r.String("BodyName"),
			BodyID:        r.OptInt("BodyID"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Signals:       each(r, "Signals", readSignal),
		}
	},
	event.TypeFSSSignalDiscovered: func(r *reader, h event.Header) event.Event {
		return &event.FSSSignalDiscovered{
			Header:        h,
			SystemAddress: r.OptInt64("SystemAddress"),
			SignalName:    r.Named("SignalName"),
			SignalType:    r.OptString("SignalType"),
			IsStation:     r.Flag("IsStation"),
			USSType:       r.OptNamed("USSType"),
			ThreatLevel:   r.OptInt("ThreatLevel"),
			TimeRemaining: r.OptFloat("TimeRemaining"),
		}
	},
	event.TypeCodexEntry: func(r *reader, h event.Header) event.Event {
		return &event.CodexEntry{
			Header:        h,
			EntryID:       r.Int64("EntryID"),
			Name:          r.Named("Name"),
			SubCategory:   r.Named("SubCategory"),
			Category:      r.Named("Category"),
			Region:        r.Named("Region"),
			System:        r.StringOr("System", ""),
			SystemAddress: r.OptInt64("SystemAddress"),
			BodyID:        r.OptInt("BodyID"),
			IsNewEntry:    r.Flag("IsNewEntry"),
			VoucherAmount: r.OptCredits("VoucherAmount"),
		}
	},
	event.TypeScanBaryCentre: func(r *reader, h event.Header) event.Event {
		return &event.ScanBaryCentre{
			Header:        h,
			StarSystem:    r.StringOr("StarSystem", ""),
			SystemAddress: r.OptInt64("SystemAddress"),
			BodyID:        r.Int("BodyID"),
			SemiMajorAxis: r.OptFloat("SemiMajorAxis"),
			OrbitalPeriod: r.OptFloat("OrbitalPeriod"),
		}
	},
	event.TypeNavBeaconScan: func(r *reader, h event.Header) event.Event {
		return &event.NavBeaconScan{Header: h, SystemAddress: r.OptInt64("SystemAddress"), NumBodies: r.Int("NumBodies")}
	},
	event.TypeScanOrganic: func(r *reader, h event.Header) event.Event {
		return &event.ScanOrganic{
			Header:        h,
			ScanType:      r.String("ScanType"),
			Genus:         r.Named("Genus"),
			Species:       r.Named("Species"),
			Variant:       r.OptNamed("Variant"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Body:          r.IntOr("Body", 0),
		}
	},
	event.TypeSellOrganicData: func(r *reader, h event.Header) event.Event {
		return &event.SellOrganicData{
			Header:   h,
			MarketID: r.OptInt64("MarketID"),
			BioData:  each(r, "BioData", readOrganicSale),
		}
	},
}
