package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

var headerFields = []string{"event", "timestamp"}

var sessionVariants = map[event.Type]decodeFunc{
	event.TypeFileheader: func(r *reader, h event.Header) event.Event {
		return &event.Fileheader{
			Header:      h,
			Part:        r.IntOr("part", 1),
			Language:    r.StringOr("language", ""),
			GameVersion: r.StringOr("gameversion", ""),
			Build:       r.StringOr("build", ""),
			Odyssey:     r.OptBool("Odyssey"),
		}
	},
	event.TypeContinued: func(r *reader, h event.Header) event.Event {
		return &event.Continued{Header: h, Part: r.Int("Part")}
	},
	event.TypeLoadGame: func(r *reader, h event.Header) event.Event {
		return &event.LoadGame{
			Header:       h,
			Commander:    r.String("Commander"),
			FID:          r.OptString("FID"),
			Ship:         r.OptNamed("Ship"),
			ShipID:       r.OptInt("ShipID"),
			ShipName:     r.OptString("ShipName"),
			ShipIdent:    r.OptString("ShipIdent"),
			FuelLevel:    r.OptFloat("FuelLevel"),
			FuelCapacity: r.OptFloat("FuelCapacity"),
			GameMode:     r.OptString("GameMode"),
			Credits:      r.Credits("Credits"),
			Loan:         r.OptCredits("Loan"),
			Odyssey:      r.OptBool("Odyssey"),
		}
	},
	event.TypeCommander: func(r *reader, h event.Header) event.Event {
		return &event.Commander{Header: h, Name: r.String("Name"), FID: r.OptString("FID")}
	},
	event.TypeShutdown: func(_ *reader, h event.Header) event.Event {
		return &event.Shutdown{Header: h}
	},
	event.TypeRank: func(r *reader, h event.Header) event.Event {
		return &event.Rank{Header: h, Ranks: r.IntFields(headerFields...)}
	},
	event.TypeProgress: func(r *reader, h event.Header) event.Event {
		return &event.Progress{Header: h, Percent: r.FloatFields(headerFields...)}
	},
	event.TypePromotion: func(r *reader, h event.Header) event.Event {
		return &event.Promotion{Header: h, Ranks: r.IntFields(headerFields...)}
	},
}
