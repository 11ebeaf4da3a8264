package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

var vehicleVariants = map[event.Type]decodeFunc{
	event.TypeLaunchSRV: func(r *reader, h event.Header) event.Event {
		return &event.LaunchSRV{
			Header:           h,
			SRVType:          r.OptNamed("SRVType"),
			Loadout:          r.StringOr("Loadout", ""),
			ID:               r.OptInt("ID"),
			PlayerControlled: r.Flag("PlayerControlled"),
		}
	},
	event.TypeDockSRV: func(r *reader, h event.Header) event.Event {
		return &event.DockSRV{Header: h, SRVType: r.OptNamed("SRVType"), ID: r.OptInt("ID")}
	},
	event.TypeSRVDestroyed: func(r *reader, h event.Header) event.Event {
		return &event.SRVDestroyed{Header: h, SRVType: r.OptNamed("SRVType"), ID: r.OptInt("ID")}
	},
	event.TypeLaunchFighter: func(r *reader, h event.Header) event.Event {
		return &event.LaunchFighter{
			Header:           h,
			Loadout:          r.StringOr("Loadout", ""),
			ID:               r.OptInt("ID"),
			PlayerControlled: r.Flag("PlayerControlled"),
		}
	},
	event.TypeDockFighter: func(r *reader, h event.Header) event.Event {
		return &event.DockFighter{Header: h, ID: r.OptInt("ID")}
	},
	event.TypeFighterDestroyed: func(r *reader, h event.Header) event.Event {
		return &event.FighterDestroyed{Header: h, ID: r.OptInt("ID")}
	},
	event.TypeFighterRebuilt: func(r *reader, h event.Header) event.Event {
		return &event.FighterRebuilt{Header: h, Loadout: r.StringOr("Loadout", ""), ID: r.OptInt("ID")}
	},
	event.TypeVehicleSwitch: func(r *reader, h event.Header) event.Event {
		return &event.VehicleSwitch{Header: h, To: r.Enum(enumVehicle, "To")}
	},
	event.TypeCrewMemberJoins: func(r *reader, h event.Header) event.Event {
		return &event.CrewMemberJoins{Header: h, Crew: r.String("Crew"), Telepresence: r.OptBool("Telepresence")}
	},
	event.TypeCrewMemberQuits: func(r *reader, h event.Header) event.Event {
		return &event.CrewMemberQuits{Header: h, Crew: r.String("Crew"), Telepresence: r.OptBool("Telepresence")}
	},
	event.TypeCrewHire: func(r *reader, h event.Header) event.Event {
		return &event.CrewHire{
			Header:     h,
			Name:       r.String("Name"),
			CrewID:     r.OptInt64("CrewID"),
			Faction:    r.StringOr("Faction", ""),
			Cost:       r.Credits("Cost"),
			CombatRank: r.IntOr("CombatRank", 0),
		}
	},
	event.TypeCrewFire: func(r *reader, h event.Header) event.Event {
		return &event.CrewFire{Header: h, Name: r.String("Name"), CrewID: r.OptInt64("CrewID")}
	},
	event.TypeNpcCrewPaidWage: func(r *reader, h event.Header) event.Event {
		return &event.NpcCrewPaidWage{
			Header:      h,
			NpcCrewName: r.String("NpcCrewName"),
			NpcCrewID:   r.OptInt64("NpcCrewId"),
			Amount:      r.Credits("Amount"),
		}
	},
	event.TypeJoinACrew: func(r *reader, h event.Header) event.Event {
		return &event.JoinACrew{Header: h, Captain: r.String("Captain")}
	},
	event.TypeQuitACrew: func(r *reader, h event.Header) event.Event {
		return &event.QuitACrew{Header: h, Captain: r.String("Captain")}
	},
}
