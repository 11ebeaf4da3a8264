package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readItemReward(r *reader) *event.ItemReward {
	return &event.ItemReward{
		Name:     r.Named("Name"),
		Category: r.StringOr("Category", ""),
		Count:    r.Int("Count"),
	}
}

func readCommunityGoal(r *reader) *event.CommunityGoalEntry {
	return &event.CommunityGoalEntry{
		CGID:                 r.Int64("CGID"),
		Title:                r.String("Title"),
		SystemName:           r.StringOr("SystemName", ""),
		MarketName:           r.StringOr("MarketName", ""),
		Expiry:               r.OptTime("Expiry"),
		IsComplete:           r.Flag("IsComplete"),
		CurrentTotal:         r.CreditsOr("CurrentTotal"),
		PlayerContribution:   r.CreditsOr("PlayerContribution"),
		NumContributors:      r.CreditsOr("NumContributors"),
		PlayerPercentileBand: r.FloatOr("PlayerPercentileBand", 0),
		PlayerInTopRank:      r.OptBool("PlayerInTopRank"),
		Bonus:                r.OptCredits("Bonus"),
	}
}

var missionVariants = map[event.Type]decodeFunc{
	event.TypeMissionAccepted: func(r *reader, h event.Header) event.Event {
		return &event.MissionAccepted{
			Header:             h,
			MissionID:          r.Int64("MissionID"),
			Name:               r.Named("Name"),
			Faction:            r.StringOr("Faction", ""),
			DestinationSystem:  r.OptString("DestinationSystem"),
			DestinationStation: r.OptString("DestinationStation"),
			Reward:             r.OptCredits("Reward"),
			Expiry:             r.OptTime("Expiry"),
			Commodity:          r.OptNamed("Commodity"),
			Count:              r.OptInt("Count"),
		}
	},
	event.TypeMissionCompleted: func(r *reader, h event.Header) event.Event {
		return &event.MissionCompleted{
			Header:          h,
			MissionID:       r.Int64("MissionID"),
			Name:            r.Named("Name"),
			Faction:         r.StringOr("Faction", ""),
			Reward:          r.OptCredits("Reward"),
			Donation:        r.OptCredits("Donation"),
			Commodity:       r.OptNamed("Commodity"),
			Count:           r.OptInt("Count"),
			CommodityReward: each(r, "CommodityReward", readItemReward),
			MaterialsReward: each(r, "MaterialsReward", readItemReward),
		}
	},
	event.TypeMissionFailed: func(r *reader, h event.Header) event.Event {
		return &event.MissionFailed{
			Header:    h,
			MissionID: r.Int64("MissionID"),
			Name:      r.Named("Name"),
			Fine:      r.OptCredits("Fine"),
		}
	},
	event.TypeMissionAbandoned: func(r *reader, h event.Header) event.Event {
		return &event.MissionAbandoned{
			Header:    h,
			MissionID: r.Int64("MissionID"),
			Name:      r.Named("Name"),
			Fine:      r.OptCredits("Fine"),
		}
	},
	event.TypeCommunityGoal: func(r *reader, h event.Header) event.Event {
		return &event.CommunityGoal{Header: h, CurrentGoals: each(r, "CurrentGoals", readCommunityGoal)}
	},
	event.TypeCommunityGoalReward: func(r *reader, h event.Header) event.Event {
		return &event.CommunityGoalReward{
			Header: h,
			CGID:   r.OptInt64("CGID"),
			Name:   r.String("Name"),
			System: r.StringOr("System", ""),
			Reward: r.Credits("Reward"),
		}
	},
}

var rescueVariants = map[event.Type]decodeFunc{
	event.TypeMissionRedirected: func(r *reader, h event.Header) event.Event {
		return &event.MissionRedirected{
			Header:                h,
			MissionID:             r.Int64("MissionID"),
			Name:                  r.Named("Name"),
			NewDestinationStation: r.StringOr("NewDestinationStation", ""),
			OldDestinationStation: r.StringOr("OldDestinationStation", ""),
			NewDestinationSystem:  r.StringOr("NewDestinationSystem", ""),
			OldDestinationSystem:  r.StringOr("OldDestinationSystem", ""),
		}
	},
	event.TypeSearchAndRescue: func(r *reader, h event.Header) event.Event {
		return &event.SearchAndRescue{
			Header:   h,
			MarketID: r.OptInt64("MarketID"),
			Name:     r.Named("Name"),
			Count:    r.Int("Count"),
			Reward:   r.Credits("Reward"),
		}
	},
	event.TypeCommunityGoalJoin: func(r *reader, h event.Header) event.Event {
		return &event.CommunityGoalJoin{Header: h, CGID: r.Int64("CGID"), Name: r.String("Name"), System: r.StringOr("System", "")}
	},
	event.TypeCommunityGoalDiscard: func(r *reader, h event.Header) event.Event {
		return &event.CommunityGoalDiscard{Header: h, CGID: r.Int64("CGID"), Name: r.String("Name"), System: r.StringOr("System", "")}
	},
}
