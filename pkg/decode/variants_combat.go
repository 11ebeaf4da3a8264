package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

func readRewardShare(field string) func(r *reader) *event.FactionReward {
	return func(r *reader) *event.FactionReward {
		return &event.FactionReward{Faction: r.StringOr("Faction", ""), Amount: r.Credits(field)}
	}
}

func readKiller(r *reader) *event.Killer {
	return &event.Killer{
		Name: r.String("Name"),
		Ship: r.StringOr("Ship", ""),
		Rank: r.StringOr("Rank", ""),
	}
}

var combatVariants = map[event.Type]decodeFunc{
	event.TypeBounty: func(r *reader, h event.Header) event.Event {
		return &event.Bounty{
			Header:           h,
			Target:           r.OptNamed("Target"),
			VictimFaction:    r.StringOr("VictimFaction", ""),
			TotalReward:      r.Credits("TotalReward"),
			Rewards:          each(r, "Rewards", readRewardShare("Reward")),
			SharedWithOthers: r.OptInt("SharedWithOthers"),
		}
	},
	event.TypeFactionKillBond: func(r *reader, h event.Header) event.Event {
		return &event.FactionKillBond{
			Header:          h,
			Reward:          r.Credits("Reward"),
			AwardingFaction: r.String("AwardingFaction"),
			VictimFaction:   r.StringOr("VictimFaction", ""),
		}
	},
	event.TypeRedeemVoucher: func(r *reader, h event.Header) event.Event {
		return &event.RedeemVoucher{
			Header:           h,
			Type:             r.String("Type"),
			Amount:           r.Credits("Amount"),
			Factions:         each(r, "Factions", readRewardShare("Amount")),
			BrokerPercentage: r.OptPercent("BrokerPercentage", ratioPercent),
		}
	},
	event.TypePayFines: func(r *reader, h event.Header) event.Event {
		return &event.PayFines{
			Header:   h,
			Amount:   r.Credits("Amount"),
			AllFines: r.Flag("AllFines"),
			Faction:  r.OptString("Faction"),
		}
	},
	event.TypePayBounties: func(r *reader, h event.Header) event.Event {
		return &event.PayBounties{
			Header:   h,
			Amount:   r.Credits("Amount"),
			AllFines: r.Flag("AllFines"),
			Faction:  r.OptString("Faction"),
		}
	},
	event.TypeDied: func(r *reader, h event.Header) event.Event {
		return &event.Died{Header: h, Killers: each(r, "Killers", readKiller)}
	},
	event.TypeResurrect: func(r *reader, h event.Header) event.Event {
		return &event.Resurrect{
			Header:   h,
			Option:   r.String("Option"),
			Cost:     r.Credits("Cost"),
			Bankrupt: r.Flag("Bankrupt"),
		}
	},
	event.TypeInterdicted: func(r *reader, h event.Header) event.Event {
		return &event.Interdicted{
			Header:      h,
			Submitted:   r.Flag("Submitted"),
			Interdictor: r.OptString("Interdictor"),
			IsPlayer:    r.Flag("IsPlayer"),
			Faction:     r.OptString("Faction"),
		}
	},
	event.TypeInterdiction: func(r *reader, h event.Header) event.Event {
		return &event.Interdiction{
			Header:      h,
			Success:     r.Flag("Success"),
			Interdicted: r.OptString("Interdicted"),
			IsPlayer:    r.Flag("IsPlayer"),
			Faction:     r.OptString("Faction"),
		}
	},
}

var crimeVariants = map[event.Type]decodeFunc{
	event.TypeCapShipBond: func(r *reader, h event.Header) event.Event {
		return &event.CapShipBond{
			Header:          h,
			Reward:          r.Credits("Reward"),
			AwardingFaction: r.StringOr("AwardingFaction", ""),
			VictimFaction:   r.StringOr("VictimFaction", ""),
		}
	},
	event.TypeDatalinkVoucher: func(r *reader, h event.Header) event.Event {
		return &event.DatalinkVoucher{
			Header:        h,
			Reward:        r.Credits("Reward"),
			VictimFaction: r.StringOr("VictimFaction", ""),
			PayeeFaction:  r.StringOr("PayeeFaction", ""),
		}
	},
	event.TypeCommitCrime: func(r *reader, h event.Header) event.Event {
		return &event.CommitCrime{
			Header:    h,
			CrimeType: r.String("CrimeType"),
			Faction:   r.StringOr("Faction", ""),
			Victim:    r.OptString("Victim"),
			Fine:      r.OptCredits("Fine"),
			Bounty:    r.OptCredits("Bounty"),
		}
	},
	event.TypeCrimeVictim: func(r *reader, h event.Header) event.Event {
		return &event.CrimeVictim{
			Header:    h,
			Offender:  r.StringOr("Offender", ""),
			CrimeType: r.String("CrimeType"),
			Fine:      r.OptCredits("Fine"),
			Bounty:    r.OptCredits("Bounty"),
		}
	},
	event.TypeEscapeInterdiction: func(r *reader, h event.Header) event.Event {
		return &event.EscapeInterdiction{
			Header:      h,
			Interdictor: r.StringOr("Interdictor", ""),
			IsPlayer:    r.Flag("IsPlayer"),
		}
	},
	event.TypePVPKill: func(r *reader, h event.Header) event.Event {
		return &event.PVPKill{Header: h, Victim: r.String("Victim"), CombatRank: r.IntOr("CombatRank", 0)}
	},
	event.TypeUnderAttack: func(r *reader, h event.Header) event.Event {
		return &event.UnderAttack{Header: h, Target: r.StringOr("Target", "")}
	},
}
