package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

var carrierVariants = map[event.Type]decodeFunc{
	event.TypeCarrierBuy: func(r *reader, h event.Header) event.Event {
		return &event.CarrierBuy{
			Header:         h,
			BoughtAtMarket: r.Int64("BoughtAtMarket"),
			Location:       r.StringOr("Location", ""),
			SystemAddress:  r.OptInt64("SystemAddress"),
			CarrierID:      r.Int64("CarrierID"),
			Price:          r.Credits("Price"),
			Variant:        r.StringOr("Variant", ""),
			Callsign:       r.StringOr("Callsign", ""),
		}
	},
	event.TypeCarrierBankTransfer: func(r *reader, h event.Header) event.Event {
		return &event.CarrierBankTransfer{
			Header:         h,
			CarrierID:      r.Int64("CarrierID"),
			Deposit:        r.CreditsOr("Deposit"),
			Withdraw:       r.CreditsOr("Withdraw"),
			PlayerBalance:  r.Credits("PlayerBalance"),
			CarrierBalance: r.Credits("CarrierBalance"),
		}
	},
	event.TypeCarrierJumpRequest: func(r *reader, h event.Header) event.Event {
		return &event.CarrierJumpRequest{
			Header:        h,
			CarrierID:     r.Int64("CarrierID"),
			SystemName:    r.String("SystemName"),
			SystemAddress: r.OptInt64("SystemAddress"),
			Body:          r.OptString("Body"),
			BodyID:        r.OptInt("BodyID"),
			DepartureTime: r.OptTime("DepartureTime"),
		}
	},
}
