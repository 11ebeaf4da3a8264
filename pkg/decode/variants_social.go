package decode

import "github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"

var socialVariants = map[event.Type]decodeFunc{
	event.TypeReceiveText: func(r *reader, h event.Header) event.Event {
		return &event.ReceiveText{
			Header:           h,
			From:             r.Named("From"),
			Message:          r.String("Message"),
			MessageLocalised: r.OptString("Message_Localised"),
			Channel:          r.Enum(enumChannel, "Channel"),
		}
	},
	event.TypeSendText: func(r *reader, h event.Header) event.Event {
		return &event.SendText{
			Header:  h,
			To:      r.String("To"),
			Message: r.String("Message"),
			Sent:    r.OptBool("Sent"),
		}
	},
	event.TypeFriends: func(r *reader, h event.Header) event.Event {
		return &event.Friends{
			Header: h,
			Status: r.Enum(enumFriendStatus, "Status"),
			Name:   r.String("Name"),
		}
	},
}

func readMaterialCount(r *reader) *event.MaterialCount {
	return &event.MaterialCount{Name: r.Named("Name"), Count: r.Int("Count")}
}

var materialVariants = map[event.Type]decodeFunc{
	event.TypeMaterialCollected: func(r *reader, h event.Header) event.Event {
		return &event.MaterialCollected{
			Header:   h,
			Category: r.String("Category"),
			Name:     r.Named("Name"),
			Count:    r.IntOr("Count", 1),
		}
	},
	event.TypeMaterialDiscarded: func(r *reader, h event.Header) event.Event {
		return &event.MaterialDiscarded{
			Header:   h,
			Category: r.String("Category"),
			Name:     r.Named("Name"),
			Count:    r.IntOr("Count", 1),
		}
	},
	event.TypeMaterials: func(r *reader, h event.Header) event.Event {
		return &event.Materials{
			Header:       h,
			Raw:          each(r, "Raw", readMaterialCount),
			Manufactured: each(r, "Manufactured", readMaterialCount),
			Encoded:      each(r, "Encoded", readMaterialCount),
		}
	},
}

var powerplayVariants = map[event.Type]decodeFunc{
	event.TypePowerplayJoin: func(r *reader, h event.Header) event.Event {
		return &event.PowerplayJoin{Header: h, Power: r.String("Power")}
	},
	event.TypePowerplayLeave: func(r *reader, h event.Header) event.Event {
		return &event.PowerplayLeave{Header: h, Power: r.String("Power")}
	},
	event.TypePowerplaySalary: func(r *reader, h event.Header) event.Event {
		return &event.PowerplaySalary{Header: h, Power: r.String("Power"), Amount: r.Credits("Amount")}
	},
}
