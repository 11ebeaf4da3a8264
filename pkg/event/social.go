package event

// ReceiveText is an incoming chat line.
type ReceiveText struct {
	Header
	From             Named   `json:"from"`
	Message          string  `json:"message"`
	MessageLocalised *string `json:"message_localised,omitempty"`
	Channel          string  `json:"channel"`
}

func (*ReceiveText) Capabilities() Capability { return CapNone }

// SendText is an outgoing chat line.
type SendText struct {
	Header
	To      string `json:"to"`
	Message string `json:"message"`
	Sent    *bool  `json:"sent,omitempty"`
}

func (*SendText) Capabilities() Capability { return CapNone }

// Friends is a friend status change.
type Friends struct {
	Header
	Status string `json:"status"`
	Name   string `json:"name"`
}

func (*Friends) Capabilities() Capability { return CapNone }

// PowerplayJoin pledges to a power.
type PowerplayJoin struct {
	Header
	Power string `json:"power"`
}

func (*PowerplayJoin) Capabilities() Capability { return CapNone }

// PowerplayLeave withdraws a pledge.
type PowerplayLeave struct {
	Header
	Power string `json:"power"`
}

func (*PowerplayLeave) Capabilities() Capability { return CapNone }

// PowerplaySalary is the weekly powerplay stipend.
type PowerplaySalary struct {
	Header
	Power  string `json:"power"`
	Amount int64  `json:"amount"`
}

func (*PowerplaySalary) Capabilities() Capability { return CapLedger }
