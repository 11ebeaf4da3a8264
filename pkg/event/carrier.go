package event

import "time"

// CarrierBuy is the purchase of a fleet carrier.
type CarrierBuy struct {
	Header
	BoughtAtMarket int64  `json:"bought_at_market"`
	Location       string `json:"location"`
	SystemAddress  *int64 `json:"system_address,omitempty"`
	CarrierID      int64  `json:"carrier_id"`
	Price          int64  `json:"price"`
	Variant        string `json:"variant"`
	Callsign       string `json:"callsign"`
}

func (*CarrierBuy) Capabilities() Capability { return CapLedger }

// CarrierBankTransfer moves credits between the commander and the carrier.
type CarrierBankTransfer struct {
	Header
	CarrierID      int64 `json:"carrier_id"`
	Deposit        int64 `json:"deposit,omitempty"`
	Withdraw       int64 `json:"withdraw,omitempty"`
	PlayerBalance  int64 `json:"player_balance"`
	CarrierBalance int64 `json:"carrier_balance"`
}

func (*CarrierBankTransfer) Capabilities() Capability { return CapLedger }

// CarrierJumpRequest schedules a carrier jump. The jump itself arrives as
// CarrierJump, or not at all if it is cancelled.
type CarrierJumpRequest struct {
	Header
	CarrierID     int64      `json:"carrier_id"`
	SystemName    string     `json:"system_name"`
	SystemAddress *int64     `json:"system_address,omitempty"`
	Body          *string    `json:"body,omitempty"`
	BodyID        *int       `json:"body_id,omitempty"`
	DepartureTime *time.Time `json:"departure_time,omitempty"`
}

func (*CarrierJumpRequest) Capabilities() Capability { return CapNone }
