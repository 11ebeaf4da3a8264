package event

// MergeSummary is maintained incrementally as events are absorbed.
type MergeSummary struct {
	// Count is the display count: the primary plus every constituent.
	Count       int      `json:"count"`
	FirstValue  *float64 `json:"first_value,omitempty"`
	LatestValue *float64 `json:"latest_value,omitempty"`
}

// Merged wraps a primary event and the run of related events it absorbed.
// Its identity is the primary's; constituents are never discarded.
type Merged struct {
	Primary      Event        `json:"-"`
	Constituents []Event      `json:"-"`
	Summary      MergeSummary `json:"summary"`
}

// Head returns the primary's header.
func (m *Merged) Head() *Header { return m.Primary.Head() }

// Capabilities is the union over the primary and all constituents.
func (m *Merged) Capabilities() Capability {
	c := m.Primary.Capabilities()
	for _, ev := range m.Constituents {
		c |= ev.Capabilities()
	}
	return c
}

// Last returns the most recently absorbed event, or the primary.
func (m *Merged) Last() Event {
	if n := len(m.Constituents); n > 0 {
		return m.Constituents[n-1]
	}
	return m.Primary
}

// Events returns the primary followed by the constituents in order.
func (m *Merged) Events() []Event {
	out := make([]Event, 0, 1+len(m.Constituents))
	out = append(out, m.Primary)
	return append(out, m.Constituents...)
}

// Flatten expands merged events into their members, preserving order.
func Flatten(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if m, ok := ev.(*Merged); ok {
			out = append(out, m.Events()...)
			continue
		}
		out = append(out, ev)
	}
	return out
}

// TypeOf returns the discriminator of ev, looking through merged wrappers.
func TypeOf(ev Event) Type {
	return ev.Head().Type
}
