package dispatch

// State is the dispatcher lifecycle state.
type State int32

const (
	Idle State = iota
	Replaying
	Committed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Replaying:
		return "REPLAYING"
	case Committed:
		return "COMMITTED"
	case Aborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Observer is notified of every state transition. It runs on the writer's
// goroutine with the writer lock held and must not call back into the
// dispatcher.
type Observer func(from, to State)
