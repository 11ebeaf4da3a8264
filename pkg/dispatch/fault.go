package dispatch

import (
	"errors"
	"fmt"
)

// Fault stages.
const (
	StageCancelled = "cancelled"
	StageBudget    = "budget"
	StageApply     = "apply"
	StageSnapshot  = "snapshot"
)

// ErrBudgetExceeded is the cause of a fault raised when a fold exceeds the
// configured event budget.
var ErrBudgetExceeded = errors.New("dispatch: event budget exceeded")

// ReplayFault aborts a fold. The working state is discarded and the last
// committed snapshot stays current.
type ReplayFault struct {
	Stage string
	// Seq is the sequence id of the event being folded, zero when the fault
	// is not tied to one.
	Seq   uint64
	Cause error
	// Retryable is true when running the same fold again can succeed.
	Retryable bool
}

func (f *ReplayFault) Error() string {
	if f.Seq != 0 {
		return fmt.Sprintf("replay fault (%s) at event %d: %v", f.Stage, f.Seq, f.Cause)
	}
	return fmt.Sprintf("replay fault (%s): %v", f.Stage, f.Cause)
}

func (f *ReplayFault) Unwrap() error { return f.Cause }

// Recommendation is a short operator hint for the fault.
func (f *ReplayFault) Recommendation() string {
	switch {
	case f.Retryable:
		return "retry the replay from the start"
	case f.Stage == StageBudget:
		return "raise the event budget or replay a shorter range"
	default:
		return "do not retry; inspect the failing projection"
	}
}
