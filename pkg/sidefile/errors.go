package sidefile

import (
	"errors"
	"fmt"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// ErrorKind classifies a side-file failure.
type ErrorKind string

const (
	KindUnreadable        ErrorKind = "unreadable"
	KindMalformed         ErrorKind = "malformed"
	KindTimestampMismatch ErrorKind = "timestamp_mismatch"
)

var (
	// ErrUnreadable matches any SideFileError of kind KindUnreadable.
	ErrUnreadable = errors.New("side file unreadable")
	// ErrMalformed matches any SideFileError of kind KindMalformed.
	ErrMalformed = errors.New("side file malformed")
	// ErrTimestampMismatch matches any SideFileError of kind KindTimestampMismatch.
	ErrTimestampMismatch = errors.New("side file timestamp mismatch")
)

// SideFileError reports a side file that could not be reconciled. The
// event keeps the data embedded in its journal line.
type SideFileError struct {
	Kind ErrorKind
	File event.SideFileKind
	Seq  uint64
	Err  error
}

func (e *SideFileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("side file %s (event %d): %s: %v", e.File, e.Seq, e.Kind, e.Err)
	}
	return fmt.Sprintf("side file %s (event %d): %s", e.File, e.Seq, e.Kind)
}

func (e *SideFileError) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *SideFileError) Is(target error) bool {
	switch target {
	case ErrUnreadable:
		return e.Kind == KindUnreadable
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrTimestampMismatch:
		return e.Kind == KindTimestampMismatch
	}
	return false
}
