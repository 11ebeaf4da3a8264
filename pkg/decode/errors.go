package decode

import (
	"errors"
	"fmt"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Kind classifies a decode failure.
type Kind string

const (
	KindMissingField         Kind = "missing_field"
	KindTypeMismatch         Kind = "type_mismatch"
	KindUnknownDiscriminator Kind = "unknown_discriminator"
	KindMalformed            Kind = "malformed"
)

var (
	// ErrMissingField matches any DecodeError of kind KindMissingField.
	ErrMissingField = errors.New("missing field")
	// ErrTypeMismatch matches any DecodeError of kind KindTypeMismatch.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnknownDiscriminator matches any DecodeError of kind KindUnknownDiscriminator.
	ErrUnknownDiscriminator = errors.New("unknown discriminator")
	// ErrMalformed matches any DecodeError of kind KindMalformed.
	ErrMalformed = errors.New("malformed record")
)

// DecodeError describes why one record could not be decoded. It is local
// to that record: callers degrade the record to a Residual and continue.
type DecodeError struct {
	Kind     Kind
	Tag      string
	Field    string
	Expected string
	Actual   string
	Err      error
}

// MissingField builds a KindMissingField error.
func MissingField(field string) *DecodeError {
	return &DecodeError{Kind: KindMissingField, Field: field}
}

// TypeMismatch builds a KindTypeMismatch error.
func TypeMismatch(field, expected, actual string) *DecodeError {
	return &DecodeError{Kind: KindTypeMismatch, Field: field, Expected: expected, Actual: actual}
}

func (e *DecodeError) Error() string {
	prefix := "decode"
	if e.Tag != "" {
		prefix = "decode " + e.Tag
	}
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("%s: missing field %q", prefix, e.Field)
	case KindTypeMismatch:
		return fmt.Sprintf("%s: field %q: expected %s, got %s", prefix, e.Field, e.Expected, e.Actual)
	case KindUnknownDiscriminator:
		return fmt.Sprintf("%s: unknown discriminator", prefix)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: malformed record: %v", prefix, e.Err)
		}
		return prefix + ": malformed record"
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == KindMissingField
	case ErrTypeMismatch:
		return e.Kind == KindTypeMismatch
	case ErrUnknownDiscriminator:
		return e.Kind == KindUnknownDiscriminator
	case ErrMalformed:
		return e.Kind == KindMalformed
	}
	return false
}

// Reason maps the error kind onto the residual reason recorded in the event.
func (e *DecodeError) Reason() event.ResidualReason {
	switch e.Kind {
	case KindMissingField:
		return event.ReasonMissingField
	case KindTypeMismatch:
		return event.ReasonTypeMismatch
	case KindUnknownDiscriminator:
		return event.ReasonUnknownDiscriminator
	default:
		return event.ReasonMalformedRecord
	}
}
