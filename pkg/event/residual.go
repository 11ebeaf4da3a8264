package event

// ResidualReason explains why a record became a Residual.
type ResidualReason string

const (
	ReasonUnknownDiscriminator ResidualReason = "unknown_discriminator"
	ReasonMissingField         ResidualReason = "missing_field"
	ReasonTypeMismatch         ResidualReason = "type_mismatch"
	ReasonMalformedRecord      ResidualReason = "malformed_record"
)

// Residual keeps a record the decoder could not turn into a known variant.
// Header.Type is TypeResidual; Tag is the discriminator as written.
type Residual struct {
	Header
	Tag    string         `json:"tag"`
	Reason ResidualReason `json:"reason"`
	Detail string         `json:"detail,omitempty"`
}

func (*Residual) Capabilities() Capability { return CapDiagnostic }
