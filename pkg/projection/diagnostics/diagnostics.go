// Package diagnostics collects the records the core had to degrade:
// Residual events and events with sub-records left empty.
package diagnostics

import (
	"slices"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection"
)

// Name is the projection name.
const Name = "diagnostics"

// Residual describes one record kept as a Residual event.
type Residual struct {
	Seq    uint64               `json:"seq"`
	Tag    string               `json:"tag"`
	Reason event.ResidualReason `json:"reason"`
	Detail string               `json:"detail,omitempty"`
}

// Degraded describes one decoded event with unusable nested data.
type Degraded struct {
	Seq   uint64     `json:"seq"`
	Type  event.Type `json:"type"`
	Notes []string   `json:"notes"`
}

// Snapshot is the published view.
type Snapshot struct {
	Residuals []Residual `json:"residuals"`
	Degraded  []Degraded `json:"degraded"`
	// ByReason counts residuals per reason.
	ByReason map[event.ResidualReason]int `json:"by_reason"`
}

// Diagnostics is the diagnostics projection.
type Diagnostics struct {
	residuals []Residual
	degraded  []Degraded
}

// New returns an empty diagnostics projection.
func New() *Diagnostics { return &Diagnostics{} }

// Factory builds an empty projection for the dispatcher.
func Factory() projection.Projection { return New() }

func (d *Diagnostics) Name() string               { return Name }
func (d *Diagnostics) Interest() event.Capability { return event.CapDiagnostic }

// Apply records Residual events and, independently, degraded notes on any
// event header.
func (d *Diagnostics) Apply(ev event.Event) error {
	h := ev.Head()
	if r, ok := ev.(*event.Residual); ok {
		d.residuals = append(d.residuals, Residual{Seq: h.SequenceID, Tag: r.Tag, Reason: r.Reason, Detail: r.Detail})
	}
	if len(h.Degraded) > 0 {
		d.degraded = append(d.degraded, Degraded{Seq: h.SequenceID, Type: h.Type, Notes: slices.Clone(h.Degraded)})
	}
	return nil
}

// Residuals returns the recorded residuals in application order.
func (d *Diagnostics) Residuals() []Residual { return slices.Clone(d.residuals) }

func (d *Diagnostics) Clone() projection.Projection {
	return &Diagnostics{residuals: slices.Clone(d.residuals), degraded: cloneDegraded(d.degraded)}
}

func (d *Diagnostics) Snapshot() any {
	by := make(map[event.ResidualReason]int)
	for _, r := range d.residuals {
		by[r.Reason]++
	}
	res := slices.Clone(d.residuals)
	if res == nil {
		res = []Residual{}
	}
	deg := cloneDegraded(d.degraded)
	if deg == nil {
		deg = []Degraded{}
	}
	return Snapshot{Residuals: res, Degraded: deg, ByReason: by}
}

func cloneDegraded(in []Degraded) []Degraded {
	if in == nil {
		return nil
	}
	out := make([]Degraded, len(in))
	for i, d := range in {
		d.Notes = slices.Clone(d.Notes)
		out[i] = d
	}
	return out
}
