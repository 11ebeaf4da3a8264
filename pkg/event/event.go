// Package event defines the typed event model decoded from journal records.
//
// Every journal line decodes into exactly one Event. The set of variants is
// closed: each variant embeds Header, declares the projections it can affect
// through Capabilities, and is bound to one decoder in the decode registry.
// Records that cannot be bound or decoded become Residual events so that one
// bad line never costs the rest of the log.
package event

import (
	"encoding/json"
	"strings"
	"time"
)

// Type is the journal discriminator ("event" field).
type Type string

// Capability is the set of projection families an event can affect.
type Capability uint8

const (
	CapLedger Capability = 1 << iota
	CapVehicle
	CapInventory
	CapStats
	CapLocation
	CapDiagnostic
)

// CapNone marks events no projection consumes.
const CapNone Capability = 0

var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{CapLedger, "ledger"},
	{CapVehicle, "vehicle"},
	{CapInventory, "inventory"},
	{CapStats, "stats"},
	{CapLocation, "location"},
	{CapDiagnostic, "diagnostic"},
}

// Has reports whether c shares any bit with other.
func (c Capability) Has(other Capability) bool {
	return c&other != 0
}

func (c Capability) String() string {
	if c == CapNone {
		return "none"
	}
	var parts []string
	for _, cn := range capabilityNames {
		if c&cn.cap != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Header carries the attributes shared by every variant.
type Header struct {
	SequenceID uint64    `json:"seq"`
	Time       time.Time `json:"time"`
	Type       Type      `json:"type"`
	Session    int       `json:"session"`
	// Raw is the original record, kept verbatim for re-serialization and
	// side-file reconciliation.
	Raw json.RawMessage `json:"-"`
	// Degraded lists nested sub-records that failed to decode and were
	// left empty in an otherwise valid event.
	Degraded []string `json:"degraded,omitempty"`
}

// Head returns the header itself; promoted to every variant through embedding.
func (h *Header) Head() *Header { return h }

// Event is implemented by every decoded variant.
type Event interface {
	Head() *Header
	Capabilities() Capability
}

// Before orders events by (time, sequence).
func Before(a, b Event) bool {
	ha, hb := a.Head(), b.Head()
	if !ha.Time.Equal(hb.Time) {
		return ha.Time.Before(hb.Time)
	}
	return ha.SequenceID < hb.SequenceID
}

// Coords is a galactic position in light years.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Named is an identifier together with its display label.
type Named struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (n Named) String() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}
