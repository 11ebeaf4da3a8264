// Package sidefile reconciles abbreviated journal events with the side
// files (Market.json, NavRoute.json, ...) that carry their full detail.
//
// A side file only describes the most recent event of its kind, so only
// that event is reconciled. Reconciliation never patches an event in
// place: the side-file keys are overlaid on the event's original record
// and the result is decoded again, replacing the event by identity.
package sidefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/decode"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const baseSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["event", "timestamp"%s],
	"properties": {
		"event": {"type": "string"},
		"timestamp": {"type": "string", "format": "date-time"}%s
	}
}`

// Payload fields each kind must carry to be worth reconciling.
var payloads = map[event.SideFileKind]struct {
	field  string
	schema string
}{
	event.SideFileMarket:     {"Items", `{"type": "array"}`},
	event.SideFileNavRoute:   {"Route", `{"type": "array"}`},
	event.SideFileCargo:      {"Inventory", `{"type": "array"}`},
	event.SideFileOutfitting: {"Items", `{"type": "array"}`},
	event.SideFileShipyard:   {"PriceList", `{"type": "array"}`},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ContextFunc returns the decode context an event was decoded with.
type ContextFunc func(ev event.Event) decode.Context

// Reconciler re-decodes events against their side files.
type Reconciler struct {
	decoder *decode.Decoder
	source  Source
	schemas map[event.SideFileKind]*jsonschema.Schema
	logger  *slog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) { r.logger = l }
}

// New compiles the side-file schemas.
func New(dec *decode.Decoder, src Source, opts ...Option) (*Reconciler, error) {
	r := &Reconciler{
		decoder: dec,
		source:  src,
		schemas: make(map[event.SideFileKind]*jsonschema.Schema, len(payloads)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "sidefile")

	for _, kind := range event.SideFileKinds() {
		p := payloads[kind]
		schema := fmt.Sprintf(baseSchema, fmt.Sprintf(", %q", p.field), fmt.Sprintf(",\n\t\t%q: %s", p.field, p.schema))
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		c.AssertFormat = true
		schemaURL := fmt.Sprintf("https://journal.schemas.local/sidefile/%s.schema.json", strings.ToLower(string(kind)))
		if err := c.AddResource(schemaURL, strings.NewReader(schema)); err != nil {
			return nil, fmt.Errorf("side file schema load failed: %w", err)
		}
		compiled, err := c.Compile(schemaURL)
		if err != nil {
			return nil, fmt.Errorf("side file schema compile failed: %w", err)
		}
		r.schemas[kind] = compiled
	}
	return r, nil
}

// Reconcile returns events with the latest event of each side-file kind
// replaced by its reconciled re-decode. The input slice is not modified.
// Failures leave the event as decoded and are returned as diagnostics.
func (r *Reconciler) Reconcile(events []event.Event, contextOf ContextFunc) ([]event.Event, []*SideFileError) {
	latest := make(map[event.SideFileKind]int)
	for i, ev := range events {
		if kind, ok := event.SideFileOf(ev.Head().Type); ok {
			latest[kind] = i
		}
	}
	if len(latest) == 0 {
		return events, nil
	}

	out := make([]event.Event, len(events))
	copy(out, events)

	var errs []*SideFileError
	for _, kind := range event.SideFileKinds() {
		i, ok := latest[kind]
		if !ok {
			continue
		}
		next, err := r.reconcileOne(kind, events[i], contextOf(events[i]))
		if err != nil {
			r.logger.Debug("side file skipped", "kind", kind, "seq", err.Seq, "reason", err.Kind, "error", err.Err)
			errs = append(errs, err)
			continue
		}
		if next != nil {
			out[i] = next
		}
	}
	return out, errs
}

func (r *Reconciler) reconcileOne(kind event.SideFileKind, ev event.Event, ctx decode.Context) (event.Event, *SideFileError) {
	h := ev.Head()
	fail := func(k ErrorKind, err error) *SideFileError {
		return &SideFileError{Kind: k, File: kind, Seq: h.SequenceID, Err: err}
	}

	data, ok, err := r.source.Read(kind)
	if err != nil {
		return nil, fail(KindUnreadable, err)
	}
	if !ok {
		return nil, nil
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fail(KindUnreadable, errors.New("empty file"))
	}

	doc, err := unmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fail(KindMalformed, err)
	}
	if err := r.schemas[kind].Validate(doc); err != nil {
		return nil, fail(KindMalformed, err)
	}

	side := doc.(map[string]any)
	if tag := side["event"].(string); tag != string(h.Type) {
		return nil, fail(KindTimestampMismatch, fmt.Errorf("side file describes %s", tag))
	}
	ts, err := time.Parse(time.RFC3339, side["timestamp"].(string))
	if err != nil {
		return nil, fail(KindMalformed, err)
	}
	if !ts.Equal(h.Time) {
		return nil, fail(KindTimestampMismatch, fmt.Errorf("side file at %s, event at %s", ts.UTC().Format(time.RFC3339), h.Time.UTC().Format(time.RFC3339)))
	}

	merged, err := overlay(h.Raw, side)
	if err != nil {
		return nil, fail(KindMalformed, err)
	}
	next, err := r.decoder.Redecode(ev, merged, ctx)
	if err != nil {
		return nil, fail(KindMalformed, err)
	}
	return next, nil
}

// overlay copies every side-file key onto the original record.
func overlay(raw json.RawMessage, side map[string]any) ([]byte, error) {
	base := make(map[string]any, len(side))
	if len(raw) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&base); err != nil {
			return nil, fmt.Errorf("original record: %w", err)
		}
	}
	for k, v := range side {
		base[k] = v
	}
	return json.Marshal(base)
}

// unmarshalJSON decodes a single JSON value with json.Number precision, the
// form jsonschema/v5 expects for validation.
func unmarshalJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid character after top-level value")
	}
	return doc, nil
}
