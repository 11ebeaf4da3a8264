// Package decode turns raw journal records into typed events.
//
// Decoding is a pure function of the record bytes and a Context. Unknown
// discriminators decode to an event.Residual without error; records of a
// known type that fail structural decode also become a Residual and the
// DecodeError describing the failure is returned alongside it, so callers
// always get an event to keep in sequence.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Decoder decodes records through the variant registry. It is safe for
// concurrent use.
type Decoder struct {
	tr     Translator
	logger *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithTranslator injects the vocabulary lookup used for display labels.
func WithTranslator(tr Translator) Option {
	return func(d *Decoder) { d.tr = tr }
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("component", "decode")
	return d
}

// Decode decodes one raw record. On a DecodeError the returned event is
// the Residual the record degrades to; it is never nil.
func (d *Decoder) Decode(raw []byte, ctx Context) (event.Event, error) {
	keep := json.RawMessage(append([]byte(nil), raw...))
	h := event.Header{SequenceID: ctx.SequenceID, Session: ctx.Session, Raw: keep}

	obj, err := parseObject(raw)
	if err != nil {
		derr := &DecodeError{Kind: KindMalformed, Err: err}
		return residual(h, "", derr), derr
	}

	tag, _ := obj["event"].(string)
	if tag == "" {
		derr := &DecodeError{Kind: KindMalformed, Err: errors.New(`no "event" discriminator`)}
		return residual(h, "", derr), derr
	}

	r := newReader(obj, ctx, d.tr)
	fn, ok := registry[event.Type(tag)]
	if !ok {
		// A bad timestamp stays zero; the session inherits the previous time.
		if ts := r.OptTime("timestamp"); ts != nil {
			h.Time = *ts
		}
		h.Type = event.TypeResidual
		return &event.Residual{
			Header: h,
			Tag:    tag,
			Reason: event.ReasonUnknownDiscriminator,
		}, nil
	}

	h.Time = r.Time("timestamp")
	if r.err != nil {
		r.err.Tag = tag
		return residual(h, tag, r.err), r.err
	}

	h.Type = event.Type(tag)
	applyAliases(h.Type, obj)
	ev := fn(r, h)
	if r.err != nil {
		r.err.Tag = tag
		return residual(h, tag, r.err), r.err
	}
	if len(r.degraded) > 0 {
		ev.Head().Degraded = r.degraded
		d.logger.Debug("degraded sub-records", "type", tag, "seq", ctx.SequenceID, "notes", r.degraded)
	}
	return ev, nil
}

// Redecode decodes raw as a replacement for ev. The replacement keeps the
// identity of ev (sequence, time, session) and must have the same type.
func (d *Decoder) Redecode(ev event.Event, raw []byte, ctx Context) (event.Event, error) {
	orig := ev.Head()
	ctx.SequenceID = orig.SequenceID
	ctx.Session = orig.Session
	next, err := d.Decode(raw, ctx)
	if err != nil {
		return nil, err
	}
	if next.Head().Type != orig.Type {
		return nil, &DecodeError{
			Kind: KindMalformed,
			Tag:  string(orig.Type),
			Err:  fmt.Errorf("redecode produced %s", next.Head().Type),
		}
	}
	next.Head().Time = orig.Time
	return next, nil
}

func parseObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("record is not an object")
	}
	if dec.More() {
		return nil, errors.New("trailing data after record")
	}
	return obj, nil
}

func residual(h event.Header, tag string, derr *DecodeError) *event.Residual {
	h.Type = event.TypeResidual
	return &event.Residual{
		Header: h,
		Tag:    tag,
		Reason: derr.Reason(),
		Detail: derr.Error(),
	}
}
