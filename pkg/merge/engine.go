// Package merge consolidates runs of chatty events into aggregates.
//
// Merging is greedy and sequential: each event either extends the open
// aggregate or closes it and opens a new one. Constituents are never
// dropped, and running the engine over its own output changes nothing.
package merge

import (
	"log/slog"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Engine applies merge rules to ordered event runs. It holds no per-run
// state and is safe for concurrent use once built.
type Engine struct {
	rules           map[event.Type]Rule
	maxConstituents int
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRule adds or replaces the rule for r.Type.
func WithRule(r Rule) Option {
	return func(e *Engine) { e.rules[r.Type] = r }
}

// WithWindow overrides the time window of an existing rule.
func WithWindow(t event.Type, d time.Duration) Option {
	return func(e *Engine) {
		if r, ok := e.rules[t]; ok && d > 0 {
			r.Window = d
			e.rules[t] = r
		}
	}
}

// WithMaxConstituents caps how many events one aggregate absorbs. Zero
// means no cap.
func WithMaxConstituents(n int) Option {
	return func(e *Engine) { e.maxConstituents = n }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine with the default family rules.
func New(opts ...Option) *Engine {
	e := &Engine{rules: make(map[event.Type]Rule), logger: slog.Default()}
	for _, r := range DefaultRules() {
		e.rules[r.Type] = r
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "merge")
	return e
}

// Merge consolidates events. The input slice and any aggregates in it
// are left untouched.
func (e *Engine) Merge(events []event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))
	var open *aggregate
	for _, ev := range events {
		if open != nil && e.absorbable(open.current(), ev) {
			open.absorb(ev, e.rules[event.TypeOf(ev)])
			out[len(out)-1] = open.current()
			continue
		}
		out = append(out, ev)
		open = &aggregate{head: ev}
	}
	if len(out) < len(events) {
		e.logger.Debug("merged events", "in", len(events), "out", len(out))
	}
	return out
}

// Mergeable reports whether next would extend an aggregate whose last
// event is prev. Either side may already be a merged aggregate.
func (e *Engine) Mergeable(prev, next event.Event) bool {
	rule, ok := e.rules[event.TypeOf(next)]
	if !ok {
		return false
	}
	return continues(rule, last(prev), primary(next))
}

func (e *Engine) absorbable(cur, next event.Event) bool {
	if event.TypeOf(cur) != event.TypeOf(next) {
		return false
	}
	rule, ok := e.rules[event.TypeOf(next)]
	if !ok {
		return false
	}
	if e.maxConstituents > 0 && constituents(cur)+1+constituents(next) > e.maxConstituents {
		return false
	}
	return continues(rule, last(cur), primary(next))
}

func continues(rule Rule, prev, next event.Event) bool {
	hp, hn := prev.Head(), next.Head()
	if hp.Type != hn.Type || hp.Session != hn.Session {
		return false
	}
	gap := hn.Time.Sub(hp.Time)
	if gap < 0 || gap > rule.Window {
		return false
	}
	return rule.Continues(prev, next)
}

// aggregate is the open merge window. It copies an input aggregate on
// first write so callers never see their events mutated.
type aggregate struct {
	head   event.Event
	merged *event.Merged
}

func (a *aggregate) current() event.Event {
	if a.merged != nil {
		return a.merged
	}
	return a.head
}

func (a *aggregate) absorb(ev event.Event, rule Rule) {
	if a.merged == nil {
		a.merged = own(a.head, rule)
	}
	added := members(ev)
	a.merged.Constituents = append(a.merged.Constituents, added...)
	a.merged.Summary.Count += len(added)
	if rule.Value != nil {
		if v, ok := rule.Value(added[len(added)-1]); ok {
			a.merged.Summary.LatestValue = &v
			if a.merged.Summary.FirstValue == nil {
				first := v
				a.merged.Summary.FirstValue = &first
			}
		}
	}
}

// own starts a writable aggregate from head, copying it if it is already
// a Merged from an earlier pass.
func own(head event.Event, rule Rule) *event.Merged {
	if m, ok := head.(*event.Merged); ok {
		cp := &event.Merged{
			Primary:      m.Primary,
			Constituents: append([]event.Event(nil), m.Constituents...),
			Summary:      m.Summary,
		}
		if m.Summary.FirstValue != nil {
			v := *m.Summary.FirstValue
			cp.Summary.FirstValue = &v
		}
		if m.Summary.LatestValue != nil {
			v := *m.Summary.LatestValue
			cp.Summary.LatestValue = &v
		}
		return cp
	}
	m := &event.Merged{Primary: head, Summary: event.MergeSummary{Count: 1}}
	if rule.Value != nil {
		if v, ok := rule.Value(head); ok {
			first, latest := v, v
			m.Summary.FirstValue = &first
			m.Summary.LatestValue = &latest
		}
	}
	return m
}

func primary(ev event.Event) event.Event {
	if m, ok := ev.(*event.Merged); ok {
		return m.Primary
	}
	return ev
}

func last(ev event.Event) event.Event {
	if m, ok := ev.(*event.Merged); ok {
		return m.Last()
	}
	return ev
}

func members(ev event.Event) []event.Event {
	if m, ok := ev.(*event.Merged); ok {
		return m.Events()
	}
	return []event.Event{ev}
}

func constituents(ev event.Event) int {
	if m, ok := ev.(*event.Merged); ok {
		return len(m.Constituents)
	}
	return 0
}
