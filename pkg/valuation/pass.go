package valuation

import (
	"strconv"
	"strings"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Pass values the scans of one ordered event sequence. It remembers which
// bodies the commander has mapped so far, so a scan is valued against the
// mapping state that preceded it. A Pass is not safe for concurrent use.
type Pass struct {
	engine *Engine
	mapped map[string]bool
}

// NewPass starts a pass over a fresh sequence.
func (e *Engine) NewPass() *Pass {
	return &Pass{engine: e, mapped: make(map[string]bool)}
}

// Observe feeds the next event in order. Scans are valued and frozen;
// surface mapping completions are remembered for later scans.
func (p *Pass) Observe(ev event.Event, era Era) {
	switch e := ev.(type) {
	case *event.SAAScanComplete:
		p.mapped[bodyKey(e.SystemAddress, e.BodyID, e.BodyName)] = true
	case *event.Scan:
		key := bodyKey(e.SystemAddress, e.BodyID, e.BodyName)
		p.engine.Value(e, Status{Era: era, MappedByMe: p.mapped[key]})
	case *event.Merged:
		for _, m := range e.Events() {
			p.Observe(m, era)
		}
	}
}

// MappedByMe reports whether a body has been mapped in this pass.
func (p *Pass) MappedByMe(systemAddress *int64, bodyID *int, bodyName string) bool {
	return p.mapped[bodyKey(systemAddress, bodyID, bodyName)]
}

// Bodies are keyed by system address and body id when both are known,
// otherwise by name.
func bodyKey(systemAddress *int64, bodyID *int, bodyName string) string {
	if systemAddress != nil && bodyID != nil {
		return strconv.FormatInt(*systemAddress, 10) + "/" + strconv.Itoa(*bodyID)
	}
	return "name/" + strings.ToLower(bodyName)
}
