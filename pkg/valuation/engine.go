// Package valuation estimates exploration payouts for scanned bodies.
//
// A scan has up to four value tiers: base, mapped, first mapped and first
// discovered plus first mapped. Each mapped tier also has an efficient
// variant. The best achievable tier is chosen from the discovery flags
// reported at scan time and whether the commander had already mapped the
// body, and the result is frozen on the event.
package valuation

import (
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/Masterminds/semver/v3"
)

var revisionMapping = semver.MustParse("3.3.0")

// Era describes the game revision a scan was written under.
type Era struct {
	Revision *semver.Version
	Odyssey  bool
}

// SupportsMapping reports whether surface mapping existed. An unknown
// revision is treated as current.
func (e Era) SupportsMapping() bool {
	return e.Revision == nil || !e.Revision.LessThan(revisionMapping)
}

// Status is what the engine needs beyond the scan itself.
type Status struct {
	Era
	// MappedByMe is set when the commander mapped the body before this scan.
	MappedByMe bool
}

// Engine computes valuations. The zero value is ready to use.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Value returns the frozen valuation of s, computing it on first use.
func (e *Engine) Value(s *event.Scan, st Status) event.Valuation {
	return s.Valuation(func(s *event.Scan) event.Valuation {
		return e.Compute(s, st)
	})
}

// Compute derives the valuation of s without memoizing it.
func (e *Engine) Compute(s *event.Scan, st Status) event.Valuation {
	if s.Kind == event.BodyStar {
		return e.star(s)
	}
	return e.planet(s, st)
}

func (e *Engine) star(s *event.Scan) event.Valuation {
	starType := ""
	if s.StarType != nil {
		starType = *s.StarType
	}
	mass := 1.0
	if s.StellarMass != nil {
		mass = *s.StellarMass
	}
	k := starK(starType)
	base := starValue(k, mass, false)
	v := event.Valuation{
		Base:                       event.Tier{Kind: event.TierBase, Value: base, Efficient: base, Defined: true, Achievable: true},
		Mapped:                     event.Tier{Kind: event.TierMapped},
		FirstMapped:                event.Tier{Kind: event.TierFirstMapped},
		FirstDiscoveredFirstMapped: event.Tier{Kind: event.TierFirstDiscoveredFirstMapped},
		FirstDiscovered:            starValue(k, mass, true),
	}
	v.Best = Best(v)
	return v
}

func (e *Engine) planet(s *event.Scan, st Status) event.Valuation {
	class := ""
	if s.PlanetClass != nil {
		class = *s.PlanetClass
	}
	terms := planetTerms{k: planetK(class, s.Terraformable()), mass: scanMass(s), odyssey: st.Odyssey}

	base := planetValue(terms)
	fd := terms
	fd.firstDiscovered = true

	v := event.Valuation{
		Base:                       event.Tier{Kind: event.TierBase, Value: base, Efficient: base, Defined: true, Achievable: true},
		Mapped:                     event.Tier{Kind: event.TierMapped},
		FirstMapped:                event.Tier{Kind: event.TierFirstMapped},
		FirstDiscoveredFirstMapped: event.Tier{Kind: event.TierFirstDiscoveredFirstMapped},
		FirstDiscovered:            planetValue(fd),
	}

	mappable := s.Kind == event.BodyPlanet && st.SupportsMapping()
	if mappable {
		wasDiscovered := flag(s.WasDiscovered)
		wasMapped := flag(s.WasMapped)

		v.Mapped = mappedTier(event.TierMapped, terms, mapped, false)
		v.Mapped.Achievable = wasMapped && !st.MappedByMe

		v.FirstMapped = mappedTier(event.TierFirstMapped, terms, firstMapped, false)
		v.FirstMapped.Achievable = wasDiscovered && !wasMapped && !st.MappedByMe

		v.FirstDiscoveredFirstMapped = mappedTier(event.TierFirstDiscoveredFirstMapped, terms, firstMapped, true)
		v.FirstDiscoveredFirstMapped.Achievable = !wasDiscovered && !wasMapped && !st.MappedByMe
	}

	v.Best = Best(v)
	return v
}

func mappedTier(kind event.TierKind, terms planetTerms, m mapping, firstDiscovered bool) event.Tier {
	terms.mapping = m
	terms.firstDiscovered = firstDiscovered
	plain := planetValue(terms)
	terms.efficient = true
	return event.Tier{Kind: kind, Value: plain, Efficient: planetValue(terms), Defined: true}
}

// Best scans the tiers in priority order and returns the first one that
// is defined and still achievable. Mapped tiers are reported at their
// efficient value. The base tier is always achievable.
func Best(v event.Valuation) event.BestValue {
	tiers := v.Tiers(false)
	if len(tiers) == 0 || tiers[0].Kind == event.TierBase {
		return event.BestValue{Kind: event.TierBase, Value: v.Base.Value}
	}
	return event.BestValue{Kind: tiers[0].Kind, Efficient: true, Value: tiers[0].Efficient}
}

// Absent discovery flags read as false.
func flag(b *bool) bool {
	return b != nil && *b
}
