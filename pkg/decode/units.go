package decode

import "math"

// ratio says how a journal field stores a proportion. Every proportion is
// normalized to percent (0..100) at decode time.
type ratio int

const (
	// ratioFraction fields are always written as 0..1.
	ratioFraction ratio = iota
	// ratioPercent fields are always written as 0..100.
	ratioPercent
	// ratioEra fields are 0..1 before the mapping revision and 0..100
	// from it on. With no known revision the magnitude decides.
	ratioEra
)

func toPercent(v float64, r ratio, ctx Context) float64 {
	switch r {
	case ratioPercent:
		return v
	case ratioEra:
		if ctx.Revision == nil {
			if math.Abs(v) <= 1 {
				return v * 100
			}
			return v
		}
		if ctx.Revision.LessThan(revisionMapping) {
			return v * 100
		}
		return v
	default:
		return v * 100
	}
}
