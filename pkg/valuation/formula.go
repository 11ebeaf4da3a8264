package valuation

import (
	"math"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Exploration payout constants.
const (
	planetQ = 0.56591828

	starMassDivisor = 66.25

	multMapped      = 3.3333333333
	multFirstMapped = 8.0956
	multFDFM        = 3.699622554
	multFirstDisc   = 2.6
	multEfficient   = 1.25

	odysseyBonusRate = 0.3
	odysseyBonusMin  = 555

	minimumValue = 500
)

func starK(starType string) float64 {
	switch starType {
	case "D", "DA", "DAB", "DAO", "DAZ", "DAV", "DB", "DBZ", "DBV", "DO", "DOV", "DQ", "DC", "DCV", "DX":
		return 14057
	case "N", "H":
		return 22628
	case "SupermassiveBlackHole":
		return 33.5678
	}
	return 1200
}

func planetK(class string, terraformable bool) float64 {
	switch class {
	case "Metal rich body":
		return 21790 + terraformBonus(terraformable, 65631)
	case "Ammonia world":
		return 96932
	case "Sudarsky class I gas giant":
		return 1656
	case "Sudarsky class II gas giant", "High metal content body":
		return 9654 + terraformBonus(terraformable, 100677)
	case "Water world":
		return 64831 + terraformBonus(terraformable, 116295)
	case "Earthlike body":
		return 64831 + 116295
	}
	return 300 + terraformBonus(terraformable, 93328)
}

func terraformBonus(terraformable bool, bonus float64) float64 {
	if terraformable {
		return bonus
	}
	return 0
}

func starValue(k, mass float64, firstDiscovered bool) int64 {
	v := k + mass*k/starMassDivisor
	if firstDiscovered {
		v *= multFirstDisc
	}
	return int64(math.Round(v))
}

// mapping selects the mapping multiplier of a planet payout.
type mapping int

const (
	unmapped mapping = iota
	mapped
	firstMapped
)

type planetTerms struct {
	k               float64
	mass            float64
	firstDiscovered bool
	mapping         mapping
	efficient       bool
	odyssey         bool
}

func planetValue(p planetTerms) int64 {
	mult := 1.0
	switch {
	case p.mapping == firstMapped && p.firstDiscovered:
		mult = multFDFM
	case p.mapping == firstMapped:
		mult = multFirstMapped
	case p.mapping == mapped:
		mult = multMapped
	}
	v := (p.k + p.k*planetQ*math.Pow(p.mass, 0.2)) * mult
	if p.mapping != unmapped {
		if p.odyssey {
			v += math.Max(v*odysseyBonusRate, odysseyBonusMin)
		}
		if p.efficient {
			v *= multEfficient
		}
	}
	v = math.Max(minimumValue, v)
	if p.firstDiscovered {
		v *= multFirstDisc
	}
	return int64(math.Round(v))
}

func scanMass(s *event.Scan) float64 {
	if s.MassEM != nil {
		return *s.MassEM
	}
	return 1.0
}
