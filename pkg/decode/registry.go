package decode

import (
	"fmt"
	"sort"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// decodeFunc builds one variant from a reader positioned on its record.
// The header is already populated; reader errors are checked by the caller.
type decodeFunc func(r *reader, h event.Header) event.Event

// registry binds every catalog variant to its decoder.
var registry = func() map[event.Type]decodeFunc {
	m := make(map[event.Type]decodeFunc)
	for _, family := range []map[event.Type]decodeFunc{
		sessionVariants,
		travelVariants,
		explorationVariants,
		tradeVariants,
		shipVariants,
		vehicleVariants,
		combatVariants,
		missionVariants,
		socialVariants,
		materialVariants,
		dockingVariants,
		signalVariants,
		cargoVariants,
		shipSystemVariants,
		crimeVariants,
		rescueVariants,
		engineeringVariants,
		carrierVariants,
		powerplayVariants,
		suitVariants,
	} {
		for t, fn := range family {
			if _, dup := m[t]; dup {
				panic(fmt.Sprintf("decode: variant %s registered twice", t))
			}
			m[t] = fn
		}
	}
	return m
}()

// Registered reports whether t has a decoder binding.
func Registered(t event.Type) bool {
	_, ok := registry[t]
	return ok
}

// Types returns every bound discriminator in sorted order.
func Types() []event.Type {
	out := make([]event.Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks that the registry and the event catalog agree exactly.
func Validate() error {
	seen := make(map[event.Type]bool, len(event.Catalog))
	for _, t := range event.Catalog {
		if seen[t] {
			return fmt.Errorf("decode: catalog lists %s twice", t)
		}
		seen[t] = true
		if !Registered(t) {
			return fmt.Errorf("decode: catalog variant %s has no decoder", t)
		}
	}
	for t := range registry {
		if !seen[t] {
			return fmt.Errorf("decode: decoder bound for %s which is not in the catalog", t)
		}
	}
	return nil
}
