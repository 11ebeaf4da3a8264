package valuation_test

import (
	"testing"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/valuation"
	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func waterWorld(discovered, mapped bool) *event.Scan {
	return &event.Scan{
		Header:        event.Header{Type: event.TypeScan, SequenceID: 1},
		BodyName:      "Col 285 Sector AB-C d1-2 3",
		BodyID:        ptr(3),
		SystemAddress: ptr(int64(84180519395)),
		Kind:          event.BodyPlanet,
		PlanetClass:   ptr("Water world"),
		MassEM:        ptr(0.8),
		WasDiscovered: ptr(discovered),
		WasMapped:     ptr(mapped),
	}
}

var current = valuation.Status{Era: valuation.Era{Revision: semver.MustParse("3.8.0")}}

func TestFirstDiscoveryFirstMappingIsBest(t *testing.T) {
	v := valuation.New().Compute(waterWorld(false, false), current)

	require.True(t, v.FirstDiscoveredFirstMapped.Defined)
	assert.True(t, v.FirstDiscoveredFirstMapped.Achievable)
	assert.False(t, v.FirstMapped.Achievable)
	assert.False(t, v.Mapped.Achievable)

	assert.Equal(t, event.TierFirstDiscoveredFirstMapped, v.Best.Kind)
	assert.True(t, v.Best.Efficient)
	assert.Equal(t, v.FirstDiscoveredFirstMapped.Efficient, v.Best.Value)
	assert.Greater(t, v.Best.Value, v.Base.Value)
}

func TestTierValuesAreOrdered(t *testing.T) {
	v := valuation.New().Compute(waterWorld(true, true), current)

	assert.Greater(t, v.Mapped.Value, v.Base.Value)
	assert.Greater(t, v.FirstMapped.Value, v.Mapped.Value)
	assert.Greater(t, v.FirstDiscoveredFirstMapped.Value, v.FirstMapped.Value)
	for _, tier := range []event.Tier{v.Mapped, v.FirstMapped, v.FirstDiscoveredFirstMapped} {
		assert.Greater(t, tier.Efficient, tier.Value, tier.Kind)
	}
	assert.Equal(t, v.Base.Value, v.Base.Efficient)
	assert.Greater(t, v.FirstDiscovered, v.Base.Value)
}

func TestKnownPlanetValue(t *testing.T) {
	// Earthlike, one Earth mass: (181126 + 181126*q) rounds to 283629.
	s := &event.Scan{Kind: event.BodyPlanet, PlanetClass: ptr("Earthlike body"), MassEM: ptr(1.0)}
	v := valuation.New().Compute(s, current)
	assert.Equal(t, int64(283629), v.Base.Value)
}

func TestMinimumPlanetValue(t *testing.T) {
	s := &event.Scan{Kind: event.BodyPlanet, PlanetClass: ptr("Icy body"), MassEM: ptr(0.0001)}
	v := valuation.New().Compute(s, current)
	assert.Equal(t, int64(500), v.Base.Value)
}

func TestStarsAreNotMappable(t *testing.T) {
	s := &event.Scan{Kind: event.BodyStar, StarType: ptr("N"), StellarMass: ptr(1.2), WasDiscovered: ptr(false)}
	v := valuation.New().Compute(s, current)

	assert.False(t, v.Mapped.Defined)
	assert.False(t, v.FirstMapped.Defined)
	assert.False(t, v.FirstDiscoveredFirstMapped.Defined)
	assert.Equal(t, event.TierBase, v.Best.Kind)
	assert.Equal(t, int64(23038), v.Base.Value)
	assert.Len(t, v.Tiers(true), 1)
}

func TestPreMappingRevisionHasBaseOnly(t *testing.T) {
	old := valuation.Status{Era: valuation.Era{Revision: semver.MustParse("3.2.0")}}
	v := valuation.New().Compute(waterWorld(false, false), old)

	assert.False(t, v.Mapped.Defined)
	assert.Equal(t, event.TierBase, v.Best.Kind)
}

func TestMappedByMeFallsBackToBase(t *testing.T) {
	st := current
	st.MappedByMe = true
	v := valuation.New().Compute(waterWorld(false, false), st)

	assert.Equal(t, event.TierBase, v.Best.Kind)
	assert.Len(t, v.Tiers(false), 1)
	assert.Len(t, v.Tiers(true), 4, "impossible tiers are still reported on request")
}

func TestOdysseyBonus(t *testing.T) {
	ody := current
	ody.Odyssey = true
	horizons := valuation.New().Compute(waterWorld(true, true), current)
	odyssey := valuation.New().Compute(waterWorld(true, true), ody)

	assert.Equal(t, horizons.Base.Value, odyssey.Base.Value)
	assert.Greater(t, odyssey.Mapped.Value, horizons.Mapped.Value)
}

func TestValueIsFrozen(t *testing.T) {
	e := valuation.New()
	s := waterWorld(false, false)

	first := e.Value(s, current)
	st := current
	st.MappedByMe = true
	second := e.Value(s, st)

	assert.Equal(t, first, second)
	frozen, ok := s.FrozenValuation()
	require.True(t, ok)
	assert.Equal(t, event.TierFirstDiscoveredFirstMapped, frozen.Best.Kind)
}

func TestPassTracksOwnMapping(t *testing.T) {
	e := valuation.New()
	p := e.NewPass()
	era := valuation.Era{Revision: semver.MustParse("3.8.0")}

	before := waterWorld(true, false)
	p.Observe(before, era)

	p.Observe(&event.SAAScanComplete{
		Header:        event.Header{Type: event.TypeSAAScanComplete},
		BodyName:      before.BodyName,
		BodyID:        before.BodyID,
		SystemAddress: before.SystemAddress,
	}, era)
	assert.True(t, p.MappedByMe(before.SystemAddress, before.BodyID, before.BodyName))

	after := waterWorld(true, false)
	p.Observe(after, era)

	b, _ := before.FrozenValuation()
	a, _ := after.FrozenValuation()
	assert.Equal(t, event.TierFirstMapped, b.Best.Kind)
	assert.Equal(t, event.TierBase, a.Best.Kind)
}
