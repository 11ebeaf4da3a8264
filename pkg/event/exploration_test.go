package event_test

import (
	"sync"
	"testing"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanValuationIsComputedOnce(t *testing.T) {
	s := &event.Scan{BodyName: "Sol 3"}
	_, ok := s.FrozenValuation()
	assert.False(t, ok)

	calls := 0
	compute := func(*event.Scan) event.Valuation {
		calls++
		return event.Valuation{FirstDiscovered: 1000}
	}
	assert.Equal(t, int64(1000), s.Valuation(compute).FirstDiscovered)
	s.Valuation(func(*event.Scan) event.Valuation { return event.Valuation{FirstDiscovered: 1} })
	assert.Equal(t, 1, calls)

	v, ok := s.FrozenValuation()
	require.True(t, ok)
	assert.True(t, v.Computed)
	assert.Equal(t, int64(1000), v.FirstDiscovered)
}

func TestScanFrozenValuationDuringCompute(t *testing.T) {
	s := &event.Scan{BodyName: "Sol 3"}
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if i%2 == 0 {
				s.Valuation(func(*event.Scan) event.Valuation { return event.Valuation{FirstDiscovered: 42} })
				return
			}
			if v, ok := s.FrozenValuation(); ok && v.FirstDiscovered != 42 {
				t.Errorf("observed partial valuation %+v", v)
			}
		}()
	}
	close(start)
	wg.Wait()

	v, ok := s.FrozenValuation()
	require.True(t, ok)
	assert.Equal(t, int64(42), v.FirstDiscovered)
}
