package diagnostics_test

import (
	"testing"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/projection/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsResidualsAndDegradedEvents(t *testing.T) {
	d := diagnostics.New()
	require.NoError(t, d.Apply(&event.Residual{
		Header: event.Header{SequenceID: 3, Type: event.TypeResidual},
		Tag:    "FabricatedEvent",
		Reason: event.ReasonUnknownDiscriminator,
	}))
	require.NoError(t, d.Apply(&event.Scan{
		Header:   event.Header{SequenceID: 4, Type: event.TypeScan, Degraded: []string{"Rings[1]"}},
		BodyName: "Sol 5",
	}))

	snap := d.Snapshot().(diagnostics.Snapshot)
	require.Len(t, snap.Residuals, 1)
	assert.Equal(t, "FabricatedEvent", snap.Residuals[0].Tag)
	assert.Equal(t, 1, snap.ByReason[event.ReasonUnknownDiscriminator])
	require.Len(t, snap.Degraded, 1)
	assert.Equal(t, event.TypeScan, snap.Degraded[0].Type)
	assert.Equal(t, []string{"Rings[1]"}, snap.Degraded[0].Notes)
}

func TestEmptySnapshotHasNonNilSlices(t *testing.T) {
	snap := diagnostics.New().Snapshot().(diagnostics.Snapshot)
	assert.NotNil(t, snap.Residuals)
	assert.NotNil(t, snap.Degraded)
}

func TestCloneIsIndependent(t *testing.T) {
	d := diagnostics.New()
	require.NoError(t, d.Apply(&event.Residual{Header: event.Header{SequenceID: 1}, Tag: "A"}))
	c := d.Clone().(*diagnostics.Diagnostics)
	require.NoError(t, c.Apply(&event.Residual{Header: event.Header{SequenceID: 2}, Tag: "B"}))
	assert.Len(t, d.Residuals(), 1)
	assert.Len(t, c.Residuals(), 2)
}
