package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "journalreplay", config.ServiceName)
	assert.Equal(t, "localhost:4317", config.OTLPEndpoint)
	assert.False(t, config.Enabled)
}

func TestNewProviderDisabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.NotNil(t, Tracer())
}

func TestMetricsRecordThroughManualReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordDecoded(ctx, 10, 2)
	m.RecordApplied(ctx, "ledger", 4)
	m.RecordFault(ctx, "apply")
	m.RecordCommit(ctx, 20*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	sums := map[string]int64{}
	for _, metric := range rm.ScopeMetrics[0].Metrics {
		if s, ok := metric.Data.(metricdata.Sum[int64]); ok {
			for _, dp := range s.DataPoints {
				sums[metric.Name] += dp.Value
			}
		}
	}
	assert.Equal(t, int64(10), sums["journal.events.decoded"])
	assert.Equal(t, int64(2), sums["journal.events.residual"])
	assert.Equal(t, int64(4), sums["journal.events.applied"])
	assert.Equal(t, int64(1), sums["journal.replay.faults"])
	assert.Equal(t, int64(1), sums["journal.replay.commits"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.RecordDecoded(ctx, 1, 1)
	m.RecordApplied(ctx, "ledger", 1)
	m.RecordFault(ctx, "apply")
	m.RecordCommit(ctx, time.Second)
	(&Metrics{}).RecordCommit(ctx, time.Second)
}
