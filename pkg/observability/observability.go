// Package observability wires OpenTelemetry tracing and metrics for
// journal replay.
//
// Library packages take a trace.Tracer and a *Metrics built from any
// metric.Meter; with no SDK installed both fall back to the global no-op
// providers. Host tools call New to install SDK providers exporting over
// OTLP gRPC.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer and meter used by the replay core.
const InstrumentationName = "github.com/EDDiscovery/EliteDangerousCore-sub005"

// Config configures the OpenTelemetry providers.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string        // e.g. "localhost:4317"
	SampleRate     float64       // 0.0 to 1.0
	BatchTimeout   time.Duration // span batch flush interval
	MetricInterval time.Duration
	Enabled        bool
	Insecure       bool
}

// DefaultConfig returns defaults for a local collector. Telemetry is off
// unless enabled.
func DefaultConfig() *Config {
	return &Config{
		ServiceName:    "journalreplay",
		ServiceVersion: "0.1.0",
		Environment:    "development",
		OTLPEndpoint:   "localhost:4317",
		SampleRate:     1.0,
		BatchTimeout:   5 * time.Second,
		MetricInterval: 15 * time.Second,
		Enabled:        false,
		Insecure:       true,
	}
}

// Provider owns the SDK trace and metric providers.
type Provider struct {
	config         *Config
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	logger         *slog.Logger
}

// New installs SDK providers as the otel globals. A disabled config
// returns a provider that leaves the globals alone.
func New(ctx context.Context, config *Config) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	p := &Provider{
		config: config,
		logger: slog.Default().With("component", "observability"),
	}
	if !config.Enabled {
		p.logger.DebugContext(ctx, "observability disabled")
		return p, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	if err := p.initTraceProvider(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to init trace provider: %w", err)
	}
	if err := p.initMetricProvider(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to init metric provider: %w", err)
	}

	p.logger.InfoContext(ctx, "observability initialized",
		"service", config.ServiceName,
		"endpoint", config.OTLPEndpoint,
		"sample_rate", config.SampleRate,
	)
	return p, nil
}

func (p *Provider) initTraceProvider(ctx context.Context, res *resource.Resource) error {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(p.config.OTLPEndpoint)}
	if p.config.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	var sampler sdktrace.Sampler
	switch {
	case p.config.SampleRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case p.config.SampleRate <= 0.0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(p.config.SampleRate)
	}

	p.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(p.config.BatchTimeout)),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(p.tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return nil
}

func (p *Provider) initMetricProvider(ctx context.Context, res *resource.Resource) error {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(p.config.OTLPEndpoint)}
	if p.config.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create metric exporter: %w", err)
	}
	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(p.config.MetricInterval),
		)),
	)
	otel.SetMeterProvider(p.meterProvider)
	return nil
}

// Shutdown flushes and stops the providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			p.logger.ErrorContext(ctx, "failed to shutdown trace provider", "error", err)
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			p.logger.ErrorContext(ctx, "failed to shutdown metric provider", "error", err)
		}
	}
	return nil
}

// Tracer returns the replay tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// Meter returns the replay meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// Metrics are the replay counters.
type Metrics struct {
	decoded   metric.Int64Counter
	residuals metric.Int64Counter
	applied   metric.Int64Counter
	faults    metric.Int64Counter
	commits   metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewMetrics registers the replay instruments on m.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var (
		out Metrics
		err error
	)
	if out.decoded, err = m.Int64Counter("journal.events.decoded",
		metric.WithDescription("Records decoded into events"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, err
	}
	if out.residuals, err = m.Int64Counter("journal.events.residual",
		metric.WithDescription("Records kept as residual events"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, err
	}
	if out.applied, err = m.Int64Counter("journal.events.applied",
		metric.WithDescription("Event applications to projections"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, err
	}
	if out.faults, err = m.Int64Counter("journal.replay.faults",
		metric.WithDescription("Replays aborted by a fault"),
		metric.WithUnit("{fault}"),
	); err != nil {
		return nil, err
	}
	if out.commits, err = m.Int64Counter("journal.replay.commits",
		metric.WithDescription("Snapshots published"),
		metric.WithUnit("{snapshot}"),
	); err != nil {
		return nil, err
	}
	if out.duration, err = m.Float64Histogram("journal.replay.duration",
		metric.WithDescription("Replay duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// DefaultMetrics registers instruments on the global meter, falling back to
// nil-safe empty metrics when registration fails.
func DefaultMetrics() *Metrics {
	m, err := NewMetrics(Meter())
	if err != nil {
		slog.Default().Warn("replay metrics unavailable", "error", err)
		return &Metrics{}
	}
	return m
}

// RecordDecoded counts decoded records and residuals.
func (m *Metrics) RecordDecoded(ctx context.Context, decoded, residual int) {
	if m == nil {
		return
	}
	if m.decoded != nil {
		m.decoded.Add(ctx, int64(decoded))
	}
	if m.residuals != nil {
		m.residuals.Add(ctx, int64(residual))
	}
}

// RecordApplied counts event applications for one projection.
func (m *Metrics) RecordApplied(ctx context.Context, projection string, n int) {
	if m == nil || m.applied == nil || n == 0 {
		return
	}
	m.applied.Add(ctx, int64(n), metric.WithAttributes(attribute.String("projection", projection)))
}

// RecordFault counts an aborted replay.
func (m *Metrics) RecordFault(ctx context.Context, stage string) {
	if m == nil || m.faults == nil {
		return
	}
	m.faults.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordCommit counts a published snapshot and the time it took.
func (m *Metrics) RecordCommit(ctx context.Context, elapsed time.Duration) {
	if m == nil {
		return
	}
	if m.commits != nil {
		m.commits.Add(ctx, 1)
	}
	if m.duration != nil {
		m.duration.Record(ctx, elapsed.Seconds())
	}
}
