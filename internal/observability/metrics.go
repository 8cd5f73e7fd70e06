package observability

import (
	"context"
	"fmt"
	"net/http"

	"harness/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds the harness configuration metrics.
type Metrics struct {
	meter    metric.Meter
	provider *sdkmetric.MeterProvider

	JobTimeoutSeconds      metric.Int64Gauge
	CheckoutBlocksAndPlots metric.Int64Gauge
	ConfigLoadsTotal       metric.Int64Counter
}

// NewMetrics creates and registers all metrics with a Prometheus exporter.
// Each call uses its own registry, so several instances can coexist.
func NewMetrics(ctx context.Context) (*Metrics, http.Handler, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	meter := provider.Meter("harness")
	m := &Metrics{meter: meter, provider: provider}

	m.JobTimeoutSeconds, err = meter.Int64Gauge(
		"harness_job_timeout_seconds",
		metric.WithDescription("Resolved test job timeout in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create job timeout gauge: %w", err)
	}

	m.CheckoutBlocksAndPlots, err = meter.Int64Gauge(
		"harness_checkout_blocks_and_plots",
		metric.WithDescription("Whether block and plot fixtures are checked out (1) or not (0)"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create checkout gauge: %w", err)
	}

	m.ConfigLoadsTotal, err = meter.Int64Counter(
		"harness_config_loads",
		metric.WithDescription("Total number of harness variables resolved, by source"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create config loads counter: %w", err)
	}

	return m, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}

// RecordHarnessConfig records the resolved harness configuration.
func (m *Metrics) RecordHarnessConfig(ctx context.Context, cfg config.HarnessConfig) {
	m.JobTimeoutSeconds.Record(ctx, int64(cfg.JobTimeoutSeconds))
	m.CheckoutBlocksAndPlots.Record(ctx, boolValue(cfg.CheckoutBlocksAndPlots))

	for name, src := range cfg.Sources() {
		m.ConfigLoadsTotal.Add(ctx, 1, metric.WithAttributes(variableAttr(name), sourceAttr(string(src))))
	}
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
