package tracing

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/integrations/ocsql"
	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/synthapp/synth/config"
)

// InitTracing configures the OpenCensus sampler, registers the HTTP server
// and database views and exports them through the default Prometheus
// registry, so they are scraped from /metrics next to the native collectors.
// Spans stay in-process unless a trace exporter is registered by the caller.
func InitTracing(cfg *config.TracingConfig) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := RegisterHTTPServerViews(); err != nil {
		return err
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}

	return initPrometheusExporter(cfg)
}

// initPrometheusExporter bridges the OpenCensus views into the default registry
func initPrometheusExporter(cfg *config.TracingConfig) error {
	registry, ok := promclient.DefaultRegisterer.(*promclient.Registry)
	if !ok {
		return fmt.Errorf("default prometheus registerer is not a registry")
	}

	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		Registry:  registry,
		OnError: func(err error) {
			log.Printf("Prometheus exporter error: %v", err)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	view.RegisterExporter(pe)
	return nil
}

// RegisterSQLDriver wraps driverName with OpenCensus instrumentation and
// returns the name of the traced driver.
func RegisterSQLDriver(driverName string) (string, error) {
	traced, err := ocsql.Register(driverName, ocsql.WithAllTraceOptions())
	if err != nil {
		return "", fmt.Errorf("failed to register opencensus sql driver: %w", err)
	}
	return traced, nil
}

// RecordDBStats periodically records connection pool stats for db. The
// returned function stops the recording.
func RecordDBStats(db *sql.DB, every time.Duration) func() {
	return ocsql.RecordStats(db, every)
}

// RegisterHTTPServerViews registers views for HTTP server metrics
func RegisterHTTPServerViews() error {
	if err := view.Register(
		ochttp.ServerRequestCountView,
		ochttp.ServerLatencyView,
		ochttp.ServerResponseCountByStatusCode,
	); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	return nil
}
