// harness-config resolves the test harness configuration from the environment
// and prints it for CI steps, optionally exposing it as Prometheus metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"harness/internal/config"
	"harness/internal/observability"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("harness-config failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "harness-config",
		Usage: "Resolve test harness settings from the environment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatEnv,
				Usage:   "Output format (env, json)",
			},
			&cli.IntFlag{
				Name:  "metrics-port",
				Usage: "Serve resolved values on /metrics at this port until interrupted (0 disables)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: config.GetEnv("HARNESS_LOG_LEVEL", "info"),
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogging(c.App.ErrWriter, c.String("log-level"))
		},
		Action: run,
	}
}

// setupLogging installs a JSON logger on w. Stdout is reserved for output.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func run(c *cli.Context) error {
	ctx := c.Context

	// Load configuration
	cfg := config.LoadHarnessConfig()
	sources := cfg.Sources()
	slog.Debug("Resolved harness configuration",
		"job_timeout_seconds", cfg.JobTimeoutSeconds,
		"job_timeout_source", sources[config.EnvJobTimeout],
		"checkout_blocks_and_plots", cfg.CheckoutBlocksAndPlots,
		"checkout_source", sources[config.EnvCheckoutBlocksAndPlots],
	)

	if err := writeConfig(c.App.Writer, cfg, c.String("format")); err != nil {
		return err
	}

	port := c.Int("metrics-port")
	if port <= 0 {
		return nil
	}
	return serveMetrics(ctx, cfg, port)
}

// serveMetrics exposes cfg on /metrics until ctx is done, SIGINT or SIGTERM
// arrives, or the server fails.
func serveMetrics(ctx context.Context, cfg config.HarnessConfig, port int) error {
	metrics, metricsHandler, err := observability.NewMetrics(ctx)
	if err != nil {
		return err
	}
	metrics.RecordHarnessConfig(ctx, cfg)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", metricsHandler)
	metricsServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      metricsMux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting metrics server", "port", port)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("Stopping metrics server", "reason", context.Cause(ctx))
	case err := <-serverErr:
		_ = metrics.Shutdown(context.Background())
		return fmt.Errorf("metrics server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Metrics server shutdown error", "error", err)
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Meter provider shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
