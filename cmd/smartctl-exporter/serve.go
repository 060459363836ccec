package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"smartctl-exporter/internal/collector"
	"smartctl-exporter/internal/config"
	"smartctl-exporter/internal/health"
	"smartctl-exporter/internal/logging"
	"smartctl-exporter/internal/metrics"
	"smartctl-exporter/internal/source"
	"smartctl-exporter/internal/system"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Prometheus exporter",
		Long: `Collect smartctl captures on an interval and serve them as Prometheus
metrics. Settings come from the environment, then the optional --config
YAML file, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("port", "", "Port to listen on")
	flags.String("metrics-path", "", "Path to expose metrics on")
	flags.String("source", "", "Capture source (files, smartctl)")
	flags.String("report-dir", "", "Directory holding capture files for the files source")
	flags.Duration("collect-interval", 0, "Interval between collections")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Int("workers", 0, "Number of captures parsed in parallel")
	return cmd
}

// loadConfig layers explicitly set flags over the environment and config file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.New()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Changed("metrics-path") {
		cfg.MetricsPath, _ = flags.GetString("metrics-path")
	}
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("report-dir") {
		cfg.ReportDir, _ = flags.GetString("report-dir")
	}
	if flags.Changed("collect-interval") {
		cfg.CollectInterval, _ = flags.GetDuration("collect-interval")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSource picks the capture source configured in cfg
func newSource(cfg *config.Config, sysInfo *system.SystemInfo) (source.Source, error) {
	filter := source.NewFilter(cfg.TargetDisks, cfg.IgnorePatterns)

	switch cfg.Source {
	case config.SourceFiles:
		return source.NewDirSource(cfg.ReportDir, filter), nil
	case config.SourceSmartctl:
		if !sysInfo.CanMonitorSMART() {
			return nil, errors.New("smartctl not found in PATH, use --source files to read captures")
		}
		return source.NewCommandSource(sysInfo.SmartctlPath, filter), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
	log.Info().Str("version", version).Msg("Starting smartctl Prometheus Exporter")

	// Perform one-time system detection
	sysInfo := system.New().Detect()
	if cfg.Source == config.SourceSmartctl && !sysInfo.IsLinux() {
		log.Warn().Str("platform", string(sysInfo.Platform)).Msg("smartctl --scan device names are only recognised on Linux")
	}

	src, err := newSource(cfg, sysInfo)
	if err != nil {
		return err
	}

	m := metrics.New()
	c := collector.New(m, src, cfg.CollectInterval, cfg.Workers)
	healthService := health.New(c, sysInfo, src.Name())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start metrics collection in background
	go c.Start(ctx)

	mux := http.NewServeMux()
	setupHTTPHandlers(mux, cfg, sysInfo, healthService)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("source", src.Name()).Msg("Starting HTTP server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// setupHTTPHandlers configures HTTP routes
func setupHTTPHandlers(mux *http.ServeMux, cfg *config.Config, sysInfo *system.SystemInfo, healthService *health.Service) {
	// Metrics endpoint
	mux.Handle(cfg.MetricsPath, promhttp.Handler())
	ver := fmt.Sprintf("v%s (%s)", version, commit)

	// Root endpoint with basic info
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
		<html>
		<head><title>smartctl Exporter</title></head>
		<body>
		<h1>smartctl Prometheus Exporter</h1>
		<p><a href="%s">Metrics</a></p>
		<p><a href="/health">Health Check</a></p>
		<p><a href="/health/json">Health JSON</a></p>
		<p>Version: %s</p>
		<p>Collect Interval: %s</p>
		<p>Source: %s</p>
		<h3>System Information</h3>
		<p>Platform: %s</p>
		<p>smartctl: %v</p>
		</body>
		</html>
		`, cfg.MetricsPath, ver, cfg.CollectInterval, cfg.Source, sysInfo.Platform, sysInfo.CanMonitorSMART())
	})

	// Basic health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"smartctl-exporter"}`)
	})

	// Detailed JSON health endpoint
	mux.HandleFunc("/health/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		jsonData, err := json.MarshalIndent(healthService.GetHealthData(), "", "  ")
		if err != nil {
			http.Error(w, "Failed to generate JSON", http.StatusInternalServerError)
			return
		}

		w.Write(jsonData)
	})
}
