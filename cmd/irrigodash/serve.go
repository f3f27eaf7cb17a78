package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/recinall/IrrigoDash/internal/config"
	"github.com/recinall/IrrigoDash/internal/refresh"
	"github.com/recinall/IrrigoDash/internal/routes"
	"github.com/recinall/IrrigoDash/internal/telemetry"
	"github.com/recinall/IrrigoDash/internal/tracing"
	"github.com/recinall/IrrigoDash/internal/worker"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the IrrigoDash server",
	Long:  `Start the IrrigoDash server to poll the telemetry file and serve the dashboard.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", config.DefaultConfigPath(), "path to config file")
	cmd.Flags().Int("port", 0, "HTTP port to listen on")
	cmd.Flags().Int("interval-ms", 0, "refresh interval in milliseconds")
	cmd.Flags().String("telemetry-path", "", "path to the telemetry file")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	shutdownTracer := tracing.InitTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	src := telemetry.NewCSVSource(cfg.GetTelemetryPath(), cfg.SensorNames(), logger)
	rb := refresh.New(src, cfg)

	rf := worker.NewRefresher(rb, cfg.GetRefreshInterval())
	rf.Start(context.Background())
	defer rf.Stop()

	app := routes.New(rb, rf, cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.GetPort())

	server := &http.Server{
		Handler:      routes.NewMux(app),
		Addr:         addr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received")

		rf.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting IrrigoDash server on %s...", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// loadServeConfig reads the config file, then lets environment variables and
// command line flags override it, in that order.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if v := getEnv("SERVER_PORT", ""); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
		cfg.Server.Port = p
	}
	if v := getEnv("REFRESH_INTERVAL_MS", ""); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL_MS: %w", err)
		}
		cfg.Refresh.IntervalMS = ms
	}
	if v := getEnv("TELEMETRY_PATH", ""); v != "" {
		cfg.Telemetry.Path = v
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("interval-ms") {
		cfg.Refresh.IntervalMS, _ = cmd.Flags().GetInt("interval-ms")
	}
	if cmd.Flags().Changed("telemetry-path") {
		cfg.Telemetry.Path, _ = cmd.Flags().GetString("telemetry-path")
	}

	return cfg, nil
}
