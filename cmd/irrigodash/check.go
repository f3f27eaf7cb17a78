package main

import (
	"fmt"
	"os"
	"time"

	"github.com/recinall/IrrigoDash/internal/config"
	"github.com/recinall/IrrigoDash/internal/telemetry"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Read the telemetry file once and report what it contains",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("config", config.DefaultConfigPath(), "path to config file")
	checkCmd.Flags().String("telemetry-path", "", "path to the telemetry file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if v := getEnv("TELEMETRY_PATH", ""); v != "" {
		cfg.Telemetry.Path = v
	}
	if cmd.Flags().Changed("telemetry-path") {
		cfg.Telemetry.Path, _ = cmd.Flags().GetString("telemetry-path")
	}

	path := cfg.GetTelemetryPath()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := telemetry.ParseCSV(f, cfg.SensorNames())
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	long := telemetry.ToLong(table, cfg.SensorNames())

	fmt.Printf("%s: %d rows, %d values\n", path, len(table), len(long))
	if len(table) > 0 {
		last := table[len(table)-1]
		fmt.Printf("newest row: %s\n", last.Timestamp.Format(time.RFC3339))
	}
	for _, s := range telemetry.AvailableSensors(long) {
		fmt.Printf("  %-16s %s\n", s, cfg.SensorLabel(s))
	}

	return nil
}
