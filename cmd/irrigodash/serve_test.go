package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func newServeTestCmd(t *testing.T, configPath string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "serve"}
	addServeFlags(cmd)
	if err := cmd.Flags().Set("config", configPath); err != nil {
		t.Fatalf("Set config: %v", err)
	}
	return cmd
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadServeConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `server:
  port: 9000
refresh:
  interval_ms: 5000
telemetry:
  path: /var/data/from_file.csv
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REFRESH_INTERVAL_MS", "7000")
	t.Setenv("TELEMETRY_PATH", "/var/data/from_env.csv")

	cfg, err := loadServeConfig(newServeTestCmd(t, path))
	if err != nil {
		t.Fatalf("loadServeConfig: %v", err)
	}

	if got := cfg.GetPort(); got != 9100 {
		t.Errorf("port: got %d", got)
	}
	if got := cfg.GetRefreshInterval(); got != 7*time.Second {
		t.Errorf("interval: got %s", got)
	}
	if got := cfg.GetTelemetryPath(); got != "/var/data/from_env.csv" {
		t.Errorf("path: got %q", got)
	}
}

func TestLoadServeConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REFRESH_INTERVAL_MS", "7000")
	t.Setenv("TELEMETRY_PATH", "/var/data/from_env.csv")

	cmd := newServeTestCmd(t, filepath.Join(t.TempDir(), "absent.yaml"))
	cmd.Flags().Set("port", "9200")
	cmd.Flags().Set("interval-ms", "9000")
	cmd.Flags().Set("telemetry-path", "/var/data/from_flag.csv")

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		t.Fatalf("loadServeConfig: %v", err)
	}

	if got := cfg.GetPort(); got != 9200 {
		t.Errorf("port: got %d", got)
	}
	if got := cfg.GetRefreshInterval(); got != 9*time.Second {
		t.Errorf("interval: got %s", got)
	}
	if got := cfg.GetTelemetryPath(); got != "/var/data/from_flag.csv" {
		t.Errorf("path: got %q", got)
	}
}

func TestLoadServeConfigFileOnly(t *testing.T) {
	// Empty values neutralize anything inherited from the host environment.
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REFRESH_INTERVAL_MS", "")
	t.Setenv("TELEMETRY_PATH", "")

	path := writeConfigFile(t, `server:
  port: 9000
`)
	cfg, err := loadServeConfig(newServeTestCmd(t, path))
	if err != nil {
		t.Fatalf("loadServeConfig: %v", err)
	}
	if got := cfg.GetPort(); got != 9000 {
		t.Errorf("port: got %d", got)
	}
	if got := cfg.GetRefreshInterval(); got != time.Minute {
		t.Errorf("interval: got %s", got)
	}
}

func TestLoadServeConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := loadServeConfig(newServeTestCmd(t, filepath.Join(t.TempDir(), "absent.yaml"))); err == nil {
		t.Fatal("expected error for bad SERVER_PORT")
	}
}
