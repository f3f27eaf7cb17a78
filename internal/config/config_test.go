package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetPort(); got != 8050 {
		t.Errorf("expected default port 8050, got %d", got)
	}
	if got := cfg.GetRefreshInterval(); got != time.Minute {
		t.Errorf("expected default interval 1m, got %s", got)
	}

	sensors := cfg.GetSensors()
	if len(sensors) != 4 {
		t.Fatalf("expected 4 stock sensors, got %d", len(sensors))
	}
	if sensors[0].Name != "pressure" || sensors[0].Label != "Pressione" {
		t.Errorf("first stock sensor: got %+v", sensors[0])
	}
	if got := cfg.SensorLabel("env_pressure"); got != "Pressione Ambientale" {
		t.Errorf("env_pressure label: got %q", got)
	}
}

func TestLoadReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	raw := `server:
  port: 9000
refresh:
  interval_ms: 5000
telemetry:
  path: /var/data/telemetria.csv
  sensors:
    - name: flow
      label: Portata
    - name: level
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetPort(); got != 9000 {
		t.Errorf("port: got %d", got)
	}
	if got := cfg.GetRefreshInterval(); got != 5*time.Second {
		t.Errorf("interval: got %s", got)
	}
	if got := cfg.GetTelemetryPath(); got != "/var/data/telemetria.csv" {
		t.Errorf("path: got %q", got)
	}

	if got := cfg.SensorNames(); len(got) != 2 || got[0] != "flow" || got[1] != "level" {
		t.Errorf("sensor names: got %v", got)
	}
	if got := cfg.SensorLabel("flow"); got != "Portata" {
		t.Errorf("flow label: got %q", got)
	}
	// Unlabeled sensors fall back to their column name.
	if got := cfg.SensorLabel("level"); got != "level" {
		t.Errorf("level label: got %q", got)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestTelemetryPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}
	if got := cfg.GetTelemetryPath(); got != filepath.Join(home, "telemetria.csv") {
		t.Errorf("expanded path: got %q", got)
	}

	cfg.Telemetry.Path = "~/data/readings.csv"
	if got := cfg.GetTelemetryPath(); got != filepath.Join(home, "data", "readings.csv") {
		t.Errorf("expanded custom path: got %q", got)
	}
}
