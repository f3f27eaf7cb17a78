// Package types
package types

import "time"

// Entry is a single (timestamp, value) point on a chart series.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// RawRecord is one row of the telemetry file. Sensor columns that are absent
// or non-numeric in the source row are simply missing from Values.
type RawRecord struct {
	Timestamp       time.Time          `json:"timestamp"`
	Values          map[string]float64 `json:"values"`
	PumpRunning     *bool              `json:"pump_running,omitempty"`
	OutputValveOpen *bool              `json:"output_valve_open,omitempty"`
}

// Value returns the reading for a sensor column, if the row carries one.
func (r RawRecord) Value(sensor string) (float64, bool) {
	v, ok := r.Values[sensor]
	return v, ok
}

// WideTable is the telemetry file as read at one poll instant: one row per
// timestamp, one column per sensor.
type WideTable []RawRecord

// LongRecord is one (sensor, timestamp, value) triple derived from a WideTable.
type LongRecord struct {
	Sensor    string    `json:"sensor"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// LongTable holds the reshaped records for one poll instant.
type LongTable []LongRecord

// SensorOption is one dropdown entry: the raw column name plus its display label.
type SensorOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Series is one named line on a chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Entry `json:"points"`
}

// ChartSpec describes a chart independently of any renderer: series, axis
// labels, title, and rendering hints the presentation layer may honor.
type ChartSpec struct {
	Title        string   `json:"title"`
	XLabel       string   `json:"x_label,omitempty"`
	YLabel       string   `json:"y_label,omitempty"`
	Series       []Series `json:"series,omitempty"`
	Color        string   `json:"color,omitempty"`
	TransitionMS int      `json:"transition_ms,omitempty"`
}

// IsPlaceholder reports whether the spec carries no data and should render as
// an empty figure with only its title.
func (c ChartSpec) IsPlaceholder() bool {
	return len(c.Series) == 0
}

// ActuatorStatus is the pump/valve state taken from the newest telemetry row.
type ActuatorStatus struct {
	PumpRunning     bool      `json:"pump_running"`
	OutputValveOpen bool      `json:"output_valve_open"`
	AsOf            time.Time `json:"as_of"`
}
