// Package refresh derives everything the page needs from one telemetry read.
// The page's update requests and the background poll both go through the same
// Rebuild call.
package refresh

import (
	"context"
	"time"

	"github.com/recinall/IrrigoDash/internal/chart"
	"github.com/recinall/IrrigoDash/internal/config"
	"github.com/recinall/IrrigoDash/internal/metrics"
	"github.com/recinall/IrrigoDash/internal/telemetry"
	"github.com/recinall/IrrigoDash/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Result is everything one rebuild produces for the page.
type Result struct {
	Options []types.SensorOption  `json:"options"`
	Chart   types.ChartSpec       `json:"chart"`
	Status  *types.ActuatorStatus `json:"status,omitempty"`
	Rows    int                   `json:"rows"`
	Records int                   `json:"records"`
	At      time.Time             `json:"at"`
}

type Rebuilder struct {
	source telemetry.Source
	cfg    *config.Config
}

func New(source telemetry.Source, cfg *config.Config) *Rebuilder {
	return &Rebuilder{
		source: source,
		cfg:    cfg,
	}
}

// Rebuild reads the telemetry file and derives the dropdown options and the
// chart for the given selection. It holds no state between calls, so firing
// it redundantly is harmless.
func (rb *Rebuilder) Rebuild(ctx context.Context, selected string) Result {
	ctx, span := otel.Tracer("irrigodash-refresh").Start(ctx, "refresh.Rebuild")
	defer span.End()

	span.SetAttributes(attribute.String("refresh.selection", selected))

	wide := rb.source.Read(ctx)
	long := telemetry.ToLong(wide, rb.cfg.SensorNames())

	sensors := telemetry.AvailableSensors(long)
	options := make([]types.SensorOption, 0, len(sensors))
	for _, name := range sensors {
		options = append(options, types.SensorOption{
			Label: rb.cfg.SensorLabel(name),
			Value: name,
		})
	}

	res := Result{
		Options: options,
		Chart:   chart.Build(long, selected),
		Status:  actuatorStatus(wide),
		Rows:    len(wide),
		Records: len(long),
		At:      time.Now(),
	}

	metrics.RefreshTotal.Inc()
	span.SetAttributes(
		attribute.Int("refresh.rows", res.Rows),
		attribute.Int("refresh.options", len(options)),
	)
	span.SetStatus(codes.Ok, "")

	return res
}

// actuatorStatus reports pump and valve state from the newest row that
// carries either one.
func actuatorStatus(wide types.WideTable) *types.ActuatorStatus {
	for i := len(wide) - 1; i >= 0; i-- {
		rec := wide[i]
		if rec.PumpRunning == nil && rec.OutputValveOpen == nil {
			continue
		}
		status := &types.ActuatorStatus{AsOf: rec.Timestamp}
		if rec.PumpRunning != nil {
			status.PumpRunning = *rec.PumpRunning
		}
		if rec.OutputValveOpen != nil {
			status.OutputValveOpen = *rec.OutputValveOpen
		}
		return status
	}
	return nil
}
