// Package chart turns a reshaped telemetry table into renderer-agnostic
// chart descriptions.
package chart

import (
	"fmt"

	"github.com/recinall/IrrigoDash/pkg/types"
)

// Styling shared by every chart the dashboard produces.
const (
	XAxisLabel   = "Tempo"
	YAxisLabel   = "Misura"
	LineColor    = "#17a2b8"
	TransitionMS = 500
)

// Placeholder titles shown when there is nothing to plot.
const (
	TitleNoSelection = "Seleziona un sensore dal menu"
	TitleNoData      = "Nessun dato disponibile"
)

// Build produces the chart for a selected sensor from the current table.
// An empty selection, or a selection with no records in the table, yields a
// placeholder spec carrying only a title so the page still renders an empty
// figure.
func Build(long types.LongTable, selected string) types.ChartSpec {
	if selected == "" {
		return types.ChartSpec{Title: TitleNoSelection}
	}

	points := make([]types.Entry, 0, len(long))
	for _, rec := range long {
		if rec.Sensor != selected {
			continue
		}
		points = append(points, types.Entry{Timestamp: rec.Timestamp, Value: rec.Value})
	}

	if len(points) == 0 {
		return types.ChartSpec{Title: TitleNoData}
	}

	return types.ChartSpec{
		Title:  fmt.Sprintf("Andamento %s", selected),
		XLabel: XAxisLabel,
		YLabel: YAxisLabel,
		Series: []types.Series{{
			Name:   selected,
			Points: points,
		}},
		Color:        LineColor,
		TransitionMS: TransitionMS,
	}
}
