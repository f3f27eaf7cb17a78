// Package telemetry reads the station's telemetry file and reshapes it for
// charting.
package telemetry

import (
	"context"

	"github.com/recinall/IrrigoDash/pkg/types"
)

// Source defines where telemetry rows come from.
type Source interface {
	// Read returns the rows available at this instant. A Source never
	// fails: whatever cannot be read is reported as an empty table.
	Read(ctx context.Context) types.WideTable
}
