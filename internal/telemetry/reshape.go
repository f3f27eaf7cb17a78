package telemetry

import (
	"sort"

	"github.com/recinall/IrrigoDash/pkg/types"
)

// ToLong melts a wide table into one record per (row, sensor) pair that
// carries a value. Row order is preserved and sensors keep the given field
// order within a row. Missing values are skipped, never zero-filled.
func ToLong(wide types.WideTable, fields []string) types.LongTable {
	long := make(types.LongTable, 0, len(wide)*len(fields))
	for _, rec := range wide {
		for _, field := range fields {
			v, ok := rec.Value(field)
			if !ok {
				continue
			}
			long = append(long, types.LongRecord{
				Sensor:    field,
				Timestamp: rec.Timestamp,
				Value:     v,
			})
		}
	}
	return long
}

// AvailableSensors returns the distinct sensor names present in the table,
// sorted lexicographically for a stable dropdown ordering.
func AvailableSensors(long types.LongTable) []string {
	seen := make(map[string]struct{}, 4)
	names := make([]string, 0, 4)
	for _, rec := range long {
		if _, ok := seen[rec.Sensor]; ok {
			continue
		}
		seen[rec.Sensor] = struct{}{}
		names = append(names, rec.Sensor)
	}
	sort.Strings(names)
	return names
}
