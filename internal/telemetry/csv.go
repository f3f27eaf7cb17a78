package telemetry

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/recinall/IrrigoDash/internal/metrics"
	"github.com/recinall/IrrigoDash/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoTimestampColumn is returned when the header lacks the timestamp
// column, which makes the rest of the file unplaceable on a time axis.
var ErrNoTimestampColumn = errors.New("no timestamp column")

// Column names fixed by the producer's file format.
const (
	timestampColumn = "timestamp"
	pumpColumn      = "pumpRunning"
	valveColumn     = "outputValveOpen"
)

// timeLayouts are tried in order against the timestamp column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var _ Source = (*CSVSource)(nil)

// CSVSource reads the telemetry file the producer rewrites once per minute.
type CSVSource struct {
	path   string
	fields []string
	logger zerolog.Logger
}

func NewCSVSource(path string, fields []string, logger zerolog.Logger) *CSVSource {
	return &CSVSource{
		path:   path,
		fields: fields,
		logger: logger,
	}
}

// Read re-reads the file from disk on every call. The producer rewrites it
// concurrently, so a read racing a partial write degrades to an empty table
// instead of failing the refresh.
func (s *CSVSource) Read(ctx context.Context) types.WideTable {
	_, span := otel.Tracer("irrigodash-telemetry").Start(ctx, "telemetry.Read")
	defer span.End()

	span.SetAttributes(attribute.String("telemetry.path", s.path))

	start := time.Now()

	data, err := os.ReadFile(s.path)
	if err != nil {
		metrics.SourceReadFailuresTotal.Inc()
		metrics.TelemetryRows.Set(0)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn().Err(err).Str("path", s.path).Msg("telemetry file unavailable")
		return types.WideTable{}
	}

	table, err := ParseCSV(bytes.NewReader(data), s.fields)
	if err != nil {
		metrics.SourceReadFailuresTotal.Inc()
		metrics.TelemetryRows.Set(0)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn().Err(err).Str("path", s.path).Msg("telemetry file unparseable")
		return types.WideTable{}
	}

	metrics.SourceReadLatencySeconds.Observe(time.Since(start).Seconds())
	metrics.TelemetryRows.Set(float64(len(table)))
	span.SetAttributes(attribute.Int("telemetry.rows", len(table)))
	span.SetStatus(codes.Ok, "")

	s.logger.Debug().
		Int("rows", len(table)).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("telemetry file read")

	return table
}

// ParseCSV decodes telemetry rows from r, keeping the values of the given
// sensor columns. Rows with a missing or unparseable timestamp are skipped,
// as are individual values that are absent or non-numeric.
func ParseCSV(r io.Reader, fields []string) (types.WideTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return types.WideTable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	tsIdx, ok := colIdx[timestampColumn]
	if !ok {
		return nil, ErrNoTimestampColumn
	}

	table := make(types.WideTable, 0, 64)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Row torn by a concurrent write, skip it.
				continue
			}
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		if tsIdx >= len(row) {
			continue
		}

		ts, err := parseTimestamp(row[tsIdx])
		if err != nil {
			continue
		}

		rec := types.RawRecord{
			Timestamp: ts,
			Values:    make(map[string]float64, len(fields)),
		}

		for _, field := range fields {
			idx, ok := colIdx[field]
			if !ok || idx >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			rec.Values[field] = v
		}

		rec.PumpRunning = parseBoolColumn(row, colIdx, pumpColumn)
		rec.OutputValveOpen = parseBoolColumn(row, colIdx, valveColumn)

		table = append(table, rec)
	}

	return table, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func parseBoolColumn(row []string, colIdx map[string]int, column string) *bool {
	idx, ok := colIdx[column]
	if !ok || idx >= len(row) {
		return nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(row[idx]))
	if err != nil {
		return nil
	}
	return &v
}
