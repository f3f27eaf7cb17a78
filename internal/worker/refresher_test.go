package worker

import (
	"context"
	"testing"
	"time"

	"github.com/recinall/IrrigoDash/internal/config"
	"github.com/recinall/IrrigoDash/internal/refresh"
	"github.com/recinall/IrrigoDash/pkg/types"
)

type staticSource struct {
	table types.WideTable
}

func (s staticSource) Read(_ context.Context) types.WideTable {
	return s.table
}

func testRebuilder() *refresh.Rebuilder {
	src := staticSource{table: types.WideTable{
		{
			Timestamp: time.Date(2026, 8, 21, 10, 0, 0, 0, time.Local),
			Values:    map[string]float64{"pressure": 4.76},
		},
	}}
	return refresh.New(src, &config.Config{})
}

func waitForResult(t *testing.T, r *Refresher, ok func(*refresh.Result) bool) *refresh.Result {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if res := r.Latest(); res != nil && ok(res) {
			return res
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for rebuild")
	return nil
}

func TestRefresherRunsImmediately(t *testing.T) {
	r := NewRefresher(testRebuilder(), time.Hour)
	r.Start(context.Background())
	defer r.Stop()

	res := waitForResult(t, r, func(*refresh.Result) bool { return true })
	if res.Rows != 1 {
		t.Errorf("expected 1 row, got %d", res.Rows)
	}
	if len(res.Options) != 1 || res.Options[0].Value != "pressure" {
		t.Errorf("options: got %v", res.Options)
	}
}

func TestRefresherTicks(t *testing.T) {
	r := NewRefresher(testRebuilder(), 20*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	first := waitForResult(t, r, func(*refresh.Result) bool { return true })
	waitForResult(t, r, func(res *refresh.Result) bool {
		return res.At.After(first.At)
	})
}

func TestRefresherLatestNilBeforeStart(t *testing.T) {
	r := NewRefresher(testRebuilder(), time.Hour)
	if r.Latest() != nil {
		t.Error("expected nil before start")
	}
}
