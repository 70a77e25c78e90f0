package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// Result pairs a scenario's input config with its summary record. Name is
// empty for single runs.
type Result struct {
	Name    string
	Config  sim.SimulationConfig
	Summary sim.SummaryMetrics
}

// WriteTable renders result records as an aligned text table, with the
// analytical M/M/c expected wait alongside the simulated one. Two-decimal
// rounding is applied here, at the presentation layer.
func WriteTable(w io.Writer, results []Result) {
	fmt.Fprintln(w, "=== Dispatch Simulation Results ===")
	fmt.Fprintf(w, "%-16s %6s %9s %10s %10s %10s %8s %10s %11s\n",
		"SCENARIO", "RIDERS", "RATE/MIN", "AVG WAIT", "P95 WAIT", "AVG SVC", "UTIL %", "COMPLETED", "MMC WAIT")

	for _, r := range results {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("riders-%d", r.Summary.Riders)
		}
		fmt.Fprintf(w, "%-16s %6d %9.2f %10.2f %10.2f %10.2f %8.2f %10d %11s\n",
			name,
			r.Summary.Riders,
			r.Summary.OrderRate,
			r.Summary.AvgWaitMinutes,
			r.Summary.P95WaitMinutes,
			r.Summary.AvgServiceMinutes,
			r.Summary.UtilizationPercent,
			r.Summary.OrdersCompleted,
			formatAnalyticWait(r.Config),
		)
	}
}

// formatAnalyticWait renders the closed-form expected wait, or "unstable"
// when the offered load exceeds the pool.
func formatAnalyticWait(cfg sim.SimulationConfig) string {
	pred := sim.PredictMMc(cfg)
	if !pred.Stable || math.IsInf(pred.ExpectedWait, 1) {
		return "unstable"
	}
	return fmt.Sprintf("%.2f", pred.ExpectedWait)
}

// csvHeader is the column layout of the tabular export.
var csvHeader = []string{
	"scenario", "riders", "order_rate_per_min", "avg_wait_min", "p50_wait_min",
	"p95_wait_min", "avg_service_min", "utilization_pct", "orders_completed",
}

// ExportCSV writes result records to a CSV file at path.
func ExportCSV(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer file.Close()

	return writeCSV(file, results)
}

func writeCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range results {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("riders-%d", r.Summary.Riders)
		}
		row := []string{
			name,
			strconv.Itoa(r.Summary.Riders),
			formatFloat(r.Summary.OrderRate),
			formatFloat(r.Summary.AvgWaitMinutes),
			formatFloat(r.Summary.P50WaitMinutes),
			formatFloat(r.Summary.P95WaitMinutes),
			formatFloat(r.Summary.AvgServiceMinutes),
			formatFloat(r.Summary.UtilizationPercent),
			strconv.Itoa(r.Summary.OrdersCompleted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
