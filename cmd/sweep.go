package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

var (
	ridersList   []int  // rider counts to compare when no scenario file is given
	scenarioFile string // YAML sweep spec path
)

// sweepCmd runs the same demand point across several rider counts (or an
// explicit YAML scenario list) and prints a comparison table.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare scenarios across rider counts",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var results []Result
		if scenarioFile != "" {
			spec, err := LoadSweepSpec(scenarioFile)
			if err != nil {
				logrus.Fatalf("Error loading sweep spec: %v", err)
			}
			results = spec.Configs()
		} else {
			for _, r := range ridersList {
				results = append(results, Result{
					Config: sim.SimulationConfig{
						Riders:          r,
						OrderRate:       orderRate,
						MeanServiceTime: meanServiceTime,
						Horizon:         horizon,
						Seed:            seed,
					},
				})
			}
		}

		bar := progressbar.Default(int64(len(results)), "scenarios")
		for i := range results {
			summary, err := sim.Run(results[i].Config)
			if err != nil {
				logrus.Fatalf("Scenario %d failed: %v", i, err)
			}
			results[i].Summary = summary
			bar.Add(1)
		}
		fmt.Println()

		WriteTable(os.Stdout, results)

		if outputPath != "" {
			if err := ExportCSV(outputPath, results); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Wrote %s", outputPath)
		}
	},
}

func init() {
	sweepCmd.Flags().IntSliceVar(&ridersList, "riders-list", []int{3, 4, 5, 6, 8}, "Rider counts to compare")
	sweepCmd.Flags().StringVar(&scenarioFile, "scenarios", "", "YAML sweep spec (overrides --riders-list)")
}
