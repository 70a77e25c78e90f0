package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

var (
	// CLI flags shared by the run and sweep commands
	cfgFile         string  // optional YAML config file read through viper
	logLevel        string  // log verbosity level
	riders          int     // rider pool capacity
	orderRate       float64 // mean order arrival rate (orders/minute)
	meanServiceTime float64 // mean service duration (minutes)
	horizon         float64 // simulated measurement window (minutes)
	seed            int64   // seed for the run's variate stream
	outputPath      string  // CSV export path (empty = no export)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Discrete-event simulator for food delivery dispatch",
	Long: `dispatch-sim estimates steady-state wait time, service time, rider
utilization, and throughput for a delivery service where orders arrive
stochastically and compete for a limited rider pool.`,
}

// runCmd executes a single simulation using parameters from flags or the
// config file and prints the summary record.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single dispatch simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := LoadAppConfig(cfgFile)
		if err != nil {
			logrus.Fatalf("Error loading config: %v", err)
		}

		logrus.Infof("Starting simulation: riders=%d rate=%.2f/min service=%.1fmin horizon=%.0fmin seed=%d",
			cfg.Riders, cfg.OrderRate, cfg.MeanServiceTime, cfg.Horizon, cfg.Seed)

		summary, err := sim.Run(cfg.Simulation())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		result := Result{Config: cfg.Simulation(), Summary: summary}
		WriteTable(os.Stdout, []Result{result})

		if cfg.Output != "" {
			if err := ExportCSV(cfg.Output, []Result{result}); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Wrote %s", cfg.Output)
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", viper.GetString("log_level"))
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, sweepCmd} {
		c.Flags().IntVar(&riders, "riders", 5, "Number of riders in the pool")
		c.Flags().Float64Var(&orderRate, "order-rate", 0.6, "Mean order arrival rate (orders/minute)")
		c.Flags().Float64Var(&meanServiceTime, "mean-service-time", 15, "Mean service duration (minutes)")
		c.Flags().Float64Var(&horizon, "horizon", 180, "Simulated measurement window (minutes)")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for the variate stream")
		c.Flags().StringVar(&outputPath, "output", "", "CSV export path")
	}

	bindRunFlags()

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}

// bindRunFlags maps dashed flag names onto the snake_case keys the config
// file uses, so a flag and its file entry address the same viper key.
func bindRunFlags() {
	flags := runCmd.Flags()
	viper.BindPFlag("riders", flags.Lookup("riders"))
	viper.BindPFlag("order_rate", flags.Lookup("order-rate"))
	viper.BindPFlag("mean_service_time", flags.Lookup("mean-service-time"))
	viper.BindPFlag("horizon", flags.Lookup("horizon"))
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log"))
}
