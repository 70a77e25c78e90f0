package cmd

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// AppConfig mirrors the run command's flags. A YAML config file passed with
// --config can set any of them; flags take precedence through viper's
// binding order.
type AppConfig struct {
	Riders          int     `mapstructure:"riders"`
	OrderRate       float64 `mapstructure:"order_rate"`
	MeanServiceTime float64 `mapstructure:"mean_service_time"`
	Horizon         float64 `mapstructure:"horizon"`
	Seed            int64   `mapstructure:"seed"`
	LogLevel        string  `mapstructure:"log_level"`
	Output          string  `mapstructure:"output"`
}

// LoadAppConfig resolves the effective configuration from the bound flags
// and, when given, a config file.
func LoadAppConfig(cfgFile string) (*AppConfig, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg AppConfig
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Simulation converts the app config into the core engine's input record.
func (c *AppConfig) Simulation() sim.SimulationConfig {
	return sim.SimulationConfig{
		Riders:          c.Riders,
		OrderRate:       c.OrderRate,
		MeanServiceTime: c.MeanServiceTime,
		Horizon:         c.Horizon,
		Seed:            c.Seed,
	}
}
