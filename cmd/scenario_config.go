package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// SweepSpec is the top-level sweep configuration, loaded from YAML via
// LoadSweepSpec(path). Sweep-level fields are defaults; each scenario may
// override them.
type SweepSpec struct {
	OrderRate       float64        `yaml:"order_rate"`
	MeanServiceTime float64        `yaml:"mean_service_time"`
	Horizon         float64        `yaml:"horizon"`
	Seed            int64          `yaml:"seed"`
	Scenarios       []ScenarioSpec `yaml:"scenarios"`
}

// ScenarioSpec defines a single scenario in a sweep. Zero-valued fields
// inherit the sweep-level defaults; Riders is required per scenario.
type ScenarioSpec struct {
	Name            string  `yaml:"name,omitempty"`
	Riders          int     `yaml:"riders"`
	OrderRate       float64 `yaml:"order_rate,omitempty"`
	MeanServiceTime float64 `yaml:"mean_service_time,omitempty"`
	Horizon         float64 `yaml:"horizon,omitempty"`
	Seed            *int64  `yaml:"seed,omitempty"`
}

// LoadSweepSpec reads and validates a sweep spec from a YAML file.
func LoadSweepSpec(path string) (*SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}

	var spec SweepSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec's structure. The resolved per-scenario configs are
// additionally validated by the engine before each run.
func (s *SweepSpec) Validate() error {
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("sweep spec: at least one scenario required")
	}
	for i, sc := range s.Scenarios {
		prefix := fmt.Sprintf("scenario[%d]", i)
		if sc.Name != "" {
			prefix = fmt.Sprintf("scenario %q", sc.Name)
		}
		if sc.Riders <= 0 {
			return fmt.Errorf("%s: riders must be positive, got %d", prefix, sc.Riders)
		}
		if sc.OrderRate == 0 && s.OrderRate <= 0 {
			return fmt.Errorf("%s: order_rate not set and no sweep-level default", prefix)
		}
		if sc.MeanServiceTime == 0 && s.MeanServiceTime <= 0 {
			return fmt.Errorf("%s: mean_service_time not set and no sweep-level default", prefix)
		}
		if sc.Horizon == 0 && s.Horizon <= 0 {
			return fmt.Errorf("%s: horizon not set and no sweep-level default", prefix)
		}
	}
	return nil
}

// Configs resolves defaults into one engine config per scenario.
func (s *SweepSpec) Configs() []Result {
	results := make([]Result, 0, len(s.Scenarios))
	for _, sc := range s.Scenarios {
		cfg := sim.SimulationConfig{
			Riders:          sc.Riders,
			OrderRate:       s.OrderRate,
			MeanServiceTime: s.MeanServiceTime,
			Horizon:         s.Horizon,
			Seed:            s.Seed,
		}
		if sc.OrderRate != 0 {
			cfg.OrderRate = sc.OrderRate
		}
		if sc.MeanServiceTime != 0 {
			cfg.MeanServiceTime = sc.MeanServiceTime
		}
		if sc.Horizon != 0 {
			cfg.Horizon = sc.Horizon
		}
		if sc.Seed != nil {
			cfg.Seed = *sc.Seed
		}
		results = append(results, Result{Name: sc.Name, Config: cfg})
	}
	return results
}
