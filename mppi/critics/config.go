package critics

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// costNormalization puts the cost weight in the same regime as critics scored in meters.
const costNormalization = 254.0

// CostCriticConfig configures a CostCritic.
type CostCriticConfig struct {
	Enabled            bool    `json:"enabled"`
	ConsiderFootprint  bool    `json:"consider_footprint"`
	CostPower          int     `json:"cost_power"`
	CostWeight         float64 `json:"cost_weight"`
	CriticalCost       float64 `json:"critical_cost"`
	CollisionCost      float64 `json:"collision_cost"`
	NearGoalDistance   float64 `json:"near_goal_distance"`
	InflationLayerName string  `json:"inflation_layer_name"`
	// Workers above 1 scores trajectories on that many goroutines.
	Workers int `json:"workers"`
}

// DefaultCostCriticConfig returns the stock cost critic configuration.
func DefaultCostCriticConfig() *CostCriticConfig {
	return &CostCriticConfig{
		Enabled:           true,
		ConsiderFootprint: false,
		CostPower:         1,
		CostWeight:        3.81,
		CriticalCost:      300.0,
		CollisionCost:     1000000.0,
		NearGoalDistance:  0.5,
		Workers:           1,
	}
}

// NewCostCriticConfig decodes raw attributes over the defaults. Unknown attributes are an error.
func NewCostCriticConfig(attributes map[string]interface{}) (*CostCriticConfig, error) {
	cfg := DefaultCostCriticConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "error decoding cost critic attributes")
	}
	return cfg, nil
}

// Validate ensures all parts of the config are valid.
func (cfg *CostCriticConfig) Validate(path string) error {
	var errs error
	if cfg.CostPower < 1 {
		errs = multierr.Append(errs, errors.Errorf("cost_power must be at least 1, got %d", cfg.CostPower))
	}
	if cfg.CostWeight <= 0 {
		errs = multierr.Append(errs, errors.Errorf("cost_weight must be positive, got %f", cfg.CostWeight))
	}
	if cfg.CriticalCost < 0 {
		errs = multierr.Append(errs, errors.Errorf("critical_cost cannot be negative, got %f", cfg.CriticalCost))
	}
	if cfg.CollisionCost < 0 {
		errs = multierr.Append(errs, errors.Errorf("collision_cost cannot be negative, got %f", cfg.CollisionCost))
	}
	if cfg.NearGoalDistance < 0 {
		errs = multierr.Append(errs, errors.Errorf("near_goal_distance cannot be negative, got %f", cfg.NearGoalDistance))
	}
	if cfg.Workers < 0 {
		errs = multierr.Append(errs, errors.Errorf("workers cannot be negative, got %d", cfg.Workers))
	}
	if errs != nil {
		return errors.Wrapf(errs, "error validating %q", path)
	}
	return nil
}

// NormalizedWeight is the cost weight scaled into the costmap's cost range.
func (cfg *CostCriticConfig) NormalizedWeight() float64 {
	return cfg.CostWeight / costNormalization
}
