package costmap

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	defaultInflationRadius   = 0.55
	defaultCostScalingFactor = 10.0
)

// InflationConfig configures an InflationLayer.
type InflationConfig struct {
	Name              string  `json:"name"`
	InflationRadius   float64 `json:"inflation_radius"`
	CostScalingFactor float64 `json:"cost_scaling_factor"`
	InflateUnknown    bool    `json:"inflate_unknown"`
}

// DefaultInflationConfig returns an inflation config named "inflation_layer" with stock values.
func DefaultInflationConfig() InflationConfig {
	return InflationConfig{
		Name:              "inflation_layer",
		InflationRadius:   defaultInflationRadius,
		CostScalingFactor: defaultCostScalingFactor,
	}
}

// Validate ensures all parts of the config are valid.
func (cfg *InflationConfig) Validate(path string) error {
	var errs error
	if cfg.Name == "" {
		errs = multierr.Append(errs, errors.New("name is required"))
	}
	if cfg.InflationRadius <= 0 {
		errs = multierr.Append(errs, errors.Errorf("inflation_radius must be positive, got %f", cfg.InflationRadius))
	}
	if cfg.CostScalingFactor <= 0 {
		errs = multierr.Append(errs, errors.Errorf("cost_scaling_factor must be positive, got %f", cfg.CostScalingFactor))
	}
	if errs != nil {
		return errors.Wrapf(errs, "invalid inflation config at %q", path)
	}
	return nil
}

// InflationLayer turns lethal cells into an exponentially decaying cost field around them.
type InflationLayer struct {
	cfg             InflationConfig
	resolution      float64
	inscribedRadius float64
}

// NewInflationLayer returns an inflation layer for a grid of the given resolution.
func NewInflationLayer(cfg InflationConfig, resolution float64) (*InflationLayer, error) {
	if err := cfg.Validate(cfg.Name); err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, errors.Errorf("inflation layer resolution must be positive, got %f", resolution)
	}
	return &InflationLayer{cfg: cfg, resolution: resolution}, nil
}

// Name returns the layer's name.
func (il *InflationLayer) Name() string {
	return il.cfg.Name
}

// InflationRadius returns the inflation radius in meters.
func (il *InflationLayer) InflationRadius() float64 {
	return il.cfg.InflationRadius
}

// SetInscribedRadius updates the radius inside which every cost is InscribedInflatedObstacle.
func (il *InflationLayer) SetInscribedRadius(radius float64) {
	il.inscribedRadius = radius
}

// ComputeCost returns the cost of a cell distance cells away from the nearest lethal cell.
func (il *InflationLayer) ComputeCost(distance float64) uint8 {
	switch {
	case distance == 0:
		return LethalObstacle
	case distance*il.resolution <= il.inscribedRadius:
		return InscribedInflatedObstacle
	}
	factor := math.Exp(-1.0 * il.cfg.CostScalingFactor * (distance*il.resolution - il.inscribedRadius))
	return uint8(float64(InscribedInflatedObstacle-1) * factor)
}

// Inflate raises the cost of every cell within the inflation radius of a lethal cell in the
// costmap. Costs only ever increase. Unknown cells are left alone unless the layer inflates
// unknown space or the inflated cost is at least InscribedInflatedObstacle.
func (il *InflationLayer) Inflate(cm *Costmap2D) {
	sizeX, sizeY := cm.SizeInCells()
	var lethal [][2]int
	for my := 0; my < sizeY; my++ {
		for mx := 0; mx < sizeX; mx++ {
			if cm.Cost(mx, my) == LethalObstacle {
				lethal = append(lethal, [2]int{mx, my})
			}
		}
	}

	cellRadius := math.Ceil(il.cfg.InflationRadius / cm.Resolution())
	window := int(cellRadius)
	for _, cell := range lethal {
		for dy := -window; dy <= window; dy++ {
			for dx := -window; dx <= window; dx++ {
				mx, my := cell[0]+dx, cell[1]+dy
				if !cm.InBounds(mx, my) {
					continue
				}
				distance := math.Hypot(float64(dx), float64(dy))
				if distance > cellRadius {
					continue
				}
				cost := il.ComputeCost(distance)
				old := cm.Cost(mx, my)
				if old == NoInformation {
					if (il.cfg.InflateUnknown && cost > FreeSpace) || cost >= InscribedInflatedObstacle {
						cm.costs[cm.index(mx, my)] = cost
					}
					continue
				}
				if cost > old {
					cm.costs[cm.index(mx, my)] = cost
				}
			}
		}
	}
}
