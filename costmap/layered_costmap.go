package costmap

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/mppi/spatialmath"
)

// LayeredCostmap owns the master grid, the robot footprint, and the inflation layers applied
// on top of the grid's obstacles.
type LayeredCostmap struct {
	costmap      *Costmap2D
	footprint    *spatialmath.Footprint
	trackUnknown bool
	layers       []*InflationLayer
}

// NewLayeredCostmap wraps a grid and footprint. trackUnknown marks whether NoInformation cells
// should be treated as traversable.
func NewLayeredCostmap(cm *Costmap2D, footprint *spatialmath.Footprint, trackUnknown bool) (*LayeredCostmap, error) {
	if cm == nil {
		return nil, errors.New("layered costmap requires a costmap")
	}
	if footprint == nil {
		return nil, errors.New("layered costmap requires a footprint")
	}
	return &LayeredCostmap{costmap: cm, footprint: footprint, trackUnknown: trackUnknown}, nil
}

// AddInflationLayer registers an inflation layer. Layer names must be unique.
func (lc *LayeredCostmap) AddInflationLayer(layer *InflationLayer) error {
	if _, ok := lc.inflationLayer(layer.Name()); ok {
		return errors.Errorf("inflation layer %q already exists", layer.Name())
	}
	layer.SetInscribedRadius(lc.footprint.InscribedRadius())
	lc.layers = append(lc.layers, layer)
	return nil
}

// InflationLayerNames returns the names of the registered inflation layers in registration order.
func (lc *LayeredCostmap) InflationLayerNames() []string {
	return lo.Map(lc.layers, func(layer *InflationLayer, _ int) string { return layer.Name() })
}

// InflationModel returns the inflation layer with the given name, or the first registered layer
// when name is empty.
func (lc *LayeredCostmap) InflationModel(name string) (InflationModel, bool) {
	layer, ok := lc.inflationLayer(name)
	if !ok {
		return nil, false
	}
	return layer, true
}

func (lc *LayeredCostmap) inflationLayer(name string) (*InflationLayer, bool) {
	if name == "" {
		if len(lc.layers) == 0 {
			return nil, false
		}
		return lc.layers[0], true
	}
	return lo.Find(lc.layers, func(layer *InflationLayer) bool { return layer.Name() == name })
}

// UpdateMap applies every inflation layer to the master grid.
func (lc *LayeredCostmap) UpdateMap() {
	for _, layer := range lc.layers {
		layer.Inflate(lc.costmap)
	}
}

// SetFootprint replaces the robot footprint and pushes the new inscribed radius to the layers.
func (lc *LayeredCostmap) SetFootprint(footprint *spatialmath.Footprint) error {
	if footprint == nil {
		return errors.New("footprint cannot be nil")
	}
	lc.footprint = footprint
	for _, layer := range lc.layers {
		layer.SetInscribedRadius(footprint.InscribedRadius())
	}
	return nil
}

// Costmap returns the master grid.
func (lc *LayeredCostmap) Costmap() *Costmap2D {
	return lc.costmap
}

// Grid returns the master grid as a read-only view.
func (lc *LayeredCostmap) Grid() Grid {
	return lc.costmap
}

// Footprint returns the current robot footprint.
func (lc *LayeredCostmap) Footprint() *spatialmath.Footprint {
	return lc.footprint
}

// CircumscribedRadius returns the circumscribed radius of the current footprint.
func (lc *LayeredCostmap) CircumscribedRadius() float64 {
	return lc.footprint.CircumscribedRadius()
}

// InscribedRadius returns the inscribed radius of the current footprint.
func (lc *LayeredCostmap) InscribedRadius() float64 {
	return lc.footprint.InscribedRadius()
}

// IsTrackingUnknown returns whether unknown cells count as traversable.
func (lc *LayeredCostmap) IsTrackingUnknown() bool {
	return lc.trackUnknown
}

// SetTrackingUnknown changes whether unknown cells count as traversable.
func (lc *LayeredCostmap) SetTrackingUnknown(trackUnknown bool) {
	lc.trackUnknown = trackUnknown
}
