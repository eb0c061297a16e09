package costmap

import (
	"math"

	"github.com/pkg/errors"
)

// Costmap2D is a row-major grid of cell costs anchored at a world origin. It is not safe for
// concurrent mutation; readers may share it once it stops changing for the cycle.
type Costmap2D struct {
	sizeX, sizeY     int
	resolution       float64
	originX, originY float64
	defaultValue     uint8
	costs            []uint8
}

// NewCostmap2D returns a sizeX by sizeY grid of cells, each resolution meters wide, whose lower
// left corner sits at (originX, originY). Every cell starts at defaultValue.
func NewCostmap2D(sizeX, sizeY int, resolution, originX, originY float64, defaultValue uint8) (*Costmap2D, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, errors.Errorf("costmap size must be positive, got %d x %d", sizeX, sizeY)
	}
	if resolution <= 0 || math.IsNaN(resolution) {
		return nil, errors.Errorf("costmap resolution must be positive, got %f", resolution)
	}
	cm := &Costmap2D{
		sizeX:        sizeX,
		sizeY:        sizeY,
		resolution:   resolution,
		originX:      originX,
		originY:      originY,
		defaultValue: defaultValue,
		costs:        make([]uint8, sizeX*sizeY),
	}
	cm.ResetMap()
	return cm, nil
}

// ResetMap sets every cell back to the default value.
func (cm *Costmap2D) ResetMap() {
	for i := range cm.costs {
		cm.costs[i] = cm.defaultValue
	}
}

// WorldToMap converts world coordinates to cell coordinates.
func (cm *Costmap2D) WorldToMap(wx, wy float64) (int, int, bool) {
	fx := (wx - cm.originX) / cm.resolution
	fy := (wy - cm.originY) / cm.resolution
	// compared as floats so huge or NaN inputs never reach the int conversion
	if !(fx >= 0 && fy >= 0 && fx < float64(cm.sizeX) && fy < float64(cm.sizeY)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// MapToWorld returns the world coordinates of the center of a cell.
func (cm *Costmap2D) MapToWorld(mx, my int) (float64, float64) {
	return cm.originX + (float64(mx)+0.5)*cm.resolution, cm.originY + (float64(my)+0.5)*cm.resolution
}

// InBounds returns whether the cell lies in the grid.
func (cm *Costmap2D) InBounds(mx, my int) bool {
	return mx >= 0 && my >= 0 && mx < cm.sizeX && my < cm.sizeY
}

// Cost returns the cost of a cell. Out of bound cells report NoInformation.
func (cm *Costmap2D) Cost(mx, my int) uint8 {
	if !cm.InBounds(mx, my) {
		return NoInformation
	}
	return cm.costs[cm.index(mx, my)]
}

// SetCost sets the cost of a cell.
func (cm *Costmap2D) SetCost(mx, my int, cost uint8) error {
	if !cm.InBounds(mx, my) {
		return errors.Errorf("cell (%d, %d) is outside the %d x %d costmap", mx, my, cm.sizeX, cm.sizeY)
	}
	cm.costs[cm.index(mx, my)] = cost
	return nil
}

// SetCostAtWorld sets the cost of the cell containing a world point.
func (cm *Costmap2D) SetCostAtWorld(wx, wy float64, cost uint8) error {
	mx, my, ok := cm.WorldToMap(wx, wy)
	if !ok {
		return errors.Errorf("point (%f, %f) is outside the costmap", wx, wy)
	}
	return cm.SetCost(mx, my, cost)
}

// Resolution is the edge length of a cell in meters.
func (cm *Costmap2D) Resolution() float64 {
	return cm.resolution
}

// SizeInCells returns the grid dimensions.
func (cm *Costmap2D) SizeInCells() (int, int) {
	return cm.sizeX, cm.sizeY
}

// SizeInMeters returns the world extent of the grid.
func (cm *Costmap2D) SizeInMeters() (float64, float64) {
	return float64(cm.sizeX) * cm.resolution, float64(cm.sizeY) * cm.resolution
}

func (cm *Costmap2D) index(mx, my int) int {
	return my*cm.sizeX + mx
}
