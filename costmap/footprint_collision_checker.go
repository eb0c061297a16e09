package costmap

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/samber/lo"

	"go.viam.com/mppi/spatialmath"
)

// FootprintCollisionChecker scores a polygon footprint against a grid by rasterizing its edges.
type FootprintCollisionChecker struct {
	grid Grid
}

// NewFootprintCollisionChecker returns a checker over the given grid.
func NewFootprintCollisionChecker(grid Grid) *FootprintCollisionChecker {
	return &FootprintCollisionChecker{grid: grid}
}

// SetGrid replaces the grid the checker reads from.
func (fcc *FootprintCollisionChecker) SetGrid(grid Grid) {
	fcc.grid = grid
}

// FootprintCostAtPose places a robot-frame footprint at (x, y, theta) and returns the highest
// cell cost under its outline. A footprint with any vertex off the grid is LethalObstacle.
func (fcc *FootprintCollisionChecker) FootprintCostAtPose(x, y, theta float64, footprint []r2.Point) float64 {
	pose := spatialmath.NewPose2D(x, y, theta)
	return fcc.FootprintCost(lo.Map(footprint, func(pt r2.Point, _ int) r2.Point {
		return pose.Transform(pt)
	}))
}

// FootprintCost returns the highest cell cost along the edges of a world-frame polygon.
func (fcc *FootprintCollisionChecker) FootprintCost(footprint []r2.Point) float64 {
	if len(footprint) == 0 {
		return float64(LethalObstacle)
	}
	x0, y0, ok := fcc.grid.WorldToMap(footprint[0].X, footprint[0].Y)
	if !ok {
		return float64(LethalObstacle)
	}
	xStart, yStart := x0, y0
	x1, y1 := x0, y0

	footprintCost := 0.
	for _, pt := range footprint[1:] {
		x1, y1, ok = fcc.grid.WorldToMap(pt.X, pt.Y)
		if !ok {
			return float64(LethalObstacle)
		}
		footprintCost = math.Max(fcc.LineCost(x0, x1, y0, y1), footprintCost)
		x0, y0 = x1, y1
		if footprintCost == float64(LethalObstacle) {
			return footprintCost
		}
	}

	// close the polygon
	return math.Max(fcc.LineCost(xStart, x1, yStart, y1), footprintCost)
}

// LineCost returns the highest cell cost on the line between two cells, stopping early on a
// lethal cell.
func (fcc *FootprintCollisionChecker) LineCost(x0, x1, y0, y1 int) float64 {
	lineCost := 0.
	for it := newLineIterator(x0, y0, x1, y1); it.valid(); it.advance() {
		pointCost := float64(fcc.grid.Cost(it.x, it.y))
		if pointCost == float64(LethalObstacle) {
			return pointCost
		}
		lineCost = math.Max(lineCost, pointCost)
	}
	return lineCost
}
