// Package costmap contains a 2D occupancy cost grid, the inflation model used to derive
// distance-based costs, and a polygon footprint collision checker over the grid.
package costmap

// Reserved cell values. Anything in [FreeSpace, MaxNonObstacle] is a traversal cost.
const (
	FreeSpace                 uint8 = 0
	MaxNonObstacle            uint8 = 252
	InscribedInflatedObstacle uint8 = 253
	LethalObstacle            uint8 = 254
	NoInformation             uint8 = 255
)

// Grid is a read-only view of a cost grid.
type Grid interface {
	// WorldToMap converts world coordinates to cell coordinates. ok is false when the point is
	// outside the grid.
	WorldToMap(wx, wy float64) (mx, my int, ok bool)
	Cost(mx, my int) uint8
	Resolution() float64
}

// InflationModel maps a distance from the nearest obstacle, in cells, to a cost.
type InflationModel interface {
	ComputeCost(distance float64) uint8
}
