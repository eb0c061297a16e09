package critics

import (
	"go.viam.com/mppi/costmap"
)

// collisionClassifier decides whether a pose with the given center point cost is in collision.
type collisionClassifier interface {
	inCollision(cost, x, y, yaw float64) bool
}

// pointCostClassifier trusts the center point cost alone, treating the robot as circular.
type pointCostClassifier struct {
	trackingUnknown bool
}

func (c *pointCostClassifier) inCollision(cost, _, _, _ float64) bool {
	return isCollisionCost(cost, false, c.trackingUnknown)
}

// footprintGatedClassifier checks the full footprint whenever the point cost says a collision is
// possible, and otherwise trusts the point cost.
type footprintGatedClassifier struct {
	threshold       float64
	trackingUnknown bool
	footprintCost   func(x, y, yaw float64) float64
}

func (c *footprintGatedClassifier) inCollision(cost, x, y, yaw float64) bool {
	if cost >= c.threshold || thresholdUnavailable(c.threshold) {
		cost = c.footprintCost(x, y, yaw)
	}
	return isCollisionCost(cost, true, c.trackingUnknown)
}

// isCollisionCost classifies a final cost value. An inscribed cost only collides for circular
// checking; with a footprint, only the footprint's own lethal result does.
func isCollisionCost(cost float64, footprintEnabled, trackingUnknown bool) bool {
	switch cost {
	case float64(costmap.LethalObstacle):
		return true
	case float64(costmap.InscribedInflatedObstacle):
		return !footprintEnabled
	case float64(costmap.NoInformation):
		return !trackingUnknown
	}
	return false
}
