package critics

import (
	"go.viam.com/mppi/logging"
	"go.viam.com/mppi/mppi"
)

// UnavailableCost is the circumscribed cost reported when no inflation model exists. It fails
// every possible-collision comparison against a real cost, so callers always fall back to the
// full footprint check.
const UnavailableCost = -1.0

// CircumscribedCostEstimator finds the cost the inflation model assigns at the footprint's
// circumscribed radius. Any point cost below it is far enough from obstacles that no part of
// the footprint can touch one. The result is cached until the radius changes.
// It is not safe for concurrent use.
type CircumscribedCostEstimator struct {
	inflationLayerName string
	logger             logging.Logger

	cached bool
	radius float64
	cost   float64

	warnedNoInflation bool
}

// NewCircumscribedCostEstimator returns an estimator that queries the named inflation layer,
// or the first available one when inflationLayerName is empty.
func NewCircumscribedCostEstimator(inflationLayerName string, logger logging.Logger) *CircumscribedCostEstimator {
	return &CircumscribedCostEstimator{inflationLayerName: inflationLayerName, logger: logger}
}

// Estimate returns the circumscribed cost for the environment's current footprint, or
// UnavailableCost.
func (e *CircumscribedCostEstimator) Estimate(env mppi.Environment) float64 {
	radius := env.Footprint().CircumscribedRadius()
	if e.cached && radius == e.radius {
		return e.cost
	}

	result := UnavailableCost
	if model, ok := env.InflationModel(e.inflationLayerName); ok {
		result = float64(model.ComputeCost(radius / env.Grid().Resolution()))
	} else if !e.warnedNoInflation {
		e.warnedNoInflation = true
		e.logger.Warnw(
			"No inflation layer found in costmap configuration. The cost critic cannot use the costmap "+
				"potential field to skip full footprint checks far from obstacles, which may significantly "+
				"slow down scoring.",
			"inflation_layer_name", e.inflationLayerName)
	}

	e.cached = true
	e.radius = radius
	e.cost = result
	return result
}

// Cached returns the last computed radius and cost, and whether anything was computed yet.
func (e *CircumscribedCostEstimator) Cached() (radius, cost float64, ok bool) {
	return e.radius, e.cost, e.cached
}

// thresholdUnavailable reports whether a circumscribed cost cannot gate the footprint check.
func thresholdUnavailable(threshold float64) bool {
	return threshold < 1.0
}
