package mppi

import (
	"gonum.org/v1/gonum/floats"
)

// CostAccumulator is the per-trajectory cost vector shared by every critic in a cycle. Critics
// only ever add to it.
type CostAccumulator interface {
	Len() int
	AddContribution(index int, value float64)
}

// Costs is a CostAccumulator backed by a slice.
type Costs []float64

// NewCosts returns a zeroed cost vector for batchSize trajectories.
func NewCosts(batchSize int) Costs {
	return make(Costs, batchSize)
}

// Len returns the number of trajectories.
func (c Costs) Len() int {
	return len(c)
}

// AddContribution adds value to the cost of trajectory index.
func (c Costs) AddContribution(index int, value float64) {
	c[index] += value
}

// AddAll adds one contribution per trajectory.
func (c Costs) AddAll(values []float64) {
	floats.Add(c, values)
}

// Min returns the lowest cost and its index. The index is -1 for an empty vector.
func (c Costs) Min() (float64, int) {
	if len(c) == 0 {
		return 0, -1
	}
	idx := floats.MinIdx(c)
	return c[idx], idx
}
