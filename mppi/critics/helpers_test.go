package critics

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/mppi/costmap"
	"go.viam.com/mppi/mppi"
	"go.viam.com/mppi/spatialmath"
)

const (
	testCells      = 100
	testResolution = 0.1
)

// newTestCostmap returns a 10m x 10m free layered costmap with a 0.4m square footprint and a
// default inflation layer that has not been applied.
func newTestCostmap(t *testing.T) *costmap.LayeredCostmap {
	t.Helper()
	cm, err := costmap.NewCostmap2D(testCells, testCells, testResolution, 0, 0, costmap.FreeSpace)
	test.That(t, err, test.ShouldBeNil)
	footprint, err := spatialmath.NewRectangularFootprint(0.4, 0.4)
	test.That(t, err, test.ShouldBeNil)
	layered, err := costmap.NewLayeredCostmap(cm, footprint, false)
	test.That(t, err, test.ShouldBeNil)
	layer, err := costmap.NewInflationLayer(costmap.DefaultInflationConfig(), testResolution)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, layered.AddInflationLayer(layer), test.ShouldBeNil)
	return layered
}

// rowTrajectory returns poses at the centers of cells (startCol..startCol+steps-1, row).
func rowTrajectory(cm *costmap.Costmap2D, row, startCol, steps int) []spatialmath.Pose2D {
	poses := make([]spatialmath.Pose2D, steps)
	for j := range poses {
		wx, wy := cm.MapToWorld(startCol+j, row)
		poses[j] = spatialmath.NewPose2D(wx, wy, 0)
	}
	return poses
}

func setRowCosts(t *testing.T, cm *costmap.Costmap2D, row int, costsByCol map[int]uint8) {
	t.Helper()
	for col, cost := range costsByCol {
		test.That(t, cm.SetCost(col, row, cost), test.ShouldBeNil)
	}
}

func newCriticData(t *testing.T, batch [][]spatialmath.Pose2D) *mppi.CriticData {
	t.Helper()
	trajs, err := mppi.TrajectoriesFromPoses(batch)
	test.That(t, err, test.ShouldBeNil)
	return &mppi.CriticData{
		State:        mppi.State{Pose: spatialmath.NewPose2D(0, 0, 0)},
		Trajectories: trajs,
		Path:         mppi.Path{spatialmath.NewPose2D(9, 9, 0)},
		Costs:        mppi.NewCosts(len(batch)),
	}
}

type countingInflationModel struct {
	cost      uint8
	calls     int
	distances []float64
}

func (m *countingInflationModel) ComputeCost(distance float64) uint8 {
	m.calls++
	m.distances = append(m.distances, distance)
	return m.cost
}

// fakeEnvironment is a costmap view whose inflation model can be counted or removed.
type fakeEnvironment struct {
	grid            *costmap.Costmap2D
	footprint       *spatialmath.Footprint
	trackingUnknown bool
	model           *countingInflationModel
	modelQueries    int
}

func newFakeEnvironment(t *testing.T, model *countingInflationModel) *fakeEnvironment {
	t.Helper()
	cm, err := costmap.NewCostmap2D(testCells, testCells, testResolution, 0, 0, costmap.FreeSpace)
	test.That(t, err, test.ShouldBeNil)
	footprint, err := spatialmath.NewRectangularFootprint(0.4, 0.4)
	test.That(t, err, test.ShouldBeNil)
	return &fakeEnvironment{grid: cm, footprint: footprint, model: model}
}

func (e *fakeEnvironment) Grid() costmap.Grid { return e.grid }

func (e *fakeEnvironment) Footprint() *spatialmath.Footprint { return e.footprint }

func (e *fakeEnvironment) IsTrackingUnknown() bool { return e.trackingUnknown }

func (e *fakeEnvironment) InflationModel(name string) (costmap.InflationModel, bool) {
	e.modelQueries++
	if e.model == nil {
		return nil, false
	}
	return e.model, true
}

type checkedPose struct {
	x, y, yaw float64
}

type countingFootprintChecker struct {
	cost  float64
	poses []checkedPose
}

func (c *countingFootprintChecker) FootprintCostAtPose(x, y, theta float64, footprint []r2.Point) float64 {
	c.poses = append(c.poses, checkedPose{x, y, theta})
	return c.cost
}

// recordingAccumulator is a cost vector without bulk adds.
type recordingAccumulator struct {
	values []float64
	adds   int
}

func (r *recordingAccumulator) Len() int { return len(r.values) }

func (r *recordingAccumulator) AddContribution(index int, value float64) {
	r.adds++
	r.values[index] += value
}
