package mppi

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/mppi/spatialmath"
)

func TestTrajectoriesFromPoses(t *testing.T) {
	trajs, err := TrajectoriesFromPoses([][]spatialmath.Pose2D{
		{spatialmath.NewPose2D(0, 0, 0), spatialmath.NewPose2D(1, 0, 0.1)},
		{spatialmath.NewPose2D(0, 1, 0), spatialmath.NewPose2D(1, 2, -0.1)},
	})
	test.That(t, err, test.ShouldBeNil)
	rows, cols, err := trajs.Dims()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rows, test.ShouldEqual, 2)
	test.That(t, cols, test.ShouldEqual, 2)
	test.That(t, trajs.Pose(1, 1), test.ShouldResemble, spatialmath.NewPose2D(1, 2, -0.1))
	test.That(t, trajs.Trajectory(0)[1], test.ShouldResemble, spatialmath.NewPose2D(1, 0, 0.1))
}

func TestTrajectoriesShapeErrors(t *testing.T) {
	_, err := TrajectoriesFromPoses(nil)
	test.That(t, err, test.ShouldEqual, ErrEmptyTrajectoryBatch)
	test.That(t, IsInputShapeError(err), test.ShouldBeTrue)

	_, err = TrajectoriesFromPoses([][]spatialmath.Pose2D{{}})
	test.That(t, err, test.ShouldEqual, ErrEmptyTrajectoryBatch)

	_, err = TrajectoriesFromPoses([][]spatialmath.Pose2D{
		{spatialmath.NewPose2D(0, 0, 0), spatialmath.NewPose2D(1, 0, 0)},
		{spatialmath.NewPose2D(0, 0, 0)},
	})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "trajectory 1 has 1 timesteps, expected 2")
	test.That(t, IsInputShapeError(err), test.ShouldBeTrue)

	_, err = NewTrajectories(0, 3)
	test.That(t, err, test.ShouldEqual, ErrEmptyTrajectoryBatch)

	var empty *Trajectories
	_, _, err = empty.Dims()
	test.That(t, err, test.ShouldEqual, ErrEmptyTrajectoryBatch)

	mismatched := &Trajectories{X: mat.NewDense(2, 3, nil), Y: mat.NewDense(2, 3, nil), Yaws: mat.NewDense(2, 2, nil)}
	_, _, err = mismatched.Dims()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "yaw")
	test.That(t, IsInputShapeError(err), test.ShouldBeTrue)

	test.That(t, IsInputShapeError(NewCostsSizeError(1, 2)), test.ShouldBeTrue)
	test.That(t, IsInputShapeError(nil), test.ShouldBeFalse)
}

func TestWithinPositionGoalTolerance(t *testing.T) {
	path := Path{spatialmath.NewPose2D(0, 0, 0), spatialmath.NewPose2D(2, 0, 0)}
	test.That(t, WithinPositionGoalTolerance(0.5, spatialmath.NewPose2D(1.7, 0.1, 3), path), test.ShouldBeTrue)
	test.That(t, WithinPositionGoalTolerance(0.5, spatialmath.NewPose2D(1.5, 0, 0), path), test.ShouldBeFalse)
	test.That(t, WithinPositionGoalTolerance(0.5, spatialmath.NewPose2D(0, 0, 0), path), test.ShouldBeFalse)
	test.That(t, WithinPositionGoalTolerance(0.5, spatialmath.NewPose2D(2, 0, 0), nil), test.ShouldBeFalse)
}

func TestCosts(t *testing.T) {
	costs := NewCosts(3)
	costs.AddContribution(1, 2.5)
	costs.AddAll([]float64{1, 1, 1})
	costs.AddContribution(1, 0.5)
	test.That(t, []float64(costs), test.ShouldResemble, []float64{1, 4, 1})
	test.That(t, costs.Len(), test.ShouldEqual, 3)

	minCost, idx := costs.Min()
	test.That(t, minCost, test.ShouldEqual, 1.)
	test.That(t, idx, test.ShouldEqual, 0)

	_, idx = NewCosts(0).Min()
	test.That(t, idx, test.ShouldEqual, -1)
}
