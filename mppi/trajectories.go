package mppi

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/mppi/spatialmath"
)

// Trajectories is a batch of sampled trajectories. Row i of each matrix is trajectory i and
// column j is timestep j.
type Trajectories struct {
	X    *mat.Dense
	Y    *mat.Dense
	Yaws *mat.Dense
}

// NewTrajectories returns a zeroed batch of batchSize trajectories with timeSteps poses each.
func NewTrajectories(batchSize, timeSteps int) (*Trajectories, error) {
	if batchSize <= 0 || timeSteps <= 0 {
		return nil, ErrEmptyTrajectoryBatch
	}
	return &Trajectories{
		X:    mat.NewDense(batchSize, timeSteps, nil),
		Y:    mat.NewDense(batchSize, timeSteps, nil),
		Yaws: mat.NewDense(batchSize, timeSteps, nil),
	}, nil
}

// TrajectoriesFromPoses packs per-trajectory pose sequences into a batch. Every trajectory must
// have the same, non-zero number of poses.
func TrajectoriesFromPoses(batch [][]spatialmath.Pose2D) (*Trajectories, error) {
	if len(batch) == 0 || len(batch[0]) == 0 {
		return nil, ErrEmptyTrajectoryBatch
	}
	timeSteps := len(batch[0])
	for i, traj := range batch {
		if len(traj) != timeSteps {
			return nil, NewTrajectoryShapeError(i, len(traj), timeSteps)
		}
	}
	trajs, err := NewTrajectories(len(batch), timeSteps)
	if err != nil {
		return nil, err
	}
	for i, traj := range batch {
		for j, pose := range traj {
			trajs.SetPose(i, j, pose)
		}
	}
	return trajs, nil
}

// Dims returns the batch size and timestep count, verifying the x, y, and yaw tensors agree.
func (t *Trajectories) Dims() (int, int, error) {
	if t == nil || t.X == nil || t.Y == nil || t.Yaws == nil || t.X.IsEmpty() {
		return 0, 0, ErrEmptyTrajectoryBatch
	}
	rows, cols := t.X.Dims()
	if r, c := t.Y.Dims(); r != rows || c != cols {
		return 0, 0, NewTrajectoryDimsError("y", r, c, rows, cols)
	}
	if r, c := t.Yaws.Dims(); r != rows || c != cols {
		return 0, 0, NewTrajectoryDimsError("yaw", r, c, rows, cols)
	}
	return rows, cols, nil
}

// Pose returns the pose of trajectory i at timestep j.
func (t *Trajectories) Pose(i, j int) spatialmath.Pose2D {
	return spatialmath.NewPose2D(t.X.At(i, j), t.Y.At(i, j), t.Yaws.At(i, j))
}

// SetPose sets the pose of trajectory i at timestep j.
func (t *Trajectories) SetPose(i, j int, pose spatialmath.Pose2D) {
	t.X.Set(i, j, pose.X)
	t.Y.Set(i, j, pose.Y)
	t.Yaws.Set(i, j, pose.Theta)
}

// Trajectory returns the poses of trajectory i.
func (t *Trajectories) Trajectory(i int) []spatialmath.Pose2D {
	_, cols := t.X.Dims()
	poses := make([]spatialmath.Pose2D, cols)
	for j := range poses {
		poses[j] = t.Pose(i, j)
	}
	return poses
}
