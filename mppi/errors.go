package mppi

import (
	"github.com/pkg/errors"
)

// ErrEmptyTrajectoryBatch is returned when a batch has no trajectories or no timesteps.
var ErrEmptyTrajectoryBatch = errors.New("trajectory batch is empty")

// ErrCostsSizeMismatch is returned when the cost vector does not have one entry per trajectory.
var ErrCostsSizeMismatch = errors.New("cost vector size does not match trajectory batch size")

// NewTrajectoryShapeError returns an error describing a trajectory whose timestep count differs
// from the rest of the batch.
func NewTrajectoryShapeError(index, got, want int) error {
	return &inputShapeError{errors.Errorf("trajectory %d has %d timesteps, expected %d", index, got, want)}
}

// NewTrajectoryDimsError returns an error for x, y, and yaw tensors of different shapes.
func NewTrajectoryDimsError(component string, rows, cols, wantRows, wantCols int) error {
	return &inputShapeError{errors.Errorf(
		"trajectory %s has shape %dx%d, expected %dx%d", component, rows, cols, wantRows, wantCols)}
}

// NewCostsSizeError wraps ErrCostsSizeMismatch with the sizes involved.
func NewCostsSizeError(got, want int) error {
	return errors.Wrapf(ErrCostsSizeMismatch, "got %d costs for %d trajectories", got, want)
}

type inputShapeError struct {
	error
}

func (e *inputShapeError) Unwrap() error {
	return e.error
}

// IsInputShapeError returns whether err reports a malformed trajectory batch or cost vector.
func IsInputShapeError(err error) bool {
	if err == nil {
		return false
	}
	var shapeErr *inputShapeError
	return errors.As(err, &shapeErr) ||
		errors.Is(err, ErrEmptyTrajectoryBatch) ||
		errors.Is(err, ErrCostsSizeMismatch)
}
