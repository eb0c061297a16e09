package mppi

import (
	"go.viam.com/mppi/spatialmath"
)

// State is the robot state at the start of a control cycle.
type State struct {
	Pose spatialmath.Pose2D
}

// CriticData is everything a critic reads and writes during one control cycle.
type CriticData struct {
	State        State
	Trajectories *Trajectories
	Path         Path
	Costs        CostAccumulator

	// FailFlag is set when a critic decides the whole batch is unsafe.
	FailFlag bool
}
