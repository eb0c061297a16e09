package mppi

import (
	"go.viam.com/mppi/spatialmath"
	"go.viam.com/mppi/utils"
)

// Path is the reference path the controller tracks. Its last pose is the goal.
type Path []spatialmath.Pose2D

// Goal returns the last pose of the path.
func (p Path) Goal() (spatialmath.Pose2D, bool) {
	if len(p) == 0 {
		return spatialmath.Pose2D{}, false
	}
	return p[len(p)-1], true
}

// WithinPositionGoalTolerance returns whether the robot is closer than tolerance to the path's
// goal position. Heading is ignored.
func WithinPositionGoalTolerance(tolerance float64, robotPose spatialmath.Pose2D, path Path) bool {
	goal, ok := path.Goal()
	if !ok {
		return false
	}
	return robotPose.DistanceSquared(goal) < utils.Square(tolerance)
}
