// Package spatialmath defines the planar poses and robot footprints used for collision checking.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/mppi/utils"
)

// Pose2D is a position and heading on the ground plane, in world units and radians.
type Pose2D struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// NewPose2D returns a pose at (x, y) facing theta.
func NewPose2D(x, y, theta float64) Pose2D {
	return Pose2D{X: x, Y: y, Theta: theta}
}

// Point returns the position of the pose.
func (p Pose2D) Point() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Transform maps a point expressed in this pose's frame into the world frame.
func (p Pose2D) Transform(pt r2.Point) r2.Point {
	sin, cos := math.Sincos(p.Theta)
	return r2.Point{
		X: p.X + pt.X*cos - pt.Y*sin,
		Y: p.Y + pt.X*sin + pt.Y*cos,
	}
}

// DistanceSquared returns the squared planar distance between two poses, ignoring heading.
func (p Pose2D) DistanceSquared(other Pose2D) float64 {
	return utils.Square(p.X-other.X) + utils.Square(p.Y-other.Y)
}

// AlmostEqual returns whether two poses match within epsilon in every component.
func (p Pose2D) AlmostEqual(other Pose2D, epsilon float64) bool {
	return utils.Float64AlmostEqual(p.X, other.X, epsilon) &&
		utils.Float64AlmostEqual(p.Y, other.Y, epsilon) &&
		utils.Float64AlmostEqual(utils.WrapToPi(p.Theta-other.Theta), 0, epsilon)
}
