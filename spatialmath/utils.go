package spatialmath

import (
	"github.com/golang/geo/r2"
)

// ClosestPointSegmentPoint takes a line segment and a point, and returns the point on the segment
// closest to the given point.
func ClosestPointSegmentPoint(segA, segB, pt r2.Point) r2.Point {
	ab := segB.Sub(segA)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return segA
	}
	t := pt.Sub(segA).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return segA
	case t >= 1:
		return segB
	}
	return segA.Add(ab.Mul(t))
}
