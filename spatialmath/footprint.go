package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Footprint is the robot's collision polygon, expressed in the robot frame with the robot's
// center at the origin. Vertices are ordered and the polygon is implicitly closed.
type Footprint struct {
	vertices      []r2.Point
	inscribed     float64
	circumscribed float64
}

// NewFootprint builds a footprint from at least three vertices.
func NewFootprint(vertices []r2.Point) (*Footprint, error) {
	if len(vertices) < 3 {
		return nil, errors.Errorf("footprint needs at least 3 vertices, got %d", len(vertices))
	}
	pts := make([]r2.Point, len(vertices))
	copy(pts, vertices)
	inscribed, circumscribed := minAndMaxDistances(pts)
	return &Footprint{vertices: pts, inscribed: inscribed, circumscribed: circumscribed}, nil
}

// NewRectangularFootprint returns a footprint for a length x width box centered on the robot.
func NewRectangularFootprint(length, width float64) (*Footprint, error) {
	if length <= 0 || width <= 0 {
		return nil, errors.Errorf("rectangular footprint dimensions must be positive, got %f x %f", length, width)
	}
	hl, hw := length/2, width/2
	return NewFootprint([]r2.Point{{X: hl, Y: hw}, {X: hl, Y: -hw}, {X: -hl, Y: -hw}, {X: -hl, Y: hw}})
}

// NewCircularFootprint approximates a circle of the given radius with a regular polygon.
func NewCircularFootprint(radius float64, sides int) (*Footprint, error) {
	if radius <= 0 {
		return nil, errors.Errorf("circular footprint radius must be positive, got %f", radius)
	}
	if sides < 3 {
		sides = 16
	}
	vertices := lo.Times(sides, func(i int) r2.Point {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(sides))
		return r2.Point{X: radius * cos, Y: radius * sin}
	})
	return NewFootprint(vertices)
}

// Vertices returns a copy of the footprint's vertices in the robot frame.
func (f *Footprint) Vertices() []r2.Point {
	pts := make([]r2.Point, len(f.vertices))
	copy(pts, f.vertices)
	return pts
}

// InscribedRadius is the smallest distance from the center to any edge of the footprint.
func (f *Footprint) InscribedRadius() float64 {
	return f.inscribed
}

// CircumscribedRadius is the largest distance from the center to any vertex of the footprint.
func (f *Footprint) CircumscribedRadius() float64 {
	return f.circumscribed
}

// Oriented returns the footprint's vertices placed at the given pose in the world frame.
func (f *Footprint) Oriented(pose Pose2D) []r2.Point {
	return lo.Map(f.vertices, func(pt r2.Point, _ int) r2.Point {
		return pose.Transform(pt)
	})
}

// minAndMaxDistances returns the inscribed and circumscribed radii of a polygon around the origin.
func minAndMaxDistances(vertices []r2.Point) (float64, float64) {
	minDist := math.Inf(1)
	maxDist := 0.
	origin := r2.Point{}
	for i, vertex := range vertices {
		vertexDist := vertex.Norm()
		maxDist = math.Max(maxDist, vertexDist)
		minDist = math.Min(minDist, vertexDist)

		next := vertices[(i+1)%len(vertices)]
		edgeDist := origin.Sub(ClosestPointSegmentPoint(vertex, next, origin)).Norm()
		minDist = math.Min(minDist, edgeDist)
	}
	return minDist, maxDist
}
