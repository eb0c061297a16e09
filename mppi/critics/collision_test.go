package critics

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/mppi/costmap"
)

func TestIsCollisionCost(t *testing.T) {
	lethal := float64(costmap.LethalObstacle)
	inscribed := float64(costmap.InscribedInflatedObstacle)
	unknown := float64(costmap.NoInformation)

	for _, footprintEnabled := range []bool{false, true} {
		for _, trackingUnknown := range []bool{false, true} {
			test.That(t, isCollisionCost(lethal, footprintEnabled, trackingUnknown), test.ShouldBeTrue)
			test.That(t, isCollisionCost(inscribed, footprintEnabled, trackingUnknown), test.ShouldEqual, !footprintEnabled)
			test.That(t, isCollisionCost(unknown, footprintEnabled, trackingUnknown), test.ShouldEqual, !trackingUnknown)
			test.That(t, isCollisionCost(252, footprintEnabled, trackingUnknown), test.ShouldBeFalse)
			test.That(t, isCollisionCost(0, footprintEnabled, trackingUnknown), test.ShouldBeFalse)
		}
	}
}

func TestPointCostClassifier(t *testing.T) {
	classifier := &pointCostClassifier{}
	test.That(t, classifier.inCollision(float64(costmap.InscribedInflatedObstacle), 0, 0, 0), test.ShouldBeTrue)
	test.That(t, classifier.inCollision(float64(costmap.NoInformation), 0, 0, 0), test.ShouldBeTrue)
	test.That(t, classifier.inCollision(100, 0, 0, 0), test.ShouldBeFalse)

	classifier.trackingUnknown = true
	test.That(t, classifier.inCollision(float64(costmap.NoInformation), 0, 0, 0), test.ShouldBeFalse)
}

func TestFootprintGatedClassifier(t *testing.T) {
	checker := &countingFootprintChecker{cost: float64(costmap.LethalObstacle)}
	classifier := &footprintGatedClassifier{
		threshold: 50,
		footprintCost: func(x, y, yaw float64) float64 {
			return checker.FootprintCostAtPose(x, y, yaw, nil)
		},
	}

	// below the threshold the point cost is trusted
	test.That(t, classifier.inCollision(49, 1, 2, 3), test.ShouldBeFalse)
	test.That(t, len(checker.poses), test.ShouldEqual, 0)

	// at or above it the footprint decides
	test.That(t, classifier.inCollision(51, 1, 2, 3), test.ShouldBeTrue)
	test.That(t, checker.poses, test.ShouldResemble, []checkedPose{{1, 2, 3}})
	test.That(t, classifier.inCollision(50, 4, 5, 6), test.ShouldBeTrue)
	test.That(t, len(checker.poses), test.ShouldEqual, 2)

	// a lethal center with a clear footprint is not a collision
	checker.cost = 0
	test.That(t, classifier.inCollision(float64(costmap.LethalObstacle), 0, 0, 0), test.ShouldBeFalse)

	// the footprint's inscribed result alone is not a collision either
	checker.cost = float64(costmap.InscribedInflatedObstacle)
	test.That(t, classifier.inCollision(200, 0, 0, 0), test.ShouldBeFalse)

	// unknown threshold checks everything
	classifier.threshold = UnavailableCost
	checker.poses = nil
	checker.cost = float64(costmap.LethalObstacle)
	test.That(t, classifier.inCollision(1, 0, 0, 0), test.ShouldBeTrue)
	test.That(t, classifier.inCollision(30, 0, 0, 0), test.ShouldBeTrue)
	test.That(t, len(checker.poses), test.ShouldEqual, 2)
}
