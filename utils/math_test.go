package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPowInt(t *testing.T) {
	test.That(t, PowInt(2, 0), test.ShouldEqual, 1.)
	test.That(t, PowInt(2, 1), test.ShouldEqual, 2.)
	test.That(t, PowInt(3, 3), test.ShouldEqual, 27.)
	test.That(t, PowInt(0.5, 2), test.ShouldEqual, 0.25)
}

func TestWrapToPi(t *testing.T) {
	test.That(t, WrapToPi(0), test.ShouldEqual, 0.)
	test.That(t, Float64AlmostEqual(WrapToPi(3*math.Pi/2), -math.Pi/2, 1e-9), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(WrapToPi(-3*math.Pi/2), math.Pi/2, 1e-9), test.ShouldBeTrue)
}
