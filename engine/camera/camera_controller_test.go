package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTolerance = 1e-5

// assertVec3InDelta compares two vectors component-wise within floatTolerance.
func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), floatTolerance)
	assert.InDelta(t, expected.Y(), actual.Y(), floatTolerance)
	assert.InDelta(t, expected.Z(), actual.Z(), floatTolerance)
}

func TestControllerDefaults(t *testing.T) {
	c := NewCameraController()

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 5}, c.Position())
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.InDelta(t, 5.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, math.Pi/2, c.Azimuth(), floatTolerance)
	assert.InDelta(t, 0.0, c.Elevation(), floatTolerance)

	minDist, maxDist := c.DistanceBounds()
	assert.InDelta(t, 0.1, minDist, floatTolerance)
	assert.InDelta(t, 1000.0, maxDist, floatTolerance)
}

func TestOrbitPreservesDistance(t *testing.T) {
	c := NewCameraController()

	c.Orbit(100, 0)

	offset := c.Position().Sub(c.Target())
	assert.InDelta(t, 5.0, offset.Len(), floatTolerance)
	assert.InDelta(t, 0.0, c.Position().Y(), floatTolerance)
	assert.InDelta(t, math.Pi/2+1.0, c.Azimuth(), floatTolerance)
}

func TestOrbitZeroDeltaIsNoOp(t *testing.T) {
	c := NewCameraController()
	before := c.Position()

	c.Orbit(0, 0)

	assertVec3InDelta(t, before, c.Position())
}

func TestOrbitClampsElevation(t *testing.T) {
	c := NewCameraController()
	limit := float32(89.0 * math.Pi / 180.0)

	c.Orbit(0, 1e6)
	assert.InDelta(t, limit, c.Elevation(), floatTolerance)

	c.Orbit(0, -1e7)
	assert.InDelta(t, -limit, c.Elevation(), floatTolerance)

	// Position stays consistent with the clamped spherical state.
	offset := c.Position().Sub(c.Target())
	assert.InDelta(t, 5.0, offset.Len(), floatTolerance)
}

func TestOrbitStateStaysConsistentUnderArbitrarySequences(t *testing.T) {
	c := NewCameraController()

	deltas := [][2]float32{
		{35, -12}, {-200, 500}, {1, 1}, {-0.5, -9999}, {77, 300},
	}
	for _, d := range deltas {
		c.Orbit(d[0], d[1])

		offset := c.Position().Sub(c.Target())
		assert.InDelta(t, c.OrbitDistance(), offset.Len(), floatTolerance)
		assert.InDelta(t, float64(c.OrbitDistance()*float32(math.Sin(float64(c.Elevation())))),
			float64(offset.Y()), floatTolerance)
	}
}

func TestPanTranslatesPositionAndTargetTogether(t *testing.T) {
	c := NewCameraController()

	c.Pan(10, 5)

	// With the eye at +Z looking at the origin, right is +X and up is +Y.
	assertVec3InDelta(t, mgl32.Vec3{0.1, 0.05, 0}, c.Target())
	assertVec3InDelta(t, mgl32.Vec3{0.1, 0.05, 5}, c.Position())

	offset := c.Position().Sub(c.Target())
	assert.InDelta(t, 5.0, offset.Len(), floatTolerance)
	assert.InDelta(t, math.Pi/2, c.Azimuth(), floatTolerance)
	assert.InDelta(t, 0.0, c.Elevation(), floatTolerance)
}

func TestMoveAlongAxesAddsDollyComponent(t *testing.T) {
	c := NewCameraController()

	c.MoveAlongAxes(0, 10)

	// Vertical delta pans along up and dollies along forward (-Z here).
	assertVec3InDelta(t, mgl32.Vec3{0, 0.1, -0.05}, c.Target())
	assertVec3InDelta(t, mgl32.Vec3{0, 0.1, 4.95}, c.Position())
}

func TestZoomScalesDistanceMultiplicatively(t *testing.T) {
	c := NewCameraController()

	c.Zoom(0.5)
	assert.InDelta(t, 4.75, c.OrbitDistance(), floatTolerance)

	c.Zoom(-0.5)
	assert.InDelta(t, 4.75*1.05, c.OrbitDistance(), floatTolerance)
}

func TestZoomClampsToDistanceBounds(t *testing.T) {
	c := NewCameraController()

	c.Zoom(-1e6)
	assert.InDelta(t, 1000.0, c.OrbitDistance(), floatTolerance)

	c.Zoom(1e6)
	assert.InDelta(t, 0.1, c.OrbitDistance(), floatTolerance)
}

func TestSetOrbitDistanceClamps(t *testing.T) {
	c := NewCameraController()

	c.SetOrbitDistance(9999)
	assert.InDelta(t, 1000.0, c.OrbitDistance(), floatTolerance)

	c.SetOrbitDistance(0.001)
	assert.InDelta(t, 0.1, c.OrbitDistance(), floatTolerance)

	offset := c.Position().Sub(c.Target())
	assert.InDelta(t, 0.1, offset.Len(), floatTolerance)
}

func TestSetPositionDerivesOrbitState(t *testing.T) {
	c := NewCameraController()

	c.SetPosition(mgl32.Vec3{3, 4, 0})

	assertVec3InDelta(t, mgl32.Vec3{3, 4, 0}, c.Position())
	assert.InDelta(t, 5.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, math.Asin(4.0/5.0), c.Elevation(), floatTolerance)
	assert.InDelta(t, 0.0, c.Azimuth(), floatTolerance)
}

func TestSetPositionAtTargetIsIgnored(t *testing.T) {
	c := NewCameraController()
	before := c.Position()
	beforeAzimuth := c.Azimuth()

	c.SetPosition(c.Target())

	assertVec3InDelta(t, before, c.Position())
	assert.InDelta(t, beforeAzimuth, c.Azimuth(), floatTolerance)
	assert.False(t, math.IsNaN(float64(c.Elevation())))
	assert.False(t, math.IsNaN(float64(c.OrbitDistance())))
}

func TestSetTargetPreservesFraming(t *testing.T) {
	c := NewCameraController()

	c.SetTarget(mgl32.Vec3{1, 2, 3})

	assertVec3InDelta(t, mgl32.Vec3{1, 2, 8}, c.Position())
	assert.InDelta(t, 5.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, math.Pi/2, c.Azimuth(), floatTolerance)
}

func TestSetOrbitAnglesClampsElevation(t *testing.T) {
	c := NewCameraController()
	limit := float32(89.0 * math.Pi / 180.0)

	c.SetOrbitAngles(1.0, 3.0)

	assert.InDelta(t, 1.0, c.Azimuth(), floatTolerance)
	assert.InDelta(t, limit, c.Elevation(), floatTolerance)
}

func TestFitToBoundsFramesBox(t *testing.T) {
	c := NewCameraController()
	c.Orbit(25, 10) // arbitrary viewpoint; angles must survive the fit
	azimuth, elevation := c.Azimuth(), c.Elevation()

	c.FitToBounds(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assert.InDelta(t, 4.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, azimuth, c.Azimuth(), floatTolerance)
	assert.InDelta(t, elevation, c.Elevation(), floatTolerance)
}

func TestFitToBoundsUsesLargestExtent(t *testing.T) {
	c := NewCameraController()

	c.FitToBounds(mgl32.Vec3{-1, 0, -3}, mgl32.Vec3{1, 2, 7})

	assertVec3InDelta(t, mgl32.Vec3{0, 1, 2}, c.Target())
	assert.InDelta(t, 20.0, c.OrbitDistance(), floatTolerance)
}

func TestResetRestoresDefaults(t *testing.T) {
	c := NewCameraController(WithZoomSpeed(0.25))

	c.Orbit(123, -45)
	c.Pan(50, 50)
	c.Zoom(3)
	c.Reset()

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 5}, c.Position())
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assert.InDelta(t, 5.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, math.Pi/2, c.Azimuth(), floatTolerance)
	assert.InDelta(t, 0.0, c.Elevation(), floatTolerance)

	// Speed settings survive a reset.
	assert.InDelta(t, 0.25, c.ZoomSpeed(), floatTolerance)

	// Reset is idempotent.
	c.Reset()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 5}, c.Position())
}

func TestForwardAndRightAreUnitVectors(t *testing.T) {
	c := NewCameraController()

	assertVec3InDelta(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, c.Right())

	c.Orbit(321, 77)
	assert.InDelta(t, 1.0, c.Forward().Len(), floatTolerance)
	assert.InDelta(t, 1.0, c.Right().Len(), floatTolerance)
}

func TestBuilderOptionsApplyAndClamp(t *testing.T) {
	c := NewCameraController(
		WithTarget(mgl32.Vec3{1, 0, 0}),
		WithUp(mgl32.Vec3{0, 1, 0}),
		WithOrbitDistance(50),
		WithOrbitAngles(0, 2.0),
		WithDistanceBounds(1, 10),
		WithPanSpeed(mgl32.Vec3{2, 2, 2}),
		WithZoomSpeed(0.2),
	)

	require.NotNil(t, c)
	assert.InDelta(t, 10.0, c.OrbitDistance(), floatTolerance)
	assert.InDelta(t, float64(89.0*math.Pi/180.0), float64(c.Elevation()), floatTolerance)
	assert.InDelta(t, 0.2, c.ZoomSpeed(), floatTolerance)
	assertVec3InDelta(t, mgl32.Vec3{2, 2, 2}, c.PanSpeed())
}
