package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMat4InDelta compares two matrices element-wise within floatTolerance.
func assertMat4InDelta(t *testing.T, expected, actual mgl32.Mat4) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], floatTolerance)
	}
}

func newTestCamera(options ...CameraBuilderOption) Camera {
	options = append([]CameraBuilderOption{WithController(NewCameraController())}, options...)
	return NewCamera(options...)
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()

	assert.Equal(t, Perspective, cam.Projection())
	assert.InDelta(t, 45.0, cam.Fov(), floatTolerance)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), floatTolerance)
	assert.InDelta(t, 0.1, cam.Near(), floatTolerance)
	assert.InDelta(t, 1000.0, cam.Far(), floatTolerance)
	assert.InDelta(t, 10.0, cam.OrthoSize(), floatTolerance)
	assert.InDelta(t, 1.0, cam.ZoomFactor(), floatTolerance)
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	cam := newTestCamera()

	expected := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 5},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	assertMat4InDelta(t, expected, cam.ViewMatrix())
}

func TestPerspectiveProjectionMatrix(t *testing.T) {
	cam := newTestCamera()

	expected := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 1000)
	assertMat4InDelta(t, expected, cam.ProjectionMatrix())
}

func TestOrthographicProjectionMatrix(t *testing.T) {
	cam := newTestCamera(WithProjection(Orthographic))

	// Vertical extent is the ortho size; horizontal is scaled by aspect.
	half := float32(5.0)
	aspect := float32(16.0 / 9.0)
	expected := mgl32.Ortho(-half*aspect, half*aspect, -half, half, 0.1, 1000)
	assertMat4InDelta(t, expected, cam.ProjectionMatrix())
}

func TestViewProjectionIsProjectionTimesView(t *testing.T) {
	cam := newTestCamera()

	expected := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	assertMat4InDelta(t, expected, cam.ViewProjectionMatrix())
}

func TestToggleProjection(t *testing.T) {
	cam := newTestCamera()

	cam.ToggleProjection()
	assert.Equal(t, Orthographic, cam.Projection())

	cam.ToggleProjection()
	assert.Equal(t, Perspective, cam.Projection())
}

func TestZoomDivergesByProjectionMode(t *testing.T) {
	cam := newTestCamera()
	ctrl := cam.Controller()
	require.NotNil(t, ctrl)

	// Perspective zoom moves the eye; the ortho extent is untouched.
	cam.Zoom(0.5)
	assert.InDelta(t, 4.75, ctrl.OrbitDistance(), floatTolerance)
	assert.InDelta(t, 10.0, cam.OrthoSize(), floatTolerance)

	// Orthographic zoom scales the extent; the eye stays put.
	cam.SetProjection(Orthographic)
	cam.Zoom(0.5)
	assert.InDelta(t, 9.5, cam.OrthoSize(), floatTolerance)
	assert.InDelta(t, 4.75, ctrl.OrbitDistance(), floatTolerance)
}

func TestOrthographicZoomFloorsExtent(t *testing.T) {
	cam := newTestCamera(WithProjection(Orthographic))

	cam.Zoom(1e6)

	assert.InDelta(t, 0.1, cam.OrthoSize(), floatTolerance)
}

func TestUpdateRecomputesAspect(t *testing.T) {
	cam := newTestCamera()

	cam.Update(800, 600)
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), floatTolerance)

	// Zero height keeps the previous ratio.
	cam.Update(800, 0)
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), floatTolerance)
}

func TestSetZoomFactorRescalesOrthoExtent(t *testing.T) {
	cam := newTestCamera(WithProjection(Orthographic))

	cam.SetZoomFactor(2)

	assert.InDelta(t, 2.0, cam.ZoomFactor(), floatTolerance)
	assert.InDelta(t, 5.0, cam.OrthoSize(), floatTolerance)
}

func TestSetZoomFactorLeavesPerspectiveExtentAlone(t *testing.T) {
	cam := newTestCamera()

	cam.SetZoomFactor(2)

	assert.InDelta(t, 10.0, cam.OrthoSize(), floatTolerance)
}

func TestResetRestoresProjectionDefaultsButKeepsAspect(t *testing.T) {
	cam := newTestCamera()
	ctrl := cam.Controller()

	cam.Update(800, 600)
	cam.SetProjection(Orthographic)
	cam.SetFov(90)
	cam.SetClippingPlanes(1, 50)
	cam.SetOrthoSize(3)
	ctrl.Orbit(100, 50)
	cam.Zoom(2)

	cam.Reset()

	assert.Equal(t, Perspective, cam.Projection())
	assert.InDelta(t, 45.0, cam.Fov(), floatTolerance)
	assert.InDelta(t, 0.1, cam.Near(), floatTolerance)
	assert.InDelta(t, 1000.0, cam.Far(), floatTolerance)
	assert.InDelta(t, 10.0, cam.OrthoSize(), floatTolerance)
	assert.InDelta(t, 5.0, ctrl.OrbitDistance(), floatTolerance)
	// Aspect tracks the viewport, not the defaults.
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), floatTolerance)

	// A second reset changes nothing.
	cam.Reset()
	assert.InDelta(t, 45.0, cam.Fov(), floatTolerance)
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), floatTolerance)
}

func TestFitToBoundsSetsOrthoSizeToLargestExtent(t *testing.T) {
	cam := newTestCamera()
	ctrl := cam.Controller()

	cam.FitToBounds(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	assert.InDelta(t, 2.0, cam.OrthoSize(), floatTolerance)
	assert.InDelta(t, 4.0, ctrl.OrbitDistance(), floatTolerance)
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 0}, ctrl.Target())
}

func TestCameraWithoutControllerIsSafe(t *testing.T) {
	cam := NewCamera()

	assert.Nil(t, cam.Controller())
	cam.Zoom(1)
	cam.Reset()
	cam.FitToBounds(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	cam.Update(640, 480)

	// View stays at identity until a controller is attached.
	assertMat4InDelta(t, mgl32.Ident4(), cam.ViewMatrix())
}

func TestMatricesRefreshAfterControllerMutation(t *testing.T) {
	cam := newTestCamera()
	ctrl := cam.Controller()

	before := cam.ViewMatrix()
	ctrl.Orbit(100, 0)
	cam.Update(800, 600)

	assert.NotEqual(t, before, cam.ViewMatrix())
	expected := mgl32.LookAtV(ctrl.Position(), ctrl.Target(), ctrl.Up())
	assertMat4InDelta(t, expected, cam.ViewMatrix())
}
