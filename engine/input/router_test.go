package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/camera"
)

const floatTolerance = 1e-5

func newTestRouter(t *testing.T, options ...RouterOption) (Router, camera.Camera, camera.OrbitController) {
	t.Helper()
	ctrl := camera.NewCameraController()
	cam := camera.NewCamera(camera.WithController(ctrl))
	r := NewRouter(cam, options...)
	require.NotNil(t, r)
	return r, cam, ctrl
}

func TestOrbitButtonDrivesOrbitWithFlippedY(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	startAzimuth := ctrl.Azimuth()

	r.HandleMouseButton(common.MouseButtonLeft, common.ActionPress, 100, 100)
	assert.Equal(t, GestureOrbit, r.Gesture())

	// Pointer moves right and up on screen; both orbit deltas are positive.
	r.HandleMouseMove(110, 90)

	assert.InDelta(t, float64(startAzimuth)+0.1, float64(ctrl.Azimuth()), floatTolerance)
	assert.InDelta(t, 0.1, ctrl.Elevation(), floatTolerance)

	dx, dy := r.PointerDelta()
	assert.InDelta(t, 10.0, dx, floatTolerance)
	assert.InDelta(t, 10.0, dy, floatTolerance)
}

func TestPanButtonDrivesPan(t *testing.T) {
	r, _, ctrl := newTestRouter(t)

	r.HandleMouseButton(common.MouseButtonMiddle, common.ActionPress, 0, 0)
	assert.Equal(t, GesturePan, r.Gesture())

	r.HandleMouseMove(10, -5)

	// Target and eye translate together; orbit state is unchanged.
	assert.InDelta(t, 0.1, ctrl.Target().X(), floatTolerance)
	assert.InDelta(t, 0.05, ctrl.Target().Y(), floatTolerance)
	assert.InDelta(t, float64(math.Pi/2), float64(ctrl.Azimuth()), floatTolerance)
	assert.InDelta(t, 5.0, ctrl.OrbitDistance(), floatTolerance)
}

func TestModifierSwitchesOrbitToAxisMovement(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	startAzimuth := ctrl.Azimuth()

	r.HandleKey(common.KeyLeftControl, common.ActionPress)
	assert.True(t, r.ModifierHeld())

	r.HandleMouseButton(common.MouseButtonLeft, common.ActionPress, 0, 0)
	r.HandleMouseMove(0, -10)

	// Axis movement translates the target along the view direction without
	// touching the orbit angles. Exactly one operation fires per move.
	assert.InDelta(t, float64(startAzimuth), float64(ctrl.Azimuth()), floatTolerance)
	assert.InDelta(t, 0.0, ctrl.Elevation(), floatTolerance)
	assert.InDelta(t, -0.05, ctrl.Target().Z(), floatTolerance)

	r.HandleKey(common.KeyLeftControl, common.ActionRelease)
	assert.False(t, r.ModifierHeld())

	r.HandleMouseMove(0, -20)
	assert.InDelta(t, float64(startAzimuth), float64(ctrl.Azimuth()), floatTolerance)
	assert.InDelta(t, 0.1, ctrl.Elevation(), floatTolerance)
}

func TestZoomGestureDispatchesNothingOnMove(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	startTarget := ctrl.Target()
	startAzimuth := ctrl.Azimuth()

	r.HandleMouseButton(common.MouseButtonRight, common.ActionPress, 50, 50)
	assert.Equal(t, GestureZoom, r.Gesture())

	r.HandleMouseMove(150, 150)

	assert.Equal(t, startTarget, ctrl.Target())
	assert.InDelta(t, float64(startAzimuth), float64(ctrl.Azimuth()), floatTolerance)
	assert.InDelta(t, 5.0, ctrl.OrbitDistance(), floatTolerance)

	// Position tracking still works while the zoom button is held.
	x, y := r.LastPointerPosition()
	assert.InDelta(t, 150.0, x, floatTolerance)
	assert.InDelta(t, 150.0, y, floatTolerance)
}

func TestMismatchedReleaseKeepsGesture(t *testing.T) {
	r, _, _ := newTestRouter(t)

	r.HandleMouseButton(common.MouseButtonLeft, common.ActionPress, 0, 0)
	r.HandleMouseButton(common.MouseButtonMiddle, common.ActionRelease, 0, 0)
	assert.Equal(t, GestureOrbit, r.Gesture())

	r.HandleMouseButton(common.MouseButtonLeft, common.ActionRelease, 0, 0)
	assert.Equal(t, GestureIdle, r.Gesture())
}

func TestPressReplacesActiveGesture(t *testing.T) {
	r, _, _ := newTestRouter(t)

	r.HandleMouseButton(common.MouseButtonLeft, common.ActionPress, 0, 0)
	r.HandleMouseButton(common.MouseButtonMiddle, common.ActionPress, 30, 40)
	assert.Equal(t, GesturePan, r.Gesture())

	// The new press re-anchors the pointer reference.
	x, y := r.LastPointerPosition()
	assert.InDelta(t, 30.0, x, floatTolerance)
	assert.InDelta(t, 40.0, y, floatTolerance)

	// Releasing the replaced button does not end the pan.
	r.HandleMouseButton(common.MouseButtonLeft, common.ActionRelease, 0, 0)
	assert.Equal(t, GesturePan, r.Gesture())
}

func TestIdleMoveOnlyTracksPosition(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	startPosition := ctrl.Position()

	r.HandleMouseMove(42, 24)

	assert.Equal(t, startPosition, ctrl.Position())
	x, y := r.LastPointerPosition()
	assert.InDelta(t, 42.0, x, floatTolerance)
	assert.InDelta(t, 24.0, y, floatTolerance)
}

func TestScrollZoomsRegardlessOfGesture(t *testing.T) {
	r, _, ctrl := newTestRouter(t)

	r.HandleScroll(0, 2)
	assert.InDelta(t, 4.0, ctrl.OrbitDistance(), floatTolerance)

	// Horizontal scroll is ignored.
	r.HandleScroll(5, 0)
	assert.InDelta(t, 4.0, ctrl.OrbitDistance(), floatTolerance)
}

func TestResetKeyResetsCamera(t *testing.T) {
	r, cam, ctrl := newTestRouter(t)

	ctrl.Orbit(100, 50)
	cam.Zoom(2)
	r.HandleKey(common.KeyR, common.ActionPress)

	assert.InDelta(t, 5.0, ctrl.OrbitDistance(), floatTolerance)
	assert.InDelta(t, float64(math.Pi/2), float64(ctrl.Azimuth()), floatTolerance)
}

func TestResetKeyClearsHeldModifier(t *testing.T) {
	r, _, ctrl := newTestRouter(t)

	r.HandleKey(common.KeyLeftControl, common.ActionPress)
	require.True(t, r.ModifierHeld())

	// Reset without ever seeing the modifier release, as happens when the
	// key-up event is lost to another window grabbing focus.
	r.HandleKey(common.KeyR, common.ActionPress)
	assert.False(t, r.ModifierHeld())

	// Subsequent orbit drags must orbit again rather than move along axes.
	r.HandleMouseButton(common.MouseButtonLeft, common.ActionPress, 100, 100)
	r.HandleMouseMove(100, 90)
	assert.InDelta(t, 0.1, float64(ctrl.Elevation()), floatTolerance)
	assert.InDelta(t, 0.0, ctrl.Target().Y(), floatTolerance)
}

func TestProjectionToggleKeyActsOnPressOnly(t *testing.T) {
	r, cam, _ := newTestRouter(t)

	r.HandleKey(common.KeyP, common.ActionPress)
	assert.Equal(t, camera.Orthographic, cam.Projection())

	r.HandleKey(common.KeyP, common.ActionRelease)
	assert.Equal(t, camera.Orthographic, cam.Projection())

	r.HandleKey(common.KeyP, common.ActionPress)
	assert.Equal(t, camera.Perspective, cam.Projection())
}

func TestCustomBindings(t *testing.T) {
	r, cam, _ := newTestRouter(t,
		WithButtonBindings(common.MouseButtonRight, common.MouseButtonLeft, common.MouseButtonMiddle),
		WithProjectionToggleKey(common.KeyO),
		WithModifierKeys(common.KeyLeftShift),
	)

	r.HandleMouseButton(common.MouseButtonRight, common.ActionPress, 0, 0)
	assert.Equal(t, GestureOrbit, r.Gesture())
	r.HandleMouseButton(common.MouseButtonRight, common.ActionRelease, 0, 0)

	r.HandleKey(common.KeyO, common.ActionPress)
	assert.Equal(t, camera.Orthographic, cam.Projection())

	r.HandleKey(common.KeyLeftShift, common.ActionPress)
	assert.True(t, r.ModifierHeld())

	// Default modifiers no longer apply.
	r.HandleKey(common.KeyLeftControl, common.ActionPress)
	assert.True(t, r.ModifierHeld())
	r.HandleKey(common.KeyLeftShift, common.ActionRelease)
	assert.False(t, r.ModifierHeld())
}
