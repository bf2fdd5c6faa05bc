// Package input translates raw pointer and keyboard events into camera
// navigation operations. The Router tracks which gesture (orbit, pan, zoom)
// is active from mouse button state and dispatches pointer motion to the
// matching camera operation.
package input

import (
	"sync"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/camera"
)

// Gesture identifies the navigation gesture currently driven by the pointer.
type Gesture int

const (
	// GestureIdle means no navigation button is held; pointer motion only
	// updates the tracked position.
	GestureIdle Gesture = iota

	// GestureOrbit rotates the camera around its target while the pointer
	// moves.
	GestureOrbit

	// GesturePan translates the camera and target together while the pointer
	// moves.
	GesturePan

	// GestureZoom is advisory: the zoom button is held, but zooming itself is
	// driven by scroll events, so pointer motion dispatches nothing.
	GestureZoom
)

// Router defines the interface for the camera input state machine. Exactly
// one gesture is active at a time; a button press while another gesture is in
// progress replaces it, and releasing a button only ends the gesture it
// started.
type Router interface {
	// HandleMouseButton processes a mouse button press or release at the
	// given cursor position. A press activates the gesture bound to the
	// button and captures the position as the motion reference; a release
	// ends the gesture only if it is the one currently active.
	//
	// Parameters:
	//   - button: the mouse button
	//   - action: press or release
	//   - x: cursor x position in pixels
	//   - y: cursor y position in pixels
	HandleMouseButton(button common.MouseButton, action common.Action, x, y float32)

	// HandleMouseMove processes pointer motion. The delta from the last
	// tracked position is dispatched to at most one camera operation
	// depending on the active gesture, with the vertical axis flipped so
	// upward pointer motion yields a positive delta. The tracked position is
	// updated regardless of the gesture.
	//
	// Parameters:
	//   - x: cursor x position in pixels
	//   - y: cursor y position in pixels
	HandleMouseMove(x, y float32)

	// HandleScroll processes scroll wheel input. The vertical offset zooms
	// the camera regardless of the active gesture; the horizontal offset is
	// ignored.
	//
	// Parameters:
	//   - xOffset: horizontal scroll offset
	//   - yOffset: vertical scroll offset
	HandleScroll(xOffset, yOffset float32)

	// HandleKey processes a keyboard event. Modifier keys update the held
	// state on both press and release; the reset and projection-toggle keys
	// act on press only.
	//
	// Parameters:
	//   - keyCode: the key code
	//   - action: press or release
	HandleKey(keyCode uint32, action common.Action)

	// Gesture returns the currently active gesture.
	//
	// Returns:
	//   - Gesture: the active gesture
	Gesture() Gesture

	// ModifierHeld reports whether a modifier key is currently held.
	//
	// Returns:
	//   - bool: true if a modifier key is held
	ModifierHeld() bool

	// LastPointerPosition returns the last tracked cursor position.
	//
	// Returns:
	//   - float32: cursor x position
	//   - float32: cursor y position
	LastPointerPosition() (float32, float32)

	// PointerDelta returns the delta produced by the most recent
	// HandleMouseMove call, with the vertical axis already flipped.
	//
	// Returns:
	//   - float32: horizontal delta
	//   - float32: vertical delta
	PointerDelta() (float32, float32)
}

type routerImpl struct {
	mu  *sync.Mutex
	cam camera.Camera

	gesture      Gesture
	modifierHeld bool

	lastX, lastY   float32
	deltaX, deltaY float32

	orbitButton common.MouseButton
	panButton   common.MouseButton
	zoomButton  common.MouseButton

	resetKey     uint32
	toggleKey    uint32
	modifierKeys []uint32
}

var _ Router = &routerImpl{}

// NewRouter creates a Router bound to a camera. Default bindings: left button
// orbits, middle button pans, right button marks the zoom gesture; Ctrl is the
// modifier switching orbit motion to axis movement; R resets the camera and P
// toggles the projection mode.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the bindings
//
// Returns:
//   - Router: the newly created router
func NewRouter(cam camera.Camera, options ...RouterOption) Router {
	r := &routerImpl{
		mu:          &sync.Mutex{},
		cam:         cam,
		gesture:     GestureIdle,
		orbitButton: common.MouseButtonLeft,
		panButton:   common.MouseButtonMiddle,
		zoomButton:  common.MouseButtonRight,
		resetKey:    common.KeyR,
		toggleKey:   common.KeyP,
		modifierKeys: []uint32{
			common.KeyLeftControl,
			common.KeyRightControl,
		},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *routerImpl) HandleMouseButton(button common.MouseButton, action common.Action, x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if action == common.ActionPress {
		switch button {
		case r.orbitButton:
			r.gesture = GestureOrbit
		case r.panButton:
			r.gesture = GesturePan
		case r.zoomButton:
			r.gesture = GestureZoom
		default:
			return
		}
		r.lastX = x
		r.lastY = y
		return
	}

	// Releasing a button ends only the gesture it started.
	switch {
	case button == r.orbitButton && r.gesture == GestureOrbit:
		r.gesture = GestureIdle
	case button == r.panButton && r.gesture == GesturePan:
		r.gesture = GestureIdle
	case button == r.zoomButton && r.gesture == GestureZoom:
		r.gesture = GestureIdle
	}
}

func (r *routerImpl) HandleMouseMove(x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Screen y grows downward; flip so upward motion is positive.
	r.deltaX = x - r.lastX
	r.deltaY = r.lastY - y
	r.lastX = x
	r.lastY = y

	ctrl := r.controller()
	if ctrl == nil {
		return
	}

	switch r.gesture {
	case GestureOrbit:
		if r.modifierHeld {
			ctrl.MoveAlongAxes(r.deltaX, r.deltaY)
		} else {
			ctrl.Orbit(r.deltaX, r.deltaY)
		}
	case GesturePan:
		ctrl.Pan(r.deltaX, r.deltaY)
	}
}

func (r *routerImpl) HandleScroll(_, yOffset float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cam != nil {
		r.cam.Zoom(yOffset)
	}
}

func (r *routerImpl) HandleKey(keyCode uint32, action common.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, modifier := range r.modifierKeys {
		if keyCode == modifier {
			r.modifierHeld = action == common.ActionPress
			return
		}
	}

	if action != common.ActionPress || r.cam == nil {
		return
	}

	switch keyCode {
	case r.resetKey:
		// Reset also drops any held modifier so a missed release event
		// cannot leave orbit drags stuck in axis-move mode.
		r.modifierHeld = false
		r.cam.Reset()
	case r.toggleKey:
		r.cam.ToggleProjection()
	}
}

func (r *routerImpl) Gesture() Gesture {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gesture
}

func (r *routerImpl) ModifierHeld() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modifierHeld
}

func (r *routerImpl) LastPointerPosition() (float32, float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastX, r.lastY
}

func (r *routerImpl) PointerDelta() (float32, float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deltaX, r.deltaY
}

// controller returns the camera's attached orbit controller, or nil.
// Caller must hold the mutex.
func (r *routerImpl) controller() camera.OrbitController {
	if r.cam == nil {
		return nil
	}
	return r.cam.Controller()
}
