package input

import "github.com/vantage3d/vantage/common"

// RouterOption is a function that modifies the router configuration during
// construction.
type RouterOption func(*routerImpl)

// WithButtonBindings sets which mouse buttons activate the orbit, pan, and
// zoom gestures.
//
// Parameters:
//   - orbit: button that activates the orbit gesture
//   - pan: button that activates the pan gesture
//   - zoom: button that activates the zoom gesture
//
// Returns:
//   - RouterOption: the option function
func WithButtonBindings(orbit, pan, zoom common.MouseButton) RouterOption {
	return func(r *routerImpl) {
		r.orbitButton = orbit
		r.panButton = pan
		r.zoomButton = zoom
	}
}

// WithResetKey sets the key that resets the camera.
//
// Parameters:
//   - keyCode: the key code
//
// Returns:
//   - RouterOption: the option function
func WithResetKey(keyCode uint32) RouterOption {
	return func(r *routerImpl) {
		r.resetKey = keyCode
	}
}

// WithProjectionToggleKey sets the key that toggles the projection mode.
//
// Parameters:
//   - keyCode: the key code
//
// Returns:
//   - RouterOption: the option function
func WithProjectionToggleKey(keyCode uint32) RouterOption {
	return func(r *routerImpl) {
		r.toggleKey = keyCode
	}
}

// WithModifierKeys sets the keys treated as the gesture modifier. Holding any
// of them switches orbit motion to axis movement.
//
// Parameters:
//   - keyCodes: the modifier key codes
//
// Returns:
//   - RouterOption: the option function
func WithModifierKeys(keyCodes ...uint32) RouterOption {
	return func(r *routerImpl) {
		r.modifierKeys = keyCodes
	}
}
