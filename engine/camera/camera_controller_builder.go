package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a function that modifies the controller
// configuration during construction.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the initial orbit target.
//
// Parameters:
//   - target: the point to orbit around
//
// Returns:
//   - CameraControllerOption: the option function
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.target = target
	}
}

// WithUp sets the initial up direction.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraControllerOption: the option function
func WithUp(up mgl32.Vec3) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.up = up
	}
}

// WithOrbitDistance sets the initial orbit distance. Values outside the
// distance bounds are clamped during construction.
//
// Parameters:
//   - distance: the orbit distance
//
// Returns:
//   - CameraControllerOption: the option function
func WithOrbitDistance(distance float32) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.distance = distance
	}
}

// WithOrbitAngles sets the initial azimuth and elevation in radians.
// Elevation is clamped short of the poles during construction.
//
// Parameters:
//   - azimuth: horizontal angle in radians
//   - elevation: vertical angle in radians
//
// Returns:
//   - CameraControllerOption: the option function
func WithOrbitAngles(azimuth, elevation float32) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.azimuth = azimuth
		c.elevation = elevation
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance.
//
// Parameters:
//   - min: minimum distance
//   - max: maximum distance
//
// Returns:
//   - CameraControllerOption: the option function
func WithDistanceBounds(min, max float32) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}

// WithPanSpeed sets the per-axis pan speed multipliers.
//
// Parameters:
//   - speed: pan speed for the right, up, and forward axes
//
// Returns:
//   - CameraControllerOption: the option function
func WithPanSpeed(speed mgl32.Vec3) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.panSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: the zoom speed
//
// Returns:
//   - CameraControllerOption: the option function
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(c *cameraControllerImpl) {
		c.zoomSpeed = speed
	}
}
