package camera

// CameraBuilderOption is a function that modifies the camera configuration
// during construction.
type CameraBuilderOption func(*cameraImpl)

// WithProjection sets the initial projection mode.
//
// Parameters:
//   - mode: Perspective or Orthographic
//
// Returns:
//   - CameraBuilderOption: the option function
func WithProjection(mode ProjectionMode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = mode
	}
}

// WithFov sets the initial vertical field of view in degrees.
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: the option function
func WithFov(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovDegrees = degrees
	}
}

// WithAspect sets the initial aspect ratio. The host's first Update call
// overrides this with the actual viewport ratio.
//
// Parameters:
//   - aspect: the aspect ratio (width / height)
//
// Returns:
//   - CameraBuilderOption: the option function
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClippingPlanes sets the initial near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: the option function
func WithClippingPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithOrthoSize sets the initial orthographic view extent.
//
// Parameters:
//   - size: the orthographic view size
//
// Returns:
//   - CameraBuilderOption: the option function
func WithOrthoSize(size float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orthoSize = size
	}
}

// WithController attaches an OrbitController at construction time.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: the option function
func WithController(ctrl OrbitController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
