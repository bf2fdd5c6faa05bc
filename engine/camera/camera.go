package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/common"
)

// ProjectionMode selects how the camera projects the scene onto the viewport.
type ProjectionMode int

const (
	// Perspective projects with a symmetric vertical field of view; closer
	// objects appear larger.
	Perspective ProjectionMode = iota

	// Orthographic projects with a parallel frustum of fixed world-space
	// height; distance from the target does not change the silhouette.
	Orthographic
)

// Default projection parameters, restored by Reset.
const (
	defaultFov        = 45.0
	defaultAspect     = 16.0 / 9.0
	defaultNear       = 0.1
	defaultFar        = 1000.0
	defaultOrthoSize  = 10.0
	defaultZoomFactor = 1.0

	// minOrthoSize is the floor applied to the orthographic extent during
	// zoom, preventing a degenerate (zero-height) projection frustum.
	minOrthoSize = 0.1
)

type cameraImpl struct {
	mu *sync.Mutex

	projection ProjectionMode

	fovDegrees float32
	aspect     float32
	near       float32
	far        float32
	orthoSize  float32
	zoomFactor float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller OrbitController
}

// Camera defines the interface for the viewer's navigation camera.
// The camera holds projection settings and computes view/projection matrices
// from an attached OrbitController. The host calls Update once per frame
// (pushing the viewport size) before reading the matrices; camera-side
// mutators also refresh the cached matrices immediately.
type Camera interface {
	// Projection returns the current projection mode.
	//
	// Returns:
	//   - ProjectionMode: Perspective or Orthographic
	Projection() ProjectionMode

	// SetProjection sets the projection mode. Takes effect on the next
	// matrix query.
	//
	// Parameters:
	//   - mode: Perspective or Orthographic
	SetProjection(mode ProjectionMode)

	// ToggleProjection flips between Perspective and Orthographic.
	ToggleProjection()

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// SetFov sets the vertical field of view for perspective projection.
	// The value is not validated; the caller is responsible for sane input.
	//
	// Parameters:
	//   - degrees: field of view in degrees
	SetFov(degrees float32)

	// OrthoSize returns the orthographic view extent (world-space height of
	// the projected volume).
	//
	// Returns:
	//   - float32: the orthographic view size
	OrthoSize() float32

	// SetOrthoSize sets the orthographic view extent.
	//
	// Parameters:
	//   - size: the orthographic view size
	SetOrthoSize(size float32)

	// ZoomFactor returns the current orthographic zoom factor.
	//
	// Returns:
	//   - float32: the zoom factor (1.0 = normal)
	ZoomFactor() float32

	// SetZoomFactor sets the zoom factor. In orthographic mode this rescales
	// the view extent to defaultOrthoSize / factor.
	//
	// Parameters:
	//   - factor: zoom factor (>1.0 = zoomed in, <1.0 = zoomed out)
	SetZoomFactor(factor float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetClippingPlanes sets both clipping plane distances. Values are not
	// validated; near must be > 0 and far > near for a usable projection.
	//
	// Parameters:
	//   - near: near plane distance
	//   - far: far plane distance
	SetClippingPlanes(near, far float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio directly.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Update recomputes the aspect ratio from the viewport size and refreshes
	// the cached matrices from controller state. When height is zero the
	// previous aspect ratio is retained (division-by-zero guard). Call once
	// per frame before reading the matrices.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Update(width, height int)

	// ViewMatrix returns the current 4x4 view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current 4x4 projection matrix for the
	// active projection mode.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined Projection * View matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum extracts the six view-frustum planes from the current
	// view-projection matrix, for culling and visibility queries.
	//
	// Returns:
	//   - common.Frustum: the extracted frustum
	Frustum() common.Frustum

	// Zoom applies a zoom step. In perspective mode the orbit distance is
	// scaled (and clamped to its bounds); in orthographic mode the view
	// extent is scaled instead and floored at a small positive epsilon,
	// since camera distance does not affect the orthographic silhouette.
	//
	// Parameters:
	//   - delta: zoom amount (positive = zoom in)
	Zoom(delta float32)

	// Reset restores projection settings and the attached controller's orbit
	// state to their construction-time defaults in one atomic operation.
	// The aspect ratio is left as-is: it is owned by the host's resize
	// notification and is re-pushed on the next Update.
	Reset()

	// FitToBounds frames an axis-aligned bounding box: the controller's
	// target moves to the box center, the orbit distance becomes twice the
	// largest box extent, and the orthographic size becomes the largest
	// extent.
	//
	// Parameters:
	//   - minBounds: minimum corner of the box
	//   - maxBounds: maximum corner of the box
	FitToBounds(minBounds, maxBounds mgl32.Vec3)

	// Controller returns the attached OrbitController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - OrbitController: the attached controller or nil
	Controller() OrbitController

	// SetController attaches an OrbitController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl OrbitController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// A controller must be attached via SetController or the WithController
// option before view matrices reflect an actual viewpoint.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		projection:           Perspective,
		fovDegrees:           defaultFov,
		aspect:               defaultAspect,
		near:                 defaultNear,
		far:                  defaultFar,
		orthoSize:            defaultOrthoSize,
		zoomFactor:           defaultZoomFactor,
		viewMatrix:           mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Projection() ProjectionMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) SetProjection(mode ProjectionMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = mode
	c.updateMatrices()
}

func (c *cameraImpl) ToggleProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projection == Perspective {
		c.projection = Orthographic
	} else {
		c.projection = Perspective
	}
	c.updateMatrices()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovDegrees
}

func (c *cameraImpl) SetFov(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fovDegrees = degrees
	c.updateMatrices()
}

func (c *cameraImpl) OrthoSize() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orthoSize
}

func (c *cameraImpl) SetOrthoSize(size float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orthoSize = size
	c.updateMatrices()
}

func (c *cameraImpl) ZoomFactor() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomFactor
}

func (c *cameraImpl) SetZoomFactor(factor float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoomFactor = factor
	if c.projection == Orthographic {
		c.orthoSize = defaultOrthoSize / factor
	}
	c.updateMatrices()
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetClippingPlanes(near, far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) Update(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height > 0 {
		c.aspect = float32(width) / float32(height)
	}
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustum(c.viewProjectionMatrix)
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	if c.projection == Perspective {
		c.controller.Zoom(delta)
	} else {
		c.orthoSize *= 1.0 - delta*c.controller.ZoomSpeed()
		if c.orthoSize < minOrthoSize {
			c.orthoSize = minOrthoSize
		}
	}
	c.updateMatrices()
}

func (c *cameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = Perspective
	c.fovDegrees = defaultFov
	c.near = defaultNear
	c.far = defaultFar
	c.orthoSize = defaultOrthoSize
	c.zoomFactor = defaultZoomFactor
	if c.controller != nil {
		c.controller.Reset()
	}
	c.updateMatrices()
}

func (c *cameraImpl) FitToBounds(minBounds, maxBounds mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller != nil {
		c.controller.FitToBounds(minBounds, maxBounds)
	}
	extent := maxBounds.Sub(minBounds)
	c.orthoSize = maxComponent(extent)
	c.updateMatrices()
}

func (c *cameraImpl) Controller() OrbitController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl OrbitController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices. Position, target, and up are read from the attached controller;
// the view matrix is left unchanged when no controller is attached.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller != nil {
		c.viewMatrix = mgl32.LookAtV(
			c.controller.Position(),
			c.controller.Target(),
			c.controller.Up(),
		)
	}

	if c.projection == Perspective {
		c.projectionMatrix = mgl32.Perspective(
			mgl32.DegToRad(c.fovDegrees), c.aspect, c.near, c.far,
		)
	} else {
		half := c.orthoSize * 0.5
		c.projectionMatrix = mgl32.Ortho(
			-half*c.aspect, half*c.aspect,
			-half, half,
			c.near, c.far,
		)
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// maxComponent returns the largest of the vector's three components.
func maxComponent(v mgl32.Vec3) float32 {
	m := v.X()
	if v.Y() > m {
		m = v.Y()
	}
	if v.Z() > m {
		m = v.Z()
	}
	return m
}
