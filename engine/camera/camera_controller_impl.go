package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/common"
)

// Pointer-delta sensitivities for the orbit operations, in world units or
// radians per pixel of pointer travel.
const (
	orbitSensitivity = 0.01
	panSensitivity   = 0.01
	dollySensitivity = 0.005

	// maxElevation stops the orbit one degree short of the poles so the view
	// direction never becomes parallel to the up vector.
	maxElevation = 89.0 * math.Pi / 180.0

	// degenerateEpsilon is the squared-length threshold below which an
	// eye-target offset is considered degenerate.
	degenerateEpsilon = 1e-8
)

// Default orbit state, restored by Reset.
const (
	defaultDistance    = 5.0
	defaultAzimuth     = float32(math.Pi / 2.0)
	defaultElevation   = 0.0
	defaultMinDistance = 0.1
	defaultMaxDistance = 1000.0
	defaultZoomSpeed   = 0.1
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	distance  float32
	azimuth   float32
	elevation float32

	minDistance float32
	maxDistance float32

	panSpeed  mgl32.Vec3
	zoomSpeed float32
}

var _ OrbitController = &cameraControllerImpl{}

// NewCameraController creates a new OrbitController with default orbit state:
// target at the origin, up +Y, distance 5, azimuth pi/2, elevation 0, which
// places the eye at (0, 0, 5) looking down the -Z axis.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewCameraController(options ...CameraControllerOption) OrbitController {
	c := &cameraControllerImpl{
		mu:          &sync.Mutex{},
		target:      mgl32.Vec3{0, 0, 0},
		up:          mgl32.Vec3{0, 1, 0},
		distance:    defaultDistance,
		azimuth:     defaultAzimuth,
		elevation:   defaultElevation,
		minDistance: defaultMinDistance,
		maxDistance: defaultMaxDistance,
		panSpeed:    mgl32.Vec3{1, 1, 1},
		zoomSpeed:   defaultZoomSpeed,
	}
	for _, option := range options {
		option(c)
	}
	c.distance = common.Clamp(c.distance, c.minDistance, c.maxDistance)
	c.elevation = common.Clamp(c.elevation, -maxElevation, maxElevation)
	c.updatePosition()
	return c
}

func (c *cameraControllerImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraControllerImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset := position.Sub(c.target)
	if offset.LenSqr() < degenerateEpsilon {
		return
	}
	c.position = position
	c.distance = offset.Len()
	dir := offset.Mul(1.0 / c.distance)
	c.elevation = float32(math.Asin(float64(dir.Y())))
	c.azimuth = float32(math.Atan2(float64(dir.Z()), float64(dir.X())))
}

func (c *cameraControllerImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	c.updatePosition()
}

func (c *cameraControllerImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraControllerImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraControllerImpl) OrbitDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *cameraControllerImpl) SetOrbitDistance(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(distance, c.minDistance, c.maxDistance)
	c.updatePosition()
}

func (c *cameraControllerImpl) DistanceBounds() (float32, float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minDistance, c.maxDistance
}

func (c *cameraControllerImpl) Azimuth() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.azimuth
}

func (c *cameraControllerImpl) Elevation() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elevation
}

func (c *cameraControllerImpl) SetOrbitAngles(azimuth, elevation float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.azimuth = azimuth
	c.elevation = common.Clamp(elevation, -maxElevation, maxElevation)
	c.updatePosition()
}

func (c *cameraControllerImpl) Orbit(deltaX, deltaY float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.azimuth += deltaX * orbitSensitivity
	c.elevation = common.Clamp(
		c.elevation+deltaY*orbitSensitivity,
		-maxElevation, maxElevation,
	)
	c.updatePosition()
}

func (c *cameraControllerImpl) Pan(deltaX, deltaY float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset := c.panOffset(deltaX, deltaY)
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
}

func (c *cameraControllerImpl) MoveAlongAxes(deltaX, deltaY float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	offset := c.panOffset(deltaX, deltaY)
	offset = offset.Add(c.forward().Mul(deltaY * c.panSpeed.Z() * dollySensitivity))
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
}

func (c *cameraControllerImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(
		c.distance*(1.0-delta*c.zoomSpeed),
		c.minDistance, c.maxDistance,
	)
	c.updatePosition()
}

func (c *cameraControllerImpl) ZoomSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomSpeed
}

func (c *cameraControllerImpl) PanSpeed() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panSpeed
}

func (c *cameraControllerImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward()
}

func (c *cameraControllerImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right()
}

func (c *cameraControllerImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = mgl32.Vec3{0, 0, 0}
	c.up = mgl32.Vec3{0, 1, 0}
	c.distance = defaultDistance
	c.azimuth = defaultAzimuth
	c.elevation = defaultElevation
	c.updatePosition()
}

func (c *cameraControllerImpl) FitToBounds(minBounds, maxBounds mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	extent := maxBounds.Sub(minBounds)
	c.target = minBounds.Add(extent.Mul(0.5))
	c.distance = common.Clamp(
		2.0*maxComponent(extent),
		c.minDistance, c.maxDistance,
	)
	c.updatePosition()
}

// updatePosition derives the cartesian eye position from the spherical orbit
// state. Caller must hold the mutex.
func (c *cameraControllerImpl) updatePosition() {
	sinAz, cosAz := math.Sincos(float64(c.azimuth))
	sinEl, cosEl := math.Sincos(float64(c.elevation))
	c.position = c.target.Add(mgl32.Vec3{
		c.distance * float32(cosEl*cosAz),
		c.distance * float32(sinEl),
		c.distance * float32(cosEl*sinAz),
	})
}

// forward returns the unit vector from the eye toward the target, or the
// zero vector for a degenerate offset. Caller must hold the mutex.
func (c *cameraControllerImpl) forward() mgl32.Vec3 {
	dir := c.target.Sub(c.position)
	if dir.LenSqr() < degenerateEpsilon {
		return mgl32.Vec3{}
	}
	return dir.Normalize()
}

// right returns the unit vector perpendicular to forward and up, or the zero
// vector when they are parallel. Caller must hold the mutex.
func (c *cameraControllerImpl) right() mgl32.Vec3 {
	r := c.forward().Cross(c.up)
	if r.LenSqr() < degenerateEpsilon {
		return mgl32.Vec3{}
	}
	return r.Normalize()
}

// panOffset computes the world-space translation for a pointer delta along
// the camera's right and up axes. Caller must hold the mutex.
func (c *cameraControllerImpl) panOffset(deltaX, deltaY float32) mgl32.Vec3 {
	offset := c.right().Mul(deltaX).Add(c.up.Mul(deltaY))
	return offset.Mul(c.panSpeed.X() * panSensitivity)
}
