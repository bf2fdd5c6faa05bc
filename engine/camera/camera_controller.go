package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitController defines the interface for orbit-style camera navigation.
// The controller maintains the eye position in spherical coordinates
// (distance, azimuth, elevation) around a target point, keeping the cartesian
// position and spherical state consistent after every operation. All angles
// are in radians; the azimuth is measured in the horizontal plane from the +X
// axis toward +Z, the elevation from the horizontal plane toward +Y.
type OrbitController interface {
	// Position returns the current eye position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// SetPosition places the eye at an explicit world-space position and
	// re-derives the spherical state (distance, azimuth, elevation) so that
	// subsequent orbit operations continue smoothly from the new viewpoint.
	// The target is unchanged. If the position coincides with the target the
	// call is ignored, since no orbit state can be derived from a degenerate
	// offset.
	//
	// Parameters:
	//   - position: the new eye position
	SetPosition(position mgl32.Vec3)

	// Target returns the point the camera orbits around and looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the target point
	Target() mgl32.Vec3

	// SetTarget moves the orbit center. Distance and angles are preserved;
	// the eye position is re-derived relative to the new target.
	//
	// Parameters:
	//   - target: the new target point
	SetTarget(target mgl32.Vec3)

	// Up returns the camera's up direction.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's up direction.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// OrbitDistance returns the current distance from the eye to the target.
	//
	// Returns:
	//   - float32: the orbit distance
	OrbitDistance() float32

	// SetOrbitDistance sets the orbit distance, clamped to the distance
	// bounds, and re-derives the eye position.
	//
	// Parameters:
	//   - distance: the requested orbit distance
	SetOrbitDistance(distance float32)

	// DistanceBounds returns the minimum and maximum allowed orbit distance.
	//
	// Returns:
	//   - float32: minimum distance
	//   - float32: maximum distance
	DistanceBounds() (float32, float32)

	// Azimuth returns the horizontal orbit angle in radians.
	//
	// Returns:
	//   - float32: the azimuth angle
	Azimuth() float32

	// Elevation returns the vertical orbit angle in radians.
	//
	// Returns:
	//   - float32: the elevation angle
	Elevation() float32

	// SetOrbitAngles sets the azimuth and elevation directly (radians).
	// Elevation is clamped short of the poles; the eye position is
	// re-derived.
	//
	// Parameters:
	//   - azimuth: horizontal angle in radians
	//   - elevation: vertical angle in radians
	SetOrbitAngles(azimuth, elevation float32)

	// Orbit rotates the eye around the target by a pointer delta. Horizontal
	// motion changes the azimuth, vertical motion the elevation (clamped
	// short of the poles so the up vector never degenerates). Distance and
	// target are unchanged.
	//
	// Parameters:
	//   - deltaX: horizontal pointer delta in pixels
	//   - deltaY: vertical pointer delta in pixels
	Orbit(deltaX, deltaY float32)

	// Pan translates the eye and target together along the camera's right
	// and up axes, preserving distance and orbit angles.
	//
	// Parameters:
	//   - deltaX: horizontal pointer delta in pixels
	//   - deltaY: vertical pointer delta in pixels
	Pan(deltaX, deltaY float32)

	// MoveAlongAxes translates like Pan and additionally moves the eye and
	// target along the viewing direction for the vertical delta, giving a
	// dolly-style translation.
	//
	// Parameters:
	//   - deltaX: horizontal pointer delta in pixels
	//   - deltaY: vertical pointer delta in pixels
	MoveAlongAxes(deltaX, deltaY float32)

	// Zoom scales the orbit distance multiplicatively by the configured zoom
	// speed, clamped to the distance bounds. Positive deltas zoom in.
	//
	// Parameters:
	//   - delta: zoom amount, typically a scroll offset
	Zoom(delta float32)

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: the zoom speed
	ZoomSpeed() float32

	// PanSpeed returns the per-axis pan speed multipliers.
	//
	// Returns:
	//   - mgl32.Vec3: pan speed for the right, up, and forward axes
	PanSpeed() mgl32.Vec3

	// Forward returns the unit vector from the eye toward the target, or the
	// zero vector when the two coincide.
	//
	// Returns:
	//   - mgl32.Vec3: the forward direction
	Forward() mgl32.Vec3

	// Right returns the unit vector perpendicular to forward and up, or the
	// zero vector when forward and up are parallel.
	//
	// Returns:
	//   - mgl32.Vec3: the right direction
	Right() mgl32.Vec3

	// Reset restores the orbit state (target, up, distance, angles) to the
	// construction-time defaults. Speed settings and distance bounds are
	// preserved.
	Reset()

	// FitToBounds frames an axis-aligned bounding box by moving the target
	// to the box center and setting the orbit distance to twice the largest
	// box extent, clamped to the distance bounds. Orbit angles are
	// preserved so the viewing direction does not jump.
	//
	// Parameters:
	//   - minBounds: minimum corner of the box
	//   - maxBounds: maximum corner of the box
	FitToBounds(minBounds, maxBounds mgl32.Vec3)
}
