package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFrustumContainsLookTarget(t *testing.T) {
	cam := newTestCamera()
	f := cam.Frustum()

	// The orbit target sits in the middle of the view volume.
	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, 0}))
}

func TestFrustumExcludesPointBehindCamera(t *testing.T) {
	cam := newTestCamera()
	f := cam.Frustum()

	// The eye is at (0, 0, 5) looking toward -Z; +Z beyond it is behind.
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, 10}))
}

func TestFrustumExcludesPointBeyondFarPlane(t *testing.T) {
	cam := newTestCamera()
	f := cam.Frustum()

	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -2000}))
}

func TestFrustumSphereIntersection(t *testing.T) {
	cam := newTestCamera()
	f := cam.Frustum()

	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1))
	// A sphere straddling a plane still intersects even when its center is outside.
	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 5.5}, 2))
	assert.False(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 2000}, 1))
}

func TestFrustumPlaneNormalsAreUnitLength(t *testing.T) {
	cam := newTestCamera()
	f := cam.Frustum()

	for i := range f.Planes {
		assert.InDelta(t, 1.0, f.Planes[i].Normal.Len(), floatTolerance)
	}
}

func TestFrustumTracksProjectionMode(t *testing.T) {
	cam := newTestCamera(WithProjection(Orthographic))
	f := cam.Frustum()

	// Default ortho volume is ±5 vertically around the view axis.
	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 4.9, 0}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 5.1, 0}))
}
