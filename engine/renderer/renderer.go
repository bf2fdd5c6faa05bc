package renderer

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           [4]float32

	gridHalfExtent int
	gridSpacing    float32
	axisLength     float32
}

// Renderer defines the interface for the rendering system.
//
// The renderer draws a fixed navigation scene (a ground grid plus world axes)
// from the viewpoint described by a camera's view-projection matrix. The host
// pushes the matrix once per frame via UpdateCamera, then calls RenderFrame.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// UpdateCamera uploads the camera's combined view-projection matrix to the
	// GPU uniform buffer. Call once per frame before RenderFrame.
	//
	// Parameters:
	//   - viewProjection: the combined Projection * View matrix
	UpdateCamera(viewProjection mgl32.Mat4)

	// RenderFrame acquires the next swapchain texture, encodes the scene draw
	// commands, submits them to the GPU queue, and presents the frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	RenderFrame() error

	// Release frees the GPU resources held by the renderer. The renderer must
	// not be used after Release.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type.
// The rendering surface is created from the window's platform surface descriptor,
// and the grid and axis geometry is uploaded to the GPU immediately.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:             &sync.Mutex{},
		backendType:    backendType,
		clearColor:     [4]float32{0.1, 0.1, 0.1, 1.0},
		gridHalfExtent: 10,
		gridSpacing:    1.0,
		axisLength:     5.0,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())

	vertices := buildGridVertices(r.gridHalfExtent, r.gridSpacing)
	vertices = append(vertices, buildAxisVertices(r.axisLength)...)
	if err := r.backend.InitSceneGeometry(vertices); err != nil {
		panic(err)
	}

	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) UpdateCamera(viewProjection mgl32.Mat4) {
	r.backend.UpdateCamera(viewProjection)
}

func (r *renderer) RenderFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.RenderFrame()
}

func (r *renderer) Release() {
	r.backend.Release()
}

// Line colors for the navigation scene. The grid is neutral gray; the world
// axes use the conventional X=red, Y=green, Z=blue mapping.
var (
	gridColor  = [3]float32{0.35, 0.35, 0.35}
	xAxisColor = [3]float32{0.8, 0.2, 0.2}
	yAxisColor = [3]float32{0.2, 0.8, 0.2}
	zAxisColor = [3]float32{0.2, 0.2, 0.8}
)

// buildGridVertices generates line-list vertices for a square ground grid on
// the y=0 plane, centered on the origin.
//
// Parameters:
//   - halfExtent: number of grid cells from the origin to each edge
//   - spacing: world-space distance between grid lines
//
// Returns:
//   - []lineVertex: vertex pairs for a LineList draw
func buildGridVertices(halfExtent int, spacing float32) []lineVertex {
	extent := float32(halfExtent) * spacing
	vertices := make([]lineVertex, 0, (2*halfExtent+1)*4)

	for i := -halfExtent; i <= halfExtent; i++ {
		offset := float32(i) * spacing
		// Line parallel to the X axis.
		vertices = append(vertices,
			lineVertex{Position: [3]float32{-extent, 0, offset}, Color: gridColor},
			lineVertex{Position: [3]float32{extent, 0, offset}, Color: gridColor},
		)
		// Line parallel to the Z axis.
		vertices = append(vertices,
			lineVertex{Position: [3]float32{offset, 0, -extent}, Color: gridColor},
			lineVertex{Position: [3]float32{offset, 0, extent}, Color: gridColor},
		)
	}

	return vertices
}

// buildAxisVertices generates line-list vertices for the three world axes
// extending from the origin in the positive direction.
//
// Parameters:
//   - length: world-space length of each axis line
//
// Returns:
//   - []lineVertex: vertex pairs for a LineList draw
func buildAxisVertices(length float32) []lineVertex {
	return []lineVertex{
		{Position: [3]float32{0, 0, 0}, Color: xAxisColor},
		{Position: [3]float32{length, 0, 0}, Color: xAxisColor},
		{Position: [3]float32{0, 0, 0}, Color: yAxisColor},
		{Position: [3]float32{0, length, 0}, Color: yAxisColor},
		{Position: [3]float32{0, 0, 0}, Color: zAxisColor},
		{Position: [3]float32{0, 0, length}, Color: zAxisColor},
	}
}
