package renderer

// RendererBackendType identifies which GPU backend drives the viewer's Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU rendering backend. It is the only
	// backend the viewer ships.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting.
	// Frame rate is capped to the monitor refresh rate and tearing cannot
	// occur; this is the viewer default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents as soon as a frame is ready. Tearing is
	// possible but input-to-photon latency is minimal.
	PresentModeUncapped
)

// MSAASampleCount is the multisample anti-aliasing sample count for the color
// attachment. WebGPU requires adapters to support 1 and 4; 8 and 16 depend on
// the adapter and surface format.
type MSAASampleCount uint32

const (
	// MSAAOff renders without multisampling (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x is 4-sample anti-aliasing, the viewer default. Grid and axis
	// lines alias badly without it.
	MSAA4x MSAASampleCount = 4

	// MSAA8x is 8-sample anti-aliasing. Adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x is 16-sample anti-aliasing. Adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is the backend surface the Renderer drives. It embeds the
// interface of the selected GPU API's implementation.
type RendererBackend interface {
	wgpuRendererBackend
}
