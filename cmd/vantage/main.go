package main

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine"
	"github.com/vantage3d/vantage/engine/camera"
	"github.com/vantage3d/vantage/engine/input"
	"github.com/vantage3d/vantage/engine/renderer"
	"github.com/vantage3d/vantage/engine/window"
)

// keyState tracks which navigation keys are held, for continuous keyboard
// panning driven by the engine tick loop.
type keyState struct {
	mu   sync.Mutex
	held map[uint32]bool
}

func (k *keyState) set(keyCode uint32, down bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[keyCode] = down
}

func (k *keyState) isHeld(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[keyCode]
}

// keyboardPanSpeed is the pointer-equivalent pan delta per second when a
// navigation key is held.
const keyboardPanSpeed = 200.0

func main() {
	log.Println("Vantage 3D viewer")
	log.Println("  Left mouse drag      orbit the camera around the target")
	log.Println("  Ctrl + left drag     move along camera axes")
	log.Println("  Middle mouse drag    pan the camera")
	log.Println("  Scroll wheel         zoom in and out")
	log.Println("  W / A / S / D        pan with the keyboard")
	log.Println("  Q / E                dolly back and forward")
	log.Println("  F                    frame the grid")
	log.Println("  R                    reset the camera")
	log.Println("  P                    toggle perspective / orthographic")
	log.Println("  Esc                  quit")

	win := window.NewWindow(
		window.WithTitle("Vantage"),
		window.WithWidth(1280),
		window.WithHeight(720),
	)

	controller := camera.NewCameraController(
		camera.WithTarget(mgl32.Vec3{0, 0, 0}),
		camera.WithOrbitDistance(8),
	)
	cam := camera.NewCamera(
		camera.WithController(controller),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	rend := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
		renderer.WithMSAA(renderer.MSAA4x),
		renderer.WithGrid(10, 1.0),
		renderer.WithAxisLength(5.0),
	)
	defer rend.Release()

	router := input.NewRouter(cam)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithCamera(cam),
		engine.WithRenderer(rend),
		engine.WithRouter(router),
		engine.WithTickRate(120),
	)

	// Wrap the router's key handling so held navigation keys are tracked for
	// the tick loop while discrete keys (R, P, modifiers) still reach the
	// router.
	keys := &keyState{held: make(map[uint32]bool)}
	win.SetKeyDownCallback(func(keyCode uint32) {
		keys.set(keyCode, true)
		if keyCode == common.KeyF {
			cam.FitToBounds(mgl32.Vec3{-10, 0, -10}, mgl32.Vec3{10, 0, 10})
			return
		}
		router.HandleKey(keyCode, common.ActionPress)
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		keys.set(keyCode, false)
		router.HandleKey(keyCode, common.ActionRelease)
	})

	eng.SetTickCallback(func(deltaTime float32) {
		step := keyboardPanSpeed * deltaTime

		var panX, panY, dolly float32
		if keys.isHeld(common.KeyA) {
			panX -= step
		}
		if keys.isHeld(common.KeyD) {
			panX += step
		}
		if keys.isHeld(common.KeyS) {
			panY -= step
		}
		if keys.isHeld(common.KeyW) {
			panY += step
		}
		if keys.isHeld(common.KeyQ) {
			dolly -= step
		}
		if keys.isHeld(common.KeyE) {
			dolly += step
		}

		if panX != 0 || panY != 0 {
			controller.Pan(panX, panY)
		}
		if dolly != 0 {
			controller.MoveAlongAxes(0, dolly)
		}
	})

	eng.Run()
	eng.Quit()

	if err := win.Close(); err != nil {
		log.Printf("failed to close window: %v", err)
	}
}
