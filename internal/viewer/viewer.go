// Package viewer plays back cloth rollouts in an interactive SDL2/OpenGL
// window: orbit camera on the mouse, space to pause, arrow keys to step.
package viewer

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/clothsim-tools/rolloutview/internal/config"
	"github.com/clothsim-tools/rolloutview/internal/logger"
	"github.com/clothsim-tools/rolloutview/pkg/sequence"
)

// Run opens a window and plays the mesh sequences until the user quits.
func Run(cfg *config.Config, seqs []*sequence.MeshSequence) error {
	win, err := newWindow(windowConfig{
		Title:      "rolloutview — " + seqs[0].Name,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	rend, err := newRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer rend.Close()

	meshes := make([]*animatedMesh, len(seqs))
	for i, s := range seqs {
		meshes[i] = newAnimatedMesh(s)
	}
	defer func() {
		for _, m := range meshes {
			m.destroy()
		}
	}()

	camera := newOrbitCamera()
	camera.FitToBounds(boundsOf(seqs))

	clock := newPlayback(cfg.Rollout.FPS, maxFrames(seqs))

	logger.Info("playback started",
		zap.Int("sequences", len(seqs)),
		zap.Int("frames", maxFrames(seqs)),
		zap.Int("fps", cfg.Rollout.FPS),
	)

	last := time.Now()
	running := true
	leftMouseDown := false
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
					running = false
				case sdl.SCANCODE_SPACE:
					clock.TogglePause()
				case sdl.SCANCODE_LEFT:
					clock.Step(-1)
				case sdl.SCANCODE_RIGHT:
					clock.Step(1)
				}

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED {
					rend.Resize(int(e.Data1), int(e.Data2))
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					leftMouseDown = e.State == sdl.PRESSED
				}

			case *sdl.MouseMotionEvent:
				if leftMouseDown {
					camera.HandleDrag(float32(e.XRel), float32(e.YRel))
				}

			case *sdl.MouseWheelEvent:
				camera.HandleZoom(float32(e.Y))
			}
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		frame := clock.Advance(dt)
		for _, m := range meshes {
			m.setFrame(frame)
		}

		rend.Begin(camera.ViewMatrix())
		for _, m := range meshes {
			rend.DrawMesh(m)
		}
		win.SwapBuffers()
	}

	logger.Info("viewer closed")
	return nil
}

func maxFrames(seqs []*sequence.MeshSequence) int {
	frames := 0
	for _, s := range seqs {
		if s.Frames() > frames {
			frames = s.Frames()
		}
	}
	return frames
}
