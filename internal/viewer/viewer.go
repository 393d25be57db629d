// Package viewer implements the main application loop of the line viewer.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireline/internal/config"
	"github.com/Faultbox/wireline/internal/engine/camera"
	"github.com/Faultbox/wireline/internal/engine/geometry"
	"github.com/Faultbox/wireline/internal/engine/input"
	"github.com/Faultbox/wireline/internal/engine/lines"
	"github.com/Faultbox/wireline/internal/engine/pipeline"
	"github.com/Faultbox/wireline/internal/engine/window"
	"github.com/Faultbox/wireline/internal/logger"
	"github.com/Faultbox/wireline/pkg/math"
	"github.com/veandco/go-sdl2/sdl"
)

// Viewer is the main application instance.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *lines.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera

	batches  []*lines.Batch
	dragging bool
}

// New creates a new viewer instance.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	v := &Viewer{
		config:  cfg,
		running: false,
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      "Wireline",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	v.renderer, err = lines.New()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()

	if err := v.buildScene(); err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	// Match the viewport to the actual framebuffer
	fbw, fbh := v.window.GetDrawableSize()
	v.renderer.Resize(fbw, fbh)

	logger.Info("viewer initialized successfully")
	return v, nil
}

// buildScene uploads the configured line geometry.
func (v *Viewer) buildScene() error {
	sc := v.config.Scene

	gray := math.Vec4{0.5, 0.5, 0.5, 1}
	white := math.Vec4{1, 1, 1, 1}

	if sc.ShowGrid {
		grid := geometry.GridLines(sc.GridExtent, sc.GridSpacing, gray)
		if err := v.upload(grid); err != nil {
			return err
		}
		min, max := geometry.Bounds(grid)
		v.camera.FitToBounds(min, max)

		if sc.ShowBounds {
			// Give the box some height so it reads as a volume
			min.Y = -sc.GridExtent / 4
			max.Y = sc.GridExtent / 4
			if err := v.upload(geometry.BBoxWireframe(min, max, white)); err != nil {
				return err
			}
		}
	}

	if sc.ShowAxes {
		if err := v.upload(geometry.AxisLines(sc.AxisLength)); err != nil {
			return err
		}
	}

	if len(v.batches) == 0 {
		logger.Warn("scene config produced no geometry")
	}
	return nil
}

func (v *Viewer) upload(vertices []pipeline.Vertex) error {
	b, err := v.renderer.Upload(vertices)
	if err != nil {
		return err
	}
	v.batches = append(v.batches, b)
	return nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			v.handleEvent(event)
		}

		// 2. Render
		v.render()

		// 3. Present (swap buffers)
		v.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent reacts to one input event.
func (v *Viewer) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		fbw, fbh := v.window.GetDrawableSize()
		v.renderer.Resize(fbw, fbh)

	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_ESCAPE {
			v.running = false
		}

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			v.dragging = true
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}

	case input.EventMouseMove:
		if v.dragging {
			v.camera.HandleDrag(float32(event.MouseDX), float32(event.MouseDY))
		}

	case input.EventMouseWheel:
		v.camera.HandleZoom(event.WheelY)
	}
}

// render draws the current frame.
func (v *Viewer) render() {
	v.renderer.Begin()

	// One uniform block per frame, shared by every draw
	w, h := v.window.GetSize()
	aspect := float32(w) / float32(h)
	v.renderer.SetFrameUniforms(v.camera.Uniforms(aspect))

	for _, b := range v.batches {
		v.renderer.Draw(b)
	}
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	for _, b := range v.batches {
		b.Delete()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
