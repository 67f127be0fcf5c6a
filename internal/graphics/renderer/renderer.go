package renderer

import (
	"fmt"

	"model-transforms/internal/graphics"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	stats       FrameStats
}

// NewRenderer configures GL state once and initializes the renderables in
// draw order. A GL context must be current.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	// Faces of the demo shapes are not consistently wound.
	gl.Disable(gl.CULL_FACE)
	gl.Viewport(0, 0, int32(width), int32(height))

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	if err := initRenderables(width, height, rs); err != nil {
		return nil, err
	}

	return renderer, nil
}

// initRenderables initializes rs in order. On failure the failed renderable
// and every one before it are disposed, last first.
func initRenderables(width, height int, rs []Renderable) error {
	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i; j >= 0; j-- {
				rs[j].Dispose()
			}
			return fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.SetViewport(width, height)
	}
	return nil
}

// SetStats records timing shown by overlays on the next frame
func (r *Renderer) SetStats(s FrameStats) {
	r.stats = s
}

// DrawFrame clears to the sky color and draws every renderable. It runs
// every loop iteration whether or not the state changed.
func (r *Renderer) DrawFrame(state *scene.State) {
	defer profiling.Track("frame.DrawFrame")()

	sky := scene.SkyColor
	gl.ClearColor(sky.X(), sky.Y(), sky.Z(), sky.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		State:  state,
		Stats:  r.stats,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
		Model:  state.Model.Matrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport updates the viewport of the camera and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
