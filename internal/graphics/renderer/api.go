package renderer

import (
	"time"

	"model-transforms/internal/graphics"
	"model-transforms/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameStats is frame timing information shown by overlays
type FrameStats struct {
	FPS int
	// RenderTime is the time the renderables took in the last frame
	RenderTime time.Duration
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	State  *scene.State
	Stats  FrameStats
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Model  mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
