package hud

import (
	"fmt"

	"model-transforms/internal/graphics"
	renderer "model-transforms/internal/graphics/renderer"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 18
	marginX    = 12
	marginY    = 24
	lineStep   = 20
)

var textColor = mgl32.Vec3{1, 1, 1}

// HUD draws a text readout of the model transform when enabled
type HUD struct {
	fontRenderer *graphics.FontRenderer
	width        int
	height       int
}

// NewHUD creates the HUD renderable
func NewHUD() *HUD {
	return &HUD{}
}

// Init bakes the glyph atlas and sets up the font renderer
func (h *HUD) Init() error {
	atlas, err := graphics.BakeMonoGlyphs(fontPixels)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	info := atlas.Upload()
	fr, err := graphics.NewFontRenderer(info, h.width, h.height)
	if err != nil {
		info.Delete()
		return err
	}
	h.fontRenderer = fr
	return nil
}

// Render draws the readout; nothing is drawn while the HUD is hidden
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !ctx.State.ShowHUD {
		return
	}
	defer profiling.Track("renderer.hud")()

	h.fontRenderer.RenderLines(Lines(ctx.State, ctx.Stats), marginX, marginY, lineStep, 1, textColor)
}

// Lines formats the readout for a state.
func Lines(st *scene.State, stats renderer.FrameStats) []string {
	m := st.Model
	g := st.GroundColor
	return []string{
		fmt.Sprintf("FPS %d", stats.FPS),
		fmt.Sprintf("render  %.2fms", float64(stats.RenderTime.Microseconds())/1000.0),
		fmt.Sprintf("offset  %+.0f %+.0f %+.0f", m.Translation.X(), m.Translation.Y(), m.Translation.Z()),
		fmt.Sprintf("scale   %.4f", m.Scale),
		fmt.Sprintf("yaw     %.1f", m.Yaw),
		fmt.Sprintf("pitch   %.1f", m.Pitch),
		fmt.Sprintf("ground  %.2f %.2f %.2f", g.X(), g.Y(), g.Z()),
	}
}

// SetViewport updates the pixel projection of the text
func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

// Dispose cleans up OpenGL resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}
