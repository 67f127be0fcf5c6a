package grass

import (
	"model-transforms/internal/graphics"
	renderer "model-transforms/internal/graphics/renderer"
	"model-transforms/internal/meshing"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Grass draws the dashed grid that suggests grass on the ground
type Grass struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32

	width, height float32
}

// NewGrass creates the grass renderable
func NewGrass() *Grass {
	return &Grass{}
}

// Init compiles the line shader and uploads the grid
func (g *Grass) Init() error {
	var err error
	g.shader, err = graphics.NewShader(graphics.LineShader)
	if err != nil {
		return err
	}

	vertices := meshing.BuildLines(scene.GrassLines())
	g.count = int32(len(vertices) / meshing.FloatsPerLineVertex)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws the stippled lines. The pattern is measured in window
// pixels from the start of each segment.
func (g *Grass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.grass")()

	g.shader.Use()
	g.shader.SetMatrix4("proj", &ctx.Proj[0])
	g.shader.SetMatrix4("view", &ctx.View[0])
	g.shader.SetMatrix4("model", &ctx.Model[0])
	c := scene.ColorGrass
	g.shader.SetVector3("color", c.X(), c.Y(), c.Z())
	g.shader.SetVector2("viewport", g.width, g.height)
	g.shader.SetBool("useStipple", true)
	g.shader.SetUint("pattern", uint32(scene.GrassStipple))
	g.shader.SetFloat("factor", scene.GrassStippleScale)

	gl.ProvokingVertex(gl.FIRST_VERTEX_CONVENTION)
	gl.LineWidth(1)
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.LINES, 0, g.count)
	gl.BindVertexArray(0)
	gl.ProvokingVertex(gl.LAST_VERTEX_CONVENTION)
}

// SetViewport records the window size used to measure stipple distance
func (g *Grass) SetViewport(width, height int) {
	g.width = float32(width)
	g.height = float32(height)
}

// Dispose cleans up OpenGL resources
func (g *Grass) Dispose() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}
