package outline

import (
	"model-transforms/internal/graphics"
	renderer "model-transforms/internal/graphics/renderer"
	"model-transforms/internal/meshing"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Outline draws the black edge loop around the cube's outlined face
type Outline struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
	width  int
	height int
}

// NewOutline creates a new outline renderable
func NewOutline() *Outline {
	return &Outline{}
}

// Init initializes the outline rendering system
func (o *Outline) Init() error {
	var err error
	o.shader, err = graphics.NewShader(graphics.WideLineShader)
	if err != nil {
		return err
	}

	vertices := meshing.BuildLines(scene.Cube.Faces[scene.OutlineFace].Outline())
	o.count = int32(len(vertices) / meshing.FloatsPerLineVertex)

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws the outline on top of the coplanar face
func (o *Outline) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.outline")()

	o.shader.Use()
	o.shader.SetMatrix4("proj", &ctx.Proj[0])
	o.shader.SetMatrix4("view", &ctx.View[0])
	o.shader.SetMatrix4("model", &ctx.Model[0])
	c := scene.ColorBlack
	o.shader.SetVector3("color", c.X(), c.Y(), c.Z())
	o.shader.SetVector2("viewport", float32(o.width), float32(o.height))
	o.shader.SetFloat("width", scene.OutlineWidth)

	// Segments are widened into quads by the geometry stage
	gl.DepthFunc(gl.LEQUAL)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.LINES, 0, o.count)
	gl.BindVertexArray(0)
	gl.DepthFunc(gl.LESS)
}

// SetViewport records the pixel size the outline width is measured in
func (o *Outline) SetViewport(width, height int) {
	o.width, o.height = width, height
}

// Dispose cleans up OpenGL resources
func (o *Outline) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
