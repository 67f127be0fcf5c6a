package solids

import (
	"model-transforms/internal/graphics"
	renderer "model-transforms/internal/graphics/renderer"
	"model-transforms/internal/meshing"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Solids draws the filled faces: cube, ground, trunk, leaves in that order
type Solids struct {
	shader *graphics.Shader

	mesh *meshing.ColoredMesh
	vao  uint32
	vbo  uint32

	groundVAO   uint32
	groundVBO   uint32
	groundCount int32
}

// NewSolids creates the solids renderable
func NewSolids() *Solids {
	return &Solids{
		mesh: meshing.BuildColored(scene.Cube, scene.TreeTrunk, scene.TreeLeaves),
	}
}

// Init compiles the shader and uploads the static geometry
func (s *Solids) Init() error {
	var err error
	s.shader, err = graphics.NewShader(graphics.SceneShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.mesh.Vertices)*4, gl.Ptr(s.mesh.Vertices), gl.STATIC_DRAW)
	stride := int32(meshing.FloatsPerColoredVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	// Ground geometry is fixed; its color comes from the tint uniform.
	ground := meshing.BuildPositions(scene.Ground(scene.DefaultGroundColor))
	s.groundCount = int32(len(ground) / meshing.FloatsPerLineVertex)
	gl.GenVertexArrays(1, &s.groundVAO)
	gl.BindVertexArray(s.groundVAO)
	gl.GenBuffers(1, &s.groundVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.groundVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(ground)*4, gl.Ptr(ground), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return nil
}

// Render draws all filled faces with the current model transform
func (s *Solids) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.solids")()

	s.shader.Use()
	s.shader.SetMatrix4("proj", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])
	s.shader.SetMatrix4("model", &ctx.Model[0])

	s.drawShape(scene.Cube.Name)

	g := ctx.State.GroundColor
	s.shader.SetBool("useTint", true)
	s.shader.SetVector3("tint", g.X(), g.Y(), g.Z())
	gl.BindVertexArray(s.groundVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, s.groundCount)

	s.drawShape(scene.TreeTrunk.Name)
	s.drawShape(scene.TreeLeaves.Name)

	gl.BindVertexArray(0)
}

func (s *Solids) drawShape(name string) {
	r, ok := s.mesh.Ranges[name]
	if !ok {
		return
	}
	s.shader.SetBool("useTint", false)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, r.First, r.Count)
}

// SetViewport is a no-op; solids only use the shared matrices
func (s *Solids) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (s *Solids) Dispose() {
	for _, vao := range []*uint32{&s.vao, &s.groundVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&s.vbo, &s.groundVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
