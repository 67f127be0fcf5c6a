package graphics

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed shaders/*.vert shaders/*.geom shaders/*.frag
var shaderFS embed.FS

// Shader names of the embedded programs
const (
	SceneShader = "scene"
	LineShader  = "line"
	FontShader  = "font"
	// WideLineShader expands GL_LINES into screen-space quads
	WideLineShader = "wideline"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// ShaderSources returns the vertex and fragment sources of an embedded
// program.
func ShaderSources(name string) (string, string, error) {
	vert, err := shaderFS.ReadFile(path.Join("shaders", name+".vert"))
	if err != nil {
		return "", "", fmt.Errorf("read vertex shader %q: %w", name, err)
	}
	frag, err := shaderFS.ReadFile(path.Join("shaders", name+".frag"))
	if err != nil {
		return "", "", fmt.Errorf("read fragment shader %q: %w", name, err)
	}
	return string(vert), string(frag), nil
}

// GeometrySource returns the optional geometry stage of an embedded program.
func GeometrySource(name string) (string, bool) {
	geom, err := shaderFS.ReadFile(path.Join("shaders", name+".geom"))
	if err != nil {
		return "", false
	}
	return string(geom), true
}

// NewShader compiles and links one of the embedded programs
func NewShader(name string) (*Shader, error) {
	vert, frag, err := ShaderSources(name)
	if err != nil {
		return nil, err
	}
	geom, _ := GeometrySource(name)

	program, err := compileProgram(vert, geom, frag)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}

	return &Shader{ID: program}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	gl.Uniform1i(s.location(name), intValue)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

// SetUint sets an unsigned integer uniform
func (s *Shader) SetUint(name string, value uint32) {
	gl.Uniform1ui(s.location(name), value)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVector2 sets a vector2 uniform
func (s *Shader) SetVector2(name string, x, y float32) {
	gl.Uniform2f(s.location(name), x, y)
}

// SetVector3 sets a vector3 uniform
func (s *Shader) SetVector3(name string, x, y, z float32) {
	gl.Uniform3f(s.location(name), x, y, z)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(s.location(name), 1, false, value)
}

// Helper functions

// compileProgram links the stages; an empty geometrySrc skips that stage.
func compileProgram(vertexSrc, geometrySrc, fragmentSrc string) (uint32, error) {
	var stages []uint32
	defer func() {
		for _, s := range stages {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range []struct {
		src  string
		kind uint32
	}{
		{vertexSrc, gl.VERTEX_SHADER},
		{geometrySrc, gl.GEOMETRY_SHADER},
		{fragmentSrc, gl.FRAGMENT_SHADER},
	} {
		if st.src == "" && st.kind == gl.GEOMETRY_SHADER {
			continue
		}
		shader, err := compileShader(st.src, st.kind)
		if err != nil {
			return 0, err
		}
		stages = append(stages, shader)
	}

	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
