package meshing

import (
	"model-transforms/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FloatsPerColoredVertex is position (3) + color (3).
	FloatsPerColoredVertex = 6
	// FloatsPerLineVertex is position only; line color is a uniform.
	FloatsPerLineVertex = 3

	verticesPerQuad = 6
)

// Range is a contiguous run of vertices inside a mesh buffer.
type Range struct {
	First int32
	Count int32
}

// ColoredMesh is an interleaved triangle list with per-vertex color and
// the vertex range of every source shape.
type ColoredMesh struct {
	Vertices []float32
	Ranges   map[string]Range
}

// VertexCount returns the number of vertices in the mesh.
func (m *ColoredMesh) VertexCount() int32 {
	return int32(len(m.Vertices) / FloatsPerColoredVertex)
}

// BuildColored triangulates the faces of every shape, in order, into one
// buffer. Each quad becomes two triangles fanned from its first vertex.
func BuildColored(shapes ...scene.Shape) *ColoredMesh {
	faces := 0
	for _, s := range shapes {
		faces += len(s.Faces)
	}

	m := &ColoredMesh{
		Vertices: make([]float32, 0, faces*verticesPerQuad*FloatsPerColoredVertex),
		Ranges:   make(map[string]Range, len(shapes)),
	}
	for _, s := range shapes {
		first := m.VertexCount()
		for _, f := range s.Faces {
			m.Vertices = appendQuad(m.Vertices, f)
		}
		m.Ranges[s.Name] = Range{First: first, Count: m.VertexCount() - first}
	}
	return m
}

func appendQuad(dst []float32, f scene.Face) []float32 {
	q := f.Vertices
	for _, v := range [verticesPerQuad]mgl32.Vec3{q[0], q[1], q[2], q[0], q[2], q[3]} {
		dst = append(dst, v.X(), v.Y(), v.Z(), f.Color.X(), f.Color.Y(), f.Color.Z())
	}
	return dst
}

// BuildPositions triangulates shapes ignoring color, for shapes whose
// color is supplied at draw time.
func BuildPositions(shapes ...scene.Shape) []float32 {
	var out []float32
	for _, s := range shapes {
		for _, f := range s.Faces {
			q := f.Vertices
			for _, v := range [verticesPerQuad]mgl32.Vec3{q[0], q[1], q[2], q[0], q[2], q[3]} {
				out = append(out, v.X(), v.Y(), v.Z())
			}
		}
	}
	return out
}

// BuildLines flattens segments into a GL_LINES position buffer.
func BuildLines(segs []scene.Segment) []float32 {
	out := make([]float32, 0, len(segs)*2*FloatsPerLineVertex)
	for _, s := range segs {
		out = append(out,
			s.From.X(), s.From.Y(), s.From.Z(),
			s.To.X(), s.To.Y(), s.To.Z(),
		)
	}
	return out
}
