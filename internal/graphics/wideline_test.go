package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// pixels converts a clip-space point to window pixels.
func pixels(p mgl32.Vec4, viewport mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(p.X()/p.W() + 1) / 2 * viewport.X(),
		(p.Y()/p.W() + 1) / 2 * viewport.Y(),
	}
}

func TestWideLineQuadWidthInPixels(t *testing.T) {
	viewport := mgl32.Vec2{1024, 768}
	tests := []struct {
		name   string
		p0, p1 mgl32.Vec4
	}{
		{"horizontal", mgl32.Vec4{-0.5, 0, 0, 1}, mgl32.Vec4{0.5, 0, 0, 1}},
		{"vertical", mgl32.Vec4{0.2, -0.8, 0.3, 1}, mgl32.Vec4{0.2, 0.4, 0.3, 1}},
		{"diagonal", mgl32.Vec4{-0.3, -0.3, 0, 1}, mgl32.Vec4{0.6, 0.2, 0, 1}},
		{"homogeneous", mgl32.Vec4{-1, 0, 0, 2}, mgl32.Vec4{1, 1, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := WideLineQuad(tt.p0, tt.p1, viewport, 4)

			seg := pixels(tt.p1, viewport).Sub(pixels(tt.p0, viewport))
			for _, pair := range [][2]int{{0, 1}, {2, 3}} {
				across := pixels(q[pair[0]], viewport).Sub(pixels(q[pair[1]], viewport))
				if got := across.Len(); math.Abs(float64(got-4)) > 1e-2 {
					t.Errorf("corners %v are %.4fpx apart, want 4", pair, got)
				}
				if cos := across.Dot(seg) / (across.Len() * seg.Len()); math.Abs(float64(cos)) > 1e-3 {
					t.Errorf("corners %v not perpendicular to the segment (cos %v)", pair, cos)
				}
			}
			for i, p := range q {
				src := tt.p0
				if i >= 2 {
					src = tt.p1
				}
				if p.Z() != src.Z() || p.W() != src.W() {
					t.Errorf("corner %d depth/w = %v/%v, want %v/%v", i, p.Z(), p.W(), src.Z(), src.W())
				}
			}
		})
	}
}

func TestWideLineQuadOutlinesCubeFace(t *testing.T) {
	cam := NewCamera(1024, 768)
	mvp := cam.GetProjectionMatrix().Mul4(cam.GetViewMatrix())
	p0 := mvp.Mul4x1(mgl32.Vec4{-1, -1, -1, 1})
	p1 := mvp.Mul4x1(mgl32.Vec4{1, -1, -1, 1})

	q := WideLineQuad(p0, p1, mgl32.Vec2{1024, 768}, 4)
	across := pixels(q[0], mgl32.Vec2{1024, 768}).Sub(pixels(q[1], mgl32.Vec2{1024, 768}))
	if got := across.Len(); math.Abs(float64(got-4)) > 1e-2 {
		t.Errorf("outline is %.4fpx wide, want 4", got)
	}
}

func TestWideLineQuadDegenerateSegment(t *testing.T) {
	p := mgl32.Vec4{0.1, 0.1, 0, 1}
	q := WideLineQuad(p, p, mgl32.Vec2{1024, 768}, 4)
	for i, c := range q {
		if math.IsNaN(float64(c.X())) || math.IsNaN(float64(c.Y())) {
			t.Fatalf("corner %d is NaN", i)
		}
	}
}

func TestWideLineShaderHasGeometryStage(t *testing.T) {
	geom, ok := GeometrySource(WideLineShader)
	if !ok || geom == "" {
		t.Fatal("wideline shader has no geometry stage")
	}
	if _, ok := GeometrySource(LineShader); ok {
		t.Error("line shader should not have a geometry stage")
	}
}
