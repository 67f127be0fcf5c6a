package graphics

import "github.com/go-gl/mathgl/mgl32"

// WideLineQuad returns the triangle-strip corners, in clip space, that the
// wideline geometry stage emits for the segment p0-p1: the segment widened
// by width pixels perpendicular to its on-screen direction.
func WideLineQuad(p0, p1 mgl32.Vec4, viewport mgl32.Vec2, width float32) [4]mgl32.Vec4 {
	halfVP := viewport.Mul(0.5)
	s0 := mgl32.Vec2{p0.X() / p0.W(), p0.Y() / p0.W()}
	s1 := mgl32.Vec2{p1.X() / p1.W(), p1.Y() / p1.W()}
	dir := s1.Sub(s0)
	dir = mgl32.Vec2{dir.X() * halfVP.X(), dir.Y() * halfVP.Y()}

	normal := mgl32.Vec2{0, 1}
	if l := dir.Len(); l > 0 {
		normal = mgl32.Vec2{-dir.Y() / l, dir.X() / l}
	}
	offset := mgl32.Vec2{
		normal.X() * width / 2 / halfVP.X(),
		normal.Y() * width / 2 / halfVP.Y(),
	}

	shift := func(p mgl32.Vec4, sign float32) mgl32.Vec4 {
		return mgl32.Vec4{
			p.X() + sign*offset.X()*p.W(),
			p.Y() + sign*offset.Y()*p.W(),
			p.Z(),
			p.W(),
		}
	}
	return [4]mgl32.Vec4{shift(p0, 1), shift(p0, -1), shift(p1, 1), shift(p1, -1)}
}
