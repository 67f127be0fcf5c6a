package scene

import "github.com/go-gl/mathgl/mgl32"

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// Transform is the model transform driven by input. It replaces the
// ambient fixed-function matrix stack with an owned value that is turned
// into a matrix once per frame.
type Transform struct {
	Translation mgl32.Vec3
	Scale       float32

	// Yaw and Pitch are the running totals of every applied rotation, in
	// degrees. Orientation holds the actual composition.
	Yaw         float32
	Pitch       float32
	Orientation mgl32.Quat
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Scale:       1,
		Orientation: mgl32.QuatIdent(),
	}
}

// Translate moves the model by d.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.Translation = t.Translation.Add(d)
}

// ScaleBy multiplies the uniform scale by f.
func (t *Transform) ScaleBy(f float32) {
	t.Scale *= f
}

// Rotate composes a yaw about the vertical axis followed by a pitch about
// the horizontal axis onto the current orientation. Both angles are in
// degrees.
func (t *Transform) Rotate(yaw, pitch float32) {
	t.Yaw += yaw
	t.Pitch += pitch

	qy := mgl32.QuatRotate(mgl32.DegToRad(yaw), axisY)
	qx := mgl32.QuatRotate(mgl32.DegToRad(pitch), axisX)
	t.Orientation = t.Orientation.Mul(qy).Mul(qx).Normalize()
}

// Matrix returns translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	s := t.Scale
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Orientation.Mat4()).
		Mul4(mgl32.Scale3D(s, s, s))
}

// WrapOnce subtracts a single turn from angles above 360 degrees. Angles
// of two or more turns stay above 360 and negative angles are untouched;
// this matches how the demo has always normalized mouse-look input.
func WrapOnce(deg float32) float32 {
	if deg > 360 {
		deg -= 360
	}
	return deg
}
