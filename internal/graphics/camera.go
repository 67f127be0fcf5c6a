package graphics

import (
	"model-transforms/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the fixed orthographic projection and look-at view
type Camera struct {
	Width, Height int

	Size      float32
	NearPlane float32
	FarPlane  float32

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// NewCamera returns the demo's camera: a symmetric orthographic volume
// looked at from (2, 2, 0) toward (1, 1, 1) with an inverted up vector.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		Size:      config.OrthoSize,
		NearPlane: config.OrthoNear,
		FarPlane:  config.OrthoFar,
		Eye:       mgl32.Vec3{2, 2, 0},
		Target:    mgl32.Vec3{1, 1, 1},
		Up:        mgl32.Vec3{0, -1, 0},
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	s := c.Size
	return mgl32.Ortho(-s, s, -s, s, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// GetScreenMatrix maps window pixels, origin top-left, to clip space.
func (c *Camera) GetScreenMatrix() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(c.Width), float32(c.Height), 0, -1, 1)
}

// SetViewport updates the window dimensions
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}
