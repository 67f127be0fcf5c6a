package scene

import "github.com/go-gl/mathgl/mgl32"

// State is everything that changes between frames. Geometry is constant.
type State struct {
	Model       Transform
	GroundColor mgl32.Vec3
	ShowHUD     bool
}

// NewState returns the state the demo starts in.
func NewState(showHUD bool) *State {
	return &State{
		Model:       NewTransform(),
		GroundColor: DefaultGroundColor,
		ShowHUD:     showHUD,
	}
}
