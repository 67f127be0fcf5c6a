package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Action represents a logical demo action, not a physical key
type Action int

// Action constants using iota
const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveNear
	ActionMoveFar
	ActionMoveLeft
	ActionMoveRight
	ActionShrink
	ActionGrow
	ActionToggleHUD
	ActionCount // Sentinel value for array sizing
)

// Step is the discrete model change applied by one key press
type Step struct {
	Translate mgl32.Vec3
	Scale     float32
}

// Fixed per-action steps. A zero Scale means no scaling.
var steps = [ActionCount]Step{
	ActionMoveUp:    {Translate: mgl32.Vec3{0, 1, 0}},
	ActionMoveDown:  {Translate: mgl32.Vec3{0, -1, 0}},
	ActionMoveNear:  {Translate: mgl32.Vec3{0, 0, 1}},
	ActionMoveFar:   {Translate: mgl32.Vec3{0, 0, -1}},
	ActionMoveLeft:  {Translate: mgl32.Vec3{-1, 0, 0}},
	ActionMoveRight: {Translate: mgl32.Vec3{1, 0, 0}},
	ActionShrink:    {Scale: 0.95},
	ActionGrow:      {Scale: 1.05},
}

// StepFor returns the model step bound to an action.
func StepFor(a Action) (Step, bool) {
	if a < 0 || a >= ActionCount {
		return Step{}, false
	}
	s := steps[a]
	return s, s.Scale != 0 || s.Translate != (mgl32.Vec3{})
}

// Bindings maps physical keys to logical actions
type Bindings struct {
	keyToAction map[glfw.Key]Action
}

// NewBindings creates the default key bindings
func NewBindings() *Bindings {
	b := &Bindings{keyToAction: make(map[glfw.Key]Action)}

	b.Bind(glfw.KeyEscape, ActionQuit)
	b.Bind(glfw.KeyQ, ActionQuit)
	b.Bind(glfw.KeyW, ActionMoveUp)
	b.Bind(glfw.KeyS, ActionMoveDown)
	b.Bind(glfw.KeyA, ActionMoveNear)
	b.Bind(glfw.KeyD, ActionMoveFar)
	b.Bind(glfw.KeyUp, ActionMoveLeft)
	b.Bind(glfw.KeyDown, ActionMoveRight)
	b.Bind(glfw.KeyLeft, ActionShrink)
	b.Bind(glfw.KeyRight, ActionGrow)
	b.Bind(glfw.KeyF3, ActionToggleHUD)

	return b
}

// Bind binds a physical key to a logical action, replacing any previous binding
func (b *Bindings) Bind(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	b.keyToAction[key] = action
}

// Unbind removes the binding for a key
func (b *Bindings) Unbind(key glfw.Key) {
	delete(b.keyToAction, key)
}

// Lookup returns the action bound to key, or ActionNone
func (b *Bindings) Lookup(key glfw.Key) Action {
	return b.keyToAction[key]
}
