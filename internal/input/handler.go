package input

import (
	"math/rand/v2"

	"model-transforms/internal/config"
	"model-transforms/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Pointer moves the system cursor.
type Pointer interface {
	WarpPointer(x, y float64)
}

// Redrawer draws and presents a frame immediately.
type Redrawer interface {
	Redraw()
}

// Handler turns input events into changes to the scene state
type Handler struct {
	state    *scene.State
	bindings *Bindings
	keys     KeyTable
	rng      *rand.Rand
	pointer  Pointer
	redrawer Redrawer

	centerX, centerY float64
}

// NewHandler creates a handler that mutates state. rng supplies ground
// colors; pointer and redrawer may be nil.
func NewHandler(state *scene.State, rng *rand.Rand, pointer Pointer, redrawer Redrawer) *Handler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	cx, cy := config.WindowCenter()
	return &Handler{
		state:    state,
		bindings: NewBindings(),
		rng:      rng,
		pointer:  pointer,
		redrawer: redrawer,
		centerX:  cx,
		centerY:  cy,
	}
}

// Bindings exposes the key bindings for rebinding.
func (h *Handler) Bindings() *Bindings {
	return h.bindings
}

// Held reports whether key is currently held down.
func (h *Handler) Held(key glfw.Key) bool {
	return h.keys.Held(key)
}

// Dispatch routes one event and reports whether it asks the loop to quit.
// Resize events belong to the renderer and are ignored here.
func (h *Handler) Dispatch(e Event) bool {
	switch e.Kind {
	case EventKeyDown:
		return h.KeyDown(e.Key)
	case EventKeyUp:
		h.KeyUp(e.Key)
	case EventMouseMove:
		h.MouseMove(e.X, e.Y)
	case EventMouseButton:
		h.MouseClick(e.X, e.Y, e.Button)
	case EventQuit:
		return true
	}
	return false
}

// KeyDown records the key as held and applies its action. It returns true
// for the quit keys. Unbound keys only update the held table.
func (h *Handler) KeyDown(key glfw.Key) bool {
	h.keys.Set(key, true)

	action := h.bindings.Lookup(key)
	switch action {
	case ActionQuit:
		return true
	case ActionToggleHUD:
		h.state.ShowHUD = !h.state.ShowHUD
		return false
	}

	if step, ok := StepFor(action); ok {
		m := &h.state.Model
		if step.Translate != (mgl32.Vec3{}) {
			m.Translate(step.Translate)
		}
		if step.Scale != 0 {
			m.ScaleBy(step.Scale)
		}
	}
	return false
}

// KeyUp clears the held flag for key.
func (h *Handler) KeyUp(key glfw.Key) {
	h.keys.Set(key, false)
}

// MouseMove rotates the model by the pointer's offset from the window
// center and warps the pointer back to the center.
func (h *Handler) MouseMove(x, y float64) {
	div := config.GetLookDivisor()
	dx := float32(x-h.centerX) / div
	dy := float32(y-h.centerY) / div

	yaw := scene.WrapOnce(dx)
	pitch := scene.WrapOnce(dy)
	h.state.Model.Rotate(yaw, pitch)

	if h.pointer != nil {
		h.pointer.WarpPointer(h.centerX, h.centerY)
	}
}

// MouseClick picks a new random ground color and requests a redraw. The
// position and button are not used.
func (h *Handler) MouseClick(x, y float64, button glfw.MouseButton) {
	h.state.GroundColor = mgl32.Vec3{
		h.rng.Float32(),
		h.rng.Float32(),
		h.rng.Float32(),
	}
	if h.redrawer != nil {
		h.redrawer.Redraw()
	}
}
