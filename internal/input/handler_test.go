package input

import (
	"math/rand/v2"
	"testing"

	"model-transforms/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type warpRecorder struct {
	calls [][2]float64
}

func (w *warpRecorder) WarpPointer(x, y float64) {
	w.calls = append(w.calls, [2]float64{x, y})
}

type redrawCounter struct {
	n int
}

func (r *redrawCounter) Redraw() { r.n++ }

func newTestHandler() (*Handler, *scene.State, *warpRecorder, *redrawCounter) {
	st := scene.NewState(false)
	w := &warpRecorder{}
	r := &redrawCounter{}
	h := NewHandler(st, rand.New(rand.NewPCG(1, 2)), w, r)
	return h, st, w, r
}

func TestKeyDownSteps(t *testing.T) {
	cases := []struct {
		key   glfw.Key
		delta mgl32.Vec3
		scale float32
	}{
		{glfw.KeyW, mgl32.Vec3{0, 1, 0}, 1},
		{glfw.KeyS, mgl32.Vec3{0, -1, 0}, 1},
		{glfw.KeyA, mgl32.Vec3{0, 0, 1}, 1},
		{glfw.KeyD, mgl32.Vec3{0, 0, -1}, 1},
		{glfw.KeyUp, mgl32.Vec3{-1, 0, 0}, 1},
		{glfw.KeyDown, mgl32.Vec3{1, 0, 0}, 1},
		{glfw.KeyLeft, mgl32.Vec3{}, 0.95},
		{glfw.KeyRight, mgl32.Vec3{}, 1.05},
	}
	for _, c := range cases {
		h, st, _, _ := newTestHandler()
		if quit := h.KeyDown(c.key); quit {
			t.Errorf("key %v: unexpected quit", c.key)
		}
		if st.Model.Translation != c.delta {
			t.Errorf("key %v: translation %v, want %v", c.key, st.Model.Translation, c.delta)
		}
		if st.Model.Scale != c.scale {
			t.Errorf("key %v: scale %v, want %v", c.key, st.Model.Scale, c.scale)
		}
	}
}

func TestRepeatedUpAccumulates(t *testing.T) {
	h, st, _, _ := newTestHandler()
	h.KeyDown(glfw.KeyW)
	h.KeyDown(glfw.KeyW)
	if st.Model.Translation != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("translation = %v, want (0, 2, 0)", st.Model.Translation)
	}
}

func TestShrinkThenGrowCompounds(t *testing.T) {
	h, st, _, _ := newTestHandler()
	h.KeyDown(glfw.KeyLeft)
	h.KeyDown(glfw.KeyRight)

	want := float32(1) * float32(0.95) * float32(1.05)
	if st.Model.Scale != want {
		t.Errorf("scale = %v, want %v", st.Model.Scale, want)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []glfw.Key{glfw.KeyEscape, glfw.KeyQ} {
		h, st, _, _ := newTestHandler()
		if !h.KeyDown(k) {
			t.Errorf("key %v should quit", k)
		}
		if st.Model.Translation != (mgl32.Vec3{}) || st.Model.Scale != 1 {
			t.Errorf("quit key %v changed the model", k)
		}
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	h, st, _, _ := newTestHandler()
	before := *st
	if h.KeyDown(glfw.KeyZ) {
		t.Fatal("unbound key should not quit")
	}
	if *st != before {
		t.Errorf("unbound key changed state: %+v", *st)
	}
	if !h.Held(glfw.KeyZ) {
		t.Errorf("unbound key should still be recorded as held")
	}
}

func TestKeyUpClearsHeld(t *testing.T) {
	h, _, _, _ := newTestHandler()
	h.KeyDown(glfw.KeyW)
	if !h.Held(glfw.KeyW) {
		t.Fatal("w should be held")
	}
	h.KeyUp(glfw.KeyW)
	if h.Held(glfw.KeyW) {
		t.Error("w should be released")
	}
}

func TestKeyTableBounds(t *testing.T) {
	var kt KeyTable
	kt.Set(glfw.KeyUnknown, true)
	kt.Set(glfw.Key(100000), true)
	if kt.Held(glfw.KeyUnknown) || kt.Held(glfw.Key(100000)) {
		t.Error("out of range keys must be ignored")
	}
	kt.Set(glfw.KeyLast, true)
	if !kt.Held(glfw.KeyLast) {
		t.Error("last key should be tracked")
	}
}

func TestToggleHUD(t *testing.T) {
	h, st, _, _ := newTestHandler()
	h.KeyDown(glfw.KeyF3)
	if !st.ShowHUD {
		t.Fatal("HUD should be on")
	}
	h.KeyDown(glfw.KeyF3)
	if st.ShowHUD {
		t.Fatal("HUD should be off")
	}
}

func TestMouseMoveRotatesAndRecenters(t *testing.T) {
	h, st, w, _ := newTestHandler()
	h.MouseMove(612, 334)

	if st.Model.Yaw != 50 || st.Model.Pitch != -25 {
		t.Errorf("yaw/pitch = %v/%v, want 50/-25", st.Model.Yaw, st.Model.Pitch)
	}
	if len(w.calls) != 1 || w.calls[0] != [2]float64{512, 384} {
		t.Errorf("warps = %v, want one warp to (512, 384)", w.calls)
	}
}

func TestMouseMoveRecentersOncePerEvent(t *testing.T) {
	h, _, w, _ := newTestHandler()
	positions := [][2]float64{{512, 384}, {0, 0}, {3000, -2000}, {1024, 768}}
	for _, p := range positions {
		h.MouseMove(p[0], p[1])
	}
	if len(w.calls) != len(positions) {
		t.Fatalf("got %d warps for %d moves", len(w.calls), len(positions))
	}
	for _, c := range w.calls {
		if c != [2]float64{512, 384} {
			t.Errorf("warp to %v", c)
		}
	}
}

func TestMouseMoveWrapsOnce(t *testing.T) {
	h, st, _, _ := newTestHandler()
	// dx = (512+1000-512)/2 = 500 -> 140 after one wrap
	h.MouseMove(512+1000, 384)
	if st.Model.Yaw != 140 {
		t.Errorf("yaw = %v, want 140", st.Model.Yaw)
	}
	// dx = 800 -> 440, still above a full turn
	h.MouseMove(512+1600, 384)
	if st.Model.Yaw != 140+440 {
		t.Errorf("yaw = %v, want %v", st.Model.Yaw, 140+440)
	}
}

func TestMouseClickRandomizesGround(t *testing.T) {
	h, st, _, r := newTestHandler()
	for i := range 100 {
		h.MouseClick(10, 20, glfw.MouseButtonLeft)
		for ch, v := range st.GroundColor {
			if v < 0 || v >= 1 {
				t.Fatalf("click %d: channel %d = %v outside [0,1)", i, ch, v)
			}
		}
		if r.n != i+1 {
			t.Fatalf("click %d: %d redraws", i, r.n)
		}
	}
	if st.GroundColor == scene.DefaultGroundColor {
		t.Error("ground color never changed")
	}
}

func TestDispatch(t *testing.T) {
	h, st, w, r := newTestHandler()

	events := []Event{
		KeyDown(glfw.KeyW),
		KeyUp(glfw.KeyW),
		MouseMove(514, 384),
		MouseButton(1, 1, glfw.MouseButtonRight),
		Resize(2048, 1536),
	}
	for _, e := range events {
		if h.Dispatch(e) {
			t.Fatalf("%v should not quit", e.Kind)
		}
	}
	if st.Model.Translation.Y() != 1 || st.Model.Yaw != 1 {
		t.Errorf("model = %+v", st.Model)
	}
	if h.Held(glfw.KeyW) || len(w.calls) != 1 || r.n != 1 {
		t.Errorf("held=%v warps=%d redraws=%d", h.Held(glfw.KeyW), len(w.calls), r.n)
	}
	if !h.Dispatch(Quit()) {
		t.Error("quit event should quit")
	}
}

func TestResizeLeavesSceneAlone(t *testing.T) {
	h, st, w, r := newTestHandler()
	before := *st

	if h.Dispatch(Resize(800, 600)) {
		t.Fatal("resize should not quit")
	}
	if *st != before || len(w.calls) != 0 || r.n != 0 {
		t.Errorf("resize touched the scene: state=%+v warps=%d redraws=%d", *st, len(w.calls), r.n)
	}
	if got := Resize(800, 600); got.Kind.String() != "resize" || got.Width != 800 || got.Height != 600 {
		t.Errorf("Resize(800, 600) = %+v", got)
	}
}

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	q.Push(KeyDown(glfw.KeyA))
	q.Push(MouseMove(1, 2))
	q.Push(Quit())

	got := q.Drain()
	if len(got) != 3 || got[0].Kind != EventKeyDown || got[1].Kind != EventMouseMove || got[2].Kind != EventQuit {
		t.Fatalf("drained %v", got)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Error("queue should be empty after drain")
	}
}

func TestRebind(t *testing.T) {
	h, st, _, _ := newTestHandler()
	h.Bindings().Bind(glfw.KeySpace, ActionMoveUp)
	h.Bindings().Unbind(glfw.KeyW)

	h.KeyDown(glfw.KeyW)
	h.KeyDown(glfw.KeySpace)
	if st.Model.Translation != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("translation = %v", st.Model.Translation)
	}
}
