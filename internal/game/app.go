package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"model-transforms/internal/config"
	"model-transforms/internal/graphics/renderer"
	"model-transforms/internal/input"
	"model-transforms/internal/profiling"
	"model-transforms/internal/scene"
)

var (
	// ErrPlatformInit wraps failures to start the windowing backend.
	ErrPlatformInit = errors.New("unable to initialize windowing")
	// ErrWindow wraps failures to create the window or its context.
	ErrWindow = errors.New("unable to create window")
)

// LoopState is the state of the event loop
type LoopState int

const (
	StateRunning LoopState = iota
	StateTerminated
)

func (s LoopState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "terminated"
}

// SceneRenderer draws one frame of the scene into the back buffer
type SceneRenderer interface {
	DrawFrame(state *scene.State)
	SetStats(stats renderer.FrameStats)
	UpdateViewport(width, height int)
	Dispose()
}

// RendererFactory creates the renderer once the context is current.
type RendererFactory func(width, height int) (SceneRenderer, error)

// App runs the poll, dispatch, draw loop
type App struct {
	window   Window
	renderer SceneRenderer
	events   *input.Queue
	handler  *input.Handler
	scene    *scene.State

	loop       LoopState
	fpsLimiter *FPSLimiter

	framesDrawn  int
	frames       int
	fps          int
	lastFPSCheck time.Time
}

// NewApp wires the input handler to the scene state, the window's pointer
// and the app's own redraw. rng may be nil.
func NewApp(window Window, r SceneRenderer, events *input.Queue, st *scene.State, rng *rand.Rand) *App {
	a := &App{
		window:       window,
		renderer:     r,
		events:       events,
		scene:        st,
		loop:         StateRunning,
		fpsLimiter:   NewFPSLimiter(),
		lastFPSCheck: time.Now(),
	}
	a.handler = input.NewHandler(st, rng, window, a)
	return a
}

// Run ticks until the loop terminates
func (a *App) Run() {
	for a.loop == StateRunning {
		a.Tick()
	}
}

// Tick runs one loop iteration: poll, dispatch every pending event, then
// draw and present one frame. A quit event terminates the loop at once;
// the rest of the batch is dropped and no further frame is drawn.
func (a *App) Tick() {
	if a.loop != StateRunning {
		return
	}

	profiling.ResetFrame()
	start := time.Now()

	func() { defer profiling.Track("glfw.PollEvents")(); a.window.PollEvents() }()

	for _, e := range a.events.Drain() {
		if e.Kind == input.EventResize {
			a.renderer.UpdateViewport(e.Width, e.Height)
			continue
		}
		if a.handler.Dispatch(e) {
			a.loop = StateTerminated
			return
		}
	}

	a.drawFrame()

	if d := time.Since(start); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.fpsLimiter.Wait()
}

// Redraw draws and presents a frame immediately
func (a *App) Redraw() {
	a.drawFrame()
}

func (a *App) drawFrame() {
	a.renderer.DrawFrame(a.scene)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.framesDrawn++
	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		a.fps = a.frames
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}
	a.renderer.SetStats(renderer.FrameStats{
		FPS:        a.fps,
		RenderTime: profiling.SumWithPrefix("renderer."),
	})
}

// State returns the loop state
func (a *App) State() LoopState {
	return a.loop
}

// FramesDrawn returns how many frames were presented so far
func (a *App) FramesDrawn() int {
	return a.framesDrawn
}

// Scene returns the scene state the app mutates
func (a *App) Scene() *scene.State {
	return a.scene
}

// Run starts the platform, opens the window, builds the renderer and runs
// the loop until quit. Every resource acquired is released before Run
// returns. Startup failures return an error before any frame is drawn.
func Run(p Platform, newRenderer RendererFactory) error {
	if err := p.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}
	defer p.Terminate()

	events := &input.Queue{}
	window, err := p.OpenWindow(events)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindow, err)
	}
	defer window.Destroy()

	width, height := window.FramebufferSize()
	r, err := newRenderer(width, height)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer r.Dispose()

	app := NewApp(window, r, events, scene.NewState(config.GetShowHUD()), nil)
	app.Run()

	log.Printf("Quit after %d frames", app.FramesDrawn())
	return nil
}
