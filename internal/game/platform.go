package game

import (
	"fmt"

	"model-transforms/internal/config"
	"model-transforms/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the windowing and graphics backend
type Platform interface {
	Init() error
	OpenWindow(events *input.Queue) (Window, error)
	Terminate()
}

// Window is an open window with a current graphics context
type Window interface {
	input.Pointer
	// PollEvents delivers pending backend events into the queue given to
	// OpenWindow.
	PollEvents()
	SwapBuffers()
	FramebufferSize() (int, int)
	Destroy()
}

// GLFWPlatform opens a GLFW window with an OpenGL 4.1 core context
type GLFWPlatform struct{}

func (GLFWPlatform) Init() error {
	return glfw.Init()
}

func (GLFWPlatform) Terminate() {
	glfw.Terminate()
}

// OpenWindow creates the fixed-size double-buffered window, makes its
// context current and routes its callbacks into events.
func (GLFWPlatform) OpenWindow(events *input.Queue) (Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, config.ColorBits)
	glfw.WindowHint(glfw.GreenBits, config.ColorBits)
	glfw.WindowHint(glfw.BlueBits, config.ColorBits)
	glfw.WindowHint(glfw.AlphaBits, config.ColorBits)
	glfw.WindowHint(glfw.DepthBits, config.DepthBits)

	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}

	// Pacing is done by FPSLimiter
	glfw.SwapInterval(0)

	w := &glfwWindow{Window: window}
	w.bind(events)
	return w, nil
}

type glfwWindow struct {
	*glfw.Window
}

func (w *glfwWindow) bind(events *input.Queue) {
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			events.Push(input.KeyDown(key))
		case glfw.Release:
			events.Push(input.KeyUp(key))
		}
	})

	w.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		events.Push(input.MouseMove(xpos, ypos))
	})

	w.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		x, y := win.GetCursorPos()
		events.Push(input.MouseButton(x, y, button))
	})

	// Fires when the content scale changes even though the window is fixed size
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		events.Push(input.Resize(width, height))
	})

	w.SetCloseCallback(func(_ *glfw.Window) {
		events.Push(input.Quit())
	})
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) WarpPointer(x, y float64) {
	w.SetCursorPos(x, y)
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.GetFramebufferSize()
}
