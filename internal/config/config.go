package config

import "sync"

// Window and projection constants
const (
	WindowTitle  = "Model Transformations"
	WindowWidth  = 1024
	WindowHeight = 768

	// Bits per color channel; four channels give a 32-bit surface.
	ColorBits = 8
	DepthBits = 24

	// OrthoSize is the half extent of the orthographic view volume.
	OrthoSize = 10
	OrthoNear = 50
	OrthoFar  = -50
)

// Settings holds runtime-tunable configuration
type Settings struct {
	mu          sync.RWMutex
	fpsLimit    int
	showHUD     bool
	lookDivisor float32
}

var globalSettings = &Settings{
	fpsLimit:    120,
	showHUD:     false,
	lookDivisor: 2,
}

// GetFPSLimit returns the frame cap; 0 disables limiting.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.fpsLimit = limit
}

// GetShowHUD returns whether the overlay starts visible
func GetShowHUD() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.showHUD
}

// SetShowHUD sets whether the overlay starts visible
func SetShowHUD(show bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.showHUD = show
}

// GetLookDivisor returns the divisor applied to pointer offsets before
// they are used as rotation angles in degrees.
func GetLookDivisor() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.lookDivisor
}

// SetLookDivisor sets the mouse-look divisor
func SetLookDivisor(d float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if d < 0.1 {
		d = 0.1
	}
	globalSettings.lookDivisor = d
}

// WindowCenter returns the pointer position mouse-look recenters to.
func WindowCenter() (float64, float64) {
	return WindowWidth / 2.0, WindowHeight / 2.0
}
