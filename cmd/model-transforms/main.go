package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"model-transforms/internal/config"
	"model-transforms/internal/game"
	"model-transforms/internal/graphics/renderables/grass"
	"model-transforms/internal/graphics/renderables/hud"
	"model-transforms/internal/graphics/renderables/outline"
	"model-transforms/internal/graphics/renderables/solids"
	renderer "model-transforms/internal/graphics/renderer"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	closer.Bind(func() {
		log.Println("model-transforms: exiting")
	})

	err := applyFlags(os.Args[1:])
	if err == nil {
		err = game.Run(game.GLFWPlatform{}, newSceneRenderer)
	}
	exit(err)
}

// applyFlags parses command-line settings into config.
func applyFlags(args []string) error {
	fs := flag.NewFlagSet("model-transforms", flag.ContinueOnError)
	fps := fs.Int("fps", config.GetFPSLimit(), "frame cap, 0 for unlimited")
	showHUD := fs.Bool("hud", config.GetShowHUD(), "show the HUD overlay at start")
	look := fs.Float64("look", float64(config.GetLookDivisor()), "divisor from pointer offset to degrees")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config.SetFPSLimit(*fps)
	config.SetShowHUD(*showHUD)
	config.SetLookDivisor(float32(*look))
	return nil
}

func exitCode(err error) int {
	if err != nil {
		return closer.ExitCodeErr
	}
	return closer.ExitCodeOK
}

// exit runs the bound cleanups and ends the process; it does not return.
func exit(err error) {
	if err != nil {
		log.Println(err)
	}
	closer.Exit(exitCode(err))
	closer.Hold()
}

// newSceneRenderer builds the renderer with its features in draw order.
func newSceneRenderer(width, height int) (game.SceneRenderer, error) {
	r, err := renderer.NewRenderer(width, height,
		solids.NewSolids(),
		outline.NewOutline(),
		grass.NewGrass(),
		hud.NewHUD(),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}
