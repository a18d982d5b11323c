package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"isocraft/internal/canvas"
	"isocraft/internal/config"
	"isocraft/internal/game"
	"isocraft/internal/graphics"
	"isocraft/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	if err := run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		closer.Fatalln(err)
	}
}

// run owns the window for its whole life. GLFW must be torn down on the
// locked main thread, so failures return here and the defers release
// everything before main exits.
func run(args []string) error {
	fs := flag.NewFlagSet("isocraft", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	seedFlag := fs.Int64("seed", -1, "world seed (random when negative and not configured)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *seedFlag)
	if err != nil {
		return err
	}
	seed, err := game.ResolveSeed(cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	session, err := game.NewSession(cfg, seed, fbW, fbH)
	if err != nil {
		return err
	}

	presenter, err := graphics.NewPresenter(fbW, fbH)
	if err != nil {
		return err
	}
	defer presenter.Dispose()
	presenter.Profile = session.Profile

	closer.Bind(func() {
		log.Printf("exit: seed %d, %d blocks placed", session.World.Seed, session.World.Overlay.Len())
	})

	im := input.NewInputManager()
	loop := NewGameLoop(window, session, presenter, canvas.NewRaster(fbW, fbH, session.Renderer.Background), im)
	setupInputHandlers(window, loop, im)

	loop.Run()
	return nil
}

func loadConfig(path string, seed int64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	return cfg.WithSeedFlag(seed)
}
