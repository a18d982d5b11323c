package main

import (
	"fmt"
	"log"
	"time"

	"isocraft/internal/canvas"
	"isocraft/internal/game"
	"isocraft/internal/graphics"
	"isocraft/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GameLoop drives one window: poll input, draw the session into a CPU
// raster, then present it.
type GameLoop struct {
	window       *glfw.Window
	session      *game.Session
	presenter    *graphics.Presenter
	raster       *canvas.Raster
	inputManager *input.InputManager
}

func NewGameLoop(window *glfw.Window, s *game.Session, p *graphics.Presenter, r *canvas.Raster, im *input.InputManager) *GameLoop {
	return &GameLoop{
		window:       window,
		session:      s,
		presenter:    p,
		raster:       r,
		inputManager: im,
	}
}

// Run ticks until the window is asked to close.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	start := time.Now()

	glfw.PollEvents()
	gl.handleActions()
	gl.render()

	if d := time.Since(start); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", d, gl.session.Profile.TopN(5))
	}

	gl.inputManager.PostUpdate()
	gl.session.Limiter.Wait()
}

func (gl *GameLoop) render() {
	gl.session.Frame(gl.raster)
	gl.presenter.Present(gl.raster.Image())
	gl.window.SwapBuffers()
}

// resize follows the framebuffer, which differs from the window size on
// high-density displays.
func (gl *GameLoop) resize(fbWidth, fbHeight int) {
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.presenter.SetViewport(fbWidth, fbHeight)
	gl.session.Resize(fbWidth, fbHeight)
}

// pointer converts window coordinates to framebuffer pixels.
func (gl *GameLoop) pointer(x, y float64) (float64, float64) {
	winW, winH := gl.window.GetSize()
	fbW, fbH := gl.window.GetFramebufferSize()
	if winW == 0 || winH == 0 {
		return x, y
	}
	return x * float64(fbW) / float64(winW), y * float64(fbH) / float64(winH)
}

func (gl *GameLoop) handleActions() {
	im := gl.inputManager
	s := gl.session

	if im.JustPressed(input.ActionPlace) {
		s.CommitCursor()
	}
	if im.JustPressed(input.ActionReseed) {
		seed, err := game.RandomSeed()
		if err != nil {
			log.Printf("reseed: %v", err)
		} else {
			s.Reseed(seed)
		}
	}
	if im.JustPressed(input.ActionToggleCaves) {
		s.ToggleCaves()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.ToggleProfiling()
	}
	if im.JustPressed(input.ActionToggleHUD) {
		s.Renderer.HUD = !s.Renderer.HUD
	}
	if im.JustPressed(input.ActionScreenshot) {
		path := fmt.Sprintf("isocraft-%d-%s.png", s.World.Seed, time.Now().Format("20060102-150405"))
		if err := gl.raster.SavePNG(path); err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			log.Printf("screenshot saved to %s", path)
		}
	}
	if im.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
	}
}
