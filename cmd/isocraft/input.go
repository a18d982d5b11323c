package main

import (
	"isocraft/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *GameLoop, im *input.InputManager) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		loop.session.PointerMove(loop.pointer(xpos, ypos))
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		// Pick under the press position before the place action fires.
		if action == glfw.Press {
			loop.session.PointerMove(loop.pointer(w.GetCursorPos()))
		}
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		loop.resize(fbWidth, fbHeight)
	})

	// Repaint while the user drags the window edge.
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.render()
	})
}
