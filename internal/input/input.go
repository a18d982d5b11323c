package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer command, not a physical key.
type Action int

const (
	ActionPlace Action = iota
	ActionReseed
	ActionToggleCaves
	ActionToggleProfiling
	ActionToggleHUD
	ActionScreenshot
	ActionQuit
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	ActionPlace:           "place",
	ActionReseed:          "reseed",
	ActionToggleCaves:     "toggle_caves",
	ActionToggleProfiling: "toggle_profiling",
	ActionToggleHUD:       "toggle_hud",
	ActionScreenshot:      "screenshot",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps GLFW keys and mouse buttons to actions and tracks which
// actions were pressed since the last PostUpdate.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyR, ActionReseed)
	im.BindKey(glfw.KeyC, ActionToggleCaves)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyH, ActionToggleHUD)
	im.BindKey(glfw.KeyF2, ActionScreenshot)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionPlace)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionPlace)

	return im
}

// BindKey adds action to key. A key may drive several actions and several
// keys may drive one action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key.
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton adds action to a mouse button.
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

func (im *InputManager) update(actions []Action, pressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range actions {
		// Edges are latched when the event arrives so a press and release
		// within one frame still counts.
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}

// HandleKeyEvent processes one GLFW key event.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, ok := im.keyToActions[key]
	im.mu.RUnlock()
	if !ok {
		return
	}
	im.update(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes one GLFW mouse button event.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, ok := im.mouseButtonToActions[button]
	im.mu.RUnlock()
	if !ok {
		return
	}
	im.update(actions, action == glfw.Press)
}

// PostUpdate clears the edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive reports whether the action is currently held.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action was pressed this frame.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action was released this frame.
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
