package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionReloadShaders
	ActionCount // Sentinel value for array sizing
)

// KeySource reports the last known state of a key. *glfw.Window satisfies it.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// InputManager polls bound keys once per frame and maps them to actions
type InputManager struct {
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyF5, ActionReloadShaders)
	return im
}

// BindKey binds a physical key to a logical action. Several keys may map to
// the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// Poll samples every bound key from src. Call once per frame, before any
// IsActive or JustPressed checks.
func (im *InputManager) Poll(src KeySource) {
	im.prevState = im.currentState
	var next [ActionCount]bool
	for key, actions := range im.keyToActions {
		if src.GetKey(key) != glfw.Press {
			continue
		}
		for _, act := range actions {
			next[act] = true
		}
	}
	im.currentState = next
}

// IsActive returns true if the action is currently held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only on the frame the action went down
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action] && !im.prevState[action]
}
