package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionBuild
	ActionEdit
	ActionFire
	ActionReleaseCursor
	ActionConfirm
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveForward:   "forward",
	ActionMoveBack:      "back",
	ActionMoveLeft:      "left",
	ActionMoveRight:     "right",
	ActionBuild:         "build",
	ActionEdit:          "edit",
	ActionFire:          "fire",
	ActionReleaseCursor: "release-cursor",
	ActionConfirm:       "confirm",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "invalid"
	}
	return actionNames[a]
}

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionBuild: {
				// Placement fires on release
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionEdit: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionReleaseCursor: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
		},
	}
}

// ActionsForKey returns the actions bound to key, appended to dst.
func ActionsForKey(dst []ActionID, key ebiten.Key) []ActionID {
	for action, binding := range Input.Bindings {
		for _, k := range binding.Keys {
			if k == key {
				dst = append(dst, action)
				break
			}
		}
	}
	return dst
}

// ActionsForMouseButton returns the actions bound to button, appended to dst.
func ActionsForMouseButton(dst []ActionID, button ebiten.MouseButton) []ActionID {
	for action, binding := range Input.Bindings {
		for _, b := range binding.MouseButtons {
			if b == button {
				dst = append(dst, action)
				break
			}
		}
	}
	return dst
}
