package web

import "github.com/vovakirdan/tui-frogger/internal/core"

// keyMessage is sent by the browser on every key press.
type keyMessage struct {
	Key string `json:"key"`
}

// keyActions maps KeyboardEvent.code values to actions.
var keyActions = map[string]core.Action{
	"KeyW":       core.ActionUp,
	"ArrowUp":    core.ActionUp,
	"KeyS":       core.ActionDown,
	"ArrowDown":  core.ActionDown,
	"KeyA":       core.ActionLeft,
	"ArrowLeft":  core.ActionLeft,
	"KeyD":       core.ActionRight,
	"ArrowRight": core.ActionRight,
	"Space":      core.ActionRestart,
}

// keyAction returns the action for a key code, or ActionNone.
func keyAction(code string) core.Action {
	return keyActions[code]
}
