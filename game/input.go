package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps physical keys to logical controls. Several controls
// have an arrow-key and a WASD binding.
var keyBindings = []struct {
	key     ebiten.Key
	control Control
}{
	{ebiten.KeyArrowUp, ControlThrust},
	{ebiten.KeyW, ControlThrust},
	{ebiten.KeyArrowLeft, ControlLeft},
	{ebiten.KeyA, ControlLeft},
	{ebiten.KeyArrowRight, ControlRight},
	{ebiten.KeyD, ControlRight},
	{ebiten.KeySpace, ControlFire},
	{ebiten.KeyP, ControlPause},
	{ebiten.KeyQ, ControlQuit},
	{ebiten.KeyEscape, ControlQuit},
}

// pollKeyEvents drains this frame's key transitions into logical control
// events. Ebiten reports each physical transition exactly once, so OS
// auto-repeat never shows up here. A window close request becomes a
// synthetic quit press.
func pollKeyEvents() []KeyEvent {
	var events []KeyEvent
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, KeyEvent{Control: b.control, Pressed: true})
		}
		// Releasing one of two bindings must not release the control
		// while the other binding is still held.
		if inpututil.IsKeyJustReleased(b.key) && !controlPressed(b.control) {
			events = append(events, KeyEvent{Control: b.control, Pressed: false})
		}
	}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, KeyEvent{Control: ControlQuit, Pressed: true})
	}
	return events
}

// controlPressed reports whether any physical binding of the control is
// currently held.
func controlPressed(c Control) bool {
	for _, b := range keyBindings {
		if b.control == c && ebiten.IsKeyPressed(b.key) {
			return true
		}
	}
	return false
}
