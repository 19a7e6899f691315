package game

// KeyStatus is the per-control tri-state: Up (not pressed), Down (pressed
// this frame), Held (pressed on an earlier frame and not yet released).
type KeyStatus int

const (
	StatusUp KeyStatus = iota
	StatusHeld
	StatusDown
)

// Step advances the status one frame: Down becomes Held, Held and Up are
// fixed points.
func (s KeyStatus) Step() KeyStatus {
	if s == StatusDown {
		return StatusHeld
	}
	return s
}

// Down reports whether the control is currently active (Down or Held).
func (s KeyStatus) Down() bool {
	return s == StatusDown || s == StatusHeld
}

// Control identifies one of the logical game controls.
type Control int

const (
	ControlThrust Control = iota
	ControlLeft
	ControlRight
	ControlFire
	ControlPause
	ControlQuit
)

// KeyEvent is a discrete press or release edge for a logical control.
// The input poller only emits real transitions; OS auto-repeat never
// produces events.
type KeyEvent struct {
	Control Control
	Pressed bool
}

// Keys holds the debounced state of all six game controls.
type Keys struct {
	Thrust KeyStatus
	Left   KeyStatus
	Right  KeyStatus
	Fire   KeyStatus
	Pause  KeyStatus
	Quit   KeyStatus
}

// NewKeys returns a key state with every control up.
func NewKeys() Keys {
	return Keys{}
}

// Update applies one frame's worth of edge events, then steps every
// control exactly once. The step must come after event application so a
// press made this frame persists as Held on the following frames without
// needing further events.
func (k *Keys) Update(events []KeyEvent) {
	for _, ev := range events {
		status := StatusUp
		if ev.Pressed {
			status = StatusDown
		}
		switch ev.Control {
		case ControlThrust:
			k.Thrust = status
		case ControlLeft:
			k.Left = status
		case ControlRight:
			k.Right = status
		case ControlFire:
			k.Fire = status
		case ControlPause:
			k.Pause = status
		case ControlQuit:
			k.Quit = status
		}
	}

	k.Thrust = k.Thrust.Step()
	k.Left = k.Left.Step()
	k.Right = k.Right.Step()
	k.Fire = k.Fire.Step()
	k.Pause = k.Pause.Step()
	k.Quit = k.Quit.Step()
}
