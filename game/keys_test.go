package game

import "testing"

func TestKeyStatus_Step(t *testing.T) {
	tests := []struct {
		name     string
		status   KeyStatus
		expected KeyStatus
	}{
		{name: "up_stays_up", status: StatusUp, expected: StatusUp},
		{name: "down_becomes_held", status: StatusDown, expected: StatusHeld},
		{name: "held_stays_held", status: StatusHeld, expected: StatusHeld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Step(); got != tt.expected {
				t.Errorf("Step() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestKeyStatus_Down(t *testing.T) {
	if StatusUp.Down() {
		t.Error("StatusUp reported as down")
	}
	if !StatusDown.Down() {
		t.Error("StatusDown not reported as down")
	}
	if !StatusHeld.Down() {
		t.Error("StatusHeld not reported as down")
	}
}

func TestKeys_PressThenHold(t *testing.T) {
	k := NewKeys()

	k.Update([]KeyEvent{{Control: ControlFire, Pressed: true}})
	// Events apply before the step, so a fresh press lands as Held by the
	// time this frame's status is read. Down() covers both states.
	if !k.Fire.Down() {
		t.Error("fire not down after press")
	}

	k.Update(nil)
	if k.Fire != StatusHeld {
		t.Errorf("fire = %v, expected held with no new events", k.Fire)
	}

	k.Update([]KeyEvent{{Control: ControlFire, Pressed: false}})
	if k.Fire.Down() {
		t.Error("fire still down after release")
	}
}

func TestKeys_IndependentControls(t *testing.T) {
	k := NewKeys()

	k.Update([]KeyEvent{
		{Control: ControlThrust, Pressed: true},
		{Control: ControlLeft, Pressed: true},
	})

	if !k.Thrust.Down() || !k.Left.Down() {
		t.Error("simultaneous presses not both registered")
	}
	if k.Right.Down() || k.Fire.Down() || k.Pause.Down() || k.Quit.Down() {
		t.Error("untouched controls reported down")
	}

	k.Update([]KeyEvent{{Control: ControlThrust, Pressed: false}})
	if k.Thrust.Down() {
		t.Error("thrust still down after release")
	}
	if !k.Left.Down() {
		t.Error("left released by thrust release")
	}
}

func TestKeys_PressAndReleaseSameFrame(t *testing.T) {
	k := NewKeys()

	k.Update([]KeyEvent{
		{Control: ControlPause, Pressed: true},
		{Control: ControlPause, Pressed: false},
	})

	if k.Pause.Down() {
		t.Error("pause down after press+release in one frame")
	}
}
