package game

import (
	"math"
	"testing"
)

func TestShip_TurnAccumulatesAngle(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	for i := 0; i < 10; i++ {
		ship.Step(0.1, false, false, true)
	}

	// One second of right turn adds angularSpeed radians.
	if math.Abs(ship.Angle-cfg.AngularSpeed) > 1e-9 {
		t.Errorf("angle = %v, expected %v", ship.Angle, cfg.AngularSpeed)
	}
}

func TestShip_BothTurnsCancel(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	ship.Step(0.5, false, true, true)

	if ship.Angle != 0 {
		t.Errorf("angle = %v, expected 0 with both turns held", ship.Angle)
	}
}

func TestShip_AngleUnbounded(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	// Three full seconds of turning sweeps past 2*pi without normalization.
	for i := 0; i < 30; i++ {
		ship.Step(0.1, false, false, true)
	}

	want := 3 * cfg.AngularSpeed
	if math.Abs(ship.Angle-want) > 1e-9 {
		t.Errorf("angle = %v, expected %v", ship.Angle, want)
	}
}

func TestShip_ThrustAcceleratesAlongFacing(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	ship.Step(0.5, true, false, false)

	facing := ship.Facing()
	speed := math.Hypot(ship.Momentum.Vel.X, ship.Momentum.Vel.Y)
	if math.Abs(speed-cfg.ThrustAccel*0.5) > 1e-9 {
		t.Errorf("speed = %v, expected %v", speed, cfg.ThrustAccel*0.5)
	}

	dot := ship.Momentum.Vel.X*facing.X + ship.Momentum.Vel.Y*facing.Y
	if math.Abs(dot-speed) > 1e-9 {
		t.Error("velocity not aligned with facing")
	}
}

func TestShip_NoThrustIsDrift(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)
	ship.Momentum.Vel = V2{X: 60, Y: 0}

	ship.Step(1.0, false, false, false)

	if ship.Momentum.Vel != (V2{X: 60, Y: 0}) {
		t.Errorf("velocity changed without thrust: %v", ship.Momentum.Vel)
	}
	if math.Abs(ship.Momentum.Pos.X-460) > 1e-9 {
		t.Errorf("position X = %v, expected 460", ship.Momentum.Pos.X)
	}
}

func TestShip_ThrustFlagTracksInput(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	ship.Step(0.1, true, false, false)
	if !ship.Thrust {
		t.Error("thrust flag not set while thrusting")
	}

	ship.Step(0.1, false, false, false)
	if ship.Thrust {
		t.Error("thrust flag still set after coasting")
	}
}
