package game

import "math"

// shipHitRadius is the ship's collision radius in pixels. The hull fits
// the 32x32 sprite with some margin.
const shipHitRadius = 12.0

// Ship is the player-controlled entity: a heading, a thrust flag kept for
// rendering, and a kinematic body.
type Ship struct {
	// Angle is the heading in radians, 0 pointing east. It grows without
	// bound over a session; only cos/sin are ever taken from it.
	Angle float64

	// Thrust records whether the engine fired last frame, so the renderer
	// can pick the flame sprite.
	Thrust bool

	Momentum Momentum

	thrustAccel  float64
	angularSpeed float64
}

// NewShip creates a ship at rest at the given position.
func NewShip(pos V2, cfg Config) *Ship {
	return &Ship{
		Momentum:     NewMomentum(pos, V2{}, cfg.Bounds()),
		thrustAccel:  cfg.ThrustAccel,
		angularSpeed: cfg.AngularSpeed,
	}
}

// Step advances the ship by dt seconds under the given controls. Left and
// right both apply when both are held; the turns cancel out.
func (s *Ship) Step(dt float64, thrust, left, right bool) {
	s.Thrust = thrust
	if left {
		s.Angle -= s.angularSpeed * dt
	}
	if right {
		s.Angle += s.angularSpeed * dt
	}

	var accel V2
	if thrust {
		accel = s.Facing().Scale(s.thrustAccel)
	}
	s.Momentum.Integrate(dt, accel)
}

// Facing returns the unit vector of the ship's heading.
func (s *Ship) Facing() V2 {
	return V2{X: math.Cos(s.Angle), Y: math.Sin(s.Angle)}
}
