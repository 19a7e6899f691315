package game

// Momentum is the kinematic state of a body on the toroidal playfield:
// position, velocity, and the playfield bounds it wraps against. Bounds
// are fixed at construction; each body owns its own copy.
type Momentum struct {
	Pos    V2
	Vel    V2
	Bounds V2
}

// NewMomentum creates a kinematic body with the given position, velocity,
// and playfield bounds.
func NewMomentum(pos, vel, bounds V2) Momentum {
	return Momentum{Pos: pos, Vel: vel, Bounds: bounds}
}

// Integrate advances the body by dt seconds under constant acceleration.
// The position update uses the pre-update velocity plus the analytic
// half-at-squared term, so thrust displacement stays exact across variable
// frame times; velocity is then updated linearly.
func (m *Momentum) Integrate(dt float64, accel V2) {
	m.Pos = m.Pos.
		Add(m.Vel.Scale(dt)).
		Add(accel.Scale(0.5 * dt * dt)).
		Wrap(m.Bounds)
	m.Vel = m.Vel.Add(accel.Scale(dt))
}

// Drift advances the body with zero acceleration (coasting).
func (m *Momentum) Drift(dt float64) {
	m.Integrate(dt, V2{})
}

// ApplyImpulse adds a velocity delta without touching the position.
func (m *Momentum) ApplyImpulse(dv V2) {
	m.Vel = m.Vel.Add(dv)
}
