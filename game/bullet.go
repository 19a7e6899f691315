package game

// bulletRadius is the collision radius of a bullet in pixels.
const bulletRadius = 2.0

// shipNoseOffset is the distance from the ship center to the muzzle.
const shipNoseOffset = 16.0

// Bullet is a short-lived projectile. It wraps like everything else and
// expires after a fixed flight time rather than at the screen edge.
type Bullet struct {
	Momentum Momentum
	Age      float64
}

// NewBullet fires a bullet from the ship's nose. The bullet inherits the
// ship's velocity with the muzzle speed added along the facing direction.
func NewBullet(ship *Ship, speed float64) Bullet {
	facing := ship.Facing()
	pos := ship.Momentum.Pos.
		Add(facing.Scale(shipNoseOffset)).
		Wrap(ship.Momentum.Bounds)
	vel := ship.Momentum.Vel.Add(facing.Scale(speed))
	return Bullet{
		Momentum: NewMomentum(pos, vel, ship.Momentum.Bounds),
	}
}

// Step advances the bullet by dt seconds.
func (b *Bullet) Step(dt float64) {
	b.Momentum.Drift(dt)
	b.Age += dt
}

// Expired reports whether the bullet has outlived the given lifetime.
func (b *Bullet) Expired(lifetime float64) bool {
	return b.Age >= lifetime
}
