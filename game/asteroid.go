package game

import (
	"math"
	"math/rand"
)

const (
	// AsteroidInitialRadius is the radius of a freshly spawned asteroid.
	AsteroidInitialRadius = 32.0

	// AsteroidMinRadius is the smallest radius that still splits; a
	// fragment below it is destroyed outright.
	AsteroidMinRadius = 7.0

	// asteroidSplitImpulse scales the random recoil of fragments. The
	// per-axis impulse bound is this value divided by the fragment
	// radius, so smaller rocks fly apart harder.
	asteroidSplitImpulse = 5000.0

	// Edge-spawn speed range in pixels per second.
	asteroidMinSpeed = 40.0
	asteroidMaxSpeed = 120.0
)

// Asteroid is a coasting destructible body.
type Asteroid struct {
	Momentum Momentum
	Radius   float64
}

// NewAsteroid creates an asteroid with the given body and radius.
func NewAsteroid(m Momentum, radius float64) Asteroid {
	return Asteroid{Momentum: m, Radius: radius}
}

// NewBigAsteroid creates a full-size asteroid with the given body.
func NewBigAsteroid(m Momentum) Asteroid {
	return NewAsteroid(m, AsteroidInitialRadius)
}

// Step advances the asteroid by dt seconds. Asteroids coast at constant
// velocity; there is no drag.
func (a *Asteroid) Step(dt float64) {
	a.Momentum.Drift(dt)
}

// Split breaks the asteroid into two half-radius fragments, each cloning
// the parent's body plus an independent random impulse drawn uniformly
// from [-dv, dv] per axis with dv = asteroidSplitImpulse / newRadius.
// Below the minimum radius the asteroid is destroyed with no fragments
// and ok is false.
func (a Asteroid) Split(rng *rand.Rand) (first, second Asteroid, ok bool) {
	newRadius := a.Radius / 2
	if newRadius < AsteroidMinRadius {
		return Asteroid{}, Asteroid{}, false
	}

	dv := asteroidSplitImpulse / newRadius
	m1 := a.Momentum
	m2 := a.Momentum
	m1.ApplyImpulse(V2{X: uniform(rng, dv), Y: uniform(rng, dv)})
	m2.ApplyImpulse(V2{X: uniform(rng, dv), Y: uniform(rng, dv)})

	return NewAsteroid(m1, newRadius), NewAsteroid(m2, newRadius), true
}

// SpawnEdgeAsteroid creates a full-size asteroid on a random playfield
// edge, heading toward a random point in the opposite half so it always
// drifts inward, away from the center respawn point.
func SpawnEdgeAsteroid(rng *rand.Rand, bounds V2) Asteroid {
	speed := asteroidMinSpeed + rng.Float64()*(asteroidMaxSpeed-asteroidMinSpeed)

	var pos, target V2
	switch rng.Intn(4) {
	case 0: // left edge
		pos = V2{X: 0, Y: rng.Float64() * bounds.Y}
		target = V2{X: bounds.X/2 + rng.Float64()*bounds.X/2, Y: rng.Float64() * bounds.Y}
	case 1: // right edge
		pos = V2{X: bounds.X - 1, Y: rng.Float64() * bounds.Y}
		target = V2{X: rng.Float64() * bounds.X / 2, Y: rng.Float64() * bounds.Y}
	case 2: // top edge
		pos = V2{X: rng.Float64() * bounds.X, Y: 0}
		target = V2{X: rng.Float64() * bounds.X, Y: bounds.Y/2 + rng.Float64()*bounds.Y/2}
	default: // bottom edge
		pos = V2{X: rng.Float64() * bounds.X, Y: bounds.Y - 1}
		target = V2{X: rng.Float64() * bounds.X, Y: rng.Float64() * bounds.Y / 2}
	}

	angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
	vel := V2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	return NewBigAsteroid(NewMomentum(pos, vel, bounds))
}

// scoreForRadius returns the points awarded for destroying an asteroid of
// the given radius: smaller rocks are worth more.
func scoreForRadius(radius float64) int {
	switch {
	case radius >= AsteroidInitialRadius:
		return 20
	case radius >= AsteroidInitialRadius/2:
		return 50
	default:
		return 100
	}
}

// uniform draws a uniform sample from [-limit, limit].
func uniform(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}
