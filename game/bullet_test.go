package game

import (
	"math"
	"testing"
)

func TestNewBullet_SpawnsAtNose(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)

	b := NewBullet(ship, cfg.BulletSpeed)

	// Heading east at angle zero, the muzzle sits one nose offset to the right.
	want := V2{X: 400 + shipNoseOffset, Y: 300}
	if !approxV2(b.Momentum.Pos, want, 1e-9) {
		t.Errorf("bullet position = %v, expected %v", b.Momentum.Pos, want)
	}
}

func TestNewBullet_InheritsShipVelocity(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)
	ship.Momentum.Vel = V2{X: 50, Y: -30}

	b := NewBullet(ship, cfg.BulletSpeed)

	want := V2{X: 50 + cfg.BulletSpeed, Y: -30}
	if !approxV2(b.Momentum.Vel, want, 1e-9) {
		t.Errorf("bullet velocity = %v, expected %v", b.Momentum.Vel, want)
	}
}

func TestNewBullet_NoseWrapsAtEdge(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: float64(cfg.ScreenWidth) - 5, Y: 300}, cfg)

	b := NewBullet(ship, cfg.BulletSpeed)

	wantX := shipNoseOffset - 5
	if math.Abs(b.Momentum.Pos.X-wantX) > 1e-9 {
		t.Errorf("bullet X = %v, expected %v after wrap", b.Momentum.Pos.X, wantX)
	}
}

func TestBullet_Expiry(t *testing.T) {
	cfg := DefaultConfig()
	ship := NewShip(V2{X: 400, Y: 300}, cfg)
	b := NewBullet(ship, cfg.BulletSpeed)

	steps := int(cfg.BulletLifetime/0.05) - 1
	for i := 0; i < steps; i++ {
		b.Step(0.05)
		if b.Expired(cfg.BulletLifetime) {
			t.Fatalf("bullet expired early at age %v", b.Age)
		}
	}

	b.Step(0.1)
	if !b.Expired(cfg.BulletLifetime) {
		t.Errorf("bullet alive at age %v past lifetime %v", b.Age, cfg.BulletLifetime)
	}
}
