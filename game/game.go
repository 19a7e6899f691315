// Package game implements the core of a toroidal-playfield asteroids
// game: the vector and kinematic primitives, the debounced key state
// machine, the ship, asteroid, and bullet entities, and the frame driver
// that steps them against wall-clock time.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxFrameDelta clamps the measured frame time so a stall (window drag,
// system sleep) does not teleport every body on the next frame.
const maxFrameDelta = 0.1

// shipBlinkHz is the blink rate of the ship while invincible.
const shipBlinkHz = 10.0

// Game is the frame driver. It owns every entity, the input state, and
// the renderer, and implements ebiten.Game. Strictly single-threaded:
// Update and Draw run on the same goroutine, once per frame.
type Game struct {
	cfg      Config
	logger   *log.Logger
	rng      *rand.Rand
	renderer *Renderer

	keys Keys
	poll func() []KeyEvent

	ship      *Ship
	asteroids []Asteroid
	bullets   []Bullet

	score int
	lives int
	wave  int

	paused   bool
	gameOver bool

	invincible   float64 // respawn grace left, seconds
	fireCooldown float64 // time until the next shot, seconds
	waveTimer    float64 // counts up while the field is clear

	pauseWasDown bool
	fireWasDown  bool

	lastUpdate time.Time
}

// NewGame creates a fresh session with wave one already spawned.
func NewGame(cfg Config, logger *log.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:        cfg,
		logger:     logger,
		rng:        rand.New(rand.NewSource(seed)),
		renderer:   NewRenderer(),
		keys:       NewKeys(),
		poll:       pollKeyEvents,
		lastUpdate: time.Now(),
	}
	g.restart()

	logger.Info("game created",
		"bounds", cfg.Bounds(),
		"seed", seed,
	)
	return g
}

// Update runs one frame: poll input, honor quit, then step the world by
// the measured wall-clock delta. Quitting happens before any stepping or
// rendering of the frame.
func (g *Game) Update() error {
	g.keys.Update(g.poll())
	if g.keys.Quit.Down() {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	pauseDown := g.keys.Pause.Down()
	if pauseDown && !g.pauseWasDown && !g.gameOver {
		g.paused = !g.paused
	}
	g.pauseWasDown = pauseDown

	fireDown := g.keys.Fire.Down()
	if g.gameOver {
		if fireDown && !g.fireWasDown {
			g.logger.Info("new session")
			g.restart()
		}
		g.fireWasDown = fireDown
		return nil
	}
	g.fireWasDown = fireDown

	if g.paused {
		return nil
	}

	g.stepWorld(dt)
	return nil
}

// Draw renders the current state. All drawing is delegated to the
// renderer; a draw failure inside Ebiten is fatal to the process.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// restart resets the whole session: ship centered, score and lives back
// to their starting values, wave one spawned.
func (g *Game) restart() {
	g.ship = NewShip(g.center(), g.cfg)
	g.bullets = nil
	g.score = 0
	g.lives = g.cfg.Lives
	g.wave = 0
	g.paused = false
	g.gameOver = false
	g.invincible = 0
	g.fireCooldown = 0
	g.startWave()
}

func (g *Game) center() V2 {
	b := g.cfg.Bounds()
	return V2{X: b.X / 2, Y: b.Y / 2}
}

// spawnSafeDistance keeps fresh asteroids from materializing on top of
// the ship.
const spawnSafeDistance = 3 * AsteroidInitialRadius

// startWave spawns the next wave at the playfield edges.
func (g *Game) startWave() {
	g.wave++
	g.waveTimer = 0

	count := g.cfg.InitialAsteroids + g.wave - 1
	g.asteroids = g.asteroids[:0]
	for i := 0; i < count; i++ {
		g.asteroids = append(g.asteroids, g.spawnAwayFromShip())
	}
	g.logger.Debug("wave started", "wave", g.wave, "asteroids", count)
}

// spawnAwayFromShip draws edge spawns until one clears the ship's safety
// distance. On a playfield larger than the safety disc a handful of draws
// always suffices; the last draw is taken as-is if they somehow don't.
func (g *Game) spawnAwayFromShip() Asteroid {
	bounds := g.cfg.Bounds()
	var a Asteroid
	for attempt := 0; attempt < 10; attempt++ {
		a = SpawnEdgeAsteroid(g.rng, bounds)
		if torusDistance(a.Momentum.Pos, g.ship.Momentum.Pos, bounds) > spawnSafeDistance {
			return a
		}
	}
	return a
}

// stepWorld advances every live entity by dt seconds and resolves hits.
func (g *Game) stepWorld(dt float64) {
	g.ship.Step(dt, g.keys.Thrust.Down(), g.keys.Left.Down(), g.keys.Right.Down())

	if g.invincible > 0 {
		g.invincible -= dt
	}

	g.fireCooldown -= dt
	if g.keys.Fire.Down() && g.fireCooldown <= 0 {
		g.bullets = append(g.bullets, NewBullet(g.ship, g.cfg.BulletSpeed))
		g.fireCooldown = g.cfg.FireCooldown
	}

	for i := range g.asteroids {
		g.asteroids[i].Step(dt)
	}

	alive := g.bullets[:0]
	for i := range g.bullets {
		b := g.bullets[i]
		b.Step(dt)
		if !b.Expired(g.cfg.BulletLifetime) {
			alive = append(alive, b)
		}
	}
	g.bullets = alive

	g.resolveBulletHits()
	g.resolveShipHits()

	if len(g.asteroids) == 0 {
		g.waveTimer += dt
		if g.waveTimer >= g.cfg.WaveCooldown {
			g.startWave()
		}
	}
}

// resolveBulletHits splits or destroys asteroids struck by bullets. The
// struck asteroid is replaced by its fragments; the bullet dies with it.
func (g *Game) resolveBulletHits() {
	bounds := g.cfg.Bounds()

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		hit := -1
		for i := range g.asteroids {
			a := &g.asteroids[i]
			if circlesCollide(b.Momentum.Pos, bulletRadius, a.Momentum.Pos, a.Radius, bounds) {
				hit = i
				break
			}
		}
		if hit < 0 {
			bullets = append(bullets, b)
			continue
		}

		target := g.asteroids[hit]
		g.score += scoreForRadius(target.Radius)
		g.asteroids = append(g.asteroids[:hit], g.asteroids[hit+1:]...)
		if a1, a2, ok := target.Split(g.rng); ok {
			g.asteroids = append(g.asteroids, a1, a2)
		}
	}
	g.bullets = bullets
}

// resolveShipHits costs a life on asteroid contact and respawns the ship
// centered with a grace period, or ends the session on the last life.
func (g *Game) resolveShipHits() {
	if g.invincible > 0 {
		return
	}

	bounds := g.cfg.Bounds()
	for i := range g.asteroids {
		a := &g.asteroids[i]
		if !circlesCollide(g.ship.Momentum.Pos, shipHitRadius, a.Momentum.Pos, a.Radius, bounds) {
			continue
		}

		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			g.logger.Info("game over", "score", g.score, "wave", g.wave)
			return
		}
		g.ship = NewShip(g.center(), g.cfg)
		g.invincible = g.cfg.Invincibility
		return
	}
}

// shipVisible blinks the ship while it is invincible after a respawn.
func (g *Game) shipVisible() bool {
	if g.invincible <= 0 {
		return true
	}
	return int(g.invincible*shipBlinkHz*2)%2 == 0
}
