package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var colorBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

// Renderer draws the playfield and HUD. It owns the prebaked sprite
// textures for the process lifetime.
type Renderer struct {
	shipThrust *ebiten.Image
	shipInert  *ebiten.Image
	asteroid   *ebiten.Image
}

// NewRenderer creates a renderer with no textures yet; they are baked on
// the first frame.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ensureSprites bakes the sprite textures once. Deferred to first use so
// no graphics resources are touched before the frame loop runs.
func (r *Renderer) ensureSprites() {
	if r.shipThrust != nil {
		return
	}
	r.shipThrust = ebiten.NewImageFromImage(ShipSprite(true))
	r.shipInert = ebiten.NewImageFromImage(ShipSprite(false))
	r.asteroid = ebiten.NewImageFromImage(AsteroidSprite())
}

// Render draws one frame of the game state.
func (r *Renderer) Render(screen *ebiten.Image, g *Game) {
	r.ensureSprites()
	screen.Fill(colorBackground)

	for i := range g.asteroids {
		r.drawAsteroid(screen, &g.asteroids[i])
	}
	for i := range g.bullets {
		pos := g.bullets[i].Momentum.Pos
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), bulletRadius, color.White, true)
	}
	if !g.gameOver && g.shipVisible() {
		r.drawShip(screen, g.ship)
	}
	r.drawHUD(screen, g)
}

func (r *Renderer) drawShip(screen *ebiten.Image, ship *Ship) {
	img := r.shipInert
	if ship.Thrust {
		img = r.shipThrust
	}

	op := &ebiten.DrawImageOptions{}
	half := float64(SpriteSize) / 2
	op.GeoM.Translate(-half, -half)
	// The artwork's nose points up while heading 0 means east, hence the
	// quarter-turn offset.
	op.GeoM.Rotate(ship.Angle + math.Pi/2)
	op.GeoM.Translate(ship.Momentum.Pos.X, ship.Momentum.Pos.Y)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawAsteroid(screen *ebiten.Image, a *Asteroid) {
	op := &ebiten.DrawImageOptions{}
	half := float64(SpriteSize) / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(a.Radius/half, a.Radius/half)
	op.GeoM.Translate(a.Momentum.Pos.X, a.Momentum.Pos.Y)
	screen.DrawImage(r.asteroid, op)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("SCORE %05d", g.score), face, 8, 16, color.White)
	text.Draw(screen, fmt.Sprintf("WAVE %d", g.wave), face, 8, 32, color.White)
	text.Draw(screen, fmt.Sprintf("SHIPS %d", g.lives), face, 8, 48, color.White)

	switch {
	case g.gameOver:
		r.drawBanner(screen, g, "GAME OVER", "press fire to launch again")
	case g.paused:
		r.drawBanner(screen, g, "PAUSED", "press P to resume")
	}
}

// drawBanner centers a two-line message on the screen.
func (r *Renderer) drawBanner(screen *ebiten.Image, g *Game, title, subtitle string) {
	face := basicfont.Face7x13
	w := g.cfg.ScreenWidth
	h := g.cfg.ScreenHeight

	titleX := (w - len(title)*face.Advance) / 2
	text.Draw(screen, title, face, titleX, h/2-8, color.White)

	subX := (w - len(subtitle)*face.Advance) / 2
	text.Draw(screen, subtitle, face, subX, h/2+12, color.White)
}
