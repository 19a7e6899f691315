package game

import (
	"image"
	"testing"
)

func TestShipSprite_Dimensions(t *testing.T) {
	img := ShipSprite(false)

	b := img.Bounds()
	if b.Dx() != SpriteSize || b.Dy() != SpriteSize {
		t.Errorf("sprite is %dx%d, expected %dx%d", b.Dx(), b.Dy(), SpriteSize, SpriteSize)
	}
}

func TestShipSprite_ThrustAddsFlame(t *testing.T) {
	inert := countOpaque(t, ShipSprite(false))
	thrusting := countOpaque(t, ShipSprite(true))

	if inert == 0 {
		t.Fatal("inert hull rendered no pixels")
	}
	if thrusting <= inert {
		t.Errorf("thrust sprite has %d pixels, inert has %d; flame missing", thrusting, inert)
	}
}

func TestAsteroidSprite_Outline(t *testing.T) {
	img := AsteroidSprite()

	total := countOpaque(t, img)
	if total == 0 {
		t.Fatal("asteroid sprite is empty")
	}

	// The outline is hollow: the center pixel stays clear.
	if _, _, _, a := img.At(16, 16).RGBA(); a != 0 {
		t.Error("asteroid center filled; expected an outline only")
	}
}

func countOpaque(t *testing.T, img *image.RGBA) int {
	t.Helper()

	n := 0
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}
