package game

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// SpriteSize is the side length of the prebaked sprite images in pixels.
const SpriteSize = 32

var spriteWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Hand-placed vertices of the 32x32 ship artwork. The nose points up
// (toward y=0); the renderer compensates when rotating by heading.
var (
	shipHull  = []image.Point{{7, 31}, {16, 0}, {25, 31}, {16, 24}}
	shipFlame = []image.Point{{12, 28}, {16, 31}, {20, 28}, {16, 24}}
)

// ShipSprite rasterizes the ship artwork: the hull outline, plus a filled
// engine flame when thrust is on. Baked once and reused for every frame.
func ShipSprite(thrust bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	strokePolygon(img, shipHull, spriteWhite)
	if thrust {
		fillPolygon(img, shipFlame, spriteWhite)
	}
	return img
}

// AsteroidSprite rasterizes a circle outline filling the sprite square.
// The renderer scales it to each asteroid's radius at draw time.
func AsteroidSprite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	const cx, cy, r = 15.5, 15.5, 15.0
	steps := int(r*6 + 6)
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		x := int(cx + math.Cos(angle)*r)
		y := int(cy + math.Sin(angle)*r)
		img.SetRGBA(x, y, spriteWhite)
	}
	return img
}

// strokePolygon draws the closed outline of a polygon.
func strokePolygon(img *image.RGBA, pts []image.Point, clr color.RGBA) {
	for i := range pts {
		plotLine(img, pts[i], pts[(i+1)%len(pts)], clr)
	}
}

// plotLine draws a line segment by stepping along its longer axis.
func plotLine(img *image.RGBA, a, b image.Point, clr color.RGBA) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := maxInt(absInt(dx), absInt(dy))
	if steps == 0 {
		img.SetRGBA(a.X, a.Y, clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + int(math.Round(float64(dx)*t))
		y := a.Y + int(math.Round(float64(dy)*t))
		img.SetRGBA(x, y, clr)
	}
}

// fillPolygon fills a polygon with even-odd scanline rasterization.
func fillPolygon(img *image.RGBA, pts []image.Point, clr color.RGBA) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= sy) == (by <= sy) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x) <= xs[i+1]; x++ {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
