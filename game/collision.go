package game

import "math"

// torusDistance returns the shortest distance between two points on the
// toroidal playfield. Each axis uses the minimum-image delta, so bodies
// straddling an edge still collide with bodies on the far side.
func torusDistance(a, b, bounds V2) float64 {
	dx := axisDelta(a.X, b.X, bounds.X)
	dy := axisDelta(a.Y, b.Y, bounds.Y)
	return math.Hypot(dx, dy)
}

// axisDelta returns the minimum-image separation along one axis.
func axisDelta(a, b, bound float64) float64 {
	d := math.Abs(a - b)
	if d > bound/2 {
		d = bound - d
	}
	return d
}

// circlesCollide reports whether two circles on the torus overlap.
func circlesCollide(aPos V2, aRadius float64, bPos V2, bRadius float64, bounds V2) bool {
	return torusDistance(aPos, bPos, bounds) < aRadius+bRadius
}
