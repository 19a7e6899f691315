package game

import "math"

// V2 is a 2D vector. Values are immutable; every operation returns a new
// vector.
type V2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v V2) Add(o V2) V2 {
	return V2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies the vector by a scalar.
func (v V2) Scale(k float64) V2 {
	return V2{X: v.X * k, Y: v.Y * k}
}

// Wrap maps the vector onto a toroidal playfield of the given bounds,
// keeping each component in [0, bound). Adding the bound before the
// modulus handles one full wrap in the negative direction; excursions
// beyond a full bound in a single step are not supported.
func (v V2) Wrap(bounds V2) V2 {
	return V2{
		X: math.Mod(v.X+bounds.X, bounds.X),
		Y: math.Mod(v.Y+bounds.Y, bounds.Y),
	}
}
