package vector

import "math"

// Vec3 is a 3-component float64 vector with value semantics.
// The zero value is the zero vector and is ready to use.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + b.
// Complexity: O(1).
func (v Vec3) Add(b Vec3) Vec3 {
	return Vec3{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

// Sub returns the component-wise difference v - b.
// Complexity: O(1).
func (v Vec3) Sub(b Vec3) Vec3 {
	return Vec3{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

// Scale returns v with every component multiplied by k.
// Complexity: O(1).
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{k * v.X, k * v.Y, k * v.Z}
}

// Cross returns the right-handed cross product v × b:
//
//	(vy·bz − vz·by, vz·bx − vx·bz, vx·by − vy·bx)
//
// Complexity: O(1).
func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

// Dot returns the sum of component-wise products v · b.
// Complexity: O(1).
func (v Vec3) Dot(b Vec3) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Magnitude returns the Euclidean norm sqrt(v · v).
// Complexity: O(1).
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v.
// A vector whose magnitude is exactly zero is returned unchanged —
// the degenerate case is a defined no-op, never a division by zero
// and never an error.
// Complexity: O(1).
func (v Vec3) Normalize() Vec3 {
	mag := v.Magnitude()
	if mag == 0.0 {
		return v
	}

	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}
