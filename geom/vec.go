// Package geom holds the plane geometry shared by the simulation: vectors,
// movement directions, axis-aligned boxes and the screen wrap rule.
//
// The coordinate system has its origin at the centre of the screen with the
// y axis pointing up.
package geom

// Vec2 is a position or size in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Half returns v / 2, used to turn a size into half-extents.
func (v Vec2) Half() Vec2 {
	return Vec2{X: v.X / 2, Y: v.Y / 2}
}
