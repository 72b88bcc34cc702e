package geom

import "fmt"

// Direction is one of the four axis-aligned movement directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Left, Right, Up, Down}

// Unit returns the unit vector pointing in d.
func (d Direction) Unit() Vec2 {
	switch d {
	case Left:
		return Vec2{X: -1}
	case Right:
		return Vec2{X: 1}
	case Up:
		return Vec2{Y: 1}
	case Down:
		return Vec2{Y: -1}
	}
	return Vec2{}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// IntN is the slice of a random source needed for discrete sampling.
// *math/rand/v2.Rand satisfies it.
type IntN interface {
	IntN(n int) int
}

// RandomDirection draws a direction uniformly from Directions.
func RandomDirection(rng IntN) Direction {
	return Directions[rng.IntN(len(Directions))]
}
