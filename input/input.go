// Package input describes the per-frame controls the simulation consumes.
// It does not know about keyboards or any other device; hosts translate their
// own events into a State once per frame.
package input

import "github.com/plus3/dodge/geom"

// State is the input sampled for one frame.
//
// The four directions are held signals. Teleport is an edge: it must be true
// only on the frame the action was pressed, not while it stays held.
type State struct {
	Up, Down, Left, Right bool
	Teleport              bool
}

// Axis combines opposing directions into a value in {-1, 0, 1} per axis.
// Pressing both directions of a pair cancels out.
func (s State) Axis() geom.Vec2 {
	return geom.Vec2{
		X: float64(b2i(s.Right) - b2i(s.Left)),
		Y: float64(b2i(s.Up) - b2i(s.Down)),
	}
}

// Held returns the directions currently held, in geom.Directions order.
func (s State) Held() []geom.Direction {
	held := make([]geom.Direction, 0, 4)
	for _, d := range geom.Directions {
		if s.holds(d) {
			held = append(held, d)
		}
	}
	return held
}

func (s State) holds(d geom.Direction) bool {
	switch d {
	case geom.Left:
		return s.Left
	case geom.Right:
		return s.Right
	case geom.Up:
		return s.Up
	case geom.Down:
		return s.Down
	}
	return false
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Latch converts a held button into a rising edge.
type Latch struct {
	prev bool
}

// Update records the held state for this frame and reports whether it was
// just pressed.
func (l *Latch) Update(held bool) bool {
	pressed := held && !l.prev
	l.prev = held
	return pressed
}
