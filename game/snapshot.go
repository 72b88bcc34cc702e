package game

import (
	"image/color"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/sim"
)

// Drawable is what a renderer needs to draw one entity.
type Drawable struct {
	Id       sim.EntityId
	Position geom.Vec2
	Size     geom.Vec2
	Color    color.RGBA
}

// Snapshot is the render view of a session at the end of a frame.
type Snapshot struct {
	Bounds geom.Vec2
	Player *Drawable // nil once destroyed
	Blocks []Drawable
}

// Alive reports whether the player is still in play.
func (s Snapshot) Alive() bool {
	return s.Player != nil
}

// Snapshot copies the drawable state of every live entity.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Bounds: s.world.Bounds(),
		Blocks: make([]Drawable, 0, s.world.BlockCount()),
	}

	if p, ok := s.world.Player(); ok {
		snap.Player = &Drawable{
			Id:       s.world.PlayerId(),
			Position: p.Position,
			Size:     p.Size,
			Color:    p.Color,
		}
	}

	for id, b := range s.world.Blocks() {
		snap.Blocks = append(snap.Blocks, Drawable{
			Id:       id,
			Position: b.Position,
			Size:     b.Size,
			Color:    b.Color,
		})
	}
	return snap
}
