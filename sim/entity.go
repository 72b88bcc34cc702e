// Package sim is the frame-stepped simulation runtime: the World that owns
// every entity, the deferred Commands buffer, and the Scheduler that runs
// systems once per frame in a fixed order.
package sim

import (
	"image/color"

	"github.com/plus3/dodge/geom"
)

// EntityId identifies an entity for the lifetime of a World. Ids are never reused.
type EntityId uint64

// Player is the entity controlled by input.
type Player struct {
	Position         geom.Vec2
	Size             geom.Vec2
	Velocity         float64 // units per second
	TeleportDistance float64
	Color            color.RGBA
}

// Box returns the player's bounding box.
func (p *Player) Box() geom.Box {
	return geom.Box{Center: p.Position, Size: p.Size}
}

// Block is an obstacle travelling in a straight line.
type Block struct {
	Position  geom.Vec2
	Size      geom.Vec2
	Velocity  float64 // units per second
	Direction geom.Direction
	Color     color.RGBA
}

// Box returns the block's bounding box.
func (b *Block) Box() geom.Box {
	return geom.Box{Center: b.Position, Size: b.Size}
}
