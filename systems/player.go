package systems

import (
	"fmt"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/sim"
)

// PlayerController moves the player from the frame's input.
type PlayerController struct {
	// WrapAfterTeleport re-applies the screen wrap after a teleport. Off by
	// default: only the continuous movement is wrapped.
	WrapAfterTeleport bool

	Teleports int
}

func (c *PlayerController) Execute(frame *sim.UpdateFrame) {
	player, err := frame.World.RequirePlayer()
	if err != nil {
		frame.Fail(fmt.Errorf("player controller: %w", err))
		return
	}

	c.Teleports += MovePlayer(player, frame.Input, frame.DeltaTime, frame.World.Bounds(), c.WrapAfterTeleport)
}

// MovePlayer applies one frame of input to p and returns the number of
// teleport displacements made.
//
// Held directions move the player at its velocity, opposite directions
// cancelling, and the result is wrapped. A teleport press then jumps
// TeleportDistance along every held direction separately, so a diagonal hold
// jumps on both axes.
func MovePlayer(p *sim.Player, in input.State, dt float64, bounds geom.Vec2, wrapAfterTeleport bool) int {
	p.Position = p.Position.Add(in.Axis().Scale(p.Velocity * dt))
	p.Position = geom.Wrap(p.Position, p.Size.Half(), bounds)

	if !in.Teleport {
		return 0
	}

	held := in.Held()
	for _, d := range held {
		p.Position = p.Position.Add(d.Unit().Scale(p.TeleportDistance))
	}

	if wrapAfterTeleport {
		p.Position = geom.Wrap(p.Position, p.Size.Half(), bounds)
	}
	return len(held)
}
