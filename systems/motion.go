package systems

import (
	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/sim"
)

// BlockMotion moves every block along its direction.
type BlockMotion struct{}

func (BlockMotion) Execute(frame *sim.UpdateFrame) {
	bounds := frame.World.Bounds()
	for _, block := range frame.World.Blocks() {
		Advance(block, frame.DeltaTime, bounds)
	}
}

// Advance moves b by velocity*dt along its direction and wraps it.
func Advance(b *sim.Block, dt float64, bounds geom.Vec2) {
	b.Position = b.Position.Add(b.Direction.Unit().Scale(b.Velocity * dt))
	b.Position = geom.Wrap(b.Position, b.Size.Half(), bounds)
}
