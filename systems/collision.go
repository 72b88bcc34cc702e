package systems

import (
	"iter"

	"github.com/plus3/dodge/sim"
	"go.uber.org/zap"
)

// CollisionDetector destroys the player when it overlaps any block.
type CollisionDetector struct {
	Log *zap.Logger

	// Hit is the block that ended the session, 0 until then.
	Hit sim.EntityId
}

func (c *CollisionDetector) Execute(frame *sim.UpdateFrame) {
	player, ok := frame.World.Player()
	if !ok {
		return
	}

	id, hit := FirstHit(player, frame.World.Blocks())
	if !hit {
		return
	}

	c.Hit = id
	frame.Commands.DestroyPlayer()
	loggerOrNop(c.Log).Info("player destroyed",
		zap.Uint64("block", uint64(id)),
		zap.Float64("x", player.Position.X),
		zap.Float64("y", player.Position.Y),
		zap.Int("blocks", frame.World.BlockCount()),
	)
}

// Check reports whether the player overlaps any of blocks.
func Check(player *sim.Player, blocks iter.Seq2[sim.EntityId, *sim.Block]) bool {
	_, hit := FirstHit(player, blocks)
	return hit
}

// FirstHit returns the first block overlapping the player in iteration order.
func FirstHit(player *sim.Player, blocks iter.Seq2[sim.EntityId, *sim.Block]) (sim.EntityId, bool) {
	box := player.Box()
	for id, block := range blocks {
		if box.Overlaps(block.Box()) {
			return id, true
		}
	}
	return 0, false
}
