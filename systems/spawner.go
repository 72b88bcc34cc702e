package systems

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/sim"
	"github.com/plus3/dodge/spawn"
	"go.uber.org/zap"
)

// BlockSpawner creates blocks. SpawnInitial fills the world at startup;
// registered as a system under a fixed interval, Execute adds one block per
// run.
//
// Placement comes from Pool when it is set, and is uniformly random over the
// whole screen otherwise.
type BlockSpawner struct {
	Pool *spawn.Pool
	Rand spawn.Rand

	// Template supplies size and velocity; position, direction and colour
	// are filled per spawn.
	Template     sim.Block
	InitialColor color.RGBA
	RuntimeColor color.RGBA

	Log *zap.Logger

	Spawned int
	Skipped int
}

// Place picks the location and direction of the next block.
func (s *BlockSpawner) Place(bounds geom.Vec2) (spawn.SpawnInfo, error) {
	if s.Pool == nil {
		return spawn.RandomPlacement(bounds, s.Rand), nil
	}
	return s.Pool.Pick(s.Rand)
}

func (s *BlockSpawner) block(info spawn.SpawnInfo, c color.RGBA) sim.Block {
	b := s.Template
	b.Position = info.Location
	b.Direction = info.Direction
	b.Color = c
	return b
}

// SpawnInitial adds count blocks to world immediately. Any placement failure
// is returned, since the session cannot start short of blocks.
func (s *BlockSpawner) SpawnInitial(world *sim.World, count int) error {
	log := loggerOrNop(s.Log)
	for i := range count {
		info, err := s.Place(world.Bounds())
		if err != nil {
			return fmt.Errorf("initial block %d of %d: %w", i+1, count, err)
		}

		id := world.SpawnBlock(s.block(info, s.InitialColor))
		log.Debug("block spawned",
			zap.Uint64("id", uint64(id)),
			zap.Float64("x", info.Location.X),
			zap.Float64("y", info.Location.Y),
			zap.Stringer("direction", info.Direction),
		)
	}
	return nil
}

// Execute queues one block. An exhausted pool skips this run and is retried
// on the next one.
func (s *BlockSpawner) Execute(frame *sim.UpdateFrame) {
	log := loggerOrNop(s.Log)

	info, err := s.Place(frame.World.Bounds())
	if err != nil {
		var empty *spawn.EmptyPoolError
		if errors.As(err, &empty) {
			s.Skipped++
			log.Warn("spawn skipped", zap.Error(err))
			return
		}
		frame.Fail(fmt.Errorf("block spawner: %w", err))
		return
	}

	frame.Commands.SpawnBlock(s.block(info, s.RuntimeColor))
	s.Spawned++
	log.Debug("block queued",
		zap.Float64("x", info.Location.X),
		zap.Float64("y", info.Location.Y),
		zap.Stringer("direction", info.Direction),
	)
}
