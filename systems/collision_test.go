package systems_test

import (
	"testing"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/sim"
	"github.com/plus3/dodge/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func blocksOf(blocks ...*sim.Block) func(func(sim.EntityId, *sim.Block) bool) {
	return func(yield func(sim.EntityId, *sim.Block) bool) {
		for i, b := range blocks {
			if !yield(sim.EntityId(i+1), b) {
				return
			}
		}
	}
}

func TestCheck(t *testing.T) {
	player := newPlayer()

	assert.True(t, systems.Check(player, blocksOf(newBlock(geom.V(50, 0), geom.Left))))
	assert.False(t, systems.Check(player, blocksOf(newBlock(geom.V(100, 0), geom.Left))))
	assert.False(t, systems.Check(player, blocksOf()))

	id, hit := systems.FirstHit(player, blocksOf(
		newBlock(geom.V(200, 200), geom.Left),
		newBlock(geom.V(0, -59), geom.Left),
		newBlock(geom.V(0, 0), geom.Left),
	))
	assert.True(t, hit)
	assert.Equal(t, sim.EntityId(2), id)
}

func TestCollisionDetectorSystem(t *testing.T) {
	t.Run("overlap destroys the player", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		world := sim.NewWorld(bounds)
		_, err := world.SpawnPlayer(*newPlayer())
		require.NoError(t, err)
		world.SpawnBlock(*newBlock(geom.V(200, 200), geom.Up))
		hit := world.SpawnBlock(*newBlock(geom.V(-50, 10), geom.Up))

		detector := &systems.CollisionDetector{Log: zap.New(core)}
		scheduler := sim.NewScheduler(world, sim.NewManualClock(epoch))
		scheduler.Register(detector)

		require.NoError(t, scheduler.Once(0, input.State{}))

		assert.True(t, world.Over())
		assert.Equal(t, hit, detector.Hit)
		assert.Equal(t, 2, world.BlockCount(), "blocks survive the impact")
		require.Equal(t, 1, logs.FilterMessage("player destroyed").Len())

		require.NoError(t, scheduler.Once(0, input.State{}), "no player left to check")
	})

	t.Run("no overlap keeps the player", func(t *testing.T) {
		world := sim.NewWorld(bounds)
		_, err := world.SpawnPlayer(*newPlayer())
		require.NoError(t, err)
		world.SpawnBlock(*newBlock(geom.V(100, 0), geom.Up))

		scheduler := sim.NewScheduler(world, sim.NewManualClock(epoch))
		scheduler.Register(&systems.CollisionDetector{})

		require.NoError(t, scheduler.Once(0, input.State{}))
		assert.False(t, world.Over())
	})
}
