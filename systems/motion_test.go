package systems_test

import (
	"testing"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/sim"
	"github.com/plus3/dodge/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlock(pos geom.Vec2, d geom.Direction) *sim.Block {
	return &sim.Block{Position: pos, Size: geom.V(80, 80), Velocity: 300, Direction: d}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		dir  geom.Direction
		want geom.Vec2
	}{
		{geom.Left, geom.V(-30, 0)},
		{geom.Right, geom.V(30, 0)},
		{geom.Up, geom.V(0, 30)},
		{geom.Down, geom.V(0, -30)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := newBlock(geom.V(0, 0), tt.dir)
			systems.Advance(b, 0.1, bounds)
			assert.InDelta(t, tt.want.X, b.Position.X, 1e-9)
			assert.InDelta(t, tt.want.Y, b.Position.Y, 1e-9)
		})
	}
}

func TestAdvanceWraps(t *testing.T) {
	t.Run("just past the edge", func(t *testing.T) {
		b := newBlock(geom.V(290+1e-6, 0), geom.Right)
		systems.Advance(b, 0, bounds)
		assert.Equal(t, geom.V(-250, 0), b.Position)

		systems.Advance(b, 0, bounds)
		assert.Equal(t, geom.V(-250, 0), b.Position, "second wrap without motion is a no-op")
	})

	t.Run("overshoot lands on the edge", func(t *testing.T) {
		b := newBlock(geom.V(0, -480), geom.Down)
		systems.Advance(b, 10, bounds)
		assert.Equal(t, geom.V(0, 450), b.Position)
	})

	t.Run("axes wrap independently", func(t *testing.T) {
		b := newBlock(geom.V(300, 500), geom.Left)
		systems.Advance(b, 0, bounds)
		assert.Equal(t, geom.V(-250, -450), b.Position)
	})
}

func TestBlockMotionSystem(t *testing.T) {
	world := sim.NewWorld(bounds)
	left := world.SpawnBlock(*newBlock(geom.V(0, 0), geom.Left))
	up := world.SpawnBlock(*newBlock(geom.V(0, 440), geom.Up))

	scheduler := sim.NewScheduler(world, sim.NewManualClock(epoch))
	scheduler.Register(systems.BlockMotion{})

	require.NoError(t, scheduler.Once(0.5, input.State{}))

	assert.Equal(t, geom.V(-150, 0), world.Block(left).Position)
	assert.Equal(t, geom.V(0, -450), world.Block(up).Position, "590 is past 450+40")
}
