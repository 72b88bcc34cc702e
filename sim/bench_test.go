package sim_test

import (
	"testing"
	"time"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/sim"
)

func BenchmarkSpawnBlock(b *testing.B) {
	world := sim.NewWorld(geom.V(500, 900))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.SpawnBlock(sim.Block{Position: geom.V(1, 2), Velocity: 300})
	}
}

func BenchmarkBlockLookup(b *testing.B) {
	world := sim.NewWorld(geom.V(500, 900))
	ids := make([]sim.EntityId, 1000)
	for i := range ids {
		ids[i] = world.SpawnBlock(sim.Block{Velocity: 300})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = world.Block(ids[i%len(ids)])
	}
}

func BenchmarkIterateBlocks(b *testing.B) {
	world := sim.NewWorld(geom.V(500, 900))
	for range 1000 {
		world.SpawnBlock(sim.Block{Velocity: 300})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, block := range world.Blocks() {
			block.Position.Y -= block.Velocity / 60
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	world := sim.NewWorld(geom.V(500, 900))
	for range 1000 {
		world.SpawnBlock(sim.Block{Velocity: 300})
	}
	scheduler := sim.NewScheduler(world, sim.NewManualClock(time.Time{}))
	scheduler.Register(&MovementSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scheduler.Once(1.0/60.0, input.State{})
	}
}
