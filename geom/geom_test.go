package geom_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/dodge/geom"
	"github.com/stretchr/testify/assert"
)

func TestDirectionUnit(t *testing.T) {
	assert.Equal(t, geom.V(-1, 0), geom.Left.Unit())
	assert.Equal(t, geom.V(1, 0), geom.Right.Unit())
	assert.Equal(t, geom.V(0, 1), geom.Up.Unit())
	assert.Equal(t, geom.V(0, -1), geom.Down.Unit())

	assert.True(t, geom.Left.Horizontal())
	assert.False(t, geom.Down.Horizontal())
	assert.Equal(t, "up", geom.Up.String())
	assert.Equal(t, "Direction(9)", geom.Direction(9).String())
}

func TestRandomDirectionCoversAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[geom.Direction]int)
	for range 400 {
		seen[geom.RandomDirection(rng)]++
	}

	assert.Len(t, seen, 4)
	for _, d := range geom.Directions {
		assert.Greater(t, seen[d], 50, "direction %s undersampled", d)
	}
}

func TestRandomDirectionIsSeeded(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for range 32 {
		assert.Equal(t, geom.RandomDirection(a), geom.RandomDirection(b))
	}
}

func TestBoxOverlaps(t *testing.T) {
	player := geom.Box{Center: geom.V(0, 0), Size: geom.V(40, 40)}

	t.Run("within combined half extents", func(t *testing.T) {
		block := geom.Box{Center: geom.V(50, 0), Size: geom.V(80, 80)}
		assert.True(t, player.Overlaps(block))
		assert.True(t, block.Overlaps(player))
	})

	t.Run("beyond combined half extents", func(t *testing.T) {
		block := geom.Box{Center: geom.V(100, 0), Size: geom.V(80, 80)}
		assert.False(t, player.Overlaps(block))
		assert.False(t, block.Overlaps(player))
	})

	t.Run("touching edges", func(t *testing.T) {
		block := geom.Box{Center: geom.V(60, 0), Size: geom.V(80, 80)}
		assert.False(t, player.Overlaps(block))
	})

	t.Run("needs both axes", func(t *testing.T) {
		block := geom.Box{Center: geom.V(10, 70), Size: geom.V(80, 80)}
		assert.False(t, player.Overlaps(block))

		block.Center.Y = -59
		assert.True(t, player.Overlaps(block))
	})
}

func TestWrap(t *testing.T) {
	bounds := geom.V(500, 900)
	half := geom.V(40, 40)
	const eps = 1e-6

	t.Run("past right edge", func(t *testing.T) {
		got := geom.Wrap(geom.V(250+40+eps, 0), half, bounds)
		assert.Equal(t, geom.V(-250, 0), got)
	})

	t.Run("past left edge", func(t *testing.T) {
		got := geom.Wrap(geom.V(-290-eps, 12), half, bounds)
		assert.Equal(t, geom.V(250, 12), got)
	})

	t.Run("past top and bottom", func(t *testing.T) {
		assert.Equal(t, geom.V(0, -450), geom.Wrap(geom.V(0, 490+eps), half, bounds))
		assert.Equal(t, geom.V(0, 450), geom.Wrap(geom.V(0, -490-eps), half, bounds))
	})

	t.Run("on the threshold stays", func(t *testing.T) {
		assert.Equal(t, geom.V(290, -490), geom.Wrap(geom.V(290, -490), half, bounds))
	})

	t.Run("overshoot is discarded", func(t *testing.T) {
		assert.Equal(t, geom.V(-250, 0), geom.Wrap(geom.V(10000, 0), half, bounds))
	})

	t.Run("both axes in one call", func(t *testing.T) {
		assert.Equal(t, geom.V(-250, 450), geom.Wrap(geom.V(300, -500), half, bounds))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := geom.Wrap(geom.V(290+eps, 490+eps), half, bounds)
		assert.Equal(t, once, geom.Wrap(once, half, bounds))
	})
}

func TestVecArithmetic(t *testing.T) {
	v := geom.V(3, 4)
	assert.Equal(t, geom.V(4, 6), v.Add(geom.V(1, 2)))
	assert.Equal(t, geom.V(2, 2), v.Sub(geom.V(1, 2)))
	assert.Equal(t, geom.V(6, 8), v.Scale(2))
	assert.Equal(t, geom.V(1.5, 2), v.Half())
}
