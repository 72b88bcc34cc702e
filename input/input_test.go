package input_test

import (
	"testing"

	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/stretchr/testify/assert"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name  string
		state input.State
		want  geom.Vec2
	}{
		{"idle", input.State{}, geom.V(0, 0)},
		{"left", input.State{Left: true}, geom.V(-1, 0)},
		{"right and up", input.State{Right: true, Up: true}, geom.V(1, 1)},
		{"down", input.State{Down: true}, geom.V(0, -1)},
		{"left and right cancel", input.State{Left: true, Right: true}, geom.V(0, 0)},
		{"all four cancel", input.State{Left: true, Right: true, Up: true, Down: true}, geom.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Axis())
		})
	}
}

func TestHeld(t *testing.T) {
	s := input.State{Up: true, Right: true}
	assert.Equal(t, []geom.Direction{geom.Right, geom.Up}, s.Held())
	assert.Empty(t, input.State{Teleport: true}.Held())
}

func TestLatch(t *testing.T) {
	var l input.Latch

	assert.False(t, l.Update(false))
	assert.True(t, l.Update(true))
	assert.False(t, l.Update(true), "held button must not repeat")
	assert.False(t, l.Update(false))
	assert.True(t, l.Update(true))
}
