package sim

import (
	"time"

	"github.com/plus3/dodge/input"
)

// UpdateFrame is passed to every system executed during one frame.
type UpdateFrame struct {
	DeltaTime float64
	Now       time.Time
	Input     input.State
	Commands  *Commands
	World     *World

	err error
}

func newUpdateFrame(dt float64, now time.Time, in input.State, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Now:       now,
		Input:     in,
		Commands:  newCommands(),
		World:     world,
	}
}

// Fail records a fatal error. The scheduler stops the frame after the
// current system returns. Only the first error is kept.
func (f *UpdateFrame) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Err returns the error recorded with Fail.
func (f *UpdateFrame) Err() error {
	return f.err
}
