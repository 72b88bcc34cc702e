// Package debugui draws Dear ImGui debug windows over a running session.
// The overlay is registered as the last system of a session and queues its
// windows as deferred commands, so they render after the frame's state
// changes have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dodge/game"
	"github.com/plus3/dodge/sim"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should not forward keyboard input to the game while
// WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a system that defers a list of ImGui render functions each frame.
type Overlay struct {
	Items []func()
	Input InputState

	// DeltaTime is the delta of the last frame the overlay ran in.
	DeltaTime float32
}

// Add appends a render function.
func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, render)
}

// Execute updates the input capture state and queues all render functions.
func (o *Overlay) Execute(frame *sim.UpdateFrame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	o.DeltaTime = float32(frame.DeltaTime)

	for _, item := range o.Items {
		frame.Commands.Defer(item)
	}
}

// Render draws every item immediately. Hosts call it once the session is
// over and frames no longer run.
func (o *Overlay) Render() {
	for _, item := range o.Items {
		item()
	}
}

// Attach registers an overlay with the standard session windows on session.
func Attach(session *game.Session) *Overlay {
	o := &Overlay{}
	stats := NewPerformanceStats(120)
	browser := NewBlockBrowser(100)
	inspector := &PlayerInspector{}
	pool := &PoolViewer{}

	o.Add(func() { stats.Render(session.Stats(), session.World().CollectStats(), o.DeltaTime) })
	o.Add(func() { browser.Render(session.World()) })
	o.Add(func() { inspector.Render(session.World()) })
	if session.Pool() != nil {
		o.Add(func() { pool.Render(session.Pool()) })
	}

	session.Register(o)
	return o
}
