package sim

// System is one step of the per-frame pipeline. Systems keep whatever state
// they need between frames in their own fields.
type System interface {
	Execute(frame *UpdateFrame)
}
