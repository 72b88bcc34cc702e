package sim

// Commands buffers structural changes to the World while systems run. They
// are applied by Flush at the end of the frame, so every system in a frame
// sees the same set of entities.
type Commands struct {
	spawns        []Block
	destroyPlayer bool
	defers        []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// SpawnBlock queues a block spawn.
func (c *Commands) SpawnBlock(b Block) {
	c.spawns = append(c.spawns, b)
}

// DestroyPlayer queues removal of the player.
func (c *Commands) DestroyPlayer() {
	c.destroyPlayer = true
}

// Defer queues a function to run after the structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	n := len(c.spawns) + len(c.defers)
	if c.destroyPlayer {
		n++
	}
	return n
}

// Flush applies all queued commands to w and resets the buffer.
func (c *Commands) Flush(w *World) {
	if c.destroyPlayer {
		w.DestroyPlayer()
	}

	for _, b := range c.spawns {
		w.SpawnBlock(b)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.destroyPlayer = false
	c.defers = c.defers[:0]
}
