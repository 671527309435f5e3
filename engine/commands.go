package engine

import "github.com/plus3/blockfall/game"

// Commands buffers player input between frames and callbacks that must run
// after every system in a frame has executed.
type Commands struct {
	input  []game.Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a player command for the next InputSystem pass.
func (c *Commands) Push(cmd game.Command) {
	c.input = append(c.input, cmd)
}

// Len returns the number of queued player commands.
func (c *Commands) Len() int {
	return len(c.input)
}

// Drain returns the queued player commands in arrival order and empties the
// queue.
func (c *Commands) Drain() []game.Command {
	if len(c.input) == 0 {
		return nil
	}
	out := make([]game.Command, len(c.input))
	copy(out, c.input)
	c.input = c.input[:0]
	return out
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush runs the deferred callbacks in order and resets them. Player commands
// that no system drained stay queued.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
