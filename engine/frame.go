package engine

import (
	"time"

	"github.com/plus3/blockfall/game"
)

// Frame is what each system sees during one scheduler step.
type Frame struct {
	DeltaTime float64
	Now       time.Time
	Game      *game.Controller
	Commands  *Commands
}

// System is one stage of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
