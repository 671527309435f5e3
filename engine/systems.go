package engine

import "github.com/plus3/blockfall/game"

// InputSystem feeds the commands queued since the last frame to the
// controller, in the order they arrived.
type InputSystem struct {
	// Applied counts commands that changed the game.
	Applied int64
	// Ignored counts commands the controller rejected.
	Ignored int64
}

func (s *InputSystem) Execute(frame *Frame) {
	for _, cmd := range frame.Commands.Drain() {
		if frame.Game.Handle(cmd, frame.Now) {
			s.Applied++
		} else {
			s.Ignored++
		}
	}
}

// GravitySystem advances the controller's gravity timer.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	frame.Game.Tick(frame.Now)
}

// StateWatcher calls OnChange whenever the controller's state differs from
// the previous frame, and LevelUp whenever the level rises.
type StateWatcher struct {
	OnChange func(from, to game.State)
	LevelUp  func(level int)

	initialized bool
	lastState   game.State
	lastLevel   int
}

func (s *StateWatcher) Execute(frame *Frame) {
	state := frame.Game.State()
	level := frame.Game.Level()

	if !s.initialized {
		s.initialized = true
		s.lastState = state
		s.lastLevel = level
		return
	}

	if state != s.lastState && s.OnChange != nil {
		s.OnChange(s.lastState, state)
	}
	if level > s.lastLevel && s.LevelUp != nil {
		s.LevelUp(level)
	}
	s.lastState = state
	s.lastLevel = level
}
