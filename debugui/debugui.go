// Package debugui provides Dear ImGui inspector windows for a running game.
// Windows are rendered through the scheduler's deferred commands, so they
// draw after every gameplay system has finished its frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// Window is anything that draws ImGui widgets for a frame.
type Window interface {
	Render(frame *engine.Frame)
}

// InputState tracks whether ImGui wants the keyboard this frame. Hosts check
// it before turning key presses into game commands.
type InputState struct {
	WantCaptureKeyboard bool
}

// System defers the Render call of every window.
type System struct {
	Windows []Window
	Input   InputState
}

// NewSystem returns a System showing the performance and game windows for s.
func NewSystem(s *engine.Scheduler) *System {
	return &System{
		Windows: []Window{
			NewPerformanceWindow(s, 120),
			NewGameWindow(s),
		},
	}
}

// CaptureInput refreshes Input from ImGui. Call it after the backend's
// BeginFrame and before polling the keyboard.
func (d *System) CaptureInput() {
	d.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
}

func (d *System) Execute(frame *engine.Frame) {
	for _, w := range d.Windows {
		frame.Commands.Defer(func() {
			w.Render(frame)
		})
	}
}
