package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// GameWindow shows the controller's counters and per-kind spawn totals, with
// buttons that queue pause and restart commands.
type GameWindow struct {
	scheduler *engine.Scheduler
}

func NewGameWindow(s *engine.Scheduler) *GameWindow {
	return &GameWindow{scheduler: s}
}

func (gw *GameWindow) Render(frame *engine.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 320), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := frame.Game.Snapshot()

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d", snap.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Fall Interval: %s", snap.FallInterval))
	imgui.Text(fmt.Sprintf("Active: %s  Next: %s", frame.Game.ActiveKind(), frame.Game.NextKind()))

	imgui.Separator()
	if imgui.Button("Pause") {
		gw.scheduler.Push(game.TogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		gw.scheduler.Push(game.Restart)
	}

	if imgui.TreeNodeStr("Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, k := range piece.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(k.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", frame.Game.SpawnCount(k)))
			}

			imgui.EndTable()
		}
		imgui.Text(fmt.Sprintf("Total: %d", snap.Pieces))
		imgui.TreePop()
	}

	imgui.End()
}
