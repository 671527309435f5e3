package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
)

// PerformanceWindow plots frame times and lists per-system timings.
type PerformanceWindow struct {
	scheduler     *engine.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceWindow(s *engine.Scheduler, historyFrames int) *PerformanceWindow {
	if historyFrames <= 0 {
		panic(fmt.Sprintf("performance window needs a positive history, got %d", historyFrames))
	}
	return &PerformanceWindow{
		scheduler:     s,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one frame time sample in milliseconds.
func (pw *PerformanceWindow) Record(deltaTime float64) {
	pw.frameHistory[pw.frameIndex] = float32(deltaTime * 1000.0)
	pw.frameIndex = (pw.frameIndex + 1) % pw.historyFrames
}

// AverageFrameTime returns the mean of the recorded samples in milliseconds.
func (pw *PerformanceWindow) AverageFrameTime() float32 {
	var avg float32
	for _, ft := range pw.frameHistory {
		avg += ft
	}
	return avg / float32(pw.historyFrames)
}

func (pw *PerformanceWindow) Render(frame *engine.Frame) {
	pw.Record(frame.DeltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := pw.scheduler.Stats()
	avgFrameTime := pw.AverageFrameTime()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &pw.frameHistory[0], int32(len(pw.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
