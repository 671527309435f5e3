package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Config        game.Config
	SimulatedTime time.Duration
	FPS           int
	ActionRate    float64
	Realtime      bool

	// Results
	TotalFrames int64
	WallTime    time.Duration
	UpdateTime  Stats
	Games       []GameResult
	Current     game.Snapshot
	Commands    map[game.Command]int
	Applied     int64
	Ignored     int64
	Scheduler   *engine.SchedulerStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// BestScore returns the highest score among finished games and the current one.
func (r *Report) BestScore() int {
	best := r.Current.Score
	for _, g := range r.Games {
		best = max(best, g.Score)
	}
	return best
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Randomizer:** {{.Config.Randomizer}} (seed {{.Config.Seed}})
- **Time Limit:** {{.SimulatedTime}} at {{.FPS}} frames/s ({{if .Realtime}}wall clock{{else}}simulated{{end}})
- **Bot Action Rate:** {{printf "%.2f" .ActionRate}}

## Gameplay
- **Finished Games:** {{len .Games}}
- **Best Score:** {{.BestScore}}
- **Current Game:** {{.Current.State}}, score {{.Current.Score}}, level {{.Current.Level}}, lines {{.Current.Lines}}, pieces {{.Current.Pieces}}
- **Commands Applied / Ignored:** {{.Applied}} / {{.Ignored}}
{{range $i, $g := .Games}}  - game {{inc $i}}: score {{$g.Score}}, level {{$g.Level}}, lines {{$g.Lines}}, pieces {{$g.Pieces}}
{{end}}
## Bot Commands
{{range $cmd, $n := .Commands}}- {{$cmd}}: {{$n}}
{{end}}
## Performance
- **Total Frames:** {{.TotalFrames}}
- **Wall Time:** {{.WallTime}}
{{if .UpdateTime.Samples}}- **Frame Update Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{end}}
## Systems
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
