// Package engine runs a game controller as a sequence of per-frame systems:
// queued player input first, then gravity, then whatever presentation
// systems the host registers.
package engine

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/blockfall/game"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns the frame loop for one controller.
type Scheduler struct {
	game        *game.Controller
	clock       Clock
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64

	quitOnce sync.Once
	quit     chan struct{}
}

// NewScheduler creates a scheduler driving ctrl with time from clock.
func NewScheduler(ctrl *game.Controller, clock Clock) *Scheduler {
	return &Scheduler{
		game:     ctrl,
		clock:    clock,
		commands: newCommands(),
		systems:  make([]System, 0),
		quit:     make(chan struct{}),
	}
}

// NewGameScheduler creates a scheduler with InputSystem and GravitySystem
// already registered.
func NewGameScheduler(ctrl *game.Controller, clock Clock) *Scheduler {
	s := NewScheduler(ctrl, clock)
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	return s
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("cannot register a nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Push queues a player command for the next frame. Call it from the
// goroutine that runs the frames.
func (s *Scheduler) Push(cmd game.Command) {
	s.commands.Push(cmd)
}

// Game returns the controller the scheduler drives.
func (s *Scheduler) Game() *game.Controller {
	return s.game
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frame := &Frame{
		DeltaTime: dt,
		Now:       s.clock.Now(),
		Game:      s.game,
		Commands:  s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	s.commands.Flush()
}

// Run executes frames at the given interval until the context is cancelled
// or Quit is called.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.quit:
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Quit stops Run. It is safe to call more than once and from any goroutine.
func (s *Scheduler) Quit() {
	s.quitOnce.Do(func() {
		close(s.quit)
	})
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
