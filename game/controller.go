// Package game drives a board with player commands and gravity, and keeps
// score, level and line counts.
package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// State is the controller's top-level mode.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Command is an abstract player input.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	Rotate
	RotateCounterClockwise
	HardDrop
	TogglePause
	Restart
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SoftDrop:
		return "soft-drop"
	case Rotate:
		return "rotate"
	case RotateCounterClockwise:
		return "rotate-ccw"
	case HardDrop:
		return "hard-drop"
	case TogglePause:
		return "pause"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Snapshot is a copy of the controller's scalar state.
type Snapshot struct {
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
	State        State
	Pieces       int
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger makes the controller log restarts, level changes and game over.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns a board and all game state. It is not safe for concurrent
// use; one frame loop calls Handle and Tick.
type Controller struct {
	cfg    Config
	board  *board.Board
	gen    piece.Generator
	logger *log.Logger

	score        int
	level        int
	lines        int
	fallInterval time.Duration
	lastFall     time.Time
	state        State

	pieces int
	spawns *intmap.Map[piece.Kind, int]
}

// New validates cfg and starts a game at time now, drawing pieces from gen.
func New(cfg Config, gen piece.Generator, now time.Time, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: nil piece generator", ErrInvalidConfig)
	}

	c := &Controller{
		cfg:    cfg,
		board:  board.New(cfg.Width, cfg.Height),
		gen:    gen,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.reset(now)
	return c, nil
}

func (c *Controller) reset(now time.Time) {
	c.board.Reset()
	c.score = 0
	c.level = 1
	c.lines = 0
	c.fallInterval = c.cfg.InitialFallInterval
	c.lastFall = now
	c.state = Running
	c.pieces = 0
	c.spawns = intmap.New[piece.Kind, int](len(piece.Kinds))

	c.board.SetNext(c.gen.Next())
	c.spawn()
}

// Handle applies one command at time now and reports whether it changed
// anything. While paused only TogglePause and Restart act; after game over
// only Restart does.
func (c *Controller) Handle(cmd Command, now time.Time) bool {
	switch cmd {
	case Restart:
		c.reset(now)
		c.logger.Println("game restarted")
		return true
	case TogglePause:
		switch c.state {
		case Running:
			c.state = Paused
			return true
		case Paused:
			c.state = Running
			return true
		}
		return false
	}

	if c.state != Running {
		return false
	}

	switch cmd {
	case MoveLeft:
		return c.board.MoveActive(-1, 0)
	case MoveRight:
		return c.board.MoveActive(1, 0)
	case SoftDrop:
		if c.board.MoveActive(0, 1) {
			c.lastFall = now
			return true
		}
		return false
	case Rotate:
		return c.board.RotateActive(piece.Clockwise)
	case RotateCounterClockwise:
		return c.board.RotateActive(piece.CounterClockwise)
	case HardDrop:
		if !c.board.LockActive() {
			return false
		}
		c.settle()
		return true
	}
	return false
}

// Tick applies gravity: once more than the fall interval has passed since the
// last fall, the active piece moves down a row or, if it is resting, locks.
func (c *Controller) Tick(now time.Time) {
	if c.state != Running {
		return
	}
	if now.Sub(c.lastFall) <= c.fallInterval {
		return
	}

	if !c.board.MoveActive(0, 1) {
		// Already resting, so LockActive only stamps.
		if c.board.LockActive() {
			c.settle()
		}
	}
	c.lastFall = now
}

// settle runs after a piece is stamped: clear rows, score them, bring in the
// next piece.
func (c *Controller) settle() {
	c.award(c.board.ClearLines())
	c.spawn()
}

func (c *Controller) award(n int) {
	if n <= 0 {
		return
	}

	c.lines += n
	c.score += LinePoints(n, c.level)

	level := LevelFor(c.lines, c.cfg.LinesPerLevel)
	for c.level < level {
		c.level++
		c.fallInterval = time.Duration(float64(c.fallInterval) * c.cfg.SpeedupFactor)
		c.logger.Printf("level %d, fall interval %s", c.level, c.fallInterval)
	}
}

func (c *Controller) spawn() {
	if !c.board.Spawn(c.gen.Next()) {
		c.state = GameOver
		c.logger.Printf("game over: score %d, level %d, lines %d", c.score, c.level, c.lines)
		return
	}

	kind := c.board.Active().Kind
	n, _ := c.spawns.Get(kind)
	c.spawns.Put(kind, n+1)
	c.pieces++
}

// State returns the current mode.
func (c *Controller) State() State { return c.state }

func (c *Controller) Score() int { return c.score }
func (c *Controller) Level() int { return c.level }
func (c *Controller) Lines() int { return c.lines }

// FallInterval returns the current gravity period.
func (c *Controller) FallInterval() time.Duration { return c.fallInterval }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Score:        c.score,
		Level:        c.level,
		Lines:        c.lines,
		FallInterval: c.fallInterval,
		State:        c.state,
		Pieces:       c.pieces,
	}
}

// SpawnCount returns how many pieces of kind k have become active this game.
func (c *Controller) SpawnCount(k piece.Kind) int {
	n, _ := c.spawns.Get(k)
	return n
}
