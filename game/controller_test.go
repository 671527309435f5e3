package game_test

import (
	"bytes"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1000, 0)

func newController(t *testing.T, kinds ...piece.Kind) *game.Controller {
	t.Helper()
	c, err := game.New(game.DefaultConfig(), piece.NewSequenceGenerator(kinds...), t0)
	require.NoError(t, err)
	return c
}

func activeY(t *testing.T, c *game.Controller) int {
	t.Helper()
	cells, ok := c.ActiveCells()
	require.True(t, ok, "expected an active piece")
	minY := cells[0].Y
	for _, p := range cells {
		minY = min(minY, p.Y)
	}
	return minY
}

func TestNewController(t *testing.T) {
	c := newController(t, piece.I, piece.O)

	assert.Equal(t, 0, c.Score())
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, 0, c.Lines())
	assert.Equal(t, game.Running, c.State())
	assert.Equal(t, time.Second, c.FallInterval())
	assert.Equal(t, 10, c.Width())
	assert.Equal(t, 20, c.Height())

	assert.Equal(t, piece.I, c.ActiveKind())
	assert.Equal(t, piece.O, c.NextKind())

	shape, ok := c.NextShape()
	require.True(t, ok)
	assert.Equal(t, piece.Offsets(piece.O, 0), shape)

	cells, ok := c.ActiveCells()
	require.True(t, ok)
	assert.Equal(t, [4]piece.Point{{X: 5, Y: -1}, {X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}}, cells)
}

func TestNewRejectsBadInput(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 2
	cfg.LinesPerLevel = 0

	_, err := game.New(cfg, piece.NewSequenceGenerator(piece.I), t0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "lines per level")

	_, err = game.New(game.DefaultConfig(), nil, t0)
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, game.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*game.Config)
	}{
		{"height", func(c *game.Config) { c.Height = 3 }},
		{"fall interval", func(c *game.Config) { c.InitialFallInterval = 0 }},
		{"speedup zero", func(c *game.Config) { c.SpeedupFactor = 0 }},
		{"speedup above one", func(c *game.Config) { c.SpeedupFactor = 1.5 }},
		{"lines per level", func(c *game.Config) { c.LinesPerLevel = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), game.ErrInvalidConfig)
		})
	}
}

func TestConfigNewGenerator(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Randomizer = piece.RandomizerBag
	gen, err := cfg.NewGenerator()
	require.NoError(t, err)
	assert.NotNil(t, gen)

	cfg.Randomizer = "nes"
	_, err = cfg.NewGenerator()
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestMoveCommands(t *testing.T) {
	c := newController(t, piece.I)

	assert.True(t, c.Handle(game.MoveLeft, t0))
	cells, _ := c.ActiveCells()
	assert.Equal(t, 4, cells[0].X)

	assert.True(t, c.Handle(game.MoveRight, t0))
	assert.True(t, c.Handle(game.MoveRight, t0))
	cells, _ = c.ActiveCells()
	assert.Equal(t, 6, cells[0].X)

	assert.True(t, c.Handle(game.Rotate, t0))
	cells, _ = c.ActiveCells()
	assert.Equal(t, [4]piece.Point{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}, {X: 8, Y: 0}}, cells)

	assert.True(t, c.Handle(game.RotateCounterClockwise, t0))
	cells, _ = c.ActiveCells()
	assert.Equal(t, 6, cells[0].X)
}

func TestGravity(t *testing.T) {
	c := newController(t, piece.I)
	require.Equal(t, -1, activeY(t, c))

	c.Tick(t0.Add(time.Second))
	assert.Equal(t, -1, activeY(t, c), "gravity waits for more than one interval")

	c.Tick(t0.Add(time.Second + time.Millisecond))
	assert.Equal(t, 0, activeY(t, c))

	c.Tick(t0.Add(2 * time.Second))
	assert.Equal(t, 0, activeY(t, c))

	c.Tick(t0.Add(2*time.Second + 2*time.Millisecond))
	assert.Equal(t, 1, activeY(t, c))
}

func TestSoftDropResetsFallTimer(t *testing.T) {
	c := newController(t, piece.I)

	assert.True(t, c.Handle(game.SoftDrop, t0.Add(600*time.Millisecond)))
	assert.Equal(t, 0, activeY(t, c))

	c.Tick(t0.Add(1100 * time.Millisecond))
	assert.Equal(t, 0, activeY(t, c), "soft drop restarted the interval")

	c.Tick(t0.Add(1601 * time.Millisecond))
	assert.Equal(t, 1, activeY(t, c))
}

func TestGravityLocksRestingPiece(t *testing.T) {
	c := newController(t, piece.I, piece.O)

	for c.Handle(game.SoftDrop, t0) {
	}
	assert.Equal(t, 16, activeY(t, c))
	assert.Equal(t, piece.None, c.CellAt(5, 19), "resting is not locked")

	c.Tick(t0.Add(2 * time.Second))

	assert.Equal(t, piece.I, c.CellAt(5, 19))
	assert.Equal(t, piece.I, c.CellAt(5, 16))
	assert.Equal(t, piece.O, c.ActiveKind())
	assert.Equal(t, piece.I, c.NextKind())
	assert.Equal(t, game.Running, c.State())
	assert.Equal(t, 0, c.Score())
}

func TestHardDrop(t *testing.T) {
	c := newController(t, piece.I, piece.T)

	assert.True(t, c.Handle(game.HardDrop, t0))
	assert.Equal(t, piece.I, c.CellAt(5, 19))
	assert.Equal(t, piece.T, c.ActiveKind())
	assert.Equal(t, 0, c.Score())

	snap := c.Snapshot()
	assert.Equal(t, 2, snap.Pieces)
	assert.Equal(t, 1, c.SpawnCount(piece.I))
	assert.Equal(t, 1, c.SpawnCount(piece.T))
	assert.Equal(t, 0, c.SpawnCount(piece.Z))
}

func TestPause(t *testing.T) {
	c := newController(t, piece.I)
	before, _ := c.ActiveCells()

	assert.True(t, c.Handle(game.TogglePause, t0))
	assert.Equal(t, game.Paused, c.State())

	for _, cmd := range []game.Command{game.MoveLeft, game.MoveRight, game.SoftDrop, game.Rotate, game.RotateCounterClockwise, game.HardDrop} {
		assert.False(t, c.Handle(cmd, t0), "%s while paused", cmd)
	}
	c.Tick(t0.Add(10 * time.Second))

	after, _ := c.ActiveCells()
	assert.Equal(t, before, after)
	assert.Equal(t, piece.None, c.CellAt(5, 19))

	assert.True(t, c.Handle(game.TogglePause, t0))
	assert.Equal(t, game.Running, c.State())
	assert.True(t, c.Handle(game.MoveLeft, t0))
}

func stackOut(t *testing.T, c *game.Controller) int {
	t.Helper()
	drops := 0
	for c.State() == game.Running {
		require.True(t, c.Handle(game.HardDrop, t0))
		drops++
		require.LessOrEqual(t, drops, 100)
	}
	return drops
}

func TestGameOverWhenSpawnOverlaps(t *testing.T) {
	c := newController(t, piece.O)

	// Each O covers two rows of columns 4 and 5; the tenth fills rows 0-1.
	for i := 0; i < 9; i++ {
		require.True(t, c.Handle(game.HardDrop, t0))
		require.Equal(t, game.Running, c.State(), "drop %d", i+1)
	}
	require.True(t, c.Handle(game.HardDrop, t0))

	assert.Equal(t, game.GameOver, c.State())
	assert.Equal(t, piece.None, c.ActiveKind())
	_, ok := c.ActiveCells()
	assert.False(t, ok)
	assert.Equal(t, 10, c.Snapshot().Pieces)
}

func TestGameOverIgnoresCommandsUntilRestart(t *testing.T) {
	c := newController(t, piece.O)
	stackOut(t, c)
	require.Equal(t, game.GameOver, c.State())

	for _, cmd := range []game.Command{game.MoveLeft, game.SoftDrop, game.HardDrop, game.TogglePause} {
		assert.False(t, c.Handle(cmd, t0), "%s after game over", cmd)
	}
	c.Tick(t0.Add(time.Minute))
	assert.Equal(t, game.GameOver, c.State())

	assert.True(t, c.Handle(game.Restart, t0.Add(time.Minute)))
	assert.Equal(t, game.Running, c.State())
	assert.Equal(t, 0, c.Score())
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, 0, c.Lines())
	assert.Equal(t, time.Second, c.FallInterval())
	assert.Equal(t, piece.None, c.CellAt(4, 19))
	assert.Equal(t, piece.O, c.ActiveKind())
	assert.Equal(t, piece.O, c.NextKind())
	assert.Equal(t, 1, c.SpawnCount(piece.O))
}

func TestRestartWhilePaused(t *testing.T) {
	c := newController(t, piece.T)
	require.True(t, c.Handle(game.HardDrop, t0))
	require.True(t, c.Handle(game.TogglePause, t0))

	assert.True(t, c.Handle(game.Restart, t0))
	assert.Equal(t, game.Running, c.State())
	assert.Empty(t, occupied(c))
}

func occupied(c *game.Controller) []piece.Point {
	var out []piece.Point
	for p, k := range c.Cells() {
		if k != piece.None {
			out = append(out, p)
		}
	}
	return out
}

func TestGhostCells(t *testing.T) {
	c := newController(t, piece.I)
	ghost, ok := c.GhostCells()
	require.True(t, ok)
	assert.Equal(t, [4]piece.Point{{X: 5, Y: 16}, {X: 5, Y: 17}, {X: 5, Y: 18}, {X: 5, Y: 19}}, ghost)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	c, err := game.New(game.DefaultConfig(), piece.NewSequenceGenerator(piece.O), t0,
		game.WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, err)

	stackOut(t, c)
	assert.Contains(t, buf.String(), "game over")

	c.Handle(game.Restart, t0)
	assert.Contains(t, buf.String(), "game restarted")
}

func TestSeededGamesAreReproducible(t *testing.T) {
	play := func() game.Snapshot {
		cfg := game.DefaultConfig()
		cfg.Seed = 77
		gen, err := cfg.NewGenerator()
		require.NoError(t, err)
		c, err := game.New(cfg, gen, t0)
		require.NoError(t, err)

		cmds := []game.Command{game.MoveLeft, game.Rotate, game.HardDrop, game.MoveRight, game.MoveRight, game.HardDrop}
		for i := 0; i < 40 && c.State() == game.Running; i++ {
			c.Handle(cmds[i%len(cmds)], t0)
		}
		return c.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestStateAndCommandStrings(t *testing.T) {
	assert.Equal(t, "running", game.Running.String())
	assert.Equal(t, "paused", game.Paused.String())
	assert.Equal(t, "game over", game.GameOver.String())
	assert.Equal(t, "hard-drop", game.HardDrop.String())
	assert.Equal(t, "Command(99)", game.Command(99).String())
}
