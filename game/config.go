package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid game config")

const (
	DefaultFallInterval  = time.Second
	DefaultSpeedupFactor = 0.8
	DefaultLinesPerLevel = 10
)

// Config holds the tunables of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width  int
	Height int

	// InitialFallInterval is the gravity period at level 1.
	InitialFallInterval time.Duration
	// SpeedupFactor multiplies the fall interval once per level gained.
	SpeedupFactor float64
	LinesPerLevel int

	// Randomizer names the piece generator built by NewGenerator.
	Randomizer string
	Seed       uint64
}

func DefaultConfig() Config {
	return Config{
		Width:               board.DefaultWidth,
		Height:              board.DefaultHeight,
		InitialFallInterval: DefaultFallInterval,
		SpeedupFactor:       DefaultSpeedupFactor,
		LinesPerLevel:       DefaultLinesPerLevel,
		Randomizer:          piece.RandomizerUniform,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 4 {
		errs = append(errs, fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width))
	}
	if c.Height < 4 {
		errs = append(errs, fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height))
	}
	if c.InitialFallInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: fall interval must be positive, got %s", ErrInvalidConfig, c.InitialFallInterval))
	}
	if c.SpeedupFactor <= 0 || c.SpeedupFactor > 1 {
		errs = append(errs, fmt.Errorf("%w: speedup factor must be in (0,1], got %g", ErrInvalidConfig, c.SpeedupFactor))
	}
	if c.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel))
	}
	return errors.Join(errs...)
}

// NewGenerator builds the piece generator named by c.Randomizer.
func (c Config) NewGenerator() (piece.Generator, error) {
	gen, err := piece.NewGenerator(c.Randomizer, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return gen, nil
}
