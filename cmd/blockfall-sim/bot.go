package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// GameResult records one finished game.
type GameResult struct {
	Score  int
	Level  int
	Lines  int
	Pieces int
}

// BotSystem plays by pushing random commands, and restarts after game over.
// Register it before the InputSystem so its commands apply in the same frame.
type BotSystem struct {
	rng *rand.Rand
	// ActionRate is the chance of issuing a command on a given frame.
	ActionRate float64
	Results    []GameResult
	Commands   map[game.Command]int

	// MaxGames stops the bot after that many finished games; zero means no
	// limit. Stop, if set, is called once when the limit is reached.
	MaxGames int
	Stop     func()
}

var botCommands = []game.Command{
	game.MoveLeft, game.MoveLeft,
	game.MoveRight, game.MoveRight,
	game.Rotate,
	game.RotateCounterClockwise,
	game.SoftDrop, game.SoftDrop,
	game.HardDrop,
}

func NewBotSystem(seed uint64, actionRate float64) *BotSystem {
	return &BotSystem{
		rng:        rand.New(rand.NewPCG(seed, seed+1)),
		ActionRate: actionRate,
		Commands:   make(map[game.Command]int),
	}
}

// Done reports whether the bot has played MaxGames games.
func (b *BotSystem) Done() bool {
	return b.MaxGames > 0 && len(b.Results) >= b.MaxGames
}

func (b *BotSystem) Execute(frame *engine.Frame) {
	if b.Done() {
		return
	}
	if frame.Game.State() == game.GameOver {
		snap := frame.Game.Snapshot()
		b.Results = append(b.Results, GameResult{
			Score:  snap.Score,
			Level:  snap.Level,
			Lines:  snap.Lines,
			Pieces: snap.Pieces,
		})
		if b.Done() {
			if b.Stop != nil {
				b.Stop()
			}
			return
		}
		b.push(frame, game.Restart)
		return
	}

	if b.rng.Float64() >= b.ActionRate {
		return
	}
	b.push(frame, botCommands[b.rng.IntN(len(botCommands))])
}

func (b *BotSystem) push(frame *engine.Frame, cmd game.Command) {
	frame.Commands.Push(cmd)
	b.Commands[cmd]++
}
