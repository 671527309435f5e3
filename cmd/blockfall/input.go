package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/game"
)

const (
	keyRepeatDelay    = 200 * time.Millisecond
	keyRepeatInterval = 100 * time.Millisecond
)

// repeatKey fires once on press and then repeatedly while held.
type repeatKey struct {
	key     ebiten.Key
	cmd     game.Command
	pressed time.Time
	fired   time.Time
}

// keyboard turns key state into game commands. Bindings are fixed.
type keyboard struct {
	repeating []*repeatKey
	single    []binding
}

type binding struct {
	key ebiten.Key
	cmd game.Command
}

func newKeyboard() *keyboard {
	return &keyboard{
		repeating: []*repeatKey{
			{key: ebiten.KeyLeft, cmd: game.MoveLeft},
			{key: ebiten.KeyRight, cmd: game.MoveRight},
			{key: ebiten.KeyDown, cmd: game.SoftDrop},
		},
		single: []binding{
			{ebiten.KeyUp, game.Rotate},
			{ebiten.KeyZ, game.Rotate},
			{ebiten.KeyX, game.RotateCounterClockwise},
			{ebiten.KeySpace, game.HardDrop},
			{ebiten.KeyP, game.TogglePause},
			{ebiten.KeyR, game.Restart},
		},
	}
}

// Poll calls push for every command triggered since the previous poll.
func (k *keyboard) Poll(now time.Time, push func(game.Command)) {
	for _, rk := range k.repeating {
		switch {
		case inpututil.IsKeyJustPressed(rk.key):
			rk.pressed = now
			rk.fired = now
			push(rk.cmd)
		case ebiten.IsKeyPressed(rk.key):
			if now.Sub(rk.pressed) >= keyRepeatDelay && now.Sub(rk.fired) >= keyRepeatInterval {
				rk.fired = now
				push(rk.cmd)
			}
		}
	}

	for _, b := range k.single {
		if inpututil.IsKeyJustPressed(b.key) {
			push(b.cmd)
		}
	}
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
