package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

const targetFPS = 60

// Game implements ebiten.Game on top of the frame scheduler.
type Game struct {
	scheduler *engine.Scheduler
	clock     engine.Clock
	keyboard  *keyboard

	imguiBackend *debugui_ebiten.ImguiBackend
	debug        *debugui.System
}

func (g *Game) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
		defer g.imguiBackend.EndFrame()
		g.debug.CaptureInput()
	}

	if g.debug == nil || !g.debug.Input.WantCaptureKeyboard {
		g.keyboard.Poll(g.clock.Now(), g.scheduler.Push)
	}

	g.scheduler.Once(1.0 / targetFPS)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.scheduler.Game())

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenSize(g.scheduler.Game())
}

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells.")
	flag.DurationVar(&cfg.InitialFallInterval, "fall", cfg.InitialFallInterval, "Gravity interval at level 1.")
	flag.IntVar(&cfg.LinesPerLevel, "lines-per-level", cfg.LinesPerLevel, "Lines needed to advance one level.")
	flag.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "Piece randomizer: uniform or bag.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece randomizer.")
	debug := flag.Bool("debug", false, "Show the ImGui debug windows.")
	flag.Parse()
	cfg.Seed = *seed

	gen, err := cfg.NewGenerator()
	if err != nil {
		log.Fatalf("Failed to create piece generator: %v", err)
	}

	clock := engine.SystemClock{}
	ctrl, err := game.New(cfg, gen, clock.Now(), game.WithLogger(log.Default()))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Starting %dx%d game, randomizer %s, seed %d", cfg.Width, cfg.Height, cfg.Randomizer, cfg.Seed)

	scheduler := engine.NewGameScheduler(ctrl, clock)
	scheduler.Register(&engine.StateWatcher{
		OnChange: func(from, to game.State) {
			log.Printf("State %s -> %s", from, to)
		},
	})

	g := &Game{
		scheduler: scheduler,
		clock:     clock,
		keyboard:  newKeyboard(),
	}

	width, height := screenSize(ctrl)
	if *debug {
		g.imguiBackend = debugui_ebiten.NewImguiBackend("blockfall (debug)", width+340, height)
		g.debug = debugui.NewSystem(scheduler)
		scheduler.Register(g.debug)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}
	ebiten.SetTPS(targetFPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
