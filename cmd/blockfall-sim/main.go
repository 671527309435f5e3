package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

func main() {
	cfg := game.DefaultConfig()
	duration := flag.Duration("duration", 10*time.Minute, "Game time to run for.")
	fps := flag.Int("fps", 60, "Frames per second.")
	actionRate := flag.Float64("action-rate", 0.2, "Chance per frame that the bot issues a command.")
	games := flag.Int("games", 0, "Stop after this many finished games (0 = no limit).")
	realtime := flag.Bool("realtime", false, "Run on the wall clock instead of simulated time.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells.")
	flag.DurationVar(&cfg.InitialFallInterval, "fall", cfg.InitialFallInterval, "Gravity interval at level 1.")
	flag.IntVar(&cfg.LinesPerLevel, "lines-per-level", cfg.LinesPerLevel, "Lines needed to advance one level.")
	flag.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "Piece randomizer: uniform or bag.")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "Seed for the piece randomizer and the bot.")
	verbose := flag.Bool("v", false, "Log game events.")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	log.Println("Starting blockfall simulation...")

	// 1. Setup controller, clock and scheduler
	gen, err := cfg.NewGenerator()
	if err != nil {
		log.Fatalf("Failed to create piece generator: %v", err)
	}

	var opts []game.Option
	if *verbose {
		opts = append(opts, game.WithLogger(log.Default()))
	}

	var clock engine.Clock = engine.SystemClock{}
	manual := engine.NewManualClock(time.Unix(0, 0))
	if !*realtime {
		clock = manual
	}

	ctrl, err := game.New(cfg, gen, clock.Now(), opts...)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	bot := NewBotSystem(cfg.Seed, *actionRate)
	bot.MaxGames = *games
	input := &engine.InputSystem{}
	scheduler := engine.NewScheduler(ctrl, clock)
	scheduler.Register(bot)
	scheduler.Register(input)
	scheduler.Register(&engine.GravitySystem{})
	bot.Stop = scheduler.Quit

	// 2. Run the simulation loop
	frameInterval := time.Second / time.Duration(*fps)
	frames := int64(*duration / frameInterval)

	report := &Report{
		Config:        cfg,
		SimulatedTime: *duration,
		FPS:           *fps,
		ActionRate:    *actionRate,
		Realtime:      *realtime,
	}

	startTime := time.Now()
	if *realtime {
		ctx, cancel := context.WithTimeout(context.Background(), *duration)
		defer cancel()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		log.Printf("Running in real time for up to %s...\n", *duration)
		scheduler.Run(ctx, frameInterval)
	} else {
		report.UpdateTime.Samples = make([]time.Duration, 0, frames)

		log.Printf("Running %d frames (%s simulated)...\n", frames, *duration)
		for i := int64(0); i < frames && !bot.Done(); i++ {
			manual.Advance(frameInterval)

			updateStart := time.Now()
			scheduler.Once(frameInterval.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.WallTime = time.Since(startTime)
	report.Scheduler = scheduler.Stats()
	report.TotalFrames = report.Scheduler.Frames
	report.UpdateTime.Finalize()
	report.Games = bot.Results
	report.Current = ctrl.Snapshot()
	report.Commands = bot.Commands
	report.Applied = input.Applied
	report.Ignored = input.Ignored

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
