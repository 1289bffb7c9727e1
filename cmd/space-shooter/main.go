package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-shooter/config"
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/core"
	"github.com/lixenwraith/space-shooter/engine"
	"github.com/lixenwraith/space-shooter/input"
	"github.com/lixenwraith/space-shooter/render"
	"github.com/lixenwraith/space-shooter/status"
)

var (
	configFlag     = flag.String("config", "", "YAML tuning file")
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 for time-based")
	tickFlag       = flag.Duration("tick", 0, "Simulation tick interval, overrides config")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to "+logDir)
	statsFlag      = flag.Bool("stats", false, "Show runtime counters beside the playfield")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
)

// options carries parsed command-line flags
type options struct {
	configPath string
	seed       int64
	tick       time.Duration
	debug      bool
	stats      bool
	dumpConfig bool
}

func main() {
	flag.Parse()
	opts := options{
		configPath: *configFlag,
		seed:       *seedFlag,
		tick:       *tickFlag,
		debug:      *debugFlag,
		stats:      *statsFlag,
		dumpConfig: *dumpConfigFlag,
	}
	os.Exit(start(opts, os.Stdout, os.Stderr, tcell.NewScreen))
}

// start runs the program and returns the process exit code
// Deferred cleanup completes before main calls os.Exit
func start(opts options, stdout, stderr io.Writer, newScreen func() (tcell.Screen, error)) int {
	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts.configPath, opts.seed, opts.tick, opts.stats)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}

	if opts.dumpConfig {
		if err := config.Encode(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "Failed to write config: %v\n", err)
			return 1
		}
		return 0
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Panic recovery: ensure terminal is reset even if the game crashes
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(constants.ColorBackground))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	err = run(ctx, screen, cfg, reg)
	screen.Fini()

	for _, line := range reg.Dump() {
		log.Println(line)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// resolveConfig loads the optional file, then applies non-zero flag overrides
func resolveConfig(path string, seed int64, tick time.Duration, stats bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if tick != 0 {
		cfg.TickInterval = tick
	}
	if stats {
		cfg.ShowStats = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run drives one game session until exit is requested or ctx ends
// The loop goroutine owns the simulation; this goroutine owns input mapping and drawing
func run(ctx context.Context, screen tcell.Screen, cfg config.Config, reg *status.Registry) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sim := engine.NewSimulation(cfg, engine.NewRandom(cfg.Seed), reg)
	loop := engine.NewLoop(sim, cfg.TickInterval, reg)
	orchestrator := render.NewDefaultOrchestrator(screen, cfg.ShowStats)
	handler := input.NewHandler(cfg.KeyStep)
	handler.SetScale(orchestrator.Viewport().UnitsPerCol())

	log.Printf("session start: seed=%d tick=%s", cfg.Seed, cfg.TickInterval)

	loopDone := make(chan error, 1)
	core.Go(func() {
		loopDone <- loop.Run(ctx)
	})

	events := make(chan tcell.Event, constants.IntentBufferSize)
	core.Go(func() {
		pollEvents(ctx, screen, events)
	})

	var last engine.Snapshot
	draw := func() {
		rc := render.Context{
			Frame:             last,
			PlayAgainSelected: handler.Selected() == input.ButtonPlayAgain,
		}
		if cfg.ShowStats {
			rc.Stats = reg.Dump()
		}
		orchestrator.RenderFrame(rc)
	}

	for {
		select {
		case err := <-loopDone:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err

		case ev := <-events:
			if rs, ok := ev.(*tcell.EventResize); ok {
				w, h := rs.Size()
				orchestrator.Resize(w, h)
				handler.SetScale(orchestrator.Viewport().UnitsPerCol())
				draw()
				continue
			}
			for _, in := range handler.HandleEvent(ev, last.GameOver) {
				if !loop.Submit(in) {
					log.Printf("intent queue full, dropped %s", in.Kind)
				}
			}

		case snap := <-loop.Frames():
			last = snap
			draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
