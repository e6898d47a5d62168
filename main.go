package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TFMV/ropesim/config"
	"github.com/TFMV/ropesim/editor"
	"github.com/TFMV/ropesim/render"
	"github.com/TFMV/ropesim/sim"
	"github.com/TFMV/ropesim/tui"
)

func main() {
	// Create a context that can be canceled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle OS signals for graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	// Parse configuration from .env, environment and command-line flags
	cfg := parseConfig()

	// Set up logging
	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	var logger *log.Logger
	if cfg.Debug {
		logger = log.Default()
	}

	sandbox := sim.New(cfg, logger)
	if cfg.Preset > 0 {
		if err := sandbox.LoadPreset(cfg.Preset); err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}

	switch cfg.Mode {
	case config.ModeHeadless:
		if err := runHeadless(ctx, sandbox, cfg); err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
	default:
		if err := runInteractive(ctx, sandbox, cfg); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
	}
}

// parseConfig layers defaults, an optional .env file, ROPESIM_* variables
// and command-line flags, in that order
func parseConfig() *config.Config {
	cfg := config.Default()
	if err := config.LoadEnv(cfg, ".env"); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		flag.Usage()
		os.Exit(1)
	}

	return cfg
}

// setupLogging configures the standard logger. The interactive terminal
// owns stdout and stderr, so there the log goes to a file in debug mode
// and nowhere otherwise.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	closeLog := func() {}
	if cfg.Mode == config.ModeInteractive {
		if !cfg.Debug {
			log.SetOutput(io.Discard)
			return closeLog, nil
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closeLog, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		closeLog = func() { f.Close() }
	}

	if cfg.Debug {
		log.Println("Debug mode enabled")
	}
	return closeLog, nil
}

// runHeadless advances the scene for the configured number of frames and
// writes the final frame as ASCII art
func runHeadless(ctx context.Context, sandbox *sim.Sandbox, cfg *config.Config) error {
	if cfg.Preset == 0 {
		log.Println("Warning: no preset selected, simulating an empty scene")
	}

	// One paused frame resolves a chain preset before anything moves.
	sandbox.Frame(editor.Input{}, cfg.TimeStep)
	sandbox.SetRunning(true)
	start := time.Now()

	frames := 0
loop:
	for frames < cfg.Frames {
		select {
		case <-ctx.Done():
			log.Printf("Simulation interrupted after %d frames", frames)
			break loop
		default:
		}
		sandbox.Frame(editor.Input{}, cfg.TimeStep)
		frames++
	}

	g := sandbox.Graph()
	log.Printf("Simulated %d frames in %v: %d points, %d live links",
		frames, time.Since(start).Round(time.Millisecond), len(g.Points), g.LiveLinkCount())

	return renderOutput(sandbox.Snapshot(), cfg)
}

// runInteractive hands the sandbox to the terminal front end
func runInteractive(ctx context.Context, sandbox *sim.Sandbox, cfg *config.Config) error {
	screen, err := tui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	sound, err := tui.NewSound(cfg.Mute)
	if err != nil {
		// Non-fatal, the sandbox runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	app := tui.New(screen, sandbox, cfg, sound, log.Default())
	defer app.Close()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// renderOutput renders the snapshot and writes it to the configured output
func renderOutput(snap sim.Snapshot, cfg *config.Config) error {
	renderer, err := render.GetRenderer("ascii")
	if err != nil {
		return err
	}

	options := render.NewDefaultOptions("ascii")
	options.Zoom = cfg.Zoom

	output, err := renderer.Render(snap, options)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if cfg.OutputFile == "-" {
		_, err = os.Stdout.Write(output)
		return err
	}

	if err := os.WriteFile(cfg.OutputFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Printf("Output saved to %s", cfg.OutputFile)
	return nil
}
