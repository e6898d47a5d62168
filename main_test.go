package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TFMV/ropesim/config"
	"github.com/TFMV/ropesim/sim"
)

func headlessConfig(t *testing.T, frames int) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Mode = config.ModeHeadless
	cfg.Seed = 1
	cfg.Preset = 1
	cfg.Frames = frames
	cfg.OutputFile = filepath.Join(t.TempDir(), "frame.txt")
	return cfg
}

func runToFile(t *testing.T, ctx context.Context, cfg *config.Config) string {
	t.Helper()
	sandbox := sim.New(cfg, nil)
	if err := sandbox.LoadPreset(cfg.Preset); err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if err := runHeadless(ctx, sandbox, cfg); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	out, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(out)
}

func TestRunHeadlessWritesFinalFrame(t *testing.T) {
	cfg := headlessConfig(t, 30)
	out := runToFile(t, context.Background(), cfg)

	// One paused frame chains the preset before the 30 running frames.
	if !strings.Contains(out, "ropesim frame 31 running") {
		t.Errorf("title missing from output:\n%s", out)
	}
	if !strings.Contains(out, "points 3 locked 1 links 2") {
		t.Errorf("status missing from output:\n%s", out)
	}
	if lines := strings.Split(strings.TrimRight(out, "\n"), "\n"); len(lines) != 26 {
		t.Errorf("output has %d lines, want 26", len(lines))
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := runToFile(t, ctx, headlessConfig(t, 1000))
	if !strings.Contains(out, "ropesim frame 1 running") {
		t.Errorf("canceled run should stop after the settle frame:\n%s", out)
	}
}

func TestRenderOutputBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(t.TempDir(), "missing", "frame.txt")
	if err := renderOutput(sim.New(cfg, nil).Snapshot(), cfg); err == nil {
		t.Fatalf("expected an error writing to a missing directory")
	}
}
