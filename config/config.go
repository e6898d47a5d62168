// Package config holds the settings for the ropesim sandbox and the
// command line and environment layers that populate them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Run modes
const (
	ModeInteractive = "interactive"
	ModeHeadless    = "headless"
)

// PresetCount is the number of built-in scenes.
const PresetCount = 6

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "ROPESIM_"

// Config represents all the settings for the application
type Config struct {
	// Physics
	Gravity            float64
	SolveIterations    int
	ConstrainMinLength bool
	FloorY             float64
	TimeStep           float64
	Seed               int64
	CompactDeadLinks   bool

	// Wind
	WindStrength float64
	WindScale    float64
	WindSpeed    float64

	// Editing
	PointRadius float64

	// Application
	Mode       string
	Preset     int // 0 starts with an empty scene
	Frames     int
	OutputFile string
	LogFile    string
	Zoom       float64
	Debug      bool
	Mute       bool
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Gravity:            10,
		SolveIterations:    5,
		ConstrainMinLength: true,
		FloorY:             -20,
		TimeStep:           1.0 / 60,
		WindScale:          0.35,
		WindSpeed:          0.6,
		PointRadius:        0.25,
		Mode:               ModeInteractive,
		Frames:             180,
		OutputFile:         "-",
		LogFile:            "ropesim.log",
		Zoom:               4,
	}
}

// RegisterFlags binds every field to a command-line flag on set, using the
// current values as defaults.
func (c *Config) RegisterFlags(set *flag.FlagSet) {
	// Physics options
	set.Float64Var(&c.Gravity, "gravity", c.Gravity, "Downward acceleration in world units/s²")
	set.IntVar(&c.SolveIterations, "iterations", c.SolveIterations, "Constraint relaxation sweeps per frame")
	set.BoolVar(&c.ConstrainMinLength, "rigid", c.ConstrainMinLength, "Keep links at full length (false lets them go slack)")
	set.Float64Var(&c.FloorY, "floor", c.FloorY, "Points falling below this height are removed")
	set.Float64Var(&c.TimeStep, "dt", c.TimeStep, "Simulation timestep in seconds")
	set.Int64Var(&c.Seed, "seed", c.Seed, "Seed for relaxation order and wind (0 = random)")
	set.BoolVar(&c.CompactDeadLinks, "compact", c.CompactDeadLinks, "Drop cut links when the relaxation order is rebuilt")

	// Wind options
	set.Float64Var(&c.WindStrength, "wind", c.WindStrength, "Peak wind acceleration (0 disables wind)")
	set.Float64Var(&c.WindScale, "wind-scale", c.WindScale, "Spatial frequency of wind gusts")
	set.Float64Var(&c.WindSpeed, "wind-speed", c.WindSpeed, "How fast wind gusts evolve")

	// Editing options
	set.Float64Var(&c.PointRadius, "radius", c.PointRadius, "Pick radius for points under the pointer")

	// Application options
	set.StringVar(&c.Mode, "mode", c.Mode, "Run mode: interactive, headless")
	set.IntVar(&c.Preset, "preset", c.Preset, "Scene to load at start (1-6, 0 for empty)")
	set.IntVar(&c.Frames, "frames", c.Frames, "Frames to simulate in headless mode")
	set.StringVar(&c.OutputFile, "output", c.OutputFile, "Headless output file ('-' for stdout)")
	set.StringVar(&c.LogFile, "log", c.LogFile, "Log file used in interactive debug mode")
	set.Float64Var(&c.Zoom, "zoom", c.Zoom, "Terminal columns per world unit")
	set.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	set.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound in interactive mode")
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.SolveIterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", c.SolveIterations))
	}
	if c.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("dt must be positive, got %g", c.TimeStep))
	}
	if c.PointRadius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", c.PointRadius))
	}
	if c.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom must be positive, got %g", c.Zoom))
	}
	if c.Preset < 0 || c.Preset > PresetCount {
		errs = append(errs, fmt.Errorf("preset must be between 0 and %d, got %d", PresetCount, c.Preset))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", c.Frames))
	}
	switch c.Mode {
	case ModeInteractive, ModeHeadless:
	default:
		errs = append(errs, fmt.Errorf("unsupported mode: %s", c.Mode))
	}
	return errors.Join(errs...)
}

// LoadEnv reads an optional dotenv file into the process environment and
// then applies ROPESIM_* variables onto c. A missing file is not an error.
func LoadEnv(c *Config, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	floats := map[string]*float64{
		"GRAVITY":    &c.Gravity,
		"FLOOR":      &c.FloorY,
		"DT":         &c.TimeStep,
		"WIND":       &c.WindStrength,
		"WIND_SCALE": &c.WindScale,
		"WIND_SPEED": &c.WindSpeed,
		"RADIUS":     &c.PointRadius,
		"ZOOM":       &c.Zoom,
	}
	ints := map[string]*int{
		"ITERATIONS": &c.SolveIterations,
		"PRESET":     &c.Preset,
		"FRAMES":     &c.Frames,
	}
	bools := map[string]*bool{
		"RIGID":   &c.ConstrainMinLength,
		"COMPACT": &c.CompactDeadLinks,
		"DEBUG":   &c.Debug,
		"MUTE":    &c.Mute,
	}
	strs := map[string]*string{
		"MODE":   &c.Mode,
		"OUTPUT": &c.OutputFile,
		"LOG":    &c.LogFile,
	}

	for name, dst := range floats {
		if raw, ok := lookup(EnvPrefix + name); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
			}
			*dst = v
		}
	}
	for name, dst := range ints {
		if raw, ok := lookup(EnvPrefix + name); ok {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
			}
			*dst = v
		}
	}
	for name, dst := range bools {
		if raw, ok := lookup(EnvPrefix + name); ok {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
			}
			*dst = v
		}
	}
	for name, dst := range strs {
		if raw, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(raw)
		}
	}
	if raw, ok := lookup(EnvPrefix + "SEED"); ok {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED: %w", EnvPrefix, err)
		}
		c.Seed = v
	}
	return nil
}
