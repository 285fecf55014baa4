// Package config holds the command-line parameters of a session.
package config

import (
	"errors"
	"flag"
	"fmt"

	"abtestbed/pkg/engine/world"
	"abtestbed/pkg/game/entities"
	"abtestbed/pkg/game/hazards"
)

// Layout names
const (
	LayoutClassic = "classic"
	LayoutRandom  = "random"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols       int
	Rows       int
	CellWidth  float64
	CellHeight float64

	TPS            int
	Fuse           float64 // seconds
	HazardLifetime float64 // seconds
	HazardPolicy   string
	BlastRadius    int
	BombCapacity   int
	PlayerSpeed    float64 // world units per second

	Layout       string
	Seed         int64
	BrickDensity float64

	Renderer  string
	Locale    string
	LocaleDir string
	Scale     int
	Dump      bool
}

// Default returns the reference configuration: a 15x11 arena of 40x36 cells
// at 40 ticks per second.
func Default() *Config {
	return &Config{
		Cols:       15,
		Rows:       11,
		CellWidth:  40,
		CellHeight: 36,

		TPS:            40,
		Fuse:           2.0,
		HazardLifetime: 4.0,
		HazardPolicy:   hazards.PolicyTimerOnly.String(),
		BlastRadius:    2,
		BombCapacity:   1,
		PlayerSpeed:    70,

		Layout:       LayoutClassic,
		Seed:         42,
		BrickDensity: 0.7,

		Renderer:  RendererTUI,
		Locale:    "en_US",
		LocaleDir: "locales",
		Scale:     1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "arena width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "arena height in cells")
	fs.Float64Var(&c.CellWidth, "cell-width", c.CellWidth, "cell width in world units")
	fs.Float64Var(&c.CellHeight, "cell-height", c.CellHeight, "cell height in world units")

	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Fuse, "fuse", c.Fuse, "bomb fuse in seconds")
	fs.Float64Var(&c.HazardLifetime, "hazard-lifetime", c.HazardLifetime, "explosion lifetime in seconds")
	fs.StringVar(&c.HazardPolicy, "hazard-policy", c.HazardPolicy, "when explosions end: timer or collision")
	fs.IntVar(&c.BlastRadius, "radius", c.BlastRadius, "blast radius in cells")
	fs.IntVar(&c.BombCapacity, "bombs", c.BombCapacity, "bombs each player may have planted at once")
	fs.Float64Var(&c.PlayerSpeed, "speed", c.PlayerSpeed, "player speed in world units per second")

	fs.StringVar(&c.Layout, "layout", c.Layout, "terrain layout: classic or random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random layout")
	fs.Float64Var(&c.BrickDensity, "bricks", c.BrickDensity, "brick density for the random layout (0-1)")

	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "front-end: tui or ebiten")
	fs.StringVar(&c.Locale, "lang", c.Locale, "message catalog language")
	fs.StringVar(&c.LocaleDir, "locales", c.LocaleDir, "message catalog directory")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier (ebiten)")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the initial map and exit")
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error
	if c.Cols < 3 || c.Rows < 3 {
		errs = append(errs, fmt.Errorf("arena must be at least 3x3, got %dx%d", c.Cols, c.Rows))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Fuse <= 0 {
		errs = append(errs, fmt.Errorf("fuse must be positive, got %v", c.Fuse))
	}
	if c.HazardLifetime <= 0 {
		errs = append(errs, fmt.Errorf("hazard lifetime must be positive, got %v", c.HazardLifetime))
	}
	if _, err := hazards.ParsePolicy(c.HazardPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.BlastRadius < 0 {
		errs = append(errs, fmt.Errorf("radius must not be negative, got %d", c.BlastRadius))
	}
	if c.BombCapacity < 1 {
		errs = append(errs, fmt.Errorf("bombs must be at least 1, got %d", c.BombCapacity))
	}
	if c.PlayerSpeed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %v", c.PlayerSpeed))
	}
	switch c.Layout {
	case LayoutClassic, LayoutRandom:
	default:
		errs = append(errs, fmt.Errorf("unknown layout %q", c.Layout))
	}
	if c.BrickDensity < 0 || c.BrickDensity > 1 {
		errs = append(errs, fmt.Errorf("bricks must be within 0-1, got %v", c.BrickDensity))
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// Geometry returns the grid geometry
func (c *Config) Geometry() world.Geometry {
	return world.Geometry{Cols: c.Cols, Rows: c.Rows, CellWidth: c.CellWidth, CellHeight: c.CellHeight}
}

// Policy returns the parsed hazard policy, falling back to timer-only
func (c *Config) Policy() hazards.Policy {
	p, err := hazards.ParsePolicy(c.HazardPolicy)
	if err != nil {
		return hazards.PolicyTimerOnly
	}
	return p
}

// Loadout returns the per-player bomb settings
func (c *Config) Loadout() entities.Loadout {
	return entities.Loadout{
		Capacity:    c.BombCapacity,
		BlastRadius: c.BlastRadius,
		Fuse:        c.Fuse,
		Speed:       c.PlayerSpeed,
	}
}

// Step returns the simulated length of one tick in seconds
func (c *Config) Step() float64 {
	return 1 / float64(c.TPS)
}
