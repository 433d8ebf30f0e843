package app

import (
	"flag"

	"blockfall/internal/game"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Game     game.Config
	Scale    int
	TPS      int
	HUDWidth int
	Debug    bool
	LogDir   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Game: game.DefaultConfig(), Scale: 4, TPS: 60, HUDWidth: 160, LogDir: "logs"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Game.Bind(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "directory for the debug log")
}
