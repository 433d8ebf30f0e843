//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"blockfall/internal/app"
	"blockfall/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logFile, err := app.SetupLogging(cfg.LogDir, cfg.Debug, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := cfg.Game.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}

	state := game.New(cfg.Game)
	state.SetLogger(log.Default())
	g := app.New(state, cfg)

	w, h := cfg.Game.PixelSize()
	ebiten.SetWindowTitle("blockfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale+cfg.HUDWidth, h*cfg.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
