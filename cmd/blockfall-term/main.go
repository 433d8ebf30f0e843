package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"blockfall/internal/app"
	"blockfall/internal/game"
	"blockfall/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	debugLog := flag.Bool("debug", false, "write a debug log")
	logDir := flag.String("log-dir", "logs", "directory for the debug log")
	frame := flag.Duration("frame", term.DefaultFrame, "redraw interval")
	flag.Parse()

	// The terminal owns stdout/stderr while running, so logs go to a file or nowhere.
	logFile, err := app.SetupLogging(*logDir, *debugLog, io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "blockfall crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	state := game.New(cfg)
	state.SetLogger(log.Default())
	runner := term.NewRunner(screen, state)
	runner.SetFrame(*frame)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = runner.Run(ctx)
	screen.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
