// Command snake-tui plays the game in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snake-arcade/app"
	"snake-arcade/config"
	"snake-arcade/tui"
)

func main() {
	cfg, err := config.Load("snake-tui", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// The screen owns stdout, so logs go to a file
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.Nop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	a, err := app.New(cfg, tui.GridForScreen(cols, rows), nil)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frontend := tui.New(screen, a.Game, func(r rune) {
		if r == 'm' || r == 'M' {
			log.Info().Bool("muted", a.ToggleSound()).Msg("sound toggled")
		}
	})
	frontend.Run(ctx)
	return nil
}
