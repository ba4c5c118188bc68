package main

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snake-arcade/app"
	"snake-arcade/config"
	"snake-arcade/ui"
)

func main() {
	cfg, err := config.Load("snake", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	window := ui.NewWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.TileSize, "Neon Snake")
	defer window.Close()

	a, err := app.New(cfg, window.Grid(), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer a.Close()

	window.Run(a.Game, func(key int32) {
		if key == rl.KeyM {
			log.Info().Bool("muted", a.ToggleSound()).Msg("sound toggled")
		}
	})
}
