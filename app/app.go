// Package app wires a game session to its store, stats, sound and scoreboard.
// Both frontends build on it.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/scoreboard"
	"snake-arcade/store"
)

type App struct {
	Config config.Config
	Game   *game.Game
	Sound  *audio.SoundManager

	store      store.Store
	stats      *manager.StatsManager
	scoreboard *scoreboard.Server
}

// New opens the high score store and builds a game on grid. A nil clock lets
// the frontend's Scheduler provide time once the game is attached.
// Sound and scoreboard failures are logged and otherwise ignored.
func New(cfg config.Config, grid types.Grid, clock game.Clock) (*App, error) {
	st, err := store.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		return nil, err
	}

	// History lives for this process only; StatsFile is an export, never read back
	stats := manager.NewStatsManager()

	g := game.NewGame(game.Options{
		Grid:         grid,
		TickInterval: cfg.TickInterval,
		Store:        st,
		Stats:        stats,
		Clock:        clock,
	})

	a := &App{
		Config: cfg,
		Game:   g,
		Sound:  audio.NewSoundManager(),
		store:  st,
		stats:  stats,
	}

	if cfg.Sound {
		if err := a.Sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
	}
	a.Sound.SetHighScore(g.HighScore())
	g.AddListener(a.Sound)

	if cfg.ScoreboardAddr != "" {
		a.scoreboard = scoreboard.New(st)
		a.scoreboard.Start(cfg.ScoreboardAddr)
	}
	return a, nil
}

// ToggleSound flips the mute flag and reports the new state
func (a *App) ToggleSound() bool {
	muted := !a.Sound.Muted()
	a.Sound.SetMuted(muted)
	return muted
}

// Close exports the game history and releases every resource
func (a *App) Close() {
	if a.scoreboard != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := a.scoreboard.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("scoreboard shutdown")
		}
		cancel()
	}
	a.Sound.Cleanup()

	if a.Config.StatsFile != "" {
		if err := a.stats.SaveToFile(a.Config.StatsFile); err != nil {
			log.Error().Err(err).Str("path", a.Config.StatsFile).Msg("could not export game history")
		}
	}
	if err := a.store.Close(); err != nil {
		log.Error().Err(err).Msg("close store")
	}
}
