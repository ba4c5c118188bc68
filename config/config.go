// Package config loads runtime settings from .env, the environment and flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"snake-arcade/game/types"
)

type Config struct {
	TickInterval   time.Duration
	TileSize       int
	WindowWidth    int
	WindowHeight   int
	Store          string // memory, file or sqlite
	StorePath      string
	StatsFile      string
	Sound          bool
	ScoreboardAddr string // empty disables the HTTP scoreboard
	LogLevel       zerolog.Level
	LogFile        string
}

// Load reads .env (if present), then the environment, then flags from args.
// Flags override the environment.
func Load(name string, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	env := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}
	intEnv := func(key string, def int) int {
		if err != nil {
			return def
		}
		v, convErr := strconv.Atoi(env(key, strconv.Itoa(def)))
		if convErr != nil {
			err = fmt.Errorf("%s: %w", key, convErr)
			return def
		}
		return v
	}

	tickMS := intEnv("TICK_MS", int(types.TickInterval/time.Millisecond))
	cfg.TileSize = intEnv("TILE_SIZE", types.TileSize)
	cfg.WindowWidth = intEnv("WINDOW_WIDTH", 800)
	cfg.WindowHeight = intEnv("WINDOW_HEIGHT", 600)
	if err != nil {
		return cfg, err
	}
	sound, err := strconv.ParseBool(env("SOUND", "true"))
	if err != nil {
		return cfg, fmt.Errorf("SOUND: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&tickMS, "speed", tickMS, "Game speed in milliseconds per tick (lower = faster)")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Tile size in pixels")
	fs.StringVar(&cfg.Store, "store", env("STORE", "file"), "High score store: memory, file or sqlite")
	fs.StringVar(&cfg.StorePath, "store-path", env("STORE_PATH", ""), "Path of the high score file or database")
	fs.StringVar(&cfg.StatsFile, "stats", env("STATS_FILE", ""), "Export this session's game history to a JSON file on exit")
	fs.BoolVar(&cfg.Sound, "sound", sound, "Play sound effects")
	fs.StringVar(&cfg.ScoreboardAddr, "scoreboard", env("SCOREBOARD_ADDR", ""), "Serve the high score over HTTP on this address")
	fs.StringVar(&cfg.LogFile, "log-file", env("SNAKE_LOG_FILE", "snake.log"), "Log file for the terminal frontend")
	level := fs.String("log-level", env("LOG_LEVEL", "info"), "Log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.TickInterval = time.Duration(tickMS) * time.Millisecond
	if cfg.LogLevel, err = zerolog.ParseLevel(*level); err != nil {
		return cfg, fmt.Errorf("log level: %w", err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath(cfg.Store)
	}
	return cfg, cfg.validate()
}

func defaultStorePath(kind string) string {
	if strings.EqualFold(kind, "sqlite") {
		return "data/snake.db"
	}
	return "data/highscore.json"
}

func (c Config) validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("tile size must be at least 1, got %d", c.TileSize)
	}
	if c.WindowWidth < c.TileSize || c.WindowHeight < c.TileSize {
		return fmt.Errorf("window %dx%d smaller than one tile", c.WindowWidth, c.WindowHeight)
	}
	switch strings.ToLower(c.Store) {
	case "memory", "file", "sqlite":
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}
