package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/store"
)

// State is the phase of the game loop
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAMEOVER"
	default:
		return "MENU"
	}
}

// Listener receives side signals of the tick, e.g. for sound effects
type Listener interface {
	OnFoodEaten(food entity.Food, score int)
	OnGameOver(score, highScore int, cause types.CollisionType)
}

type Options struct {
	Grid         types.Grid
	TickInterval time.Duration // Defaults to types.TickInterval
	Store        store.Store   // High score slot; nil keeps it in memory
	Stats        *manager.StatsManager
	Clock        Clock  // Defaults to the attached Scheduler, else SystemClock
	Seed         uint64 // Zero seeds from the clock
}

// Game is the single game session shared by the frontends
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	EndTime   time.Time

	state         State
	snake         *entity.Snake
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
	stateMgr      *manager.StateManager
	particles     *manager.PopulationManager
	stats         *manager.StatsManager
	lastCollision types.CollisionType

	tickInterval time.Duration
	accumulated  time.Duration
	lastFrame    time.Time
	nextGrid     *types.Grid

	clock     Clock
	ownClock  bool // Clock came from Options
	rng       *rand.Rand
	listeners []Listener
}

func NewGame(opts Options) *Game {
	if opts.TickInterval <= 0 {
		opts.TickInterval = types.TickInterval
	}
	ownClock := opts.Clock != nil
	if !ownClock {
		opts.Clock = SystemClock{}
	}
	if opts.Stats == nil {
		opts.Stats = manager.NewStatsManager()
	}
	if opts.Grid.Width < 1 || opts.Grid.Height < 1 {
		opts.Grid = types.GridFromViewport(opts.Grid.Width, opts.Grid.Height, 1)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Clock.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	return &Game{
		Grid:         opts.Grid,
		state:        StateMenu,
		collisionMgr: manager.NewCollisionManager(opts.Grid),
		foodMgr:      manager.NewFoodManager(opts.Grid, rng),
		stateMgr:     manager.NewStateManager(opts.Store),
		particles:    manager.NewPopulationManager(rng),
		stats:        opts.Stats,
		tickInterval: opts.TickInterval,
		clock:        opts.Clock,
		ownClock:     ownClock,
		rng:          rng,
	}
}

func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// Attach registers the game's frame callback with the host loop. Without an
// explicit Options.Clock the game also reads time from s.
func (g *Game) Attach(s Scheduler) {
	if !g.ownClock {
		g.clock = s
	}
	s.OnFrame(g.Frame)
}

func (g *Game) State() State {
	return g.state
}

// Start begins a new game from the menu or the game-over screen
func (g *Game) Start() {
	if g.state == StatePlaying {
		return
	}
	g.initEntities()
	g.state = StatePlaying
	log.Info().Str("session", g.UUID).Int("width", g.Grid.Width).Int("height", g.Grid.Height).Msg("game started")
}

// Restart is only honoured after a game over
func (g *Game) Restart() {
	if g.state != StateGameOver {
		return
	}
	g.Start()
}

func (g *Game) initEntities() {
	if g.nextGrid != nil {
		g.Grid = *g.nextGrid
		g.nextGrid = nil
	}
	g.UUID = uuid.New().String()
	g.StartTime = g.clock.Now()
	g.EndTime = time.Time{}

	g.collisionMgr = manager.NewCollisionManager(g.Grid)
	g.foodMgr = manager.NewFoodManager(g.Grid, g.rng)
	g.snake = entity.NewSnake()
	if err := g.foodMgr.GenerateFood(g.snake); err != nil {
		log.Warn().Err(err).Str("session", g.UUID).Msg("initial food placement failed")
	}

	g.particles.Clear()
	g.stateMgr.Reset()
	g.accumulated = 0
	g.lastCollision = types.NoCollision
}

// Resize records new grid dimensions; they apply when the next game starts
func (g *Game) Resize(grid types.Grid) {
	if grid == g.Grid {
		g.nextGrid = nil
		return
	}
	g.nextGrid = &grid
}

// SetDirection forwards a directional intent to the snake while playing
func (g *Game) SetDirection(dir types.Point) {
	if g.state != StatePlaying {
		return
	}
	g.snake.SetDirection(dir)
}

// Frame is called once per rendered frame. Particles move every frame; the
// snake advances once the accumulated time exceeds the tick interval.
func (g *Game) Frame(now time.Time) {
	if g.lastFrame.IsZero() {
		g.lastFrame = now
	}
	delta := now.Sub(g.lastFrame)
	g.lastFrame = now
	if delta < 0 {
		delta = 0
	}

	g.particles.Update()

	if g.state != StatePlaying {
		return
	}
	g.accumulated += delta
	if g.accumulated > g.tickInterval {
		g.accumulated = 0
		g.Tick()
	}
}

// Tick runs one simulation step: move, collide, then eat
func (g *Game) Tick() {
	if g.state != StatePlaying {
		return
	}

	head := g.snake.Advance()

	if cause := g.collisionMgr.CheckCollision(g.snake); cause != types.NoCollision {
		g.gameOver(cause)
		return
	}

	food := g.foodMgr.GetFood()
	if !g.collisionMgr.IsFoodCollision(head, food) {
		return
	}

	eaten := *food
	g.stateMgr.AddScore(types.FoodReward)
	g.snake.Grow(1)
	g.particles.Burst(eaten.Position, eaten.Color)
	for _, l := range g.listeners {
		l.OnFoodEaten(eaten, g.stateMgr.GetScore())
	}

	if err := g.foodMgr.GenerateFood(g.snake); err != nil {
		log.Info().Err(err).Str("session", g.UUID).Msg("board filled")
		g.gameOver(types.GridFull)
	}
}

func (g *Game) gameOver(cause types.CollisionType) {
	g.state = StateGameOver
	g.lastCollision = cause

	g.EndTime = g.clock.Now()

	score := g.stateMgr.GetScore()
	beaten := g.stateMgr.UpdateScore(score)
	g.stats.AddGame(score, g.StartTime, g.EndTime)

	log.Info().
		Str("session", g.UUID).
		Int("score", score).
		Int("high", g.stateMgr.GetHighScore()).
		Bool("new_high", beaten).
		Stringer("collision", cause).
		Msg("game over")

	for _, l := range g.listeners {
		l.OnGameOver(score, g.stateMgr.GetHighScore(), cause)
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.GetFood()
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}

// ElapsedTime returns the duration of the current game
func (g *Game) ElapsedTime() time.Duration {
	switch {
	case g.StartTime.IsZero():
		return 0
	case !g.EndTime.IsZero():
		return g.EndTime.Sub(g.StartTime)
	default:
		return g.clock.Now().Sub(g.StartTime)
	}
}
