package manager

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"snake-arcade/game/types"
	"snake-arcade/store"
)

const storeTimeout = 2 * time.Second

// StateManager tracks the running score and the persisted high score
type StateManager struct {
	store     store.Store
	score     int
	highScore int
}

// NewStateManager reads the high score once from st. A nil store keeps it in memory.
func NewStateManager(st store.Store) *StateManager {
	sm := &StateManager{store: st}
	if st == nil {
		return sm
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	v, ok, err := st.Get(ctx, types.HighScoreKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load high score")
		return sm
	}
	if ok && v > 0 {
		sm.highScore = v
	}
	return sm
}

func (sm *StateManager) Reset() {
	sm.score = 0
}

// AddScore adds a non-negative amount to the running score
func (sm *StateManager) AddScore(points int) {
	if points > 0 {
		sm.score += points
	}
}

// UpdateScore records the final score of a game. It returns true when the
// high score was beaten, in which case the new value is persisted.
func (sm *StateManager) UpdateScore(score int) bool {
	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	sm.SaveStats()
	return true
}

// SaveStats writes the high score to the store; failures are logged, not fatal
func (sm *StateManager) SaveStats() {
	if sm.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := sm.store.Set(ctx, types.HighScoreKey, sm.highScore); err != nil {
		log.Error().Err(err).Int("high", sm.highScore).Msg("could not save high score")
	}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
