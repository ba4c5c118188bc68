// Package audio synthesizes the game's sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays effects through one mixer. It implements game.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	highScore   int
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Failure is not fatal: the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetHighScore primes the best score so the first game over knows whether it beat it
func (sm *SoundManager) SetHighScore(score int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.highScore = score
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) OnFoodEaten(food entity.Food, score int) {
	sm.play(eatSound(sampleRate))
}

func (sm *SoundManager) OnGameOver(score, highScore int, cause types.CollisionType) {
	sm.mu.Lock()
	beaten := score > sm.highScore
	sm.highScore = highScore
	sm.mu.Unlock()

	if beaten {
		sm.play(highScoreSound(sampleRate))
		return
	}
	log.Debug().Stringer("collision", cause).Msg("game over sound")
	sm.play(gameOverSound(sampleRate))
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
