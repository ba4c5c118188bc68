package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GroupSize is the number of records folded into one record of the next level
const GroupSize = 100

// GameRecord is either a single finished game (CompressionIndex 0) or the
// aggregate of GroupSize records of the level below.
type GameRecord struct {
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
}

// StatsManager keeps the history of finished games across sessions
type StatsManager struct {
	mu    sync.RWMutex
	games []GameRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{games: make([]GameRecord, 0)}
}

func (s *StatsManager) AddGame(score int, startTime, endTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := endTime.Sub(startTime).Seconds()
	s.games = append(s.games, GameRecord{
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: d,
		MaxDuration:     d,
	})
	s.groupGames()
}

// groupGames folds full groups of equal compression level into one record.
// Records keep insertion order inside a level, so groups are chronological.
func (s *StatsManager) groupGames() {
	for level := 0; ; level++ {
		var records, rest []GameRecord
		for _, g := range s.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				rest = append(rest, g)
			}
		}
		if len(records) < GroupSize {
			return
		}

		for len(records) >= GroupSize {
			rest = append(rest, merge(records[:GroupSize], level+1))
			records = records[GroupSize:]
		}
		s.games = append(rest, records...)
	}
}

func merge(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
	}
	var totalScore, totalDuration float64
	for _, g := range group {
		if g.MaxScore > out.MaxScore {
			out.MaxScore = g.MaxScore
		}
		if g.MinScore < out.MinScore {
			out.MinScore = g.MinScore
		}
		if g.MaxDuration > out.MaxDuration {
			out.MaxDuration = g.MaxDuration
		}
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

func (s *StatsManager) GetStats() []GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *StatsManager) GetGamesPlayed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, g := range s.games {
		total += g.GamesCount
	}
	return total
}

func (s *StatsManager) GetAverageScore() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	var count int
	for _, g := range s.games {
		total += g.AverageScore * float64(g.GamesCount)
		count += g.GamesCount
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func (s *StatsManager) GetMaxScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, g := range s.games {
		if g.MaxScore > best {
			best = g.MaxScore
		}
	}
	return best
}

// GetAverageDuration returns the mean game length in seconds
func (s *StatsManager) GetAverageDuration() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	var count int
	for _, g := range s.games {
		total += g.AverageDuration * float64(g.GamesCount)
		count += g.GamesCount
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// SaveToFile writes the records as JSON
func (s *StatsManager) SaveToFile(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create stats directory: %w", err)
		}
	}
	data, err := json.Marshal(s.games)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
