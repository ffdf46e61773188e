package manager

import (
	"sort"

	"diplopod/game/event"
)

// maxRecords bounds the per-round history kept for the score graph. Older
// rounds only survive in the running totals.
const maxRecords = 200

// RoundRecord is the outcome of one round. Ticks are movement ticks since
// the game was created.
type RoundRecord struct {
	ID        string
	Score     int
	Cause     event.Cause
	StartTick int
	EndTick   int
}

// Duration is the number of movement ticks the round lasted.
func (r RoundRecord) Duration() int {
	return r.EndTick - r.StartTick
}

// RoundStats keeps the session's round history in memory.
type RoundStats struct {
	records []RoundRecord
	played  int
	total   int
	best    int
}

func NewRoundStats() *RoundStats {
	return &RoundStats{records: make([]RoundRecord, 0)}
}

func (s *RoundStats) Add(r RoundRecord) {
	if len(s.records) >= maxRecords {
		s.records = s.records[1:]
	}
	s.records = append(s.records, r)

	s.played++
	s.total += r.Score
	if r.Score > s.best {
		s.best = r.Score
	}
}

func (s *RoundStats) Played() int { return s.played }
func (s *RoundStats) Best() int   { return s.best }

func (s *RoundStats) Average() float64 {
	if s.played == 0 {
		return 0
	}
	return float64(s.total) / float64(s.played)
}

// Median of the kept records.
func (s *RoundStats) Median() float64 {
	if len(s.records) == 0 {
		return 0
	}
	scores := make([]int, len(s.records))
	for i, r := range s.records {
		scores[i] = r.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// Scores returns the kept scores, oldest first.
func (s *RoundStats) Scores() []int {
	out := make([]int, len(s.records))
	for i, r := range s.records {
		out[i] = r.Score
	}
	return out
}

// Records returns a copy of the kept records, oldest first.
func (s *RoundStats) Records() []RoundRecord {
	out := make([]RoundRecord, len(s.records))
	copy(out, s.records)
	return out
}
