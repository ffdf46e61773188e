package manager

import (
	"testing"

	"diplopod/game/event"
)

func TestRoundStatsSummaries(t *testing.T) {
	s := NewRoundStats()
	if s.Average() != 0 || s.Median() != 0 {
		t.Fatal("empty stats must report zero")
	}

	for _, score := range []int{4, 10, 1, 7} {
		s.Add(RoundRecord{Score: score, Cause: event.SelfCollision})
	}

	if s.Played() != 4 || s.Best() != 10 {
		t.Errorf("played=%d best=%d", s.Played(), s.Best())
	}
	if s.Average() != 5.5 {
		t.Errorf("Average = %v, want 5.5", s.Average())
	}
	if s.Median() != 5.5 {
		t.Errorf("Median = %v, want 5.5", s.Median())
	}

	s.Add(RoundRecord{Score: 2})
	if s.Median() != 4 {
		t.Errorf("Median = %v, want 4", s.Median())
	}
}

func TestRoundStatsKeepsRecentRecords(t *testing.T) {
	s := NewRoundStats()
	for i := 0; i < maxRecords+5; i++ {
		s.Add(RoundRecord{Score: i})
	}

	scores := s.Scores()
	if len(scores) != maxRecords {
		t.Fatalf("kept %d records, want %d", len(scores), maxRecords)
	}
	if scores[0] != 5 {
		t.Errorf("oldest kept score = %d, want 5", scores[0])
	}
	if s.Played() != maxRecords+5 || s.Best() != maxRecords+4 {
		t.Errorf("totals lost: played=%d best=%d", s.Played(), s.Best())
	}
}
