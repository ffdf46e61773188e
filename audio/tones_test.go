package audio

import (
	"testing"
	"time"

	"diplopod/game/entity"
	"diplopod/game/event"

	"github.com/gopxl/beep"
)

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   int
	}{
		{"nothing", nil, 0},
		{"silent events", []event.Event{event.Growth{Segments: 2}, event.Spawned{Kind: entity.Food}}, 0},
		{"food", []event.Event{event.Consumed{Kind: entity.Food}, event.Growth{Segments: 1}}, 1},
		{"game over", []event.Event{event.GameOver{Cause: event.Poisoned}, event.RoundEnded{Score: 3}}, 1},
		{"new record", []event.Event{event.GameOver{Cause: event.WallCollision}, event.RoundEnded{Score: 9, NewRecord: true}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(CuesFor(tt.events)); got != tt.want {
				t.Errorf("got %d cues, want %d", got, tt.want)
			}
		})
	}
}

func TestEveryKindHasACue(t *testing.T) {
	for _, k := range entity.Kinds {
		c := consumedCue(k)
		if len(c) == 0 || c.Duration() <= 0 {
			t.Errorf("%s has no cue", k)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	buf := make([][2]float64, 30)
	total := 0
	for {
		n, ok := osc.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample out of range: %v", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != 50 {
		t.Errorf("streamed %d samples, want 50", total)
	}
}

func TestCueStreamerDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	cue := consumedCue(entity.SuperFood)
	s := cue.Streamer(rate)

	buf := make([][2]float64, 64)
	total := 0
	for i := 0; i < 100; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(cue.Duration()); total != want {
		t.Errorf("cue streamed %d samples, want %d", total, want)
	}
}
