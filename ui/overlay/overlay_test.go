package overlay

import (
	"testing"
	"time"

	"diplopod/game/event"
	"diplopod/game/types"
)

func TestBoardLifecycle(t *testing.T) {
	b := NewBoard(time.Second)
	b.Collect([]event.Event{
		event.Growth{Segments: 4},
		event.ShowMessage{Text: "4", Position: types.Point{X: 3, Y: 7}},
	})

	msgs := b.Messages()
	if len(msgs) != 1 || msgs[0].Text != "4" || msgs[0].Alpha() != 1 {
		t.Fatalf("unexpected messages %+v", msgs)
	}

	b.Update(250 * time.Millisecond)
	if a := b.Messages()[0].Alpha(); a != 0.75 {
		t.Errorf("alpha = %v, want 0.75", a)
	}

	b.Collect([]event.Event{event.ShowMessage{Text: "9"}})
	b.Update(750 * time.Millisecond)
	msgs = b.Messages()
	if len(msgs) != 1 || msgs[0].Text != "9" {
		t.Errorf("expired message kept: %+v", msgs)
	}

	b.Clear()
	if len(b.Messages()) != 0 {
		t.Error("Clear kept messages")
	}
}

func TestBoardDefaultTTL(t *testing.T) {
	b := NewBoard(0)
	b.Collect([]event.Event{event.ShowMessage{Text: "x"}})
	b.Update(DefaultTTL - time.Millisecond)
	if len(b.Messages()) != 1 {
		t.Error("message expired before the default lifetime")
	}
	b.Update(time.Millisecond)
	if len(b.Messages()) != 0 {
		t.Error("message outlived the default lifetime")
	}
}
