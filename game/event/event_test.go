package event

import "testing"

func TestFirstTakesEarliest(t *testing.T) {
	events := []Event{
		Growth{Segments: 1},
		SpawnConsumables{Regular: true, NewSegments: 1},
		Growth{Segments: 4},
		SpawnConsumables{Regular: false, NewSegments: 4},
	}

	g, ok := First[Growth](events)
	if !ok || g.Segments != 1 {
		t.Errorf("First[Growth] = %+v,%v", g, ok)
	}
	s, ok := First[SpawnConsumables](events)
	if !ok || !s.Regular {
		t.Errorf("First[SpawnConsumables] = %+v,%v", s, ok)
	}
	if Has[GameOver](events) {
		t.Error("no GameOver expected")
	}
	if n := len(All[Growth](events)); n != 2 {
		t.Errorf("All[Growth] returned %d events", n)
	}
}

func TestCauseString(t *testing.T) {
	if Poisoned.String() != "poison" || Cause(0).String() != "none" {
		t.Error("unexpected cause names")
	}
}
