package manager

// ImmunityTimer counts down the remaining immune ticks. The creature
// survives poison while it is above zero.
type ImmunityTimer struct {
	remaining int
}

func (t *ImmunityTimer) Add(ticks int) {
	if ticks > 0 {
		t.remaining += ticks
	}
}

// Tick runs once per one-second tick.
func (t *ImmunityTimer) Tick() {
	if t.remaining > 0 {
		t.remaining--
	}
}

func (t *ImmunityTimer) Remaining() int { return t.remaining }
func (t *ImmunityTimer) Active() bool   { return t.remaining > 0 }
func (t *ImmunityTimer) Reset()         { t.remaining = 0 }
