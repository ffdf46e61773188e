// Package overlay keeps the short texts the simulation asks front ends to
// show, fading them out over a fixed lifetime.
package overlay

import (
	"time"

	"diplopod/game/event"
	"diplopod/game/types"
)

// DefaultTTL matches the fade of the floating growth numbers.
const DefaultTTL = 2 * time.Second

type Message struct {
	Text      string
	Position  types.Point // fine grid anchor
	remaining time.Duration
	ttl       time.Duration
}

// Alpha is the fade level in [0,1], 1 when fresh.
func (m Message) Alpha() float64 {
	if m.ttl <= 0 {
		return 0
	}
	return float64(m.remaining) / float64(m.ttl)
}

type Board struct {
	ttl      time.Duration
	messages []Message
}

func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{ttl: ttl}
}

// Collect picks the ShowMessage values out of a tick's events.
func (b *Board) Collect(events []event.Event) {
	for _, m := range event.All[event.ShowMessage](events) {
		b.messages = append(b.messages, Message{
			Text:      m.Text,
			Position:  m.Position,
			remaining: b.ttl,
			ttl:       b.ttl,
		})
	}
}

// Update ages every message by dt and drops the expired ones.
func (b *Board) Update(dt time.Duration) {
	kept := b.messages[:0]
	for _, m := range b.messages {
		m.remaining -= dt
		if m.remaining > 0 {
			kept = append(kept, m)
		}
	}
	b.messages = kept
}

func (b *Board) Clear() {
	b.messages = nil
}

// Messages returns the live messages, oldest first.
func (b *Board) Messages() []Message {
	out := make([]Message, len(b.messages))
	copy(out, b.messages)
	return out
}
