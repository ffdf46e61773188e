// Package event holds the values passed between the stages of one simulation
// tick and handed to render, message and sound collaborators afterwards.
package event

import (
	"diplopod/game/entity"
	"diplopod/game/types"
)

type Event interface {
	event()
}

// Growth asks for Segments new segments at the last tail position.
type Growth struct {
	Segments int
}

// SpawnConsumables asks the spawn stage to restock. Regular requests come
// from food pickups, special ones from superfood pickups.
type SpawnConsumables struct {
	Regular     bool
	NewSegments int
}

// ShowMessage carries a text for the message collaborator, anchored at a
// fine grid position.
type ShowMessage struct {
	Text     string
	Position types.Point
}

// Consumed reports a pickup.
type Consumed struct {
	Kind entity.Kind
	Cell types.Cell
}

// Spawned reports a consumable placed on the grid.
type Spawned struct {
	Kind entity.Kind
	Cell types.Cell
}

// Cause explains why a round ended.
type Cause int

const (
	SelfCollision Cause = iota + 1
	WallCollision
	Poisoned
)

func (c Cause) String() string {
	switch c {
	case SelfCollision:
		return "self collision"
	case WallCollision:
		return "wall collision"
	case Poisoned:
		return "poison"
	default:
		return "none"
	}
}

type GameOver struct {
	Cause Cause
}

// RoundEnded is emitted by the round controller after a GameOver was handled.
type RoundEnded struct {
	Score     int
	HighScore int
	NewRecord bool
}

func (Growth) event()           {}
func (SpawnConsumables) event() {}
func (ShowMessage) event()      {}
func (Consumed) event()         {}
func (Spawned) event()          {}
func (GameOver) event()         {}
func (RoundEnded) event()       {}

// First returns the first event of type T.
func First[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether any event of type T is present.
func Has[T Event](events []Event) bool {
	_, ok := First[T](events)
	return ok
}

// All returns every event of type T in order.
func All[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
