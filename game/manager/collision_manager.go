package manager

import (
	"strconv"

	"diplopod/game/config"
	"diplopod/game/entity"
	"diplopod/game/event"
	"diplopod/game/types"

	"golang.org/x/exp/rand"
)

// Releaser takes back cells vacated by eaten consumables.
type Releaser interface {
	Release(c types.Cell) bool
}

// CollisionManager checks the creature head against consumables and walls
// and applies pickup effects.
type CollisionManager struct {
	width            int
	height           int
	scale            int
	growthMin        int
	growthMax        int
	antidoteImmunity int

	registry *ConsumableRegistry
	immunity *ImmunityTimer
	rng      *rand.Rand
}

func NewCollisionManager(cfg config.Config, registry *ConsumableRegistry, immunity *ImmunityTimer, rng *rand.Rand) *CollisionManager {
	return &CollisionManager{
		width:            cfg.Width,
		height:           cfg.Height,
		scale:            cfg.Scale,
		growthMin:        cfg.GrowthMin,
		growthMax:        cfg.GrowthMax,
		antidoteImmunity: cfg.AntidoteImmunity,
		registry:         registry,
		immunity:         immunity,
		rng:              rng,
	}
}

// Resolve evaluates food, superfood, antidote, poison and walls in that
// order. Evaluation stops at the first GameOver.
func (cm *CollisionManager) Resolve(head types.Point, free Releaser) []event.Event {
	cell := head.Coarse(cm.scale)
	var events []event.Event

	if cm.registry.Has(entity.Food, cell) {
		cm.registry.Remove(entity.Food, cell)
		free.Release(cell)
		events = append(events,
			event.Consumed{Kind: entity.Food, Cell: cell},
			event.Growth{Segments: 1},
			event.SpawnConsumables{Regular: true, NewSegments: 1},
		)
	}

	if cm.registry.Has(entity.SuperFood, cell) {
		cm.registry.Remove(entity.SuperFood, cell)
		free.Release(cell)
		amount := cm.growthMin + cm.rng.Intn(cm.growthMax-cm.growthMin)
		events = append(events,
			event.Consumed{Kind: entity.SuperFood, Cell: cell},
			event.Growth{Segments: amount},
			event.ShowMessage{Text: strconv.Itoa(amount), Position: head},
			event.SpawnConsumables{Regular: false, NewSegments: amount},
		)
	}

	if cm.registry.Has(entity.AntiDote, cell) {
		cm.registry.Remove(entity.AntiDote, cell)
		free.Release(cell)
		cm.immunity.Add(cm.antidoteImmunity)
		events = append(events, event.Consumed{Kind: entity.AntiDote, Cell: cell})
	}

	if cm.registry.Has(entity.Poison, cell) {
		if !cm.immunity.Active() {
			return append(events, event.GameOver{Cause: event.Poisoned})
		}
		cm.registry.Remove(entity.Poison, cell)
		free.Release(cell)
		events = append(events,
			event.Consumed{Kind: entity.Poison, Cell: cell},
			event.Growth{Segments: 1},
		)
	}

	if cm.registry.IsWall(cell) || cm.outside(cell) {
		return append(events, event.GameOver{Cause: event.WallCollision})
	}

	return events
}

// outside reports cells beyond the wall ring, which can only be reached if
// the walls were never built.
func (cm *CollisionManager) outside(c types.Cell) bool {
	return c.X < 0 || c.Y < 0 || c.X > cm.width || c.Y > cm.height
}
