package manager

import (
	"log"

	"diplopod/game/config"
	"diplopod/game/entity"
	"diplopod/game/event"
	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
)

// SpawnManager places consumables. Regular restocks follow every food
// pickup; superfood and antidote respawn whenever the creature grows past
// the next multiple of the special spawn interval.
type SpawnManager struct {
	scale         int
	interval      int
	foodAmount    int
	poisonAmount  int
	poisonPerFood int
	maxPoison     int

	registry *ConsumableRegistry
	pool     *PositionPool

	lastSpawnMark int
}

func NewSpawnManager(cfg config.Config, registry *ConsumableRegistry, pool *PositionPool) *SpawnManager {
	return &SpawnManager{
		scale:         cfg.Scale,
		interval:      cfg.SpecialSpawnInterval,
		foodAmount:    cfg.FoodAmount,
		poisonAmount:  cfg.PoisonAmount,
		poisonPerFood: cfg.PoisonPerFood,
		maxPoison:     cfg.MaxPoison,
		registry:      registry,
		pool:          pool,
	}
}

func (sm *SpawnManager) LastSpawnMark() int {
	return sm.lastSpawnMark
}

func (sm *SpawnManager) Reset() {
	sm.lastSpawnMark = 0
}

// Stock places the initial food and poison of a round.
func (sm *SpawnManager) Stock(creature *entity.Diplopod) []event.Event {
	exclude := creature.CoarseCells(sm.scale)

	var events []event.Event
	for i := 0; i < sm.foodAmount; i++ {
		e, ok := sm.spawn(entity.Food, exclude)
		if !ok {
			break
		}
		events = append(events, e)
	}
	for i := 0; i < sm.poisonAmount; i++ {
		e, ok := sm.spawn(entity.Poison, exclude)
		if !ok {
			break
		}
		events = append(events, e)
	}
	return events
}

// Process honors the first spawn request in events. Later requests of the
// same tick are dropped.
func (sm *SpawnManager) Process(events []event.Event, creature *entity.Diplopod, free Releaser) []event.Event {
	req, ok := event.First[event.SpawnConsumables](events)
	if !ok || creature.Len() == 0 {
		return nil
	}

	exclude := creature.CoarseCells(sm.scale)
	if tail, ok := creature.LastTail(); ok {
		// growth lands here once this stage is done
		exclude.Put(tail.Coarse(sm.scale))
	}
	var out []event.Event

	if req.Regular {
		if e, ok := sm.spawn(entity.Food, exclude); ok {
			out = append(out, e)
		}
		for i := 0; i < sm.poisonPerFood; i++ {
			if sm.maxPoison > 0 && sm.registry.Count(entity.Poison) >= sm.maxPoison {
				break
			}
			if e, ok := sm.spawn(entity.Poison, exclude); ok {
				out = append(out, e)
			}
		}
	}

	newSize := creature.Len() + req.NewSegments
	if newSize-sm.lastSpawnMark <= sm.interval {
		return out
	}
	sm.lastSpawnMark = (newSize / sm.interval) * sm.interval

	sm.despawn(entity.SuperFood, free)
	if sm.lastSpawnMark%(2*sm.interval) == 0 {
		sm.despawn(entity.AntiDote, free)
		if e, ok := sm.spawn(entity.AntiDote, exclude); ok {
			out = append(out, e)
		}
	}
	if e, ok := sm.spawn(entity.SuperFood, exclude); ok {
		out = append(out, e)
	}
	return out
}

func (sm *SpawnManager) spawn(kind entity.Kind, exclude mapset.Set[types.Cell]) (event.Event, bool) {
	cell, ok := sm.pool.DrawExcluding(exclude)
	if !ok {
		log.Printf("[SpawnManager] no free cell left, %s spawn skipped", kind)
		return nil, false
	}
	if !sm.registry.Add(kind, cell) {
		sm.pool.Release(cell)
		return nil, false
	}
	return event.Spawned{Kind: kind, Cell: cell}, true
}

func (sm *SpawnManager) despawn(kind entity.Kind, free Releaser) {
	for _, cell := range sm.registry.Cells(kind) {
		sm.registry.Remove(kind, cell)
		free.Release(cell)
	}
}
