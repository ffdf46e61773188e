package manager

import (
	"log"

	"diplopod/game/entity"
	"diplopod/game/event"
	"diplopod/game/types"

	"github.com/google/uuid"
)

// StateManager owns the round phase and scoring. It is the only path from a
// GameOver back to a state where a new round may start.
type StateManager struct {
	pool     *PositionPool
	spawner  *SpawnManager
	immunity *ImmunityTimer

	phase     types.Phase
	highScore int
	lastScore int
	stats     *RoundStats

	roundID   string
	startTick int
}

func NewStateManager(pool *PositionPool, spawner *SpawnManager, immunity *ImmunityTimer) *StateManager {
	return &StateManager{
		pool:     pool,
		spawner:  spawner,
		immunity: immunity,
		phase:    types.Menu,
		stats:    NewRoundStats(),
	}
}

func (sm *StateManager) Phase() types.Phase { return sm.phase }
func (sm *StateManager) HighScore() int     { return sm.highScore }
func (sm *StateManager) LastScore() int     { return sm.lastScore }
func (sm *StateManager) RoundID() string    { return sm.roundID }
func (sm *StateManager) Stats() *RoundStats { return sm.stats }

// BeginRound moves into the Game phase. Rounds can only start from the menu
// or the score screen.
func (sm *StateManager) BeginRound(tick int) bool {
	if sm.phase == types.Game {
		return false
	}
	sm.phase = types.Game
	sm.roundID = uuid.New().String()
	sm.startTick = tick
	log.Printf("[StateManager] round %s started", sm.roundID)
	return true
}

// ShowMenu returns to the menu from the score screen.
func (sm *StateManager) ShowMenu() bool {
	if sm.phase == types.Game {
		return false
	}
	sm.phase = types.Menu
	return true
}

// HandleGameOver scores the round, resets the pool and timers, and moves to
// the score screen.
func (sm *StateManager) HandleGameOver(creature *entity.Diplopod, cause event.Cause, tick int) event.RoundEnded {
	score := creature.Len()
	sm.lastScore = score

	newRecord := score > sm.highScore
	if newRecord {
		sm.highScore = score
	}

	sm.pool.Reset()
	sm.spawner.Reset()
	sm.immunity.Reset()

	sm.stats.Add(RoundRecord{
		ID:        sm.roundID,
		Score:     score,
		Cause:     cause,
		StartTick: sm.startTick,
		EndTick:   tick,
	})
	sm.phase = types.Highscore

	log.Printf("[StateManager] round %s over (%s): score=%d high=%d", sm.roundID, cause, score, sm.highScore)

	return event.RoundEnded{
		Score:     score,
		HighScore: sm.highScore,
		NewRecord: newRecord,
	}
}
