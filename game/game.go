package game

import (
	"log"
	"sort"
	"time"

	"diplopod/game/config"
	"diplopod/game/entity"
	"diplopod/game/event"
	"diplopod/game/manager"
	"diplopod/game/types"

	"golang.org/x/exp/rand"
)

// maxFrame clamps the time a single Advance call may feed into the
// simulation, so a stalled front end does not fast forward the round.
const maxFrame = 250 * time.Millisecond

// Game owns the whole simulation state. It is not safe for concurrent use;
// front ends drive it from their main loop.
type Game struct {
	cfg  config.Config
	seed uint64
	rng  *rand.Rand

	pool      *manager.PositionPool
	registry  *manager.ConsumableRegistry
	immunity  *manager.ImmunityTimer
	collision *manager.CollisionManager
	spawner   *manager.SpawnManager
	state     *manager.StateManager

	diplopod   *entity.Diplopod
	projection map[types.Cell]int
	pending    types.Direction
	paused     bool

	tick      int
	stepAcc   time.Duration
	secondAcc time.Duration
}

// NewGame wires the managers for cfg. A zero seed picks one from the clock.
// The game starts in the menu; call StartRound to play.
func NewGame(cfg config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:      cfg,
		seed:     seed,
		rng:      rng,
		registry: manager.NewConsumableRegistry(),
		immunity: &manager.ImmunityTimer{},
	}
	g.pool = manager.NewPositionPool(types.Grid{Width: cfg.Width, Height: cfg.Height}, rng)
	g.collision = manager.NewCollisionManager(cfg, g.registry, g.immunity, rng)
	g.spawner = manager.NewSpawnManager(cfg, g.registry, g.pool)
	g.state = manager.NewStateManager(g.pool, g.spawner, g.immunity)

	log.Printf("[Game] new game %dx%d scale %d, seed %d", cfg.Width, cfg.Height, cfg.Scale, seed)
	return g
}

func (g *Game) Config() config.Config { return g.cfg }
func (g *Game) Seed() uint64          { return g.seed }
func (g *Game) Phase() types.Phase    { return g.state.Phase() }
func (g *Game) Paused() bool          { return g.paused }
func (g *Game) Tick() int             { return g.tick }

// StartRound builds the walls, a fresh creature in the arena centre and the
// initial stock. It only works from the menu or the score screen.
func (g *Game) StartRound() []event.Event {
	if !g.state.BeginRound(g.tick) {
		return nil
	}

	g.registry.Clear()
	g.pool.Reset()
	g.spawner.Reset()
	g.immunity.Reset()
	g.buildWalls()

	g.diplopod = entity.NewDiplopod(types.Point{
		X: g.cfg.ArenaWidth() / 2,
		Y: g.cfg.ArenaHeight() / 2,
	})
	g.projection = nil
	g.syncProjection()

	g.pending = types.None
	g.paused = false
	g.stepAcc, g.secondAcc = 0, 0

	return g.spawner.Stock(g.diplopod)
}

// ShowMenu leaves the score screen.
func (g *Game) ShowMenu() bool {
	return g.state.ShowMenu()
}

// buildWalls frames the arena: rows 0 and Height, columns 0 and Width.
func (g *Game) buildWalls() {
	w, h := g.cfg.Width, g.cfg.Height
	for x := 0; x <= w; x++ {
		g.addWall(types.Cell{X: x, Y: 0})
		g.addWall(types.Cell{X: x, Y: h})
	}
	for y := 1; y < h; y++ {
		g.addWall(types.Cell{X: 0, Y: y})
		g.addWall(types.Cell{X: w, Y: y})
	}
}

func (g *Game) addWall(c types.Cell) {
	g.registry.AddWall(c)
	g.pool.Remove(c)
}

// Steer queues a direction for the next movement step. Reversing a moving
// creature is refused. A later call in the same step replaces the earlier.
func (g *Game) Steer(dir types.Direction) bool {
	if g.state.Phase() != types.Game || g.diplopod == nil {
		return false
	}
	step := dir.ToPoint()
	if step.IsZero() {
		return false
	}
	current := g.diplopod.Direction
	if !current.IsZero() && step.X == -current.X && step.Y == -current.Y {
		return false
	}
	g.pending = dir
	return true
}

func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.stepAcc, g.secondAcc = 0, 0
	log.Printf("[Game] paused at tick %d", g.tick)
}

func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	log.Printf("[Game] resumed at tick %d", g.tick)
}

func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

func (g *Game) running() bool {
	return !g.paused && g.state.Phase() == types.Game
}

// Step runs one movement tick: steer, move, sync the pool with the creature,
// resolve collisions, restock, grow and, on GameOver, end the round.
func (g *Game) Step() []event.Event {
	if !g.running() {
		return nil
	}
	g.tick++

	if g.pending != types.None {
		g.diplopod.Turn(g.pending)
		g.pending = types.None
	}

	moved, selfCollision := g.diplopod.Move()
	if !moved {
		return nil
	}
	g.syncProjection()

	if selfCollision {
		return g.endRound([]event.Event{event.GameOver{Cause: event.SelfCollision}})
	}

	head, _ := g.diplopod.Head()
	events := g.collision.Resolve(head, freeCells{g})
	if event.Has[event.GameOver](events) {
		return g.endRound(events)
	}

	events = append(events, g.spawner.Process(events, g.diplopod, freeCells{g})...)

	if growth, ok := event.First[event.Growth](events); ok {
		g.diplopod.Grow(growth.Segments)
		g.syncProjection()
	}
	return events
}

// TickSecond runs the one second tick: immunity countdown and antidote
// wander.
func (g *Game) TickSecond() {
	if !g.running() {
		return
	}
	g.immunity.Tick()
	if g.cfg.AntidoteWanders {
		g.wanderAntidote()
	}
}

// Advance feeds real time into the fixed rate clocks and returns the events
// of every movement step it ran.
func (g *Game) Advance(dt time.Duration) []event.Event {
	if !g.running() {
		g.stepAcc, g.secondAcc = 0, 0
		return nil
	}
	if dt > maxFrame {
		dt = maxFrame
	}
	g.stepAcc += dt
	g.secondAcc += dt

	for g.secondAcc >= g.cfg.ImmunityTick {
		g.secondAcc -= g.cfg.ImmunityTick
		g.TickSecond()
	}

	var events []event.Event
	for g.stepAcc >= g.cfg.StepInterval {
		g.stepAcc -= g.cfg.StepInterval
		events = append(events, g.Step()...)
		if !g.running() {
			g.stepAcc, g.secondAcc = 0, 0
			break
		}
	}
	return events
}

func (g *Game) endRound(events []event.Event) []event.Event {
	over, _ := event.First[event.GameOver](events)
	ended := g.state.HandleGameOver(g.diplopod, over.Cause, g.tick)

	// the pool was reset to the whole grid; drop what no longer lives in it
	g.registry.Clear()
	g.projection = nil
	g.pending = types.None
	g.stepAcc, g.secondAcc = 0, 0

	return append(events, ended)
}

var wanderSteps = [4]types.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// wanderAntidote moves the antidote one cell along a random axis if the
// target is a free cell of the inner arena.
func (g *Game) wanderAntidote() {
	from, ok := g.registry.Single(entity.AntiDote)
	if !ok {
		return
	}
	step := wanderSteps[g.rng.Intn(len(wanderSteps))]
	to := types.Cell{X: from.X + step.X, Y: from.Y + step.Y}

	if to.X < 1 || to.X >= g.cfg.Width || to.Y < 1 || to.Y >= g.cfg.Height {
		return
	}
	if !g.pool.Contains(to) {
		return
	}
	if g.registry.Move(entity.AntiDote, from, to) {
		g.pool.Remove(to)
		g.pool.Release(from)
	}
}

// syncProjection keeps the pool in step with the cells under the creature.
// Cells are processed in row order so pool layout stays reproducible.
func (g *Game) syncProjection() {
	next := g.diplopod.Projection(g.cfg.Scale)

	var entered, left []types.Cell
	for c := range next {
		if g.projection[c] == 0 {
			entered = append(entered, c)
		}
	}
	for c := range g.projection {
		if next[c] == 0 {
			left = append(left, c)
		}
	}
	sortCells(entered)
	sortCells(left)

	g.projection = next
	g.pool.RemoveAll(entered)
	for _, c := range left {
		if !g.registry.Occupied(c) {
			g.pool.Release(c)
		}
	}
}

func sortCells(cells []types.Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}

// freeCells guards pool releases: cells under the creature or still holding
// something stay out of the pool.
type freeCells struct {
	g *Game
}

func (f freeCells) Release(c types.Cell) bool {
	if f.g.projection[c] > 0 || f.g.registry.Occupied(c) {
		return false
	}
	return f.g.pool.Release(c)
}
