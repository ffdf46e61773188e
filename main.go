package main

import (
	"flag"
	"log"
	"time"

	"diplopod/audio"
	"diplopod/game"
	"diplopod/game/autopilot"
	"diplopod/game/config"
	"diplopod/game/types"
	"diplopod/ui"
	"diplopod/ui/overlay"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

// autoRestart is how long the score screen stays up between autopilot rounds.
const autoRestart = 2 * time.Second

var steerKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	seed := flag.Uint64("seed", 0, "PRNG seed, overrides the config when non-zero")
	auto := flag.Bool("autopilot", false, "let the autopilot play")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	rl.InitWindow(1280, 800, "Diplopod")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(cfg)
	pilot := autopilot.New(rand.New(rand.NewSource(g.Seed() + 1)))
	board := overlay.NewBoard(overlay.DefaultTTL)
	renderer := ui.NewRenderer()

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		log.Printf("[Audio] disabled: %v", err)
	}
	defer player.Close()
	if *mute {
		player.ToggleMute()
	}

	var scoreScreen time.Duration
	for !rl.WindowShouldClose() {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		switch g.Phase() {
		case types.Menu:
			if rl.IsKeyPressed(rl.KeyEnter) {
				board.Clear()
				g.StartRound()
			}
			if rl.IsKeyPressed(rl.KeyA) {
				*auto = true
				board.Clear()
				g.StartRound()
			}
		case types.Highscore:
			scoreScreen += dt
			if rl.IsKeyPressed(rl.KeyEnter) || (*auto && scoreScreen >= autoRestart) {
				scoreScreen = 0
				board.Clear()
				g.StartRound()
			}
			if rl.IsKeyPressed(rl.KeyM) {
				scoreScreen = 0
				*auto = false
				g.ShowMenu()
			}
		case types.Game:
			if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
				g.TogglePause()
			}
			if rl.IsKeyPressed(rl.KeyTab) {
				*auto = !*auto
			}
			if *auto {
				g.Steer(pilot.Next(g.Snapshot()))
			} else {
				for key, dir := range steerKeys {
					if rl.IsKeyPressed(key) {
						g.Steer(dir)
					}
				}
			}
		}
		if rl.IsKeyPressed(rl.KeyN) {
			player.ToggleMute()
		}

		events := g.Advance(dt)
		board.Collect(events)
		board.Update(dt)
		player.Play(events)

		renderer.Draw(g.Snapshot(), board.Messages())
	}
}
