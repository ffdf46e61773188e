// Command diplopod-term plays diplopod in a terminal. The board is drawn on
// the coarse grid, two columns per cell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"diplopod/audio"
	"diplopod/game"
	"diplopod/game/autopilot"
	"diplopod/game/config"
	"diplopod/game/entity"
	"diplopod/game/types"
	"diplopod/ui/overlay"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

const frame = 16 * time.Millisecond

var (
	wallStyle   = tcell.StyleDefault.Background(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorLime)
	immuneStyle = tcell.StyleDefault.Background(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func kindStyle(k entity.Kind) (rune, tcell.Style) {
	switch k {
	case entity.Food:
		return '●', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case entity.SuperFood:
		return '★', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case entity.AntiDote:
		return '✚', tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return '☠', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
}

type terminal struct {
	screen tcell.Screen
	game   *game.Game
	pilot  *autopilot.Pilot
	board  *overlay.Board
	player *audio.Player
	auto   bool
	since  time.Duration // time spent on the score screen
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	seed := flag.Uint64("seed", 0, "PRNG seed, overrides the config when non-zero")
	auto := flag.Bool("autopilot", false, "let the autopilot play")
	logPath := flag.String("log", "diplopod-term.log", "log file, the terminal is busy drawing")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	g := game.NewGame(cfg)
	t := &terminal{
		screen: screen,
		game:   g,
		pilot:  autopilot.New(rand.New(rand.NewSource(g.Seed() + 1))),
		board:  overlay.NewBoard(overlay.DefaultTTL),
		player: audio.NewPlayer(),
		auto:   *auto,
	}
	if err := t.player.Initialize(); err != nil {
		log.Printf("[Audio] disabled: %v", err)
	}
	defer t.player.Close()

	t.run()
}

func (t *terminal) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			t.update(dt)
			t.draw()
		}
	}
}

func (t *terminal) start() {
	t.since = 0
	t.board.Clear()
	t.game.StartRound()
}

func (t *terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) handleKey(ev *tcell.EventKey) {
	g := t.game
	switch g.Phase() {
	case types.Menu:
		switch {
		case ev.Key() == tcell.KeyEnter:
			t.start()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'a':
			t.auto = true
			t.start()
		}
		return
	case types.Highscore:
		switch {
		case ev.Key() == tcell.KeyEnter:
			t.start()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			t.auto = false
			g.ShowMenu()
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		g.Steer(types.Up)
	case tcell.KeyRight:
		g.Steer(types.Right)
	case tcell.KeyDown:
		g.Steer(types.Down)
	case tcell.KeyLeft:
		g.Steer(types.Left)
	case tcell.KeyTab:
		t.auto = !t.auto
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', ' ':
			g.TogglePause()
		case 'n':
			t.player.ToggleMute()
		}
	}
}

func (t *terminal) update(dt time.Duration) {
	g := t.game
	switch g.Phase() {
	case types.Game:
		if t.auto {
			g.Steer(t.pilot.Next(g.Snapshot()))
		}
	case types.Highscore:
		t.since += dt
		if t.auto && t.since >= 2*time.Second {
			t.start()
		}
	}

	events := g.Advance(dt)
	t.board.Collect(events)
	t.board.Update(dt)
	t.player.Play(events)
}

func (t *terminal) put(c types.Cell, r rune, style tcell.Style) {
	t.screen.SetContent(c.X*2, c.Y, r, nil, style)
	t.screen.SetContent(c.X*2+1, c.Y, ' ', nil, style)
}

func (t *terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *terminal) draw() {
	s := t.game.Snapshot()
	t.screen.Clear()

	midX, midY := s.Width, s.Height/2
	centred := func(dy int, msg string, style tcell.Style) {
		t.text(midX-len([]rune(msg))/2, midY+dy, msg, style)
	}

	if s.Phase != types.Menu {
		for _, w := range s.Walls {
			t.put(w, ' ', wallStyle)
		}
		for _, c := range s.Consumables {
			r, style := kindStyle(c.Kind)
			t.put(c.Cell, r, style)
		}
		style := bodyStyle
		if s.Immunity > 0 {
			style = immuneStyle
		}
		blinkOff := s.ImmunityEnding() && (time.Now().UnixMilli()/250)%2 == 0
		for i := len(s.Segments) - 1; i >= 0 && !blinkOff; i-- {
			st := style
			if i == 0 {
				st = headStyle
			}
			t.put(s.Segments[i].Coarse(s.Scale), ' ', st)
		}
		for _, m := range t.board.Messages() {
			c := m.Position.Coarse(s.Scale)
			t.text(c.X*2, c.Y-1, m.Text, textStyle.Bold(true))
		}
	}

	switch {
	case s.Phase == types.Menu:
		centred(-2, "D I P L O P O D", textStyle.Bold(true))
		centred(0, "Enter to play, a for autopilot, Esc to quit", dimStyle)
	case s.Phase == types.Highscore:
		centred(-1, fmt.Sprintf("Game over! Score %d", s.LastScore), textStyle.Bold(true))
		centred(1, fmt.Sprintf("High score %d", s.HighScore), textStyle)
		centred(2, "Enter to play again, m for menu", dimStyle)
	case s.Paused:
		centred(0, "PAUSED", textStyle.Bold(true))
	}

	status := fmt.Sprintf("score %d  high %d  immunity %d  rounds %d  avg %.1f",
		s.Score, s.HighScore, s.Immunity, s.Played, s.Average)
	if t.auto {
		status += "  [autopilot]"
	}
	t.text(0, s.Height+1, status, dimStyle)

	t.screen.Show()
}
