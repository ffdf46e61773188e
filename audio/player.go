// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"log"
	"sync"
	"time"

	"diplopod/game/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// maxQueued caps the cues mixed at once so a burst of pickups stays short.
const maxQueued = 4

// Player owns the speaker. A Player that failed to initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[Audio] speaker ready at %d Hz", sampleRate)
	return nil
}

// Play queues the cues of a tick's events.
func (p *Player) Play(events []event.Event) {
	cues := CuesFor(events)
	if len(cues) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if p.mixer.Len() >= maxQueued {
			break
		}
		p.mixer.Add(c.Streamer(sampleRate))
	}
}

func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
