package audio

import (
	"math"
	"time"

	"diplopod/game/entity"
	"diplopod/game/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Tone is one note of an event cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Volume   float64 // linear, 1 is full scale
}

// Cue lists the tones played, in sequence, for a single event.
type Cue []Tone

// CuesFor maps a tick's events to sound cues. Events without a sound are
// skipped.
func CuesFor(events []event.Event) []Cue {
	var cues []Cue
	for _, e := range events {
		switch e := e.(type) {
		case event.Consumed:
			cues = append(cues, consumedCue(e.Kind))
		case event.GameOver:
			cues = append(cues, Cue{
				{Freq: 220, Duration: 120 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
				{Freq: 110, Duration: 300 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
			})
		case event.RoundEnded:
			if e.NewRecord {
				cues = append(cues, Cue{
					{Freq: 660, Duration: 90 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
					{Freq: 990, Duration: 180 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
				})
			}
		}
	}
	return cues
}

func consumedCue(kind entity.Kind) Cue {
	switch kind {
	case entity.Food:
		return Cue{{Freq: 660, Duration: 50 * time.Millisecond, Wave: WaveSine, Volume: 0.35}}
	case entity.SuperFood:
		return Cue{
			{Freq: 523, Duration: 60 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
			{Freq: 784, Duration: 60 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
			{Freq: 1046, Duration: 90 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
		}
	case entity.AntiDote:
		return Cue{
			{Freq: 440, Duration: 70 * time.Millisecond, Wave: WaveSquare, Volume: 0.2},
			{Freq: 880, Duration: 120 * time.Millisecond, Wave: WaveSine, Volume: 0.35},
		}
	default:
		return Cue{{Freq: 180, Duration: 80 * time.Millisecond, Wave: WaveSaw, Volume: 0.25}}
	}
}

// oscillator streams a fixed length wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// withVolume scales a streamer by a linear factor.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Streamer renders a cue as one sequential streamer.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c))
	for _, t := range c {
		parts = append(parts, withVolume(NewOscillator(t.Freq, t.Duration, t.Wave, rate), t.Volume))
	}
	return beep.Seq(parts...)
}

// Duration is the total play time of the cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, t := range c {
		d += t.Duration
	}
	return d
}
