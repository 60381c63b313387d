// Package audio is the sound playback boundary. It owns the beep speaker
// and synthesizes the short cues the audio system triggers; mixing and
// device handling stay behind this seam.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/eskarin-dev/gridfall/component"
)

// Engine plays synthesized one-shot cues through the speaker. A disabled
// engine accepts Play calls and drops them, so callers never branch on
// audio availability.
type Engine struct {
	rate    beep.SampleRate
	volume  float64
	enabled bool
}

// NewEngine initializes the speaker. When enabled is false the speaker is
// never touched and the engine runs silent.
func NewEngine(enabled bool, sampleRate int, volume float64) (*Engine, error) {
	e := &Engine{
		rate:    beep.SampleRate(sampleRate),
		volume:  volume,
		enabled: enabled,
	}
	if !enabled {
		return e, nil
	}
	if err := speaker.Init(e.rate, e.rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return e, nil
}

// Play fires a cue. Unknown cues and CueNone are dropped.
func (e *Engine) Play(cue component.Cue) {
	if !e.enabled {
		return
	}
	var s beep.Streamer
	switch cue {
	case component.CueBlip:
		s = e.tone(880, 60*time.Millisecond)
	case component.CueError:
		s = e.tone(220, 120*time.Millisecond)
	case component.CueChime:
		s = beep.Mix(
			e.tone(660, 150*time.Millisecond),
			e.tone(990, 150*time.Millisecond),
		)
	default:
		return
	}
	speaker.Play(s)
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// tone builds a fixed-length sine burst at the engine volume.
func (e *Engine) tone(freq int, d time.Duration) beep.Streamer {
	osc, err := generators.SinTone(e.rate, freq)
	if err != nil {
		return beep.Silence(e.rate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(e.rate.N(d), osc),
		Base:     2,
		Volume:   volumeGain(e.volume),
		Silent:   e.volume <= 0,
	}
}

// volumeGain maps a 0..1 config volume onto the exponential gain scale
// effects.Volume expects, with 1.0 meaning unity gain.
func volumeGain(v float64) float64 {
	if v >= 1 {
		return 0
	}
	if v <= 0 {
		return -10
	}
	// -5..0 over the usable range, enough span for a terminal game
	return (v - 1) * 5
}
