package system

import (
	"time"

	"github.com/eskarin-dev/gridfall/audio"
	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
	"github.com/eskarin-dev/gridfall/engine"
)

// AudioTriggerSystem plays pending audio cues and clears the trigger
// components, so each trigger fires exactly once.
type AudioTriggerSystem struct {
	triggers *engine.Store[component.AudioTriggerComponent]
	player   *audio.Engine

	fired []firedEntry
}

type firedEntry struct {
	entity core.Entity
	cue    component.Cue
}

// NewAudioTriggerSystem creates the system.
func NewAudioTriggerSystem() *AudioTriggerSystem {
	return &AudioTriggerSystem{}
}

// Initialize caches the trigger store and the audio engine resource.
func (s *AudioTriggerSystem) Initialize(w *engine.World) {
	s.triggers = engine.GetStore[component.AudioTriggerComponent](w)
	s.player = engine.MustResource[*audio.Engine](w.Resources)
}

// Update drains all pending triggers.
func (s *AudioTriggerSystem) Update(w *engine.World, dt time.Duration) {
	s.fired = s.fired[:0]
	q := engine.Query1[component.AudioTriggerComponent](w)
	for q.Next() {
		s.fired = append(s.fired, firedEntry{entity: q.Entity(), cue: q.Values().Cue})
	}
	for _, f := range s.fired {
		s.player.Play(f.cue)
		s.triggers.Remove(f.entity)
	}
}

// Shutdown is a no-op; the wiring layer owns the audio engine's lifecycle.
func (s *AudioTriggerSystem) Shutdown(w *engine.World) {}
