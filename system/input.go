package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/engine"
	"github.com/eskarin-dev/gridfall/input"
)

// PlayerTag marks the entities steered by the input system.
const PlayerTag = "player"

// InputSystem drains the action channel filled by the input pump and steps
// every player-tagged entity one cell per movement action. Quit actions are
// forwarded to the wiring layer through the quit callback.
type InputSystem struct {
	positions *engine.Store[component.PositionComponent]
	actions   <-chan input.Action
	quit      func()
}

// NewInputSystem creates the system. quit may be nil.
func NewInputSystem(actions <-chan input.Action, quit func()) *InputSystem {
	return &InputSystem{
		actions: actions,
		quit:    quit,
	}
}

// Initialize caches store pointers.
func (s *InputSystem) Initialize(w *engine.World) {
	s.positions = engine.GetStore[component.PositionComponent](w)
}

// Update applies all actions buffered since the last frame.
func (s *InputSystem) Update(w *engine.World, dt time.Duration) {
	for {
		select {
		case a, ok := <-s.actions:
			if !ok {
				return
			}
			s.apply(w, a)
		default:
			return
		}
	}
}

// Shutdown is a no-op.
func (s *InputSystem) Shutdown(w *engine.World) {}

func (s *InputSystem) apply(w *engine.World, a input.Action) {
	var step mgl64.Vec2
	switch a {
	case input.ActionQuit:
		if s.quit != nil {
			s.quit()
		}
		return
	case input.ActionUp:
		step = mgl64.Vec2{0, -1}
	case input.ActionDown:
		step = mgl64.Vec2{0, 1}
	case input.ActionLeft:
		step = mgl64.Vec2{-1, 0}
	case input.ActionRight:
		step = mgl64.Vec2{1, 0}
	default:
		return
	}

	for _, e := range w.EntitiesWithTag(PlayerTag) {
		if pos, ok := s.positions.Get(e); ok {
			pos.Pos = pos.Pos.Add(step)
			s.positions.Set(e, pos)
			engine.Set(w, e, component.AudioTriggerComponent{Cue: component.CueBlip})
		}
	}
}
