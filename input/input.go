// Package input is the terminal event boundary. It translates tcell events
// into engine-level actions and pumps them onto a channel the input system
// drains once per frame, keeping the world single-threaded.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a discrete player intent.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// Map translates a terminal event to an action. Unhandled events map to
// ActionNone.
func Map(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return ActionQuit
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		}
	}
	return ActionNone
}

// Source is anything that produces terminal events; render.Screen
// satisfies it.
type Source interface {
	PollEvent() tcell.Event
}

// Pump polls src until it returns nil (screen finalized) and forwards
// mapped actions to out. Run it on its own goroutine; it drops actions when
// out is full rather than blocking the poll loop.
func Pump(src Source, out chan<- Action) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		a := Map(ev)
		if a == ActionNone {
			continue
		}
		select {
		case out <- a:
		default:
		}
	}
}
