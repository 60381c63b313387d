// Package render is the terminal drawing boundary. It owns the tcell screen
// and exposes the few calls the render system needs; everything else about
// presentation stays on the other side of this seam.
package render

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects the terminal color depth.
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// ParseColorMode maps a config string to a ColorMode. Unknown values fall
// back to auto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return ColorModeAuto
	}
}

// Screen wraps a tcell screen with the drawing surface the render system
// uses. Construct with NewScreen for a real terminal or wrap a
// tcell.SimulationScreen in tests.
type Screen struct {
	tc tcell.Screen
}

// NewScreen initializes a terminal screen.
func NewScreen(mode ColorMode) (*Screen, error) {
	if mode == ColorModeTrueColor {
		// tcell checks COLORTERM before terminfo
		os.Setenv("COLORTERM", "truecolor")
	}
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// Wrap adopts an existing tcell screen (simulation screens in tests).
// The screen must already be initialized.
func Wrap(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// Clear erases the back buffer.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Draw places a rune at a cell. Out-of-bounds draws are dropped.
func (s *Screen) Draw(x, y int, r rune, style tcell.Style) {
	w, h := s.tc.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.tc.SetContent(x, y, r, nil, style)
}

// Show flips the back buffer to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// PollEvent blocks for the next terminal event. The input pump calls this
// from its own goroutine.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Fini restores the terminal. Safe to call once at shutdown.
func (s *Screen) Fini() {
	s.tc.Fini()
}
