package system

import (
	"sort"
	"time"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/core"
	"github.com/eskarin-dev/gridfall/engine"
	"github.com/eskarin-dev/gridfall/render"
)

// RenderSystem draws every (Position, Glyph) entity to the screen, lowest
// layer first. It registers last so it observes the frame's final state.
type RenderSystem struct {
	screen *render.Screen

	drawList []drawEntry
}

type drawEntry struct {
	x, y  int
	glyph component.GlyphComponent
}

// NewRenderSystem creates the system.
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Initialize fetches the screen resource.
func (s *RenderSystem) Initialize(w *engine.World) {
	s.screen = engine.MustResource[*render.Screen](w.Resources)
}

// Update redraws the whole frame.
func (s *RenderSystem) Update(w *engine.World, dt time.Duration) {
	s.drawList = s.drawList[:0]
	engine.Each2(w, func(_ core.Entity, pos component.PositionComponent, g component.GlyphComponent) {
		x, y := pos.Cell()
		s.drawList = append(s.drawList, drawEntry{x: x, y: y, glyph: g})
	})

	sort.SliceStable(s.drawList, func(i, j int) bool {
		return s.drawList[i].glyph.Layer < s.drawList[j].glyph.Layer
	})

	s.screen.Clear()
	for _, d := range s.drawList {
		s.screen.Draw(d.x, d.y, d.glyph.Rune, d.glyph.Style)
	}
	s.screen.Show()
}

// Shutdown is a no-op; the wiring layer finalizes the screen.
func (s *RenderSystem) Shutdown(w *engine.World) {}
