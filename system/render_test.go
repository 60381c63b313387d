package system

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/eskarin-dev/gridfall/component"
	"github.com/eskarin-dev/gridfall/engine"
	"github.com/eskarin-dev/gridfall/render"
)

func simWorld(t *testing.T, w, h int) (*engine.World, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)

	world := engine.NewWorld()
	engine.AddResource(world.Resources, render.Wrap(sim))
	return world, sim
}

func cellRune(t *testing.T, sim tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestRenderDrawsGlyphs(t *testing.T) {
	world, sim := simWorld(t, 20, 10)
	e := world.CreateEntity()
	engine.Set(world, e, component.PositionComponent{Pos: mgl64.Vec2{3, 4}})
	engine.Set(world, e, component.GlyphComponent{Rune: '@', Style: tcell.StyleDefault})

	sys := NewRenderSystem()
	sys.Initialize(world)
	sys.Update(world, time.Millisecond)

	if got := cellRune(t, sim, 3, 4); got != '@' {
		t.Errorf("cell (3,4) = %q, want '@'", got)
	}
}

func TestRenderLayerOrder(t *testing.T) {
	world, sim := simWorld(t, 20, 10)

	top := world.CreateEntity()
	engine.Set(world, top, component.PositionComponent{Pos: mgl64.Vec2{5, 5}})
	engine.Set(world, top, component.GlyphComponent{Rune: 'T', Layer: 2})
	bottom := world.CreateEntity()
	engine.Set(world, bottom, component.PositionComponent{Pos: mgl64.Vec2{5, 5}})
	engine.Set(world, bottom, component.GlyphComponent{Rune: 'b', Layer: 0})

	sys := NewRenderSystem()
	sys.Initialize(world)
	sys.Update(world, time.Millisecond)

	if got := cellRune(t, sim, 5, 5); got != 'T' {
		t.Errorf("cell (5,5) = %q, want top layer 'T'", got)
	}
}

func TestRenderDropsOutOfBounds(t *testing.T) {
	world, _ := simWorld(t, 10, 10)
	e := world.CreateEntity()
	engine.Set(world, e, component.PositionComponent{Pos: mgl64.Vec2{-3, 40}})
	engine.Set(world, e, component.GlyphComponent{Rune: 'x'})

	sys := NewRenderSystem()
	sys.Initialize(world)
	// Must not panic.
	sys.Update(world, time.Millisecond)
}
