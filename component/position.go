package component

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PositionComponent is an entity's location in world space.
type PositionComponent struct {
	Pos mgl64.Vec2
}

// X returns the horizontal coordinate.
func (p PositionComponent) X() float64 { return p.Pos[0] }

// Y returns the vertical coordinate.
func (p PositionComponent) Y() float64 { return p.Pos[1] }

// Cell returns the integer grid cell the position falls in, for rendering
// and spatial bucketing.
func (p PositionComponent) Cell() (int, int) {
	return int(p.Pos[0]), int(p.Pos[1])
}

// VelocityComponent is an entity's rate of positional change per second.
type VelocityComponent struct {
	Vel mgl64.Vec2
}
