package component

import (
	"github.com/gdamore/tcell/v2"
)

// GlyphComponent is the renderable representation of an entity: a single
// terminal cell. The render system draws every (Position, Glyph) pair.
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
	Layer int // higher layers draw over lower ones
}
