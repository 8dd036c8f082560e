package assets

import "github.com/gdamore/tcell/v2"

// Sprite names shared by the factory and the renderers.
const (
	SpriteFloor  = "floor"
	SpriteWall   = "wall"
	SpriteSpot   = "box_spot"
	SpriteBox    = "box"
	SpritePlayer = "player"
)

// Glyphs drawn for each sprite. Emoji occupy two terminal columns.
const (
	GlyphFloor  = "⬛"
	GlyphWall   = "🧱"
	GlyphSpot   = "🎯"
	GlyphBox    = "📦"
	GlyphPlayer = "🧑"
)

// SpriteDef is the visual identity of one sprite.
type SpriteDef struct {
	Glyph   string
	FGColor tcell.Color
}

// Sprites maps sprite names to their glyph and colour.
var Sprites = map[string]SpriteDef{
	SpriteFloor:  {Glyph: GlyphFloor, FGColor: tcell.ColorDimGray},
	SpriteWall:   {Glyph: GlyphWall, FGColor: tcell.ColorGray},
	SpriteSpot:   {Glyph: GlyphSpot, FGColor: tcell.ColorBlue},
	SpriteBox:    {Glyph: GlyphBox, FGColor: tcell.ColorOrange},
	SpritePlayer: {Glyph: GlyphPlayer, FGColor: tcell.ColorYellow},
}
