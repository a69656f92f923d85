package testutil

// Glyph names the fixture table and its columns.
type Glyph string

// Glyph identifiers.
const (
	GlyphTable  Glyph = "glyph"
	GlyphID     Glyph = "id"
	GlyphImage  Glyph = "image"
	GlyphAspect Glyph = "aspect"
	GlyphTags   Glyph = "tags"
	GlyphPrice  Glyph = "price"
)

// Unquoted returns the identifier spelling.
func (g Glyph) Unquoted() string { return string(g) }
