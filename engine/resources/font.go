package resources

import "github.com/spaghettifunk/donut/engine/math"

type FontGlyph struct {
	TextureNum   uint32
	BottomLeft   math.Vec2
	TopRight     math.Vec2
	LeftBearing  float32
	RightBearing float32
	Width        float32
	Advance      float32
	Code         rune
}

// Font is a texture font. Glyph corners are texture coordinates into
// Textures[TextureNum].
type Font struct {
	Name       string
	Version    uint32
	ShaderName string
	Size       float32
	Width      float32
	Height     float32
	Baseline   float32
	Textures   []*Texture
	Glyphs     []FontGlyph
}

func (f *Font) AssetName() string  { return f.Name }
func (f *Font) Category() Category { return CategoryFont }
