package loaders

import (
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

const glyphSize = 40

/**
 * @brief Decodes a TextureFont chunk: its page textures and glyph table.
 * Every glyph must point at one of the font's textures.
 */
func DecodeFont(c *p3d.Chunk) (*resources.Font, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	f := &resources.Font{Name: name}
	if f.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if f.ShaderName, err = s.ReadPString(); err != nil {
		return nil, err
	}
	var numTextures uint32
	if err := floats(s, &f.Size, &f.Width, &f.Height, &f.Baseline); err != nil {
		return nil, err
	}
	if numTextures, err = s.ReadU32(); err != nil {
		return nil, err
	}

	for _, child := range c.ChildrenOf(p3d.ChunkTypeTexture) {
		t, err := DecodeTexture(child)
		if err != nil {
			return nil, err
		}
		f.Textures = append(f.Textures, t)
	}
	if len(f.Textures) != int(numTextures) {
		return nil, decodeErrorf("font %q declares %d textures but carries %d", f.Name, numTextures, len(f.Textures))
	}

	glyphs, err := requireChild(c, p3d.ChunkTypeFontGlyphs, f.Name)
	if err != nil {
		return nil, err
	}
	if f.Glyphs, err = decodeGlyphs(glyphs.Stream()); err != nil {
		return nil, err
	}
	for _, g := range f.Glyphs {
		if int(g.TextureNum) >= len(f.Textures) {
			return nil, decodeErrorf("font %q glyph %q uses texture %d of %d", f.Name, g.Code, g.TextureNum, len(f.Textures))
		}
	}

	return f, nil
}

func decodeGlyphs(s *p3d.Stream) ([]resources.FontGlyph, error) {
	n, err := readCount(s, glyphSize)
	if err != nil {
		return nil, err
	}

	glyphs := make([]resources.FontGlyph, n)
	for i := range glyphs {
		g := &glyphs[i]
		if g.TextureNum, err = s.ReadU32(); err != nil {
			return nil, err
		}
		if g.BottomLeft, err = readVec2(s); err != nil {
			return nil, err
		}
		if g.TopRight, err = readVec2(s); err != nil {
			return nil, err
		}
		if err := floats(s, &g.LeftBearing, &g.RightBearing, &g.Width, &g.Advance); err != nil {
			return nil, err
		}
		code, err := s.ReadU32()
		if err != nil {
			return nil, err
		}
		g.Code = rune(code)
	}
	return glyphs, nil
}
