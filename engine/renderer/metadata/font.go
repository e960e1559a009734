package metadata

import (
	"strings"

	"github.com/fzipp/bmfont"
	"github.com/google/uuid"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/resources"
)

/**
 * @brief Represents a bitmap font. The glyph table is kept as a bmfont
 * descriptor so text layout code written against AngelCode fonts works
 * unchanged.
 */
type Font struct {
	ID         uuid.UUID
	Name       string
	ShaderName string
	Descriptor *bmfont.Descriptor
	/** @brief One texture per descriptor page, in page order. */
	Pages []*Texture
}

/**
 * @brief Builds a font from its decoded chunk. Glyph corners are texture
 * pixel coordinates. Pages that cannot be decoded are kept encoded.
 */
func NewFont(src *resources.Font) *Font {
	f := &Font{
		ID:         core.NewResourceID(),
		Name:       src.Name,
		ShaderName: src.ShaderName,
		Pages:      make([]*Texture, 0, len(src.Textures)),
	}

	for _, t := range src.Textures {
		page, err := NewTexture(t)
		if err != nil {
			core.LogWarn("font %s: keeping page %s encoded: %s", src.Name, t.Name, err)
			page = NewEncodedTexture(t.Name, t.Image)
		}
		f.Pages = append(f.Pages, page)
	}

	d := &bmfont.Descriptor{
		Chars:   make(map[rune]bmfont.Char, len(src.Glyphs)),
		Kerning: make(map[bmfont.CharPair]bmfont.Kerning),
	}
	d.Info.Face = src.Name
	d.Info.Size = int(src.Size)
	d.Common.LineHeight = int(src.Height)
	d.Common.Base = int(src.Baseline)
	if len(f.Pages) > 0 {
		d.Common.ScaleW = int(f.Pages[0].Width)
		d.Common.ScaleH = int(f.Pages[0].Height)
	}

	for _, g := range src.Glyphs {
		left, right := min(g.BottomLeft.X, g.TopRight.X), max(g.BottomLeft.X, g.TopRight.X)
		top, bottom := min(g.BottomLeft.Y, g.TopRight.Y), max(g.BottomLeft.Y, g.TopRight.Y)
		d.Chars[g.Code] = bmfont.Char{
			ID:       g.Code,
			X:        int(left),
			Y:        int(top),
			Width:    int(right - left),
			Height:   int(bottom - top),
			XOffset:  int(g.LeftBearing),
			XAdvance: int(g.Advance),
			Page:     int(g.TextureNum),
		}
	}
	f.Descriptor = d

	return f
}

func (f *Font) Glyph(r rune) (bmfont.Char, bool) {
	c, ok := f.Descriptor.Chars[r]
	return c, ok
}

/**
 * @brief Measures text laid out with this font. Lines are split on '\n',
 * the width is that of the widest line and runes without a glyph take no
 * space.
 */
func (f *Font) MeasureText(text string) (width, height int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := 0
		prev := rune(-1)
		for _, r := range line {
			c, ok := f.Descriptor.Chars[r]
			if !ok {
				continue
			}
			w += c.XAdvance
			if k, ok := f.Descriptor.Kerning[bmfont.CharPair{First: prev, Second: r}]; ok {
				w += k.Amount
			}
			prev = r
		}
		width = max(width, w)
	}
	return width, len(lines) * f.Descriptor.Common.LineHeight
}
