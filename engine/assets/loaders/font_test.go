package loaders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/donut/engine/assets/loaders"
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/p3d/p3dtest"
)

func TestDecodeFont(t *testing.T) {
	page := p3dtest.Texture("hud_page0", 128, 128, 0, nil)
	f, err := loaders.DecodeFont(chunkOf(t, p3dtest.Font("hud", []*p3dtest.Node{page}, p3dtest.Glyphs('A', 'b', 'é'))))
	require.NoError(t, err)

	assert.Equal(t, "hud", f.Name)
	assert.Equal(t, "hud_shader", f.ShaderName)
	assert.Equal(t, float32(16), f.Size)
	assert.Equal(t, float32(20), f.Height)
	assert.Equal(t, float32(14), f.Baseline)
	require.Len(t, f.Textures, 1)
	assert.Equal(t, "hud_page0", f.Textures[0].Name)

	require.Len(t, f.Glyphs, 3)
	assert.Equal(t, 'é', f.Glyphs[2].Code)
	assert.Equal(t, math.Vec2{X: 1, Y: 1}, f.Glyphs[0].TopRight)
	assert.Equal(t, float32(8), f.Glyphs[0].Width)
	assert.Equal(t, float32(10), f.Glyphs[0].Advance)
}

func TestDecodeFontErrors(t *testing.T) {
	page := p3dtest.Texture("page", 1, 1, 0, nil)
	badGlyph := p3dtest.New(p3d.ChunkTypeFontGlyphs,
		p3dtest.NewPayload().U32(1).U32(3).Vec2(0, 0).Vec2(1, 1).F32(0).F32(0).F32(1).F32(1).U32('x').Build(),
	)

	tests := map[string]*p3dtest.Node{
		"missing glyphs":        p3dtest.Font("f", []*p3dtest.Node{page}, nil),
		"glyph texture missing": p3dtest.Font("f", []*p3dtest.Node{page}, badGlyph),
		"glyph table truncated": p3dtest.Font("f", []*p3dtest.Node{page}, p3dtest.New(p3d.ChunkTypeFontGlyphs, p3dtest.NewPayload().U32(4).Build())),
	}

	for name, node := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loaders.DecodeFont(chunkOf(t, node))
			assert.ErrorIs(t, err, core.ErrDecode)
		})
	}
}
