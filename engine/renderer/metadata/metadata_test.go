package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

func TestNewShader(t *testing.T) {
	src := &resources.Shader{
		Name:               "car_body",
		PddiShaderName:     "simple",
		DiffuseTextureName: "paint",
		HasTranslucency:    true,
		TextureParams:      map[string]string{"TEX": "paint"},
		IntParams:          map[string]uint32{"BLMD": 1},
		ColourParams:       map[string]uint32{"DIFF": 0xFFFF0000},
	}

	sh := metadata.NewShader(src)
	assert.Equal(t, "car_body", sh.Name)
	assert.Equal(t, "paint", sh.DiffuseTextureName)
	assert.True(t, sh.HasTranslucency)
	assert.Nil(t, sh.DiffuseTexture())
	assert.Equal(t, math.Vec4{X: 1, W: 1}, sh.Params.Colours["DIFF"])

	src.IntParams["BLMD"] = 7
	assert.Equal(t, uint32(1), sh.Params.Ints["BLMD"])

	tex := metadata.NewErrorTexture()
	sh.SetDiffuseTexture(tex)
	assert.Same(t, tex, sh.DiffuseTexture())
}

func TestNewMesh(t *testing.T) {
	g := &resources.Geometry{
		Name: "cone",
		PrimitiveGroups: []*resources.PrimitiveGroup{{
			ShaderName:  "cone_shader",
			VertexCount: 2,
			Positions:   []math.Vec3{{X: 1}, {Y: 1}},
			UVs:         []math.Vec2{{X: 0.5}, {Y: 0.5}},
			Colours:     []uint32{0xFF00FF00},
			Indices:     []uint32{0, 1},
		}},
		Box: math.Extents3D{Max: math.Vec3{X: 1, Y: 1}},
	}

	m := metadata.NewMesh(g)
	assert.Equal(t, "cone", m.Name)
	assert.Equal(t, g.Box, m.Extents)
	assert.Equal(t, 2, m.VertexCount())
	assert.Equal(t, 2, m.IndexCount())
	require.Len(t, m.Groups, 1)

	v := m.Groups[0].Vertices
	assert.Equal(t, math.Vec3{X: 1}, v[0].Position)
	assert.Equal(t, math.Vec2{Y: 0.5}, v[1].Texcoord)
	assert.Equal(t, math.Vec4{Y: 1, W: 1}, v[0].Colour)
	assert.Equal(t, math.Vec4{X: 1, Y: 1, Z: 1, W: 1}, v[1].Colour)
	assert.Equal(t, math.Vec3{}, v[1].Normal)
}

func TestNewMeshSizesGroupsFromStreams(t *testing.T) {
	g := &resources.Geometry{
		Name: "hollow",
		PrimitiveGroups: []*resources.PrimitiveGroup{
			{VertexCount: 0xFFFFFFFF},
			{VertexCount: 0xFFFFFFFF, Normals: []math.Vec3{{Z: 1}}},
		},
	}

	m := metadata.NewMesh(g)
	require.Len(t, m.Groups, 2)
	assert.Empty(t, m.Groups[0].Vertices)
	assert.Len(t, m.Groups[1].Vertices, 1)
	assert.Equal(t, 1, m.VertexCount())
}

func TestFontMeasureText(t *testing.T) {
	src := &resources.Font{
		Name:     "hud",
		Size:     16,
		Height:   20,
		Baseline: 14,
		Textures: []*resources.Texture{{
			Name:  "hud_page",
			Image: resources.Image{Width: 2, Height: 2, Format: resources.ImageFormatTGA, Data: []byte{1}},
		}},
		Glyphs: []resources.FontGlyph{
			{Code: 'a', BottomLeft: math.Vec2{X: 0, Y: 10}, TopRight: math.Vec2{X: 8, Y: 0}, Advance: 9},
			{Code: 'b', BottomLeft: math.Vec2{X: 8, Y: 10}, TopRight: math.Vec2{X: 14, Y: 0}, Advance: 7},
		},
	}

	f := metadata.NewFont(src)
	require.Len(t, f.Pages, 1)
	assert.Equal(t, metadata.TextureFormatEncoded, f.Pages[0].Format)
	assert.Equal(t, 20, f.Descriptor.Common.LineHeight)
	assert.Equal(t, 14, f.Descriptor.Common.Base)

	c, ok := f.Glyph('b')
	require.True(t, ok)
	assert.Equal(t, 8, c.X)
	assert.Equal(t, 6, c.Width)
	assert.Equal(t, 10, c.Height)
	_, ok = f.Glyph('z')
	assert.False(t, ok)

	w, h := f.MeasureText("ab\naz")
	assert.Equal(t, 16, w)
	assert.Equal(t, 40, h)
}
