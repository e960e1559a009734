package loaders_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/donut/engine/assets/loaders"
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/p3d/p3dtest"
	"github.com/spaghettifunk/donut/engine/resources"
)

func chunkOf(t *testing.T, n *p3dtest.Node) *p3d.Chunk {
	t.Helper()
	c, err := p3d.ReadChunk(p3d.NewStream(n.Encode()), 0)
	require.NoError(t, err)
	return c
}

func TestRegistryDecodesKnownTypes(t *testing.T) {
	r := loaders.NewRegistry()
	box := p3dtest.Geometry("box", p3dtest.PrimitiveGroup("wall", [][3]float32{{0, 0, 0}}, []uint32{0}))
	hud := p3dtest.Font("hud", []*p3dtest.Node{p3dtest.Texture("page", 1, 1, 0, nil)}, p3dtest.Glyphs('a'))

	tests := map[string]struct {
		node     *p3dtest.Node
		category resources.Category
		name     string
	}{
		"texture":  {node: p3dtest.Texture("brick", 2, 2, 0, make([]byte, 16)), category: resources.CategoryTexture, name: "brick"},
		"shader":   {node: p3dtest.Shader("wall", "brick"), category: resources.CategoryShader, name: "wall"},
		"set":      {node: p3dtest.Set("signs", p3dtest.Texture("a", 1, 1, 0, nil)), category: resources.CategoryTexture, name: "signs"},
		"font":     {node: hud, category: resources.CategoryFont, name: "hud"},
		"geometry": {node: box, category: resources.CategoryMesh, name: "box"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			asset, err := r.Decode(chunkOf(t, tc.node))
			require.NoError(t, err)
			assert.Equal(t, tc.category, asset.Category())
			assert.Equal(t, tc.name, asset.AssetName())
		})
	}
}

func TestRegistryUnknownTypeIsRaw(t *testing.T) {
	c := chunkOf(t, p3dtest.New(0xDEAD0001, []byte{1, 2}))

	asset, err := loaders.NewRegistry().Decode(c)
	require.NoError(t, err)

	raw, ok := asset.(*resources.RawChunk)
	require.True(t, ok)
	assert.Same(t, c, raw.Chunk)
	assert.Equal(t, resources.CategoryNone, raw.Category())
}

func TestRegistryWrapsFailures(t *testing.T) {
	// A texture payload cut short after its name.
	c := chunkOf(t, p3dtest.New(p3d.ChunkTypeTexture, p3dtest.NewPayload().PString("cut").U32(1).Build()))

	_, err := loaders.NewRegistry().Decode(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	var chunkErr *p3d.ChunkError
	require.True(t, errors.As(err, &chunkErr))
	assert.Equal(t, p3d.ChunkTypeTexture, chunkErr.Type)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := loaders.NewRegistry()
	called := false
	r.Register(p3d.ChunkTypeTexture, func(c *p3d.Chunk) (resources.Asset, error) {
		called = true
		return &resources.RawChunk{Chunk: c}, nil
	})

	_, err := r.Decode(chunkOf(t, p3dtest.Texture("x", 1, 1, 0, nil)))
	require.NoError(t, err)
	assert.True(t, called)

	_, ok := r.Lookup(p3d.ChunkTypeSprite)
	assert.True(t, ok)
	_, ok = r.Lookup(0x1234)
	assert.False(t, ok)
}
