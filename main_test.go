package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/donut/engine/assets"
	"github.com/spaghettifunk/donut/engine/assets/loaders"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/p3d/p3dtest"
	"github.com/spaghettifunk/donut/engine/systems"
)

func TestPrintTreeMatchesDumpWithoutColour(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	root, err := p3d.LoadFile(p3dtest.File(
		p3dtest.Texture("brick", 1, 1, 0, []byte{1, 2, 3, 4}),
		p3dtest.New(0xDEAD0001, []byte{9}),
	))
	require.NoError(t, err)

	var plain, tree bytes.Buffer
	require.NoError(t, p3d.Dump(&plain, root))
	require.NoError(t, printTree(&tree, root))
	assert.Equal(t, plain.String(), tree.String())
	assert.Len(t, strings.Split(strings.TrimSpace(tree.String()), "\n"), root.Count())
}

func TestReportYAML(t *testing.T) {
	loader := assets.NewAssetLoader(nil, nil, nil)
	rm := systems.NewResourceManager(nil)

	root, err := p3d.LoadFile(p3dtest.File(
		p3dtest.Texture("brick", 1, 1, 0, []byte{1, 2, 3, 4}),
		p3dtest.Shader("wall", "brick"),
	))
	require.NoError(t, err)
	decoded, err := assets.DecodeKnownChunks(root, loaders.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, 2, rm.LoadAssets(assets.Assets(decoded)))

	var buf bytes.Buffer
	require.NoError(t, report(&buf, rm, loader, reportOptions{names: true, yaml: true}))

	var got loadReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.Resources.Textures)
	assert.Equal(t, 1, got.Resources.Shaders)
	require.Len(t, got.Names, len(categories))
	assert.Equal(t, "texture", got.Names[0].Category)
	assert.Equal(t, []string{"brick"}, got.Names[0].Names)
	assert.Equal(t, []string{"wall"}, got.Names[1].Names)
}

func TestReportText(t *testing.T) {
	loader := assets.NewAssetLoader(nil, nil, nil)
	rm := systems.NewResourceManager(nil)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, rm, loader, reportOptions{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "textures=0")
}
