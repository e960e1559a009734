package metadata_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(2, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestErrorTexture(t *testing.T) {
	tex := metadata.NewErrorTexture()

	assert.Equal(t, metadata.ErrorTextureName, tex.Name)
	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint32(2), tex.Height)
	assert.Equal(t, metadata.TextureFormatRGBA8, tex.Format)

	pink := [4]byte{0xDC, 0x00, 0xFF, 0xFF}
	black := [4]byte{0x00, 0x00, 0x00, 0xFF}
	for _, tc := range []struct {
		x, y uint32
		want [4]byte
	}{{0, 0, pink}, {1, 0, black}, {0, 1, black}, {1, 1, pink}} {
		px, ok := tex.PixelAt(tc.x, tc.y)
		require.True(t, ok)
		assert.Equal(t, tc.want, px, "pixel %d,%d", tc.x, tc.y)
	}

	assert.NotEqual(t, tex.ID, metadata.NewErrorTexture().ID)
}

func TestNewTextureDecodesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sampleImage()))

	tex, err := metadata.NewTextureFromImage("flag", resources.Image{Format: resources.ImageFormatPNG, Data: buf.Bytes()})
	require.NoError(t, err)

	assert.Equal(t, metadata.TextureFormatRGBA8, tex.Format)
	assert.Equal(t, uint32(3), tex.Width)
	assert.Equal(t, uint32(2), tex.Height)
	assert.Len(t, tex.Pixels, 3*2*4)
	assert.True(t, tex.HasTransparency)

	px, ok := tex.PixelAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, [4]byte{255, 0, 0, 255}, px)
}

func TestNewTextureDecodesBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, sampleImage()))

	tex, err := metadata.NewTextureFromImage("flag", resources.Image{Format: resources.ImageFormatBMP, Data: buf.Bytes()})
	require.NoError(t, err)

	px, ok := tex.PixelAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, byte(255), px[2])
}

func TestNewTextureRaw(t *testing.T) {
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	tex, err := metadata.NewTextureFromImage("raw", resources.Image{Width: 2, Height: 1, Bpp: 32, Data: pixels})
	require.NoError(t, err)
	assert.Equal(t, metadata.TextureFormatRGBA8, tex.Format)
	assert.Equal(t, pixels, tex.Pixels)

	pixels[0] = 99
	assert.Equal(t, byte(1), tex.Pixels[0], "pixels are copied out of the file buffer")

	rgb, err := metadata.NewTextureFromImage("rgb", resources.Image{Width: 1, Height: 1, Bpp: 24, Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, metadata.TextureFormatRGB8, rgb.Format)

	_, err = metadata.NewTextureFromImage("short", resources.Image{Width: 4, Height: 4, Bpp: 32, Data: pixels})
	assert.ErrorIs(t, err, core.ErrDecode)
}

func TestNewTextureKeepsOtherFormatsEncoded(t *testing.T) {
	tex, err := metadata.NewTextureFromImage("dxt", resources.Image{Width: 4, Height: 4, Format: resources.ImageFormatDXT1, Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, metadata.TextureFormatEncoded, tex.Format)
	assert.Equal(t, resources.ImageFormatDXT1, tex.Encoding)
	assert.Equal(t, []byte{1, 2}, tex.Pixels)

	_, ok := tex.PixelAt(0, 0)
	assert.False(t, ok)
}

func TestNewTextureBadPNG(t *testing.T) {
	_, err := metadata.NewTextureFromImage("junk", resources.Image{Format: resources.ImageFormatPNG, Data: []byte("not a png")})
	assert.ErrorIs(t, err, core.ErrDecode)
}

// bmpHeader returns the 54 byte header of an uncompressed 32 bpp BMP with
// no pixel data behind it.
func bmpHeader(width, height int32) []byte {
	b := make([]byte, 54)
	copy(b, "BM")
	binary.LittleEndian.PutUint32(b[2:], 54)
	binary.LittleEndian.PutUint32(b[10:], 54)
	binary.LittleEndian.PutUint32(b[14:], 40)
	binary.LittleEndian.PutUint32(b[18:], uint32(width))
	binary.LittleEndian.PutUint32(b[22:], uint32(height))
	binary.LittleEndian.PutUint16(b[26:], 1)
	binary.LittleEndian.PutUint16(b[28:], 32)
	return b
}

// pngWithSize encodes sampleImage and rewrites the IHDR dimensions.
func pngWithSize(t *testing.T, width, height uint32) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sampleImage()))
	b := buf.Bytes()

	// 8 byte signature, then IHDR length, type and data.
	ihdr := b[12 : 12+4+13]
	binary.BigEndian.PutUint32(ihdr[4:], width)
	binary.BigEndian.PutUint32(ihdr[8:], height)
	binary.BigEndian.PutUint32(b[12+4+13:], crc32.ChecksumIEEE(ihdr))
	return b
}

func TestNewTextureRejectsOversizedImages(t *testing.T) {
	tests := map[string]resources.Image{
		"huge bmp":         {Format: resources.ImageFormatBMP, Data: bmpHeader(0x7FFFFFFF, 0x7FFFFFFF)},
		"large bmp":        {Format: resources.ImageFormatBMP, Data: bmpHeader(60000, 60000)},
		"large png":        {Format: resources.ImageFormatPNG, Data: pngWithSize(t, 60000, 60000)},
		"png over the cap": {Format: resources.ImageFormatPNG, Data: pngWithSize(t, 4097, 4096)},
		"declared size":    {Width: 4, Height: 4, Format: resources.ImageFormatPNG, Data: pngWithSize(t, 3, 2)},
	}
	for name, img := range tests {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = metadata.NewTextureFromImage("big", img)
			})
			assert.ErrorIs(t, err, core.ErrDecode)
		})
	}
}

func TestNewTextureDeclaredSizeMatches(t *testing.T) {
	tex, err := metadata.NewTextureFromImage("flag", resources.Image{Width: 3, Height: 2, Format: resources.ImageFormatPNG, Data: pngWithSize(t, 3, 2)})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), tex.Width)
}
