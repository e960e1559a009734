package metadata

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/resources"
)

/** @brief The name of the texture handed out for missing textures. */
const ErrorTextureName = "error"

/** @brief The largest PNG or BMP image, in pixels, that is decoded to RGBA8. */
const MaxDecodedPixels = 4096 * 4096

/** @brief The pixel layout of a runtime texture. */
type TextureFormat int

const (
	/** @brief Four bytes per pixel, red first. */
	TextureFormatRGBA8 TextureFormat = iota
	/** @brief Three bytes per pixel, red first. */
	TextureFormatRGB8
	/** @brief Pixels still in the file's encoding, see Texture.Encoding. */
	TextureFormatEncoded
)

func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8:
		return "rgba8"
	case TextureFormatRGB8:
		return "rgb8"
	default:
		return "encoded"
	}
}

/**
 * @brief Represents a texture ready to be handed to a renderer.
 */
type Texture struct {
	/** @brief The unique texture identifier. A reload assigns a new one. */
	ID uuid.UUID
	/** @brief The texture Name. */
	Name string
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	Format TextureFormat
	/** @brief The image format of Pixels when Format is TextureFormatEncoded. */
	Encoding resources.ImageFormat
	/** @brief Indicates if the texture has transparency. */
	HasTransparency bool
	/** @brief The raw texture data (pixels). */
	Pixels []byte
}

/**
 * @brief Creates the 2x2 hot pink and black checkerboard used wherever a
 * texture is missing.
 */
func NewErrorTexture() *Texture {
	pink := []byte{0xDC, 0x00, 0xFF, 0xFF}
	black := []byte{0x00, 0x00, 0x00, 0xFF}

	pixels := make([]byte, 0, 16)
	pixels = append(pixels, pink...)
	pixels = append(pixels, black...)
	pixels = append(pixels, black...)
	pixels = append(pixels, pink...)

	return &Texture{
		ID:     core.NewResourceID(),
		Name:   ErrorTextureName,
		Width:  2,
		Height: 2,
		Format: TextureFormatRGBA8,
		Pixels: pixels,
	}
}

// NewTexture converts a decoded texture chunk using its image.
func NewTexture(src *resources.Texture) (*Texture, error) {
	return NewTextureFromImage(src.Name, src.Image)
}

/**
 * @brief Converts a stored image into a runtime texture. PNG and BMP
 * images are decoded to RGBA8, raw 32 and 24 bit images are copied and
 * every other format is kept encoded.
 */
func NewTextureFromImage(name string, img resources.Image) (*Texture, error) {
	switch img.Format {
	case resources.ImageFormatPNG, resources.ImageFormatBMP:
		return decodeImage(name, img)
	case resources.ImageFormatRaw:
		return rawTexture(name, img)
	default:
		return NewEncodedTexture(name, img), nil
	}
}

/**
 * @brief Wraps the image bytes without decoding them. Used for formats
 * the renderer decodes itself and for images that failed to decode.
 */
func NewEncodedTexture(name string, img resources.Image) *Texture {
	return &Texture{
		ID:              core.NewResourceID(),
		Name:            name,
		Width:           img.Width,
		Height:          img.Height,
		Format:          TextureFormatEncoded,
		Encoding:        img.Format,
		HasTransparency: img.HasAlpha,
		Pixels:          append([]byte(nil), img.Data...),
	}
}

// checkImageConfig reads the image header and rejects sizes that disagree
// with the Image chunk or exceed MaxDecodedPixels, before any pixel
// buffer is allocated.
func checkImageConfig(name string, img resources.Image) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return fmt.Errorf("%w: texture %q: %w", core.ErrDecode, name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: texture %q has an empty %dx%d image", core.ErrDecode, name, cfg.Width, cfg.Height)
	}
	if img.Width != 0 && img.Height != 0 && (uint64(cfg.Width) != uint64(img.Width) || uint64(cfg.Height) != uint64(img.Height)) {
		return fmt.Errorf("%w: texture %q image is %dx%d, chunk declares %dx%d",
			core.ErrDecode, name, cfg.Width, cfg.Height, img.Width, img.Height)
	}
	if uint64(cfg.Width)*uint64(cfg.Height) > MaxDecodedPixels {
		return fmt.Errorf("%w: texture %q image is %dx%d, larger than %d pixels",
			core.ErrDecode, name, cfg.Width, cfg.Height, MaxDecodedPixels)
	}
	return nil
}

func decodeImage(name string, img resources.Image) (*Texture, error) {
	if err := checkImageConfig(name, img); err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: texture %q: %w", core.ErrDecode, name, err)
	}

	b := decoded.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), decoded, b.Min, draw.Src)

	return &Texture{
		ID:              core.NewResourceID(),
		Name:            name,
		Width:           uint32(b.Dx()),
		Height:          uint32(b.Dy()),
		Format:          TextureFormatRGBA8,
		HasTransparency: hasTransparency(rgba),
		Pixels:          rgba.Pix,
	}, nil
}

func rawTexture(name string, img resources.Image) (*Texture, error) {
	var format TextureFormat
	var channels uint32
	switch img.Bpp {
	case 32:
		format, channels = TextureFormatRGBA8, 4
	case 24:
		format, channels = TextureFormatRGB8, 3
	default:
		return NewEncodedTexture(name, img), nil
	}

	want := uint64(img.Width) * uint64(img.Height) * uint64(channels)
	if uint64(len(img.Data)) != want {
		return nil, fmt.Errorf("%w: texture %q holds %d bytes, %dx%d at %d bpp needs %d",
			core.ErrDecode, name, len(img.Data), img.Width, img.Height, img.Bpp, want)
	}

	return &Texture{
		ID:              core.NewResourceID(),
		Name:            name,
		Width:           img.Width,
		Height:          img.Height,
		Format:          format,
		HasTransparency: img.HasAlpha && format == TextureFormatRGBA8,
		Pixels:          append([]byte(nil), img.Data...),
	}, nil
}

func hasTransparency(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xFF {
			return true
		}
	}
	return false
}

// PixelAt returns the RGBA value of a pixel of an RGBA8 texture.
func (t *Texture) PixelAt(x, y uint32) ([4]byte, bool) {
	var px [4]byte
	if t.Format != TextureFormatRGBA8 || x >= t.Width || y >= t.Height {
		return px, false
	}
	i := (y*t.Width + x) * 4
	copy(px[:], t.Pixels[i:i+4])
	return px, true
}
