package resources

import (
	"fmt"

	"github.com/spaghettifunk/donut/engine/p3d"
)

// Category names the resource manager table an asset is stored in.
type Category int

const (
	/** @brief Not stored in any table: raw chunks and bare animation channels. */
	CategoryNone Category = iota
	CategoryTexture
	CategoryShader
	CategoryMesh
	CategoryFont
	CategoryAnimation
)

func (c Category) String() string {
	switch c {
	case CategoryTexture:
		return "texture"
	case CategoryShader:
		return "shader"
	case CategoryMesh:
		return "mesh"
	case CategoryFont:
		return "font"
	case CategoryAnimation:
		return "animation"
	default:
		return "none"
	}
}

// Asset is a decoded chunk. The concrete type is one of *Texture,
// *Shader, *Set, *Sprite, *Geometry, *Font, *AnimationChannel,
// *Animation or *RawChunk.
type Asset interface {
	AssetName() string
	Category() Category
}

/** @brief How the bytes of an image are stored. */
type ImageFormat uint32

const (
	ImageFormatRaw ImageFormat = iota
	ImageFormatPNG
	ImageFormatTGA
	ImageFormatBMP
	ImageFormatIPU
	ImageFormatDXT
	ImageFormatDXT1
	ImageFormatDXT2
	ImageFormatDXT3
	ImageFormatDXT4
	ImageFormatDXT5
)

/** @brief The largest format value a file may carry. */
const ImageFormatMax = ImageFormatDXT5

func (f ImageFormat) String() string {
	names := [...]string{"raw", "png", "tga", "bmp", "ipu", "dxt", "dxt1", "dxt2", "dxt3", "dxt4", "dxt5"}
	if f <= ImageFormatMax {
		return names[f]
	}
	return fmt.Sprintf("ImageFormat(%d)", uint32(f))
}

/**
 * @brief A single bitmap. Data holds the bytes exactly as stored in the
 * file, which for most formats is a complete encoded image file.
 */
type Image struct {
	Name       string
	Version    uint32
	Width      uint32
	Height     uint32
	Bpp        uint32
	Palettized bool
	HasAlpha   bool
	Format     ImageFormat
	Data       []byte
}

type Texture struct {
	Name        string
	Version     uint32
	Width       uint32
	Height      uint32
	Bpp         uint32
	AlphaDepth  uint32
	NumMipMaps  uint32
	TextureType uint32
	Usage       uint32
	Priority    uint32
	Image       Image
}

func (t *Texture) AssetName() string  { return t.Name }
func (t *Texture) Category() Category { return CategoryTexture }

// Set is a group of interchangeable textures. One candidate is picked
// when the set is loaded and stored under the set's name.
type Set struct {
	Name       string
	Version    uint32
	Candidates []*Texture
}

func (s *Set) AssetName() string  { return s.Name }
func (s *Set) Category() Category { return CategoryTexture }

type Sprite struct {
	Name         string
	NativeWidth  uint32
	NativeHeight uint32
	ShaderName   string
	ImageWidth   uint32
	ImageHeight  uint32
	BlitBorder   uint32
	Images       []Image
}

func (s *Sprite) AssetName() string  { return s.Name }
func (s *Sprite) Category() Category { return CategoryTexture }

/** @brief Parameter key of the diffuse texture of a shader. */
const ShaderParamDiffuseTexture = "TEX"

// Shader is a material description. DiffuseTextureName is only a name;
// it is bound to a texture when the shader is looked up.
type Shader struct {
	Name               string
	Version            uint32
	PddiShaderName     string
	HasTranslucency    bool
	VertexNeeds        uint32
	VertexMask         uint32
	DiffuseTextureName string
	TextureParams      map[string]string
	IntParams          map[string]uint32
	FloatParams        map[string]float32
	ColourParams       map[string]uint32
}

func (s *Shader) AssetName() string  { return s.Name }
func (s *Shader) Category() Category { return CategoryShader }

// RawChunk is a chunk whose type has no decoder. It is kept as parsed.
type RawChunk struct {
	Chunk *p3d.Chunk
}

func (r *RawChunk) AssetName() string  { return "" }
func (r *RawChunk) Category() Category { return CategoryNone }
