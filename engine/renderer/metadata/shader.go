package metadata

import (
	"maps"

	"github.com/google/uuid"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/resources"
)

/**
 * @brief The non texture parameters of a shader, keyed by their four
 * character code.
 */
type ShaderParams struct {
	Textures map[string]string
	Ints     map[string]uint32
	Floats   map[string]float32
	Colours  map[string]math.Vec4
}

/**
 * @brief Represents a shader on the frontend.
 */
type Shader struct {
	/** @brief The shader identifier */
	ID uuid.UUID

	Name string
	/** @brief The name of the pipeline the shader was authored for. */
	PddiShaderName string
	/** @brief The name of the texture bound as the diffuse map. */
	DiffuseTextureName string
	HasTranslucency    bool
	Params             ShaderParams

	diffuse *Texture
}

// NewShader builds a shader with no diffuse texture bound yet.
func NewShader(src *resources.Shader) *Shader {
	s := &Shader{
		ID:                 core.NewResourceID(),
		Name:               src.Name,
		PddiShaderName:     src.PddiShaderName,
		DiffuseTextureName: src.DiffuseTextureName,
		HasTranslucency:    src.HasTranslucency,
		Params: ShaderParams{
			Textures: maps.Clone(src.TextureParams),
			Ints:     maps.Clone(src.IntParams),
			Floats:   maps.Clone(src.FloatParams),
			Colours:  make(map[string]math.Vec4, len(src.ColourParams)),
		},
	}
	for k, v := range src.ColourParams {
		s.Params.Colours[k] = math.ColourFromARGB(v)
	}
	return s
}

func (s *Shader) SetDiffuseTexture(t *Texture) {
	s.diffuse = t
}

// DiffuseTexture returns the bound diffuse texture, nil before the first
// bind.
func (s *Shader) DiffuseTexture() *Texture {
	return s.diffuse
}
