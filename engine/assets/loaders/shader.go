package loaders

import (
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

/**
 * @brief Decodes a Shader chunk. Parameters are collected from the
 * param children; a later parameter with the same key replaces an
 * earlier one. A shader without a "TEX" parameter has an empty diffuse
 * texture name.
 */
func DecodeShader(c *p3d.Chunk) (*resources.Shader, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	sh := &resources.Shader{
		Name:          name,
		TextureParams: make(map[string]string),
		IntParams:     make(map[string]uint32),
		FloatParams:   make(map[string]float32),
		ColourParams:  make(map[string]uint32),
	}
	if sh.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if sh.PddiShaderName, err = s.ReadPString(); err != nil {
		return nil, err
	}
	var translucency, numParams uint32
	if err := fields(s, &translucency, &sh.VertexNeeds, &sh.VertexMask, &numParams); err != nil {
		return nil, err
	}
	sh.HasTranslucency = translucency != 0

	for _, child := range c.Children {
		if err := decodeShaderParam(sh, child); err != nil {
			return nil, err
		}
	}
	sh.DiffuseTextureName = sh.TextureParams[resources.ShaderParamDiffuseTexture]

	return sh, nil
}

func decodeShaderParam(sh *resources.Shader, c *p3d.Chunk) error {
	switch c.Type {
	case p3d.ChunkTypeShaderTextureParam, p3d.ChunkTypeShaderIntParam,
		p3d.ChunkTypeShaderFloatParam, p3d.ChunkTypeShaderColourParam:
	default:
		return nil
	}

	s := c.Stream()
	key, err := s.ReadFourCC()
	if err != nil {
		return err
	}

	switch c.Type {
	case p3d.ChunkTypeShaderTextureParam:
		v, err := s.ReadPString()
		if err != nil {
			return err
		}
		sh.TextureParams[key] = v
	case p3d.ChunkTypeShaderIntParam:
		v, err := s.ReadU32()
		if err != nil {
			return err
		}
		sh.IntParams[key] = v
	case p3d.ChunkTypeShaderFloatParam:
		v, err := s.ReadF32()
		if err != nil {
			return err
		}
		sh.FloatParams[key] = v
	case p3d.ChunkTypeShaderColourParam:
		v, err := s.ReadU32()
		if err != nil {
			return err
		}
		sh.ColourParams[key] = v
	}
	return nil
}
