package systems

import (
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

func (rm *ResourceManager) LoadShader(s *resources.Shader) {
	logReplace(rm.shaders, resources.CategoryShader, s.Name)
	rm.shaders[s.Name] = metadata.NewShader(s)
}

/**
 * @brief Returns the shader stored under name with its diffuse texture
 * bound to what the texture table holds right now, or to the error
 * texture. The binding is redone on every call so textures loaded after
 * the shader are picked up.
 */
func (rm *ResourceManager) GetShader(name string) (*metadata.Shader, bool) {
	s, ok := rm.shaders[name]
	if !ok {
		core.LogDebug("could not find shader %s", name)
		return nil, false
	}

	if t, ok := rm.textures[s.DiffuseTextureName]; ok {
		s.SetDiffuseTexture(t)
	} else {
		s.SetDiffuseTexture(rm.errorTexture)
	}
	return s, true
}
