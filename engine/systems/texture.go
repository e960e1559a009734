package systems

import (
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/renderer/metadata"
	"github.com/spaghettifunk/donut/engine/resources"
)

// AddTexture stores an already built texture under its name.
func (rm *ResourceManager) AddTexture(t *metadata.Texture) {
	logReplace(rm.textures, resources.CategoryTexture, t.Name)
	rm.textures[t.Name] = t
}

func (rm *ResourceManager) LoadTexture(t *resources.Texture) {
	rm.AddTexture(buildTexture(t.Name, t.Image))
}

/**
 * @brief Loads a sprite as a texture named after the sprite, built from
 * its first image.
 */
func (rm *ResourceManager) LoadSprite(s *resources.Sprite) {
	if len(s.Images) == 0 {
		core.LogWarn("sprite %s has no images, not loading it", s.Name)
		return
	}
	rm.AddTexture(buildTexture(s.Name, s.Images[0]))
}

/**
 * @brief Picks one candidate of the set at random and stores it under
 * the set's name. The choice is made once, here, not on lookup.
 */
func (rm *ResourceManager) LoadSet(s *resources.Set) {
	if len(s.Candidates) == 0 {
		core.LogWarn("set %s has no candidates, not loading it", s.Name)
		return
	}
	pick := s.Candidates[rm.rand.Intn(len(s.Candidates))]
	core.LogDebug("set %s resolved to %s", s.Name, pick.Name)
	rm.AddTexture(buildTexture(s.Name, pick.Image))
}

/**
 * @brief Returns the texture stored under name, or the error texture if
 * there is none. Never returns nil.
 */
func (rm *ResourceManager) GetTexture(name string) *metadata.Texture {
	if t, ok := rm.textures[name]; ok {
		return t
	}
	core.LogDebug("could not find texture %s", name)
	return rm.errorTexture
}

func (rm *ResourceManager) ErrorTexture() *metadata.Texture {
	return rm.errorTexture
}

// buildTexture never fails: images that cannot be decoded are kept
// encoded.
func buildTexture(name string, img resources.Image) *metadata.Texture {
	t, err := metadata.NewTextureFromImage(name, img)
	if err != nil {
		core.LogWarn("texture %s: %s, keeping it encoded", name, err)
		return metadata.NewEncodedTexture(name, img)
	}
	return t
}
