package loaders

import (
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

func DecodeTexture(c *p3d.Chunk) (*resources.Texture, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	t := &resources.Texture{Name: name}
	if err := fields(s, &t.Version, &t.Width, &t.Height, &t.Bpp, &t.AlphaDepth, &t.NumMipMaps, &t.TextureType, &t.Usage, &t.Priority); err != nil {
		return nil, err
	}

	imgChunk, err := requireChild(c, p3d.ChunkTypeImage, t.Name)
	if err != nil {
		return nil, err
	}
	if t.Image, err = DecodeImage(imgChunk); err != nil {
		return nil, err
	}

	return t, nil
}

// DecodeSet decodes a texture set. Every candidate has to decode for the
// set to be usable.
func DecodeSet(c *p3d.Chunk) (*resources.Set, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	set := &resources.Set{Name: name}
	var declared uint32
	if err := fields(s, &set.Version, &declared); err != nil {
		return nil, err
	}

	for _, child := range c.ChildrenOf(p3d.ChunkTypeTexture) {
		t, err := DecodeTexture(child)
		if err != nil {
			return nil, err
		}
		set.Candidates = append(set.Candidates, t)
	}
	if len(set.Candidates) == 0 {
		return nil, decodeErrorf("set %q has no candidate textures", set.Name)
	}

	return set, nil
}

func DecodeSprite(c *p3d.Chunk) (*resources.Sprite, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	sp := &resources.Sprite{Name: name}
	if err := fields(s, &sp.NativeWidth, &sp.NativeHeight); err != nil {
		return nil, err
	}
	if sp.ShaderName, err = s.ReadPString(); err != nil {
		return nil, err
	}
	var imageCount uint32
	if err := fields(s, &sp.ImageWidth, &sp.ImageHeight, &imageCount, &sp.BlitBorder); err != nil {
		return nil, err
	}

	for _, child := range c.ChildrenOf(p3d.ChunkTypeImage) {
		img, err := DecodeImage(child)
		if err != nil {
			return nil, err
		}
		sp.Images = append(sp.Images, img)
	}
	if len(sp.Images) == 0 {
		return nil, decodeErrorf("sprite %q has no images", sp.Name)
	}

	return sp, nil
}
