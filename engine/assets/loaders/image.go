package loaders

import (
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

/**
 * @brief Decodes an Image chunk and its ImageData child. The pixel
 * bytes alias the file buffer.
 */
func DecodeImage(c *p3d.Chunk) (resources.Image, error) {
	var img resources.Image
	if c.Type != p3d.ChunkTypeImage {
		return img, decodeErrorf("expected %s chunk, got %s", p3d.ChunkTypeImage, c.Type)
	}

	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return img, err
	}
	img.Name = name

	var palettized, hasAlpha, format uint32
	if err := fields(s, &img.Version, &img.Width, &img.Height, &img.Bpp, &palettized, &hasAlpha, &format); err != nil {
		return img, err
	}
	if resources.ImageFormat(format) > resources.ImageFormatMax {
		return img, decodeErrorf("image %q has unknown format %d", img.Name, format)
	}
	img.Palettized = palettized != 0
	img.HasAlpha = hasAlpha != 0
	img.Format = resources.ImageFormat(format)

	data, err := requireChild(c, p3d.ChunkTypeImageData, img.Name)
	if err != nil {
		return img, err
	}
	ds := data.Stream()
	size, err := readCount(ds, 1)
	if err != nil {
		return img, err
	}
	if img.Data, err = ds.ReadBytes(size); err != nil {
		return img, err
	}

	return img, nil
}
