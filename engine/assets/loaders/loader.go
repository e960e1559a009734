package loaders

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

// DecodeFunc turns one chunk, and its children, into an asset. It must
// not keep state between calls.
type DecodeFunc func(c *p3d.Chunk) (resources.Asset, error)

// Registry maps chunk types to decoders. It is read-only once built and
// may be shared by any number of goroutines.
type Registry struct {
	decoders map[p3d.ChunkType]DecodeFunc
}

// NewRegistry returns a registry holding every decoder in this package.
func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[p3d.ChunkType]DecodeFunc),
	}

	r.Register(p3d.ChunkTypeTexture, decoder(DecodeTexture))
	r.Register(p3d.ChunkTypeSet, decoder(DecodeSet))
	r.Register(p3d.ChunkTypeSprite, decoder(DecodeSprite))
	r.Register(p3d.ChunkTypeShader, decoder(DecodeShader))
	r.Register(p3d.ChunkTypeGeometry, decoder(DecodeGeometry))
	r.Register(p3d.ChunkTypeTextureFont, decoder(DecodeFont))
	r.Register(p3d.ChunkTypeAnimation, decoder(DecodeAnimation))
	for t := range channelLayouts {
		r.Register(t, decoder(DecodeAnimationChannel))
	}

	return r
}

// Register adds or replaces the decoder for t.
func (r *Registry) Register(t p3d.ChunkType, fn DecodeFunc) {
	r.decoders[t] = fn
}

func (r *Registry) Lookup(t p3d.ChunkType) (DecodeFunc, bool) {
	fn, ok := r.decoders[t]
	return fn, ok
}

// Decode runs the decoder registered for the chunk's type. A chunk
// without one comes back as a *resources.RawChunk. Failures are wrapped
// in a *p3d.ChunkError matching core.ErrDecode.
func (r *Registry) Decode(c *p3d.Chunk) (resources.Asset, error) {
	fn, ok := r.decoders[c.Type]
	if !ok {
		return &resources.RawChunk{Chunk: c}, nil
	}

	asset, err := fn(c)
	if err != nil {
		if !errors.Is(err, core.ErrDecode) {
			err = fmt.Errorf("%w: %w", core.ErrDecode, err)
		}
		return nil, &p3d.ChunkError{Type: c.Type, Offset: c.Offset, Err: err}
	}
	return asset, nil
}

func decoder[T resources.Asset](fn func(c *p3d.Chunk) (T, error)) DecodeFunc {
	return func(c *p3d.Chunk) (resources.Asset, error) {
		asset, err := fn(c)
		if err != nil {
			return nil, err
		}
		return asset, nil
	}
}

func decodeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", core.ErrDecode, fmt.Sprintf(format, args...))
}

// requireChild returns the first child of type t or a decode error
// naming the parent.
func requireChild(c *p3d.Chunk, t p3d.ChunkType, owner string) (*p3d.Chunk, error) {
	child, ok := c.Child(t)
	if !ok {
		return nil, decodeErrorf("%s %q has no %s chunk", c.Type, owner, t)
	}
	return child, nil
}

// readCount reads a u32 element count and checks that many elements of
// elemSize bytes are left in the stream.
func readCount(s *p3d.Stream, elemSize int) (int, error) {
	n, err := s.ReadU32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(elemSize) > uint64(s.Remaining()) {
		return 0, decodeErrorf("%d elements of %d bytes declared, %d bytes left", n, elemSize, s.Remaining())
	}
	return int(n), nil
}

// fields reads consecutive u32 values into the given pointers.
func fields(s *p3d.Stream, dst ...*uint32) error {
	for _, d := range dst {
		v, err := s.ReadU32()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

func floats(s *p3d.Stream, dst ...*float32) error {
	for _, d := range dst {
		v, err := s.ReadF32()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}
