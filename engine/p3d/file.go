package p3d

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/donut/engine/core"
)

// LoadFile parses a whole P3D buffer. The buffer must hold exactly one
// root chunk carrying the file signature.
func LoadFile(data []byte) (*Chunk, error) {
	s := NewStream(data)
	root, err := ReadChunk(s, 0)
	if err != nil {
		return nil, err
	}
	if root.Type != ChunkTypeFile {
		return nil, fmt.Errorf("%w: bad file signature 0x%08X", core.ErrCorruptChunk, uint32(root.Type))
	}
	if s.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes after the root chunk", core.ErrCorruptChunk, s.Remaining())
	}
	return root, nil
}

// File is a parsed P3D file together with the name it was loaded from.
type File struct {
	Name string
	Root *Chunk
}

// ReadFile reads and parses the file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := LoadFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Name: path, Root: root}, nil
}
