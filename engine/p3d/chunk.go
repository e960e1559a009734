package p3d

import (
	"fmt"
	"io"
	"strings"

	"github.com/spaghettifunk/donut/engine/core"
)

const (
	/** @brief Size of id, data size and chunk size fields. */
	HeaderSize = 12
	/** @brief Deepest nesting accepted before a file is considered corrupt. */
	MaxDepth = 64
)

// Chunk is one node of a decoded file. Data aliases the file buffer.
type Chunk struct {
	Type ChunkType
	// Offset of the chunk header from the start of the file.
	Offset   int
	Data     []byte
	Children []*Chunk
}

// ChunkError attributes a failure to a single chunk.
type ChunkError struct {
	Type   ChunkType
	Offset int
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %s at offset %d: %v", e.Type, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// ReadChunk parses the chunk at the stream position together with all of
// its children. base is the file offset of the stream's first byte. On
// failure the stream is rewound to where the chunk began.
func ReadChunk(s *Stream, base int) (*Chunk, error) {
	start := s.Position()
	c, err := readChunk(s, base, 0)
	if err != nil {
		_ = s.Seek(start)
		return nil, err
	}
	return c, nil
}

func readChunk(s *Stream, base, depth int) (*Chunk, error) {
	offset := base + s.Position()
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d at offset %d", core.ErrCorruptChunk, MaxDepth, offset)
	}

	id, err := s.ReadU32()
	if err != nil {
		return nil, err
	}
	dataSize, err := s.ReadU32()
	if err != nil {
		return nil, err
	}
	chunkSize, err := s.ReadU32()
	if err != nil {
		return nil, err
	}

	c := &Chunk{
		Type:   ChunkType(id),
		Offset: offset,
	}

	if dataSize < HeaderSize || chunkSize < dataSize {
		return nil, &ChunkError{
			Type:   c.Type,
			Offset: offset,
			Err:    fmt.Errorf("%w: data size %d, chunk size %d", core.ErrCorruptChunk, dataSize, chunkSize),
		}
	}
	if uint64(chunkSize-HeaderSize) > uint64(s.Remaining()) {
		return nil, &ChunkError{
			Type:   c.Type,
			Offset: offset,
			Err:    fmt.Errorf("%w: chunk size %d overruns the %d bytes left in its parent", core.ErrCorruptChunk, chunkSize, s.Remaining()+HeaderSize),
		}
	}

	// Both reads are covered by the check above.
	c.Data, _ = s.ReadBytes(int(dataSize - HeaderSize))
	region, _ := s.ReadBytes(int(chunkSize - dataSize))

	childBase := offset + int(dataSize)
	children := NewStream(region)
	for children.Remaining() > 0 {
		if children.Remaining() < HeaderSize {
			return nil, &ChunkError{
				Type:   c.Type,
				Offset: offset,
				Err:    fmt.Errorf("%w: %d trailing bytes in child region", core.ErrCorruptChunk, children.Remaining()),
			}
		}
		child, err := readChunk(children, childBase, depth+1)
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, child)
	}

	return c, nil
}

// Size returns the number of bytes the chunk occupies in the file.
func (c *Chunk) Size() int {
	size := HeaderSize + len(c.Data)
	for _, child := range c.Children {
		size += child.Size()
	}
	return size
}

// Child returns the first direct child of type t.
func (c *Chunk) Child(t ChunkType) (*Chunk, bool) {
	for _, child := range c.Children {
		if child.Type == t {
			return child, true
		}
	}
	return nil, false
}

// ChildrenOf returns every direct child of type t, in file order.
func (c *Chunk) ChildrenOf(t ChunkType) []*Chunk {
	var out []*Chunk
	for _, child := range c.Children {
		if child.Type == t {
			out = append(out, child)
		}
	}
	return out
}

// Stream returns a fresh reader over the chunk's payload.
func (c *Chunk) Stream() *Stream {
	return NewStream(c.Data)
}

// Walk visits c and its descendants depth first. Returning false from fn
// skips the children of that chunk.
func (c *Chunk) Walk(fn func(c *Chunk, depth int) bool) {
	c.walk(fn, 0)
}

func (c *Chunk) walk(fn func(c *Chunk, depth int) bool, depth int) {
	if !fn(c, depth) {
		return
	}
	for _, child := range c.Children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of chunks in the tree rooted at c.
func (c *Chunk) Count() int {
	n := 0
	c.Walk(func(*Chunk, int) bool {
		n++
		return true
	})
	return n
}

// Dump writes an indented listing of the tree, one chunk per line.
func Dump(w io.Writer, root *Chunk) error {
	var err error
	root.Walk(func(c *Chunk, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s (0x%X) data=%db children=%d\n",
			strings.Repeat("  ", depth), c.Type, uint32(c.Type), len(c.Data), len(c.Children))
		return true
	})
	return err
}
