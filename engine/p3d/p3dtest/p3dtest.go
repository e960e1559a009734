// Package p3dtest builds P3D byte streams for tests.
package p3dtest

import (
	"encoding/binary"
	"math"

	"github.com/spaghettifunk/donut/engine/p3d"
)

// Payload accumulates the little-endian payload of a chunk.
type Payload struct {
	buf []byte
}

func NewPayload() *Payload {
	return &Payload{}
}

func (p *Payload) U8(v uint8) *Payload {
	p.buf = append(p.buf, v)
	return p
}

func (p *Payload) U16(v uint16) *Payload {
	p.buf = binary.LittleEndian.AppendUint16(p.buf, v)
	return p
}

func (p *Payload) I16(v int16) *Payload {
	return p.U16(uint16(v))
}

func (p *Payload) U32(v uint32) *Payload {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, v)
	return p
}

func (p *Payload) F32(v float32) *Payload {
	return p.U32(math.Float32bits(v))
}

func (p *Payload) Vec2(x, y float32) *Payload {
	return p.F32(x).F32(y)
}

func (p *Payload) Vec3(x, y, z float32) *Payload {
	return p.F32(x).F32(y).F32(z)
}

// PString writes a one byte length followed by the string.
func (p *Payload) PString(s string) *Payload {
	p.buf = append(p.buf, byte(len(s)))
	p.buf = append(p.buf, s...)
	return p
}

// FourCC writes s padded with NULs to four bytes.
func (p *Payload) FourCC(s string) *Payload {
	var b [4]byte
	copy(b[:], s)
	p.buf = append(p.buf, b[:]...)
	return p
}

func (p *Payload) Bytes(b []byte) *Payload {
	p.buf = append(p.buf, b...)
	return p
}

func (p *Payload) Build() []byte {
	return p.buf
}

// Node is a chunk waiting to be encoded.
type Node struct {
	Type     p3d.ChunkType
	Data     []byte
	Children []*Node
}

func New(t p3d.ChunkType, data []byte, children ...*Node) *Node {
	return &Node{Type: t, Data: data, Children: children}
}

// Encode writes the node with correct data and chunk sizes.
func (n *Node) Encode() []byte {
	var children []byte
	for _, c := range n.Children {
		children = append(children, c.Encode()...)
	}
	return EncodeRaw(n.Type, n.Data, children, uint32(p3d.HeaderSize+len(n.Data)), uint32(p3d.HeaderSize+len(n.Data)+len(children)))
}

// EncodeRaw writes a chunk header with caller supplied sizes, used to
// produce inconsistent chunks.
func EncodeRaw(t p3d.ChunkType, data, children []byte, dataSize, chunkSize uint32) []byte {
	out := make([]byte, 0, p3d.HeaderSize+len(data)+len(children))
	out = binary.LittleEndian.AppendUint32(out, uint32(t))
	out = binary.LittleEndian.AppendUint32(out, dataSize)
	out = binary.LittleEndian.AppendUint32(out, chunkSize)
	out = append(out, data...)
	out = append(out, children...)
	return out
}

// File wraps the nodes in a root chunk and encodes it.
func File(children ...*Node) []byte {
	return New(p3d.ChunkTypeFile, nil, children...).Encode()
}

// Texture builds a Texture chunk holding one image of the given format.
func Texture(name string, width, height, format uint32, pixels []byte) *Node {
	return New(p3d.ChunkTypeTexture,
		NewPayload().PString(name).U32(14000).U32(width).U32(height).U32(32).U32(8).U32(1).U32(1).U32(0).U32(0).Build(),
		Image(name, width, height, format, pixels),
	)
}

// Image builds an Image chunk with its ImageData child.
func Image(name string, width, height, format uint32, pixels []byte) *Node {
	return New(p3d.ChunkTypeImage,
		NewPayload().PString(name).U32(14000).U32(width).U32(height).U32(32).U32(0).U32(1).U32(format).Build(),
		New(p3d.ChunkTypeImageData, NewPayload().U32(uint32(len(pixels))).Bytes(pixels).Build()),
	)
}

// Shader builds a Shader chunk whose diffuse texture is texture.
func Shader(name, texture string) *Node {
	return New(p3d.ChunkTypeShader,
		NewPayload().PString(name).U32(0).PString("simple").U32(0).U32(0).U32(0).U32(1).Build(),
		New(p3d.ChunkTypeShaderTextureParam, NewPayload().FourCC("TEX").PString(texture).Build()),
	)
}

// Set builds a Set chunk listing the textures as candidates.
func Set(name string, candidates ...*Node) *Node {
	return New(p3d.ChunkTypeSet,
		NewPayload().PString(name).U32(0).U32(uint32(len(candidates))).Build(),
		candidates...,
	)
}

// PrimitiveGroup builds a triangle list with a position and index
// stream plus any extra stream nodes.
func PrimitiveGroup(shader string, positions [][3]float32, indices []uint32, extra ...*Node) *Node {
	pos := NewPayload().U32(uint32(len(positions)))
	for _, p := range positions {
		pos.Vec3(p[0], p[1], p[2])
	}
	idx := NewPayload().U32(uint32(len(indices)))
	for _, i := range indices {
		idx.U32(i)
	}

	children := []*Node{
		New(p3d.ChunkTypePositionList, pos.Build()),
		New(p3d.ChunkTypeIndexList, idx.Build()),
	}
	children = append(children, extra...)

	return New(p3d.ChunkTypePrimitiveGroup,
		NewPayload().U32(0).PString(shader).U32(0).U32(1).U32(uint32(len(positions))).U32(uint32(len(indices))).U32(0).Build(),
		children...,
	)
}

// Geometry builds a Geometry chunk out of primitive group nodes and
// optional BBox or BSphere nodes.
func Geometry(name string, children ...*Node) *Node {
	groups := 0
	for _, c := range children {
		if c.Type == p3d.ChunkTypePrimitiveGroup {
			groups++
		}
	}
	return New(p3d.ChunkTypeGeometry,
		NewPayload().PString(name).U32(0).U32(uint32(groups)).Build(),
		children...,
	)
}

// Glyphs builds a FontGlyphs chunk. Every glyph uses texture 0, is 8
// units wide and advances by 10.
func Glyphs(codes ...rune) *Node {
	p := NewPayload().U32(uint32(len(codes)))
	for _, code := range codes {
		p.U32(0).Vec2(0, 0).Vec2(1, 1).F32(1).F32(1).F32(8).F32(10).U32(uint32(code))
	}
	return New(p3d.ChunkTypeFontGlyphs, p.Build())
}

// Font builds a TextureFont chunk with the given pages and glyphs.
func Font(name string, pages []*Node, glyphs *Node) *Node {
	children := append([]*Node{}, pages...)
	if glyphs != nil {
		children = append(children, glyphs)
	}
	return New(p3d.ChunkTypeTextureFont,
		NewPayload().PString(name).U32(0).PString(name+"_shader").F32(16).F32(128).F32(20).F32(14).U32(uint32(len(pages))).Build(),
		children...,
	)
}
