package resources

import "github.com/spaghettifunk/donut/engine/math"

/** @brief How a primitive group's indices form primitives. */
type PrimitiveType uint32

const (
	PrimitiveTriangleList PrimitiveType = iota
	PrimitiveTriangleStrip
	PrimitiveLineList
	PrimitiveLineStrip
)

/**
 * @brief One draw's worth of geometry. Each vertex stream is optional
 * and is nil when the file does not carry it.
 */
type PrimitiveGroup struct {
	Version       uint32
	ShaderName    string
	PrimitiveType PrimitiveType
	VertexCount   uint32
	Positions     []math.Vec3
	Normals       []math.Vec3
	UVs           []math.Vec2
	Colours       []uint32
	Indices       []uint32
}

// Geometry is a mesh: a list of primitive groups plus bounds. Bounds
// missing from the file are computed from the positions.
type Geometry struct {
	Name            string
	Version         uint32
	PrimitiveGroups []*PrimitiveGroup
	Box             math.Extents3D
	Sphere          math.Sphere
}

func (g *Geometry) AssetName() string  { return g.Name }
func (g *Geometry) Category() Category { return CategoryMesh }
