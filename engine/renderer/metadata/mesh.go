package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/resources"
)

var white = math.Vec4{X: 1, Y: 1, Z: 1, W: 1}

/**
 * @brief One draw call worth of interleaved vertices.
 */
type MeshGroup struct {
	/** @brief The name of the shader the group is drawn with. */
	ShaderName    string
	PrimitiveType resources.PrimitiveType
	Vertices      []math.Vertex3D
	Indices       []uint32
}

/**
 * @brief Represents a mesh ready to be uploaded.
 */
type Mesh struct {
	ID      uuid.UUID
	Name    string
	Groups  []*MeshGroup
	Extents math.Extents3D
	Sphere  math.Sphere
}

/**
 * @brief Interleaves the streams of every primitive group. Missing
 * normals and uvs are zero, missing colours are white. A group has as many
 * vertices as its longest stream.
 */
func NewMesh(g *resources.Geometry) *Mesh {
	m := &Mesh{
		ID:      core.NewResourceID(),
		Name:    g.Name,
		Groups:  make([]*MeshGroup, 0, len(g.PrimitiveGroups)),
		Extents: g.Box,
		Sphere:  g.Sphere,
	}

	for _, pg := range g.PrimitiveGroups {
		n := max(len(pg.Positions), len(pg.Normals), len(pg.UVs), len(pg.Colours))
		group := &MeshGroup{
			ShaderName:    pg.ShaderName,
			PrimitiveType: pg.PrimitiveType,
			Vertices:      make([]math.Vertex3D, n),
			Indices:       append([]uint32(nil), pg.Indices...),
		}
		for i := range group.Vertices {
			v := &group.Vertices[i]
			v.Colour = white
			if i < len(pg.Positions) {
				v.Position = pg.Positions[i]
			}
			if i < len(pg.Normals) {
				v.Normal = pg.Normals[i]
			}
			if i < len(pg.UVs) {
				v.Texcoord = pg.UVs[i]
			}
			if i < len(pg.Colours) {
				v.Colour = math.ColourFromARGB(pg.Colours[i])
			}
		}
		m.Groups = append(m.Groups, group)
	}

	return m
}

func (m *Mesh) VertexCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Vertices)
	}
	return n
}

func (m *Mesh) IndexCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Indices)
	}
	return n
}
