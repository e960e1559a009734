package loaders

import (
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

const (
	vec2Size = 8
	vec3Size = 12
)

/**
 * @brief Decodes a Geometry chunk with all its primitive groups. When
 * the file carries no BBox or BSphere they are computed from the
 * positions of every group.
 */
func DecodeGeometry(c *p3d.Chunk) (*resources.Geometry, error) {
	s := c.Stream()
	name, err := s.ReadPString()
	if err != nil {
		return nil, err
	}

	g := &resources.Geometry{Name: name}
	var numGroups uint32
	if err := fields(s, &g.Version, &numGroups); err != nil {
		return nil, err
	}

	for _, child := range c.ChildrenOf(p3d.ChunkTypePrimitiveGroup) {
		pg, err := decodePrimitiveGroup(child, g.Name)
		if err != nil {
			return nil, err
		}
		g.PrimitiveGroups = append(g.PrimitiveGroups, pg)
	}

	var points []math.Vec3
	for _, pg := range g.PrimitiveGroups {
		points = append(points, pg.Positions...)
	}

	if box, ok := c.Child(p3d.ChunkTypeBBox); ok {
		bs := box.Stream()
		if g.Box.Min, err = readVec3(bs); err != nil {
			return nil, err
		}
		if g.Box.Max, err = readVec3(bs); err != nil {
			return nil, err
		}
	} else {
		g.Box = math.ExtentsOf(points)
	}

	if sphere, ok := c.Child(p3d.ChunkTypeBSphere); ok {
		ss := sphere.Stream()
		if g.Sphere.Centre, err = readVec3(ss); err != nil {
			return nil, err
		}
		if g.Sphere.Radius, err = ss.ReadF32(); err != nil {
			return nil, err
		}
	} else {
		g.Sphere = math.BoundingSphere(points)
	}

	return g, nil
}

func decodePrimitiveGroup(c *p3d.Chunk, owner string) (*resources.PrimitiveGroup, error) {
	s := c.Stream()
	pg := &resources.PrimitiveGroup{}

	var err error
	if pg.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if pg.ShaderName, err = s.ReadPString(); err != nil {
		return nil, err
	}
	var primType, hasData, numIndices, numMatrices uint32
	if err := fields(s, &primType, &hasData, &pg.VertexCount, &numIndices, &numMatrices); err != nil {
		return nil, err
	}
	if resources.PrimitiveType(primType) > resources.PrimitiveLineStrip {
		return nil, decodeErrorf("geometry %q has unknown primitive type %d", owner, primType)
	}
	pg.PrimitiveType = resources.PrimitiveType(primType)

	for _, stream := range c.Children {
		if err := decodeVertexStream(pg, stream, owner); err != nil {
			return nil, err
		}
	}

	if pg.Indices == nil {
		return nil, decodeErrorf("geometry %q has a primitive group without an index list", owner)
	}
	// Streams are checked against VertexCount as they are read, so a
	// count with nothing behind it is only caught here.
	if pg.VertexCount != 0 && pg.Positions == nil && pg.Normals == nil && pg.UVs == nil && pg.Colours == nil {
		return nil, decodeErrorf("geometry %q declares %d vertices but carries no vertex stream", owner, pg.VertexCount)
	}
	if len(pg.Indices) != int(numIndices) {
		return nil, decodeErrorf("geometry %q declares %d indices but carries %d", owner, numIndices, len(pg.Indices))
	}
	for _, idx := range pg.Indices {
		if idx >= pg.VertexCount {
			return nil, decodeErrorf("geometry %q has index %d for %d vertices", owner, idx, pg.VertexCount)
		}
	}

	return pg, nil
}

// decodeVertexStream fills one stream of pg. The first stream of each
// kind wins; later UV lists hold extra channels and are ignored.
func decodeVertexStream(pg *resources.PrimitiveGroup, c *p3d.Chunk, owner string) error {
	s := c.Stream()
	var (
		n   int
		err error
	)

	switch c.Type {
	case p3d.ChunkTypePositionList:
		if pg.Positions != nil {
			return nil
		}
		if n, err = readCount(s, vec3Size); err != nil {
			return err
		}
		pg.Positions, err = readVec3List(s, n)
	case p3d.ChunkTypeNormalList:
		if pg.Normals != nil {
			return nil
		}
		if n, err = readCount(s, vec3Size); err != nil {
			return err
		}
		pg.Normals, err = readVec3List(s, n)
	case p3d.ChunkTypeUVList:
		if pg.UVs != nil {
			return nil
		}
		var count, channel uint32
		if err = fields(s, &count, &channel); err != nil {
			return err
		}
		if uint64(count)*vec2Size > uint64(s.Remaining()) {
			return decodeErrorf("geometry %q has a truncated uv list", owner)
		}
		n = int(count)
		pg.UVs, err = readVec2List(s, n)
	case p3d.ChunkTypeColourList:
		if pg.Colours != nil {
			return nil
		}
		if n, err = readCount(s, 4); err != nil {
			return err
		}
		pg.Colours, err = readU32List(s, n)
	case p3d.ChunkTypeIndexList:
		if pg.Indices != nil {
			return nil
		}
		if n, err = readCount(s, 4); err != nil {
			return err
		}
		pg.Indices, err = readU32List(s, n)
		return err
	default:
		return nil
	}
	if err != nil {
		return err
	}

	if n != int(pg.VertexCount) {
		return decodeErrorf("geometry %q: %s holds %d entries for %d vertices", owner, c.Type, n, pg.VertexCount)
	}
	return nil
}
