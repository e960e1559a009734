package loaders

import (
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/p3d"
	"github.com/spaghettifunk/donut/engine/resources"
)

type channelLayout struct {
	// mapped channels carry a component mapping and constant vector
	// ahead of the frame count.
	mapped    bool
	valueSize int
}

var channelLayouts = map[p3d.ChunkType]channelLayout{
	p3d.ChunkTypeFloat1Channel:               {valueSize: 4},
	p3d.ChunkTypeFloat2Channel:               {valueSize: 8},
	p3d.ChunkTypeVector1DOFChannel:           {mapped: true, valueSize: 4},
	p3d.ChunkTypeVector2DOFChannel:           {mapped: true, valueSize: 8},
	p3d.ChunkTypeVector3DOFChannel:           {valueSize: 12},
	p3d.ChunkTypeQuaternionChannel:           {valueSize: 16},
	p3d.ChunkTypeCompressedQuaternionChannel: {valueSize: 8},
}

/**
 * @brief Decodes an Animation chunk together with its groups and
 * channels. An animation without a group list has no groups.
 */
func DecodeAnimation(c *p3d.Chunk) (*resources.Animation, error) {
	s := c.Stream()
	a := &resources.Animation{}

	var err error
	if a.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if a.Name, err = s.ReadPString(); err != nil {
		return nil, err
	}
	if a.Type, err = s.ReadFourCC(); err != nil {
		return nil, err
	}
	if err := floats(s, &a.NumFrames, &a.FrameRate); err != nil {
		return nil, err
	}
	cyclic, err := s.ReadU32()
	if err != nil {
		return nil, err
	}
	a.Cyclic = cyclic != 0

	list, ok := c.Child(p3d.ChunkTypeAnimationGroupList)
	if !ok {
		return a, nil
	}
	for _, child := range list.ChildrenOf(p3d.ChunkTypeAnimationGroup) {
		g, err := decodeAnimationGroup(child)
		if err != nil {
			return nil, err
		}
		a.Groups = append(a.Groups, g)
	}

	return a, nil
}

func decodeAnimationGroup(c *p3d.Chunk) (*resources.AnimationGroup, error) {
	s := c.Stream()
	g := &resources.AnimationGroup{}

	var err error
	if g.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if g.Name, err = s.ReadPString(); err != nil {
		return nil, err
	}
	var numChannels uint32
	if err := fields(s, &g.GroupID, &numChannels); err != nil {
		return nil, err
	}

	for _, child := range c.Children {
		if _, ok := channelLayouts[child.Type]; !ok {
			continue
		}
		ch, err := DecodeAnimationChannel(child)
		if err != nil {
			return nil, err
		}
		g.Channels = append(g.Channels, ch)
	}
	return g, nil
}

/**
 * @brief Decodes any of the keyframe channel chunks. One and two degree
 * of freedom vector channels are expanded to full vectors using their
 * constant vector.
 */
func DecodeAnimationChannel(c *p3d.Chunk) (*resources.AnimationChannel, error) {
	layout, ok := channelLayouts[c.Type]
	if !ok {
		return nil, decodeErrorf("%s is not an animation channel", c.Type)
	}

	s := c.Stream()
	ch := &resources.AnimationChannel{Type: c.Type}

	var err error
	if ch.Version, err = s.ReadU32(); err != nil {
		return nil, err
	}
	if ch.Parameter, err = s.ReadFourCC(); err != nil {
		return nil, err
	}

	var (
		mapping   uint16
		constants math.Vec3
	)
	if layout.mapped {
		if mapping, err = s.ReadU16(); err != nil {
			return nil, err
		}
		if mapping > 2 {
			return nil, decodeErrorf("channel %q has component mapping %d", ch.Parameter, mapping)
		}
		if constants, err = readVec3(s); err != nil {
			return nil, err
		}
	}

	n, err := readCount(s, 2+layout.valueSize)
	if err != nil {
		return nil, err
	}
	ch.Frames = make([]uint16, n)
	for i := range ch.Frames {
		if ch.Frames[i], err = s.ReadU16(); err != nil {
			return nil, err
		}
	}

	switch c.Type {
	case p3d.ChunkTypeFloat1Channel:
		ch.Floats = make([]float32, n)
		for i := range ch.Floats {
			if ch.Floats[i], err = s.ReadF32(); err != nil {
				return nil, err
			}
		}
	case p3d.ChunkTypeFloat2Channel:
		ch.Vec2s, err = readVec2List(s, n)
	case p3d.ChunkTypeVector1DOFChannel:
		ch.Vectors = make([]math.Vec3, n)
		for i := range ch.Vectors {
			v, err := s.ReadF32()
			if err != nil {
				return nil, err
			}
			ch.Vectors[i] = expand1DOF(constants, mapping, v)
		}
	case p3d.ChunkTypeVector2DOFChannel:
		ch.Vectors = make([]math.Vec3, n)
		for i := range ch.Vectors {
			v, err := readVec2(s)
			if err != nil {
				return nil, err
			}
			ch.Vectors[i] = expand2DOF(constants, mapping, v)
		}
	case p3d.ChunkTypeVector3DOFChannel:
		ch.Vectors, err = readVec3List(s, n)
	case p3d.ChunkTypeQuaternionChannel:
		ch.Quaternions = make([]math.Quaternion, n)
		for i := range ch.Quaternions {
			q := &ch.Quaternions[i]
			if err := floats(s, &q.W, &q.X, &q.Y, &q.Z); err != nil {
				return nil, err
			}
		}
	case p3d.ChunkTypeCompressedQuaternionChannel:
		ch.Quaternions = make([]math.Quaternion, n)
		for i := range ch.Quaternions {
			var raw [4]int16
			for j := range raw {
				if raw[j], err = s.ReadI16(); err != nil {
					return nil, err
				}
			}
			ch.Quaternions[i] = math.Quaternion{
				W: math.UnitFromInt16(raw[0]),
				X: math.UnitFromInt16(raw[1]),
				Y: math.UnitFromInt16(raw[2]),
				Z: math.UnitFromInt16(raw[3]),
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func component(v *math.Vec3, i uint16) *float32 {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	default:
		return &v.Z
	}
}

// expand1DOF replaces the mapped component of the constants.
func expand1DOF(constants math.Vec3, mapping uint16, value float32) math.Vec3 {
	v := constants
	*component(&v, mapping) = value
	return v
}

// expand2DOF keeps the mapped component constant and fills the other two
// in order.
func expand2DOF(constants math.Vec3, mapping uint16, value math.Vec2) math.Vec3 {
	v := constants
	free := make([]uint16, 0, 2)
	for i := uint16(0); i < 3; i++ {
		if i != mapping {
			free = append(free, i)
		}
	}
	*component(&v, free[0]) = value.X
	*component(&v, free[1]) = value.Y
	return v
}
