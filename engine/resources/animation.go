package resources

import (
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/p3d"
)

/**
 * @brief A keyframed track driving one parameter. Frames holds the frame
 * numbers and exactly one of the value slices has the same length:
 * Floats for Float1, Vec2s for Float2, Vectors for every vector channel
 * (1 and 2 DOF channels are expanded to full vectors with their
 * constants) and Quaternions for both quaternion channels.
 */
type AnimationChannel struct {
	Type        p3d.ChunkType
	Version     uint32
	Parameter   string
	Frames      []uint16
	Floats      []float32
	Vec2s       []math.Vec2
	Vectors     []math.Vec3
	Quaternions []math.Quaternion
}

func (c *AnimationChannel) AssetName() string  { return c.Parameter }
func (c *AnimationChannel) Category() Category { return CategoryNone }

// Len returns the number of keyframes.
func (c *AnimationChannel) Len() int {
	return len(c.Frames)
}

type AnimationGroup struct {
	Version  uint32
	Name     string
	GroupID  uint32
	Channels []*AnimationChannel
}

type Animation struct {
	Name      string
	Version   uint32
	Type      string
	NumFrames float32
	FrameRate float32
	Cyclic    bool
	Groups    []*AnimationGroup
}

func (a *Animation) AssetName() string  { return a.Name }
func (a *Animation) Category() Category { return CategoryAnimation }
