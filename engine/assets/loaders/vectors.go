package loaders

import (
	"github.com/spaghettifunk/donut/engine/math"
	"github.com/spaghettifunk/donut/engine/p3d"
)

func readVec2(s *p3d.Stream) (math.Vec2, error) {
	var v math.Vec2
	err := floats(s, &v.X, &v.Y)
	return v, err
}

func readVec3(s *p3d.Stream) (math.Vec3, error) {
	var v math.Vec3
	err := floats(s, &v.X, &v.Y, &v.Z)
	return v, err
}

func readVec2List(s *p3d.Stream, n int) ([]math.Vec2, error) {
	out := make([]math.Vec2, n)
	for i := range out {
		v, err := readVec2(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readVec3List(s *p3d.Stream, n int) ([]math.Vec3, error) {
	out := make([]math.Vec3, n)
	for i := range out {
		v, err := readVec3(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readU32List(s *p3d.Stream, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := s.ReadU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
