package math

import "golang.org/x/exp/constraints"

// Clamp limits f to [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// UnitFromInt16 maps a fixed point value in [-32767, 32767] to [-1, 1].
func UnitFromInt16(v int16) float32 {
	return Clamp(float32(v)/32767, -1, 1)
}
