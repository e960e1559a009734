package math

import stdmath "math"

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vec3) Length() float32 {
	return float32(stdmath.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{X: min(v.X, other.X), Y: min(v.Y, other.Y), Z: min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{X: max(v.X, other.X), Y: max(v.Y, other.Y), Z: max(v.Z, other.Z)}
}

// ExtentsOf returns the smallest box holding every point. An empty slice
// yields the zero box.
func ExtentsOf(points []Vec3) Extents3D {
	if len(points) == 0 {
		return Extents3D{}
	}
	e := Extents3D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		e.Min = e.Min.Min(p)
		e.Max = e.Max.Max(p)
	}
	return e
}

// BoundingSphere returns a sphere centred on the box of the points that
// reaches the farthest point.
func BoundingSphere(points []Vec3) Sphere {
	e := ExtentsOf(points)
	centre := e.Min.Add(e.Max).MulScalar(0.5)
	var radius float32
	for _, p := range points {
		radius = max(radius, centre.Distance(p))
	}
	return Sphere{Centre: centre, Radius: radius}
}

// ColourFromARGB unpacks a 0xAARRGGBB colour into [0,1] components.
func ColourFromARGB(argb uint32) Vec4 {
	return Vec4{
		X: float32((argb>>16)&0xFF) / 255,
		Y: float32((argb>>8)&0xFF) / 255,
		Z: float32(argb&0xFF) / 255,
		W: float32((argb>>24)&0xFF) / 255,
	}
}
