package math

import "golang.org/x/image/math/f32"

// Flat float32 layouts handed to renderers and uniform buffers. Every
// vector and primitive flattens in field order.

func (v Vec2) ToF32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func (v Vec3) ToF32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) ToF32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

func (q Quaternion) ToF32() f32.Vec4 {
	return f32.Vec4{q.X, q.Y, q.Z, q.W}
}

// NewVec3FromF32 converts a flat vector back.
func NewVec3FromF32(v f32.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

/**
 * @brief Flattens the matrix row by row, the layout of f32.Mat4.
 */
func (m Mat4) ToF32() f32.Mat4 {
	var out f32.Mat4
	for i := 0; i < 4; i++ {
		copy(out[i*4:i*4+4], m.Data[i][:])
	}
	return out
}

/**
 * @brief Flattens the matrix column by column, the layout expected by
 * column-major shader uniforms.
 */
func (m Mat4) ToColumnMajor() [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m.Data[row][col]
		}
	}
	return out
}

/** @brief Builds a matrix from a row-major f32.Mat4. */
func NewMat4FromF32(m f32.Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		copy(out.Data[i][:], m[i*4:i*4+4])
	}
	return out
}

func (b AABB) ToF32() [6]float32 {
	return [6]float32{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z}
}

func (s Sphere) ToF32() f32.Vec4 {
	return f32.Vec4{s.Center.X, s.Center.Y, s.Center.Z, s.Radius}
}

func (f Frustum) ToF32() [FrustumPlaneCount * 4]float32 {
	var out [FrustumPlaneCount * 4]float32
	for i, p := range f.Planes {
		lanes := p.Lanes()
		copy(out[i*4:i*4+4], lanes[:])
	}
	return out
}

func (r Ray) ToF32() [6]float32 {
	return [6]float32{
		r.Origin.X, r.Origin.Y, r.Origin.Z,
		r.Direction.X, r.Direction.Y, r.Direction.Z,
	}
}
