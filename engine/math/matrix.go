package math

import "fmt"

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return Mat4{
		Data: [4][4]float32{
			{1.0, 0.0, 0.0, 0.0},
			{0.0, 1.0, 0.0, 0.0},
			{0.0, 0.0, 1.0, 0.0},
			{0.0, 0.0, 0.0, 1.0},
		},
	}
}

/** @brief Returns a matrix with every element set to zero. */
func NewMat4Zero() Mat4 {
	return Mat4{}
}

/** @brief Returns a matrix with value on the diagonal and zero elsewhere. */
func NewMat4Diagonal(value float32) Mat4 {
	m := Mat4{}
	for i := 0; i < 4; i++ {
		m.Data[i][i] = value
	}
	return m
}

/** @brief Builds a matrix from four rows. */
func NewMat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{
		Data: [4][4]float32{
			r0.Lanes(),
			r1.Lanes(),
			r2.Lanes(),
			r3.Lanes(),
		},
	}
}

/**
 * @brief Builds a matrix from 16 elements given in row-major order.
 */
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32) Mat4 {
	return Mat4{
		Data: [4][4]float32{
			{m00, m01, m02, m03},
			{m10, m11, m12, m13},
			{m20, m21, m22, m23},
			{m30, m31, m32, m33},
		},
	}
}

/**
 * @brief Returns the result of multiplying matrix_0 and matrix_1.
 *
 * @param matrix_0 The first matrix to be multiplied.
 * @param matrix_1 The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (m Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for i := 0; i < 4; i++ {
		a := m.Data[i]
		for j := 0; j < 4; j++ {
			out.Data[i][j] = a[0]*other.Data[0][j] +
				a[1]*other.Data[1][j] +
				a[2]*other.Data[2][j] +
				a[3]*other.Data[3][j]
		}
	}
	return out
}

/** @brief Componentwise sum. */
func (m Mat4) Add(other Mat4) Mat4 {
	out := m
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Data[i][j] += other.Data[i][j]
		}
	}
	return out
}

/** @brief Componentwise difference. */
func (m Mat4) Sub(other Mat4) Mat4 {
	out := m
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Data[i][j] -= other.Data[i][j]
		}
	}
	return out
}

/** @brief Multiplies every element by scalar. */
func (m Mat4) MulScalar(scalar float32) Mat4 {
	out := m
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Data[i][j] *= scalar
		}
	}
	return out
}

/**
 * @brief Multiplies the matrix by a column vector: each output lane is the
 * dot product of one row with v.
 */
func (m Mat4) MulVec4(v Vec4) Vec4 {
	r := m.Data
	return Vec4{
		X: Vec4DotFloat32(r[0][0], r[0][1], r[0][2], r[0][3], v.X, v.Y, v.Z, v.W),
		Y: Vec4DotFloat32(r[1][0], r[1][1], r[1][2], r[1][3], v.X, v.Y, v.Z, v.W),
		Z: Vec4DotFloat32(r[2][0], r[2][1], r[2][2], r[2][3], v.X, v.Y, v.Z, v.W),
		W: Vec4DotFloat32(r[3][0], r[3][1], r[3][2], r[3][3], v.X, v.Y, v.Z, v.W),
	}
}

/**
 * @brief Transforms a point (w = 1). The result is not divided by w, so
 * use MulVec4 for projective matrices.
 */
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(NewVec4FromVec3(p, 1.0)).ToVec3()
}

/**
 * @brief Transforms a direction (w = 0). Translation does not apply.
 */
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return m.MulVec4(NewVec4FromVec3(v, 0.0)).ToVec3()
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @param matrix The matrix to be transposed.
 * @return A transposed copy of of the provided matrix.
 */
func (m Mat4) Transposed() Mat4 {
	out := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Data[i][j] = m.Data[j][i]
		}
	}
	return out
}

/**
 * @brief Calculates the determinant by cofactor expansion along the first row.
 */
func (m Mat4) Determinant() float32 {
	d := m.Data

	// 2x2 minors of the bottom two rows
	c0 := d[2][2]*d[3][3] - d[2][3]*d[3][2]
	c1 := d[2][1]*d[3][3] - d[2][3]*d[3][1]
	c2 := d[2][1]*d[3][2] - d[2][2]*d[3][1]
	c3 := d[2][0]*d[3][3] - d[2][3]*d[3][0]
	c4 := d[2][0]*d[3][2] - d[2][2]*d[3][0]
	c5 := d[2][0]*d[3][1] - d[2][1]*d[3][0]

	m00 := d[1][1]*c0 - d[1][2]*c1 + d[1][3]*c2
	m01 := d[1][0]*c0 - d[1][2]*c3 + d[1][3]*c4
	m02 := d[1][0]*c1 - d[1][1]*c3 + d[1][3]*c5
	m03 := d[1][0]*c2 - d[1][1]*c4 + d[1][2]*c5

	return d[0][0]*m00 - d[0][1]*m01 + d[0][2]*m02 - d[0][3]*m03
}

/**
 * @brief Creates and returns an inverse of the provided matrix, computed
 * from the adjugate with all sixteen cofactors. A singular matrix
 * (|det| < K_EPSILON) yields the identity matrix.
 *
 * @param matrix The matrix to be inverted.
 * @return A inverted copy of the provided matrix.
 */
func (m Mat4) Inverse() Mat4 {
	a := m.Data

	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if IsNearZero(det) {
		return NewMat4Identity()
	}
	invDet := 1.0 / det

	out := Mat4{}
	out.Data[0][0] = (a[1][1]*c5 - a[1][2]*c4 + a[1][3]*c3) * invDet
	out.Data[0][1] = (-a[0][1]*c5 + a[0][2]*c4 - a[0][3]*c3) * invDet
	out.Data[0][2] = (a[3][1]*s5 - a[3][2]*s4 + a[3][3]*s3) * invDet
	out.Data[0][3] = (-a[2][1]*s5 + a[2][2]*s4 - a[2][3]*s3) * invDet

	out.Data[1][0] = (-a[1][0]*c5 + a[1][2]*c2 - a[1][3]*c1) * invDet
	out.Data[1][1] = (a[0][0]*c5 - a[0][2]*c2 + a[0][3]*c1) * invDet
	out.Data[1][2] = (-a[3][0]*s5 + a[3][2]*s2 - a[3][3]*s1) * invDet
	out.Data[1][3] = (a[2][0]*s5 - a[2][2]*s2 + a[2][3]*s1) * invDet

	out.Data[2][0] = (a[1][0]*c4 - a[1][1]*c2 + a[1][3]*c0) * invDet
	out.Data[2][1] = (-a[0][0]*c4 + a[0][1]*c2 - a[0][3]*c0) * invDet
	out.Data[2][2] = (a[3][0]*s4 - a[3][1]*s2 + a[3][3]*s0) * invDet
	out.Data[2][3] = (-a[2][0]*s4 + a[2][1]*s2 - a[2][3]*s0) * invDet

	out.Data[3][0] = (-a[1][0]*c3 + a[1][1]*c1 - a[1][2]*c0) * invDet
	out.Data[3][1] = (a[0][0]*c3 - a[0][1]*c1 + a[0][2]*c0) * invDet
	out.Data[3][2] = (-a[3][0]*s3 + a[3][1]*s1 - a[3][2]*s0) * invDet
	out.Data[3][3] = (a[2][0]*s3 - a[2][1]*s1 + a[2][2]*s0) * invDet

	return out
}

/** @brief Returns row i as a vector. */
func (m Mat4) Row(i int) Vec4 {
	return NewVec4FromLanes(m.Data[i])
}

/** @brief Returns column j as a vector. */
func (m Mat4) Column(j int) Vec4 {
	return Vec4{m.Data[0][j], m.Data[1][j], m.Data[2][j], m.Data[3][j]}
}

/** @brief Returns the element at (row, col). */
func (m Mat4) At(row, col int) float32 {
	return m.Data[row][col]
}

/** @brief Sets the element at (row, col). */
func (m *Mat4) Set(row, col int, value float32) {
	m.Data[row][col] = value
}

/** @brief Sets row i. */
func (m *Mat4) SetRow(i int, row Vec4) {
	m.Data[i] = row.Lanes()
}

func (m *Mat4) SetZero() {
	*m = Mat4{}
}

func (m *Mat4) SetIdentity() {
	*m = NewMat4Identity()
}

/**
 * @brief Reports whether every element differs from other by at most tolerance.
 */
func (m Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if Abs(m.Data[i][j]-other.Data[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

func (m Mat4) String() string {
	d := m.Data
	return fmt.Sprintf("Mat4[%v %v %v %v]", d[0], d[1], d[2], d[3])
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[0][3] = position.X
	m.Data[1][3] = position.Y
	m.Data[2][3] = position.Z
	return m
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[0][0] = scale.X
	m.Data[1][1] = scale.Y
	m.Data[2][2] = scale.Z
	return m
}

/** @brief Returns a matrix scaling every axis by scale. */
func NewMat4UniformScale(scale float32) Mat4 {
	return NewMat4Scale(NewVec3Scalar(scale))
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationX(angleRadians float32) Mat4 {
	m := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)
	m.Data[1][1] = c
	m.Data[1][2] = -s
	m.Data[2][1] = s
	m.Data[2][2] = c
	return m
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationY(angleRadians float32) Mat4 {
	m := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)
	m.Data[0][0] = c
	m.Data[0][2] = s
	m.Data[2][0] = -s
	m.Data[2][2] = c
	return m
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationZ(angleRadians float32) Mat4 {
	m := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)
	m.Data[0][0] = c
	m.Data[0][1] = -s
	m.Data[1][0] = s
	m.Data[1][1] = c
	return m
}

/**
 * @brief Creates a rotation of angle radians about axis (Rodrigues). The
 * axis is normalized first.
 */
func NewMat4Rotation(axis Vec3, angleRadians float32) Mat4 {
	a := axis.Normalized()
	c := Cos(angleRadians)
	s := Sin(angleRadians)
	t := 1.0 - c

	m := NewMat4Identity()
	m.Data[0][0] = t*a.X*a.X + c
	m.Data[0][1] = t*a.X*a.Y - s*a.Z
	m.Data[0][2] = t*a.X*a.Z + s*a.Y

	m.Data[1][0] = t*a.X*a.Y + s*a.Z
	m.Data[1][1] = t*a.Y*a.Y + c
	m.Data[1][2] = t*a.Y*a.Z - s*a.X

	m.Data[2][0] = t*a.X*a.Z - s*a.Y
	m.Data[2][1] = t*a.Y*a.Z + s*a.X
	m.Data[2][2] = t*a.Z*a.Z + c
	return m
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations,
 * composed as Rx * Ry * Rz.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	rx := NewMat4RotationX(xRadians)
	ry := NewMat4RotationY(yRadians)
	rz := NewMat4RotationZ(zRadians)
	return rx.Mul(ry).Mul(rz)
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. Right-handed: the camera
 * looks down its local -Z.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	f := target.Sub(position).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return NewMat4(
		s.X, s.Y, s.Z, -s.Dot(position),
		u.X, u.Y, u.Z, -u.Dot(position),
		-f.X, -f.Y, -f.Z, f.Dot(position),
		0.0, 0.0, 0.0, 1.0)
}

/**
 * @brief Creates and returns a right-handed perspective matrix mapping
 * depth to [-1, 1]. Typically used to render 3d scenes.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := Tan(fovRadians * 0.5)
	m := Mat4{}
	m.Data[0][0] = 1.0 / (aspectRatio * halfTanFov)
	m.Data[1][1] = 1.0 / halfTanFov
	m.Data[2][2] = -((farClip + nearClip) / (farClip - nearClip))
	m.Data[2][3] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	m.Data[3][2] = -1.0
	return m
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	lr := 1.0 / (right - left)
	bt := 1.0 / (top - bottom)
	nf := 1.0 / (farClip - nearClip)

	m := NewMat4Identity()
	m.Data[0][0] = 2.0 * lr
	m.Data[1][1] = 2.0 * bt
	m.Data[2][2] = -2.0 * nf

	m.Data[0][3] = -(right + left) * lr
	m.Data[1][3] = -(top + bottom) * bt
	m.Data[2][3] = -(farClip + nearClip) * nf
	return m
}

/**
 * @brief Composes translation * Rx * Ry * Rz * scale. euler holds the
 * x, y and z angles in radians.
 */
func NewMat4TRS(translation, euler, scale Vec3) Mat4 {
	t := NewMat4Translation(translation)
	r := NewMat4EulerXYZ(euler.X, euler.Y, euler.Z)
	s := NewMat4Scale(scale)
	return t.Mul(r).Mul(s)
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Forward() Vec3 {
	return NewVec3(-m.Data[2][0], -m.Data[2][1], -m.Data[2][2]).Normalized()
}

/**
 * @brief Returns a backward vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Backward() Vec3 {
	return NewVec3(m.Data[2][0], m.Data[2][1], m.Data[2][2]).Normalized()
}

/**
 * @brief Returns a upward vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Up() Vec3 {
	return NewVec3(m.Data[1][0], m.Data[1][1], m.Data[1][2]).Normalized()
}

/**
 * @brief Returns a downward vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Down() Vec3 {
	return NewVec3(-m.Data[1][0], -m.Data[1][1], -m.Data[1][2]).Normalized()
}

/**
 * @brief Returns a left vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Left() Vec3 {
	return NewVec3(-m.Data[0][0], -m.Data[0][1], -m.Data[0][2]).Normalized()
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 *
 * @param matrix The matrix from which to base the vector.
 * @return A 3-component directional vector.
 */
func (m Mat4) Right() Vec3 {
	return NewVec3(m.Data[0][0], m.Data[0][1], m.Data[0][2]).Normalized()
}
