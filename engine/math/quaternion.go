package math

import "fmt"

// Dot threshold above which Slerp falls back to a normalized Lerp.
const slerpLerpThreshold float32 = 0.9995

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0.0, 0.0, 0.0, 1.0}
}

/** @brief Creates a quaternion from raw components. It is not normalized. */
func NewQuat(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Creates a quaternion from the given axis and angle. The axis is
 * normalized first.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	a := axis.Normalized()
	halfAngle := 0.5 * angle
	s := Sin(halfAngle)
	c := Cos(halfAngle)
	return Quaternion{
		X: s * a.X,
		Y: s * a.Y,
		Z: s * a.Z,
		W: c,
	}
}

/**
 * @brief Creates a quaternion from Euler angles in radians: pitch about X,
 * yaw about Y and roll about Z. X is applied first, then Y, then Z, so the
 * result equals qZ * qY * qX.
 */
func NewQuatFromEuler(pitch, yaw, roll float32) Quaternion {
	cx := Cos(pitch * 0.5)
	sx := Sin(pitch * 0.5)
	cy := Cos(yaw * 0.5)
	sy := Sin(yaw * 0.5)
	cz := Cos(roll * 0.5)
	sz := Sin(roll * 0.5)

	return Quaternion{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

/** @brief NewQuatFromEuler with the angles packed as (pitch, yaw, roll). */
func NewQuatFromEulerVec3(euler Vec3) Quaternion {
	return NewQuatFromEuler(euler.X, euler.Y, euler.Z)
}

/**
 * @brief Extracts the rotation held in the upper 3x3 of m. The matrix must
 * be a pure rotation.
 */
func NewQuatFromMat4(m Mat4) Quaternion {
	d := m.Data
	trace := d[0][0] + d[1][1] + d[2][2]

	var q Quaternion
	switch {
	case trace > 0.0:
		s := 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (d[2][1] - d[1][2]) * s
		q.Y = (d[0][2] - d[2][0]) * s
		q.Z = (d[1][0] - d[0][1]) * s
	case d[0][0] > d[1][1] && d[0][0] > d[2][2]:
		s := 2.0 * Sqrt(1.0+d[0][0]-d[1][1]-d[2][2])
		q.W = (d[2][1] - d[1][2]) / s
		q.X = 0.25 * s
		q.Y = (d[0][1] + d[1][0]) / s
		q.Z = (d[0][2] + d[2][0]) / s
	case d[1][1] > d[2][2]:
		s := 2.0 * Sqrt(1.0+d[1][1]-d[0][0]-d[2][2])
		q.W = (d[0][2] - d[2][0]) / s
		q.X = (d[0][1] + d[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (d[1][2] + d[2][1]) / s
	default:
		s := 2.0 * Sqrt(1.0+d[2][2]-d[0][0]-d[1][1])
		q.W = (d[1][0] - d[0][1]) / s
		q.X = (d[0][2] + d[2][0]) / s
		q.Y = (d[1][2] + d[2][1]) / s
		q.Z = 0.25 * s
	}
	return q.Normalized()
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion(Vec4(q).Add(Vec4(other)))
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion(Vec4(q).Sub(Vec4(other)))
}

func (q Quaternion) MulScalar(scalar float32) Quaternion {
	return Quaternion(Vec4(q).MulScalar(scalar))
}

func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). q.Mul(o)
 * applies o first, then q.
 *
 * @param q_0 The first quaternion.
 * @param q_1 The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param q_0 The first quaternion.
 * @param q_1 The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) LengthSquared() float32 {
	return q.Dot(q)
}

/**
 * @brief Returns the normal of the provided quaternion.
 *
 * @param q The quaternion.
 * @return The normal of the provided quaternion.
 */
func (q Quaternion) Length() float32 {
	return Sqrt(q.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion, or the
 * identity quaternion when its norm is below K_EPSILON.
 *
 * @param q The quaternion to normalize.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalized() Quaternion {
	length := q.Length()
	if IsNearZero(length) {
		return NewQuatIdentity()
	}
	return q.MulScalar(1.0 / length)
}

/** @brief Normalizes q in place. */
func (q *Quaternion) Normalize() {
	*q = q.Normalized()
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @param q The quaternion to obtain a conjugate of.
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{
		X: -q.X,
		Y: -q.Y,
		Z: -q.Z,
		W: q.W,
	}
}

/**
 * @brief Returns the inverse of the provided quaternion, the conjugate
 * divided by the squared norm. A near-zero quaternion yields identity.
 *
 * @param q The quaternion to obtain an inverse of.
 * @return The inverse quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	lenSq := q.LengthSquared()
	if IsNearZero(lenSq) {
		return NewQuatIdentity()
	}
	return q.Conjugate().MulScalar(1.0 / lenSq)
}

/**
 * @brief Rotates v by q, computing q * (v, 0) * q*. q must be unit length.
 */
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	p := Quaternion{v.X, v.Y, v.Z, 0.0}
	r := q.Mul(p).Mul(q.Conjugate())
	return NewVec3(r.X, r.Y, r.Z)
}

/**
 * @brief Returns (pitch, yaw, roll) in radians, the inverse of
 * NewQuatFromEuler. Near the gimbal poles yaw is clamped to ±π/2.
 */
func (q Quaternion) ToEulerAngles() Vec3 {
	sinrCosp := 2.0 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1.0 - 2.0*(q.X*q.X+q.Y*q.Y)
	pitch := Atan2(sinrCosp, cosrCosp)

	var yaw float32
	sinp := 2.0 * (q.W*q.Y - q.Z*q.X)
	if Abs(sinp) >= 1.0 {
		if sinp < 0 {
			yaw = -K_HALF_PI
		} else {
			yaw = K_HALF_PI
		}
	} else {
		yaw = Asin(sinp)
	}

	sinyCosp := 2.0 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1.0 - 2.0*(q.Y*q.Y+q.Z*q.Z)
	roll := Atan2(sinyCosp, cosyCosp)

	return NewVec3(pitch, yaw, roll)
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 *
 * @param q The quaternion to be used.
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return NewMat4(
		1.0-2.0*(yy+zz), 2.0*(xy-wz), 2.0*(xz+wy), 0.0,
		2.0*(xy+wz), 1.0-2.0*(xx+zz), 2.0*(yz-wx), 0.0,
		2.0*(xz-wy), 2.0*(yz+wx), 1.0-2.0*(xx+yy), 0.0,
		0.0, 0.0, 0.0, 1.0)
}

/**
 * @brief Returns the rotation axis and angle in radians. A quaternion with
 * |w| > 1 is normalized once first. When the angle is ~0 the axis is
 * undefined and UnitX is returned.
 */
func (q Quaternion) ToAxisAngle() (Vec3, float32) {
	if Abs(q.W) > 1.0 {
		q = q.Normalized()
		q.W = Clamp(q.W, -1.0, 1.0)
	}

	angle := 2.0 * Acos(q.W)
	s := Sqrt(1.0 - q.W*q.W)
	if s < K_EPSILON {
		return NewVec3UnitX(), angle
	}
	return NewVec3(q.X/s, q.Y/s, q.Z/s), angle
}

/**
 * @brief Blends linearly along the shortest arc and renormalizes.
 */
func (q Quaternion) Lerp(other Quaternion, t float32) Quaternion {
	target := other
	if q.Dot(other) < 0.0 {
		target = other.Negate()
	}
	return Quaternion(Vec4(q).Lerp(Vec4(target), t)).Normalized()
}

/**
 * @brief Calculates a spherical linear interpolation of a given percentage
 * between two quaternions, along the shortest arc. Nearly parallel inputs
 * fall back to a normalized Lerp.
 *
 * @param q_0 The first quaternion.
 * @param q_1 The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	v0 := q
	v1 := other

	dot := v0.Dot(v1)
	if dot < 0.0 {
		v1 = v1.Negate()
		dot = -dot
	}

	if dot > slerpLerpThreshold {
		return v0.Lerp(v1, t)
	}

	theta := Acos(dot)
	sinTheta := Sin(theta)
	if IsNearZero(sinTheta) {
		return v0.Lerp(v1, t)
	}

	s0 := Sin((1.0-t)*theta) / sinTheta
	s1 := Sin(t*theta) / sinTheta

	return v0.MulScalar(s0).Add(v1.MulScalar(s1)).Normalized()
}

/** @brief The local -Z axis after rotation. */
func (q Quaternion) Forward() Vec3 {
	return q.RotateVector(NewVec3Forward())
}

/** @brief The local +X axis after rotation. */
func (q Quaternion) Right() Vec3 {
	return q.RotateVector(NewVec3Right())
}

/** @brief The local +Y axis after rotation. */
func (q Quaternion) Up() Vec3 {
	return q.RotateVector(NewVec3Up())
}

/**
 * @brief Reports whether every component differs from other by at most
 * tolerance. q and -q represent the same rotation but do not compare equal.
 */
func (q Quaternion) Compare(other Quaternion, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("Quat(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
