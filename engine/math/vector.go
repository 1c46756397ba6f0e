package math

import "fmt"

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with both components set to scalar.
 */
func NewVec2Scalar(scalar float32) Vec2 {
	return Vec2{X: scalar, Y: scalar}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns the 2-component unit vector along x (1, 0).
 */
func NewVec2UnitX() Vec2 {
	return Vec2{1.0, 0.0}
}

/**
 * @brief Creates and returns the 2-component unit vector along y (0, 1).
 */
func NewVec2UnitY() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Multiplies every component of v by scalar.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other componentwise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

/**
 * Divides every component of v by scalar. A zero scalar yields IEEE Inf/NaN.
 */
func (v Vec2) DivScalar(scalar float32) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

/**
 * Returns v with every component negated.
 */
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

/**
 * Returns the component at index i (0 = x, 1 = y).
 */
func (v Vec2) At(i int) float32 {
	return [2]float32{v.X, v.Y}[i]
}

/**
 * Sets the component at index i (0 = x, 1 = y).
 */
func (v *Vec2) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("math: Vec2 index %d out of range", i))
	}
}

/**
 * Returns the dot product of v and other.
 */
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * Normalizes the vector in place to a unit vector. A vector shorter than
 * K_EPSILON is left untouched.
 */
func (v *Vec2) Normalize() {
	length := v.Length()
	if IsNearZero(length) {
		return
	}
	v.X /= length
	v.Y /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector, or the zero
 * vector when its length is below K_EPSILON.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if IsNearZero(length) {
		return NewVec2Zero()
	}
	return v.DivScalar(length)
}

/**
 * Linearly interpolates from v towards other. t is not clamped.
 */
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return v.Add(other.Sub(v).MulScalar(t))
}

/**
 * Returns v rotated by 90 degrees counter-clockwise.
 */
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

/**
 * Returns the angle of v measured from the positive x axis, in radians.
 */
func (v Vec2) Angle() float32 {
	return Atan2(v.Y, v.X)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The other vector.
 * @return The distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

// ScaleVec2 returns scalar * v.
func ScaleVec2(scalar float32, v Vec2) Vec2 {
	return v.MulScalar(scalar)
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to scalar.
 */
func NewVec3Scalar(scalar float32) Vec3 {
	return NewVec3(scalar, scalar, scalar)
}

/**
 * @brief Creates a 3-component vector from a 2-component one and a z value.
 */
func NewVec3FromVec2(xy Vec2, z float32) Vec3 {
	return NewVec3(xy.X, xy.Y, z)
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return NewVec3(vector.X, vector.Y, vector.Z)
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param vector The 3-component vector.
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return NewVec3(0.0, 0.0, 0.0)
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return NewVec3(1.0, 1.0, 1.0)
}

/** @brief The unit vector along x (1, 0, 0). */
func NewVec3UnitX() Vec3 {
	return NewVec3(1.0, 0.0, 0.0)
}

/** @brief The unit vector along y (0, 1, 0). */
func NewVec3UnitY() Vec3 {
	return NewVec3(0.0, 1.0, 0.0)
}

/** @brief The unit vector along z (0, 0, 1). */
func NewVec3UnitZ() Vec3 {
	return NewVec3(0.0, 0.0, 1.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return NewVec3(0.0, 1.0, 0.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return NewVec3(0.0, -1.0, 0.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return NewVec3(-1.0, 0.0, 0.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return NewVec3(1.0, 0.0, 0.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return NewVec3(0.0, 0.0, -1.0)
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return NewVec3(0.0, 0.0, 1.0)
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return NewVec3(
		v.X+other.X,
		v.Y+other.Y,
		v.Z+other.Z)
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return NewVec3(
		v.X-other.X,
		v.Y-other.Y,
		v.Z-other.Z)
}

/**
 * @brief Multiplies v by other and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return NewVec3(
		v.X*other.X,
		v.Y*other.Y,
		v.Z*other.Z)
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return NewVec3(
		v.X*scalar,
		v.Y*scalar,
		v.Z*scalar)
}

/**
 * @brief Divides v by other and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return NewVec3(
		v.X/other.X,
		v.Y/other.Y,
		v.Z/other.Z)
}

/**
 * @brief Divides all elements of the vector by scalar. A zero scalar
 * yields IEEE Inf/NaN components.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) DivScalar(scalar float32) Vec3 {
	return NewVec3(
		v.X/scalar,
		v.Y/scalar,
		v.Z/scalar)
}

/**
 * @brief Returns the vector with every component negated.
 */
func (v Vec3) Negate() Vec3 {
	return NewVec3(-v.X, -v.Y, -v.Z)
}

/**
 * @brief Returns the component at index i (0 = x, 1 = y, 2 = z).
 */
func (v Vec3) At(i int) float32 {
	return [3]float32{v.X, v.Y, v.Z}[i]
}

/**
 * @brief Sets the component at index i (0 = x, 1 = y, 2 = z).
 */
func (v *Vec3) Set(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("math: Vec3 index %d out of range", i))
	}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @param vector The vector to retrieve the squared length of.
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector. A vector
 * shorter than K_EPSILON is left untouched.
 *
 * @param vector A pointer to the vector to be normalized.
 */
func (v *Vec3) Normalize() {
	length := v.Length()
	if IsNearZero(length) {
		return
	}
	*v = v.DivScalar(length)
}

/**
 * @brief Returns a normalized copy of the supplied vector. When the length
 * is below K_EPSILON the zero vector is returned instead of dividing.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if IsNearZero(length) {
		return NewVec3Zero()
	}
	return v.DivScalar(length)
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The other vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The other vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return NewVec3(
		v.Y*other.Z-v.Z*other.Y,
		v.Z*other.X-v.X*other.Z,
		v.X*other.Y-v.Y*other.X)
}

/**
 * @brief Linearly interpolates from v towards other. t is not clamped, so
 * values outside [0, 1] extrapolate.
 */
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Add(other.Sub(v).MulScalar(t))
}

/**
 * @brief Reflects v about the plane with the given unit normal.
 */
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Sub(normal.MulScalar(2.0 * v.Dot(normal)))
}

/** @brief Returns the (x, y) swizzle. */
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

/** @brief Returns the (x, z) swizzle. */
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

/** @brief Returns the (y, z) swizzle. */
func (v Vec3) YZ() Vec2 {
	return Vec2{v.Y, v.Z}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The other vector.
 * @return The distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ScaleVec3 returns scalar * v.
func ScaleVec3(scalar float32, v Vec3) Vec3 {
	return v.MulScalar(scalar)
}

// MinVec3 returns the componentwise minimum of a and b.
func MinVec3(a, b Vec3) Vec3 {
	return NewVec3(Min(a.X, b.X), Min(a.Y, b.Y), Min(a.Z, b.Z))
}

// MaxVec3 returns the componentwise maximum of a and b.
func MaxVec3(a, b Vec3) Vec3 {
	return NewVec3(Max(a.X, b.X), Max(a.Y, b.Y), Max(a.Z, b.Z))
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to scalar.
 */
func NewVec4Scalar(scalar float32) Vec4 {
	return Vec4{scalar, scalar, scalar, scalar}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param vector The 3-component vector.
 * @param w The w component.
 * @return A new vec4
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Builds a 4-component vector from two 2-component halves.
 */
func NewVec4FromVec2(xy, zw Vec2) Vec4 {
	return Vec4{xy.X, xy.Y, zw.X, zw.Y}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func (v Vec4) ToVec3() Vec3 {
	return NewVec3(v.X, v.Y, v.Z)
}

/** @brief Alias of ToVec3, the (x, y, z) swizzle. */
func (v Vec4) XYZ() Vec3 {
	return v.ToVec3()
}

/** @brief Returns the (x, y) swizzle. */
func (v Vec4) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

/**
 * @brief Returns the four components as a lane array.
 */
func (v Vec4) Lanes() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

/**
 * @brief Builds a vector from a lane array.
 */
func NewVec4FromLanes(l [4]float32) Vec4 {
	return Vec4{l[0], l[1], l[2], l[3]}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

/**
 * @brief Multiplies v by other and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

/**
 * @brief Multiplies all elements of the vector by scalar.
 */
func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}

/**
 * @brief Divides v by other and returns a copy of the result.
 *
 * @param other The other vector.
 * @return The resulting vector.
 */
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

/**
 * @brief Divides all elements of the vector by scalar.
 */
func (v Vec4) DivScalar(scalar float32) Vec4 {
	return Vec4{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
		W: v.W / scalar,
	}
}

/**
 * @brief Returns the vector with every component negated.
 */
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

/**
 * @brief Returns the component at index i (0 = x … 3 = w).
 */
func (v Vec4) At(i int) float32 {
	return v.Lanes()[i]
}

/**
 * @brief Sets the component at index i (0 = x … 3 = w).
 */
func (v *Vec4) Set(i int, value float32) {
	l := v.Lanes()
	l[i] = value
	*v = NewVec4FromLanes(l)
}

/**
 * @brief Returns the dot product of the two vectors.
 */
func (v Vec4) Dot(other Vec4) float32 {
	return Vec4DotFloat32(v.X, v.Y, v.Z, v.W, other.X, other.Y, other.Z, other.W)
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @param vector The vector to retrieve the squared length of.
 * @return The squared length.
 */
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector. A vector
 * shorter than K_EPSILON is left untouched.
 *
 * @param vector A pointer to the vector to be normalized.
 */
func (v *Vec4) Normalize() {
	length := v.Length()
	if IsNearZero(length) {
		return
	}
	*v = v.DivScalar(length)
}

/**
 * @brief Returns a normalized copy of the supplied vector, or the zero
 * vector when its length is below K_EPSILON.
 *
 * @param vector The vector to be normalized.
 * @return A normalized copy of the supplied vector
 */
func (v Vec4) Normalized() Vec4 {
	length := v.Length()
	if IsNearZero(length) {
		return NewVec4Zero()
	}
	return v.DivScalar(length)
}

/**
 * @brief Linearly interpolates from v towards other. t is not clamped.
 */
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return v.Add(other.Sub(v).MulScalar(t))
}

/**
 * @brief Calculates the dot product using the elements of vec4s provided in split-out format.
 *
 * @param a0 The first element of the a vector.
 * @param a1 The second element of the a vector.
 * @param a2 The third element of the a vector.
 * @param a3 The fourth element of the a vector.
 * @param b0 The first element of the b vector.
 * @param b1 The second element of the b vector.
 * @param b2 The third element of the b vector.
 * @param b3 The fourth element of the b vector.
 * @return The dot product of vectors and b.
 */
func Vec4DotFloat32(a0, a1, a2, a3, b0, b1, b2, b3 float32) float32 {
	p := a0*b0 + a1*b1 + a2*b2 + a3*b3
	return p
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	if Abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4) String() string {
	return fmt.Sprintf("Vec4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// ScaleVec4 returns scalar * v.
func ScaleVec4(scalar float32, v Vec4) Vec4 {
	return v.MulScalar(scalar)
}
