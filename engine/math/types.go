package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector.
// The trailing lane only pads the value to 16 bytes so that slices of Vec3
// keep every element on a 128-bit boundary relative to the slice start.
// It is a blank field: it never takes part in == or in map hashing.
type Vec3 struct {
	X, Y, Z float32
	_       float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored row-major: Data[row][col]. Vectors are treated as
 * columns, so (A*B)*v == A*(B*v) and translation lives in column 3.
 */
type Mat4 struct {
	/** @brief The matrix rows, one 4-lane float array each. */
	Data [4][4]float32
}

/**
 * @brief Represents the transform of an object in the world as a
 * translate-rotate-scale triple. A local point is scaled first, then
 * rotated, then translated.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. Assumed to be unit length. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
}

/**
 * @brief An axis-aligned bounding box. Min must be <= Max on every axis;
 * this is the caller's responsibility.
 */
type AABB struct {
	/** @brief The minimum extents of the box. */
	Min Vec3
	/** @brief The maximum extents of the box. */
	Max Vec3
}

/** @brief A sphere described by its center and a non-negative radius. */
type Sphere struct {
	Center Vec3
	Radius float32
}

/** @brief Indices into Frustum.Planes. */
const (
	FrustumPlaneLeft = iota
	FrustumPlaneRight
	FrustumPlaneBottom
	FrustumPlaneTop
	FrustumPlaneNear
	FrustumPlaneFar
	FrustumPlaneCount
)

/**
 * @brief A view frustum described by six planes. Each plane stores its
 * unit normal in xyz and its offset in w; points on the positive side are
 * inside.
 */
type Frustum struct {
	Planes [FrustumPlaneCount]Vec4
}

/** @brief A ray with an origin and a unit-length direction. */
type Ray struct {
	Origin    Vec3
	Direction Vec3
}
