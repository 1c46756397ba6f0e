package math

// ------------------------------------------
// AABB
// ------------------------------------------

/** @brief Creates a box from its minimum and maximum corners. */
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

/**
 * @brief Creates the smallest box enclosing every point. An empty slice
 * yields a degenerate box at the origin.
 */
func NewAABBFromPoints(points []Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.ExpandToInclude(p)
	}
	return box
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

/** @brief Half of Size. */
func (b AABB) Extents() Vec3 {
	return b.Size().MulScalar(0.5)
}

/** @brief Reports whether p lies inside or on the boundary of the box. */
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

/** @brief Reports whether the boxes overlap. Touching faces count. */
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

/**
 * @brief Returns the axis-aligned box enclosing the eight transformed
 * corners of b.
 */
func (b AABB) Transformed(m Mat4) AABB {
	corners := [8]Vec3{
		NewVec3(b.Min.X, b.Min.Y, b.Min.Z),
		NewVec3(b.Max.X, b.Min.Y, b.Min.Z),
		NewVec3(b.Min.X, b.Max.Y, b.Min.Z),
		NewVec3(b.Max.X, b.Max.Y, b.Min.Z),
		NewVec3(b.Min.X, b.Min.Y, b.Max.Z),
		NewVec3(b.Max.X, b.Min.Y, b.Max.Z),
		NewVec3(b.Min.X, b.Max.Y, b.Max.Z),
		NewVec3(b.Max.X, b.Max.Y, b.Max.Z),
	}
	for i := range corners {
		corners[i] = m.TransformPoint(corners[i])
	}
	return NewAABBFromPoints(corners[:])
}

/** @brief Returns the smallest box enclosing both boxes. */
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: MinVec3(b.Min, other.Min),
		Max: MaxVec3(b.Max, other.Max),
	}
}

/** @brief Grows the box so that it contains p. */
func (b *AABB) ExpandToInclude(p Vec3) {
	b.Min = MinVec3(b.Min, p)
	b.Max = MaxVec3(b.Max, p)
}

// ------------------------------------------
// Sphere
// ------------------------------------------

func NewSphere(center Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

/** @brief Reports whether p lies inside or on the sphere. */
func (s Sphere) Contains(p Vec3) bool {
	return p.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}

/** @brief Reports whether two spheres overlap. */
func (s Sphere) IntersectsSphere(other Sphere) bool {
	r := s.Radius + other.Radius
	return s.Center.Sub(other.Center).LengthSquared() <= r*r
}

/**
 * @brief Reports whether the sphere overlaps the box, by clamping the
 * center onto the box and measuring the distance to that point.
 */
func (s Sphere) IntersectsAABB(box AABB) bool {
	closest := NewVec3(
		Clamp(s.Center.X, box.Min.X, box.Max.X),
		Clamp(s.Center.Y, box.Min.Y, box.Max.Y),
		Clamp(s.Center.Z, box.Min.Z, box.Max.Z))
	return closest.Sub(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// ------------------------------------------
// Frustum
// ------------------------------------------

/**
 * @brief Extracts the six clip planes of a view-projection matrix
 * (Gribb-Hartmann). Each plane is normalized by the length of its normal
 * unless that length is below K_EPSILON.
 *
 * @param m The combined projection * view matrix.
 * @return A new frustum.
 */
func NewFrustumFromMat4(m Mat4) Frustum {
	r0 := m.Row(0)
	r1 := m.Row(1)
	r2 := m.Row(2)
	r3 := m.Row(3)

	var f Frustum
	f.Planes[FrustumPlaneLeft] = r3.Add(r0)
	f.Planes[FrustumPlaneRight] = r3.Sub(r0)
	f.Planes[FrustumPlaneBottom] = r3.Add(r1)
	f.Planes[FrustumPlaneTop] = r3.Sub(r1)
	f.Planes[FrustumPlaneNear] = r3.Add(r2)
	f.Planes[FrustumPlaneFar] = r3.Sub(r2)

	for i := range f.Planes {
		length := f.Planes[i].ToVec3().Length()
		if length > K_EPSILON {
			f.Planes[i] = f.Planes[i].DivScalar(length)
		}
	}
	return f
}

/** @brief Returns normal·p + offset for the plane at index plane. */
func (f Frustum) SignedDistance(plane int, p Vec3) float32 {
	pl := f.Planes[plane]
	return pl.X*p.X + pl.Y*p.Y + pl.Z*p.Z + pl.W
}

func (f Frustum) ContainsPoint(p Vec3) bool {
	for i := range f.Planes {
		if f.SignedDistance(i, p) < 0.0 {
			return false
		}
	}
	return true
}

/**
 * @brief Conservative sphere test: false only when the sphere lies
 * entirely behind one plane.
 */
func (f Frustum) IntersectsSphere(s Sphere) bool {
	for i := range f.Planes {
		if f.SignedDistance(i, s.Center) < -s.Radius {
			return false
		}
	}
	return true
}

/**
 * @brief Conservative box test using the positive vertex, the corner
 * furthest along each plane normal.
 */
func (f Frustum) IntersectsAABB(box AABB) bool {
	for i, pl := range f.Planes {
		p := box.Min
		if pl.X >= 0.0 {
			p.X = box.Max.X
		}
		if pl.Y >= 0.0 {
			p.Y = box.Max.Y
		}
		if pl.Z >= 0.0 {
			p.Z = box.Max.Z
		}
		if f.SignedDistance(i, p) < 0.0 {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Ray
// ------------------------------------------

/** @brief Creates a ray; the direction is normalized. */
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalized()}
}

/** @brief Returns origin + direction*t. */
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

/**
 * @brief Returns the smallest positive distance along the ray at which it
 * meets the sphere. ok is false on a miss or when the sphere lies behind
 * the origin.
 */
func (r Ray) IntersectSphere(s Sphere) (t float32, ok bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2.0 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return 0.0, false
	}

	sq := Sqrt(discriminant)
	t1 := (-b - sq) / (2.0 * a)
	t2 := (-b + sq) / (2.0 * a)
	if t1 > 0.0 {
		return t1, true
	}
	if t2 > 0.0 {
		return t2, true
	}
	return 0.0, false
}

/**
 * @brief Slab test against the box. Zero direction components divide to
 * IEEE infinities, which the min/max comparisons handle. The returned
 * distance is the entry point, or the exit point when the origin is
 * inside the box.
 */
func (r Ray) IntersectAABB(box AABB) (t float32, ok bool) {
	invDir := NewVec3(1.0/r.Direction.X, 1.0/r.Direction.Y, 1.0/r.Direction.Z)

	t1 := box.Min.Sub(r.Origin).Mul(invDir)
	t2 := box.Max.Sub(r.Origin).Mul(invDir)

	tMin := MinVec3(t1, t2)
	tMax := MaxVec3(t1, t2)

	tNear := Max(Max(tMin.X, tMin.Y), tMin.Z)
	tFar := Min(Min(tMax.X, tMax.Y), tMax.Z)

	if tNear > tFar || tFar < 0.0 {
		return 0.0, false
	}
	if tNear > 0.0 {
		return tNear, true
	}
	return tFar, true
}
