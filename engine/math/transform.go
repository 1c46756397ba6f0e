package math

/**
 * @brief Creates and returns a new transform, using a zero
 * vector for position, identity quaternion for rotation, and
 * a one vector for scale.
 *
 * @return A new transform.
 */
func NewTransform() Transform {
	return Transform{
		Position: NewVec3Zero(),
		Rotation: NewQuatIdentity(),
		Scale:    NewVec3One(),
	}
}

/**
 * @brief Creates a transform from the given position.
 * Uses a zero rotation and a one scale.
 *
 * @param position The position to be used.
 * @return A new transform.
 */
func NewTransformFromPosition(position Vec3) Transform {
	t := NewTransform()
	t.Position = position
	return t
}

/**
 * @brief Creates a transform from the given rotation.
 * Uses a zero position and a one scale.
 *
 * @param rotation The rotation to be used.
 * @return A new transform.
 */
func NewTransformFromRotation(rotation Quaternion) Transform {
	t := NewTransform()
	t.Rotation = rotation
	return t
}

/**
 * @brief Creates a transform from the given position and rotation.
 * Uses a one scale.
 *
 * @param position The position to be used.
 * @param rotation The rotation to be used.
 * @return A new transform.
 */
func NewTransformFromPositionRotation(position Vec3, rotation Quaternion) Transform {
	t := NewTransform()
	t.Position = position
	t.Rotation = rotation
	return t
}

/**
 * @brief Creates a transform from the given position, rotation and scale.
 *
 * @param position The position to be used.
 * @param rotation The rotation to be used.
 * @param scale The scale to be used.
 * @return A new transform.
 */
func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
}

/**
 * @brief Sets the position of the given transform.
 *
 * @param t A pointer to the transform to be updated.
 * @param position The position to be set.
 */
func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
}

/**
 * @brief Applies a translation to the given transform. Not the
 * same as setting.
 *
 * @param t A pointer to the transform to be updated.
 * @param translation The translation to be applied.
 */
func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
}

/**
 * @brief Sets the rotation of the given transform.
 *
 * @param t A pointer to the transform to be updated.
 * @param rotation The rotation to be set.
 */
func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
}

/**
 * @brief Applies a rotation on top of the current one. The new rotation
 * is premultiplied, so it acts in parent space. The result is renormalized.
 *
 * @param t A pointer to the transform to be updated.
 * @param rotation The rotation to be applied.
 */
func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = rotation.Mul(t.Rotation).Normalized()
}

/**
 * @brief Sets the scale of the given transform.
 *
 * @param t A pointer to the transform to be updated.
 * @param scale The scale to be set.
 */
func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
}

/**
 * @brief Multiplies the current scale componentwise by scale.
 */
func (t *Transform) ScaleBy(scale Vec3) {
	t.Scale = t.Scale.Mul(scale)
}

/**
 * @brief Returns the local transformation matrix,
 * Translation * Rotation * Scale.
 */
func (t Transform) ToMat4() Mat4 {
	tr := NewMat4Translation(t.Position)
	r := t.Rotation.ToMat4()
	s := NewMat4Scale(t.Scale)
	return tr.Mul(r).Mul(s)
}

/**
 * @brief Returns parent * local, the world matrix of a transform whose
 * parent world matrix is given.
 */
func (t Transform) WorldMat4(parent Mat4) Mat4 {
	return parent.Mul(t.ToMat4())
}

// TransformPoint maps a local point into the transform's parent space.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Rotation.RotateVector(p.Mul(t.Scale)).Add(t.Position)
}

// TransformVector maps a local direction; position does not apply.
func (t Transform) TransformVector(v Vec3) Vec3 {
	return t.Rotation.RotateVector(v.Mul(t.Scale))
}

// InverseTransformPoint is the inverse of TransformPoint. Scale must be non-zero.
func (t Transform) InverseTransformPoint(p Vec3) Vec3 {
	local := t.Rotation.Inverse().RotateVector(p.Sub(t.Position))
	return local.Div(t.Scale)
}

// InverseTransformVector is the inverse of TransformVector. Scale must be non-zero.
func (t Transform) InverseTransformVector(v Vec3) Vec3 {
	return t.Rotation.Inverse().RotateVector(v).Div(t.Scale)
}

/**
 * @brief Returns the inverse transform. Exact when the scale is uniform;
 * with non-uniform scale, rotation and scale do not commute and the TRS
 * triple only approximates the inverse. Use InverseMat4 for an exact
 * matrix.
 */
func (t Transform) Inverse() Transform {
	invRot := t.Rotation.Inverse()
	invScale := NewVec3(1.0/t.Scale.X, 1.0/t.Scale.Y, 1.0/t.Scale.Z)
	invPos := invRot.RotateVector(t.Position.Negate()).Mul(invScale)
	return Transform{
		Position: invPos,
		Rotation: invRot,
		Scale:    invScale,
	}
}

/**
 * @brief Returns the exact inverse of ToMat4 as S⁻¹ * Rᵀ * T(-P).
 */
func (t Transform) InverseMat4() Mat4 {
	invScale := NewMat4Scale(NewVec3(1.0/t.Scale.X, 1.0/t.Scale.Y, 1.0/t.Scale.Z))
	invRot := t.Rotation.ToMat4().Transposed()
	invTr := NewMat4Translation(t.Position.Negate())
	return invScale.Mul(invRot).Mul(invTr)
}

// Lerp blends position and scale linearly and rotation spherically.
func (t Transform) Lerp(other Transform, f float32) Transform {
	return Transform{
		Position: t.Position.Lerp(other.Position, f),
		Rotation: t.Rotation.Slerp(other.Rotation, f),
		Scale:    t.Scale.Lerp(other.Scale, f),
	}
}
