package components

import (
	"github.com/spaghettifunk/anima-math/engine/core"
	"github.com/spaghettifunk/anima-math/engine/math"
)

const (
	DEFAULT_FOV_DEGREES float32 = 45.0
	DEFAULT_NEAR_CLIP   float32 = 0.1
	DEFAULT_FAR_CLIP    float32 = 1000.0
)

// 89 degrees, or equivalent to DegToRad(89.0)
const pitchLimit float32 = 1.55334306

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. Ideally,
 * these are created and managed by the camera registry.
 *
 * Orientation is kept as yaw (about world Y) and pitch (about the camera's
 * X axis). With both at zero the camera looks down -Z.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	yaw      float32
	pitch    float32

	fovRadians  float32
	aspectRatio float32
	nearClip    float32
	farClip     float32

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	isDirty           bool
	isProjectionDirty bool
	viewMatrix        math.Mat4
	projectionMatrix  math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.yaw = 0
	c.pitch = 0
	c.fovRadians = math.DegToRad(DEFAULT_FOV_DEGREES)
	c.aspectRatio = 1.0
	c.nearClip = DEFAULT_NEAR_CLIP
	c.farClip = DEFAULT_FAR_CLIP
	c.viewMatrix = math.NewMat4Identity()
	c.isDirty = true
	c.isProjectionDirty = true
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.isDirty = true
}

// GetEulerRotation returns (pitch, yaw, 0) in radians.
func (c *Camera) GetEulerRotation() math.Vec3 {
	return math.NewVec3(c.pitch, c.yaw, 0)
}

// SetEulerRotation takes (pitch, yaw, roll) in radians. Roll is ignored and
// pitch is clamped.
func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.pitch = math.Clamp(rotation.X, -pitchLimit, pitchLimit)
	c.yaw = rotation.Y
	c.isDirty = true
}

/** @brief Orientation as yaw applied after pitch. */
func (c *Camera) Rotation() math.Quaternion {
	qYaw := math.NewQuatFromAxisAngle(math.NewVec3Up(), c.yaw)
	qPitch := math.NewQuatFromAxisAngle(math.NewVec3Right(), c.pitch)
	return qYaw.Mul(qPitch)
}

/** @brief The camera's placement in the world. */
func (c *Camera) Transform() math.Transform {
	return math.NewTransformFromPositionRotation(c.Position, c.Rotation())
}

/**
 * @brief Turns the camera towards target. Looking straight up or down is
 * limited by the pitch clamp. Does nothing when target equals the position.
 */
func (c *Camera) LookAt(target math.Vec3) {
	direction := target.Sub(c.Position)
	if math.IsNearZero(direction.LengthSquared()) {
		core.LogWarn("camera LookAt target %v equals the camera position, orientation unchanged", target)
		return
	}
	direction.Normalize()
	c.pitch = math.Clamp(math.Asin(math.Clamp(direction.Y, -1.0, 1.0)), -pitchLimit, pitchLimit)
	c.yaw = math.Atan2(-direction.X, -direction.Z)
	c.isDirty = true
}

/**
 * @brief Returns the view matrix, the inverse of the camera's world
 * matrix. Rebuilt only after the camera moved or turned.
 */
func (c *Camera) View() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = c.Transform().InverseMat4()
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) SetFieldOfView(degrees float32) {
	if degrees <= 0 || degrees >= 180 {
		core.LogWarn("camera field of view %.1f out of range (0, 180), keeping %.1f", degrees, math.RadToDeg(c.fovRadians))
		return
	}
	c.fovRadians = math.DegToRad(degrees)
	c.isProjectionDirty = true
}

// FieldOfView returns the vertical field of view in degrees.
func (c *Camera) FieldOfView() float32 {
	return math.RadToDeg(c.fovRadians)
}

func (c *Camera) SetAspectRatio(width, height float32) {
	if width <= 0 || height <= 0 {
		core.LogWarn("camera viewport %vx%v is empty, aspect ratio unchanged", width, height)
		return
	}
	c.aspectRatio = width / height
	c.isProjectionDirty = true
}

func (c *Camera) AspectRatio() float32 {
	return c.aspectRatio
}

func (c *Camera) SetClipPlanes(near, far float32) {
	if near <= 0 || far <= near {
		core.LogWarn("camera clip planes near=%v far=%v rejected", near, far)
		return
	}
	c.nearClip = near
	c.farClip = far
	c.isProjectionDirty = true
}

func (c *Camera) ClipPlanes() (float32, float32) {
	return c.nearClip, c.farClip
}

func (c *Camera) Projection() math.Mat4 {
	if c.isProjectionDirty {
		c.projectionMatrix = math.NewMat4Perspective(c.fovRadians, c.aspectRatio, c.nearClip, c.farClip)
		c.isProjectionDirty = false
	}
	return c.projectionMatrix
}

/** @brief Projection * View, the matrix that takes world space to clip space. */
func (c *Camera) ViewProjection() math.Mat4 {
	projection := c.Projection()
	return projection.Mul(c.View())
}

func (c *Camera) Frustum() math.Frustum {
	return math.NewFrustumFromMat4(c.ViewProjection())
}

/**
 * @brief Builds a world-space ray through the given normalized device
 * coordinates, both in [-1, 1] with +y up. The ray starts on the near plane.
 */
func (c *Camera) ScreenRay(ndcX, ndcY float32) math.Ray {
	inverse := c.ViewProjection().Inverse()

	near := inverse.MulVec4(math.NewVec4(ndcX, ndcY, -1.0, 1.0))
	far := inverse.MulVec4(math.NewVec4(ndcX, ndcY, 1.0, 1.0))

	nearPoint := near.ToVec3().DivScalar(near.W)
	farPoint := far.ToVec3().DivScalar(far.W)
	return math.NewRay(nearPoint, farPoint.Sub(nearPoint))
}

func (c *Camera) Forward() math.Vec3 {
	view := c.View()
	return view.Forward()
}

func (c *Camera) Backward() math.Vec3 {
	view := c.View()
	return view.Backward()
}

func (c *Camera) Left() math.Vec3 {
	view := c.View()
	return view.Left()
}

func (c *Camera) Right() math.Vec3 {
	view := c.View()
	return view.Right()
}

func (c *Camera) Up() math.Vec3 {
	view := c.View()
	return view.Up()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.isDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down(), amount)
}

func (c *Camera) Yaw(amount float32) {
	c.yaw += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.pitch += amount

	// Clamp to avoid Gimbal lock.
	c.pitch = math.Clamp(c.pitch, -pitchLimit, pitchLimit)

	c.isDirty = true
}
