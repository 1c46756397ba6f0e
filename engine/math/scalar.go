package math

import (
	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float32 = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE float32 = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY float32 = 1e30
	/**
	 * @brief Threshold below which lengths, determinants and sines are
	 * treated as zero by the safe fallbacks (normalize, inverse, slerp).
	 */
	K_EPSILON float32 = 1e-6
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// IsNearZero reports whether |value| < K_EPSILON.
func IsNearZero(value float32) bool {
	return IsNearZeroTolerance(value, K_EPSILON)
}

// IsNearZeroTolerance reports whether |value| < tolerance.
func IsNearZeroTolerance(value, tolerance float32) bool {
	return math32.Abs(value) < tolerance
}

// IsEqual reports whether a and b differ by less than K_EPSILON.
func IsEqual(a, b float32) bool {
	return IsEqualTolerance(a, b, K_EPSILON)
}

// IsEqualTolerance reports whether a and b differ by less than tolerance.
func IsEqualTolerance(a, b, tolerance float32) bool {
	return math32.Abs(a-b) < tolerance
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Smoothstep performs Hermite interpolation between 0 and 1 when x moves
// from edge0 to edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0.0, 1.0)
	return t * t * (3.0 - 2.0*t)
}

/**
 * Thin float32 wrappers so callers never have to round-trip through float64.
 */

func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func InvSqrt(x float32) float32 {
	return 1.0 / math32.Sqrt(x)
}

func Sin(x float32) float32 {
	return math32.Sin(x)
}

func Cos(x float32) float32 {
	return math32.Cos(x)
}

func Tan(x float32) float32 {
	return math32.Tan(x)
}

func Asin(x float32) float32 {
	return math32.Asin(x)
}

func Acos(x float32) float32 {
	return math32.Acos(x)
}

func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}
