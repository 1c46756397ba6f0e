package math

import "golang.org/x/exp/rand"

// The math package keeps no random state of its own: every helper draws from
// a generator owned by the caller.

// NewRandom returns a generator seeded with seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomInRange returns a float in [min, max).
func RandomInRange(r *rand.Rand, min, max float32) float32 {
	return min + r.Float32()*(max-min)
}

// RandomIntInRange returns an integer in [min, max].
func RandomIntInRange(r *rand.Rand, min, max int32) int32 {
	return r.Int31n(max-min+1) + min
}

// RandomVec3 returns a vector with every component in [min, max).
func RandomVec3(r *rand.Rand, min, max float32) Vec3 {
	return NewVec3(
		RandomInRange(r, min, max),
		RandomInRange(r, min, max),
		RandomInRange(r, min, max))
}

// RandomUnitVec3 returns a direction uniformly distributed on the unit sphere.
func RandomUnitVec3(r *rand.Rand) Vec3 {
	z := RandomInRange(r, -1.0, 1.0)
	phi := RandomInRange(r, 0.0, K_PI_2)
	s := Sqrt(1.0 - z*z)
	return NewVec3(s*Cos(phi), s*Sin(phi), z)
}

// RandomQuat returns a uniformly distributed unit quaternion (Shoemake).
func RandomQuat(r *rand.Rand) Quaternion {
	u1 := r.Float32()
	u2 := r.Float32() * K_PI_2
	u3 := r.Float32() * K_PI_2
	a := Sqrt(1.0 - u1)
	b := Sqrt(u1)
	return Quaternion{
		X: a * Sin(u2),
		Y: a * Cos(u2),
		Z: b * Sin(u3),
		W: b * Cos(u3),
	}
}
