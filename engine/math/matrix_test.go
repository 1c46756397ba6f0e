package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// matchesMgl compares a row-major Mat4 with a column-major mgl32 matrix.
func matchesMgl(m Mat4, ref mgl32.Mat4, tolerance float32) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if Abs(m.Data[row][col]-ref.At(row, col)) > tolerance {
				return false
			}
		}
	}
	return true
}

func toMgl(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func sampleMat4() Mat4 {
	return NewMat4(
		2, 0, 1, 3,
		1, 3, 0, 1,
		0, 1, 4, 2,
		1, 0, 2, 5)
}

func TestMat4Identity(t *testing.T) {
	m := sampleMat4()
	if got := NewMat4Identity().Mul(m); got != m {
		t.Errorf("I*M = %v, want %v", got, m)
	}
	if got := m.Mul(NewMat4Identity()); got != m {
		t.Errorf("M*I = %v, want %v", got, m)
	}
	if got := m.Transposed().Transposed(); got != m {
		t.Errorf("transpose twice = %v, want %v", got, m)
	}
	if got := NewMat4Diagonal(1); got != NewMat4Identity() {
		t.Errorf("Diagonal(1) = %v", got)
	}

	var z Mat4
	z.SetIdentity()
	if z != NewMat4Identity() {
		t.Errorf("SetIdentity = %v", z)
	}
	z.SetZero()
	if z != NewMat4Zero() {
		t.Errorf("SetZero = %v", z)
	}
}

func TestMat4Accessors(t *testing.T) {
	m := NewMat4FromRows(
		NewVec4(1, 2, 3, 4),
		NewVec4(5, 6, 7, 8),
		NewVec4(9, 10, 11, 12),
		NewVec4(13, 14, 15, 16))

	if got := m.Row(1); got != NewVec4(5, 6, 7, 8) {
		t.Errorf("Row(1) = %v", got)
	}
	if got := m.Column(2); got != NewVec4(3, 7, 11, 15) {
		t.Errorf("Column(2) = %v", got)
	}
	if got := m.At(3, 0); got != 13 {
		t.Errorf("At(3, 0) = %v", got)
	}
	m.Set(3, 0, -1)
	if got := m.Data[3][0]; got != -1 {
		t.Errorf("Set(3, 0) stored %v", got)
	}
	if got := m.Add(m).Sub(m); got != m {
		t.Errorf("M+M-M = %v", got)
	}
	if got := m.MulScalar(2).At(0, 1); got != 4 {
		t.Errorf("MulScalar(2).At(0, 1) = %v", got)
	}
}

func TestMat4Factories(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translation", NewMat4Translation(NewVec3(5, 10, 15)), NewVec3(1, 2, 3), NewVec3(6, 12, 18)},
		{"scale", NewMat4Scale(NewVec3(2, 3, 4)), NewVec3(1, 2, 3), NewVec3(2, 6, 12)},
		{"uniform scale", NewMat4UniformScale(2), NewVec3(1, 2, 3), NewVec3(2, 4, 6)},
		{"rotation x", NewMat4RotationX(K_HALF_PI), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"rotation y", NewMat4RotationY(K_HALF_PI), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"rotation z", NewMat4RotationZ(K_HALF_PI), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"axis angle", NewMat4Rotation(NewVec3(0, 2, 0), K_HALF_PI), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{
			"translation after scale",
			NewMat4Translation(NewVec3(5, 10, 15)).Mul(NewMat4Scale(NewVec3(2, 3, 4))),
			NewVec3(1, 2, 3),
			NewVec3(7, 16, 27),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !got.Compare(tt.want, testTolerance) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMat4TransformVectorIgnoresTranslation(t *testing.T) {
	m := NewMat4Translation(NewVec3(5, 10, 15))
	if got := m.TransformVector(NewVec3(1, 2, 3)); got != NewVec3(1, 2, 3) {
		t.Errorf("TransformVector = %v, want (1, 2, 3)", got)
	}
}

func TestMat4MulAssociatesWithVectors(t *testing.T) {
	r := NewRandom(11)
	for i := 0; i < 50; i++ {
		a := NewMat4TRS(RandomVec3(r, -5, 5), RandomVec3(r, -K_PI, K_PI), RandomVec3(r, 0.5, 2))
		b := NewMat4TRS(RandomVec3(r, -5, 5), RandomVec3(r, -K_PI, K_PI), RandomVec3(r, 0.5, 2))
		v := RandomVec3(r, -5, 5).ToVec4(1)

		lhs := a.Mul(b).MulVec4(v)
		rhs := a.MulVec4(b.MulVec4(v))
		if !lhs.Compare(rhs, 1e-3) {
			t.Fatalf("(A*B)*v = %v, A*(B*v) = %v", lhs, rhs)
		}
	}
}

func TestMat4EulerAndTRS(t *testing.T) {
	euler := NewVec3(0.3, -0.7, 1.1)
	want := NewMat4RotationX(euler.X).Mul(NewMat4RotationY(euler.Y)).Mul(NewMat4RotationZ(euler.Z))
	if got := NewMat4EulerXYZ(euler.X, euler.Y, euler.Z); !got.Compare(want, testTolerance) {
		t.Errorf("EulerXYZ = %v, want %v", got, want)
	}

	trs := NewMat4TRS(NewVec3(1, 2, 3), euler, NewVec3(2, 2, 2))
	want = NewMat4Translation(NewVec3(1, 2, 3)).Mul(want).Mul(NewMat4UniformScale(2))
	if !trs.Compare(want, testTolerance) {
		t.Errorf("TRS = %v, want %v", trs, want)
	}
}

func TestMat4Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want float32
	}{
		{"identity", NewMat4Identity(), 1},
		{"scale", NewMat4Scale(NewVec3(2, 3, 4)), 24},
		{"zero", NewMat4Zero(), 0},
		{"rotation", NewMat4Rotation(NewVec3(1, 1, 0), 0.8), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); !IsEqualTolerance(got, tt.want, testTolerance) {
				t.Errorf("Determinant = %v, want %v", got, tt.want)
			}
		})
	}

	m := sampleMat4()
	ref := mgl32.Mat4(m.ToColumnMajor())
	if got, want := m.Determinant(), ref.Det(); !IsEqualTolerance(got, want, 1e-3) {
		t.Errorf("Determinant = %v, mgl32 = %v", got, want)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := sampleMat4()
	inv := m.Inverse()

	if got := m.Mul(inv); !got.Compare(NewMat4Identity(), 1e-4) {
		t.Errorf("M*M^-1 = %v", got)
	}
	if got := inv.Mul(m); !got.Compare(NewMat4Identity(), 1e-4) {
		t.Errorf("M^-1*M = %v", got)
	}
	ref := mgl32.Mat4(m.ToColumnMajor()).Inv()
	if !matchesMgl(inv, ref, 1e-4) {
		t.Errorf("Inverse = %v, mgl32 = %v", inv, ref)
	}

	trs := NewMat4TRS(NewVec3(3, -2, 7), NewVec3(0.4, 1.2, -0.5), NewVec3(1, 2, 0.5))
	p := NewVec3(1, 2, 3)
	if got := trs.Inverse().TransformPoint(trs.TransformPoint(p)); !got.Compare(p, 1e-3) {
		t.Errorf("TRS round trip = %v, want %v", got, p)
	}
}

func TestMat4InverseOfSingularIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"zero", NewMat4Zero()},
		{"flattened", NewMat4Scale(NewVec3(1, 0, 1))},
		{"duplicate rows", NewMat4FromRows(NewVec4(1, 2, 3, 4), NewVec4(1, 2, 3, 4), NewVec4(0, 0, 1, 0), NewVec4(0, 0, 0, 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Inverse(); got != NewMat4Identity() {
				t.Errorf("Inverse = %v, want identity", got)
			}
		})
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := DegToRad(60)
	m := NewMat4Perspective(fov, 16.0/9.0, 0.1, 100)
	ref := mgl32.Perspective(fov, 16.0/9.0, 0.1, 100)
	if !matchesMgl(m, ref, 1e-4) {
		t.Errorf("Perspective = %v, mgl32 = %v", m, ref)
	}

	// A point on the near plane maps to depth -1, one on the far plane to +1.
	near := m.MulVec4(NewVec4(0, 0, -0.1, 1))
	far := m.MulVec4(NewVec4(0, 0, -100, 1))
	if got := near.Z / near.W; !IsEqualTolerance(got, -1, 1e-3) {
		t.Errorf("near depth = %v, want -1", got)
	}
	if got := far.Z / far.W; !IsEqualTolerance(got, 1, 1e-3) {
		t.Errorf("far depth = %v, want 1", got)
	}
}

func TestMat4Orthographic(t *testing.T) {
	m := NewMat4Orthographic(-10, 20, -5, 15, 0.5, 50)
	ref := mgl32.Ortho(-10, 20, -5, 15, 0.5, 50)
	if !matchesMgl(m, ref, 1e-5) {
		t.Errorf("Orthographic = %v, mgl32 = %v", m, ref)
	}
	if got := m.TransformPoint(NewVec3(20, 15, -50)); !got.Compare(NewVec3(1, 1, 1), 1e-5) {
		t.Errorf("far corner = %v, want (1, 1, 1)", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3Zero()
	up := NewVec3Up()

	view := NewMat4LookAt(eye, target, up)
	ref := mgl32.LookAtV(toMgl(eye), toMgl(target), toMgl(up))
	if !matchesMgl(view, ref, 1e-5) {
		t.Errorf("LookAt = %v, mgl32 = %v", view, ref)
	}

	if got := view.TransformPoint(target); got.Z >= 0 {
		t.Errorf("target in view space = %v, want z < 0", got)
	}
	if got := view.Forward(); !got.Compare(NewVec3(0, 0, -1), testTolerance) {
		t.Errorf("Forward = %v", got)
	}
	if got := view.Right(); !got.Compare(NewVec3UnitX(), testTolerance) {
		t.Errorf("Right = %v", got)
	}
	if got := view.Up(); !got.Compare(NewVec3UnitY(), testTolerance) {
		t.Errorf("Up = %v", got)
	}
	if got := view.Backward().Add(view.Forward()); !got.Compare(NewVec3Zero(), testTolerance) {
		t.Errorf("Backward != -Forward")
	}
	if got := view.Left().Add(view.Right()); !got.Compare(NewVec3Zero(), testTolerance) {
		t.Errorf("Left != -Right")
	}
	if got := view.Down().Add(view.Up()); !got.Compare(NewVec3Zero(), testTolerance) {
		t.Errorf("Down != -Up")
	}

	eye = NewVec3(3, 4, -2)
	target = NewVec3(-1, 0.5, 6)
	view = NewMat4LookAt(eye, target, up)
	ref = mgl32.LookAtV(toMgl(eye), toMgl(target), toMgl(up))
	if !matchesMgl(view, ref, 1e-4) {
		t.Errorf("LookAt = %v, mgl32 = %v", view, ref)
	}
}

func TestMat4RotationMatchesMgl(t *testing.T) {
	r := NewRandom(3)
	for i := 0; i < 20; i++ {
		axis := RandomUnitVec3(r)
		angle := RandomInRange(r, -K_PI, K_PI)
		m := NewMat4Rotation(axis, angle)
		ref := mgl32.HomogRotate3D(angle, toMgl(axis))
		if !matchesMgl(m, ref, 1e-4) {
			t.Fatalf("Rotation(%v, %v) = %v, mgl32 = %v", axis, angle, m, ref)
		}
	}
}

func TestMat4Layouts(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))

	flat := m.ToF32()
	if flat[3] != 1 || flat[7] != 2 || flat[11] != 3 {
		t.Errorf("ToF32 = %v, want translation in elements 3, 7, 11", flat)
	}
	if got := NewMat4FromF32(flat); got != m {
		t.Errorf("NewMat4FromF32 = %v", got)
	}

	cm := m.ToColumnMajor()
	ref := mgl32.Translate3D(1, 2, 3)
	if cm != [16]float32(ref) {
		t.Errorf("ToColumnMajor = %v, mgl32 = %v", cm, ref)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	a := NewMat4TRS(NewVec3(1, 2, 3), NewVec3(0.1, 0.2, 0.3), NewVec3One())
	m := NewMat4Identity()
	for i := 0; i < b.N; i++ {
		m = m.Mul(a)
	}
	_ = m
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := sampleMat4()
	for i := 0; i < b.N; i++ {
		m = m.Inverse()
	}
	_ = m
}
