package math

import (
	"testing"

	"github.com/chewxy/math32"
)

const testTolerance float32 = 1e-4

func TestVec2(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(1, 2)

	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := a.Length(); !IsEqualTolerance(got, 5, testTolerance) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Add(b); got != NewVec2(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := a.Sub(b); got != NewVec2(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := a.Normalized(); !got.Compare(NewVec2(0.6, 0.8), testTolerance) {
		t.Errorf("Normalized = %v, want (0.6, 0.8)", got)
	}
	if got := NewVec2UnitX().Perpendicular(); got != NewVec2UnitY() {
		t.Errorf("Perpendicular = %v, want (0, 1)", got)
	}
	if got := NewVec2Up().Angle(); !IsEqualTolerance(got, K_HALF_PI, testTolerance) {
		t.Errorf("Angle = %v, want pi/2", got)
	}
	if got := ScaleVec2(2, a); got != NewVec2(6, 8) {
		t.Errorf("ScaleVec2 = %v, want (6, 8)", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"sub", b.Sub(a), NewVec3(3, 3, 3)},
		{"mul", a.Mul(b), NewVec3(4, 10, 18)},
		{"div", b.Div(a), NewVec3(4, 2.5, 2)},
		{"mul scalar", a.MulScalar(2), NewVec3(2, 4, 6)},
		{"div scalar", b.DivScalar(2), NewVec3(2, 2.5, 3)},
		{"scalar on the left", ScaleVec3(3, a), NewVec3(3, 6, 9)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(-3, 6, -3)},
		{"lerp", a.Lerp(b, 0.5), NewVec3(2.5, 3.5, 4.5)},
		{"lerp extrapolates", a.Lerp(b, 2), NewVec3(7, 8, 9)},
		{"reflect", NewVec3(1, -1, 0).Reflect(NewVec3Up()), NewVec3(1, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Compare(tt.want, testTolerance) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestVec3AdditionProperties(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 100; i++ {
		a := RandomVec3(r, -100, 100)
		b := RandomVec3(r, -100, 100)
		c := RandomVec3(r, -100, 100)

		if !a.Add(b).Compare(b.Add(a), testTolerance) {
			t.Fatalf("a+b != b+a for %v, %v", a, b)
		}
		if !a.Add(b).Add(c).Compare(a.Add(b.Add(c)), 1e-3) {
			t.Fatalf("(a+b)+c != a+(b+c) for %v, %v, %v", a, b, c)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", NewVec3(0, 0, 5), NewVec3UnitZ()},
		{"diagonal", NewVec3(1, 1, 1), NewVec3Scalar(K_SQRT_ONE_OVER_THREE)},
		{"zero", NewVec3Zero(), NewVec3Zero()},
		{"below epsilon", NewVec3(1e-8, 0, 0), NewVec3Zero()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); !got.Compare(tt.want, testTolerance) {
				t.Errorf("Normalized(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	v := NewVec3(1e-8, 0, 0)
	v.Normalize()
	if v != NewVec3(1e-8, 0, 0) {
		t.Errorf("Normalize changed a near-zero vector: %v", v)
	}

	v = NewVec3(3, 0, 4)
	v.Normalize()
	if !IsEqualTolerance(v.Length(), 1, testTolerance) {
		t.Errorf("Normalize length = %v, want 1", v.Length())
	}
}

func TestVec3Accessors(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	v.Set(1, 9)
	if v.Y != 9 {
		t.Errorf("Set(1, 9) left Y = %v", v.Y)
	}
	if got := v.XZ(); got != NewVec2(1, 3) {
		t.Errorf("XZ = %v", got)
	}
	if got := v.YZ(); got != NewVec2(9, 3) {
		t.Errorf("YZ = %v", got)
	}
	if got := v.ToVec4(1); got != NewVec4(1, 9, 3, 1) {
		t.Errorf("ToVec4 = %v", got)
	}
	if got := NewVec3FromVec2(NewVec2(1, 2), 3); got != NewVec3(1, 2, 3) {
		t.Errorf("NewVec3FromVec2 = %v", got)
	}
}

func TestVec3PaddingIgnoredByEquality(t *testing.T) {
	seen := map[Vec3]int{}
	seen[NewVec3(1, 2, 3)]++
	seen[NewVec3(1, 2, 2).Add(NewVec3(0, 0, 1))]++
	if len(seen) != 1 {
		t.Errorf("equal vectors hashed to %d keys", len(seen))
	}
}

func TestVec3Distance(t *testing.T) {
	if got := NewVec3(1, 2, 3).Distance(NewVec3(4, 6, 3)); !IsEqualTolerance(got, 5, testTolerance) {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec4(t *testing.T) {
	a := NewVec4(1, 2, 3, 4)
	b := NewVec4(5, 6, 7, 8)

	if got := a.Dot(b); got != 70 {
		t.Errorf("Dot = %v, want 70", got)
	}
	if got := a.Add(b); got != NewVec4(6, 8, 10, 12) {
		t.Errorf("Add = %v", got)
	}
	if got := a.XYZ(); got != NewVec3(1, 2, 3) {
		t.Errorf("XYZ = %v", got)
	}
	if got := a.XY(); got != NewVec2(1, 2) {
		t.Errorf("XY = %v", got)
	}
	if got := NewVec4Zero().Normalized(); got != NewVec4Zero() {
		t.Errorf("Normalized zero = %v", got)
	}
	c := a
	c.Set(3, 0)
	if c.W != 0 || a.W != 4 {
		t.Errorf("Set(3, 0) = %v, source %v", c, a)
	}
	if got := ScaleVec4(2, a); got != NewVec4(2, 4, 6, 8) {
		t.Errorf("ScaleVec4 = %v", got)
	}
}

func TestDivideByZeroFollowsIEEE(t *testing.T) {
	v := NewVec3(1, -1, 0).DivScalar(0)
	if !math32.IsInf(v.X, 1) || !math32.IsInf(v.Y, -1) {
		t.Errorf("expected infinities, got %v", v)
	}
	if !math32.IsNaN(v.Z) {
		t.Errorf("expected NaN for 0/0, got %v", v.Z)
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	x := NewVec3(1, 2, 3)
	y := NewVec3(4, 5, 6)
	for i := 0; i < b.N; i++ {
		x = x.Cross(y).Normalized()
	}
	_ = x
}
