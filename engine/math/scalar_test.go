package math

import "testing"

func TestScalarHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"deg to rad", DegToRad(180), K_PI},
		{"rad to deg", RadToDeg(K_HALF_PI), 90},
		{"clamp low", Clamp[float32](-2, -1, 1), -1},
		{"clamp high", Clamp[float32](5, -1, 1), 1},
		{"clamp inside", Clamp[float32](0.25, -1, 1), 0.25},
		{"lerp", Lerp(2, 4, 0.25), 2.5},
		{"lerp unclamped", Lerp(2, 4, 2), 6},
		{"smoothstep below", Smoothstep(0, 1, -1), 0},
		{"smoothstep mid", Smoothstep(0, 1, 0.5), 0.5},
		{"smoothstep above", Smoothstep(0, 1, 2), 1},
		{"abs", Abs[float32](-3), 3},
		{"min", Min[float32](2, -1), -1},
		{"max", Max[float32](2, -1), 2},
		{"sqrt", Sqrt(16), 4},
		{"inv sqrt", InvSqrt(4), 0.5},
		{"atan2", Atan2(1, 1), K_QUARTER_PI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsEqualTolerance(tt.got, tt.want, testTolerance) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNearZero(t *testing.T) {
	if !IsNearZero(1e-7) {
		t.Error("1e-7 should be near zero")
	}
	if IsNearZero(1e-5) {
		t.Error("1e-5 should not be near zero")
	}
	if !IsEqual(1, 1+1e-7) {
		t.Error("1 and 1+1e-7 should compare equal")
	}
	if IsEqual(1, 1.001) {
		t.Error("1 and 1.001 should differ")
	}
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 1000; i++ {
		f := RandomInRange(r, -2, 3)
		if f < -2 || f >= 3 {
			t.Fatalf("RandomInRange = %v, outside [-2, 3)", f)
		}
		n := RandomIntInRange(r, 5, 7)
		if n < 5 || n > 7 {
			t.Fatalf("RandomIntInRange = %v, outside [5, 7]", n)
		}
		if l := RandomUnitVec3(r).Length(); !IsEqualTolerance(l, 1, testTolerance) {
			t.Fatalf("|RandomUnitVec3| = %v", l)
		}
		if l := RandomQuat(r).Length(); !IsEqualTolerance(l, 1, testTolerance) {
			t.Fatalf("|RandomQuat| = %v", l)
		}
	}

	a := NewRandom(42)
	b := NewRandom(42)
	if RandomVec3(a, 0, 1) != RandomVec3(b, 0, 1) {
		t.Error("equal seeds should produce equal sequences")
	}
}
