package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLerp(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, -4, 2}

	mid := Lerp(a, b, 0.5)
	want := mgl64.Vec3{5, -2, 1}
	if mid.Sub(want).Len() > 1e-12 {
		t.Fatalf("Lerp midpoint = %v, want %v", mid, want)
	}

	// t is clamped, so overshooting amounts land exactly on the endpoints.
	if got := Lerp(a, b, 2.5); got != b {
		t.Fatalf("Lerp with t>1 = %v, want %v", got, b)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Fatalf("Lerp with t<0 = %v, want %v", got, a)
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(mgl64.Vec3{}); !IsZero(got) {
		t.Fatalf("NormalizeOrZero(zero) = %v, want zero", got)
	}
	if got := NormalizeOrZero(mgl64.Vec3{1e-9, 0, 0}); !IsZero(got) {
		t.Fatalf("NormalizeOrZero(tiny) = %v, want zero", got)
	}

	got := NormalizeOrZero(mgl64.Vec3{3, 0, 4})
	if diff := got.Len() - 1; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("NormalizeOrZero length = %v, want 1", got.Len())
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(mgl64.Vec3{1, 7, -2})
	if got != (mgl64.Vec3{1, 0, -2}) {
		t.Fatalf("Flatten = %v, want (1, 0, -2)", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
		}
	}
}
