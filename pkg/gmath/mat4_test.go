package gmath

import "testing"

func TestIdentityMulVec4(t *testing.T) {
	v := Vec4{1, 2, 3, 1}
	got := Identity().MulVec4(v)
	if got != v {
		t.Errorf("identity transform changed vector: %v", got)
	}
}

func TestTranslateMulVec4(t *testing.T) {
	got := Translate(1, -2, 3).MulVec4(Vec4{0, 0, 0, 1})
	want := Vec4{1, -2, 3, 1}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMulAssociatesWithVector(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	v := Vec4{3, 4, 5, 1}

	left := a.Mul(b).MulVec4(v)
	right := a.MulVec4(b.MulVec4(v))
	if left != right {
		t.Errorf("(a*b)*v = %v, a*(b*v) = %v", left, right)
	}
}

func TestDehomogenize(t *testing.T) {
	got := (Vec4{2, 4, 6, 2}).Dehomogenize()
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if v.Length() < 0.9999 || v.Length() > 1.0001 {
		t.Errorf("expected unit length, got %v", v.Length())
	}
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("normalizing zero vector should stay zero, got %v", zero)
	}
}
