package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Perspective(1.0, 16.0/9.0, 0.1, 100)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at the origin: the origin maps to a point on the
	// negative view-space Z axis.
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	p := view.TransformPoint(Vec3{})

	if p.X != 0 || p.Y != 0 {
		t.Errorf("origin should stay centered, got %v", p)
	}
	if p.Z != -5 {
		t.Errorf("origin should be 5 units in front of the camera, got %v", p.Z)
	}
}

func TestTransformPointIdentity(t *testing.T) {
	p := Vec3{1, -2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("identity transform changed point: %v -> %v", p, got)
	}
}
