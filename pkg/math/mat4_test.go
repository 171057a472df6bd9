package math

import "testing"

func TestIdentity(t *testing.T) {
	m := Identity()
	p := Vec3{X: 3, Y: -2, Z: 7}
	got := m.TransformPoint(p)
	if got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestMulIdentity(t *testing.T) {
	proj := Perspective(1.0, 16.0/9.0, 0.1, 100)
	got := proj.Mul(Identity())
	if got != proj {
		t.Errorf("proj.Mul(Identity()) = %v, want %v", got, proj)
	}
	got = Identity().Mul(proj)
	if got != proj {
		t.Errorf("Identity().Mul(proj) = %v, want %v", got, proj)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{X: 0, Y: -10, Z: 0}
	view := LookAt(eye, Vec3{}, Vec3{Z: 1})

	// The eye itself maps to the view-space origin.
	got := view.TransformPoint(eye)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z) > 1e-5 {
		t.Errorf("view transform of eye = %v, want origin", got)
	}

	// The look target sits on the negative view-space Z axis.
	got = view.TransformPoint(Vec3{})
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+10) > 1e-5 {
		t.Errorf("view transform of center = %v, want (0, 0, -10)", got)
	}
}

func TestPerspective(t *testing.T) {
	proj := Perspective(1.0, 16.0/9.0, 0.1, 100)

	// Points on the near and far planes map to clip z = -1 and +1.
	near := proj.TransformPoint(Vec3{Z: -0.1})
	if abs(near.Z+1) > 1e-5 {
		t.Errorf("near plane z = %f, want -1", near.Z)
	}
	far := proj.TransformPoint(Vec3{Z: -100})
	if abs(far.Z-1) > 1e-4 {
		t.Errorf("far plane z = %f, want 1", far.Z)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
