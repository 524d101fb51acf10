package spatial

import (
	"testing"

	"github.com/hollowgrove/spatial/scalar"
)

func transform3DNear(a, b Transform3D, tolerance Float) bool {
	return basisNear(a.Basis, b.Basis, tolerance) && vec3Near(a.Origin, b.Origin, tolerance)
}

func TestTransform3DInverse(t *testing.T) {

	basis := NewBasisFromEuler(NewVector3(0.5, -1.2, 0.3), EulerOrderYXZ)
	trans := NewTransform3D(basis, NewVector3(3, -4, 5))

	// Inverse requires an orthonormal basis.
	inverted := trans.Inverse()
	if !transform3DNear(trans.Mul(inverted), Transform3DIdentity, 0.0001) {
		t.Fatal("transform * transform.Inverse() should be identity")
	}

	v := NewVector3(5, 2, -1)
	if !vec3Near(inverted.Xform(trans.Xform(v)), v, 0.0001) {
		t.Fatal("the inverse should undo the transform")
	}

}

func TestTransform3DAffineInverse(t *testing.T) {

	transforms := []Transform3D{
		NewTransform3D(NewBasisFromAxisAngle(Vec3Up, 0.7), NewVector3(3, -4, 5)),
		NewTransform3D(NewBasisFromScale(NewVector3(2, 0.5, 3)), NewVector3(1, 1, 1)),
		Transform3DFlipZ.TranslatedLocal(NewVector3(-2, 6, 0)),
		NewTransform3D(NewBasisFromQuaternionScale(NewQuaternionFromEuler(NewVector3(0.5, -1.2, 0.3)), NewVector3(10, 1, 0.1)), NewVector3(0, 0, -20)),
	}

	for i, trans := range transforms {

		if !transform3DNear(trans.Mul(trans.AffineInverse()), Transform3DIdentity, 0.001) {
			t.Fatal("failed on transform #", i, ": transform * transform.AffineInverse() is not identity")
		}

	}

}

func TestTransform3DXformInv(t *testing.T) {

	trans := NewTransform3D(NewBasisFromAxisAngle(Vec3Up, scalar.Pi/2), NewVector3(1, 2, 3))

	v := NewVector3(4, 5, 6)
	if !vec3Near(trans.XformInv(trans.Xform(v)), v, 0.0001) {
		t.Fatal("XformInv should undo Xform for an orthonormal basis")
	}

}

func TestTransform3DInterpolateWith(t *testing.T) {

	from := Transform3DIdentity
	to := NewTransform3D(NewBasisFromAxisAngle(Vec3Up, scalar.Pi/2), NewVector3(10, 0, 0))

	mid := from.InterpolateWith(to, 0.5)

	axis, angle := mid.Basis.AxisAngle()
	if !vec3Near(axis, Vec3Up, 0.001) || !floatNear(angle, scalar.Pi/4, 0.001) {
		t.Fatal("the interpolated rotation should be halfway, got", axis, angle)
	}
	if !vec3Near(mid.Origin, NewVector3(5, 0, 0), 0.0001) {
		t.Fatal("the interpolated origin should be halfway, got", mid.Origin)
	}

	if !transform3DNear(from.InterpolateWith(to, 1), to, 0.0001) {
		t.Fatal("interpolating at weight 1 should return the target")
	}

	// Scale interpolates independently of rotation.
	scaled := NewTransform3D(NewBasisFromScale(NewVector3(3, 3, 3)), Vec3Zero)
	midScale := from.InterpolateWith(scaled, 0.5).Basis.Scale()
	if !vec3Near(midScale, NewVector3(2, 2, 2), 0.001) {
		t.Fatal("the interpolated scale should be halfway, got", midScale)
	}

}

func TestTransform3DLocalVersusGlobal(t *testing.T) {

	trans := NewTransform3D(NewBasisFromAxisAngle(Vec3Up, scalar.Pi/2), NewVector3(10, 0, 0))

	global := trans.Translated(NewVector3(0, 0, 5))
	if !vec3Near(global.Origin, NewVector3(10, 0, 5), 0.0001) {
		t.Fatal("a global translation should offset the origin directly")
	}

	local := trans.TranslatedLocal(NewVector3(0, 0, 5))
	if !vec3Near(local.Origin, trans.Xform(NewVector3(0, 0, 5)), 0.0001) {
		t.Fatal("a local translation should run through the transform")
	}

	// A global rotation orbits the origin around the pivot; a local one doesn't move it.
	orbited := trans.Rotated(Vec3Up, scalar.Pi/2)
	if !vec3Near(orbited.Origin, NewVector3(0, 0, -10), 0.0001) {
		t.Fatal("a global rotation should move the origin, got", orbited.Origin)
	}
	if trans.RotatedLocal(Vec3Up, 0.3).Origin != trans.Origin {
		t.Fatal("a local rotation should leave the origin alone")
	}

}

func TestTransform3DLookingAt(t *testing.T) {

	trans := NewTransform3D(NewBasisFromScale(NewVector3(2, 2, 2)), NewVector3(0, 0, 10))

	looking := trans.LookingAt(Vec3Zero, Vec3Up, false)

	// The old scale is discarded; the result is a pure rotation.
	if !looking.Basis.IsRotation() {
		t.Fatal("a look-at basis should be a pure rotation")
	}
	if looking.Origin != trans.Origin {
		t.Fatal("looking at a target should not move the transform")
	}

	// -Z points from the origin towards the target.
	forward := looking.Basis.Column(2).Negated()
	if !vec3Near(forward, NewVector3(0, 0, -1), 0.0001) {
		t.Fatal("the forward axis should point at the target, got", forward)
	}

}

func TestTransform3DOrthonormalized(t *testing.T) {

	trans := NewTransform3D(
		NewBasisFromQuaternionScale(NewQuaternionFromAxisAngle(Vec3Up, 0.8), NewVector3(2, 3, 4)),
		NewVector3(1, 2, 3),
	)

	ortho := trans.Orthonormalized()
	if !ortho.Basis.IsOrthonormal() {
		t.Fatal("orthonormalizing should produce an orthonormal basis")
	}
	if ortho.Origin != trans.Origin {
		t.Fatal("orthonormalizing should leave the origin alone")
	}

}

func BenchmarkTransform3DMul(b *testing.B) {

	b.ReportAllocs()

	x := NewTransform3D(NewBasisFromAxisAngle(Vec3Up, 0.3), NewVector3(1, 4, -12))
	y := NewTransform3D(NewBasisFromAxisAngle(Vec3Right, -0.8), NewVector3(0, 1, 0))

	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}

}
