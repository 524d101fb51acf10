package spatial

import (
	"testing"

	"github.com/hollowgrove/spatial/scalar"
)

func basisNear(a, b Basis, tolerance Float) bool {
	return vec3Near(a.X, b.X, tolerance) && vec3Near(a.Y, b.Y, tolerance) && vec3Near(a.Z, b.Z, tolerance)
}

func TestBasisInverse(t *testing.T) {

	bases := []Basis{
		NewBasisFromAxisAngle(Vec3Up, 0.1),
		NewBasisFromAxisAngle(NewVector3(1, 0, 0.1).Normalized(), 0.334),
		NewBasisFromScale(NewVector3(10, 0.1, -0.45)),
		NewBasisFromEuler(NewVector3(0.5, -1.2, 0.3), EulerOrderYXZ).Mul(NewBasisFromScale(NewVector3(2, 2, 0.5))),
	}

	for i, basis := range bases {

		if !basisNear(basis.Mul(basis.Inverse()), BasisIdentity, 0.001) {
			t.Fatal("failed on basis #", i, ": basis * basis.Inverse() is not identity")
		}

		// For a pure rotation, the transpose is the inverse.
		if basis.IsRotation() && !basisNear(basis.Transposed(), basis.Inverse(), 0.001) {
			t.Fatal("failed on basis #", i, ": transpose of a rotation should match its inverse")
		}

	}

}

func TestBasisDeterminant(t *testing.T) {

	if BasisIdentity.Determinant() != 1 {
		t.Fatal("the identity basis should have a determinant of 1")
	}
	if !floatNear(NewBasisFromScale(NewVector3(2, 3, 4)).Determinant(), 24, 0.0001) {
		t.Fatal("the determinant of a scale basis should be the product of the scales")
	}
	// One flipped axis makes the determinant negative.
	if BasisFlipX.Determinant() != -1 {
		t.Fatal("a flip basis should have a determinant of -1")
	}

}

func TestBasisEulerRoundTrip(t *testing.T) {

	orders := []EulerOrder{
		EulerOrderXYZ, EulerOrderXZY, EulerOrderYXZ,
		EulerOrderYZX, EulerOrderZXY, EulerOrderZYX,
	}

	angles := []Float{0, 30, -30, 90, -90, 120, -120, 180}

	for _, order := range orders {
		for _, xDeg := range angles {
			for _, yDeg := range angles {
				for _, zDeg := range angles {

					euler := NewVector3(scalar.ToRadians(xDeg), scalar.ToRadians(yDeg), scalar.ToRadians(zDeg))
					original := NewBasisFromEuler(euler, order)

					// The recovered angles can differ from the input ones, but they have
					// to produce the same rotation.
					recovered := NewBasisFromEuler(original.Euler(order), order)

					if !basisNear(original, recovered, 0.001) {
						t.Fatal("euler round-trip failed for order", order, "with angles",
							xDeg, yDeg, zDeg, ":", original, "became", recovered)
					}

				}
			}
		}
	}

}

func TestBasisEulerPureRotations(t *testing.T) {

	// A rotation around a single axis should come back out as exactly that angle.
	angle := Float(0.4)

	euler := NewBasisFromAxisAngle(Vec3Up, angle).Euler(EulerOrderYXZ)
	if !vec3Near(euler, NewVector3(0, angle, 0), 0.0001) {
		t.Fatal("pure Y rotation should decompose to (0, angle, 0), got", euler)
	}

	euler = NewBasisFromAxisAngle(Vec3Right, angle).Euler(EulerOrderYXZ)
	if !vec3Near(euler, NewVector3(angle, 0, 0), 0.0001) {
		t.Fatal("pure X rotation should decompose to (angle, 0, 0), got", euler)
	}

}

func TestBasisAxisAngle(t *testing.T) {

	// A half turn around Y; the symmetric case with no antisymmetric part.
	axis, angle := NewBasisFromScale(NewVector3(-1, 1, -1)).AxisAngle()
	if !vec3Near(axis, Vec3Up, 0.0001) || !floatNear(angle, scalar.Pi, 0.0001) {
		t.Fatal("diag(-1, 1, -1) should decompose to a Pi turn around Y, got", axis, angle)
	}

	// The identity has no rotation; the axis defaults to Y.
	axis, angle = BasisIdentity.AxisAngle()
	if axis != Vec3Up || angle != 0 {
		t.Fatal("the identity basis should decompose to a zero angle around Y, got", axis, angle)
	}

	// General and tiny rotations round-trip.
	inputs := []struct {
		axis  Vector3
		angle Float
	}{
		{Vec3Up, 1.5},
		{NewVector3(1, 1, 1).Normalized(), 0.7},
		{NewVector3(-0.3, 0.8, -0.1).Normalized(), 2.8},
		{Vec3Right, 0.001},
	}

	for i, in := range inputs {
		axis, angle := NewBasisFromAxisAngle(in.axis, in.angle).AxisAngle()
		if !basisNear(NewBasisFromAxisAngle(axis, angle), NewBasisFromAxisAngle(in.axis, in.angle), 0.001) {
			t.Fatal("axis-angle round-trip failed on input #", i, ": got", axis, angle)
		}
	}

}

func TestBasisQuaternion(t *testing.T) {

	inputs := []Quaternion{
		QuatIdentity,
		NewQuaternionFromAxisAngle(Vec3Up, 1.2),
		NewQuaternionFromAxisAngle(NewVector3(1, 1, 1).Normalized(), 2.9),
		NewQuaternionFromEuler(NewVector3(0.5, -1.2, 0.3)),
	}

	for i, quat := range inputs {

		recovered := NewBasisFromQuaternion(quat).Quaternion()

		// q and -q are the same rotation.
		if recovered.Dot(quat) < 0 {
			recovered = recovered.Negated()
		}
		if !recovered.IsEqualApprox(quat) {
			t.Fatal("quaternion round-trip failed on input #", i, ":", quat, "became", recovered)
		}

	}

}

func TestBasisOrthonormalized(t *testing.T) {

	skewed := NewBasisFromEuler(NewVector3(0.5, -1.2, 0.3), EulerOrderYXZ).Mul(NewBasisFromScale(NewVector3(2, 0.5, 3)))

	ortho := skewed.Orthonormalized()
	if !ortho.IsOrthonormal() {
		t.Fatal("orthonormalizing should produce an orthonormal basis")
	}
	if !ortho.IsRotation() {
		t.Fatal("orthonormalizing a non-flipped basis should produce a rotation")
	}

}

func TestBasisPredicates(t *testing.T) {

	rotation := NewBasisFromAxisAngle(NewVector3(1, 1, 1).Normalized(), 0.9)
	uniformScale := NewBasisFromScale(NewVector3(2, 2, 2))
	nonUniformScale := NewBasisFromScale(NewVector3(1, 2, 3))

	if !rotation.IsOrthogonal() || !rotation.IsOrthonormal() || !rotation.IsConformal() || !rotation.IsRotation() {
		t.Fatal("a pure rotation should pass all the shape predicates")
	}
	if !uniformScale.IsOrthogonal() || uniformScale.IsOrthonormal() {
		t.Fatal("a uniform scale is orthogonal but not orthonormal")
	}
	if !uniformScale.IsConformal() {
		t.Fatal("a uniform scale preserves angles, so it should be conformal")
	}
	if nonUniformScale.IsConformal() {
		t.Fatal("a non-uniform scale should not be conformal")
	}
	if nonUniformScale.IsRotation() {
		t.Fatal("a non-uniform scale should not be a rotation")
	}

	// Edge case: a zero scale is uniform, so the all-zero basis is conformal and
	// orthogonal (vacuously), but it can't be orthonormal or a rotation.
	zero := Basis{}
	if !zero.IsConformal() || !zero.IsOrthogonal() {
		t.Fatal("an all-zero basis should be conformal and orthogonal")
	}
	if zero.IsOrthonormal() || zero.IsRotation() {
		t.Fatal("an all-zero basis should not be orthonormal or a rotation")
	}

}

func TestBasisScale(t *testing.T) {

	basis := NewBasisFromQuaternionScale(NewQuaternionFromAxisAngle(Vec3Up, 0.8), NewVector3(2, 3, 4))

	if !vec3Near(basis.Scale(), NewVector3(2, 3, 4), 0.001) {
		t.Fatal("scale extraction failed, got", basis.Scale())
	}

	// A flip shows up as a negative scale component.
	flipped := BasisFlipX
	if flipped.Scale().X >= 0 {
		t.Fatal("a flipped basis should report a negative scale component")
	}

}

func TestBasisXform(t *testing.T) {

	basis := NewBasisFromAxisAngle(Vec3Up, scalar.Pi/2)

	if !vec3Near(basis.Xform(Vec3Right), Vec3Forward, 0.0001) {
		t.Fatal("a quarter turn around Y should take +X to -Z")
	}
	// XformInv undoes Xform for an orthonormal basis.
	v := NewVector3(1, 2, 3)
	if !vec3Near(basis.XformInv(basis.Xform(v)), v, 0.0001) {
		t.Fatal("XformInv should undo Xform for a rotation basis")
	}

}

func TestBasisLookingAt(t *testing.T) {

	basis := NewBasisLookingAt(NewVector3(0, 0, -10), Vec3Up, false)

	if !basis.IsRotation() {
		t.Fatal("a look-at basis should be a pure rotation")
	}
	// Looking down -Z is the identity orientation.
	if !basisNear(basis, BasisIdentity, 0.0001) {
		t.Fatal("looking down -Z should give the identity basis, got", basis)
	}

	// -Z of the rotated basis points at the target.
	target := NewVector3(4, 1, -3).Normalized()
	basis = NewBasisLookingAt(target, Vec3Up, false)
	if !vec3Near(basis.Column(2).Negated(), target, 0.0001) {
		t.Fatal("the look-at basis should point its -Z column at the target")
	}

}

func BenchmarkBasisMul(b *testing.B) {

	b.ReportAllocs()

	x := NewBasisFromAxisAngle(Vec3Up, 0.3)
	y := NewBasisFromAxisAngle(Vec3Right, -0.8)

	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}

}

func BenchmarkBasisEuler(b *testing.B) {

	b.ReportAllocs()

	basis := NewBasisFromEuler(NewVector3(0.5, -1.2, 0.3), EulerOrderYXZ)

	for i := 0; i < b.N; i++ {
		basis.Euler(EulerOrderYXZ)
	}

}
