package spatial

import (
	"fmt"
)

// Transform3DIdentity is the identity transform; no translation, no rotation, scale of 1.
var Transform3DIdentity = NewTransform3D(BasisIdentity, Vec3Zero)

// Transform3DFlipX mirrors perpendicular to the YZ plane.
var Transform3DFlipX = NewTransform3D(BasisFlipX, Vec3Zero)

// Transform3DFlipY mirrors perpendicular to the XZ plane.
var Transform3DFlipY = NewTransform3D(BasisFlipY, Vec3Zero)

// Transform3DFlipZ mirrors perpendicular to the XY plane.
var Transform3DFlipZ = NewTransform3D(BasisFlipZ, Vec3Zero)

// Transform3D is a 3x4 matrix representing a transformation in 3D space; a Basis holding
// rotation, scale, and shear, plus an origin holding the translation.
// Any Transform3D functions that modify the calling transform return copies, so you can
// method-chain.
type Transform3D struct {
	Basis  Basis   // The basis of the transform; its rotation, scale, and shear.
	Origin Vector3 // The translation offset of the transform; its position in 3D space.
}

// NewTransform3D creates a new Transform3D from a Basis and an origin.
func NewTransform3D(basis Basis, origin Vector3) Transform3D {
	return Transform3D{Basis: basis, Origin: origin}
}

// Inverse returns the inverted version of this transform. The basis needs to be orthonormal
// for this to return correctly; if it carries scale, use AffineInverse instead.
func (trans Transform3D) Inverse() Transform3D {
	trans.Basis = trans.Basis.Transposed()
	trans.Origin = trans.Basis.Xform(trans.Origin.Negated())
	return trans
}

// AffineInverse returns the inverted version of this transform. Unlike Inverse, this works
// with almost any basis, including non-uniform ones, but is slower. The basis's determinant
// must not be exactly 0.
func (trans Transform3D) AffineInverse() Transform3D {
	trans.Basis = trans.Basis.Inverse()
	trans.Origin = trans.Basis.Xform(trans.Origin.Negated())
	return trans
}

// InterpolateWith returns the result of interpolating between this transform and xform by
// weight, decomposing both into rotation, scale, and translation and interpolating each.
// Weights outside of the 0-1 range extrapolate.
func (trans Transform3D) InterpolateWith(xform Transform3D, weight Float) Transform3D {
	srcScale := trans.Basis.Scale()
	srcRot := trans.Basis.RotationQuaternion()
	srcLoc := trans.Origin

	dstScale := xform.Basis.Scale()
	dstRot := xform.Basis.RotationQuaternion()
	dstLoc := xform.Origin

	var interp Transform3D
	interp.Basis = NewBasisFromQuaternionScale(
		srcRot.Slerp(dstRot, weight).Normalized(),
		srcScale.Lerp(dstScale, weight),
	)
	interp.Origin = srcLoc.Lerp(dstLoc, weight)
	return interp
}

// IsEqualApprox returns true if this transform and xform are approximately equal, comparing
// the basis and the origin.
func (trans Transform3D) IsEqualApprox(xform Transform3D) bool {
	return trans.Basis.IsEqualApprox(xform.Basis) && trans.Origin.IsEqualApprox(xform.Origin)
}

// IsFinite returns true if every component of the transform is finite.
func (trans Transform3D) IsFinite() bool {
	return trans.Basis.IsFinite() && trans.Origin.IsFinite()
}

// LookingAt returns a copy of this transform rotated so that its forward axis (-Z) points
// towards the target position; if useModelFront is true, the +Z axis (asset front) is treated
// as forward instead. The up axis (+Y) points as close to the up vector as possible while
// staying perpendicular to the forward axis, and the resulting basis is orthonormalized; the
// existing rotation, scale, and skew are discarded. target and up are in global space, can't
// be zero, and can't be parallel to each other.
func (trans Transform3D) LookingAt(target, up Vector3, useModelFront bool) Transform3D {
	trans.Basis = NewBasisLookingAt(target.Sub(trans.Origin), up, useModelFront)
	return trans
}

// Orthonormalized returns a copy of this transform with its basis orthonormalized; axes
// perpendicular to each other and normalized to a length of 1, so it can only represent
// rotation.
func (trans Transform3D) Orthonormalized() Transform3D {
	trans.Basis = trans.Basis.Orthonormalized()
	return trans
}

// Rotated returns a copy of this transform rotated around the given axis by angle (in
// radians); the optimized version of composing with a rotation transform from the left
// (rotating with respect to the global frame). The axis must be normalized.
func (trans Transform3D) Rotated(axis Vector3, angle Float) Transform3D {
	basis := NewBasisFromAxisAngle(axis, angle)
	return NewTransform3D(basis.Mul(trans.Basis), basis.Xform(trans.Origin))
}

// RotatedLocal returns a copy of this transform rotated around the given axis by angle (in
// radians); the optimized version of composing with a rotation transform from the right
// (rotating with respect to the local frame). The axis must be normalized.
func (trans Transform3D) RotatedLocal(axis Vector3, angle Float) Transform3D {
	basis := NewBasisFromAxisAngle(axis, angle)
	return NewTransform3D(trans.Basis.Mul(basis), trans.Origin)
}

// Scaled returns a copy of this transform scaled by the given factor; the optimized version
// of composing with a scale transform from the left (scaling with respect to the global
// frame).
func (trans Transform3D) Scaled(scale Vector3) Transform3D {
	return NewTransform3D(trans.Basis.Scaled(scale), trans.Origin.Mul(scale))
}

// ScaledLocal returns a copy of this transform scaled by the given factor; the optimized
// version of composing with a scale transform from the right (scaling with respect to the
// local frame).
func (trans Transform3D) ScaledLocal(scale Vector3) Transform3D {
	return NewTransform3D(trans.Basis.ScaledLocal(scale), trans.Origin)
}

// Translated returns a copy of this transform translated by the given offset; the optimized
// version of composing with a translation transform from the left (moving with respect to the
// global frame).
func (trans Transform3D) Translated(offset Vector3) Transform3D {
	return NewTransform3D(trans.Basis, trans.Origin.Add(offset))
}

// TranslatedLocal returns a copy of this transform translated by the given offset; the
// optimized version of composing with a translation transform from the right (moving with
// respect to the local frame).
func (trans Transform3D) TranslatedLocal(offset Vector3) Transform3D {
	return NewTransform3D(trans.Basis, trans.Origin.Add(trans.Basis.Xform(offset)))
}

// Xform returns the vector transformed by the full transform; basis first, then translation.
func (trans Transform3D) Xform(vec Vector3) Vector3 {
	return NewVector3(
		trans.Basis.X.Dot(vec)+trans.Origin.X,
		trans.Basis.Y.Dot(vec)+trans.Origin.Y,
		trans.Basis.Z.Dot(vec)+trans.Origin.Z,
	)
}

// XformInv returns the vector transformed by the transposed basis after removing the
// translation. This undoes Xform only if the basis is orthonormal.
func (trans Transform3D) XformInv(vec Vector3) Vector3 {
	return trans.Basis.XformInv(vec.Sub(trans.Origin))
}

// Mul returns the product of this transform and the other Transform3D; the result applies
// other first, then this transform.
func (trans Transform3D) Mul(other Transform3D) Transform3D {
	trans.Origin = trans.Xform(other.Origin)
	trans.Basis = trans.Basis.Mul(other.Basis)
	return trans
}

// Scalef returns a copy of this transform with the basis rows and the origin uniformly
// multiplied by factor.
func (trans Transform3D) Scalef(factor Float) Transform3D {
	trans.Basis.X = trans.Basis.X.Scale(factor)
	trans.Basis.Y = trans.Basis.Y.Scale(factor)
	trans.Basis.Z = trans.Basis.Z.Scale(factor)
	trans.Origin = trans.Origin.Scale(factor)
	return trans
}

// IsIdentity returns true if the transform is approximately the identity transform.
func (trans Transform3D) IsIdentity() bool {
	return trans.IsEqualApprox(Transform3DIdentity)
}

func (trans Transform3D) String() string {
	return fmt.Sprintf("Transform3D[%s, O: %s]", trans.Basis, trans.Origin)
}
