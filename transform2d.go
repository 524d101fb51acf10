package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// Transform2DIdentity is the identity transform; no translation, no rotation, scale of 1.
var Transform2DIdentity = NewTransform2D(Vec2Right, Vec2Down, Vec2Zero)

// Transform2DFlipX negates the X column of any transform it is multiplied onto.
var Transform2DFlipX = NewTransform2D(Vec2Left, Vec2Down, Vec2Zero)

// Transform2DFlipY negates the Y column of any transform it is multiplied onto.
var Transform2DFlipY = NewTransform2D(Vec2Right, Vec2Up, Vec2Zero)

// Transform2D is a 2x3 matrix representing a transformation in 2D space; together its three
// Vector2 columns hold translation, rotation, scale, and skew. X and Y form the transform's
// 2x2 basis; the length of each axis drives the scale and their directions drive the rotation.
// Rotate one axis on its own and the transform becomes skewed.
// Any Transform2D functions that modify the calling transform return copies, so you can
// method-chain.
type Transform2D struct {
	X      Vector2 // The basis's X axis, and column 0 of the matrix. Points right on the identity transform.
	Y      Vector2 // The basis's Y axis, and column 1 of the matrix. Points down on the identity transform.
	Origin Vector2 // The translation offset, and column 2 of the matrix; the transform's position in 2D space.
}

// NewTransform2D creates a new Transform2D from its three matrix columns: the x axis, the y
// axis, and the origin.
func NewTransform2D(x, y, origin Vector2) Transform2D {
	return Transform2D{X: x, Y: y, Origin: origin}
}

// NewTransform2DFromFloats creates a new Transform2D from six components, column by column.
func NewTransform2DFromFloats(xx, xy, yx, yy, originX, originY Float) Transform2D {
	return NewTransform2D(
		NewVector2(xx, xy),
		NewVector2(yx, yy),
		NewVector2(originX, originY),
	)
}

// NewTransform2DFromAngle creates a Transform2D rotated by the given angle (in radians) and
// translated to the given position.
func NewTransform2DFromAngle(angle Float, position Vector2) Transform2D {
	cr := scalar.Cos(angle)
	sr := scalar.Sin(angle)
	return NewTransform2DFromFloats(cr, sr, -sr, cr, position.X, position.Y)
}

// NewTransform2DFromAngleScaleSkew creates a Transform2D from a rotation angle (in radians),
// a scale, a skew (in radians), and a position.
func NewTransform2DFromAngleScaleSkew(angle Float, scale Vector2, skew Float, position Vector2) Transform2D {
	xx := scalar.Cos(angle) * scale.X
	yy := scalar.Cos(angle+skew) * scale.Y
	yx := -scalar.Sin(angle+skew) * scale.Y
	xy := scalar.Sin(angle) * scale.X
	return NewTransform2DFromFloats(xx, xy, yx, yy, position.X, position.Y)
}

// Column returns the column of the matrix at the given index; 0 and 1 are the basis axes and
// 2 is the origin.
func (trans Transform2D) Column(index int) Vector2 {
	switch index {
	case 0:
		return trans.X
	case 1:
		return trans.Y
	case 2:
		return trans.Origin
	}
	panic("invalid column index")
}

// SetColumn returns a copy of the transform with the column at the given index replaced.
func (trans Transform2D) SetColumn(index int, value Vector2) Transform2D {
	switch index {
	case 0:
		trans.X = value
	case 1:
		trans.Y = value
	case 2:
		trans.Origin = value
	default:
		panic("invalid column index")
	}
	return trans
}

// TdotX returns the dot product between v and the first row of the basis.
func (trans Transform2D) TdotX(v Vector2) Float {
	return trans.X.X*v.X + trans.Y.X*v.Y
}

// TdotY returns the dot product between v and the second row of the basis.
func (trans Transform2D) TdotY(v Vector2) Float {
	return trans.X.Y*v.X + trans.Y.Y*v.Y
}

// BasisXform returns the vector transformed by the transform's basis matrix alone, ignoring
// the origin.
func (trans Transform2D) BasisXform(v Vector2) Vector2 {
	return NewVector2(trans.TdotX(v), trans.TdotY(v))
}

// BasisXformInv returns the vector transformed by the inverse of the transform's basis,
// ignoring the origin. This assumes the basis is orthonormal; if it isn't, use
// trans.AffineInverse().BasisXform(v) instead.
func (trans Transform2D) BasisXformInv(v Vector2) Vector2 {
	return NewVector2(trans.X.Dot(v), trans.Y.Dot(v))
}

// Xform returns the vector transformed by the full transform; basis first, then translation.
func (trans Transform2D) Xform(vec Vector2) Vector2 {
	return NewVector2(trans.TdotX(vec), trans.TdotY(vec)).Add(trans.Origin)
}

// Determinant returns the determinant of the transform's basis matrix. A determinant of
// exactly 0 means the basis isn't invertible, and a negative determinant means the basis has
// a negative scale.
func (trans Transform2D) Determinant() Float {
	return trans.X.X*trans.Y.Y - trans.X.Y*trans.Y.X
}

// Rotation returns the transform's rotation in radians; the angle of the X axis.
func (trans Transform2D) Rotation() Float {
	return trans.X.Angle()
}

// SetRotation returns a copy of the transform with its rotation replaced, keeping the scale.
func (trans Transform2D) SetRotation(rot Float) Transform2D {
	scale := trans.Scale()
	cr := scalar.Cos(rot)
	sr := scalar.Sin(rot)
	trans.X.X = cr
	trans.X.Y = sr
	trans.Y.X = -sr
	trans.Y.Y = cr
	return trans.SetScale(scale)
}

// Scale returns the length of the X and Y axes as a Vector2. If the basis isn't skewed, this
// is the scaling factor; rotation doesn't affect it. A negative determinant makes the Y scale
// negative.
func (trans Transform2D) Scale() Vector2 {
	detSign := scalar.Sign(trans.Determinant())
	return NewVector2(trans.X.Length(), detSign*trans.Y.Length())
}

// SetScale returns a copy of the transform with its scale replaced, keeping the rotation.
func (trans Transform2D) SetScale(scale Vector2) Transform2D {
	trans.X = trans.X.Normalized().Scale(scale.X)
	trans.Y = trans.Y.Normalized().Scale(scale.Y)
	return trans
}

// Skew returns the transform's skew, in radians.
func (trans Transform2D) Skew() Float {
	det := trans.Determinant()
	return scalar.Acos(trans.X.Normalized().Dot(trans.Y.Normalized().Scale(scalar.Sign(det)))) - scalar.Pi*0.5
}

// SetSkew returns a copy of the transform with its skew replaced, in radians.
func (trans Transform2D) SetSkew(angle Float) Transform2D {
	det := trans.Determinant()
	trans.Y = trans.X.Rotated(scalar.Pi*0.5 + angle).Normalized().Scale(scalar.Sign(det) * trans.Y.Length())
	return trans
}

// InterpolateWith returns the result of interpolating between this transform and xform by
// weight, decomposing both into rotation, scale, skew, and origin and interpolating each.
// Weights outside of the 0-1 range extrapolate.
func (trans Transform2D) InterpolateWith(xform Transform2D, weight Float) Transform2D {
	return NewTransform2DFromAngleScaleSkew(
		scalar.Lerp(trans.Rotation(), xform.Rotation(), weight),
		trans.Scale().Lerp(xform.Scale(), weight),
		scalar.Lerp(trans.Skew(), xform.Skew(), weight),
		trans.Origin.Lerp(xform.Origin, weight),
	)
}

// Inverse returns the inverted version of this transform. The basis needs to be orthonormal
// for this to return correctly; if it only might be, use AffineInverse instead.
func (trans Transform2D) Inverse() Transform2D {
	trans.X.Y, trans.Y.X = trans.Y.X, trans.X.Y
	trans.Origin = trans.BasisXform(trans.Origin.Negated())
	return trans
}

// AffineInverse returns the inverted version of this transform. Unlike Inverse, this works
// with almost any basis, including non-uniform ones, but is slower. The basis's determinant
// must not be exactly 0.
func (trans Transform2D) AffineInverse() Transform2D {
	det := trans.Determinant()
	idet := 1 / det

	trans.X.X, trans.Y.Y = trans.Y.Y, trans.X.X
	trans.X = trans.X.Mul(NewVector2(idet, -idet))
	trans.Y = trans.Y.Mul(NewVector2(-idet, idet))

	trans.Origin = trans.BasisXform(trans.Origin.Negated())
	return trans
}

// IsConformal returns true if the transform's basis is both orthogonal (the axes are
// perpendicular to each other) and uniform (the axes share the same length). Handy during
// physics calculations.
func (trans Transform2D) IsConformal() bool {
	// Non-flipped case.
	if scalar.IsEqualApprox(trans.X.X, trans.Y.Y) && scalar.IsEqualApprox(trans.X.Y, -trans.Y.X) {
		return true
	}
	// Flipped case.
	if scalar.IsEqualApprox(trans.X.X, -trans.Y.Y) && scalar.IsEqualApprox(trans.X.Y, trans.Y.X) {
		return true
	}
	return false
}

// IsEqualApprox returns true if this transform and xform are approximately equal, comparing
// each column with Vector2.IsEqualApprox.
func (trans Transform2D) IsEqualApprox(xform Transform2D) bool {
	return trans.X.IsEqualApprox(xform.X) &&
		trans.Y.IsEqualApprox(xform.Y) &&
		trans.Origin.IsEqualApprox(xform.Origin)
}

// IsFinite returns true if every component of the transform is finite.
func (trans Transform2D) IsFinite() bool {
	return trans.X.IsFinite() && trans.Y.IsFinite() && trans.Origin.IsFinite()
}

// LookingAt returns a copy of the transform rotated so that its rotated X axis points towards
// the target position, in global space.
func (trans Transform2D) LookingAt(target Vector2) Transform2D {
	returnTrans := NewTransform2DFromAngle(trans.Rotation(), trans.Origin)
	targetPosition := trans.AffineInverse().Xform(target)
	return returnTrans.SetRotation(returnTrans.Rotation() + targetPosition.Mul(trans.Scale()).Angle())
}

// Orthonormalized returns a copy of this transform with its basis axes made perpendicular to
// each other and normalized to a length of 1, using the Gram-Schmidt process. An orthonormal
// basis can only represent rotation.
func (trans Transform2D) Orthonormalized() Transform2D {
	x := trans.X
	y := trans.Y

	x = x.Normalized()
	y = y.Sub(x.Scale(x.Dot(y)))
	y = y.Normalized()

	trans.X = x
	trans.Y = y
	return trans
}

// Rotated returns a copy of the transform rotated by the given angle (in radians); the
// optimized version of composing with a rotation transform from the left (rotating with
// respect to the global frame).
func (trans Transform2D) Rotated(angle Float) Transform2D {
	return NewTransform2DFromAngle(angle, Vec2Zero).Mul(trans)
}

// RotatedLocal returns a copy of the transform rotated by the given angle (in radians); the
// optimized version of composing with a rotation transform from the right (rotating with
// respect to the local frame).
func (trans Transform2D) RotatedLocal(angle Float) Transform2D {
	return trans.Mul(NewTransform2DFromAngle(angle, Vec2Zero))
}

// Scaled returns a copy of the transform scaled by the given factor; the optimized version of
// composing with a scale transform from the left (scaling with respect to the global frame).
func (trans Transform2D) Scaled(scale Vector2) Transform2D {
	trans.X.X *= scale.X
	trans.X.Y *= scale.Y
	trans.Y.X *= scale.X
	trans.Y.Y *= scale.Y
	trans.Origin = trans.Origin.Mul(scale)
	return trans
}

// ScaledLocal returns a copy of the transform scaled by the given factor; the optimized
// version of composing with a scale transform from the right (scaling with respect to the
// local frame).
func (trans Transform2D) ScaledLocal(scale Vector2) Transform2D {
	return NewTransform2D(trans.X.Scale(scale.X), trans.Y.Scale(scale.Y), trans.Origin)
}

// Translated returns a copy of the transform translated by the given offset; the optimized
// version of composing with a translation transform from the left (moving with respect to the
// global frame).
func (trans Transform2D) Translated(offset Vector2) Transform2D {
	return NewTransform2D(trans.X, trans.Y, trans.Origin.Add(offset))
}

// TranslatedLocal returns a copy of the transform translated by the given offset; the
// optimized version of composing with a translation transform from the right (moving with
// respect to the local frame).
func (trans Transform2D) TranslatedLocal(offset Vector2) Transform2D {
	return NewTransform2D(trans.X, trans.Y, trans.Origin.Add(trans.BasisXform(offset)))
}

// Mul returns the product of this transform and the other Transform2D; the result applies
// other first, then this transform.
func (trans Transform2D) Mul(other Transform2D) Transform2D {
	origin := trans.Xform(other.Origin)
	x0 := trans.TdotX(other.X)
	x1 := trans.TdotY(other.X)
	y0 := trans.TdotX(other.Y)
	y1 := trans.TdotY(other.Y)

	trans.Origin = origin
	trans.X.X = x0
	trans.X.Y = x1
	trans.Y.X = y0
	trans.Y.Y = y1
	return trans
}

func (trans Transform2D) String() string {
	return fmt.Sprintf("Transform2D[X: %s, Y: %s, O: %s]", trans.X, trans.Y, trans.Origin)
}
