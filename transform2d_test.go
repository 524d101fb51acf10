package spatial

import (
	"testing"

	"github.com/hollowgrove/spatial/scalar"
)

func transform2DNear(a, b Transform2D, tolerance Float) bool {
	return vec2Near(a.X, b.X, tolerance) && vec2Near(a.Y, b.Y, tolerance) && vec2Near(a.Origin, b.Origin, tolerance)
}

func TestTransform2DInverse(t *testing.T) {

	trans := NewTransform2DFromAngle(0.7, NewVector2(3, -4))

	// Inverse only handles rotation plus translation.
	inverted := trans.Inverse()
	if !transform2DNear(trans.Mul(inverted), Transform2DIdentity, 0.0001) {
		t.Fatal("transform * transform.Inverse() should be identity")
	}

	v := NewVector2(5, 2)
	if !vec2Near(inverted.Xform(trans.Xform(v)), v, 0.0001) {
		t.Fatal("the inverse should undo the transform")
	}

}

func TestTransform2DAffineInverse(t *testing.T) {

	transforms := []Transform2D{
		NewTransform2DFromAngle(0.7, NewVector2(3, -4)),
		NewTransform2DFromAngleScaleSkew(-0.2, NewVector2(2, 0.5), 0.3, NewVector2(1, 1)),
		Transform2DFlipY.TranslatedLocal(NewVector2(-2, 6)),
	}

	for i, trans := range transforms {

		if !transform2DNear(trans.Mul(trans.AffineInverse()), Transform2DIdentity, 0.0001) {
			t.Fatal("failed on transform #", i, ": transform * transform.AffineInverse() is not identity")
		}

	}

}

func TestTransform2DDecomposition(t *testing.T) {

	angle := Float(0.6)
	scale := NewVector2(2, 3)
	skew := Float(0.2)
	origin := NewVector2(7, -1)

	trans := NewTransform2DFromAngleScaleSkew(angle, scale, skew, origin)

	if !floatNear(trans.Rotation(), angle, 0.0001) {
		t.Fatal("rotation extraction failed, got", trans.Rotation())
	}
	if !vec2Near(trans.Scale(), scale, 0.0001) {
		t.Fatal("scale extraction failed, got", trans.Scale())
	}
	if !floatNear(trans.Skew(), skew, 0.0001) {
		t.Fatal("skew extraction failed, got", trans.Skew())
	}
	if trans.Origin != origin {
		t.Fatal("the origin should pass through unchanged")
	}

}

func TestTransform2DSetters(t *testing.T) {

	trans := NewTransform2DFromAngleScaleSkew(0.6, NewVector2(2, 3), 0, Vec2Zero)

	// Setting the rotation keeps the scale, and the other way around.
	trans = trans.SetRotation(1.1)
	if !floatNear(trans.Rotation(), 1.1, 0.0001) || !vec2Near(trans.Scale(), NewVector2(2, 3), 0.0001) {
		t.Fatal("SetRotation should keep the scale")
	}

	trans = trans.SetScale(NewVector2(0.5, 4))
	if !vec2Near(trans.Scale(), NewVector2(0.5, 4), 0.0001) || !floatNear(trans.Rotation(), 1.1, 0.0001) {
		t.Fatal("SetScale should keep the rotation")
	}

}

func TestTransform2DInterpolateWith(t *testing.T) {

	from := NewTransform2DFromAngle(0, Vec2Zero)
	to := NewTransform2DFromAngle(scalar.Pi/2, NewVector2(10, 0))

	mid := from.InterpolateWith(to, 0.5)
	if !floatNear(mid.Rotation(), scalar.Pi/4, 0.0001) {
		t.Fatal("the interpolated rotation should be halfway, got", mid.Rotation())
	}
	if !vec2Near(mid.Origin, NewVector2(5, 0), 0.0001) {
		t.Fatal("the interpolated origin should be halfway, got", mid.Origin)
	}

	if !transform2DNear(from.InterpolateWith(to, 1), to, 0.0001) {
		t.Fatal("interpolating at weight 1 should return the target")
	}

}

func TestTransform2DLocalVersusGlobal(t *testing.T) {

	trans := NewTransform2DFromAngle(0.5, NewVector2(10, 0))

	// A global translation ignores the basis; a local one goes through it.
	global := trans.Translated(NewVector2(0, 5))
	if !vec2Near(global.Origin, NewVector2(10, 5), 0.0001) {
		t.Fatal("a global translation should offset the origin directly")
	}

	local := trans.TranslatedLocal(NewVector2(0, 5))
	if !vec2Near(local.Origin, trans.Xform(NewVector2(0, 5)), 0.0001) {
		t.Fatal("a local translation should run through the transform")
	}

	// Rotating globally moves the origin too; locally it stays put.
	if trans.RotatedLocal(0.3).Origin != trans.Origin {
		t.Fatal("a local rotation should leave the origin alone")
	}

}

func TestTransform2DIsConformal(t *testing.T) {

	if !Transform2DIdentity.IsConformal() {
		t.Fatal("the identity transform should be conformal")
	}
	if !NewTransform2DFromAngle(0.8, Vec2Zero).IsConformal() {
		t.Fatal("a rotation should be conformal")
	}
	if !Transform2DFlipX.IsConformal() {
		t.Fatal("a mirror should be conformal")
	}
	if NewTransform2DFromAngleScaleSkew(0, NewVector2(2, 1), 0, Vec2Zero).IsConformal() {
		t.Fatal("a non-uniform scale should not be conformal")
	}
	if NewTransform2DFromAngleScaleSkew(0, Vec2One, 0.5, Vec2Zero).IsConformal() {
		t.Fatal("a skewed transform should not be conformal")
	}

}

func TestTransform2DBasisXform(t *testing.T) {

	trans := NewTransform2DFromAngle(scalar.Pi/2, NewVector2(100, 100))

	// BasisXform skips the translation.
	v := trans.BasisXform(Vec2Right)
	if !vec2Near(v, Vec2Down, 0.0001) {
		t.Fatal("BasisXform should rotate without translating, got", v)
	}

	if !vec2Near(trans.BasisXformInv(v), Vec2Right, 0.0001) {
		t.Fatal("BasisXformInv should undo BasisXform for a rotation")
	}

}
