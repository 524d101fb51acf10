package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec4Zero is the zero Vector4, with all components set to 0.
var Vec4Zero = NewVector4(0, 0, 0, 0)

// Vec4One is a Vector4 with all components set to 1.
var Vec4One = NewVector4(1, 1, 1, 1)

// Vec4Inf is a Vector4 with all components set to positive infinity.
var Vec4Inf = NewVector4(
	scalar.Inf[Float](1), scalar.Inf[Float](1), scalar.Inf[Float](1), scalar.Inf[Float](1),
)

// Vector4 represents a 4D vector, usable for any quadruplet of numeric values.
// Any Vector4 functions that modify the calling Vector4 return copies of the modified Vector4,
// meaning you can do method-chaining easily.
type Vector4 struct {
	X Float // The X (1st) component of the Vector4
	Y Float // The Y (2nd) component of the Vector4
	Z Float // The Z (3rd) component of the Vector4
	W Float // The W (4th) component of the Vector4
}

// NewVector4 creates a new Vector4 with the specified x, y, z, and w components.
func NewVector4(x, y, z, w Float) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns a copy of the calling Vector4 with the other Vector4 added to it.
func (vec Vector4) Add(other Vector4) Vector4 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector4 with the other Vector4 subtracted from it.
func (vec Vector4) Sub(other Vector4) Vector4 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Mul returns a copy of the calling Vector4, multiplied component-wise by the other Vector4.
func (vec Vector4) Mul(other Vector4) Vector4 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	vec.W *= other.W
	return vec
}

// Div returns a copy of the calling Vector4, divided component-wise by the other Vector4.
func (vec Vector4) Div(other Vector4) Vector4 {
	vec.X /= other.X
	vec.Y /= other.Y
	vec.Z /= other.Z
	vec.W /= other.W
	return vec
}

// Scale returns a copy of the calling Vector4, with all components multiplied by the scalar
// provided.
func (vec Vector4) Scale(factor Float) Vector4 {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	vec.W *= factor
	return vec
}

// Divf returns a copy of the calling Vector4, with all components divided by the scalar provided.
func (vec Vector4) Divf(factor Float) Vector4 {
	vec.X /= factor
	vec.Y /= factor
	vec.Z /= factor
	vec.W /= factor
	return vec
}

// Negated returns a copy of the calling Vector4 with all components flipped in sign.
func (vec Vector4) Negated() Vector4 {
	return NewVector4(-vec.X, -vec.Y, -vec.Z, -vec.W)
}

// Abs returns a copy of the Vector4 with all components in absolute (positive) values.
func (vec Vector4) Abs() Vector4 {
	return NewVector4(scalar.Abs(vec.X), scalar.Abs(vec.Y), scalar.Abs(vec.Z), scalar.Abs(vec.W))
}

// Ceil returns a copy of the Vector4 with all components rounded up (towards positive infinity).
func (vec Vector4) Ceil() Vector4 {
	return NewVector4(scalar.Ceil(vec.X), scalar.Ceil(vec.Y), scalar.Ceil(vec.Z), scalar.Ceil(vec.W))
}

// Clamp returns a copy of the Vector4 with all components clamped between the components of min
// and max.
func (vec Vector4) Clamp(min, max Vector4) Vector4 {
	return NewVector4(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
		scalar.Clamp(vec.Z, min.Z, max.Z),
		scalar.Clamp(vec.W, min.W, max.W),
	)
}

// Clampf returns a copy of the Vector4 with all components clamped between min and max.
func (vec Vector4) Clampf(min, max Float) Vector4 {
	return NewVector4(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
		scalar.Clamp(vec.Z, min, max),
		scalar.Clamp(vec.W, min, max),
	)
}

// CubicInterpolate performs a cubic interpolation between this vector and b using preA and postB
// as handles, and returns the result at position weight (generally between 0 and 1).
func (vec Vector4) CubicInterpolate(b, preA, postB Vector4, weight Float) Vector4 {
	return NewVector4(
		scalar.CubicInterpolate(vec.X, b.X, preA.X, postB.X, weight),
		scalar.CubicInterpolate(vec.Y, b.Y, preA.Y, postB.Y, weight),
		scalar.CubicInterpolate(vec.Z, b.Z, preA.Z, postB.Z, weight),
		scalar.CubicInterpolate(vec.W, b.W, preA.W, postB.W, weight),
	)
}

// CubicInterpolateInTime performs a cubic interpolation between this vector and b using preA and
// postB as handles, with the handles placed at the given key times.
func (vec Vector4) CubicInterpolateInTime(b, preA, postB Vector4, weight, bT, preAT, postBT Float) Vector4 {
	return NewVector4(
		scalar.CubicInterpolateInTime(vec.X, b.X, preA.X, postB.X, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.Y, b.Y, preA.Y, postB.Y, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.Z, b.Z, preA.Z, postB.Z, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.W, b.W, preA.W, postB.W, weight, bT, preAT, postBT),
	)
}

// DirectionTo returns the normalized vector pointing from this vector to to.
func (vec Vector4) DirectionTo(to Vector4) Vector4 {
	return to.Sub(vec).Normalized()
}

// DistanceSquaredTo returns the squared distance between this vector and to. Prefer it over
// DistanceTo when comparing distances.
func (vec Vector4) DistanceSquaredTo(to Vector4) Float {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector4) DistanceTo(to Vector4) Float {
	return to.Sub(vec).Length()
}

// Dot returns the dot product of this vector and with.
func (vec Vector4) Dot(with Vector4) Float {
	return vec.X*with.X + vec.Y*with.Y + vec.Z*with.Z + vec.W*with.W
}

// Floor returns a copy of the Vector4 with all components rounded down (towards negative
// infinity).
func (vec Vector4) Floor() Vector4 {
	return NewVector4(scalar.Floor(vec.X), scalar.Floor(vec.Y), scalar.Floor(vec.Z), scalar.Floor(vec.W))
}

// Inverse returns the inverse of the vector: (1/X, 1/Y, 1/Z, 1/W). Zero components give
// infinities.
func (vec Vector4) Inverse() Vector4 {
	return NewVector4(1.0/vec.X, 1.0/vec.Y, 1.0/vec.Z, 1.0/vec.W)
}

// IsEqualApprox returns if this vector and to are approximately equal, by comparing each
// component.
func (vec Vector4) IsEqualApprox(to Vector4) bool {
	return scalar.IsEqualApprox(vec.X, to.X) &&
		scalar.IsEqualApprox(vec.Y, to.Y) &&
		scalar.IsEqualApprox(vec.Z, to.Z) &&
		scalar.IsEqualApprox(vec.W, to.W)
}

// IsFinite returns if this vector is finite (neither NaN nor infinite) in all components.
func (vec Vector4) IsFinite() bool {
	return scalar.IsFinite(vec.X) && scalar.IsFinite(vec.Y) &&
		scalar.IsFinite(vec.Z) && scalar.IsFinite(vec.W)
}

// IsNormalized returns if the vector is normalized, i.e. its length is approximately equal to 1.
func (vec Vector4) IsNormalized() bool {
	return scalar.IsEqualApproxTolerance(vec.LengthSquared(), 1, scalar.UnitEpsilon)
}

// IsZeroApprox returns if this vector's values are approximately zero in every component.
func (vec Vector4) IsZeroApprox() bool {
	return scalar.IsZeroApprox(vec.X) && scalar.IsZeroApprox(vec.Y) &&
		scalar.IsZeroApprox(vec.Z) && scalar.IsZeroApprox(vec.W)
}

// Length returns the length (magnitude) of the Vector4.
func (vec Vector4) Length() Float {
	return scalar.Sqrt(vec.LengthSquared())
}

// LengthSquared returns the squared length of the Vector4. Prefer it over Length when comparing
// lengths.
func (vec Vector4) LengthSquared() Float {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z + vec.W*vec.W
}

// Lerp returns the result of the linear interpolation between this vector and to by amount
// weight (generally between 0 and 1).
func (vec Vector4) Lerp(to Vector4, weight Float) Vector4 {
	return NewVector4(
		scalar.Lerp(vec.X, to.X, weight),
		scalar.Lerp(vec.Y, to.Y, weight),
		scalar.Lerp(vec.Z, to.Z, weight),
		scalar.Lerp(vec.W, to.W, weight),
	)
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector4) Max(with Vector4) Vector4 {
	return NewVector4(
		scalar.Max(vec.X, with.X),
		scalar.Max(vec.Y, with.Y),
		scalar.Max(vec.Z, with.Z),
		scalar.Max(vec.W, with.W),
	)
}

// MaxAxisIndex returns the axis of the vector's highest value. If all components are equal,
// this returns AxisX.
func (vec Vector4) MaxAxisIndex() Axis {
	if vec.X < vec.Y {
		if vec.Y < vec.Z {
			if vec.Z < vec.W {
				return AxisW
			}
			return AxisZ
		}
		if vec.Y < vec.W {
			return AxisW
		}
		return AxisY
	}
	if vec.X < vec.Z {
		if vec.Z < vec.W {
			return AxisW
		}
		return AxisZ
	}
	if vec.X < vec.W {
		return AxisW
	}
	return AxisX
}

// Maxf returns the component-wise maximum of this vector and the scalar with.
func (vec Vector4) Maxf(with Float) Vector4 {
	return NewVector4(
		scalar.Max(vec.X, with),
		scalar.Max(vec.Y, with),
		scalar.Max(vec.Z, with),
		scalar.Max(vec.W, with),
	)
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector4) Min(with Vector4) Vector4 {
	return NewVector4(
		scalar.Min(vec.X, with.X),
		scalar.Min(vec.Y, with.Y),
		scalar.Min(vec.Z, with.Z),
		scalar.Min(vec.W, with.W),
	)
}

// MinAxisIndex returns the axis of the vector's lowest value. If all components are equal,
// this returns AxisW.
func (vec Vector4) MinAxisIndex() Axis {
	if vec.X < vec.Y {
		if vec.X < vec.Z {
			if vec.X < vec.W {
				return AxisX
			}
			return AxisW
		}
		if vec.Z < vec.W {
			return AxisZ
		}
		return AxisW
	}
	if vec.Y < vec.Z {
		if vec.Y < vec.W {
			return AxisY
		}
		return AxisW
	}
	if vec.Z < vec.W {
		return AxisZ
	}
	return AxisW
}

// Minf returns the component-wise minimum of this vector and the scalar with.
func (vec Vector4) Minf(with Float) Vector4 {
	return NewVector4(
		scalar.Min(vec.X, with),
		scalar.Min(vec.Y, with),
		scalar.Min(vec.Z, with),
		scalar.Min(vec.W, with),
	)
}

// Normalized returns a copy of the vector scaled to unit length. Returns a zero vector if the
// vector's length is 0.
func (vec Vector4) Normalized() Vector4 {
	lengthSq := vec.LengthSquared()
	if lengthSq == 0 {
		return Vec4Zero
	}
	return vec.Divf(scalar.Sqrt(lengthSq))
}

// Posmod returns a vector composed of the positive modulo of this vector's components and mod.
func (vec Vector4) Posmod(mod Float) Vector4 {
	return NewVector4(
		scalar.Posmod(vec.X, mod),
		scalar.Posmod(vec.Y, mod),
		scalar.Posmod(vec.Z, mod),
		scalar.Posmod(vec.W, mod),
	)
}

// Posmodv returns a vector composed of the positive modulo of this vector's components and
// modv's components.
func (vec Vector4) Posmodv(modv Vector4) Vector4 {
	return NewVector4(
		scalar.Posmod(vec.X, modv.X),
		scalar.Posmod(vec.Y, modv.Y),
		scalar.Posmod(vec.Z, modv.Z),
		scalar.Posmod(vec.W, modv.W),
	)
}

// Round returns a copy of the Vector4 with all components rounded to the nearest integer, with
// halfway cases rounded away from zero.
func (vec Vector4) Round() Vector4 {
	return NewVector4(scalar.Round(vec.X), scalar.Round(vec.Y), scalar.Round(vec.Z), scalar.Round(vec.W))
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector4) Sign() Vector4 {
	return NewVector4(scalar.Sign(vec.X), scalar.Sign(vec.Y), scalar.Sign(vec.Z), scalar.Sign(vec.W))
}

// Snapped returns a copy of the vector with each component snapped to the nearest multiple of
// the corresponding component in step.
func (vec Vector4) Snapped(step Vector4) Vector4 {
	return NewVector4(
		scalar.Snapped(vec.X, step.X),
		scalar.Snapped(vec.Y, step.Y),
		scalar.Snapped(vec.Z, step.Z),
		scalar.Snapped(vec.W, step.W),
	)
}

// Snappedf returns a copy of the vector with each component snapped to the nearest multiple of
// step.
func (vec Vector4) Snappedf(step Float) Vector4 {
	return NewVector4(
		scalar.Snapped(vec.X, step),
		scalar.Snapped(vec.Y, step),
		scalar.Snapped(vec.Z, step),
		scalar.Snapped(vec.W, step),
	)
}

func (vec Vector4) String() string {
	return fmt.Sprintf("Vector4(%v, %v, %v, %v)", vec.X, vec.Y, vec.Z, vec.W)
}
