package spatial

import (
	"fmt"
	"math"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec4iZero is the zero Vector4i, with all components set to 0.
var Vec4iZero = NewVector4i(0, 0, 0, 0)

// Vec4iOne is a Vector4i with all components set to 1.
var Vec4iOne = NewVector4i(1, 1, 1, 1)

// Vec4iMin is a Vector4i with all components set to the lowest representable value.
var Vec4iMin = NewVector4i(math.MinInt32, math.MinInt32, math.MinInt32, math.MinInt32)

// Vec4iMax is a Vector4i with all components set to the highest representable value.
var Vec4iMax = NewVector4i(math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32)

// Vector4i is the integer counterpart of Vector4.
type Vector4i struct {
	X int32 // The X (1st) component of the Vector4i
	Y int32 // The Y (2nd) component of the Vector4i
	Z int32 // The Z (3rd) component of the Vector4i
	W int32 // The W (4th) component of the Vector4i
}

// NewVector4i creates a new Vector4i with the specified x, y, z, and w components.
func NewVector4i(x, y, z, w int32) Vector4i {
	return Vector4i{X: x, Y: y, Z: z, W: w}
}

// Vector4i returns this Vector4 with its components truncated to integers.
func (vec Vector4) Vector4i() Vector4i {
	return NewVector4i(int32(vec.X), int32(vec.Y), int32(vec.Z), int32(vec.W))
}

// Vector4 returns this Vector4i converted to a float Vector4.
func (vec Vector4i) Vector4() Vector4 {
	return NewVector4(Float(vec.X), Float(vec.Y), Float(vec.Z), Float(vec.W))
}

// Add returns a copy of the calling Vector4i with the other Vector4i added to it.
func (vec Vector4i) Add(other Vector4i) Vector4i {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector4i with the other Vector4i subtracted from it.
func (vec Vector4i) Sub(other Vector4i) Vector4i {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Mul returns a copy of the calling Vector4i, multiplied component-wise by the other Vector4i.
func (vec Vector4i) Mul(other Vector4i) Vector4i {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	vec.W *= other.W
	return vec
}

// Scale returns a copy of the calling Vector4i with all components multiplied by the factor
// provided.
func (vec Vector4i) Scale(factor int32) Vector4i {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	vec.W *= factor
	return vec
}

// Negated returns a copy of the calling Vector4i with all components flipped in sign.
func (vec Vector4i) Negated() Vector4i {
	return NewVector4i(-vec.X, -vec.Y, -vec.Z, -vec.W)
}

// Abs returns a copy of the Vector4i with all components in absolute (positive) values.
func (vec Vector4i) Abs() Vector4i {
	return NewVector4i(scalar.Abs(vec.X), scalar.Abs(vec.Y), scalar.Abs(vec.Z), scalar.Abs(vec.W))
}

// Clamp returns a copy of the Vector4i with all components clamped between the components of
// min and max.
func (vec Vector4i) Clamp(min, max Vector4i) Vector4i {
	return NewVector4i(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
		scalar.Clamp(vec.Z, min.Z, max.Z),
		scalar.Clamp(vec.W, min.W, max.W),
	)
}

// Clampi returns a copy of the Vector4i with all components clamped between min and max.
func (vec Vector4i) Clampi(min, max int32) Vector4i {
	return NewVector4i(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
		scalar.Clamp(vec.Z, min, max),
		scalar.Clamp(vec.W, min, max),
	)
}

// DistanceSquaredTo returns the squared distance between this vector and to.
func (vec Vector4i) DistanceSquaredTo(to Vector4i) int32 {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector4i) DistanceTo(to Vector4i) Float {
	return to.Sub(vec).Length()
}

// Length returns the length (magnitude) of the Vector4i.
func (vec Vector4i) Length() Float {
	return scalar.Sqrt(Float(vec.LengthSquared()))
}

// LengthSquared returns the squared length of the Vector4i. Prefer it over Length when
// comparing lengths.
func (vec Vector4i) LengthSquared() int32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z + vec.W*vec.W
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector4i) Max(with Vector4i) Vector4i {
	return NewVector4i(
		scalar.Max(vec.X, with.X),
		scalar.Max(vec.Y, with.Y),
		scalar.Max(vec.Z, with.Z),
		scalar.Max(vec.W, with.W),
	)
}

// MaxAxisIndex returns the axis of the vector's highest value. If all components are equal,
// this returns AxisX.
func (vec Vector4i) MaxAxisIndex() Axis {
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

// Maxi returns the component-wise maximum of this vector and the scalar with.
func (vec Vector4i) Maxi(with int32) Vector4i {
	return NewVector4i(
		scalar.Max(vec.X, with),
		scalar.Max(vec.Y, with),
		scalar.Max(vec.Z, with),
		scalar.Max(vec.W, with),
	)
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector4i) Min(with Vector4i) Vector4i {
	return NewVector4i(
		scalar.Min(vec.X, with.X),
		scalar.Min(vec.Y, with.Y),
		scalar.Min(vec.Z, with.Z),
		scalar.Min(vec.W, with.W),
	)
}

// MinAxisIndex returns the axis of the vector's lowest value. If all components are equal,
// this returns AxisW.
func (vec Vector4i) MinAxisIndex() Axis {
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

// Mini returns the component-wise minimum of this vector and the scalar with.
func (vec Vector4i) Mini(with int32) Vector4i {
	return NewVector4i(
		scalar.Min(vec.X, with),
		scalar.Min(vec.Y, with),
		scalar.Min(vec.Z, with),
		scalar.Min(vec.W, with),
	)
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector4i) Sign() Vector4i {
	return NewVector4i(scalar.Sign(vec.X), scalar.Sign(vec.Y), scalar.Sign(vec.Z), scalar.Sign(vec.W))
}

// Snapped returns a copy of the vector with each component snapped to the closest multiple of
// the corresponding component in step.
func (vec Vector4i) Snapped(step Vector4i) Vector4i {
	return NewVector4i(
		scalar.SnappedInt(vec.X, step.X),
		scalar.SnappedInt(vec.Y, step.Y),
		scalar.SnappedInt(vec.Z, step.Z),
		scalar.SnappedInt(vec.W, step.W),
	)
}

// Snappedi returns a copy of the vector with each component snapped to the closest multiple of
// step.
func (vec Vector4i) Snappedi(step int32) Vector4i {
	return NewVector4i(
		scalar.SnappedInt(vec.X, step),
		scalar.SnappedInt(vec.Y, step),
		scalar.SnappedInt(vec.Z, step),
		scalar.SnappedInt(vec.W, step),
	)
}

func (vec Vector4i) String() string {
	return fmt.Sprintf("Vector4i(%d, %d, %d, %d)", vec.X, vec.Y, vec.Z, vec.W)
}
