package spatial

import (
	"fmt"
	"math"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec2iZero is the zero Vector2i, with all components set to 0.
var Vec2iZero = NewVector2i(0, 0)

// Vec2iOne is a Vector2i with all components set to 1.
var Vec2iOne = NewVector2i(1, 1)

// Vec2iMin is a Vector2i with all components set to the lowest representable value.
var Vec2iMin = NewVector2i(math.MinInt32, math.MinInt32)

// Vec2iMax is a Vector2i with all components set to the highest representable value.
var Vec2iMax = NewVector2i(math.MaxInt32, math.MaxInt32)

// Vec2iLeft is the left unit vector (-1, 0).
var Vec2iLeft = NewVector2i(-1, 0)

// Vec2iRight is the right unit vector (1, 0).
var Vec2iRight = NewVector2i(1, 0)

// Vec2iUp is the up unit vector (0, -1). Y grows downwards in 2D, so this points towards -Y.
var Vec2iUp = NewVector2i(0, -1)

// Vec2iDown is the down unit vector (0, 1).
var Vec2iDown = NewVector2i(0, 1)

// Vector2i is the integer counterpart of Vector2, usable for grid coordinates, pixel positions,
// and anywhere exact integer math is wanted.
type Vector2i struct {
	X int32 // The X (1st) component of the Vector2i
	Y int32 // The Y (2nd) component of the Vector2i
}

// NewVector2i creates a new Vector2i with the specified x and y components.
func NewVector2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2i returns this Vector2 with its components truncated to integers.
func (vec Vector2) Vector2i() Vector2i {
	return NewVector2i(int32(vec.X), int32(vec.Y))
}

// Vector2 returns this Vector2i converted to a float Vector2.
func (vec Vector2i) Vector2() Vector2 {
	return NewVector2(Float(vec.X), Float(vec.Y))
}

// Add returns a copy of the calling Vector2i with the other Vector2i added to it.
func (vec Vector2i) Add(other Vector2i) Vector2i {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2i with the other Vector2i subtracted from it.
func (vec Vector2i) Sub(other Vector2i) Vector2i {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Mul returns a copy of the calling Vector2i, multiplied component-wise by the other Vector2i.
func (vec Vector2i) Mul(other Vector2i) Vector2i {
	vec.X *= other.X
	vec.Y *= other.Y
	return vec
}

// Scale returns a copy of the calling Vector2i with all components multiplied by the factor
// provided.
func (vec Vector2i) Scale(factor int32) Vector2i {
	vec.X *= factor
	vec.Y *= factor
	return vec
}

// Negated returns a copy of the calling Vector2i with all components flipped in sign.
func (vec Vector2i) Negated() Vector2i {
	return NewVector2i(-vec.X, -vec.Y)
}

// Abs returns a copy of the Vector2i with all components in absolute (positive) values.
func (vec Vector2i) Abs() Vector2i {
	return NewVector2i(scalar.Abs(vec.X), scalar.Abs(vec.Y))
}

// Aspect returns the aspect ratio of this vector, the ratio of X to Y.
func (vec Vector2i) Aspect() Float {
	return Float(vec.X) / Float(vec.Y)
}

// Clamp returns a copy of the Vector2i with all components clamped between the components of
// min and max.
func (vec Vector2i) Clamp(min, max Vector2i) Vector2i {
	return NewVector2i(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
	)
}

// Clampi returns a copy of the Vector2i with all components clamped between min and max.
func (vec Vector2i) Clampi(min, max int32) Vector2i {
	return NewVector2i(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
	)
}

// DistanceSquaredTo returns the squared distance between this vector and to.
func (vec Vector2i) DistanceSquaredTo(to Vector2i) int32 {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector2i) DistanceTo(to Vector2i) Float {
	return to.Sub(vec).Length()
}

// Length returns the length (magnitude) of the Vector2i.
func (vec Vector2i) Length() Float {
	return scalar.Sqrt(Float(vec.LengthSquared()))
}

// LengthSquared returns the squared length of the Vector2i. Prefer it over Length when
// comparing lengths.
func (vec Vector2i) LengthSquared() int32 {
	return vec.X*vec.X + vec.Y*vec.Y
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector2i) Max(with Vector2i) Vector2i {
	return NewVector2i(scalar.Max(vec.X, with.X), scalar.Max(vec.Y, with.Y))
}

// MaxAxisIndex returns the axis of the vector's highest value. If both components are equal,
// this returns AxisX.
func (vec Vector2i) MaxAxisIndex() Axis {
	if vec.X < vec.Y {
		return AxisY
	}
	return AxisX
}

// Maxi returns the component-wise maximum of this vector and the scalar with.
func (vec Vector2i) Maxi(with int32) Vector2i {
	return NewVector2i(scalar.Max(vec.X, with), scalar.Max(vec.Y, with))
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector2i) Min(with Vector2i) Vector2i {
	return NewVector2i(scalar.Min(vec.X, with.X), scalar.Min(vec.Y, with.Y))
}

// MinAxisIndex returns the axis of the vector's lowest value. If both components are equal,
// this returns AxisY.
func (vec Vector2i) MinAxisIndex() Axis {
	if vec.X < vec.Y {
		return AxisX
	}
	return AxisY
}

// Mini returns the component-wise minimum of this vector and the scalar with.
func (vec Vector2i) Mini(with int32) Vector2i {
	return NewVector2i(scalar.Min(vec.X, with), scalar.Min(vec.Y, with))
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector2i) Sign() Vector2i {
	return NewVector2i(scalar.Sign(vec.X), scalar.Sign(vec.Y))
}

// Snapped returns a copy of the vector with each component snapped to the closest multiple of
// the corresponding component in step.
func (vec Vector2i) Snapped(step Vector2i) Vector2i {
	return NewVector2i(scalar.SnappedInt(vec.X, step.X), scalar.SnappedInt(vec.Y, step.Y))
}

// Snappedi returns a copy of the vector with each component snapped to the closest multiple of
// step.
func (vec Vector2i) Snappedi(step int32) Vector2i {
	return NewVector2i(scalar.SnappedInt(vec.X, step), scalar.SnappedInt(vec.Y, step))
}

func (vec Vector2i) String() string {
	return fmt.Sprintf("Vector2i(%d, %d)", vec.X, vec.Y)
}
