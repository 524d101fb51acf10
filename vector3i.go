package spatial

import (
	"fmt"
	"math"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec3iZero is the zero Vector3i, with all components set to 0.
var Vec3iZero = NewVector3i(0, 0, 0)

// Vec3iOne is a Vector3i with all components set to 1.
var Vec3iOne = NewVector3i(1, 1, 1)

// Vec3iMin is a Vector3i with all components set to the lowest representable value.
var Vec3iMin = NewVector3i(math.MinInt32, math.MinInt32, math.MinInt32)

// Vec3iMax is a Vector3i with all components set to the highest representable value.
var Vec3iMax = NewVector3i(math.MaxInt32, math.MaxInt32, math.MaxInt32)

// Vec3iLeft is the left unit vector (-1, 0, 0).
var Vec3iLeft = NewVector3i(-1, 0, 0)

// Vec3iRight is the right unit vector (1, 0, 0).
var Vec3iRight = NewVector3i(1, 0, 0)

// Vec3iUp is the up unit vector (0, 1, 0).
var Vec3iUp = NewVector3i(0, 1, 0)

// Vec3iDown is the down unit vector (0, -1, 0).
var Vec3iDown = NewVector3i(0, -1, 0)

// Vec3iForward is the forward unit vector (0, 0, -1).
var Vec3iForward = NewVector3i(0, 0, -1)

// Vec3iBack is the back unit vector (0, 0, 1).
var Vec3iBack = NewVector3i(0, 0, 1)

// Vector3i is the integer counterpart of Vector3, usable for voxel coordinates, chunk indices,
// and anywhere exact integer math is wanted.
type Vector3i struct {
	X int32 // The X (1st) component of the Vector3i
	Y int32 // The Y (2nd) component of the Vector3i
	Z int32 // The Z (3rd) component of the Vector3i
}

// NewVector3i creates a new Vector3i with the specified x, y, and z components.
func NewVector3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Vector3i returns this Vector3 with its components truncated to integers.
func (vec Vector3) Vector3i() Vector3i {
	return NewVector3i(int32(vec.X), int32(vec.Y), int32(vec.Z))
}

// Vector3 returns this Vector3i converted to a float Vector3.
func (vec Vector3i) Vector3() Vector3 {
	return NewVector3(Float(vec.X), Float(vec.Y), Float(vec.Z))
}

// Add returns a copy of the calling Vector3i with the other Vector3i added to it.
func (vec Vector3i) Add(other Vector3i) Vector3i {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3i with the other Vector3i subtracted from it.
func (vec Vector3i) Sub(other Vector3i) Vector3i {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Mul returns a copy of the calling Vector3i, multiplied component-wise by the other Vector3i.
func (vec Vector3i) Mul(other Vector3i) Vector3i {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Scale returns a copy of the calling Vector3i with all components multiplied by the factor
// provided.
func (vec Vector3i) Scale(factor int32) Vector3i {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	return vec
}

// Negated returns a copy of the calling Vector3i with all components flipped in sign.
func (vec Vector3i) Negated() Vector3i {
	return NewVector3i(-vec.X, -vec.Y, -vec.Z)
}

// Abs returns a copy of the Vector3i with all components in absolute (positive) values.
func (vec Vector3i) Abs() Vector3i {
	return NewVector3i(scalar.Abs(vec.X), scalar.Abs(vec.Y), scalar.Abs(vec.Z))
}

// Clamp returns a copy of the Vector3i with all components clamped between the components of
// min and max.
func (vec Vector3i) Clamp(min, max Vector3i) Vector3i {
	return NewVector3i(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
		scalar.Clamp(vec.Z, min.Z, max.Z),
	)
}

// Clampi returns a copy of the Vector3i with all components clamped between min and max.
func (vec Vector3i) Clampi(min, max int32) Vector3i {
	return NewVector3i(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
		scalar.Clamp(vec.Z, min, max),
	)
}

// DistanceSquaredTo returns the squared distance between this vector and to.
func (vec Vector3i) DistanceSquaredTo(to Vector3i) int32 {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector3i) DistanceTo(to Vector3i) Float {
	return to.Sub(vec).Length()
}

// Length returns the length (magnitude) of the Vector3i.
func (vec Vector3i) Length() Float {
	return scalar.Sqrt(Float(vec.LengthSquared()))
}

// LengthSquared returns the squared length of the Vector3i. Prefer it over Length when
// comparing lengths.
func (vec Vector3i) LengthSquared() int32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector3i) Max(with Vector3i) Vector3i {
	return NewVector3i(
		scalar.Max(vec.X, with.X),
		scalar.Max(vec.Y, with.Y),
		scalar.Max(vec.Z, with.Z),
	)
}

// MaxAxisIndex returns the axis of the vector's highest value. If all components are equal,
// this returns AxisX.
func (vec Vector3i) MaxAxisIndex() Axis {
	if vec.X < vec.Y {
		if vec.Y < vec.Z {
			return AxisZ
		}
		return AxisY
	}
	if vec.X < vec.Z {
		return AxisZ
	}
	return AxisX
}

// Maxi returns the component-wise maximum of this vector and the scalar with.
func (vec Vector3i) Maxi(with int32) Vector3i {
	return NewVector3i(scalar.Max(vec.X, with), scalar.Max(vec.Y, with), scalar.Max(vec.Z, with))
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector3i) Min(with Vector3i) Vector3i {
	return NewVector3i(
		scalar.Min(vec.X, with.X),
		scalar.Min(vec.Y, with.Y),
		scalar.Min(vec.Z, with.Z),
	)
}

// MinAxisIndex returns the axis of the vector's lowest value. If all components are equal,
// this returns AxisZ.
func (vec Vector3i) MinAxisIndex() Axis {
	if vec.X < vec.Y {
		if vec.X < vec.Z {
			return AxisX
		}
		return AxisZ
	}
	if vec.Y < vec.Z {
		return AxisY
	}
	return AxisZ
}

// Mini returns the component-wise minimum of this vector and the scalar with.
func (vec Vector3i) Mini(with int32) Vector3i {
	return NewVector3i(scalar.Min(vec.X, with), scalar.Min(vec.Y, with), scalar.Min(vec.Z, with))
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector3i) Sign() Vector3i {
	return NewVector3i(scalar.Sign(vec.X), scalar.Sign(vec.Y), scalar.Sign(vec.Z))
}

// Snapped returns a copy of the vector with each component snapped to the closest multiple of
// the corresponding component in step.
func (vec Vector3i) Snapped(step Vector3i) Vector3i {
	return NewVector3i(
		scalar.SnappedInt(vec.X, step.X),
		scalar.SnappedInt(vec.Y, step.Y),
		scalar.SnappedInt(vec.Z, step.Z),
	)
}

// Snappedi returns a copy of the vector with each component snapped to the closest multiple of
// step.
func (vec Vector3i) Snappedi(step int32) Vector3i {
	return NewVector3i(
		scalar.SnappedInt(vec.X, step),
		scalar.SnappedInt(vec.Y, step),
		scalar.SnappedInt(vec.Z, step),
	)
}

func (vec Vector3i) String() string {
	return fmt.Sprintf("Vector3i(%d, %d, %d)", vec.X, vec.Y, vec.Z)
}
