package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec3Zero is the zero Vector3, with all components set to 0.
var Vec3Zero = NewVector3(0, 0, 0)

// Vec3One is a Vector3 with all components set to 1.
var Vec3One = NewVector3(1, 1, 1)

// Vec3Inf is a Vector3 with all components set to positive infinity.
var Vec3Inf = NewVector3(scalar.Inf[Float](1), scalar.Inf[Float](1), scalar.Inf[Float](1))

// Vec3Left is the left unit vector (-1, 0, 0); the global direction of west.
var Vec3Left = NewVector3(-1, 0, 0)

// Vec3Right is the right unit vector (1, 0, 0); the global direction of east.
var Vec3Right = NewVector3(1, 0, 0)

// Vec3Up is the up unit vector (0, 1, 0).
var Vec3Up = NewVector3(0, 1, 0)

// Vec3Down is the down unit vector (0, -1, 0).
var Vec3Down = NewVector3(0, -1, 0)

// Vec3Forward is the forward unit vector (0, 0, -1); the global direction of north. Cameras and
// lights face -Z, while 3D assets conventionally face +Z (towards the camera); use the Vec3Model
// vectors when working in asset space.
var Vec3Forward = NewVector3(0, 0, -1)

// Vec3Back is the back unit vector (0, 0, 1); the global direction of south.
var Vec3Back = NewVector3(0, 0, 1)

// Vec3ModelLeft points towards the left side of imported 3D assets.
var Vec3ModelLeft = NewVector3(1, 0, 0)

// Vec3ModelRight points towards the right side of imported 3D assets.
var Vec3ModelRight = NewVector3(-1, 0, 0)

// Vec3ModelTop points towards the top side (up) of imported 3D assets.
var Vec3ModelTop = NewVector3(0, 1, 0)

// Vec3ModelBottom points towards the bottom side (down) of imported 3D assets.
var Vec3ModelBottom = NewVector3(0, -1, 0)

// Vec3ModelFront points towards the front side (facing forward) of imported 3D assets.
var Vec3ModelFront = NewVector3(0, 0, 1)

// Vec3ModelRear points towards the rear side (back) of imported 3D assets.
var Vec3ModelRear = NewVector3(0, 0, -1)

// Vector3 represents a 3D vector, usable for positions, directions, velocities, etc.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3,
// meaning you can do method-chaining easily. Vectors are most efficient when copied, so try not
// to store pointers to them if possible.
type Vector3 struct {
	X Float // The X (1st) component of the Vector3
	Y Float // The Y (2nd) component of the Vector3
	Z Float // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z Float) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3 with the other Vector3 added to it.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3 with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Mul returns a copy of the calling Vector3, multiplied component-wise by the other Vector3.
func (vec Vector3) Mul(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Div returns a copy of the calling Vector3, divided component-wise by the other Vector3.
func (vec Vector3) Div(other Vector3) Vector3 {
	vec.X /= other.X
	vec.Y /= other.Y
	vec.Z /= other.Z
	return vec
}

// Scale returns a copy of the calling Vector3, with all components multiplied by the scalar
// provided.
func (vec Vector3) Scale(factor Float) Vector3 {
	vec.X *= factor
	vec.Y *= factor
	vec.Z *= factor
	return vec
}

// Divf returns a copy of the calling Vector3, with all components divided by the scalar provided.
func (vec Vector3) Divf(factor Float) Vector3 {
	vec.X /= factor
	vec.Y /= factor
	vec.Z /= factor
	return vec
}

// Negated returns a copy of the calling Vector3 with all components flipped in sign.
func (vec Vector3) Negated() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Abs returns a copy of the Vector3 with all components in absolute (positive) values.
func (vec Vector3) Abs() Vector3 {
	return NewVector3(scalar.Abs(vec.X), scalar.Abs(vec.Y), scalar.Abs(vec.Z))
}

// AngleTo returns the unsigned minimum angle to the given vector, in radians.
func (vec Vector3) AngleTo(to Vector3) Float {
	return scalar.Atan2(vec.Cross(to).Length(), vec.Dot(to))
}

// BezierInterpolate returns the point at the given t on the cubic Bezier curve defined by this
// vector and the given control1, control2, and end points.
func (vec Vector3) BezierInterpolate(control1, control2, end Vector3, t Float) Vector3 {
	return NewVector3(
		scalar.BezierInterpolate(vec.X, control1.X, control2.X, end.X, t),
		scalar.BezierInterpolate(vec.Y, control1.Y, control2.Y, end.Y, t),
		scalar.BezierInterpolate(vec.Z, control1.Z, control2.Z, end.Z, t),
	)
}

// BezierDerivative returns the derivative at the given t on the cubic Bezier curve defined by
// this vector and the given control1, control2, and end points.
func (vec Vector3) BezierDerivative(control1, control2, end Vector3, t Float) Vector3 {
	return NewVector3(
		scalar.BezierDerivative(vec.X, control1.X, control2.X, end.X, t),
		scalar.BezierDerivative(vec.Y, control1.Y, control2.Y, end.Y, t),
		scalar.BezierDerivative(vec.Z, control1.Z, control2.Z, end.Z, t),
	)
}

// Bounce returns the vector "bounced off" from a plane defined by the given normal n.
// Bounce performs the operation that most engines and frameworks call reflect().
func (vec Vector3) Bounce(n Vector3) Vector3 {
	return vec.Reflect(n).Negated()
}

// Ceil returns a copy of the Vector3 with all components rounded up (towards positive infinity).
func (vec Vector3) Ceil() Vector3 {
	return NewVector3(scalar.Ceil(vec.X), scalar.Ceil(vec.Y), scalar.Ceil(vec.Z))
}

// Clamp returns a copy of the Vector3 with all components clamped between the components of min
// and max.
func (vec Vector3) Clamp(min, max Vector3) Vector3 {
	return NewVector3(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
		scalar.Clamp(vec.Z, min.Z, max.Z),
	)
}

// Clampf returns a copy of the Vector3 with all components clamped between min and max.
func (vec Vector3) Clampf(min, max Float) Vector3 {
	return NewVector3(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
		scalar.Clamp(vec.Z, min, max),
	)
}

// Cross returns the cross product of this vector and with: a vector perpendicular to both,
// following the right-handed coordinate system. Parallel vectors give a zero vector.
func (vec Vector3) Cross(with Vector3) Vector3 {
	return NewVector3(
		vec.Y*with.Z-vec.Z*with.Y,
		vec.Z*with.X-vec.X*with.Z,
		vec.X*with.Y-vec.Y*with.X,
	)
}

// CubicInterpolate performs a cubic interpolation between this vector and b using preA and postB
// as handles, and returns the result at position weight (generally between 0 and 1).
func (vec Vector3) CubicInterpolate(b, preA, postB Vector3, weight Float) Vector3 {
	return NewVector3(
		scalar.CubicInterpolate(vec.X, b.X, preA.X, postB.X, weight),
		scalar.CubicInterpolate(vec.Y, b.Y, preA.Y, postB.Y, weight),
		scalar.CubicInterpolate(vec.Z, b.Z, preA.Z, postB.Z, weight),
	)
}

// CubicInterpolateInTime performs a cubic interpolation between this vector and b using preA and
// postB as handles, with the handles placed at the given key times. It can perform smoother
// interpolation than CubicInterpolate when the keys aren't evenly spaced.
func (vec Vector3) CubicInterpolateInTime(b, preA, postB Vector3, weight, bT, preAT, postBT Float) Vector3 {
	return NewVector3(
		scalar.CubicInterpolateInTime(vec.X, b.X, preA.X, postB.X, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.Y, b.Y, preA.Y, postB.Y, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.Z, b.Z, preA.Z, postB.Z, weight, bT, preAT, postBT),
	)
}

// DirectionTo returns the normalized vector pointing from this vector to to. Equivalent to
// to.Sub(vec).Normalized().
func (vec Vector3) DirectionTo(to Vector3) Vector3 {
	return to.Sub(vec).Normalized()
}

// DistanceSquaredTo returns the squared distance between this vector and to. Prefer it over
// DistanceTo when comparing distances.
func (vec Vector3) DistanceSquaredTo(to Vector3) Float {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector3) DistanceTo(to Vector3) Float {
	return to.Sub(vec).Length()
}

// Dot returns the dot product of this vector and with. The dot product is 0 at a right angle,
// greater than 0 for narrower angles, and less than 0 for wider angles. For unit vectors the
// result ranges from -1 (opposite directions) to 1 (aligned).
func (vec Vector3) Dot(with Vector3) Float {
	return vec.X*with.X + vec.Y*with.Y + vec.Z*with.Z
}

// Floor returns a copy of the Vector3 with all components rounded down (towards negative
// infinity).
func (vec Vector3) Floor() Vector3 {
	return NewVector3(scalar.Floor(vec.X), scalar.Floor(vec.Y), scalar.Floor(vec.Z))
}

// Inverse returns the inverse of the vector: (1/X, 1/Y, 1/Z). Zero components give infinities.
func (vec Vector3) Inverse() Vector3 {
	return NewVector3(1.0/vec.X, 1.0/vec.Y, 1.0/vec.Z)
}

// IsEqualApprox returns if this vector and to are approximately equal, by comparing each
// component.
func (vec Vector3) IsEqualApprox(to Vector3) bool {
	return scalar.IsEqualApprox(vec.X, to.X) &&
		scalar.IsEqualApprox(vec.Y, to.Y) &&
		scalar.IsEqualApprox(vec.Z, to.Z)
}

// IsFinite returns if this vector is finite (neither NaN nor infinite) in all components.
func (vec Vector3) IsFinite() bool {
	return scalar.IsFinite(vec.X) && scalar.IsFinite(vec.Y) && scalar.IsFinite(vec.Z)
}

// IsNormalized returns if the vector is normalized, i.e. its length is approximately equal to 1.
func (vec Vector3) IsNormalized() bool {
	return scalar.IsEqualApproxTolerance(vec.LengthSquared(), 1, scalar.UnitEpsilon)
}

// IsZeroApprox returns if this vector's values are approximately zero in every component. This
// is faster than comparing with IsEqualApprox against a zero vector.
func (vec Vector3) IsZeroApprox() bool {
	return scalar.IsZeroApprox(vec.X) && scalar.IsZeroApprox(vec.Y) && scalar.IsZeroApprox(vec.Z)
}

// Length returns the length (magnitude) of the Vector3.
func (vec Vector3) Length() Float {
	return scalar.Sqrt(vec.LengthSquared())
}

// LengthSquared returns the squared length of the Vector3. Prefer it over Length when comparing
// lengths.
func (vec Vector3) LengthSquared() Float {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Lerp returns the result of the linear interpolation between this vector and to by amount
// weight (generally between 0 and 1).
func (vec Vector3) Lerp(to Vector3, weight Float) Vector3 {
	return NewVector3(
		scalar.Lerp(vec.X, to.X, weight),
		scalar.Lerp(vec.Y, to.Y, weight),
		scalar.Lerp(vec.Z, to.Z, weight),
	)
}

// LimitLength returns a copy of this vector with its length limited to at most length.
func (vec Vector3) LimitLength(length Float) Vector3 {
	l := vec.Length()
	if l > 0 && length < l {
		vec = vec.Divf(l).Scale(length)
	}
	return vec
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector3) Max(with Vector3) Vector3 {
	return NewVector3(
		scalar.Max(vec.X, with.X),
		scalar.Max(vec.Y, with.Y),
		scalar.Max(vec.Z, with.Z),
	)
}

// MaxAxisIndex returns the axis of the vector's highest value. If all components are equal,
// this returns AxisX.
func (vec Vector3) MaxAxisIndex() Axis {
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

// Maxf returns the component-wise maximum of this vector and the scalar with.
func (vec Vector3) Maxf(with Float) Vector3 {
	return NewVector3(scalar.Max(vec.X, with), scalar.Max(vec.Y, with), scalar.Max(vec.Z, with))
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector3) Min(with Vector3) Vector3 {
	return NewVector3(
		scalar.Min(vec.X, with.X),
		scalar.Min(vec.Y, with.Y),
		scalar.Min(vec.Z, with.Z),
	)
}

// MinAxisIndex returns the axis of the vector's lowest value. If all components are equal,
// this returns AxisZ.
func (vec Vector3) MinAxisIndex() Axis {
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

// Minf returns the component-wise minimum of this vector and the scalar with.
func (vec Vector3) Minf(with Float) Vector3 {
	return NewVector3(scalar.Min(vec.X, with), scalar.Min(vec.Y, with), scalar.Min(vec.Z, with))
}

// MoveToward returns a new vector moved toward to by the fixed delta amount. It will not go past
// the target.
func (vec Vector3) MoveToward(to Vector3, delta Float) Vector3 {
	vd := to.Sub(vec)
	length := vd.Length()
	if length <= delta || length < scalar.CmpEpsilon {
		return to
	}
	return vec.Add(vd.Divf(length).Scale(delta))
}

// Normalized returns a copy of the vector scaled to unit length. Equivalent to
// vec.Divf(vec.Length()). Returns (0, 0, 0) if the vector's length is 0. The result may be
// inaccurate for vectors whose length is near zero.
func (vec Vector3) Normalized() Vector3 {
	lengthSq := vec.LengthSquared()
	if lengthSq == 0 {
		return Vec3Zero
	}
	return vec.Divf(scalar.Sqrt(lengthSq))
}

// OctahedronEncode returns the octahedral-encoded (oct32) form of this Vector3 as a Vector2.
// Since a Vector2 occupies 1/3 less memory, this form of compression can be used to pass around
// large amounts of normalized vectors cheaply. The vector must be normalized; encoding is lossy.
func (vec Vector3) OctahedronEncode() Vector2 {
	n := vec.Divf(scalar.Abs(vec.X) + scalar.Abs(vec.Y) + scalar.Abs(vec.Z))
	var o Vector2
	if n.Z >= 0 {
		o = NewVector2(n.X, n.Y)
	} else {
		signX := Float(-1)
		if n.X >= 0 {
			signX = 1
		}
		signY := Float(-1)
		if n.Y >= 0 {
			signY = 1
		}
		o = NewVector2((1-scalar.Abs(n.Y))*signX, (1-scalar.Abs(n.X))*signY)
	}
	o.X = o.X*0.5 + 0.5
	o.Y = o.Y*0.5 + 0.5
	return o
}

// OctahedronDecode returns the Vector3 from an octahedral-compressed form created with
// OctahedronEncode.
func OctahedronDecode(uv Vector2) Vector3 {
	f := NewVector2(uv.X*2-1, uv.Y*2-1)
	n := NewVector3(f.X, f.Y, 1-scalar.Abs(f.X)-scalar.Abs(f.Y))
	t := scalar.Clamp(-n.Z, 0, 1)
	if n.X >= 0 {
		n.X -= t
	} else {
		n.X += t
	}
	if n.Y >= 0 {
		n.Y -= t
	} else {
		n.Y += t
	}
	return n.Normalized()
}

// Outer returns the outer product of this vector with with, as a Basis.
func (vec Vector3) Outer(with Vector3) Basis {
	return NewBasisFromRows(
		NewVector3(vec.X*with.X, vec.X*with.Y, vec.X*with.Z),
		NewVector3(vec.Y*with.X, vec.Y*with.Y, vec.Y*with.Z),
		NewVector3(vec.Z*with.X, vec.Z*with.Y, vec.Z*with.Z),
	)
}

// Posmod returns a vector composed of the positive modulo of this vector's components and mod.
func (vec Vector3) Posmod(mod Float) Vector3 {
	return NewVector3(
		scalar.Posmod(vec.X, mod),
		scalar.Posmod(vec.Y, mod),
		scalar.Posmod(vec.Z, mod),
	)
}

// Posmodv returns a vector composed of the positive modulo of this vector's components and
// modv's components.
func (vec Vector3) Posmodv(modv Vector3) Vector3 {
	return NewVector3(
		scalar.Posmod(vec.X, modv.X),
		scalar.Posmod(vec.Y, modv.Y),
		scalar.Posmod(vec.Z, modv.Z),
	)
}

// Project returns a new vector resulting from projecting this vector onto the given vector b.
// The result is parallel to b. If b is a zero vector, the result's components are NaN.
func (vec Vector3) Project(b Vector3) Vector3 {
	return b.Scale(vec.Dot(b) / b.LengthSquared())
}

// Reflect returns the result of reflecting the vector through a plane defined by the given
// normal vector n. The reflection passes through the plane; see Bounce for what most engines
// call reflect().
func (vec Vector3) Reflect(n Vector3) Vector3 {
	return n.Scale(2 * vec.Dot(n)).Sub(vec)
}

// Rotated returns the result of rotating this vector around the given axis by angle (in
// radians). The axis must be a normalized vector.
func (vec Vector3) Rotated(axis Vector3, angle Float) Vector3 {
	return NewBasisFromAxisAngle(axis, angle).Xform(vec)
}

// Round returns a copy of the Vector3 with all components rounded to the nearest integer, with
// halfway cases rounded away from zero.
func (vec Vector3) Round() Vector3 {
	return NewVector3(scalar.Round(vec.X), scalar.Round(vec.Y), scalar.Round(vec.Z))
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector3) Sign() Vector3 {
	return NewVector3(scalar.Sign(vec.X), scalar.Sign(vec.Y), scalar.Sign(vec.Z))
}

// SignedAngleTo returns the signed angle to the given vector, in radians. The angle is positive
// in a counter-clockwise direction and negative in a clockwise direction when viewed from the
// side specified by the axis.
func (vec Vector3) SignedAngleTo(to, axis Vector3) Float {
	crossTo := vec.Cross(to)
	unsignedAngle := scalar.Atan2(crossTo.Length(), vec.Dot(to))
	if crossTo.Dot(axis) < 0 {
		return -unsignedAngle
	}
	return unsignedAngle
}

// Slerp returns the result of spherical linear interpolation between this vector and to by
// amount weight (generally between 0 and 1). The lengths interpolate as well. If one or both
// input vectors have zero length, or the vectors are colinear, this behaves like Lerp.
func (vec Vector3) Slerp(to Vector3, weight Float) Vector3 {
	startLengthSq := vec.LengthSquared()
	endLengthSq := to.LengthSquared()
	if startLengthSq == 0 || endLengthSq == 0 {
		// Zero length vectors have no angle, so the best we can do is lerp.
		return vec.Lerp(to, weight)
	}
	axis := vec.Cross(to)
	axisLengthSq := axis.LengthSquared()
	if axisLengthSq == 0 {
		// Colinear vectors have no rotation axis or angle between them, so the best we can do is lerp.
		return vec.Lerp(to, weight)
	}
	axis = axis.Divf(scalar.Sqrt(axisLengthSq))
	startLength := scalar.Sqrt(startLengthSq)
	resultLength := scalar.Lerp(startLength, scalar.Sqrt(endLengthSq), weight)
	angle := vec.AngleTo(to)
	return vec.Rotated(axis, angle*weight).Scale(resultLength / startLength)
}

// Slide returns a new vector resulting from sliding this vector along a plane with normal n. The
// result is perpendicular to n, and is this vector minus its projection on n. n must be
// normalized.
func (vec Vector3) Slide(n Vector3) Vector3 {
	return vec.Sub(n.Scale(vec.Dot(n)))
}

// Snapped returns a copy of the vector with each component snapped to the nearest multiple of
// the corresponding component in step.
func (vec Vector3) Snapped(step Vector3) Vector3 {
	return NewVector3(
		scalar.Snapped(vec.X, step.X),
		scalar.Snapped(vec.Y, step.Y),
		scalar.Snapped(vec.Z, step.Z),
	)
}

// Snappedf returns a copy of the vector with each component snapped to the nearest multiple of
// step.
func (vec Vector3) Snappedf(step Float) Vector3 {
	return NewVector3(
		scalar.Snapped(vec.X, step),
		scalar.Snapped(vec.Y, step),
		scalar.Snapped(vec.Z, step),
	)
}

func (vec Vector3) String() string {
	return fmt.Sprintf("Vector3(%v, %v, %v)", vec.X, vec.Y, vec.Z)
}
