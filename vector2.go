package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// Vec2Zero is the zero Vector2, with all components set to 0.
var Vec2Zero = NewVector2(0, 0)

// Vec2One is a Vector2 with all components set to 1.
var Vec2One = NewVector2(1, 1)

// Vec2Inf is a Vector2 with all components set to positive infinity.
var Vec2Inf = NewVector2(scalar.Inf[Float](1), scalar.Inf[Float](1))

// Vec2Left is the left unit vector (-1, 0).
var Vec2Left = NewVector2(-1, 0)

// Vec2Right is the right unit vector (1, 0).
var Vec2Right = NewVector2(1, 0)

// Vec2Up is the up unit vector (0, -1). Y grows downwards in 2D, so this points towards -Y.
var Vec2Up = NewVector2(0, -1)

// Vec2Down is the down unit vector (0, 1).
var Vec2Down = NewVector2(0, 1)

// Vector2 represents a 2D vector, usable for 2D positions, directions, velocities, etc.
// Any Vector2 functions that modify the calling Vector2 return copies of the modified Vector2,
// meaning you can do method-chaining easily.
type Vector2 struct {
	X Float // The X (1st) component of the Vector2
	Y Float // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y Float) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewVector2FromAngle creates a unit Vector2 rotated to the given angle in radians. This is
// equivalent to doing NewVector2(Cos(angle), Sin(angle)) or Vec2Right.Rotated(angle).
func NewVector2FromAngle(angle Float) Vector2 {
	sin, cos := scalar.Sincos(angle)
	return NewVector2(cos, sin)
}

// Add returns a copy of the calling Vector2 with the other Vector2 added to it.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2 with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Mul returns a copy of the calling Vector2, multiplied component-wise by the other Vector2.
func (vec Vector2) Mul(other Vector2) Vector2 {
	vec.X *= other.X
	vec.Y *= other.Y
	return vec
}

// Div returns a copy of the calling Vector2, divided component-wise by the other Vector2.
func (vec Vector2) Div(other Vector2) Vector2 {
	vec.X /= other.X
	vec.Y /= other.Y
	return vec
}

// Scale returns a copy of the calling Vector2, with all components multiplied by the scalar
// provided.
func (vec Vector2) Scale(scalar Float) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Divf returns a copy of the calling Vector2, with all components divided by the scalar provided.
func (vec Vector2) Divf(scalar Float) Vector2 {
	vec.X /= scalar
	vec.Y /= scalar
	return vec
}

// Negated returns a copy of the calling Vector2 with all components flipped in sign.
func (vec Vector2) Negated() Vector2 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// Abs returns a copy of the Vector2 with all components in absolute (positive) values.
func (vec Vector2) Abs() Vector2 {
	vec.X = scalar.Abs(vec.X)
	vec.Y = scalar.Abs(vec.Y)
	return vec
}

// Angle returns this vector's angle with respect to the positive X axis, or (1, 0) vector, in
// radians. Equivalent to the result of Atan2 when called with the vector's Y and X as parameters.
func (vec Vector2) Angle() Float {
	return scalar.Atan2(vec.Y, vec.X)
}

// AngleTo returns the angle to the given vector, in radians.
func (vec Vector2) AngleTo(to Vector2) Float {
	return scalar.Atan2(vec.Cross(to), vec.Dot(to))
}

// AngleToPoint returns the angle between the line connecting the two points and the X axis, in
// radians. vec.AngleToPoint(to) is equivalent to doing to.Sub(vec).Angle().
func (vec Vector2) AngleToPoint(to Vector2) Float {
	return to.Sub(vec).Angle()
}

// Aspect returns the aspect ratio of this vector, the ratio of X to Y.
func (vec Vector2) Aspect() Float {
	return vec.X / vec.Y
}

// BezierInterpolate returns the point at the given t on the cubic Bezier curve defined by this
// vector and the given control1, control2, and end points.
func (vec Vector2) BezierInterpolate(control1, control2, end Vector2, t Float) Vector2 {
	return NewVector2(
		scalar.BezierInterpolate(vec.X, control1.X, control2.X, end.X, t),
		scalar.BezierInterpolate(vec.Y, control1.Y, control2.Y, end.Y, t),
	)
}

// BezierDerivative returns the derivative at the given t on the cubic Bezier curve defined by
// this vector and the given control1, control2, and end points.
func (vec Vector2) BezierDerivative(control1, control2, end Vector2, t Float) Vector2 {
	return NewVector2(
		scalar.BezierDerivative(vec.X, control1.X, control2.X, end.X, t),
		scalar.BezierDerivative(vec.Y, control1.Y, control2.Y, end.Y, t),
	)
}

// Bounce returns the vector "bounced off" from a line defined by the given direction n.
// Bounce performs the operation that most engines and frameworks call reflect().
func (vec Vector2) Bounce(n Vector2) Vector2 {
	return vec.Reflect(n).Negated()
}

// Ceil returns a copy of the Vector2 with all components rounded up (towards positive infinity).
func (vec Vector2) Ceil() Vector2 {
	return NewVector2(scalar.Ceil(vec.X), scalar.Ceil(vec.Y))
}

// Clamp returns a copy of the Vector2 with all components clamped between the components of min
// and max.
func (vec Vector2) Clamp(min, max Vector2) Vector2 {
	return NewVector2(
		scalar.Clamp(vec.X, min.X, max.X),
		scalar.Clamp(vec.Y, min.Y, max.Y),
	)
}

// Clampf returns a copy of the Vector2 with all components clamped between min and max.
func (vec Vector2) Clampf(min, max Float) Vector2 {
	return NewVector2(
		scalar.Clamp(vec.X, min, max),
		scalar.Clamp(vec.Y, min, max),
	)
}

// Cross returns the 2D analog of the cross product for this vector and the other vector: the Z
// component of the 3D cross product of the two vectors extended to 3D. It's negative when the
// other vector is clockwise from this one, positive when counter-clockwise, and zero when
// colinear.
func (vec Vector2) Cross(other Vector2) Float {
	return vec.X*other.Y - vec.Y*other.X
}

// CubicInterpolate performs a cubic interpolation between this vector and b using preA and postB
// as handles, and returns the result at position weight (generally between 0 and 1).
func (vec Vector2) CubicInterpolate(b, preA, postB Vector2, weight Float) Vector2 {
	return NewVector2(
		scalar.CubicInterpolate(vec.X, b.X, preA.X, postB.X, weight),
		scalar.CubicInterpolate(vec.Y, b.Y, preA.Y, postB.Y, weight),
	)
}

// CubicInterpolateInTime performs a cubic interpolation between this vector and b using preA and
// postB as handles, with the handles placed at the given key times. It can perform smoother
// interpolation than CubicInterpolate when the keys aren't evenly spaced.
func (vec Vector2) CubicInterpolateInTime(b, preA, postB Vector2, weight, bT, preAT, postBT Float) Vector2 {
	return NewVector2(
		scalar.CubicInterpolateInTime(vec.X, b.X, preA.X, postB.X, weight, bT, preAT, postBT),
		scalar.CubicInterpolateInTime(vec.Y, b.Y, preA.Y, postB.Y, weight, bT, preAT, postBT),
	)
}

// DirectionTo returns the normalized vector pointing from this vector to to. Equivalent to
// to.Sub(vec).Normalized().
func (vec Vector2) DirectionTo(to Vector2) Vector2 {
	return to.Sub(vec).Normalized()
}

// DistanceSquaredTo returns the squared distance between this vector and to. Prefer it over
// DistanceTo when comparing distances.
func (vec Vector2) DistanceSquaredTo(to Vector2) Float {
	return to.Sub(vec).LengthSquared()
}

// DistanceTo returns the distance between this vector and to.
func (vec Vector2) DistanceTo(to Vector2) Float {
	return to.Sub(vec).Length()
}

// Dot returns the dot product of this vector and with.
func (vec Vector2) Dot(with Vector2) Float {
	return vec.X*with.X + vec.Y*with.Y
}

// Floor returns a copy of the Vector2 with all components rounded down (towards negative
// infinity).
func (vec Vector2) Floor() Vector2 {
	return NewVector2(scalar.Floor(vec.X), scalar.Floor(vec.Y))
}

// Inverse returns the inverse of the vector: (1/X, 1/Y). Zero components give infinities.
func (vec Vector2) Inverse() Vector2 {
	return NewVector2(1.0/vec.X, 1.0/vec.Y)
}

// IsEqualApprox returns if this vector and to are approximately equal, by comparing each
// component.
func (vec Vector2) IsEqualApprox(to Vector2) bool {
	return scalar.IsEqualApprox(vec.X, to.X) && scalar.IsEqualApprox(vec.Y, to.Y)
}

// IsFinite returns if this vector is finite (neither NaN nor infinite) in all components.
func (vec Vector2) IsFinite() bool {
	return scalar.IsFinite(vec.X) && scalar.IsFinite(vec.Y)
}

// IsNormalized returns if the vector is normalized, i.e. its length is approximately equal to 1.
func (vec Vector2) IsNormalized() bool {
	return scalar.IsEqualApproxTolerance(vec.LengthSquared(), 1, scalar.UnitEpsilon)
}

// IsZeroApprox returns if this vector's values are approximately zero in every component. This
// is faster than comparing with IsEqualApprox against a zero vector.
func (vec Vector2) IsZeroApprox() bool {
	return scalar.IsZeroApprox(vec.X) && scalar.IsZeroApprox(vec.Y)
}

// Length returns the length (magnitude) of the Vector2.
func (vec Vector2) Length() Float {
	return scalar.Sqrt(vec.LengthSquared())
}

// LengthSquared returns the squared length of the Vector2. Prefer it over Length when comparing
// lengths.
func (vec Vector2) LengthSquared() Float {
	return vec.X*vec.X + vec.Y*vec.Y
}

// Lerp returns the result of the linear interpolation between this vector and to by amount
// weight (generally between 0 and 1).
func (vec Vector2) Lerp(to Vector2, weight Float) Vector2 {
	return NewVector2(
		scalar.Lerp(vec.X, to.X, weight),
		scalar.Lerp(vec.Y, to.Y, weight),
	)
}

// LimitLength returns a copy of this vector with its length limited to at most length.
func (vec Vector2) LimitLength(length Float) Vector2 {
	l := vec.Length()
	if l > 0 && length < l {
		vec = vec.Divf(l).Scale(length)
	}
	return vec
}

// Max returns the component-wise maximum of this vector and with.
func (vec Vector2) Max(with Vector2) Vector2 {
	return NewVector2(scalar.Max(vec.X, with.X), scalar.Max(vec.Y, with.Y))
}

// MaxAxisIndex returns the axis of the vector's highest value. If both components are equal,
// this returns AxisX.
func (vec Vector2) MaxAxisIndex() Axis {
	if vec.X < vec.Y {
		return AxisY
	}
	return AxisX
}

// Maxf returns the component-wise maximum of this vector and the scalar with.
func (vec Vector2) Maxf(with Float) Vector2 {
	return NewVector2(scalar.Max(vec.X, with), scalar.Max(vec.Y, with))
}

// Min returns the component-wise minimum of this vector and with.
func (vec Vector2) Min(with Vector2) Vector2 {
	return NewVector2(scalar.Min(vec.X, with.X), scalar.Min(vec.Y, with.Y))
}

// MinAxisIndex returns the axis of the vector's lowest value. If both components are equal,
// this returns AxisY.
func (vec Vector2) MinAxisIndex() Axis {
	if vec.X < vec.Y {
		return AxisX
	}
	return AxisY
}

// Minf returns the component-wise minimum of this vector and the scalar with.
func (vec Vector2) Minf(with Float) Vector2 {
	return NewVector2(scalar.Min(vec.X, with), scalar.Min(vec.Y, with))
}

// MoveToward returns a new vector moved toward to by the fixed delta amount. It will not go past
// the target.
func (vec Vector2) MoveToward(to Vector2, delta Float) Vector2 {
	vd := to.Sub(vec)
	length := vd.Length()
	if length <= delta || length < scalar.CmpEpsilon {
		return to
	}
	return vec.Add(vd.Divf(length).Scale(delta))
}

// Normalized returns a copy of the vector scaled to unit length. Equivalent to
// vec.Divf(vec.Length()). Returns (0, 0) if the vector's length is 0.
func (vec Vector2) Normalized() Vector2 {
	lengthSq := vec.LengthSquared()
	if lengthSq == 0 {
		return Vec2Zero
	}
	return vec.Divf(scalar.Sqrt(lengthSq))
}

// Orthogonal returns a perpendicular vector rotated 90 degrees counter-clockwise compared to the
// original, with the same length.
func (vec Vector2) Orthogonal() Vector2 {
	return NewVector2(vec.Y, -vec.X)
}

// PlaneProject returns the projection of the given point onto the line with this vector as its
// normal and d as its distance from the origin.
func (vec Vector2) PlaneProject(d Float, point Vector2) Vector2 {
	return point.Sub(vec.Scale(vec.Dot(point) - d))
}

// Posmod returns a vector composed of the positive modulo of this vector's components and mod.
func (vec Vector2) Posmod(mod Float) Vector2 {
	return NewVector2(scalar.Posmod(vec.X, mod), scalar.Posmod(vec.Y, mod))
}

// Posmodv returns a vector composed of the positive modulo of this vector's components and
// modv's components.
func (vec Vector2) Posmodv(modv Vector2) Vector2 {
	return NewVector2(scalar.Posmod(vec.X, modv.X), scalar.Posmod(vec.Y, modv.Y))
}

// Project returns a new vector resulting from projecting this vector onto the given vector b.
// The result is parallel to b. If b is a zero vector, the result's components are NaN.
func (vec Vector2) Project(b Vector2) Vector2 {
	return b.Scale(vec.Dot(b) / b.LengthSquared())
}

// Reflect returns the result of reflecting the vector from a line defined by the given direction
// vector line. The reflection passes through the line; see Bounce for what most engines call
// reflect().
func (vec Vector2) Reflect(line Vector2) Vector2 {
	return line.Scale(2 * vec.Dot(line)).Sub(vec)
}

// Rotated returns the result of rotating this vector by angle (in radians).
func (vec Vector2) Rotated(angle Float) Vector2 {
	sin, cos := scalar.Sincos(angle)
	return NewVector2(
		vec.X*cos-vec.Y*sin,
		vec.X*sin+vec.Y*cos,
	)
}

// Round returns a copy of the Vector2 with all components rounded to the nearest integer, with
// halfway cases rounded away from zero.
func (vec Vector2) Round() Vector2 {
	return NewVector2(scalar.Round(vec.X), scalar.Round(vec.Y))
}

// Sign returns a new vector with each component set to 1 if it's positive, -1 if it's negative,
// and 0 if it's zero.
func (vec Vector2) Sign() Vector2 {
	return NewVector2(scalar.Sign(vec.X), scalar.Sign(vec.Y))
}

// Slerp returns the result of spherical linear interpolation between this vector and to by
// amount weight (generally between 0 and 1). The lengths interpolate as well. If one or both
// input vectors have zero length, or the vectors are colinear, this behaves like Lerp.
func (vec Vector2) Slerp(to Vector2, weight Float) Vector2 {
	startLengthSq := vec.LengthSquared()
	endLengthSq := to.LengthSquared()
	if startLengthSq == 0 || endLengthSq == 0 {
		// Zero length vectors have no angle, so the best we can do is lerp.
		return vec.Lerp(to, weight)
	}
	startLength := scalar.Sqrt(startLengthSq)
	resultLength := scalar.Lerp(startLength, scalar.Sqrt(endLengthSq), weight)
	angle := vec.AngleTo(to)
	return vec.Rotated(angle * weight).Scale(resultLength / startLength)
}

// Slide returns a new vector resulting from sliding this vector along a line with normal n. The
// result is perpendicular to n, and is this vector minus its projection on n. n must be
// normalized.
func (vec Vector2) Slide(n Vector2) Vector2 {
	return vec.Sub(n.Scale(vec.Dot(n)))
}

// Snapped returns a copy of the vector with each component snapped to the nearest multiple of
// the corresponding component in step.
func (vec Vector2) Snapped(step Vector2) Vector2 {
	return NewVector2(scalar.Snapped(vec.X, step.X), scalar.Snapped(vec.Y, step.Y))
}

// Snappedf returns a copy of the vector with each component snapped to the nearest multiple of
// step.
func (vec Vector2) Snappedf(step Float) Vector2 {
	return NewVector2(scalar.Snapped(vec.X, step), scalar.Snapped(vec.Y, step))
}

func (vec Vector2) String() string {
	return fmt.Sprintf("Vector2(%v, %v)", vec.X, vec.Y)
}
