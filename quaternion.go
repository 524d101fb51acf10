package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// QuatIdentity is the identity quaternion; no rotation.
var QuatIdentity = NewQuaternion(0, 0, 0, 1)

// Quaternion represents a rotation in 3D space in Hamilton convention. Compared to a Basis,
// which can also store scale, a quaternion only stores rotation, in a form that's compact,
// cheap to compose, and doesn't accumulate floating-point error the way stacked matrices do.
// Angle, Axis, and Slerp are all faster than their Basis counterparts.
// Quaternions must be normalized before being used for rotation (see Normalized).
type Quaternion struct {
	X Float // The value along the imaginary i axis
	Y Float // The value along the imaginary j axis
	Z Float // The value along the imaginary k axis
	W Float // The real part of the quaternion
}

// NewQuaternion creates a new Quaternion with the given components. Only normalized
// quaternions represent valid rotations.
func NewQuaternion(x, y, z, w Float) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionFromEuler creates a Quaternion from the given Euler angles (in radians), using
// the YXZ convention: the rotation composes Y (yaw) first, X (pitch) second, and Z (roll) last.
func NewQuaternionFromEuler(euler Vector3) Quaternion {
	halfA1 := euler.Y / 2
	halfA2 := euler.X / 2
	halfA3 := euler.Z / 2

	// R = Y(a1).X(a2).Z(a3) convention for Euler angles.
	// Conversion to quaternion as listed in https://ntrs.nasa.gov/archive/nasa/casi.ntrs.nasa.gov/19770024290.pdf (page A-6)
	// a3 is the angle of the first rotation, following the notation in this reference.

	cosA1 := scalar.Cos(halfA1)
	sinA1 := scalar.Sin(halfA1)
	cosA2 := scalar.Cos(halfA2)
	sinA2 := scalar.Sin(halfA2)
	cosA3 := scalar.Cos(halfA3)
	sinA3 := scalar.Sin(halfA3)

	return NewQuaternion(
		sinA1*cosA2*sinA3+cosA1*sinA2*cosA3,
		sinA1*cosA2*cosA3-cosA1*sinA2*sinA3,
		-sinA1*sinA2*cosA3+cosA1*cosA2*sinA3,
		sinA1*sinA2*sinA3+cosA1*cosA2*cosA3,
	)
}

// NewQuaternionFromAxisAngle creates a Quaternion representing rotation around the axis by the
// given angle, in radians. The axis must be normalized.
func NewQuaternionFromAxisAngle(axis Vector3, angle Float) Quaternion {
	d := axis.Length()
	if d == 0 {
		return NewQuaternion(0, 0, 0, 0)
	}
	sinAngle := scalar.Sin(angle * 0.5)
	cosAngle := scalar.Cos(angle * 0.5)
	s := sinAngle / d
	return NewQuaternion(axis.X*s, axis.Y*s, axis.Z*s, cosAngle)
}

// NewQuaternionFromArc creates a Quaternion representing the shortest arc between arcFrom and
// arcTo; imagine them as two points on the surface of a unit sphere.
func NewQuaternionFromArc(arcFrom, arcTo Vector3) Quaternion {
	c := arcFrom.Cross(arcTo)
	d := arcFrom.Dot(arcTo)

	if d < -1+scalar.CmpEpsilon {
		return NewQuaternion(0, 1, 0, 0)
	}
	s := scalar.Sqrt((1 + d) * 2)
	rs := 1 / s
	return NewQuaternion(c.X*rs, c.Y*rs, c.Z*rs, s*0.5)
}

// Add returns a copy of the calling Quaternion with the other Quaternion's components added
// to it. This doesn't compose rotations; it's element-wise, useful for interpolation math.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Sub returns a copy of the calling Quaternion with the other Quaternion's components
// subtracted from it.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	quat.X -= other.X
	quat.Y -= other.Y
	quat.Z -= other.Z
	quat.W -= other.W
	return quat
}

// Mul returns the Hamilton product of this quaternion and other. The result applies other's
// rotation first, then this quaternion's.
func (quat Quaternion) Mul(other Quaternion) Quaternion {
	return NewQuaternion(
		quat.W*other.X+quat.X*other.W+quat.Y*other.Z-quat.Z*other.Y,
		quat.W*other.Y+quat.Y*other.W+quat.Z*other.X-quat.X*other.Z,
		quat.W*other.Z+quat.Z*other.W+quat.X*other.Y-quat.Y*other.X,
		quat.W*other.W-quat.X*other.X-quat.Y*other.Y-quat.Z*other.Z,
	)
}

// Scale returns a copy of the calling Quaternion with all components multiplied by the factor
// provided.
func (quat Quaternion) Scale(factor Float) Quaternion {
	quat.X *= factor
	quat.Y *= factor
	quat.Z *= factor
	quat.W *= factor
	return quat
}

// Divf returns a copy of the calling Quaternion with all components divided by the factor
// provided.
func (quat Quaternion) Divf(factor Float) Quaternion {
	quat.X /= factor
	quat.Y /= factor
	quat.Z /= factor
	quat.W /= factor
	return quat
}

// Negated returns a copy of the calling Quaternion with all components flipped in sign. The
// negated quaternion represents the same rotation.
func (quat Quaternion) Negated() Quaternion {
	return NewQuaternion(-quat.X, -quat.Y, -quat.Z, -quat.W)
}

// Dot returns the dot product between this quaternion and with.
func (quat Quaternion) Dot(with Quaternion) Float {
	return quat.X*with.X + quat.Y*with.Y + quat.Z*with.Z + quat.W*with.W
}

// Length returns the quaternion's length (magnitude).
func (quat Quaternion) Length() Float {
	return scalar.Sqrt(quat.LengthSquared())
}

// LengthSquared returns the squared length of the quaternion. Prefer it over Length when
// comparing lengths.
func (quat Quaternion) LengthSquared() Float {
	return quat.Dot(quat)
}

// Normalized returns a copy of this quaternion, normalized so its length is 1.
func (quat Quaternion) Normalized() Quaternion {
	return quat.Divf(quat.Length())
}

// IsNormalized returns true if the quaternion's length is approximately 1.
func (quat Quaternion) IsNormalized() bool {
	return scalar.IsEqualApproxTolerance(quat.LengthSquared(), 1, scalar.UnitEpsilon)
}

// Inverse returns the inverse of this quaternion, flipping the sign of every component except
// W. For a normalized quaternion this is the opposite rotation.
func (quat Quaternion) Inverse() Quaternion {
	return NewQuaternion(-quat.X, -quat.Y, -quat.Z, quat.W)
}

// AngleTo returns the angle between this quaternion and to; the magnitude of the angle you'd
// need to rotate by to get from one to the other.
// The floating-point error on this one is abnormally high, so don't expect IsZeroApprox-style
// checks on the result to be reliable.
func (quat Quaternion) AngleTo(to Quaternion) Float {
	d := quat.Dot(to)
	return scalar.Acos(d*d*2 - 1)
}

// Angle returns the angle of the rotation represented by this quaternion. The quaternion must
// be normalized.
func (quat Quaternion) Angle() Float {
	return 2 * scalar.Acos(quat.W)
}

// Axis returns the rotation axis of the rotation represented by this quaternion.
func (quat Quaternion) Axis() Vector3 {
	if scalar.Abs(quat.W) > 1-scalar.CmpEpsilon {
		return NewVector3(quat.X, quat.Y, quat.Z)
	}
	r := 1 / scalar.Sqrt(1-quat.W*quat.W)
	return NewVector3(quat.X*r, quat.Y*r, quat.Z*r)
}

// Euler returns this quaternion's rotation as Euler angles, in radians, for the given
// rotation order.
func (quat Quaternion) Euler(order EulerOrder) Vector3 {
	return NewBasisFromQuaternion(quat).Euler(order)
}

// Exp returns the exponential of this quaternion. The rotation axis of the result is the
// normalized vector part of this quaternion, and the angle is that vector part's length.
func (quat Quaternion) Exp() Quaternion {
	srcV := NewVector3(quat.X, quat.Y, quat.Z)
	theta := srcV.Length()
	srcV = srcV.Normalized()
	if theta < scalar.CmpEpsilon || !srcV.IsNormalized() {
		return NewQuaternion(0, 0, 0, 1)
	}
	return NewQuaternionFromAxisAngle(srcV, theta)
}

// Log returns the logarithm of this quaternion; the rotation axis multiplied by the rotation
// angle lands in the vector part of the result, and the real part is always 0.
func (quat Quaternion) Log() Quaternion {
	srcV := quat.Axis().Scale(quat.Angle())
	return NewQuaternion(srcV.X, srcV.Y, srcV.Z, 0)
}

// Slerp performs a spherical-linear interpolation towards the to quaternion by weight. Both
// quaternions must be normalized. The rotation always takes the shortest path.
func (quat Quaternion) Slerp(to Quaternion, weight Float) Quaternion {
	// calc cosine
	cosom := quat.Dot(to)

	// adjust signs (if necessary)
	to1 := to
	if cosom < 0 {
		cosom = -cosom
		to1 = to.Negated()
	}

	// calculate coefficients
	var scale0, scale1 Float
	if 1-cosom > scalar.CmpEpsilon {
		// standard case (slerp)
		omega := scalar.Acos(cosom)
		sinom := scalar.Sin(omega)
		scale0 = scalar.Sin((1-weight)*omega) / sinom
		scale1 = scalar.Sin(weight*omega) / sinom
	} else {
		// the quaternions are very close, so linear interpolation will do
		scale0 = 1 - weight
		scale1 = weight
	}

	return NewQuaternion(
		scale0*quat.X+scale1*to1.X,
		scale0*quat.Y+scale1*to1.Y,
		scale0*quat.Z+scale1*to1.Z,
		scale0*quat.W+scale1*to1.W,
	)
}

// Slerpni performs a spherical-linear interpolation towards the to quaternion by weight,
// without checking if the rotation path is smaller than 90 degrees. Both quaternions must be
// normalized.
func (quat Quaternion) Slerpni(to Quaternion, weight Float) Quaternion {
	dot := quat.Dot(to)

	if scalar.Abs(dot) > 1-scalar.CmpEpsilon/10 {
		return quat
	}

	theta := scalar.Acos(dot)
	sinT := 1 / scalar.Sin(theta)
	newFactor := scalar.Sin(weight*theta) * sinT
	invFactor := scalar.Sin((1-weight)*theta) * sinT

	return NewQuaternion(
		invFactor*quat.X+newFactor*to.X,
		invFactor*quat.Y+newFactor*to.Y,
		invFactor*quat.Z+newFactor*to.Z,
		invFactor*quat.W+newFactor*to.W,
	)
}

// SphericalCubicInterpolate performs a spherical cubic interpolation between quaternions
// preA, this quaternion, b, and postB, by the given weight.
func (quat Quaternion) SphericalCubicInterpolate(b, preA, postB Quaternion, weight Float) Quaternion {
	fromQ := quat
	preQ := preA
	toQ := b
	postQ := postB

	// Align flip phases.
	fromQ = NewBasisFromQuaternion(fromQ).RotationQuaternion()
	preQ = NewBasisFromQuaternion(preQ).RotationQuaternion()
	toQ = NewBasisFromQuaternion(toQ).RotationQuaternion()
	postQ = NewBasisFromQuaternion(postQ).RotationQuaternion()

	// Flip quaternions to the shortest path if necessary.
	flip1 := scalar.Signbit(fromQ.Dot(preQ))
	if flip1 {
		preQ = preQ.Negated()
	}
	flip2 := scalar.Signbit(fromQ.Dot(toQ))
	if flip2 {
		toQ = toQ.Negated()
	}
	var flip3 bool
	if flip2 {
		flip3 = toQ.Dot(postQ) <= 0
	} else {
		flip3 = scalar.Signbit(toQ.Dot(postQ))
	}
	if flip3 {
		postQ = postQ.Negated()
	}

	// Calc by Exp map in fromQ space.
	lnFrom := NewQuaternion(0, 0, 0, 0)
	lnTo := fromQ.Inverse().Mul(toQ).Log()
	lnPre := fromQ.Inverse().Mul(preQ).Log()
	lnPost := fromQ.Inverse().Mul(postQ).Log()
	ln := NewQuaternion(0, 0, 0, 0)
	ln.X = scalar.CubicInterpolate(lnFrom.X, lnTo.X, lnPre.X, lnPost.X, weight)
	ln.Y = scalar.CubicInterpolate(lnFrom.Y, lnTo.Y, lnPre.Y, lnPost.Y, weight)
	ln.Z = scalar.CubicInterpolate(lnFrom.Z, lnTo.Z, lnPre.Z, lnPost.Z, weight)
	q1 := fromQ.Mul(ln.Exp())

	// Calc by Exp map in toQ space.
	lnFrom = toQ.Inverse().Mul(fromQ).Log()
	lnTo = NewQuaternion(0, 0, 0, 0)
	lnPre = toQ.Inverse().Mul(preQ).Log()
	lnPost = toQ.Inverse().Mul(postQ).Log()
	ln = NewQuaternion(0, 0, 0, 0)
	ln.X = scalar.CubicInterpolate(lnFrom.X, lnTo.X, lnPre.X, lnPost.X, weight)
	ln.Y = scalar.CubicInterpolate(lnFrom.Y, lnTo.Y, lnPre.Y, lnPost.Y, weight)
	ln.Z = scalar.CubicInterpolate(lnFrom.Z, lnTo.Z, lnPre.Z, lnPost.Z, weight)
	q2 := toQ.Mul(ln.Exp())

	// To cancel error made by Exp map ambiguity, do blending.
	return q1.Slerp(q2, weight)
}

// SphericalCubicInterpolateInTime performs a spherical cubic interpolation between
// quaternions preA, this quaternion, b, and postB, by the given weight, with bT, preAT, and
// postBT giving the key times of b, preA, and postB relative to this quaternion's time of 0.
// The time values let it interpolate more smoothly over unevenly spaced keyframes than
// SphericalCubicInterpolate can.
func (quat Quaternion) SphericalCubicInterpolateInTime(b, preA, postB Quaternion, weight, bT, preAT, postBT Float) Quaternion {
	fromQ := quat
	preQ := preA
	toQ := b
	postQ := postB

	// Align flip phases.
	fromQ = NewBasisFromQuaternion(fromQ).RotationQuaternion()
	preQ = NewBasisFromQuaternion(preQ).RotationQuaternion()
	toQ = NewBasisFromQuaternion(toQ).RotationQuaternion()
	postQ = NewBasisFromQuaternion(postQ).RotationQuaternion()

	// Flip quaternions to the shortest path if necessary.
	flip1 := scalar.Signbit(fromQ.Dot(preQ))
	if flip1 {
		preQ = preQ.Negated()
	}
	flip2 := scalar.Signbit(fromQ.Dot(toQ))
	if flip2 {
		toQ = toQ.Negated()
	}
	var flip3 bool
	if flip2 {
		flip3 = toQ.Dot(postQ) <= 0
	} else {
		flip3 = scalar.Signbit(toQ.Dot(postQ))
	}
	if flip3 {
		postQ = postQ.Negated()
	}

	// Calc by Exp map in fromQ space.
	lnFrom := NewQuaternion(0, 0, 0, 0)
	lnTo := fromQ.Inverse().Mul(toQ).Log()
	lnPre := fromQ.Inverse().Mul(preQ).Log()
	lnPost := fromQ.Inverse().Mul(postQ).Log()
	ln := NewQuaternion(0, 0, 0, 0)
	ln.X = scalar.CubicInterpolateInTime(lnFrom.X, lnTo.X, lnPre.X, lnPost.X, weight, bT, preAT, postBT)
	ln.Y = scalar.CubicInterpolateInTime(lnFrom.Y, lnTo.Y, lnPre.Y, lnPost.Y, weight, bT, preAT, postBT)
	ln.Z = scalar.CubicInterpolateInTime(lnFrom.Z, lnTo.Z, lnPre.Z, lnPost.Z, weight, bT, preAT, postBT)
	q1 := fromQ.Mul(ln.Exp())

	// Calc by Exp map in toQ space.
	lnFrom = toQ.Inverse().Mul(fromQ).Log()
	lnTo = NewQuaternion(0, 0, 0, 0)
	lnPre = toQ.Inverse().Mul(preQ).Log()
	lnPost = toQ.Inverse().Mul(postQ).Log()
	ln = NewQuaternion(0, 0, 0, 0)
	ln.X = scalar.CubicInterpolateInTime(lnFrom.X, lnTo.X, lnPre.X, lnPost.X, weight, bT, preAT, postBT)
	ln.Y = scalar.CubicInterpolateInTime(lnFrom.Y, lnTo.Y, lnPre.Y, lnPost.Y, weight, bT, preAT, postBT)
	ln.Z = scalar.CubicInterpolateInTime(lnFrom.Z, lnTo.Z, lnPre.Z, lnPost.Z, weight, bT, preAT, postBT)
	q2 := toQ.Mul(ln.Exp())

	// To cancel error made by Exp map ambiguity, do blending.
	return q1.Slerp(q2, weight)
}

// Xform returns the vector rotated by this quaternion. The quaternion must be normalized.
func (quat Quaternion) Xform(vec Vector3) Vector3 {
	u := NewVector3(quat.X, quat.Y, quat.Z)
	uv := u.Cross(vec)
	return vec.Add(uv.Scale(quat.W).Add(u.Cross(uv)).Scale(2))
}

// IsEqualApprox returns true if this quaternion and to are approximately equal, comparing
// each component.
func (quat Quaternion) IsEqualApprox(to Quaternion) bool {
	return scalar.IsEqualApprox(quat.X, to.X) &&
		scalar.IsEqualApprox(quat.Y, to.Y) &&
		scalar.IsEqualApprox(quat.Z, to.Z) &&
		scalar.IsEqualApprox(quat.W, to.W)
}

// IsFinite returns true if every component of the quaternion is finite.
func (quat Quaternion) IsFinite() bool {
	return scalar.IsFinite(quat.W) && scalar.IsFinite(quat.X) && scalar.IsFinite(quat.Y) && scalar.IsFinite(quat.Z)
}

func (quat Quaternion) String() string {
	return fmt.Sprintf("Quaternion(%.3f, %.3f, %.3f, %.3f)", quat.X, quat.Y, quat.Z, quat.W)
}
