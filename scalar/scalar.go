// scalar holds the floating-point helpers the value types in the root package are built on.
// The functions are generic over the float width so the root package works the same whether it's
// compiled for float32 or float64; helpers like Min, Max, and Clamp accept any ordered number.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// CmpEpsilon is the tolerance used for approximate comparisons across the whole library.
	CmpEpsilon = 0.00001
	// CmpEpsilon2 is CmpEpsilon squared, for comparing squared lengths without a square root.
	CmpEpsilon2 = CmpEpsilon * CmpEpsilon
	// UnitEpsilon is the tolerance used when checking whether a vector or quaternion is normalized.
	UnitEpsilon = 0.00001
)

const Pi = math.Pi

// ToRadians converts degrees to radians (which is what every rotation-oriented function here takes).
func ToRadians[F constraints.Float](degrees F) F {
	return math.Pi * degrees / 180
}

// ToDegrees converts radians to degrees for human readability.
func ToDegrees[F constraints.Float](radians F) F {
	return radians / math.Pi * 180
}

// IsEqualApprox returns if a and b are approximately equal to each other.
// The check is relative: large values get a proportionally larger tolerance, with CmpEpsilon as
// the floor. Infinities only compare equal to themselves, which the leading exact check handles.
func IsEqualApprox[F constraints.Float](a, b F) bool {
	if a == b {
		return true
	}
	tolerance := F(CmpEpsilon) * Abs(a)
	if tolerance < CmpEpsilon {
		tolerance = CmpEpsilon
	}
	return Abs(a-b) < tolerance
}

// IsEqualApproxTolerance returns if a and b are within tolerance of each other.
func IsEqualApproxTolerance[F constraints.Float](a, b, tolerance F) bool {
	if a == b {
		return true
	}
	return Abs(a-b) < tolerance
}

// IsZeroApprox returns if the value is approximately zero.
// This is faster than IsEqualApprox against zero, and doesn't scale the tolerance down.
func IsZeroApprox[F constraints.Float](value F) bool {
	return Abs(value) < CmpEpsilon
}

// Lerp linearly interpolates between from and to by weight. Weights outside of the 0-1 range
// extrapolate.
func Lerp[F constraints.Float](from, to, weight F) F {
	return from + (to-from)*weight
}

// InverseLerp returns the interpolation weight that would produce value when interpolating
// between from and to.
func InverseLerp[F constraints.Float](from, to, value F) F {
	return (value - from) / (to - from)
}

// Remap maps value from the range [inFrom, inTo] to the range [outFrom, outTo].
func Remap[F constraints.Float](value, inFrom, inTo, outFrom, outTo F) F {
	return Lerp(outFrom, outTo, InverseLerp(inFrom, inTo, value))
}

// Sign returns 1 if the value is positive, -1 if it's negative, and 0 if it's zero.
func Sign[N constraints.Signed | constraints.Float](value N) N {
	if value > 0 {
		return 1
	} else if value < 0 {
		return -1
	}
	return 0
}

// Posmod returns value wrapped between 0 and mod; the result takes the sign of mod rather
// than the sign of value, unlike the native modulo.
func Posmod[F constraints.Float](value, mod F) F {
	result := Mod(value, mod)
	if (result < 0 && mod > 0) || (result > 0 && mod < 0) {
		result += mod
	}
	return result
}

// Snapped returns value rounded to the nearest multiple of step. A step of 0 leaves the value
// untouched.
func Snapped[F constraints.Float](value, step F) F {
	if step != 0 {
		return Floor(value/step+0.5) * step
	}
	return value
}

// SnappedInt returns value rounded to the nearest multiple of step, for integer values. A step
// of 0 leaves the value untouched.
func SnappedInt[I constraints.Signed](value, step I) I {
	if step != 0 {
		return I(Floor(float64(value)/float64(step)+0.5) * float64(step))
	}
	return value
}

// SafeAcos is Acos with a clamped domain; values below -1 give Pi and values above 1 give 0
// instead of NaN.
func SafeAcos[F constraints.Float](value F) F {
	if value < -1 {
		return math.Pi
	} else if value > 1 {
		return 0
	}
	return Acos(value)
}

// SafeAsin is Asin with a clamped domain; values below -1 give -Pi/2 and values above 1 give
// Pi/2 instead of NaN.
func SafeAsin[F constraints.Float](value F) F {
	if value < -1 {
		return -math.Pi / 2
	} else if value > 1 {
		return math.Pi / 2
	}
	return Asin(value)
}

// CubicInterpolate interpolates between from and to by weight, using pre and post as outer
// handles (the Catmull-Rom form).
func CubicInterpolate[F constraints.Float](from, to, pre, post, weight F) F {
	return 0.5 *
		((from * 2.0) +
			(-pre+to)*weight +
			(2.0*pre-5.0*from+4.0*to-post)*(weight*weight) +
			(-pre+3.0*from-3.0*to+post)*(weight*weight*weight))
}

// CubicInterpolateInTime is CubicInterpolate with explicit key times, using the Barry-Goldman
// method. toT, preT, and postT are the times of to, pre, and post relative to from's time of 0.
// Degenerate (zero-length) intervals collapse to fixed weights rather than dividing by zero.
func CubicInterpolateInTime[F constraints.Float](from, to, pre, post, weight, toT, preT, postT F) F {
	t := Lerp(0, toT, weight)

	a1w := F(0)
	if preT != 0 {
		a1w = (t - preT) / -preT
	}
	a1 := Lerp(pre, from, a1w)

	a2w := F(0.5)
	if toT != 0 {
		a2w = t / toT
	}
	a2 := Lerp(from, to, a2w)

	a3w := F(1)
	if postT-toT != 0 {
		a3w = (t - toT) / (postT - toT)
	}
	a3 := Lerp(to, post, a3w)

	b1w := F(0)
	if toT-preT != 0 {
		b1w = (t - preT) / (toT - preT)
	}
	b1 := Lerp(a1, a2, b1w)

	b2w := F(1)
	if postT != 0 {
		b2w = t / postT
	}
	b2 := Lerp(a2, a3, b2w)

	finalW := F(0.5)
	if toT != 0 {
		finalW = t / toT
	}
	return Lerp(b1, b2, finalW)
}

// BezierInterpolate returns the point at t along the cubic Bezier curve defined by start, the
// two control points, and end.
func BezierInterpolate[F constraints.Float](start, control1, control2, end, t F) F {
	omt := 1.0 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t

	return start*omt3 + control1*omt2*t*3.0 + control2*omt*t2*3.0 + end*t3
}

// BezierDerivative returns the derivative at t along the cubic Bezier curve defined by start,
// the two control points, and end.
func BezierDerivative[F constraints.Float](start, control1, control2, end, t F) F {
	omt := 1.0 - t
	omt2 := omt * omt
	t2 := t * t

	return (control1-start)*3.0*omt2 +
		(control2-control1)*6.0*omt*t +
		(end-control2)*3.0*t2
}

// Min returns the minimum value out of the two provided values.
func Min[N constraints.Integer | constraints.Float](x, y N) N {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of the two provided values.
func Max[N constraints.Integer | constraints.Float](x, y N) N {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[N constraints.Integer | constraints.Float](value, min, max N) N {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
func Abs[N constraints.Signed | constraints.Float](x N) N {
	if x < 0 {
		return -x
	}
	return x
}
