package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Thin generic wrappers over the stdlib math package, so the root package can call them with
// whichever float width it was built for.

// Sqrt returns the square root of x.
func Sqrt[F constraints.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[F constraints.Float](x F) F {
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F constraints.Float](x F) F {
	return F(math.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos[F constraints.Float](x F) (F, F) {
	sin, cos := math.Sincos(float64(x))
	return F(sin), F(cos)
}

// Tan returns the tangent of the radian argument x.
func Tan[F constraints.Float](x F) F {
	return F(math.Tan(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[F constraints.Float](x F) F {
	return F(math.Acos(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin[F constraints.Float](x F) F {
	return F(math.Asin(float64(x)))
}

// Atan returns the arctangent, in radians, of x.
func Atan[F constraints.Float](x F) F {
	return F(math.Atan(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of
// the return value.
func Atan2[F constraints.Float](y, x F) F {
	return F(math.Atan2(float64(y), float64(x)))
}

// Pow returns x**y, the base-x exponential of y.
func Pow[F constraints.Float](x, y F) F {
	return F(math.Pow(float64(x), float64(y)))
}

// Log returns the natural logarithm of x.
func Log[F constraints.Float](x F) F {
	return F(math.Log(float64(x)))
}

// Exp returns e**x, the base-e exponential of x.
func Exp[F constraints.Float](x F) F {
	return F(math.Exp(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[F constraints.Float](x F) F {
	return F(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[F constraints.Float](x F) F {
	return F(math.Ceil(float64(x)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[F constraints.Float](x F) F {
	return F(math.Round(float64(x)))
}

// Trunc returns the integer value of x.
func Trunc[F constraints.Float](x F) F {
	return F(math.Trunc(float64(x)))
}

// Mod returns the floating-point remainder of x/y, with the sign of x.
func Mod[F constraints.Float](x, y F) F {
	return F(math.Mod(float64(x), float64(y)))
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign[F constraints.Float](f, sign F) F {
	return F(math.Copysign(float64(f), float64(sign)))
}

// Signbit reports whether x is negative or negative zero.
func Signbit[F constraints.Float](x F) bool {
	return math.Signbit(float64(x))
}

// IsNaN reports whether x is a NaN.
func IsNaN[F constraints.Float](x F) bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity in the direction of the sign provided.
func IsInf[F constraints.Float](x F, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[F constraints.Float](x F) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Inf returns an infinity of the given sign.
func Inf[F constraints.Float](sign int) F {
	return F(math.Inf(sign))
}
