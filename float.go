//go:build !spatial_double

package spatial

import "math"

// Float is the scalar type used throughout this package. By default it's a float32; building with
// the spatial_double tag switches every value type over to float64 instead. The width is decided
// once, at build time, so mixed-precision values can't show up in the same program.
type Float = float32

// MaxFloat is the largest finite value representable by Float at the selected width.
const MaxFloat = math.MaxFloat32
