//go:build spatial_double

package spatial

import "math"

// Float is the scalar type used throughout this package; the spatial_double tag is active, so
// every value type runs on float64.
type Float = float64

// MaxFloat is the largest finite value representable by Float at the selected width.
const MaxFloat = math.MaxFloat64
