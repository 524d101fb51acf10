package spatial

import (
	"fmt"

	"github.com/hollowgrove/spatial/scalar"
)

// BasisIdentity is the identity basis; no rotation, no shear, scale of 1 on every axis.
var BasisIdentity = NewBasis(Vec3Right, Vec3Up, Vec3Back)

// BasisFlipX negates the X column of any basis it is multiplied onto.
var BasisFlipX = NewBasis(Vec3Left, Vec3Up, Vec3Back)

// BasisFlipY negates the Y column of any basis it is multiplied onto.
var BasisFlipY = NewBasis(Vec3Right, Vec3Down, Vec3Back)

// BasisFlipZ negates the Z column of any basis it is multiplied onto.
var BasisFlipZ = NewBasis(Vec3Right, Vec3Up, Vec3Forward)

// Basis is a 3x3 matrix used to represent 3D rotation, scale, and shear; it's most often found
// inside a Transform3D. The three axes of the basis are the COLUMNS of the matrix, while the X,
// Y, and Z fields hold its rows (row-major storage, column-major interface, same split as
// OpenGL vs DirectX). The length of each axis drives the scale and their directions drive the
// rotation; rotate one axis on its own and the basis becomes sheared.
// Any Basis functions that modify the calling Basis return copies, so you can method-chain.
type Basis struct {
	X Vector3 // Row 0 of the matrix. On the identity basis, the first components of the rows form the right vector.
	Y Vector3 // Row 1 of the matrix.
	Z Vector3 // Row 2 of the matrix.
}

// NewBasis creates a new Basis from its three axis (column) vectors.
func NewBasis(x, y, z Vector3) Basis {
	return NewBasisFromFloats(
		x.X, y.X, z.X,
		x.Y, y.Y, z.Y,
		x.Z, y.Z, z.Z,
	)
}

// NewBasisFromRows creates a new Basis directly from its three row vectors.
func NewBasisFromRows(x, y, z Vector3) Basis {
	return Basis{X: x, Y: y, Z: z}
}

// NewBasisFromFloats creates a new Basis from nine components, given row by row.
func NewBasisFromFloats(xx, xy, xz, yx, yy, yz, zx, zy, zz Float) Basis {
	return Basis{
		X: NewVector3(xx, xy, xz),
		Y: NewVector3(yx, yy, yz),
		Z: NewVector3(zx, zy, zz),
	}
}

// NewBasisFromEuler creates a rotation Basis from the given Euler angles (in radians) and
// rotation order. The euler vector's X is the angle around the x axis (pitch), Y around the y
// axis (yaw), and Z around the z axis (roll).
func NewBasisFromEuler(euler Vector3, order EulerOrder) Basis {
	c := scalar.Cos(euler.X)
	s := scalar.Sin(euler.X)
	xMat := NewBasisFromFloats(1, 0, 0, 0, c, -s, 0, s, c)

	c = scalar.Cos(euler.Y)
	s = scalar.Sin(euler.Y)
	yMat := NewBasisFromFloats(c, 0, s, 0, 1, 0, -s, 0, c)

	c = scalar.Cos(euler.Z)
	s = scalar.Sin(euler.Z)
	zMat := NewBasisFromFloats(c, -s, 0, s, c, 0, 0, 0, 1)

	switch order {
	case EulerOrderXYZ:
		return xMat.Mul(yMat.Mul(zMat))
	case EulerOrderXZY:
		return xMat.Mul(zMat).Mul(yMat)
	case EulerOrderYXZ:
		return yMat.Mul(xMat).Mul(zMat)
	case EulerOrderYZX:
		return yMat.Mul(zMat).Mul(xMat)
	case EulerOrderZXY:
		return zMat.Mul(xMat).Mul(yMat)
	default:
		return zMat.Mul(yMat).Mul(xMat)
	}
}

// NewBasisFromScale creates a Basis that only represents scale, with no rotation or shear (a
// diagonal matrix).
func NewBasisFromScale(scale Vector3) Basis {
	return NewBasisFromFloats(
		scale.X, 0, 0,
		0, scale.Y, 0,
		0, 0, scale.Z,
	)
}

// NewBasisFromAxisAngle creates a rotation Basis rotating around the given axis by angle (in
// radians). The axis must be normalized.
func NewBasisFromAxisAngle(axis Vector3, angle Float) Basis {
	basis := Basis{}

	axisSq := NewVector3(axis.X*axis.X, axis.Y*axis.Y, axis.Z*axis.Z)
	cosine := scalar.Cos(angle)
	basis.X.X = axisSq.X + cosine*(1-axisSq.X)
	basis.Y.Y = axisSq.Y + cosine*(1-axisSq.Y)
	basis.Z.Z = axisSq.Z + cosine*(1-axisSq.Z)

	sine := scalar.Sin(angle)
	t := 1 - cosine

	xyzt := axis.X * axis.Y * t
	zyxs := axis.Z * sine
	basis.X.Y = xyzt - zyxs
	basis.Y.X = xyzt + zyxs

	xyzt = axis.X * axis.Z * t
	zyxs = axis.Y * sine
	basis.X.Z = xyzt + zyxs
	basis.Z.X = xyzt - zyxs

	xyzt = axis.Y * axis.Z * t
	zyxs = axis.X * sine
	basis.Y.Z = xyzt - zyxs
	basis.Z.Y = xyzt + zyxs

	return basis
}

// NewBasisFromQuaternion creates a rotation Basis from the given Quaternion.
func NewBasisFromQuaternion(quat Quaternion) Basis {
	d := quat.LengthSquared()
	s := 2 / d
	xs := quat.X * s
	ys := quat.Y * s
	zs := quat.Z * s
	wx := quat.W * xs
	wy := quat.W * ys
	wz := quat.W * zs
	xx := quat.X * xs
	xy := quat.X * ys
	xz := quat.X * zs
	yy := quat.Y * ys
	yz := quat.Y * zs
	zz := quat.Z * zs
	return NewBasisFromFloats(
		1-(yy+zz), xy-wz, xz+wy,
		xy+wz, 1-(xx+zz), yz-wx,
		xz-wy, yz+wx, 1-(xx+yy),
	)
}

// NewBasisFromQuaternionScale creates a Basis combining the rotation of quat with the given
// per-axis scale.
func NewBasisFromQuaternionScale(quat Quaternion, scale Vector3) Basis {
	return NewBasisFromScale(scale).Mul(NewBasisFromQuaternion(quat))
}

// NewBasisLookingAt creates a rotation Basis whose forward axis (-Z) points towards the target
// position. If useModelFront is true, the +Z axis (asset front) is treated as forward instead.
// The up axis (+Y) points as close to the up vector as possible while staying perpendicular to
// the forward axis; the result is orthonormalized. target and up can't be zero and can't be
// parallel to each other.
func NewBasisLookingAt(target, up Vector3, useModelFront bool) Basis {
	vz := target.Normalized()
	if !useModelFront {
		vz = vz.Negated()
	}
	vx := up.Cross(vz).Normalized()
	vy := vz.Cross(vx)

	return NewBasis(vx, vy, vz)
}

// Column returns the column of the matrix at the given index (0, 1, or 2); the columns are the
// basis's axes.
func (basis Basis) Column(index int) Vector3 {
	switch index {
	case 0:
		return NewVector3(basis.X.X, basis.Y.X, basis.Z.X)
	case 1:
		return NewVector3(basis.X.Y, basis.Y.Y, basis.Z.Y)
	case 2:
		return NewVector3(basis.X.Z, basis.Y.Z, basis.Z.Z)
	}
	panic("invalid column index")
}

// SetColumn returns a copy of the Basis with the column at the given index replaced.
func (basis Basis) SetColumn(index int, column Vector3) Basis {
	switch index {
	case 0:
		basis.X.X = column.X
		basis.Y.X = column.Y
		basis.Z.X = column.Z
	case 1:
		basis.X.Y = column.X
		basis.Y.Y = column.Y
		basis.Z.Y = column.Z
	case 2:
		basis.X.Z = column.X
		basis.Y.Z = column.Y
		basis.Z.Z = column.Z
	default:
		panic("invalid column index")
	}
	return basis
}

// Row returns the row of the matrix at the given index (0, 1, or 2).
func (basis Basis) Row(index int) Vector3 {
	switch index {
	case 0:
		return basis.X
	case 1:
		return basis.Y
	case 2:
		return basis.Z
	}
	panic("invalid row index")
}

// SetRow returns a copy of the Basis with the row at the given index replaced.
func (basis Basis) SetRow(index int, row Vector3) Basis {
	switch index {
	case 0:
		basis.X = row
	case 1:
		basis.Y = row
	case 2:
		basis.Z = row
	default:
		panic("invalid row index")
	}
	return basis
}

// Determinant returns the determinant of the basis's matrix. A determinant of exactly 0 means
// the basis isn't invertible, and a negative determinant means the basis has a negative scale
// on an odd number of axes.
func (basis Basis) Determinant() Float {
	return basis.X.X*(basis.Y.Y*basis.Z.Z-basis.Z.Y*basis.Y.Z) -
		basis.Y.X*(basis.X.Y*basis.Z.Z-basis.Z.Y*basis.X.Z) +
		basis.Z.X*(basis.X.Y*basis.Y.Z-basis.Y.Y*basis.X.Z)
}

// Inverse returns the inverse of the basis's matrix.
func (basis Basis) Inverse() Basis {
	co0 := basis.Y.Y*basis.Z.Z - basis.Y.Z*basis.Z.Y
	co1 := basis.Y.Z*basis.Z.X - basis.Y.X*basis.Z.Z
	co2 := basis.Y.X*basis.Z.Y - basis.Y.Y*basis.Z.X
	det := basis.X.X*co0 + basis.X.Y*co1 + basis.X.Z*co2

	s := 1 / det

	return NewBasisFromFloats(
		co0*s,
		(basis.X.Z*basis.Z.Y-basis.X.Y*basis.Z.Z)*s,
		(basis.X.Y*basis.Y.Z-basis.X.Z*basis.Y.Y)*s,
		co1*s,
		(basis.X.X*basis.Z.Z-basis.X.Z*basis.Z.X)*s,
		(basis.X.Z*basis.Y.X-basis.X.X*basis.Y.Z)*s,
		co2*s,
		(basis.X.Y*basis.Z.X-basis.X.X*basis.Z.Y)*s,
		(basis.X.X*basis.Y.Y-basis.X.Y*basis.Y.X)*s,
	)
}

// Transposed returns the transposed version of the basis; the matrix's columns become its rows
// and its rows become its columns.
func (basis Basis) Transposed() Basis {
	basis.X.Y, basis.Y.X = basis.Y.X, basis.X.Y
	basis.X.Z, basis.Z.X = basis.Z.X, basis.X.Z
	basis.Y.Z, basis.Z.Y = basis.Z.Y, basis.Y.Z
	return basis
}

// Orthonormalized returns this basis with its axes made perpendicular to each other and
// normalized to a length of 1, using the Gram-Schmidt process. An orthonormal basis can only
// represent rotation; it's often useful to call this to shed the rounding errors that build up
// on a basis that gets rotated repeatedly.
func (basis Basis) Orthonormalized() Basis {
	x := basis.Column(0)
	y := basis.Column(1)
	z := basis.Column(2)

	x = x.Normalized()
	y = y.Sub(x.Scale(x.Dot(y)))
	y = y.Normalized()
	z = z.Sub(x.Scale(x.Dot(z))).Sub(y.Scale(y.Dot(z)))
	z = z.Normalized()

	return NewBasis(x, y, z)
}

// Euler returns the basis's rotation as Euler angles, in radians, for the given rotation
// order. The result's X is the angle around the x axis (pitch), Y around the y axis (yaw), and
// Z around the z axis (roll). Euler angles read well in an editor or a log, but gimbal lock
// makes them poor for doing math with; prefer RotationQuaternion for that.
func (basis Basis) Euler(order EulerOrder) Vector3 {
	switch order {
	case EulerOrderXYZ:
		// rot =  cy*cz           -cy*sz          sy
		//        cz*sx*sy+cx*sz  cx*cz-sx*sy*sz  -cy*sx
		//        -cx*cz*sy+sx*sz cz*sx+cx*sy*sz  cx*cy
		sy := basis.X.Z
		if sy < 1-scalar.CmpEpsilon {
			if sy > -(1 - scalar.CmpEpsilon) {
				// is this a pure Y rotation?
				if basis.Y.X == 0 && basis.X.Y == 0 && basis.Y.Z == 0 && basis.Z.Y == 0 && basis.Y.Y == 1 {
					// return the simplest form (human friendlier in editor and scripts)
					return NewVector3(0, scalar.Atan2(basis.X.Z, basis.X.X), 0)
				}
				return NewVector3(
					scalar.Atan2(-basis.Y.Z, basis.Z.Z),
					scalar.Asin(sy),
					scalar.Atan2(-basis.X.Y, basis.X.X),
				)
			}
			return NewVector3(scalar.Atan2(basis.Z.Y, basis.Y.Y), -scalar.Pi/2, 0)
		}
		return NewVector3(scalar.Atan2(basis.Z.Y, basis.Y.Y), scalar.Pi/2, 0)

	case EulerOrderXZY:
		// rot =  cz*cy             -sz             cz*sy
		//        sx*sy+cx*cy*sz    cx*cz           cx*sz*sy-cy*sx
		//        cy*sx*sz          cz*sx           cx*cy+sx*sz*sy
		sz := basis.X.Y
		if sz < 1-scalar.CmpEpsilon {
			if sz > -(1 - scalar.CmpEpsilon) {
				return NewVector3(
					scalar.Atan2(basis.Z.Y, basis.Y.Y),
					scalar.Atan2(basis.X.Z, basis.X.X),
					scalar.Asin(-sz),
				)
			}
			// It's -1
			return NewVector3(-scalar.Atan2(basis.Y.Z, basis.Z.Z), 0, scalar.Pi/2)
		}
		// It's 1
		return NewVector3(-scalar.Atan2(basis.Y.Z, basis.Z.Z), 0, -scalar.Pi/2)

	case EulerOrderYXZ:
		// rot =  cy*cz+sy*sx*sz    cz*sy*sx-cy*sz        cx*sy
		//        cx*sz             cx*cz                 -sx
		//        cy*sx*sz-cz*sy    cy*cz*sx+sy*sz        cy
		m12 := basis.Y.Z
		if m12 < 1-scalar.CmpEpsilon {
			if m12 > -(1 - scalar.CmpEpsilon) {
				// is it a pure X rotation?
				if basis.Y.X == 0 && basis.X.Y == 0 && basis.X.Z == 0 && basis.Z.X == 0 && basis.X.X == 1 {
					// return the simplest form (human friendlier in editor and scripts)
					return NewVector3(scalar.Atan2(-m12, basis.Y.Y), 0, 0)
				}
				return NewVector3(
					scalar.Asin(-m12),
					scalar.Atan2(basis.X.Z, basis.Z.Z),
					scalar.Atan2(basis.Y.X, basis.Y.Y),
				)
			}
			// It's -1
			return NewVector3(scalar.Pi/2, scalar.Atan2(basis.X.Y, basis.X.X), 0)
		}
		// It's 1
		return NewVector3(-scalar.Pi/2, -scalar.Atan2(basis.X.Y, basis.X.X), 0)

	case EulerOrderYZX:
		// rot =  cy*cz             sy*sx-cy*cx*sz     cx*sy+cy*sz*sx
		//        sz                cz*cx              -cz*sx
		//        -cz*sy            cy*sx+cx*sy*sz     cy*cx-sy*sz*sx
		sz := basis.Y.X
		if sz < 1-scalar.CmpEpsilon {
			if sz > -(1 - scalar.CmpEpsilon) {
				return NewVector3(
					scalar.Atan2(-basis.Y.Z, basis.Y.Y),
					scalar.Atan2(-basis.Z.X, basis.X.X),
					scalar.Asin(sz),
				)
			}
			// It's -1
			return NewVector3(scalar.Atan2(basis.Z.Y, basis.Z.Z), 0, -scalar.Pi/2)
		}
		// It's 1
		return NewVector3(scalar.Atan2(basis.Z.Y, basis.Z.Z), 0, scalar.Pi/2)

	case EulerOrderZXY:
		// rot =  cz*cy-sz*sx*sy    -cx*sz                cz*sy+cy*sz*sx
		//        cy*sz+cz*sx*sy    cz*cx                 sz*sy-cz*cy*sx
		//        -cx*sy            sx                    cx*cy
		sx := basis.Z.Y
		if sx < 1-scalar.CmpEpsilon {
			if sx > -(1 - scalar.CmpEpsilon) {
				return NewVector3(
					scalar.Asin(sx),
					scalar.Atan2(-basis.Z.X, basis.Z.Z),
					scalar.Atan2(-basis.X.Y, basis.Y.Y),
				)
			}
			// It's -1
			return NewVector3(-scalar.Pi/2, scalar.Atan2(basis.X.Z, basis.X.X), 0)
		}
		// It's 1
		return NewVector3(scalar.Pi/2, scalar.Atan2(basis.X.Z, basis.X.X), 0)

	default:
		// ZYX:
		// rot =  cz*cy             cz*sy*sx-cx*sz        sz*sx+cz*cx*cy
		//        cy*sz             cz*cx+sz*sy*sx        cx*sz*sy-cz*sx
		//        -sy               cy*sx                 cy*cx
		sy := basis.Z.X
		if sy < 1-scalar.CmpEpsilon {
			if sy > -(1 - scalar.CmpEpsilon) {
				return NewVector3(
					scalar.Atan2(basis.Z.Y, basis.Z.Z),
					scalar.Asin(-sy),
					scalar.Atan2(basis.Y.X, basis.X.X),
				)
			}
			// It's -1
			return NewVector3(0, scalar.Pi/2, -scalar.Atan2(basis.X.Y, basis.Y.Y))
		}
		// It's 1
		return NewVector3(0, -scalar.Pi/2, -scalar.Atan2(basis.X.Y, basis.Y.Y))
	}
}

// AxisAngle returns the basis's rotation as a normalized rotation axis and an angle around it
// (in radians). The basis should be a pure rotation.
// See https://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToAngle/index.htm
func (basis Basis) AxisAngle() (Vector3, Float) {
	if scalar.IsZeroApprox(basis.X.Y-basis.Y.X) &&
		scalar.IsZeroApprox(basis.X.Z-basis.Z.X) &&
		scalar.IsZeroApprox(basis.Y.Z-basis.Z.Y) {
		// Singularity found.
		// First check for identity matrix which must have +1 for all terms in leading diagonal
		// and zero in other terms.
		if basis.isDiagonal() && scalar.Abs(basis.X.X+basis.Y.Y+basis.Z.Z-3) < 3*scalar.CmpEpsilon {
			// This singularity is identity matrix so angle = 0.
			return NewVector3(0, 1, 0), 0
		}
		// Otherwise this singularity is angle = 180.
		xx := (basis.X.X + 1) / 2
		yy := (basis.Y.Y + 1) / 2
		zz := (basis.Z.Z + 1) / 2
		xy := (basis.X.Y + basis.Y.X) / 4
		xz := (basis.X.Z + basis.Z.X) / 4
		yz := (basis.Y.Z + basis.Z.Y) / 4

		const fracOneSqrt2 = 0.70710678118654752440084436210484903928483593768847

		var axis Vector3
		if xx > yy && xx > zz {
			// basis.X.X is the largest diagonal term.
			if xx < scalar.CmpEpsilon {
				axis = NewVector3(0, fracOneSqrt2, fracOneSqrt2)
			} else {
				x := scalar.Sqrt(xx)
				axis = NewVector3(x, xy/x, xz/x)
			}
		} else if yy > zz {
			// basis.Y.Y is the largest diagonal term.
			if yy < scalar.CmpEpsilon {
				axis = NewVector3(fracOneSqrt2, 0, fracOneSqrt2)
			} else {
				y := scalar.Sqrt(yy)
				axis = NewVector3(xy/y, y, yz/y)
			}
		} else {
			// basis.Z.Z is the largest diagonal term so base result on this.
			if zz < scalar.CmpEpsilon {
				axis = NewVector3(fracOneSqrt2, fracOneSqrt2, 0)
			} else {
				z := scalar.Sqrt(zz)
				axis = NewVector3(xz/z, yz/z, z)
			}
		}
		return axis, scalar.Pi
	}

	// No singularities, so handle normally.
	s := scalar.Sqrt((basis.Z.Y-basis.Y.Z)*(basis.Z.Y-basis.Y.Z) +
		(basis.X.Z-basis.Z.X)*(basis.X.Z-basis.Z.X) +
		(basis.Y.X-basis.X.Y)*(basis.Y.X-basis.X.Y)) // Used to normalize.

	if scalar.Abs(s) < scalar.CmpEpsilon {
		// Prevent divide by zero; shouldn't happen if the matrix is orthogonal, and should be
		// caught by the singularity test above.
		s = 1
	}

	axis := NewVector3(
		(basis.Z.Y-basis.Y.Z)/s,
		(basis.X.Z-basis.Z.X)/s,
		(basis.Y.X-basis.X.Y)/s,
	)

	angle := scalar.SafeAcos((basis.X.X + basis.Y.Y + basis.Z.Z - 1) / 2)
	return axis, angle
}

// Quaternion returns the basis's rotation as a Quaternion. This is faster than
// RotationQuaternion, but the basis must be orthonormalized; otherwise the result won't be a
// sensible rotation.
func (basis Basis) Quaternion() Quaternion {
	m := [3][3]Float{
		{basis.X.X, basis.X.Y, basis.X.Z},
		{basis.Y.X, basis.Y.Y, basis.Y.Z},
		{basis.Z.X, basis.Z.Y, basis.Z.Z},
	}
	trace := m[0][0] + m[1][1] + m[2][2]
	var temp [4]Float

	if trace > 0 {
		s := scalar.Sqrt(trace + 1)
		temp[3] = s * 0.5
		s = 0.5 / s

		temp[0] = (m[2][1] - m[1][2]) * s
		temp[1] = (m[0][2] - m[2][0]) * s
		temp[2] = (m[1][0] - m[0][1]) * s
	} else {
		i := 0
		if m[0][0] < m[1][1] {
			if m[1][1] < m[2][2] {
				i = 2
			} else {
				i = 1
			}
		} else if m[0][0] < m[2][2] {
			i = 2
		}
		j := (i + 1) % 3
		k := (i + 2) % 3

		s := scalar.Sqrt(m[i][i] - m[j][j] - m[k][k] + 1)
		temp[i] = s * 0.5
		s = 0.5 / s

		temp[3] = (m[k][j] - m[j][k]) * s
		temp[j] = (m[j][i] + m[i][j]) * s
		temp[k] = (m[k][i] + m[i][k]) * s
	}

	return NewQuaternion(temp[0], temp[1], temp[2], temp[3])
}

// RotationQuaternion returns the rotation part of the basis as a Quaternion, assuming the
// matrix decomposes into rotation times scale. Unlike Quaternion, this works on a basis that
// carries scale or a reflection.
func (basis Basis) RotationQuaternion() Quaternion {
	m := basis.Orthonormalized()
	if m.Determinant() < 0 {
		// Flip so the determinant is 1 and the result is a proper rotation matrix.
		m = m.Scaled(NewVector3(-1, -1, -1))
	}
	return m.Quaternion()
}

func (basis Basis) scaleAbs() Vector3 {
	return NewVector3(
		basis.Column(0).Length(),
		basis.Column(1).Length(),
		basis.Column(2).Length(),
	)
}

// Scale returns the length of each axis of the basis. If the basis isn't sheared, this is its
// scaling factor; rotation doesn't affect it. A negative determinant makes the returned scale
// negative.
func (basis Basis) Scale() Vector3 {
	detSign := scalar.Sign(basis.Determinant())
	return basis.scaleAbs().Scale(detSign)
}

// Scaled returns this basis with each row multiplied by the matching component of scale. This
// is a global scale, relative to the parent.
func (basis Basis) Scaled(scale Vector3) Basis {
	basis.X = basis.X.Scale(scale.X)
	basis.Y = basis.Y.Scale(scale.Y)
	basis.Z = basis.Z.Scale(scale.Z)
	return basis
}

// ScaledLocal returns this basis scaled in its own local coordinate system, relative to the
// basis's rotation.
func (basis Basis) ScaledLocal(scale Vector3) Basis {
	return basis.Mul(NewBasisFromScale(scale))
}

// Rotated returns this basis rotated around the given axis by angle (in radians). The axis
// must be normalized.
func (basis Basis) Rotated(axis Vector3, angle Float) Basis {
	return NewBasisFromAxisAngle(axis, angle).Mul(basis)
}

// Slerp performs a spherical-linear interpolation towards the to basis by weight. Both bases
// should represent rotations; any difference in axis lengths is linearly interpolated
// alongside the rotation.
func (basis Basis) Slerp(to Basis, weight Float) Basis {
	from := basis.Quaternion()
	toQuat := to.Quaternion()

	b := NewBasisFromQuaternion(from.Slerp(toQuat, weight))
	b.X = b.X.Scale(scalar.Lerp(basis.X.Length(), to.X.Length(), weight))
	b.Y = b.Y.Scale(scalar.Lerp(basis.Y.Length(), to.Y.Length(), weight))
	b.Z = b.Z.Scale(scalar.Lerp(basis.Z.Length(), to.Z.Length(), weight))

	return b
}

// TdotX returns the dot product between with and the X axis (the first column); the transposed
// equivalent of basis.X.Dot(with).
func (basis Basis) TdotX(with Vector3) Float {
	return basis.X.X*with.X + basis.Y.X*with.Y + basis.Z.X*with.Z
}

// TdotY returns the dot product between with and the Y axis (the second column).
func (basis Basis) TdotY(with Vector3) Float {
	return basis.X.Y*with.X + basis.Y.Y*with.Y + basis.Z.Y*with.Z
}

// TdotZ returns the dot product between with and the Z axis (the third column).
func (basis Basis) TdotZ(with Vector3) Float {
	return basis.X.Z*with.X + basis.Y.Z*with.Y + basis.Z.Z*with.Z
}

// Mul returns the product of this basis and the other Basis; the result applies other first,
// then this basis.
func (basis Basis) Mul(other Basis) Basis {
	return NewBasisFromFloats(
		other.TdotX(basis.X), other.TdotY(basis.X), other.TdotZ(basis.X),
		other.TdotX(basis.Y), other.TdotY(basis.Y), other.TdotZ(basis.Y),
		other.TdotX(basis.Z), other.TdotY(basis.Z), other.TdotZ(basis.Z),
	)
}

// Xform returns the vector transformed (multiplied) by this basis.
func (basis Basis) Xform(vec Vector3) Vector3 {
	return NewVector3(basis.X.Dot(vec), basis.Y.Dot(vec), basis.Z.Dot(vec))
}

// XformInv returns the vector transformed by the transposed version of this basis. This
// undoes Xform only if the basis represents a rotation or a reflection.
func (basis Basis) XformInv(vec Vector3) Vector3 {
	return NewVector3(basis.TdotX(vec), basis.TdotY(vec), basis.TdotZ(vec))
}

func (basis Basis) isDiagonal() bool {
	return scalar.IsZeroApprox(basis.X.Y) && scalar.IsZeroApprox(basis.X.Z) &&
		scalar.IsZeroApprox(basis.Y.X) && scalar.IsZeroApprox(basis.Y.Z) &&
		scalar.IsZeroApprox(basis.Z.X) && scalar.IsZeroApprox(basis.Z.Y)
}

// IsOrthogonal returns true if the basis's axes are all perpendicular to each other.
func (basis Basis) IsOrthogonal() bool {
	x := basis.Column(0)
	y := basis.Column(1)
	z := basis.Column(2)
	return scalar.IsZeroApprox(x.Dot(y)) && scalar.IsZeroApprox(x.Dot(z)) && scalar.IsZeroApprox(y.Dot(z))
}

// IsOrthonormal returns true if the basis's axes are perpendicular to each other and all have
// a length of 1, meaning the basis only represents rotation.
func (basis Basis) IsOrthonormal() bool {
	x := basis.Column(0)
	y := basis.Column(1)
	z := basis.Column(2)
	return scalar.IsEqualApprox(x.LengthSquared(), 1) &&
		scalar.IsEqualApprox(y.LengthSquared(), 1) &&
		scalar.IsEqualApprox(z.LengthSquared(), 1) &&
		scalar.IsZeroApprox(x.Dot(y)) &&
		scalar.IsZeroApprox(x.Dot(z)) &&
		scalar.IsZeroApprox(y.Dot(z))
}

// IsConformal returns true if the basis is both orthogonal (the axes are perpendicular to
// each other) and uniform (the axes share the same length). Handy during physics calculations.
func (basis Basis) IsConformal() bool {
	x := basis.Column(0)
	y := basis.Column(1)
	z := basis.Column(2)
	xLenSq := x.LengthSquared()
	return scalar.IsEqualApprox(xLenSq, y.LengthSquared()) &&
		scalar.IsEqualApprox(xLenSq, z.LengthSquared()) &&
		scalar.IsZeroApprox(x.Dot(y)) &&
		scalar.IsZeroApprox(x.Dot(z)) &&
		scalar.IsZeroApprox(y.Dot(z))
}

// IsRotation returns true if the basis represents a pure rotation; conformal with a
// determinant of 1.
func (basis Basis) IsRotation() bool {
	return basis.IsConformal() && scalar.IsEqualApproxTolerance(basis.Determinant(), 1, scalar.UnitEpsilon)
}

// IsEqualApprox returns true if this basis and other are approximately equal, comparing each
// row with Vector3.IsEqualApprox.
func (basis Basis) IsEqualApprox(other Basis) bool {
	return basis.X.IsEqualApprox(other.X) && basis.Y.IsEqualApprox(other.Y) && basis.Z.IsEqualApprox(other.Z)
}

// IsFinite returns true if every component of the basis is finite.
func (basis Basis) IsFinite() bool {
	return basis.X.IsFinite() && basis.Y.IsFinite() && basis.Z.IsFinite()
}

func (basis Basis) String() string {
	return fmt.Sprintf("Basis[X: %s, Y: %s, Z: %s]", basis.Column(0), basis.Column(1), basis.Column(2))
}
