package spatial

// EulerOrder selects the axis order used when composing or decomposing Euler angle rotations.
// The names give the order of the axis rotation matrices in the final product; EulerOrderYXZ,
// for example, rotates around Z first, X second, and Y last, and is the conventional order for
// yaw/pitch/roll camera rotation. YXZ is the order used when one isn't specified.
type EulerOrder int

const (
	EulerOrderXYZ EulerOrder = iota
	EulerOrderXZY
	EulerOrderYXZ
	EulerOrderYZX
	EulerOrderZXY
	EulerOrderZYX
)

func (order EulerOrder) String() string {
	switch order {
	case EulerOrderXYZ:
		return "XYZ"
	case EulerOrderXZY:
		return "XZY"
	case EulerOrderYXZ:
		return "YXZ"
	case EulerOrderYZX:
		return "YZX"
	case EulerOrderZXY:
		return "ZXY"
	case EulerOrderZYX:
		return "ZYX"
	}
	return "Unknown EulerOrder"
}

// Axis identifies a single component of a vector, as returned by the MaxAxisIndex and
// MinAxisIndex functions.
type Axis int

const (
	AxisW Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (axis Axis) String() string {
	switch axis {
	case AxisW:
		return "W"
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "Unknown Axis"
}

// Side identifies one side of a rectangle or box, for functions like Rect2.GrowSide.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideFront
	SideBack
)
