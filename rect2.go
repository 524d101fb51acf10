package spatial

import (
	"fmt"
)

// Rect2 represents an axis-aligned rectangle in 2D space, defined by a position (usually the
// top-left corner) and a size. It's frequently used for fast overlap tests; while a Rect2
// itself is axis-aligned, it can be combined with a Transform2D to represent a rotated or
// skewed rectangle.
// Negative sizes aren't supported; most Rect2 functions don't work correctly with them. Use
// Abs to get an equivalent Rect2 with a non-negative size.
type Rect2 struct {
	Position Vector2 // The origin point, usually the top-left corner.
	Size     Vector2 // The rectangle's width and height, starting from Position.
}

// NewRect2 creates a new Rect2 with the given position and size.
func NewRect2(position, size Vector2) Rect2 {
	return Rect2{Position: position, Size: size}
}

// NewRect2FromDimensions creates a new Rect2 with its position set to (x, y) and its size to
// (width, height).
func NewRect2FromDimensions(x, y, width, height Float) Rect2 {
	return NewRect2(NewVector2(x, y), NewVector2(width, height))
}

// End returns the ending point, usually the bottom-right corner; Position + Size.
func (rect Rect2) End() Vector2 {
	return rect.Position.Add(rect.Size)
}

// SetEnd returns a copy of the rectangle with its size adjusted so the ending point lands on
// end.
func (rect Rect2) SetEnd(end Vector2) Rect2 {
	rect.Size = end.Sub(rect.Position)
	return rect
}

// Abs returns an equivalent rectangle with non-negative width and height, and with Position
// being the top-left corner. Call this before using the other functions on a rectangle that
// might carry a negative size.
func (rect Rect2) Abs() Rect2 {
	return NewRect2(rect.Position.Add(rect.Size.Minf(0)), rect.Size.Abs())
}

// Area returns the rectangle's area; Size.X * Size.Y. See also HasArea.
func (rect Rect2) Area() Float {
	return rect.Size.X * rect.Size.Y
}

// Center returns the center point of the rectangle; Position + Size/2.
func (rect Rect2) Center() Vector2 {
	return rect.Position.Add(rect.Size.Divf(2))
}

// Encloses returns true if this rectangle completely encloses the b rectangle.
func (rect Rect2) Encloses(b Rect2) bool {
	return b.Position.X >= rect.Position.X &&
		b.Position.Y >= rect.Position.Y &&
		b.Position.X+b.Size.X <= rect.Position.X+rect.Size.X &&
		b.Position.Y+b.Size.Y <= rect.Position.Y+rect.Size.Y
}

// Expand returns a copy of this rectangle expanded to align its edges with the given point,
// if necessary.
func (rect Rect2) Expand(to Vector2) Rect2 {
	begin := rect.Position.Min(to)
	end := rect.End().Max(to)
	return NewRect2(begin, end.Sub(begin))
}

// Grow returns a copy of this rectangle extended on all sides by the given amount. A negative
// amount shrinks it instead.
func (rect Rect2) Grow(amount Float) Rect2 {
	rect.Position.X -= amount
	rect.Position.Y -= amount
	rect.Size.X += amount * 2
	rect.Size.Y += amount * 2
	return rect
}

// GrowIndividual returns a copy of this rectangle with its left, top, right, and bottom sides
// extended by the given amounts. Negative values shrink the sides instead.
func (rect Rect2) GrowIndividual(left, top, right, bottom Float) Rect2 {
	rect.Position.X -= left
	rect.Position.Y -= top
	rect.Size.X += left + right
	rect.Size.Y += top + bottom
	return rect
}

// GrowSide returns a copy of this rectangle with the given side extended by amount. A
// negative amount shrinks it instead.
func (rect Rect2) GrowSide(side Side, amount Float) Rect2 {
	var left, top, right, bottom Float
	switch side {
	case SideLeft:
		left = amount
	case SideTop:
		top = amount
	case SideRight:
		right = amount
	case SideBottom:
		bottom = amount
	}
	return rect.GrowIndividual(left, top, right, bottom)
}

// HasArea returns true if this rectangle has positive width and height.
func (rect Rect2) HasArea() bool {
	return rect.Size.X > 0 && rect.Size.Y > 0
}

// HasPoint returns true if the rectangle contains the given point. By convention, points on
// the right and bottom edges are not included.
// Not reliable for a rectangle with a negative size; use Abs first.
func (rect Rect2) HasPoint(point Vector2) bool {
	return point.X >= rect.Position.X &&
		point.Y >= rect.Position.Y &&
		point.X < rect.Position.X+rect.Size.X &&
		point.Y < rect.Position.Y+rect.Size.Y
}

// Intersection returns the intersection between this rectangle and b; an empty Rect2 if they
// don't intersect. If you only need to know whether they overlap, use Intersects instead.
func (rect Rect2) Intersection(b Rect2) Rect2 {
	if !rect.Intersects(b, false) {
		return Rect2{}
	}

	newRect := b
	newRect.Position = b.Position.Max(rect.Position)

	bEnd := b.Position.Add(b.Size)
	end := rect.Position.Add(rect.Size)

	newRect.Size = bEnd.Min(end).Sub(newRect.Position)

	return newRect
}

// Intersects returns true if this rectangle overlaps with the b rectangle. The edges of both
// rectangles are excluded, unless includeBorders is true.
func (rect Rect2) Intersects(b Rect2, includeBorders bool) bool {
	if includeBorders {
		if rect.Position.X > b.Position.X+b.Size.X {
			return false
		}
		if rect.Position.X+rect.Size.X < b.Position.X {
			return false
		}
		if rect.Position.Y > b.Position.Y+b.Size.Y {
			return false
		}
		if rect.Position.Y+rect.Size.Y < b.Position.Y {
			return false
		}
	} else {
		if rect.Position.X >= b.Position.X+b.Size.X {
			return false
		}
		if rect.Position.X+rect.Size.X <= b.Position.X {
			return false
		}
		if rect.Position.Y >= b.Position.Y+b.Size.Y {
			return false
		}
		if rect.Position.Y+rect.Size.Y <= b.Position.Y {
			return false
		}
	}
	return true
}

// Merge returns a Rect2 that encloses both this rectangle and b around the edges.
func (rect Rect2) Merge(b Rect2) Rect2 {
	var newRect Rect2

	newRect.Position = b.Position.Min(rect.Position)
	newRect.Size = b.Position.Add(b.Size).Max(rect.Position.Add(rect.Size))
	newRect.Size = newRect.Size.Sub(newRect.Position) // Make relative again.

	return newRect
}

// Support returns the vertex of the rectangle that's furthest along the given direction; the
// support point used in collision detection algorithms.
func (rect Rect2) Support(direction Vector2) Vector2 {
	support := rect.Position
	if direction.X > 0 {
		support.X += rect.Size.X
	}
	if direction.Y > 0 {
		support.Y += rect.Size.Y
	}
	return support
}

// IsEqualApprox returns true if this rectangle and other are approximately equal, comparing
// the positions and the sizes.
func (rect Rect2) IsEqualApprox(other Rect2) bool {
	return rect.Position.IsEqualApprox(other.Position) && rect.Size.IsEqualApprox(other.Size)
}

// IsFinite returns true if the rectangle's position and size are finite.
func (rect Rect2) IsFinite() bool {
	return rect.Position.IsFinite() && rect.Size.IsFinite()
}

// Rect2i returns this Rect2 with its position and size truncated to integers.
func (rect Rect2) Rect2i() Rect2i {
	return NewRect2i(rect.Position.Vector2i(), rect.Size.Vector2i())
}

// XformRect returns the rectangle transformed by this transform, expanded to cover all four
// transformed corners; the tightest axis-aligned fit around the rotated rectangle.
func (trans Transform2D) XformRect(rect Rect2) Rect2 {
	x := trans.X.Scale(rect.Size.X)
	y := trans.Y.Scale(rect.Size.Y)
	pos := trans.Xform(rect.Position)

	rect.Position = pos
	rect = rect.Expand(pos.Add(x))
	rect = rect.Expand(pos.Add(y))
	rect = rect.Expand(pos.Add(x).Add(y))
	return rect
}

func (rect Rect2) String() string {
	return fmt.Sprintf("Rect2[P: %s, S: %s]", rect.Position, rect.Size)
}
