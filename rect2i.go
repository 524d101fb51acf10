package spatial

import (
	"fmt"
)

// Rect2i is the integer counterpart of Rect2; an axis-aligned rectangle in 2D space with
// integer position and size, usable for pixel-space regions and fast overlap tests.
// Negative sizes aren't supported; use Abs to get an equivalent Rect2i with a non-negative
// size.
type Rect2i struct {
	Position Vector2i // The origin point, usually the top-left corner.
	Size     Vector2i // The rectangle's width and height, starting from Position.
}

// NewRect2i creates a new Rect2i with the given position and size.
func NewRect2i(position, size Vector2i) Rect2i {
	return Rect2i{Position: position, Size: size}
}

// NewRect2iFromDimensions creates a new Rect2i with its position set to (x, y) and its size
// to (width, height).
func NewRect2iFromDimensions(x, y, width, height int32) Rect2i {
	return NewRect2i(NewVector2i(x, y), NewVector2i(width, height))
}

// End returns the ending point, usually the bottom-right corner; Position + Size.
func (rect Rect2i) End() Vector2i {
	return rect.Position.Add(rect.Size)
}

// SetEnd returns a copy of the rectangle with its size adjusted so the ending point lands on
// end.
func (rect Rect2i) SetEnd(end Vector2i) Rect2i {
	rect.Size = end.Sub(rect.Position)
	return rect
}

// Abs returns an equivalent rectangle with non-negative width and height, and with Position
// being the top-left corner.
func (rect Rect2i) Abs() Rect2i {
	return NewRect2i(rect.Position.Add(rect.Size.Mini(0)), rect.Size.Abs())
}

// Area returns the rectangle's area; Size.X * Size.Y. See also HasArea.
func (rect Rect2i) Area() int32 {
	return rect.Size.X * rect.Size.Y
}

// Center returns the center point of the rectangle. If the size is odd, the result is rounded
// towards Position.
func (rect Rect2i) Center() Vector2i {
	return rect.Position.Add(NewVector2i(rect.Size.X/2, rect.Size.Y/2))
}

// Encloses returns true if this rectangle completely encloses the b rectangle.
func (rect Rect2i) Encloses(b Rect2i) bool {
	return b.Position.X >= rect.Position.X &&
		b.Position.Y >= rect.Position.Y &&
		b.Position.X+b.Size.X <= rect.Position.X+rect.Size.X &&
		b.Position.Y+b.Size.Y <= rect.Position.Y+rect.Size.Y
}

// Expand returns a copy of this rectangle expanded to align its edges with the given point,
// if necessary.
func (rect Rect2i) Expand(to Vector2i) Rect2i {
	begin := rect.Position
	end := rect.Position.Add(rect.Size)

	if to.X < begin.X {
		begin.X = to.X
	}
	if to.Y < begin.Y {
		begin.Y = to.Y
	}
	if to.X > end.X {
		end.X = to.X
	}
	if to.Y > end.Y {
		end.Y = to.Y
	}

	rect.Position = begin
	rect.Size = end.Sub(begin)
	return rect
}

// Grow returns a copy of this rectangle extended on all sides by the given amount. A negative
// amount shrinks it instead.
func (rect Rect2i) Grow(amount int32) Rect2i {
	rect.Position.X -= amount
	rect.Position.Y -= amount
	rect.Size.X += amount * 2
	rect.Size.Y += amount * 2
	return rect
}

// GrowIndividual returns a copy of this rectangle with its left, top, right, and bottom sides
// extended by the given amounts. Negative values shrink the sides instead.
func (rect Rect2i) GrowIndividual(left, top, right, bottom int32) Rect2i {
	rect.Position.X -= left
	rect.Position.Y -= top
	rect.Size.X += left + right
	rect.Size.Y += top + bottom
	return rect
}

// GrowSide returns a copy of this rectangle with the given side extended by amount. A
// negative amount shrinks it instead.
func (rect Rect2i) GrowSide(side Side, amount int32) Rect2i {
	var left, top, right, bottom int32
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
func (rect Rect2i) HasArea() bool {
	return rect.Size.X > 0 && rect.Size.Y > 0
}

// HasPoint returns true if the rectangle contains the given point. By convention, points on
// the right and bottom edges are not included.
func (rect Rect2i) HasPoint(point Vector2i) bool {
	if point.X < rect.Position.X {
		return false
	}
	if point.Y < rect.Position.Y {
		return false
	}
	if point.X >= rect.Position.X+rect.Size.X {
		return false
	}
	if point.Y >= rect.Position.Y+rect.Size.Y {
		return false
	}
	return true
}

// Intersection returns the intersection between this rectangle and b; an empty Rect2i if
// they don't intersect.
func (rect Rect2i) Intersection(b Rect2i) Rect2i {
	if !rect.Intersects(b) {
		return Rect2i{}
	}

	newRect := b
	newRect.Position = b.Position.Max(rect.Position)

	bEnd := b.Position.Add(b.Size)
	end := rect.Position.Add(rect.Size)

	newRect.Size = bEnd.Min(end).Sub(newRect.Position)

	return newRect
}

// Intersects returns true if this rectangle overlaps with the b rectangle. The edges of both
// rectangles are excluded.
func (rect Rect2i) Intersects(b Rect2i) bool {
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
	return true
}

// Merge returns a Rect2i that encloses both this rectangle and b around the edges.
func (rect Rect2i) Merge(b Rect2i) Rect2i {
	var newRect Rect2i

	newRect.Position = b.Position.Min(rect.Position)
	newRect.Size = b.Position.Add(b.Size).Max(rect.Position.Add(rect.Size))
	newRect.Size = newRect.Size.Sub(newRect.Position) // Make relative again.

	return newRect
}

// Rect2 returns this Rect2i converted to a float Rect2.
func (rect Rect2i) Rect2() Rect2 {
	return NewRect2(rect.Position.Vector2(), rect.Size.Vector2())
}

func (rect Rect2i) String() string {
	return fmt.Sprintf("Rect2i[P: %s, S: %s]", rect.Position, rect.Size)
}
