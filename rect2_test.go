package spatial

import (
	"testing"

	"github.com/hollowgrove/spatial/scalar"
)

func TestRect2HasPoint(t *testing.T) {

	rect := NewRect2FromDimensions(0, 0, 10, 10)

	if !rect.HasPoint(NewVector2(5, 5)) {
		t.Fatal("a point inside the rectangle should be contained")
	}
	// The left and top edges count; the right and bottom ones don't.
	if !rect.HasPoint(NewVector2(0, 0)) {
		t.Fatal("the top-left corner should be contained")
	}
	if rect.HasPoint(NewVector2(10, 5)) || rect.HasPoint(NewVector2(5, 10)) {
		t.Fatal("the right and bottom edges should not be contained")
	}
	if rect.HasPoint(NewVector2(-1, 5)) {
		t.Fatal("a point outside the rectangle should not be contained")
	}

}

func TestRect2Intersection(t *testing.T) {

	a := NewRect2FromDimensions(0, 0, 10, 10)
	b := NewRect2FromDimensions(5, 5, 10, 10)
	c := NewRect2FromDimensions(20, 20, 5, 5)

	if !a.Intersects(b, false) {
		t.Fatal("overlapping rectangles should intersect")
	}
	if a.Intersects(c, false) {
		t.Fatal("disjoint rectangles should not intersect")
	}

	overlap := a.Intersection(b)
	if overlap != NewRect2FromDimensions(5, 5, 5, 5) {
		t.Fatal("intersection region is wrong, got", overlap)
	}
	if a.Intersection(c) != (Rect2{}) {
		t.Fatal("the intersection of disjoint rectangles should be empty")
	}

	// Rectangles that only share an edge intersect only when borders count.
	touching := NewRect2FromDimensions(10, 0, 5, 10)
	if a.Intersects(touching, false) {
		t.Fatal("edge-touching rectangles should not intersect without borders")
	}
	if !a.Intersects(touching, true) {
		t.Fatal("edge-touching rectangles should intersect with borders included")
	}

}

func TestRect2MergeExpand(t *testing.T) {

	a := NewRect2FromDimensions(0, 0, 10, 10)
	b := NewRect2FromDimensions(15, -5, 5, 5)

	merged := a.Merge(b)
	if merged != NewRect2FromDimensions(0, -5, 20, 15) {
		t.Fatal("merge failed, got", merged)
	}

	expanded := a.Expand(NewVector2(-5, 12))
	if expanded != NewRect2FromDimensions(-5, 0, 15, 12) {
		t.Fatal("expand failed, got", expanded)
	}
	// Expanding to an interior point changes nothing.
	if a.Expand(NewVector2(5, 5)) != a {
		t.Fatal("expanding to a contained point should leave the rectangle unchanged")
	}

}

func TestRect2Grow(t *testing.T) {

	rect := NewRect2FromDimensions(4, 4, 4, 4)

	if rect.Grow(2) != NewRect2FromDimensions(2, 2, 8, 8) {
		t.Fatal("growing on all sides failed")
	}
	if rect.GrowIndividual(1, 2, 3, 4) != NewRect2FromDimensions(3, 2, 8, 10) {
		t.Fatal("growing individual sides failed")
	}
	if rect.GrowSide(SideRight, 6) != NewRect2FromDimensions(4, 4, 10, 4) {
		t.Fatal("growing a single side failed")
	}
	// A negative amount shrinks.
	if rect.Grow(-1) != NewRect2FromDimensions(5, 5, 2, 2) {
		t.Fatal("growing by a negative amount should shrink")
	}

}

func TestRect2Abs(t *testing.T) {

	rect := NewRect2FromDimensions(10, 10, -4, -6)

	abs := rect.Abs()
	if abs != NewRect2FromDimensions(6, 4, 4, 6) {
		t.Fatal("abs failed, got", abs)
	}
	if !abs.HasArea() {
		t.Fatal("the absolute rectangle should have area")
	}
	if rect.HasArea() {
		t.Fatal("a rectangle with a negative size should not report area")
	}

}

func TestRect2Support(t *testing.T) {

	rect := NewRect2FromDimensions(0, 0, 10, 20)

	if rect.Support(NewVector2(1, 1)) != NewVector2(10, 20) {
		t.Fatal("the support towards +X+Y should be the far corner")
	}
	if rect.Support(NewVector2(-1, -1)) != NewVector2(0, 0) {
		t.Fatal("the support towards -X-Y should be the position")
	}
	if rect.Support(NewVector2(1, -1)) != NewVector2(10, 0) {
		t.Fatal("the support towards +X-Y should be the top-right corner")
	}

}

func TestTransform2DXformRect(t *testing.T) {

	rect := NewRect2FromDimensions(0, 0, 2, 2)

	// A quarter turn swings the rectangle into negative X.
	rotated := NewTransform2DFromAngle(scalar.Pi/2, Vec2Zero).XformRect(rect)
	if !vec2Near(rotated.Position, NewVector2(-2, 0), 0.0001) || !vec2Near(rotated.Size, NewVector2(2, 2), 0.0001) {
		t.Fatal("rotated rectangle bounds are wrong, got", rotated)
	}

	// Translation just moves the bounds.
	moved := NewTransform2DFromAngle(0, NewVector2(5, 7)).XformRect(rect)
	if moved != NewRect2FromDimensions(5, 7, 2, 2) {
		t.Fatal("translated rectangle bounds are wrong, got", moved)
	}

}

func TestRect2iBasics(t *testing.T) {

	rect := NewRect2iFromDimensions(0, 0, 10, 10)

	if !rect.HasPoint(NewVector2i(0, 0)) || rect.HasPoint(NewVector2i(10, 5)) {
		t.Fatal("integer rectangles should follow the same edge conventions")
	}

	other := NewRect2iFromDimensions(5, 5, 10, 10)
	if rect.Intersection(other) != NewRect2iFromDimensions(5, 5, 5, 5) {
		t.Fatal("integer intersection failed")
	}

	// Touching edges never intersect in the integer version.
	touching := NewRect2iFromDimensions(10, 0, 5, 10)
	if rect.Intersects(touching) {
		t.Fatal("edge-touching integer rectangles should not intersect")
	}

	if rect.Merge(NewRect2iFromDimensions(15, -5, 5, 5)) != NewRect2iFromDimensions(0, -5, 20, 15) {
		t.Fatal("integer merge failed")
	}

	// An odd size rounds the center towards the position.
	if NewRect2iFromDimensions(0, 0, 5, 5).Center() != NewVector2i(2, 2) {
		t.Fatal("integer center should round down")
	}

}

func TestRect2Conversions(t *testing.T) {

	rect := NewRect2FromDimensions(1.7, -2.3, 10.9, 4.5)

	// Float to int truncates.
	if rect.Rect2i() != NewRect2iFromDimensions(1, -2, 10, 4) {
		t.Fatal("float-to-int conversion should truncate, got", rect.Rect2i())
	}

	back := NewRect2iFromDimensions(1, -2, 10, 4).Rect2()
	if back != NewRect2FromDimensions(1, -2, 10, 4) {
		t.Fatal("int-to-float conversion failed, got", back)
	}

}
