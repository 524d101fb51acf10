package spatial

import (
	"math/rand"
	"testing"

	"github.com/hollowgrove/spatial/scalar"
)

func floatNear(a, b, tolerance Float) bool {
	return scalar.Abs(a-b) < tolerance
}

func vec3Near(a, b Vector3, tolerance Float) bool {
	return floatNear(a.X, b.X, tolerance) && floatNear(a.Y, b.Y, tolerance) && floatNear(a.Z, b.Z, tolerance)
}

func TestVector3Arithmetic(t *testing.T) {

	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	if a.Add(b) != NewVector3(5, 7, 9) {
		t.Fatal("vector addition failed")
	}
	if b.Sub(a) != NewVector3(3, 3, 3) {
		t.Fatal("vector subtraction failed")
	}
	if a.Mul(b) != NewVector3(4, 10, 18) {
		t.Fatal("component-wise multiplication failed")
	}
	if a.Scale(2) != NewVector3(2, 4, 6) {
		t.Fatal("scaling failed")
	}
	if a.Negated() != NewVector3(-1, -2, -3) {
		t.Fatal("negation failed")
	}

	if a.Dot(b) != 32 {
		t.Fatal("dot product should be 32, got", a.Dot(b))
	}
	if Vec3Right.Cross(Vec3Up) != Vec3Back {
		t.Fatal("X cross Y should be Z")
	}

}

func TestVector3Length(t *testing.T) {

	v := NewVector3(2, 3, 6)

	if v.Length() != 7 {
		t.Fatal("length of (2, 3, 6) should be 7")
	}
	if v.LengthSquared() != 49 {
		t.Fatal("squared length of (2, 3, 6) should be 49")
	}
	if !v.Normalized().IsNormalized() {
		t.Fatal("a normalized vector should report as normalized")
	}
	if !Vec3Zero.Normalized().IsZeroApprox() {
		t.Fatal("normalizing a zero vector should return a zero vector")
	}

	if NewVector3(1, 2, 2).DistanceTo(NewVector3(1, 2, 5)) != 3 {
		t.Fatal("distance calculation failed")
	}

}

func TestVector3Interpolation(t *testing.T) {

	a := NewVector3(0, 0, 0)
	b := NewVector3(10, -10, 4)

	if a.Lerp(b, 0.5) != NewVector3(5, -5, 2) {
		t.Fatal("lerp midpoint failed")
	}

	// Slerping between perpendicular unit vectors walks the arc.
	mid := Vec3Right.Slerp(Vec3Up, 0.5)
	if !floatNear(mid.Length(), 1, 0.0001) {
		t.Fatal("slerp between unit vectors should stay on the unit sphere")
	}
	if !floatNear(Vec3Right.AngleTo(mid), scalar.Pi/4, 0.0001) {
		t.Fatal("slerp midpoint should sit halfway along the arc")
	}

	moved := a.MoveToward(NewVector3(6, 0, 8), 5)
	if !vec3Near(moved, NewVector3(3, 0, 4), 0.0001) {
		t.Fatal("MoveToward should step by the given delta")
	}

	// Colinear vectors have no rotation axis, so slerp falls back to lerp.
	colinear := NewVector3(1, 1, 1).Slerp(NewVector3(2, 2, 2), 0.5)
	if !vec3Near(colinear, NewVector3(1.5, 1.5, 1.5), 0.0001) {
		t.Fatal("slerp between colinear vectors should behave like lerp, got", colinear)
	}

	// Same for zero-length inputs; one or both.
	if Vec3Zero.Slerp(Vec3Zero, 0.5) != Vec3Zero {
		t.Fatal("slerp between zero vectors should return a zero vector")
	}
	fromZero := Vec3Zero.Slerp(NewVector3(1, 1, 1), 0.5)
	if !vec3Near(fromZero, NewVector3(0.5, 0.5, 0.5), 0.0001) {
		t.Fatal("slerp from a zero vector should behave like lerp, got", fromZero)
	}

}

func TestVector3Rotated(t *testing.T) {

	rotated := Vec3Right.Rotated(Vec3Up, scalar.Pi/2)
	if !vec3Near(rotated, Vec3Forward, 0.0001) {
		t.Fatal("rotating +X a quarter turn around +Y should give -Z, got", rotated)
	}

	// A full turn lands back where it started.
	v := NewVector3(1, 2, 3)
	if !vec3Near(v.Rotated(Vec3Up, scalar.Pi*2), v, 0.001) {
		t.Fatal("rotating by a full turn should return the original vector")
	}

}

func TestVector3Reflection(t *testing.T) {

	incoming := NewVector3(1, -1, 0)

	bounced := incoming.Bounce(Vec3Up)
	if !vec3Near(bounced, NewVector3(1, 1, 0), 0.0001) {
		t.Fatal("bouncing off a floor should flip the vertical component")
	}

	slid := incoming.Slide(Vec3Up)
	if !vec3Near(slid, NewVector3(1, 0, 0), 0.0001) {
		t.Fatal("sliding along a floor should drop the vertical component")
	}

}

func TestVector3OctahedronEncode(t *testing.T) {

	// Encoding only works on unit vectors; decode should round-trip them.
	vectors := []Vector3{
		Vec3Up,
		Vec3Down,
		Vec3Right,
		Vec3Forward,
		NewVector3(1, 1, 1).Normalized(),
		NewVector3(-0.3, 0.8, -0.1).Normalized(),
	}

	for i, v := range vectors {
		decoded := OctahedronDecode(v.OctahedronEncode())
		if !vec3Near(decoded, v, 0.001) {
			t.Fatal("octahedron round-trip failed on vector #", i, ":", v, "became", decoded)
		}
	}

}

func BenchmarkVector3Math(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector3, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, NewVector3(Float(rand.Float64()), Float(rand.Float64()), Float(rand.Float64())))
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func BenchmarkVector3Normalized(b *testing.B) {

	b.ReportAllocs()

	v := NewVector3(1.5, -2.25, 8)

	for i := 0; i < b.N; i++ {
		v.Normalized()
	}

}
