package geometry

import (
	"math"
	"testing"
)

func TestVectorAdd(t *testing.T) {
	v := Vector{DX: 1, DY: 2}.Add(Vector{DX: 3, DY: -5})

	if v.DX != 4 || v.DY != -3 {
		t.Errorf("Add() = %+v, want {4 -3}", v)
	}
}

func TestVectorScale(t *testing.T) {
	v := Vector{DX: 2, DY: -3}.Scale(0.5)

	if v.DX != 1 || v.DY != -1.5 {
		t.Errorf("Scale() = %+v, want {1 -1.5}", v)
	}
}

func TestVectorLength(t *testing.T) {
	if got := (Vector{DX: 3, DY: 4}).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := (Vector{}).Length(); got != 0 {
		t.Errorf("Length() of zero vector = %v, want 0", got)
	}
}

func TestPointSub(t *testing.T) {
	v := Point{X: 10, Y: 0}.Sub(Point{X: 4, Y: 3})

	if v.DX != 6 || v.DY != -3 {
		t.Errorf("Sub() = %+v, want {6 -3}", v)
	}
}

func TestPointTranslate(t *testing.T) {
	p := Point{X: 1, Y: 1}.Translate(Vector{DX: -1, DY: 2})

	if p.X != 0 || p.Y != 3 {
		t.Errorf("Translate() = %+v, want {0 3}", p)
	}
}

func TestDistance(t *testing.T) {
	got := Distance(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})

	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Distance() = %v, want sqrt(2)", got)
	}
}
