package geometry

import "testing"

func TestTransformIsSelfInverseWhereExpected(t *testing.T) {
	// Reflected applied twice returns every rotation-family transform unchanged.
	for _, tr := range []Transform{Identity, IdenRot90, IdenRot180, IdenRot270} {
		if tr.Reflected().Reflected() != tr {
			t.Errorf("Reflected is not involutive for %v", tr)
		}
	}
}

func TestRotateCyclesInFour(t *testing.T) {
	tr := Identity
	for i := 0; i < 4; i++ {
		tr = tr.Rotate()
	}
	if tr != Identity {
		t.Errorf("four rotations should return to Identity, got %v", tr)
	}
}

func TestAddComposesApplication(t *testing.T) {
	p := Point{X: 1, Y: 2}
	for _, t1 := range Transforms {
		for _, t2 := range Transforms {
			composed := t1.Add(t2)
			got := composed.Apply(p)
			want := t1.Apply(t2.Apply(p))
			if got != want {
				t.Errorf("(%v+%v).Apply(%v) = %v, want %v", t1, t2, p, got, want)
			}
		}
	}
}

func TestNormalizeAnchorsAtOrigin(t *testing.T) {
	points := []Point{{X: 3, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}}
	anchor := Normalize(points)
	if anchor != (Point{X: 3, Y: 4}) {
		t.Fatalf("anchor = %v, want {3 4}", anchor)
	}
	minX, minY := points[0].X, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	if minX != 0 || minY != 0 {
		t.Fatalf("normalized points not anchored at origin: %v", points)
	}
}
