package geometry

import "testing"

func TestPointNotateParseRoundTrip(t *testing.T) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := Point{X: x, Y: y}
			got, err := ParsePoint(p.Notate())
			if err != nil {
				t.Fatalf("ParsePoint(%q): %v", p.Notate(), err)
			}
			if got != p {
				t.Fatalf("round trip mismatch: %v -> %q -> %v", p, p.Notate(), got)
			}
		}
	}
}

func TestParsePointRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "1", "123", "ab"} {
		if _, err := ParsePoint(s); err == nil {
			t.Errorf("ParsePoint(%q): want error, got nil", s)
		}
	}
}

func TestPotentialAnchorsAllCoverP(t *testing.T) {
	p := Point{X: 5, Y: 5}
	for _, anchor := range p.PotentialAnchors() {
		if !anchor.InBounds() {
			t.Errorf("anchor %v out of bounds", anchor)
		}
		dx, dy := p.X-anchor.X, p.Y-anchor.Y
		if dx < 0 || dx > 3 || dy < 0 || dy > 3-dx {
			t.Errorf("anchor %v does not satisfy the triangular offset bound for %v", anchor, p)
		}
	}
}

func TestNeighboursOnBoardCorner(t *testing.T) {
	p := Point{X: 0, Y: 0}
	got := p.NeighboursOnBoard()
	if len(got) != 2 {
		t.Fatalf("corner point should have 2 on-board neighbours, got %d: %v", len(got), got)
	}
}
