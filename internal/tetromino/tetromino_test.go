package tetromino

import (
	"testing"

	"github.com/rsarvar1a/lits-engine/internal/geometry"
)

func TestNotateParseRoundTrip(t *testing.T) {
	for _, c := range Colours {
		for _, tr := range EnumerateTransforms(c) {
			orig := New(c, geometry.Point{X: 3, Y: 3}, tr)
			parsed, err := Parse(orig.Notate())
			if err != nil {
				t.Fatalf("Parse(%q): %v", orig.Notate(), err)
			}
			if parsed.Colour() != orig.Colour() {
				t.Errorf("colour mismatch: %v vs %v", parsed, orig)
			}
			if parsed.Points() != orig.Points() {
				t.Errorf("points mismatch: %v vs %v", parsed.Points(), orig.Points())
			}
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "Z[00,01,02,12]", "L[00,01,02]", "L00,01,02,12"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): want error", s)
		}
	}
}

func TestFromPointsDetectsShape(t *testing.T) {
	l := New(ColourL, geometry.Point{X: 2, Y: 2}, geometry.IdenRot90)
	found, err := FromPoints(l.Points())
	if err != nil {
		t.Fatalf("FromPoints: %v", err)
	}
	if found.Colour() != ColourL {
		t.Errorf("detected colour %v, want L", found.Colour())
	}
	if found.Points() != l.Points() {
		t.Errorf("detected points %v, want %v", found.Points(), l.Points())
	}
}

func TestAttachesExcludeOwnAndOffboardPoints(t *testing.T) {
	l := New(ColourL, geometry.Point{X: 0, Y: 0}, geometry.Identity)
	own := map[geometry.Point]bool{}
	for _, p := range l.Points() {
		own[p] = true
	}
	for _, a := range l.Attaches() {
		if own[a] {
			t.Errorf("attach point %v is one of the tetromino's own points", a)
		}
		if !a.InBounds() {
			t.Errorf("attach point %v is off board", a)
		}
	}
}
