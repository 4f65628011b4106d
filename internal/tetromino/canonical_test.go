package tetromino

import "testing"

func TestEnumerateTransformsCounts(t *testing.T) {
	cases := map[Colour]int{
		ColourL: 8,
		ColourI: 2,
		ColourT: 4,
		ColourS: 4,
	}
	for c, want := range cases {
		got := EnumerateTransforms(c)
		if len(got) != want {
			t.Errorf("EnumerateTransforms(%v) has %d elements, want %d: %v", c, len(got), want, got)
		}
	}
}
