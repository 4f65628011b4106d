package tetromino

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/rsarvar1a/lits-engine/internal/geometry"
)

// Tetromino is an immutable placement of one of the four LITS shapes:
// a colour, an anchor point, the transform that was applied to the
// shape's reference form, and the four absolute points it covers.
type Tetromino struct {
	colour    Colour
	anchor    geometry.Point
	transform geometry.Transform
	points    [4]geometry.Point
}

// referenceShapes gives each colour's four points at the origin, in the
// exact order their absolute notation is built from.
var referenceShapes = map[Colour][4]geometry.Point{
	ColourL: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	ColourI: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	ColourT: {{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	ColourS: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}},
}

// ReferenceTetromino builds the untransformed shape for a colour at a
// given anchor.
func ReferenceTetromino(c Colour, anchor geometry.Point) Tetromino {
	shape := referenceShapes[c]
	var points [4]geometry.Point
	for i, p := range shape {
		points[i] = anchor.Add(p)
	}
	return Tetromino{colour: c, anchor: anchor, transform: geometry.Identity, points: points}
}

// New builds the tetromino obtained by applying transform to colour's
// reference shape, canonicalizing the transform first, then shifting
// the result so its bounding box's minimum corner lies on anchor.
func New(c Colour, anchor geometry.Point, t geometry.Transform) Tetromino {
	t = Canonicalize(t, c)
	ref := referenceShapes[c]
	rel := make([]geometry.Point, len(ref))
	for i, p := range ref {
		rel[i] = t.Apply(p)
	}
	geometry.Normalize(rel)
	var points [4]geometry.Point
	for i, p := range rel {
		points[i] = anchor.Add(p)
	}
	return Tetromino{colour: c, anchor: anchor, transform: t, points: points}
}

// constructRaw builds a tetromino from already-computed absolute
// points, without recomputing them from the reference shape. Used by
// Transformed, which needs to preserve the original anchor rather than
// whatever Normalize would compute for the transformed points.
func constructRaw(c Colour, anchor geometry.Point, points [4]geometry.Point, t geometry.Transform) Tetromino {
	return Tetromino{colour: c, anchor: anchor, transform: t, points: points}
}

// Colour returns the tetromino's shape colour.
func (t Tetromino) Colour() Colour { return t.colour }

// Anchor returns the tetromino's anchor point.
func (t Tetromino) Anchor() geometry.Point { return t.anchor }

// Transform returns the canonical transform applied to reach this
// tetromino from its reference shape.
func (t Tetromino) Transform() geometry.Transform { return t.transform }

// Points returns the tetromino's four absolute points, in stored order.
func (t Tetromino) Points() [4]geometry.Point { return t.points }

// IsNull reports whether this is the reserved null tetromino (the
// sentinel bound to ID 0, used as a placeholder "no action" value).
func (t Tetromino) IsNull() bool { return t.colour == ColourNone }

// Transformed applies an additional transform on top of this
// tetromino's existing placement, returning the new tetromino. The
// transform being applied is itself canonicalized for the tetromino's
// colour before being composed, matching this shape's symmetry classes.
// The returned points are normalized so their minimum x and y are zero;
// the anchor stays t's anchor.
func (t Tetromino) Transformed(apply geometry.Transform) Tetromino {
	canonApply := Canonicalize(apply, t.colour)
	points := make([]geometry.Point, 4)
	for i, p := range t.points {
		points[i] = canonApply.Apply(p)
	}
	geometry.Normalize(points)
	var arr [4]geometry.Point
	copy(arr[:], points)
	newTransform := Canonicalize(canonApply.Add(t.transform), t.colour)
	return constructRaw(t.colour, t.anchor, arr, newTransform)
}

// EnumerateTransforms returns every distinct tetromino reachable from t
// by re-anchoring its reference shape through each of its colour's
// canonical transforms, at t's own anchor.
func (t Tetromino) EnumerateTransforms() []Tetromino {
	transforms := EnumerateTransforms(t.colour)
	out := make([]Tetromino, 0, len(transforms))
	for _, tr := range transforms {
		out = append(out, New(t.colour, t.anchor, tr))
	}
	return out
}

// Attaches returns the set of on-board points that orthogonally border
// this tetromino without being one of its own points: the cells where a
// different tetromino could attach to it.
func (t Tetromino) Attaches() []geometry.Point {
	own := map[geometry.Point]bool{}
	for _, p := range t.points {
		own[p] = true
	}
	seen := map[geometry.Point]bool{}
	out := make([]geometry.Point, 0, 8)
	for _, p := range t.points {
		for _, n := range p.NeighboursOnBoard() {
			if own[n] || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Notate renders the tetromino in its wire form: "C[p1,p2,p3,p4]" with
// absolute points in stored order.
func (t Tetromino) Notate() string {
	return fmt.Sprintf("%s[%s,%s,%s,%s]", t.colour.Notate(),
		t.points[0].Notate(), t.points[1].Notate(), t.points[2].Notate(), t.points[3].Notate())
}

func (t Tetromino) String() string { return t.Notate() }

var notationPattern = regexp.MustCompile(`^([LITSlitsRrYyGgBb])\[(\d{2}),(\d{2}),(\d{2}),(\d{2})\]$`)

// Parse parses a tetromino from its wire notation. The given absolute
// points must form the shape of the named colour in one of its
// orientations; other shapes are not tried.
func Parse(s string) (Tetromino, error) {
	m := notationPattern.FindStringSubmatch(s)
	if m == nil {
		return Tetromino{}, fmt.Errorf("tetromino: %q does not match the expected notation", s)
	}
	colour, err := ParseColour(m[1])
	if err != nil {
		return Tetromino{}, fmt.Errorf("tetromino: %q: %w", s, err)
	}
	var points [4]geometry.Point
	for i := 0; i < 4; i++ {
		p, err := geometry.ParsePoint(m[2+i])
		if err != nil {
			return Tetromino{}, fmt.Errorf("tetromino: %q: %w", s, err)
		}
		points[i] = p
	}
	return FromPointsWithColour(colour, points)
}

// FromPointsWithColour finds the transform and anchor that place
// colour's reference shape onto the given absolute points (as a set,
// not an ordered sequence), returning the resulting tetromino.
func FromPointsWithColour(c Colour, points [4]geometry.Point) (Tetromino, error) {
	normPoints := make([]geometry.Point, 4)
	copy(normPoints, points[:])
	anchor := geometry.Normalize(normPoints)
	return FromPointsWithAnchor(c, anchor, points)
}

// FromPointsWithAnchor tries every canonical transform of colour's
// reference shape at the given anchor until one produces exactly the
// given set of absolute points.
func FromPointsWithAnchor(c Colour, anchor geometry.Point, points [4]geometry.Point) (Tetromino, error) {
	template := ReferenceTetromino(c, anchor)
	want := map[geometry.Point]bool{}
	for _, p := range points {
		want[p] = true
	}
	for _, candidate := range template.EnumerateTransforms() {
		if len(candidate.points) != len(points) {
			continue
		}
		match := true
		for _, p := range candidate.points {
			if !want[p] {
				match = false
				break
			}
		}
		if match {
			return candidate, nil
		}
	}
	return Tetromino{}, fmt.Errorf("tetromino: no %s placement matches the given points", c.Notate())
}

// FromPoints tries every colour in turn to find one whose reference
// shape, suitably transformed, matches the given absolute points.
func FromPoints(points [4]geometry.Point) (Tetromino, error) {
	for _, c := range Colours {
		if t, err := FromPointsWithColour(c, points); err == nil {
			return t, nil
		}
	}
	return Tetromino{}, fmt.Errorf("tetromino: no shape matches the given points")
}

// Less gives tetrominoes a total, deterministic order: by colour index,
// then anchor (x then y), then transform. It is used to build the
// process-wide ID bijection in a reproducible order.
func Less(a, b Tetromino) bool {
	if a.colour != b.colour {
		return a.colour < b.colour
	}
	if a.anchor.X != b.anchor.X {
		return a.anchor.X < b.anchor.X
	}
	if a.anchor.Y != b.anchor.Y {
		return a.anchor.Y < b.anchor.Y
	}
	return a.transform < b.transform
}
