package tetromino

import "github.com/rsarvar1a/lits-engine/internal/geometry"

// Canonicalize collapses a transform to the representative of its
// symmetry class for the given colour: an I-tetromino has a two-fold
// symmetry (its own 180-degree rotation and either reflection equal the
// identity or a 90-degree rotation), a T-tetromino drops its four
// reflected forms onto their unreflected counterparts, an S-tetromino
// collapses its 180-degree-rotated forms, and an L-tetromino (along
// with the null colour) has no symmetry at all: every transform is its
// own class.
func Canonicalize(t geometry.Transform, c Colour) geometry.Transform {
	switch c {
	case ColourI:
		switch t {
		case geometry.IdenRot180, geometry.Reflect, geometry.ReflRot180:
			return geometry.Identity
		case geometry.IdenRot270, geometry.ReflRot90, geometry.ReflRot270:
			return geometry.IdenRot90
		default:
			return t
		}
	case ColourT:
		switch t {
		case geometry.Reflect:
			return geometry.Identity
		case geometry.ReflRot90:
			return geometry.IdenRot90
		case geometry.ReflRot180:
			return geometry.IdenRot180
		case geometry.ReflRot270:
			return geometry.IdenRot270
		default:
			return t
		}
	case ColourS:
		switch t {
		case geometry.IdenRot180:
			return geometry.Identity
		case geometry.IdenRot270:
			return geometry.IdenRot90
		case geometry.ReflRot180:
			return geometry.Reflect
		case geometry.ReflRot270:
			return geometry.ReflRot90
		default:
			return t
		}
	default:
		return t
	}
}

// EnumerateTransforms returns the distinct canonical transforms for a
// colour, in a fixed order: all 8 for L (and the null colour), 2 for I,
// 4 for T, 4 for S.
func EnumerateTransforms(c Colour) []geometry.Transform {
	seen := make(map[geometry.Transform]bool, 8)
	out := make([]geometry.Transform, 0, 8)
	for _, t := range geometry.Transforms {
		canon := Canonicalize(t, c)
		if !seen[canon] {
			seen[canon] = true
			out = append(out, canon)
		}
	}
	return out
}
