package geometry

// Transform is one of the eight elements of the dihedral group of the
// square: the four rotations of the identity and the four rotations of
// a single reflection.
type Transform int

const (
	Identity Transform = iota
	IdenRot90
	IdenRot180
	IdenRot270
	Reflect
	ReflRot90
	ReflRot180
	ReflRot270
)

// Transforms lists every transform in a fixed, stable order.
var Transforms = [8]Transform{
	Identity, IdenRot90, IdenRot180, IdenRot270,
	Reflect, ReflRot90, ReflRot180, ReflRot270,
}

var transformNames = [8]string{
	"Identity", "IdenRot90", "IdenRot180", "IdenRot270",
	"Reflect", "ReflRot90", "ReflRot180", "ReflRot270",
}

func (t Transform) String() string {
	if t < 0 || int(t) >= len(transformNames) {
		return "Transform(?)"
	}
	return transformNames[t]
}

// Apply maps a point through the transform, as if the point were
// expressed relative to the transform's own anchor at the origin.
func (t Transform) Apply(p Point) Point {
	switch t {
	case Identity:
		return Point{X: p.X, Y: p.Y}
	case IdenRot90:
		return Point{X: p.Y, Y: -p.X}
	case IdenRot180:
		return Point{X: -p.X, Y: -p.Y}
	case IdenRot270:
		return Point{X: -p.Y, Y: p.X}
	case Reflect:
		return Point{X: -p.X, Y: p.Y}
	case ReflRot90:
		return Point{X: p.Y, Y: p.X}
	case ReflRot180:
		return Point{X: p.X, Y: -p.Y}
	case ReflRot270:
		return Point{X: -p.Y, Y: -p.X}
	default:
		return p
	}
}

var rotateNext = [8]Transform{
	IdenRot90, IdenRot180, IdenRot270, Identity,
	ReflRot90, ReflRot180, ReflRot270, Reflect,
}

var reflectOf = [8]Transform{
	Reflect, ReflRot90, ReflRot180, ReflRot270,
	Identity, IdenRot90, IdenRot180, IdenRot270,
}

// Rotate returns the transform one quarter-turn further around its own
// cycle (identity-rotations cycle among themselves, as do
// reflection-rotations).
func (t Transform) Rotate() Transform {
	return rotateNext[t]
}

// Reflected returns the transform obtained by composing a reflection
// with t; it is its own inverse.
func (t Transform) Reflected() Transform {
	return reflectOf[t]
}

// Add composes two transforms: (t.Add(u)).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Add(u Transform) Transform {
	tRot, tRefl := int(t)%4, t >= Reflect
	uRot, uRefl := int(u)%4, u >= Reflect
	// A reflection applied after a rotation reverses that rotation's
	// direction.
	if tRefl {
		uRot = -uRot
	}
	rot := ((tRot+uRot)%4 + 4) % 4
	if tRefl != uRefl {
		return Transform(int(Reflect) + rot)
	}
	return Transform(rot)
}

// Normalize shifts points so their minimum x and y are both zero,
// returning the anchor that was subtracted.
func Normalize(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	minX, minY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	anchor := Point{X: minX, Y: minY}
	for i := range points {
		points[i] = points[i].Sub(anchor)
	}
	return anchor
}
