// Package tetromino implements the LITS piece shapes, their notation,
// and the process-wide bijection between tetrominoes and small integer
// IDs used as the MCTS action space.
package tetromino

import "fmt"

// Colour identifies a piece shape: L, I, T, or S. None marks an
// uncovered cell or the null action.
type Colour int

const (
	ColourNone Colour = iota
	ColourL
	ColourI
	ColourT
	ColourS
)

// Colours lists every real colour, in the canonical LITS order.
var Colours = [4]Colour{ColourL, ColourI, ColourT, ColourS}

// Index returns the zero-based LITS-order index of a real colour. It
// panics if called on ColourNone, which has no index: callers must
// check for ColourNone first, exactly as the rule kernel never asks
// for the index of an uncovered cell.
func (c Colour) Index() int {
	switch c {
	case ColourL:
		return 0
	case ColourI:
		return 1
	case ColourT:
		return 2
	case ColourS:
		return 3
	default:
		panic("tetromino: Index called on ColourNone")
	}
}

// OneHot returns the four-element one-hot encoding of a real colour, in
// L, I, T, S order.
func (c Colour) OneHot() [4]bool {
	var out [4]bool
	if c != ColourNone {
		out[c.Index()] = true
	}
	return out
}

// Notate renders the colour as its single-letter wire form.
func (c Colour) Notate() string {
	switch c {
	case ColourL:
		return "L"
	case ColourI:
		return "I"
	case ColourT:
		return "T"
	case ColourS:
		return "S"
	default:
		return "_"
	}
}

func (c Colour) String() string {
	return c.Notate()
}

// ParseColour parses a colour from its wire form. For colour-blind
// accessibility, each real colour accepts an alternate letter alongside
// its canonical one: L/R, I/Y, T/G, S/B (case-insensitive); the null
// colour accepts "_", "-", ".", or ",".
func ParseColour(s string) (Colour, error) {
	switch s {
	case "L", "l", "R", "r":
		return ColourL, nil
	case "I", "i", "Y", "y":
		return ColourI, nil
	case "T", "t", "G", "g":
		return ColourT, nil
	case "S", "s", "B", "b":
		return ColourS, nil
	case "_", "-", ".", ",":
		return ColourNone, nil
	default:
		return ColourNone, fmt.Errorf("tetromino: %q is not a valid colour", s)
	}
}
