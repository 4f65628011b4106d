package oracle

import (
	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/geometry"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// FeaturePlanes is the number of channels per cell: one scoring-value
// channel plus a one-hot over the four piece colours.
const FeaturePlanes = 5

// FeatureLength is the flattened input width for a 10x10 board.
const FeatureLength = 100 * FeaturePlanes

// Encode flattens a board into a [10,10,5] tensor, row-major, from the
// perspective of the side to move: channel 0 carries the scoring
// owner's value (+1 own, -1 opponent, 0 covered-or-neutral) and
// channels 1-4 one-hot the covering colour (all zero if the cell is
// uncovered).
func Encode(bd *board.Board) [FeatureLength]float32 {
	var out [FeatureLength]float32
	toMove := bd.ToMove()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			p := geometry.Point{X: x, Y: y}
			colour := bd.ColourAt(p)
			base := (y*10 + x) * FeaturePlanes

			if colour == tetromino.ColourNone {
				owner := bd.PlayerAt(p)
				switch owner {
				case toMove:
					out[base] = 1
				case board.PlayerNone:
					out[base] = 0
				default:
					out[base] = -1
				}
			} else {
				out[base+1+colour.Index()] = 1
			}
		}
	}

	return out
}
