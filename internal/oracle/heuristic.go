package oracle

import (
	"math"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/geometry"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Heuristic is a zero-dependency, deterministic oracle used whenever
// no learned weights are available. It scores each legal move by a
// handful of static features and turns the board's raw score into a
// value in [-1,1] via a bounded squashing function, the same role the
// teacher's classical evaluator plays when no neural weights are
// loaded.
type Heuristic struct {
	// ScoreScale controls how quickly Value saturates towards ±1 as
	// the raw board score grows; the board's score is unbounded, so a
	// scale keeps typical midgame scores away from the saturated ends.
	ScoreScale float64
}

// NewHeuristic returns a heuristic oracle with a sensible default
// scaling factor.
func NewHeuristic() *Heuristic {
	return &Heuristic{ScoreScale: 40.0}
}

// Predict scores every legal move by attach-frontier delta and pool
// pressure, and reports a tanh-squashed value from the raw score.
func (h *Heuristic) Predict(bd *board.Board) (Prediction, error) {
	var pred Prediction

	toMove := bd.ToMove()
	before := countAttachPoints(bd)

	for _, move := range bd.EnumerateMoves() {
		id := tetromino.ID(move)
		pred.Policy[id] = float32(h.score(bd, move, before))
	}

	value := math.Tanh(bd.Score() * float64(toMove.Value()) / h.ScoreScale)
	pred.Value = float32(value)

	return pred, nil
}

// score rates a candidate placement: it rewards placements that keep
// the frontier open (more future attach points) and that consume
// scarce colours late, mirroring how a human player triages moves.
func (h *Heuristic) score(bd *board.Board, move tetromino.Tetromino, before int) float64 {
	child := bd.Clone()
	if err := child.PlaceTetromino(move); err != nil {
		return -1e6
	}

	after := countAttachPoints(child)
	frontierDelta := float64(after - before)

	remaining := float64(bd.RemainingOf(move.Colour()))
	scarcity := (5.0 - remaining) * 0.1

	return frontierDelta + scarcity
}

func countAttachPoints(bd *board.Board) int {
	n := 0
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if bd.PointAttachExists(geometry.Point{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}

// Remember is a no-op: the heuristic has no learnable state.
func (h *Heuristic) Remember(bd *board.Board, outcome float64) {}

// Train is a no-op: the heuristic has no learnable state.
func (h *Heuristic) Train() error { return nil }

// Copy returns a new Heuristic sharing the same configuration; since
// Heuristic carries no mutable state, the copy is independent by
// construction.
func (h *Heuristic) Copy() Oracle {
	return &Heuristic{ScoreScale: h.ScoreScale}
}
