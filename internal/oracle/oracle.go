// Package oracle supplies the policy/value function consumed by the
// tree searcher: given a board, a distribution over candidate moves
// and a scalar estimate of the position's value to the side to move.
package oracle

import (
	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Prediction is one oracle evaluation. Policy holds a logit per
// tetromino ID across the whole registry; the searcher masks this down
// to the legal moves at its node and renormalizes, per the masking
// contract below.
type Prediction struct {
	Policy [tetromino.Range]float32
	Value  float32
}

// Oracle evaluates positions and can be trained from completed games.
// Implementations are not required to be safe for concurrent use;
// every searcher worker holds its own Copy.
//
// Masking contract: Predict may return logits over the entire
// registry, including moves illegal in the given position. It is the
// caller's responsibility to mask to legal moves and renormalize
// before sampling or using the distribution as PUCT priors.
type Oracle interface {
	Predict(bd *board.Board) (Prediction, error)
	Remember(bd *board.Board, outcome float64)
	Train() error
	Copy() Oracle
}
