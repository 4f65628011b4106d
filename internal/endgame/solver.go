// Package endgame exhaustively solves positions with few pieces left
// to place, short-circuiting search once the game tree is small enough
// to walk in full.
package endgame

import (
	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Outcome is the exact result of a solved position from the
// perspective of the player to move when Solve was called.
type Outcome int

const (
	// Loss means the player to move cannot avoid losing the remaining
	// score with best play from both sides.
	Loss Outcome = iota
	// Win means the player to move can force a win (including the
	// last-mover tie-break).
	Win
)

// DefaultMaxSolvedPieces is the remaining-piece threshold at or below
// which a position is considered small enough to solve exhaustively.
const DefaultMaxSolvedPieces = 3

// Solver exhaustively resolves small positions and caches results
// keyed by board hash.
type Solver struct {
	cache           *cache
	maxSolvedPieces int
}

// NewSolver returns a solver with the given cache capacity (rounded up
// to the next power of two) and piece-count threshold. A threshold of
// zero or less selects DefaultMaxSolvedPieces.
func NewSolver(cacheSize int, maxSolvedPieces int) *Solver {
	if maxSolvedPieces <= 0 {
		maxSolvedPieces = DefaultMaxSolvedPieces
	}
	return &Solver{
		cache:           newCache(cacheSize),
		maxSolvedPieces: maxSolvedPieces,
	}
}

// remainingPieces sums the pool across all four colours.
func remainingPieces(bd *board.Board) int {
	total := 0
	for _, c := range tetromino.Colours {
		total += bd.RemainingOf(c)
	}
	return total
}

// Applicable reports whether the position is small enough for Solve to
// be worth calling.
func (s *Solver) Applicable(bd *board.Board) bool {
	return remainingPieces(bd) <= s.maxSolvedPieces
}

// Solve exhaustively determines the game-theoretic outcome and score
// for the position to move, and the move that achieves it. ok is false
// if the position exceeds the solver's piece-count threshold.
func (s *Solver) Solve(bd *board.Board) (outcome Outcome, score float64, best tetromino.Tetromino, ok bool) {
	if !s.Applicable(bd) {
		return Loss, 0, tetromino.Tetromino{}, false
	}
	outcome, score, best = s.solve(bd)
	return outcome, score, best, true
}

// solve runs negamax over the (small) remaining game tree, memoizing
// on board hash. Scores are from the perspective of bd.ToMove().
func (s *Solver) solve(bd *board.Board) (Outcome, float64, tetromino.Tetromino) {
	key := bd.Hash()
	if e, found := s.cache.get(key); found {
		return e.outcome, e.score, e.best
	}

	result := bd.Result()
	if !result.InProgress {
		outcome, score := Loss, -result.Score
		if result.Winner == bd.ToMove() {
			outcome, score = Win, result.Score
		}
		s.cache.set(key, outcome, score, tetromino.Tetromino{})
		return outcome, score, tetromino.Tetromino{}
	}

	moves := bd.EnumerateMoves()
	bestOutcome := Loss
	bestScore := float64(negInf)
	var bestMove tetromino.Tetromino

	for _, move := range moves {
		child := bd.Clone()
		if err := child.PlaceTetromino(move); err != nil {
			continue
		}
		childOutcome, childScore, _ := s.solve(child)
		// childScore is from the child's to-move perspective; negate to
		// view it from bd's to-move perspective.
		flippedOutcome := flip(childOutcome)
		flippedScore := -childScore

		// At equal scores a Win beats a Loss: a zero score can go
		// either way under the last-mover tie-break.
		if flippedScore > bestScore || (flippedScore == bestScore && flippedOutcome == Win && bestOutcome == Loss) {
			bestScore = flippedScore
			bestOutcome = flippedOutcome
			bestMove = move
		}
	}

	s.cache.set(key, bestOutcome, bestScore, bestMove)
	return bestOutcome, bestScore, bestMove
}

const negInf = -1 << 30

func flip(o Outcome) Outcome {
	if o == Win {
		return Loss
	}
	return Win
}
