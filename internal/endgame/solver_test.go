package endgame

import (
	"testing"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/stretchr/testify/require"
)

func TestApplicableRespectsThreshold(t *testing.T) {
	s := NewSolver(1024, 3)
	bd := board.Blank()
	require.False(t, s.Applicable(bd), "a blank board has 20 pieces left, well above the threshold")
}

func TestSolveOnNearlyEmptyPool(t *testing.T) {
	bd := board.Blank()

	// Drain the pool by repeatedly applying legal moves until few
	// pieces remain.
	for remaining(bd) > 4 {
		moves := bd.EnumerateMoves()
		require.NotEmpty(t, moves)
		require.NoError(t, bd.PlaceTetromino(moves[0]))
		if !bd.HasMoves() {
			break
		}
	}

	s := NewSolver(1024, 4)
	if !s.Applicable(bd) {
		t.Skip("drained board still exceeds the solver threshold")
	}

	outcome, _, _, ok := s.Solve(bd)
	require.True(t, ok)
	require.Contains(t, []Outcome{Win, Loss}, outcome)
}

func TestSolveIsMemoized(t *testing.T) {
	bd := board.Blank()
	for remaining(bd) > 4 {
		moves := bd.EnumerateMoves()
		require.NotEmpty(t, moves)
		require.NoError(t, bd.PlaceTetromino(moves[0]))
		if !bd.HasMoves() {
			break
		}
	}

	s := NewSolver(1024, 4)
	if !s.Applicable(bd) {
		t.Skip("drained board still exceeds the solver threshold")
	}

	o1, sc1, m1, ok1 := s.Solve(bd)
	o2, sc2, m2, ok2 := s.Solve(bd)
	require.Equal(t, ok1, ok2)
	require.Equal(t, o1, o2)
	require.Equal(t, sc1, sc2)
	require.Equal(t, m1, m2)
}

func remaining(bd *board.Board) int {
	return remainingPieces(bd)
}
