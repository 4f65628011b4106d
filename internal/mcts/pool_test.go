package mcts

import (
	"testing"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/book"
	"github.com/rsarvar1a/lits-engine/internal/config"
	"github.com/rsarvar1a/lits-engine/internal/endgame"
	"github.com/rsarvar1a/lits-engine/internal/oracle"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T, threads int) *Pool {
	t.Helper()
	cfg := config.Default()
	cfg.MCTS.MaxTimeMs = 50
	cfg.MCTS.NumThreads = threads

	p := NewPool(cfg)
	require.NoError(t, p.SetNumThreads(threads, oracle.NewHeuristic()))
	t.Cleanup(p.Shutdown)
	return p
}

func TestSetNumThreadsRejectsZero(t *testing.T) {
	p := NewPool(config.Default())
	require.Error(t, p.SetNumThreads(0, oracle.NewHeuristic()))
}

func TestLaunchReturnsLegalMove(t *testing.T) {
	p := testPool(t, 2)
	bd := board.Blank()

	move, err := p.Launch(bd)
	require.NoError(t, err)
	require.NoError(t, bd.ValidateTetromino(move))
}

func TestLaunchConsultsBookFirst(t *testing.T) {
	p := testPool(t, 1)
	bd := board.Blank()
	wanted := bd.EnumerateMoves()[0]
	p.Book.Add(bd, wanted, 100)

	move, err := p.Launch(bd)
	require.NoError(t, err)
	require.Equal(t, wanted, move)
}

func TestLaunchWithoutWorkersErrors(t *testing.T) {
	p := NewPool(config.Default())
	_, err := p.Launch(board.Blank())
	require.Error(t, err)
}

func TestCancelSearchStopsPromptly(t *testing.T) {
	p := testPool(t, 2)
	p.cfg.MCTS.MaxTimeMs = 5000
	bd := board.Blank()

	done := make(chan struct{})
	go func() {
		p.Launch(bd)
		close(done)
	}()

	p.CancelSearch()
	<-done
}

func TestShutdownIsIdempotent(t *testing.T) {
	p := testPool(t, 1)
	p.Shutdown()
	p.Shutdown()
}

// TestLaunchSelectsForcedTerminalWin drains a board down to a position
// with exactly one legal move that ends the game, then checks that a
// full search (not the opening book or the endgame solver, both
// disabled here) still converges on that move via solved-node
// propagation, per the root-solve contract in searcher.go.
func TestLaunchSelectsForcedTerminalWin(t *testing.T) {
	bd := board.Blank()
	var forced tetromino.Tetromino
	found := false

	for i := 0; i < 200; i++ {
		moves := bd.EnumerateMoves()
		if len(moves) == 0 {
			break
		}
		if len(moves) == 1 {
			clone := bd.Clone()
			if err := clone.PlaceTetromino(moves[0]); err == nil && !clone.HasMoves() {
				forced = moves[0]
				found = true
				break
			}
		}
		require.NoError(t, bd.PlaceTetromino(moves[0]))
	}
	if !found {
		t.Skip("drain did not reach a forced single-terminal-move position")
	}

	p := testPool(t, 2)
	p.Book = book.New()
	// A zero Solver has a threshold of zero pieces, so it never applies
	// to a position that still has a legal move.
	p.Solver = &endgame.Solver{}

	move, err := p.Launch(bd)
	require.NoError(t, err)
	require.Equal(t, forced, move)
}
