// Package game wraps the board rule kernel with a linear, undoable
// history: applying a move pushes it onto history and clears any
// parked "future" (redone) moves, unless the new move exactly matches
// the move at the top of that future stack, in which case the two
// lists re-sync instead of being destroyed.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/geometry"
	"github.com/rsarvar1a/lits-engine/internal/litserr"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Game is a board together with its move history and redo stack.
type Game struct {
	base    *board.Board
	curr    *board.Board
	history []tetromino.Tetromino
	future  []tetromino.Tetromino
}

// New returns a fresh game on a blank board.
func New() *Game {
	return &Game{base: board.Blank(), curr: board.Blank()}
}

// FromBoard starts a new game whose base setup is the given board; bd
// becomes the base board and a clone of it the current board, with no
// history yet.
func FromBoard(bd *board.Board) *Game {
	return &Game{base: bd, curr: bd.Clone()}
}

// GetBoard returns the current, mutable board.
func (g *Game) GetBoard() *board.Board { return g.curr }

// GetBoardBase returns the board as it was before any moves were
// applied (its scoring layer is fixed for the life of the game).
func (g *Game) GetBoardBase() *board.Board { return g.base }

// GetHistory returns the moves applied so far, oldest first.
func (g *Game) GetHistory() []tetromino.Tetromino {
	return append([]tetromino.Tetromino(nil), g.history...)
}

// GetFuture returns the moves parked on the redo stack, most recently
// undone last.
func (g *Game) GetFuture() []tetromino.Tetromino {
	return append([]tetromino.Tetromino(nil), g.future...)
}

// ToMove returns the player whose turn it is.
func (g *Game) ToMove() board.Player { return g.curr.ToMove() }

// SetScoringTile assigns the scoring owner of a cell on both the base
// and current boards; used only during board setup, never mid-game.
func (g *Game) SetScoringTile(p geometry.Point, owner board.Player) {
	g.base.SetScoringTile(p, owner)
	g.curr.SetScoringTile(p, owner)
}

// Apply plays a tetromino, extending history. If t exactly matches the
// top of the future stack (the move most recently undone), that entry
// is popped rather than the whole future stack being discarded,
// letting repeated undo/redo pairs stay cheap.
func (g *Game) Apply(t tetromino.Tetromino) error {
	if err := g.curr.PlaceTetromino(t); err != nil {
		return err
	}
	if n := len(g.future); n > 0 && g.future[n-1] == t {
		g.future = g.future[:n-1]
	} else {
		g.future = nil
	}
	g.history = append(g.history, t)
	return nil
}

// Undo reverses the most recent move, parking it on the future stack.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return litserr.ErrHistoryEmpty
	}
	last := g.history[len(g.history)-1]
	if err := g.curr.UndoTetromino(last); err != nil {
		return err
	}
	g.history = g.history[:len(g.history)-1]
	g.future = append(g.future, last)
	return nil
}

// Notate renders the game as the base board's notation, a line giving
// the number of moves in the future (redo) stack, and then one
// tetromino notation line per move in chronological order: history
// first, then the future stack unwound back into forward order.
func (g *Game) Notate() string {
	var sb strings.Builder
	sb.WriteString(g.base.Notate())
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(len(g.future)))
	for _, t := range g.history {
		sb.WriteByte('\n')
		sb.WriteString(t.Notate())
	}
	for i := len(g.future) - 1; i >= 0; i-- {
		sb.WriteByte('\n')
		sb.WriteString(g.future[i].Notate())
	}
	return sb.String()
}

func (g *Game) String() string { return g.Notate() }

// Parse parses a game from Notate's format, replaying every move onto
// the base board to rebuild the current board and the history/future
// split.
func Parse(s string) (*Game, error) {
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return nil, litserr.Newf(litserr.KindParse, "game: notation has too few lines")
	}
	base, err := board.Parse(lines[0])
	if err != nil {
		return nil, err
	}
	futureCount, err := strconv.Atoi(lines[1])
	if err != nil || futureCount < 0 {
		return nil, litserr.Newf(litserr.KindParse, "game: %q is not a valid future-move count", lines[1])
	}
	moveLines := lines[2:]
	if futureCount > len(moveLines) {
		return nil, litserr.Newf(litserr.KindParse, "game: future-move count %d exceeds %d move lines", futureCount, len(moveLines))
	}

	g := &Game{base: base, curr: base.Clone()}
	historyCount := len(moveLines) - futureCount
	for i := 0; i < historyCount; i++ {
		t, err := tetromino.Parse(moveLines[i])
		if err != nil {
			return nil, fmt.Errorf("game: move %d: %w", i, err)
		}
		if err := g.Apply(t); err != nil {
			return nil, fmt.Errorf("game: move %d: %w", i, err)
		}
	}
	for i := len(moveLines) - 1; i >= historyCount; i-- {
		t, err := tetromino.Parse(moveLines[i])
		if err != nil {
			return nil, fmt.Errorf("game: future move: %w", err)
		}
		g.future = append(g.future, t)
	}
	return g, nil
}
