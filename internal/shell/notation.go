package shell

import (
	"strconv"
	"strings"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/geometry"
)

// parseBoardNotation delegates to board.Parse; kept as its own
// function so the shell's input validation is easy to unit test
// without spinning up a full Shell.
func parseBoardNotation(s string) (*board.Board, error) {
	return board.Parse(s)
}

// renderGrid renders the board as a 10-row debug grid, one character
// per cell via the same tile-notation alphabet as Board.Notate, for
// the show-board command.
func renderGrid(bd *board.Board) string {
	var sb strings.Builder
	for y := 0; y < geometry.BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < geometry.BoardSize; x++ {
			p := geometry.Point{X: x, Y: y}
			sb.WriteByte(board.NotateTile(bd.PlayerAt(p), bd.ColourAt(p)))
		}
	}
	return sb.String()
}

// formatEvals joins a slice of evaluations as the analyze-board
// output line.
func formatEvals(evals []float64) string {
	parts := make([]string, len(evals))
	for i, e := range evals {
		parts[i] = strconv.FormatFloat(e, 'f', 4, 64)
	}
	return strings.Join(parts, " ")
}
