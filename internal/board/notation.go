package board

import (
	"strconv"
	"strings"

	"github.com/rsarvar1a/lits-engine/internal/geometry"
	"github.com/rsarvar1a/lits-engine/internal/litserr"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

const hexDigits = "0123456789abcdef"

// NotateTile renders a single cell's (scoring owner, piece colour) pair
// as one hex character: value = 5*playerIndex + colourIndex, where
// playerIndex is 0/1/2 for none/X/O and colourIndex is 0/1/2/3/4 for
// none/L/I/T/S. Value 15 is never produced.
func NotateTile(owner Player, colour tetromino.Colour) byte {
	value := 5*int(owner) + int(colour)
	return hexDigits[value]
}

// ParseTile reverses NotateTile.
func ParseTile(ch byte) (Player, tetromino.Colour, error) {
	idx := strings.IndexByte(hexDigits, ch)
	if idx < 0 || idx > 14 {
		return PlayerNone, tetromino.ColourNone, litserr.Newf(litserr.KindParse, "board: %q is not a valid tile digit", string(ch))
	}
	return Player(idx / 5), tetromino.Colour(idx % 5), nil
}

// Notate renders the board as its 107-character wire form: 100 tile
// digits in row-major order, a comma, four pool-count digits in L, I,
// T, S order, a comma, and the player to move.
func (b *Board) Notate() string {
	var sb strings.Builder
	sb.Grow(107)
	for x := 0; x < geometry.BoardSize; x++ {
		for y := 0; y < geometry.BoardSize; y++ {
			p := geometry.Point{X: x, Y: y}
			sb.WriteByte(NotateTile(b.PlayerAt(p), b.ColourAt(p)))
		}
	}
	sb.WriteByte(',')
	for _, c := range tetromino.Colours {
		sb.WriteByte(byte('0' + b.RemainingOf(c)))
	}
	sb.WriteByte(',')
	sb.WriteString(b.toMove.Notate())
	return sb.String()
}

func (b *Board) String() string { return b.Notate() }

// Parse parses a board from its wire notation.
func Parse(s string) (*Board, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 || len(parts[0]) != 100 || len(parts[1]) != 4 || len(parts[2]) != 1 {
		return nil, litserr.Newf(litserr.KindParse, "board: %q is not valid board notation", s)
	}

	var scoreTiles [100]Player
	var pieceTiles [100]tetromino.Colour
	for x := 0; x < geometry.BoardSize; x++ {
		for y := 0; y < geometry.BoardSize; y++ {
			i := x*geometry.BoardSize + y
			owner, colour, err := ParseTile(parts[0][i])
			if err != nil {
				return nil, err
			}
			scoreTiles[i] = owner
			pieceTiles[i] = colour
		}
	}

	var remaining [4]int
	for i, ch := range []byte(parts[1]) {
		n, err := strconv.Atoi(string(ch))
		if err != nil {
			return nil, litserr.Newf(litserr.KindParse, "board: %q is not a valid pool count", string(ch))
		}
		remaining[i] = n
	}

	toMove, err := ParsePlayer(parts[2])
	if err != nil {
		return nil, err
	}

	return New(scoreTiles, pieceTiles, remaining, toMove)
}
