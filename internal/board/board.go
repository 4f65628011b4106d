// Package board implements the LITS rule kernel: a dual-layer 10x10
// board (an immutable scoring layer and a mutable piece layer), the
// shared tetromino pool, the attach-point frontier, and move
// validation.
package board

import (
	"sort"

	"github.com/rsarvar1a/lits-engine/internal/geometry"
	"github.com/rsarvar1a/lits-engine/internal/litserr"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Player identifies a side, or the absence of one.
type Player int

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

// Next flips between X and O. Calling Next on PlayerNone is a
// programming error.
func (p Player) Next() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic("board: Next called on PlayerNone")
	}
}

// Value returns the scoring contribution of a tile owned by this
// player: +1 for X, -1 for O, 0 for an unowned tile.
func (p Player) Value() float64 {
	switch p {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

func (p Player) Notate() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "_"
	}
}

func (p Player) String() string { return p.Notate() }

// ParsePlayer parses a player from its notation. Unlike Colour, there
// is no colour-blind alias table here: only the four standard
// null-markers are accepted alongside the canonical letters.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "_", "-", ".", ",":
		return PlayerNone, nil
	default:
		return PlayerNone, litserr.Newf(litserr.KindParse, "board: %q is not a valid player", s)
	}
}

func idx(p geometry.Point) int { return p.X*geometry.BoardSize + p.Y }

// Board is the dual-layer LITS board: score tiles are fixed for the
// lifetime of the board, piece tiles mutate as tetrominoes are placed
// and undone. The attach-point frontier tracks which uncovered cells
// border the current structure, and for each such cell which colours
// may still legally be placed through it without violating the
// same-colour adjacency rule.
type Board struct {
	scoreTiles [100]Player
	pieceTiles [100]tetromino.Colour
	remaining  [4]int
	toMove     Player

	isAttach  [100]bool
	available [100][4]bool
}

// Blank returns a fresh board: no scoring tiles assigned, a full pool
// of five of each colour, X to move.
func Blank() *Board {
	b := &Board{
		remaining: [4]int{5, 5, 5, 5},
		toMove:    PlayerX,
	}
	b.CalculateAttachPointsFromScratch()
	return b
}

// New builds a board from explicit layers, validating pool counts.
func New(scoreTiles [100]Player, pieceTiles [100]tetromino.Colour, remaining [4]int, toMove Player) (*Board, error) {
	for _, r := range remaining {
		if r < 0 || r > 5 {
			return nil, litserr.Newf(litserr.KindParse, "board: pool count %d out of range [0,5]", r)
		}
	}
	b := &Board{scoreTiles: scoreTiles, pieceTiles: pieceTiles, remaining: remaining, toMove: toMove}
	b.CalculateAttachPointsFromScratch()
	return b, nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// ColourAt returns the piece colour currently covering p.
func (b *Board) ColourAt(p geometry.Point) tetromino.Colour {
	return b.pieceTiles[idx(p)]
}

// PlayerAt returns the scoring owner of the cell at p.
func (b *Board) PlayerAt(p geometry.Point) Player {
	return b.scoreTiles[idx(p)]
}

// SetScoringTile assigns the scoring owner of a cell. Used only by
// board-setup tooling, never during play.
func (b *Board) SetScoringTile(p geometry.Point, owner Player) {
	b.scoreTiles[idx(p)] = owner
}

// RemainingOf returns how many copies of a colour are left in the pool.
func (b *Board) RemainingOf(c tetromino.Colour) int {
	return b.remaining[c.Index()]
}

// ToMove returns the player whose turn it is.
func (b *Board) ToMove() Player {
	return b.toMove
}

// isEmpty reports whether no piece has been placed yet.
func (b *Board) isEmpty() bool {
	sum := 0
	for _, r := range b.remaining {
		sum += r
	}
	return sum == 20
}

// CalculateAttachPointsFromScratch rebuilds the attach-point frontier
// by brute force: on an empty board every cell is an attach point for
// every colour; otherwise, every uncovered cell bordering at least one
// covered cell is an attach point, with any colour that already
// borders it through a same-colour piece excluded.
func (b *Board) CalculateAttachPointsFromScratch() {
	for i := range b.isAttach {
		b.isAttach[i] = false
		b.available[i] = [4]bool{}
	}
	if b.isEmpty() {
		for i := range b.isAttach {
			b.isAttach[i] = true
			b.available[i] = [4]bool{true, true, true, true}
		}
		return
	}
	for x := 0; x < geometry.BoardSize; x++ {
		for y := 0; y < geometry.BoardSize; y++ {
			p := geometry.Point{X: x, Y: y}
			if b.ColourAt(p) != tetromino.ColourNone {
				continue
			}
			i := idx(p)
			for _, n := range p.NeighboursOnBoard() {
				nc := b.ColourAt(n)
				if nc == tetromino.ColourNone {
					continue
				}
				if !b.isAttach[i] {
					b.isAttach[i] = true
					b.available[i] = [4]bool{true, true, true, true}
				}
				b.available[i][nc.Index()] = false
			}
		}
	}
}

// PointAttachExists reports whether p is a registered attach point at
// all, regardless of which colours remain available there.
func (b *Board) PointAttachExists(p geometry.Point) bool {
	return b.isAttach[idx(p)]
}

// PointAttachSameColour reports whether placing colour c through p
// would violate the same-colour adjacency rule, given the current
// frontier state. It is meaningless to call on a point that is not a
// registered attach point.
func (b *Board) PointAttachSameColour(p geometry.Point, c tetromino.Colour) bool {
	return !b.available[idx(p)][c.Index()]
}

// TetrominoExists reports whether every point of t is currently
// covered by a piece of t's own colour, i.e. whether t could be
// undone.
func (b *Board) TetrominoExists(t tetromino.Tetromino) bool {
	for _, p := range t.Points() {
		if !p.InBounds() || b.ColourAt(p) != t.Colour() {
			return false
		}
	}
	return true
}

// TetrominoAttachFormsO reports whether placing t would complete a
// 2-by-2 block of covered cells, whatever their colours. It scans
// every 2x2 window of a padded region around t using a scratch grid
// that additionally marks t's own cells as covered by its colour.
func (b *Board) TetrominoAttachFormsO(t tetromino.Tetromino) bool {
	origin := t.Anchor().Sub(geometry.Point{X: 1, Y: 1})
	var grid [6][6]tetromino.Colour
	for gx := 0; gx < 6; gx++ {
		for gy := 0; gy < 6; gy++ {
			p := origin.Add(geometry.Point{X: gx, Y: gy})
			if p.InBounds() {
				grid[gx][gy] = b.ColourAt(p)
			} else {
				grid[gx][gy] = tetromino.ColourNone
			}
		}
	}
	for _, p := range t.Points() {
		rel := p.Sub(origin)
		if rel.X >= 0 && rel.X < 6 && rel.Y >= 0 && rel.Y < 6 {
			grid[rel.X][rel.Y] = t.Colour()
		}
	}
	for gx := 0; gx < 5; gx++ {
		for gy := 0; gy < 5; gy++ {
			none := tetromino.ColourNone
			if grid[gx][gy] != none && grid[gx+1][gy] != none && grid[gx][gy+1] != none && grid[gx+1][gy+1] != none {
				return true
			}
		}
	}
	return false
}

// ValidateTetromino runs every structural and rule check on a
// candidate placement, in the exact order the rule kernel's error
// messages are documented in: pool availability, board bounds,
// overlap, frontier membership, same-colour adjacency, and the 2x2
// block rule.
func (b *Board) ValidateTetromino(t tetromino.Tetromino) error {
	wrap := func(err error) error {
		return litserr.Wrap(err, "tetromino '%s' is not valid in position '%s'", t.Notate(), b.Notate())
	}

	if b.RemainingOf(t.Colour()) <= 0 {
		return wrap(litserr.ErrNoSuchPiece)
	}
	for _, p := range t.Points() {
		if !p.InBounds() {
			return wrap(litserr.ErrOutOfBounds)
		}
	}
	for _, p := range t.Points() {
		if b.ColourAt(p) != tetromino.ColourNone {
			return wrap(litserr.ErrOverlap)
		}
	}
	hasAttach := false
	for _, p := range t.Points() {
		if b.PointAttachExists(p) {
			hasAttach = true
			break
		}
	}
	if !hasAttach {
		return wrap(litserr.ErrNoAttach)
	}
	for _, p := range t.Points() {
		if b.PointAttachExists(p) && b.PointAttachSameColour(p, t.Colour()) {
			return wrap(litserr.ErrSameColourAdjacent)
		}
	}
	if b.TetrominoAttachFormsO(t) {
		return wrap(litserr.ErrFormsO)
	}
	return nil
}

// HasMoves reports whether any legal placement exists for the player
// to move.
func (b *Board) HasMoves() bool {
	return len(b.EnumerateMoves()) > 0
}

// EnumerateMoves returns every legal placement for the player to move,
// across every colour with remaining copies, de-duplicated and ordered
// by tetromino ID.
func (b *Board) EnumerateMoves() []tetromino.Tetromino {
	out := make([]tetromino.Tetromino, 0, 32)
	seen := map[tetromino.Tetromino]bool{}
	for i := 0; i < 100; i++ {
		if !b.isAttach[i] {
			continue
		}
		p := geometry.Point{X: i / geometry.BoardSize, Y: i % geometry.BoardSize}
		for _, anchor := range p.PotentialAnchors() {
			for _, c := range tetromino.Colours {
				if b.RemainingOf(c) <= 0 {
					continue
				}
				for _, tr := range tetromino.EnumerateTransforms(c) {
					cand := tetromino.New(c, anchor, tr)
					if seen[cand] {
						continue
					}
					covers := false
					for _, cp := range cand.Points() {
						if cp == p {
							covers = true
							break
						}
					}
					if !covers {
						continue
					}
					seen[cand] = true
					if b.ValidateTetromino(cand) == nil {
						out = append(out, cand)
					}
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return tetromino.ID(out[i]) < tetromino.ID(out[j])
	})
	return out
}

// PlaceTetromino validates and applies a placement, toggling the
// player to move and refreshing the attach-point frontier.
func (b *Board) PlaceTetromino(t tetromino.Tetromino) error {
	if err := b.ValidateTetromino(t); err != nil {
		return litserr.Wrap(err, "failed to play tetromino '%s' in position '%s'", t.Notate(), b.Notate())
	}
	for _, p := range t.Points() {
		b.pieceTiles[idx(p)] = t.Colour()
	}
	b.remaining[t.Colour().Index()]--
	b.toMove = b.toMove.Next()
	b.CalculateAttachPointsFromScratch()
	return nil
}

// UndoTetromino reverses a placement: the pool must have room to
// accept the colour back, and the tetromino's exact points must
// currently be covered by that colour.
func (b *Board) UndoTetromino(t tetromino.Tetromino) error {
	wrap := func(err error) error {
		return litserr.Wrap(err, "failed to undo tetromino '%s' in position '%s'", t.Notate(), b.Notate())
	}
	if b.RemainingOf(t.Colour()) >= 5 {
		return wrap(litserr.ErrNoRemainingUndo)
	}
	if !b.TetrominoExists(t) {
		return wrap(litserr.ErrPieceNotOnBoard)
	}
	for _, p := range t.Points() {
		b.pieceTiles[idx(p)] = tetromino.ColourNone
	}
	b.remaining[t.Colour().Index()]++
	b.toMove = b.toMove.Next()
	b.CalculateAttachPointsFromScratch()
	return nil
}

// Score sums the scoring value of every currently uncovered cell.
func (b *Board) Score() float64 {
	var total float64
	for i, owner := range b.scoreTiles {
		if b.pieceTiles[i] == tetromino.ColourNone {
			total += owner.Value()
		}
	}
	return total
}

// Result is the outcome of a finished or in-progress game.
type Result struct {
	InProgress bool
	Winner     Player
	Score      float64
}

// Result reports the game's outcome: in progress if the player to
// move still has a legal placement, otherwise a win for whichever
// player the final score favours, with ties awarded to the player who
// made the last move (since a tie under LITS scoring still names a
// winner: the one who left the board in this state).
func (b *Board) Result() Result {
	if b.HasMoves() {
		return Result{InProgress: true}
	}
	score := b.Score()
	switch {
	case score > 0:
		return Result{Winner: PlayerX, Score: score}
	case score < 0:
		return Result{Winner: PlayerO, Score: -score}
	default:
		return Result{Winner: b.toMove.Next(), Score: 0}
	}
}
