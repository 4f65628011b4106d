package board

import (
	"sync"

	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// prng is a small xorshift64* generator, used only to seed the
// process-wide hash table below deterministically across runs.
type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (r *prng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545F4914F6CDD1D
}

var (
	hashOnce    sync.Once
	hashTile    [100][15]uint64 // [cell][5*playerIndex+colourIndex]
	hashToMoveX uint64
)

func initHashTables() {
	gen := newPRNG(0x4C495453424F4152) // "LITSBOAR" as seed bytes
	for cell := range hashTile {
		for v := range hashTile[cell] {
			hashTile[cell][v] = gen.next()
		}
	}
	hashToMoveX = gen.next()
}

// Hash returns a deterministic, process-stable 64-bit digest of the
// board's full state (scoring layer, piece layer, pool, and side to
// move), suitable as a key into the opening book or an endgame cache.
// It is not a cryptographic hash and carries no security property.
func (b *Board) Hash() uint64 {
	hashOnce.Do(initHashTables)
	var h uint64
	for i := 0; i < 100; i++ {
		value := 5*int(b.scoreTiles[i]) + int(b.pieceTiles[i])
		h ^= hashTile[i][value]
	}
	for _, c := range tetromino.Colours {
		h ^= uint64(b.RemainingOf(c)) * (hashTile[0][c.Index()] + 1)
	}
	if b.toMove == PlayerX {
		h ^= hashToMoveX
	}
	return h
}
