package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
	"github.com/stretchr/testify/require"
)

func TestHashIsConsistentAcrossCalls(t *testing.T) {
	bd := board.Blank()
	require.Equal(t, bd.Hash(), bd.Hash())

	move := bd.EnumerateMoves()[0]
	require.NoError(t, bd.PlaceTetromino(move))
	require.NotEqual(t, board.Blank().Hash(), bd.Hash())
}

func TestBookLoadAndProbe(t *testing.T) {
	bd := board.Blank()
	move := bd.EnumerateMoves()[0]
	key := bd.Hash()
	id := tetromino.ID(move)

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, key))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(id)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint16(100)))
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(0)))

	b, err := LoadReader(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, b.Size())

	found, ok := b.Probe(bd)
	require.True(t, ok)
	require.Equal(t, move, found)
}

func TestBookMissOnEmptyBook(t *testing.T) {
	b := New()
	bd := board.Blank()

	_, found := b.Probe(bd)
	require.False(t, found)
}

func TestProbeRejectsIllegalBookMove(t *testing.T) {
	bd := board.Blank()
	legal := bd.EnumerateMoves()[0]
	require.NoError(t, bd.PlaceTetromino(legal))

	b := New()
	b.Add(bd, legal, 50)

	_, found := b.Probe(bd)
	require.False(t, found, "the move that filled this square should no longer be playable")
}

func TestAddAccumulatesWeightForRepeatedMove(t *testing.T) {
	bd := board.Blank()
	move := bd.EnumerateMoves()[0]

	b := New()
	b.Add(bd, move, 10)
	b.Add(bd, move, 15)

	entries := b.ProbeAll(bd)
	require.Len(t, entries, 1)
	require.Equal(t, uint16(25), entries[0].Weight)
}

func TestProbeAllSortsByWeightDescending(t *testing.T) {
	bd := board.Blank()
	moves := bd.EnumerateMoves()
	require.True(t, len(moves) >= 2)

	b := New()
	b.Add(bd, moves[0], 5)
	b.Add(bd, moves[1], 50)

	entries := b.ProbeAll(bd)
	require.Len(t, entries, 2)
	require.Equal(t, uint16(50), entries[0].Weight)
	require.Equal(t, uint16(5), entries[1].Weight)
}
