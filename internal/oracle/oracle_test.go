package oracle

import (
	"testing"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsFullLength(t *testing.T) {
	bd := board.Blank()
	features := Encode(bd)
	require.Len(t, features, FeatureLength)
}

func TestHeuristicPredictAssignsNonZeroLogitsToLegalMoves(t *testing.T) {
	bd := board.Blank()
	h := NewHeuristic()

	pred, err := h.Predict(bd)
	require.NoError(t, err)

	for _, move := range bd.EnumerateMoves()[:5] {
		require.NotZero(t, pred.Policy[tetromino.ID(move)])
	}
	require.GreaterOrEqual(t, pred.Value, float32(-1))
	require.LessOrEqual(t, pred.Value, float32(1))
}

func TestHeuristicCopyIsIndependent(t *testing.T) {
	h := NewHeuristic()
	cp := h.Copy().(*Heuristic)
	cp.ScoreScale = 99
	require.NotEqual(t, h.ScoreScale, cp.ScoreScale)
}

func TestLearnedPredictValueInRange(t *testing.T) {
	l := NewLearned()
	bd := board.Blank()

	pred, err := l.Predict(bd)
	require.NoError(t, err)
	require.GreaterOrEqual(t, pred.Value, float32(-1))
	require.LessOrEqual(t, pred.Value, float32(1))
}

func TestLearnedMarshalRoundTrip(t *testing.T) {
	l := NewLearned()
	data, err := l.Marshal()
	require.NoError(t, err)

	loaded, err := LoadLearned(data)
	require.NoError(t, err)

	bd := board.Blank()
	p1, err := l.Predict(bd)
	require.NoError(t, err)
	p2, err := loaded.Predict(bd)
	require.NoError(t, err)
	require.Equal(t, p1.Value, p2.Value)
}

func TestLearnedCopyDoesNotShareReplayBuffer(t *testing.T) {
	l := NewLearned()
	bd := board.Blank()
	l.Remember(bd, 1.0)

	cp := l.Copy().(*Learned)
	require.Empty(t, cp.replay)
	require.Len(t, l.replay, 1)
}

func TestLearnedTrainIsANoOpWithoutSamples(t *testing.T) {
	l := NewLearned()
	require.NoError(t, l.Train())
}

func TestLearnedTrainMovesValueTowardTarget(t *testing.T) {
	l := NewLearned()
	bd := board.Blank()

	before, err := l.Predict(bd)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		l.Remember(bd, 1.0)
	}
	require.NoError(t, l.Train())

	after, err := l.Predict(bd)
	require.NoError(t, err)
	require.Greater(t, after.Value, before.Value-0.001)
}
