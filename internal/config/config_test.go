package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	c := Default()
	require.Equal(t, 2, c.MCTS.NumThreads)
	require.Equal(t, 5000, c.MCTS.MaxTimeMs)
	require.Equal(t, 0.99, c.MCTS.Discount)
	require.Equal(t, 1.0, c.MCTS.UCTConst)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	c := Default()
	c.MCTS.NumThreads = 6
	data, err := c.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 6, parsed.MCTS.NumThreads)
	require.Equal(t, c.MCTS.Discount, parsed.MCTS.Discount)
}

func TestParseKeepsDefaultsForOmittedFields(t *testing.T) {
	parsed, err := Parse([]byte(`{"mcts":{"num_threads":9}}`))
	require.NoError(t, err)
	require.Equal(t, 9, parsed.MCTS.NumThreads)
	require.Equal(t, Default().MCTS.MaxTimeMs, parsed.MCTS.MaxTimeMs)
}

func TestSetKnownKey(t *testing.T) {
	c := Default()
	ok, err := c.Set("mcts.num_threads", "12")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 12, c.MCTS.NumThreads)
}

func TestSetUnknownKeyReportsFalse(t *testing.T) {
	c := Default()
	ok, err := c.Set("mcts.bogus", "1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetRejectsBadValue(t *testing.T) {
	c := Default()
	_, err := c.Set("mcts.num_threads", "not-a-number")
	require.Error(t, err)
}
