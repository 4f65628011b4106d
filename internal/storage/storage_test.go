package storage

import (
	"os"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir, err := os.MkdirTemp("", "lits-engine-storage-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	require.Equal(t, 2, prefs.NumThreads)
	require.Equal(t, 5000, prefs.MaxTimeMs)
	require.Equal(t, 0.99, prefs.Discount)
	require.Equal(t, 1.0, prefs.UCTConst)
	require.Equal(t, ModeHeuristic, prefs.Mode)
}

func TestNewGameStats(t *testing.T) {
	stats := NewGameStats()
	require.Equal(t, 0, stats.GamesPlayed)
	require.Zero(t, stats.GetWinRate("X"))
}

func TestWinRate(t *testing.T) {
	stats := &GameStats{
		GamesPlayed:  10,
		WinsByPlayer: map[string]int{"X": 6, "O": 4},
	}
	require.InDelta(t, 60.0, stats.GetWinRate("X"), 0.001)
	require.InDelta(t, 40.0, stats.GetWinRate("O"), 0.001)
}

func TestSaveLoadPreferencesRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	prefs := DefaultPreferences()
	prefs.NumThreads = 8
	prefs.Mode = ModeLearned
	require.NoError(t, s.SavePreferences(prefs))

	loaded, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, 8, loaded.NumThreads)
	require.Equal(t, ModeLearned, loaded.Mode)
}

func TestLoadPreferencesDefaultsWhenAbsent(t *testing.T) {
	s := newTestStorage(t)
	loaded, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, DefaultPreferences().NumThreads, loaded.NumThreads)
}

func TestRecordGameAccumulatesStatsAndStreak(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.RecordGame(GameResult{Winner: "X"}))
	require.NoError(t, s.RecordGame(GameResult{Winner: "X"}))
	require.NoError(t, s.RecordGame(GameResult{Winner: "O"}))

	stats, err := s.LoadStats()
	require.NoError(t, err)
	require.Equal(t, 3, stats.GamesPlayed)
	require.Equal(t, 2, stats.WinsByPlayer["X"])
	require.Equal(t, 1, stats.WinsByPlayer["O"])
	require.Equal(t, 2, stats.LongestWinStrk)
	require.Equal(t, "O", stats.CurrentStreak)
	require.Equal(t, 1, stats.CurrentLength)
}

func TestSaveLoadWeights(t *testing.T) {
	s := newTestStorage(t)
	blob := []byte{1, 2, 3, 4, 5}
	require.NoError(t, s.SaveWeights(blob))

	loaded, err := s.LoadWeights()
	require.NoError(t, err)
	require.Equal(t, blob, loaded)
}

func TestLoadWeightsAbsentReturnsNil(t *testing.T) {
	s := newTestStorage(t)
	loaded, err := s.LoadWeights()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestReplayBufferPreservesInsertionOrder(t *testing.T) {
	s := newTestStorage(t)
	for i := uint64(0); i < 5; i++ {
		require.NoError(t, s.SaveReplayEntry(i, []byte{byte(i)}))
	}
	entries, err := s.LoadReplayBuffer()
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i, entry := range entries {
		require.Equal(t, []byte{byte(i)}, entry)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dataDir)

	_, err = os.Stat(dataDir)
	require.NoError(t, err)
}
