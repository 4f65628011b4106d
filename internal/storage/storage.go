package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys.
const (
	keyPreferences  = "preferences"
	keyStats        = "stats"
	keyWeights      = "oracle/weights"
	replayKeyPrefix = "oracle/replay/"
)

// EngineMode records which oracle backend a saved preference set was
// using.
type EngineMode int

const (
	ModeHeuristic EngineMode = iota
	ModeLearned
)

// Preferences stores engine-level settings that should persist
// between process runs: the MCTS tuning values and which oracle to
// use.
type Preferences struct {
	NumThreads int        `json:"num_threads"`
	MaxTimeMs  int        `json:"max_time_ms"`
	Discount   float64    `json:"discount"`
	UCTConst   float64    `json:"uct_const"`
	Mode       EngineMode `json:"mode"`
	LastUsed   time.Time  `json:"last_used"`
}

// DefaultPreferences returns the engine's documented default tuning.
func DefaultPreferences() *Preferences {
	return &Preferences{
		NumThreads: 2,
		MaxTimeMs:  5000,
		Discount:   0.99,
		UCTConst:   1.0,
		Mode:       ModeHeuristic,
		LastUsed:   time.Now(),
	}
}

// GameStats tracks outcomes of games this engine has analyzed or
// played out, split by which colour (player) won.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	WinsByPlayer   map[string]int `json:"wins_by_player"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  string         `json:"current_streak_player"`
	CurrentLength  int            `json:"current_streak_length"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{WinsByPlayer: make(map[string]int)}
}

// GameResult is a single completed game, reported to RecordGame.
type GameResult struct {
	Winner string // "X" or "O"
}

// Storage wraps BadgerDB for persistent storage of engine preferences,
// game statistics, and the oracle's weights and replay buffer.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the engine's local
// database.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBytes writes a raw value under a key, used for the oracle's
// serialized weights.
func (s *Storage) SaveBytes(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// LoadBytes reads a raw value, returning (nil, nil) if the key is
// absent.
func (s *Storage) LoadBytes(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	return out, err
}

// SaveWeights persists the oracle's serialized weights.
func (s *Storage) SaveWeights(data []byte) error {
	return s.SaveBytes(keyWeights, data)
}

// LoadWeights loads the oracle's serialized weights, if any have been
// saved.
func (s *Storage) LoadWeights() ([]byte, error) {
	return s.LoadBytes(keyWeights)
}

// SaveReplayEntry appends one (board, outcome) pair to the oracle's
// replay buffer, keyed by an opaque sequence number so entries sort in
// insertion order under an iterator.
func (s *Storage) SaveReplayEntry(seq uint64, data []byte) error {
	return s.SaveBytes(fmt.Sprintf("%s%020d", replayKeyPrefix, seq), data)
}

// LoadReplayBuffer returns every stored replay entry, in insertion
// order.
func (s *Storage) LoadReplayBuffer() ([][]byte, error) {
	var out [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(replayKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				out = append(out, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

// SavePreferences saves engine preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.SaveBytes(keyPreferences, data)
}

// LoadPreferences loads engine preferences, returning defaults if none
// have been saved.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	data, err := s.LoadBytes(keyPreferences)
	if err != nil || data == nil {
		return prefs, err
	}
	return prefs, json.Unmarshal(data, prefs)
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.SaveBytes(keyStats, data)
}

// LoadStats loads game statistics, returning an empty record if none
// have been saved.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()
	data, err := s.LoadBytes(keyStats)
	if err != nil || data == nil {
		return stats, err
	}
	return stats, json.Unmarshal(data, stats)
}

// RecordGame folds one completed game's result into the running
// statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.WinsByPlayer[result.Winner]++

	if stats.CurrentStreak == result.Winner {
		stats.CurrentLength++
	} else {
		stats.CurrentStreak = result.Winner
		stats.CurrentLength = 1
	}
	if stats.CurrentLength > stats.LongestWinStrk {
		stats.LongestWinStrk = stats.CurrentLength
	}

	return s.SaveStats(stats)
}

// GetWinRate returns a player's win rate as a percentage (0-100).
func (s *GameStats) GetWinRate(player string) float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.WinsByPlayer[player]) / float64(s.GamesPlayed) * 100
}
