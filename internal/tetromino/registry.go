package tetromino

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rsarvar1a/lits-engine/internal/geometry"
)

// Range is the size of the process-wide tetromino ID space: every
// distinct placement of every shape on a blank 10x10 board, plus the
// reserved null-action ID 0.
const Range = 1293

var (
	registryOnce sync.Once
	byID         []Tetromino
	idOf         map[Tetromino]int
)

// initRegistry builds the forward and reverse ID tables once, by
// enumerating every placement of every colour on a blank board and
// sorting the result into a fixed, reproducible order. This mirrors the
// teacher's own process-wide Zobrist table: built once under a lock,
// read-only for the remainder of the process.
func initRegistry() {
	seen := map[Tetromino]bool{}
	all := make([]Tetromino, 0, Range)
	for x := 0; x < geometry.BoardSize; x++ {
		for y := 0; y < geometry.BoardSize; y++ {
			anchor := geometry.Point{X: x, Y: y}
			for _, c := range Colours {
				for _, t := range EnumerateTransforms(c) {
					cand := New(c, anchor, t)
					inBounds := true
					for _, p := range cand.points {
						if !p.InBounds() {
							inBounds = false
							break
						}
					}
					if !inBounds || seen[cand] {
						continue
					}
					seen[cand] = true
					all = append(all, cand)
				}
			}
		}
	}
	sort.Slice(all, func(i, j int) bool { return Less(all[i], all[j]) })

	byID = make([]Tetromino, len(all)+1)
	idOf = make(map[Tetromino]int, len(all)+1)

	// ID 0 is reserved for the null action: the first enumerated real
	// tetromino's shape, but with its colour overwritten to None, so
	// that Null().IsNull() holds and ID(Null()) is 0. The zero value
	// Tetromino{} also reports IsNull(), but it is not this registered
	// entry, and ID panics on it.
	null := all[0]
	null.colour = ColourNone
	byID[0] = null
	idOf[null] = 0

	for i, t := range all {
		id := i + 1
		byID[id] = t
		idOf[t] = id
	}
}

func ensureRegistry() {
	registryOnce.Do(initRegistry)
}

// ID returns the process-wide ID of a tetromino. Panics if the
// tetromino was not produced by this package (e.g. malformed absolute
// points), since that indicates a programming error rather than a
// recoverable runtime condition.
func ID(t Tetromino) int {
	ensureRegistry()
	id, ok := idOf[t]
	if !ok {
		panic(fmt.Sprintf("tetromino: %s is not a member of the registry", t.Notate()))
	}
	return id
}

// FromID looks up the tetromino bound to a process-wide ID.
func FromID(id int) (Tetromino, error) {
	ensureRegistry()
	if id < 0 || id >= len(byID) {
		return Tetromino{}, fmt.Errorf("tetromino: id %d is out of range [0, %d)", id, len(byID))
	}
	return byID[id], nil
}

// Null returns the reserved null tetromino, bound to ID 0.
func Null() Tetromino {
	ensureRegistry()
	return byID[0]
}
