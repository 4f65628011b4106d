package mcts

import "github.com/rsarvar1a/lits-engine/internal/board"

// Tree is a per-worker search arena. Nodes are appended and never
// individually freed; Reset reuses the backing storage across
// searches the way the teacher's transposition table is cleared
// rather than reallocated between runs.
type Tree struct {
	nodes []*Node
}

// NewTree returns a tree rooted at a clone of the given board.
func NewTree(root *board.Board) *Tree {
	t := &Tree{}
	t.Reset(root)
	return t
}

// Reset discards all nodes and reseeds the arena with a fresh root.
func (t *Tree) Reset(root *board.Board) {
	t.nodes = t.nodes[:0]
	t.nodes = append(t.nodes, &Node{state: root.Clone(), parent: -1})
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int { return 0 }

// Node returns the node at the given arena index.
func (t *Tree) Node(idx int) *Node { return t.nodes[idx] }

// NewNode appends a node to the arena and returns its index.
func (t *Tree) NewNode(state *board.Board, parent int) int {
	t.nodes = append(t.nodes, &Node{state: state, parent: parent})
	return len(t.nodes) - 1
}

// Len returns how many nodes currently live in the arena.
func (t *Tree) Len() int { return len(t.nodes) }
