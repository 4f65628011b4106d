package mcts

import (
	"math"
	"time"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/oracle"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Searcher owns one worker's independent search tree. Workers never
// share tree state; the pool reduces across trees only after every
// worker has finished a batch.
type Searcher struct {
	id    int
	pool  *Pool
	tree  *Tree
	brain oracle.Oracle

	status *statusLatch
}

func newSearcher(id int, pool *Pool, brain oracle.Oracle) *Searcher {
	return &Searcher{
		id:     id,
		pool:   pool,
		tree:   NewTree(board.Blank()),
		brain:  brain,
		status: newStatusLatch(),
	}
}

// run is the worker's goroutine body: wait to be released, search
// until the pool signals stop, report finished, repeat until killed.
func (s *Searcher) run() {
	for {
		s.pool.wakeup.Wait(true)
		if s.pool.kill.Load() {
			return
		}

		s.status.markStarted()
		s.searchLoop()
		s.status.markFinished()
	}
}

func (s *Searcher) searchLoop() {
	cfg := s.pool.cfg.MCTS
	deadline := time.Now().Add(time.Duration(cfg.MaxTimeMs) * time.Millisecond)

	for !s.pool.stop.Load() && time.Now().Before(deadline) {
		root := s.tree.Node(s.tree.Root())
		if root.solved {
			break
		}
		s.iterate()
	}
}

// iterate runs one selection-expansion-backup cycle.
func (s *Searcher) iterate() {
	path := []int{s.tree.Root()}
	cur := s.tree.Root()

	for {
		node := s.tree.Node(cur)
		if node.solved || node.isLeaf() {
			break
		}
		cur = s.selectChild(cur)
		path = append(path, cur)
	}

	node := s.tree.Node(cur)
	var val float64
	hasSolution := false
	if node.solved {
		val = valueOf(node.outcome)
		hasSolution = true
	} else {
		val, hasSolution = s.expand(cur)
	}

	s.backup(path, val, hasSolution)
}

// expand calls the oracle, creates one child per legal move, and
// immediately resolves any child that turns out to be terminal.
func (s *Searcher) expand(idx int) (float64, bool) {
	node := s.tree.Node(idx)
	moves := node.state.EnumerateMoves()
	parentToMove := node.state.ToMove()

	pred, err := s.brain.Predict(node.state)
	if err != nil {
		pred = oracle.Prediction{}
	}

	hasSolution := false
	logits := make([]float32, 0, len(moves))

	for _, move := range moves {
		child := node.state.Clone()
		if err := child.PlaceTetromino(move); err != nil {
			continue
		}

		childIdx := s.tree.NewNode(child, idx)
		logit := pred.Policy[tetromino.ID(move)]

		if !child.HasMoves() {
			result := child.Result()
			cn := s.tree.Node(childIdx)
			cn.solved = true
			// Outcomes are stored from the child's own side to move,
			// which is the opponent of parentToMove.
			cn.outcome = Win
			if result.Winner == parentToMove {
				cn.outcome = Loss
			}
			hasSolution = true
		}

		node.children = append(node.children, childRef{move: move, index: childIdx, p: logit})
		logits = append(logits, logit)
	}

	softmaxInPlace(node, logits)

	return float64(pred.Value), hasSolution
}

// softmaxInPlace renormalizes the priors just assigned to node's
// children, in place, from their raw oracle logits.
func softmaxInPlace(node *Node, logits []float32) {
	if len(logits) == 0 {
		return
	}
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}
	var sum float64
	exps := make([]float64, len(logits))
	for i, l := range logits {
		e := math.Exp(float64(l - max))
		exps[i] = e
		sum += e
	}
	if sum == 0 {
		sum = 1
	}
	for i := range node.children {
		node.children[i].p = float32(exps[i] / sum)
	}
}

// selectChild walks one PUCT step from parentIdx, breaking ties toward
// the lowest child index.
func (s *Searcher) selectChild(parentIdx int) int {
	parent := s.tree.Node(parentIdx)
	cUCT := s.pool.cfg.MCTS.UCTConst

	best := parent.children[0].index
	bestScore := math.Inf(-1)

	for _, cref := range parent.children {
		child := s.tree.Node(cref.index)
		score := q(parent, child) + u(cUCT, parent, cref, child)
		if score > bestScore {
			bestScore = score
			best = cref.index
		}
	}
	return best
}

func q(parent, child *Node) float64 {
	switch {
	case child.isLeaf() && child.n == 0:
		if parent.n == 0 {
			return 0
		}
		return parent.v / float64(parent.n)
	default:
		if child.n == 0 {
			return 0
		}
		return -child.v / float64(child.n)
	}
}

func u(cUCT float64, parent *Node, cref childRef, child *Node) float64 {
	return cUCT * float64(cref.p) * math.Sqrt(float64(parent.n)) / float64(1+child.n)
}

// valueOf seeds backup() when iteration's descent terminates directly
// on an already-solved node: the magic formula in backup() guarantees
// a freshly solved node's own v/n already lands on exactly ±1, so the
// seed for every subsequent revisit carries the same unit scale rather
// than a sentinel magnitude.
func valueOf(o Outcome) float64 {
	if o == Win {
		return 1
	}
	return -1
}

// backup walks path from leaf to root, folding in solved-outcome
// propagation where applicable and discounting val one ply per level.
func (s *Searcher) backup(path []int, val float64, hasSolution bool) {
	discount := s.pool.cfg.MCTS.Discount

	for i := len(path) - 1; i >= 0; i-- {
		node := s.tree.Node(path[i])

		if hasSolution && !node.solved {
			if outcome, ok := trySolve(s.tree, node); ok {
				node.solved = true
				node.outcome = outcome
				if outcome == Win {
					val = -node.v + float64(node.n+1)
				} else {
					val = -node.v - float64(node.n+1)
				}
			} else {
				hasSolution = false
			}
		}

		node.v += val
		node.n++

		if i == 0 {
			break
		}
		val = -discount * val
	}
}

// trySolve examines a node's children to see whether this node's own
// outcome now follows necessarily: a Loss among the children hands
// this node a forced Win; every child being solved (with none a Loss)
// hands this node a Loss.
func trySolve(tree *Tree, node *Node) (Outcome, bool) {
	allSolved := true
	for _, c := range node.children {
		child := tree.Node(c.index)
		if !child.solved {
			allSolved = false
			continue
		}
		if child.outcome == Loss {
			return Win, true
		}
	}
	if allSolved && len(node.children) > 0 {
		return Loss, true
	}
	return Unsolved, false
}
