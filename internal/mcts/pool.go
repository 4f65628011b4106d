// Package mcts implements root-parallel Monte Carlo tree search: each
// worker owns an independent tree and oracle copy, and a pool
// coordinates launching, timing out, and reducing across them.
package mcts

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/book"
	"github.com/rsarvar1a/lits-engine/internal/config"
	"github.com/rsarvar1a/lits-engine/internal/endgame"
	"github.com/rsarvar1a/lits-engine/internal/litserr"
	"github.com/rsarvar1a/lits-engine/internal/oracle"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// MoveEval is one candidate move's aggregated evaluation, reduced
// across every worker that touched it.
type MoveEval struct {
	Move   tetromino.Tetromino
	Visits int
	Eval   float64
}

// Pool coordinates a fleet of Searchers over a shared configuration,
// an opening book, and an endgame solver.
type Pool struct {
	cfg     config.Config
	workers []*Searcher
	wg      sync.WaitGroup

	stop   atomic.Bool
	kill   atomic.Bool
	wakeup *latch

	Book   *book.Book
	Solver *endgame.Solver
}

// NewPool returns an idle pool with no workers yet spawned.
func NewPool(cfg config.Config) *Pool {
	p := &Pool{
		cfg:    cfg,
		wakeup: newLatch(false),
		Book:   book.New(),
		Solver: endgame.NewSolver(1<<16, endgame.DefaultMaxSolvedPieces),
	}
	p.stop.Store(true)
	return p
}

// SetNumThreads tears down any existing workers and spawns n fresh
// ones, each carrying its own copy of the given oracle template.
func (p *Pool) SetNumThreads(n int, template oracle.Oracle) error {
	if n <= 0 {
		return litserr.ErrInvalidConfig
	}

	p.teardown()

	p.cfg.MCTS.NumThreads = n
	p.kill.Store(false)
	p.workers = make([]*Searcher, n)

	for i := 0; i < n; i++ {
		s := newSearcher(i, p, template.Copy())
		p.workers[i] = s
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			s.run()
		}()
	}
	return nil
}

// teardown stops and joins any live workers.
func (p *Pool) teardown() {
	if len(p.workers) == 0 {
		return
	}
	p.stop.Store(true)
	for _, w := range p.workers {
		w.status.waitFinished()
	}
	p.kill.Store(true)
	p.wakeup.Set(true)
	p.wg.Wait()
	p.wakeup.Set(false)
	p.workers = nil
}

// Shutdown tears down every worker permanently.
func (p *Pool) Shutdown() {
	p.teardown()
}

// Launch runs one search batch from rootBoard and returns the best
// move by reduced evaluation. Before spawning any search it consults
// the opening book and, for small positions, the endgame solver.
func (p *Pool) Launch(rootBoard *board.Board) (tetromino.Tetromino, error) {
	if !rootBoard.HasMoves() {
		return tetromino.Null(), litserr.New(litserr.KindRuleViolation, "mcts: no legal moves at root")
	}

	if move, ok := p.Book.Probe(rootBoard); ok {
		return move, nil
	}

	if p.Solver.Applicable(rootBoard) {
		if _, _, move, ok := p.Solver.Solve(rootBoard); ok && !move.IsNull() {
			return move, nil
		}
	}

	if len(p.workers) == 0 {
		return tetromino.Null(), litserr.New(litserr.KindConfig, "mcts: pool has no workers, call SetNumThreads first")
	}

	for _, w := range p.workers {
		w.tree.Reset(rootBoard)
		w.status.reset()
	}

	p.stop.Store(false)
	p.wakeup.Set(true)
	for _, w := range p.workers {
		w.status.waitStarted()
	}
	p.wakeup.Set(false)

	p.waitOrCancel(time.Duration(p.cfg.MCTS.MaxTimeMs) * time.Millisecond)

	p.stop.Store(true)
	for _, w := range p.workers {
		w.status.waitFinished()
	}

	return p.reduce(rootBoard)
}

// CancelSearch sets the shared stop flag so any in-flight batch exits
// promptly.
func (p *Pool) CancelSearch() {
	p.stop.Store(true)
}

// pollInterval bounds how long Launch's timing loop can take to
// notice an external CancelSearch call.
const pollInterval = 10 * time.Millisecond

// waitOrCancel blocks for budget, or until CancelSearch sets stop,
// whichever comes first.
func (p *Pool) waitOrCancel(budget time.Duration) {
	deadline := time.Now().Add(budget)
	for time.Now().Before(deadline) {
		if p.stop.Load() {
			return
		}
		remaining := time.Until(deadline)
		if remaining > pollInterval {
			remaining = pollInterval
		}
		time.Sleep(remaining)
	}
}

// reduce aggregates visits and value across every worker's root
// children and returns the move with the best combined evaluation.
// Priors are not aggregated and play no part in the choice.
func (p *Pool) reduce(rootBoard *board.Board) (tetromino.Tetromino, error) {
	type accum struct {
		visits  int
		evalSum float64
		evalN   int
		winInf  bool
		lossInf bool
	}
	acc := make(map[tetromino.Tetromino]*accum)

	for _, w := range p.workers {
		root := w.tree.Node(w.tree.Root())
		for _, cref := range root.children {
			child := w.tree.Node(cref.index)
			a, ok := acc[cref.move]
			if !ok {
				a = &accum{}
				acc[cref.move] = a
			}
			a.visits += child.n

			if child.solved {
				// A child's outcome is from its own side to move, the
				// root mover's opponent.
				if child.outcome == Loss {
					a.winInf = true
				} else {
					a.lossInf = true
				}
				continue
			}
			if child.n > 0 {
				a.evalSum += -child.v / float64(child.n)
				a.evalN++
			}
		}
	}

	if len(acc) == 0 {
		return tetromino.Null(), litserr.New(litserr.KindRuleViolation, "mcts: root had no children after search")
	}

	evals := make([]MoveEval, 0, len(acc))
	for move, a := range acc {
		eval := 0.0
		switch {
		case a.winInf:
			eval = infValue
		case a.lossInf && a.evalN == 0:
			eval = -infValue
		case a.evalN > 0:
			eval = a.evalSum / float64(a.evalN)
		}
		evals = append(evals, MoveEval{Move: move, Visits: a.visits, Eval: eval})
	}

	sort.Slice(evals, func(i, j int) bool {
		if evals[i].Eval != evals[j].Eval {
			return evals[i].Eval > evals[j].Eval
		}
		return evals[i].Visits > evals[j].Visits
	})

	return evals[0].Move, nil
}
