// Package shell implements the engine's line-oriented text protocol:
// one whitespace-separated command per line on stdin, at most one
// "=" result line on stdout per command, and everything else on
// stderr via the standard logger. The one exception is show-board,
// which writes the board's notation and a grid dump to stdout.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/config"
	"github.com/rsarvar1a/lits-engine/internal/game"
	"github.com/rsarvar1a/lits-engine/internal/mcts"
	"github.com/rsarvar1a/lits-engine/internal/oracle"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// Shell dispatches protocol commands against a single game and
// search pool.
type Shell struct {
	out   io.Writer
	game  *game.Game
	pool  *mcts.Pool
	brain oracle.Oracle
	cfg   config.Config
}

// New constructs a shell with a fresh game and an idle pool.
func New(cfg config.Config, brain oracle.Oracle) *Shell {
	s := &Shell{
		out:   os.Stdout,
		game:  game.New(),
		pool:  mcts.NewPool(cfg),
		brain: brain,
		cfg:   cfg,
	}
	if err := s.pool.SetNumThreads(cfg.MCTS.NumThreads, brain); err != nil {
		log.Printf("shell: failed to start workers: %v", err)
	}
	return s
}

// Run reads commands from r until EOF or a "shutdown" command.
func (s *Shell) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		if !s.dispatch(cmd, args) {
			return
		}
	}
}

// dispatch executes one command; returns false when the shell should
// stop reading further input.
func (s *Shell) dispatch(cmd string, args []string) bool {
	switch cmd {
	case "initialize":
		log.Printf("shell: engine ready")
	case "shutdown":
		s.pool.Shutdown()
		return false
	case "setup-position":
		s.handleSetupPosition(args)
	case "new-game":
		s.game = game.New()
	case "play-move":
		s.handlePlayMove(args)
	case "undo-move":
		s.handleUndoMove()
	case "cancel-search":
		s.pool.CancelSearch()
	case "gen-move":
		s.handleGenMove()
	case "analyze-board":
		s.handleAnalyzeBoard()
	case "show-board":
		s.handleShowBoard()
	default:
		log.Printf("shell: unknown command %q", cmd)
	}
	return true
}

func (s *Shell) handleSetupPosition(args []string) {
	if len(args) != 1 {
		log.Printf("shell: setup-position requires exactly one argument")
		return
	}
	bd, err := parseBoardNotation(args[0])
	if err != nil {
		log.Printf("shell: setup-position: %v", err)
		return
	}
	s.game = game.FromBoard(bd)
}

func (s *Shell) handlePlayMove(args []string) {
	if len(args) != 1 {
		log.Printf("shell: play-move requires exactly one argument")
		return
	}
	t, err := tetromino.Parse(args[0])
	if err != nil {
		log.Printf("shell: play-move: %v", err)
		return
	}
	if err := s.game.Apply(t); err != nil {
		log.Printf("shell: play-move: %v", err)
	}
}

func (s *Shell) handleUndoMove() {
	if err := s.game.Undo(); err != nil {
		log.Printf("shell: undo-move: %v", err)
	}
}

func (s *Shell) handleGenMove() {
	move, err := s.pool.Launch(s.game.GetBoard())
	if err != nil {
		log.Printf("shell: gen-move: %v", err)
		fmt.Fprintf(s.out, "= 0 %s\n", tetromino.Null().Notate())
		return
	}
	if err := s.game.Apply(move); err != nil {
		log.Printf("shell: gen-move: applying search result: %v", err)
	}
	fmt.Fprintf(s.out, "= 0 %s\n", move.Notate())
}

// handleAnalyzeBoard replays the game's history from the base board
// and, at each resulting position, asks the configured oracle for its
// value estimate. There is no surviving original-source implementation
// of this command; the evaluation trail it produces is this engine's
// own design.
func (s *Shell) handleAnalyzeBoard() {
	bd := s.game.GetBoardBase().Clone()
	history := s.game.GetHistory()

	evals := make([]float64, 0, len(history)+1)
	evals = append(evals, s.evaluate(bd))

	for _, move := range history {
		if err := bd.PlaceTetromino(move); err != nil {
			log.Printf("shell: analyze-board: replay desynced: %v", err)
			break
		}
		evals = append(evals, s.evaluate(bd))
	}

	fmt.Fprintf(s.out, "= %s\n", formatEvals(evals))
}

// evaluate asks the configured oracle for its value estimate of bd,
// falling back to the raw board score if the oracle errors.
func (s *Shell) evaluate(bd *board.Board) float64 {
	pred, err := s.brain.Predict(bd)
	if err != nil {
		log.Printf("shell: analyze-board: oracle predict failed, falling back to raw score: %v", err)
		return bd.Score()
	}
	return float64(pred.Value)
}

func (s *Shell) handleShowBoard() {
	bd := s.game.GetBoard()
	fmt.Fprintln(s.out, bd.Notate())
	fmt.Fprintln(s.out, renderGrid(bd))
}
