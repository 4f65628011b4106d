package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/rsarvar1a/lits-engine/internal/config"
	"github.com/rsarvar1a/lits-engine/internal/oracle"
	"github.com/rsarvar1a/lits-engine/internal/shell"
	"github.com/rsarvar1a/lits-engine/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	learned    = flag.Bool("learned", false, "start with the learned oracle instead of the heuristic one")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Fatal("could not open storage: ", err)
	}
	defer store.Close()

	cfg := loadConfig(store)
	brain := loadOracle(store, cfg, *learned)

	s := shell.New(cfg, brain)
	s.Run(os.Stdin)

	saveOracle(store, brain)
}

// loadConfig builds a Config from saved preferences, falling back to
// documented defaults when none have been saved yet.
func loadConfig(store *storage.Storage) config.Config {
	cfg := config.Default()
	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("main: failed to load preferences, using defaults: %v", err)
		return cfg
	}
	cfg.MCTS.NumThreads = prefs.NumThreads
	cfg.MCTS.MaxTimeMs = prefs.MaxTimeMs
	cfg.MCTS.Discount = prefs.Discount
	cfg.MCTS.UCTConst = prefs.UCTConst
	return cfg
}

// loadOracle constructs the learned oracle from saved weights when
// requested, falling back to a fresh one, or to the heuristic oracle
// otherwise.
func loadOracle(store *storage.Storage, cfg config.Config, useLearned bool) oracle.Oracle {
	if !useLearned {
		return oracle.NewHeuristic()
	}
	data, err := store.LoadWeights()
	if err != nil {
		log.Printf("main: failed to load oracle weights, starting fresh: %v", err)
		return oracle.NewLearned()
	}
	if data == nil {
		return oracle.NewLearned()
	}
	l, err := oracle.LoadLearned(data)
	if err != nil {
		log.Printf("main: failed to decode oracle weights, starting fresh: %v", err)
		return oracle.NewLearned()
	}
	return l
}

// saveOracle persists a learned oracle's weights on shutdown; a no-op
// for the heuristic oracle, which carries no learned state.
func saveOracle(store *storage.Storage, brain oracle.Oracle) {
	l, ok := brain.(*oracle.Learned)
	if !ok {
		return
	}
	data, err := l.Marshal()
	if err != nil {
		log.Printf("main: failed to marshal oracle weights: %v", err)
		return
	}
	if err := store.SaveWeights(data); err != nil {
		log.Printf("main: failed to save oracle weights: %v", err)
	}
}
