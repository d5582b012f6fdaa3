// Package montecarlo computes the statistically best shut-the-box move for
// every reachable (board, roll) pair by massively repeated randomized
// self-play. Games run in paired matches sharing a dice sequence, workers
// aggregate outcomes into private weight maps, and a final single-threaded
// reduction picks the successor with the best average outcome per key.
package montecarlo

import (
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/kgeller/shutbox/board"
	"github.com/kgeller/shutbox/dice"
)

var (
	// PairsPlayed counts paired matches completed across all runs.
	PairsPlayed *expvar.Int
	// WorkersActive tracks the number of simulation workers running.
	WorkersActive *expvar.Int
)

func init() {
	PairsPlayed = expvar.NewInt("pairsPlayed")
	WorkersActive = expvar.NewInt("workersActive")
}

// RunResult is the outcome of a full simulation run: the reduced best-move
// table plus run-level statistics.
type RunResult struct {
	// BestMoves maps each observed (board, roll) to the successor board
	// with the highest average outcome. Keys whose every observed move
	// was terminal are absent: no recommendable move exists there.
	BestMoves map[dice.BoardRoll]uint16

	// Residuals summarizes the final board values of all games played.
	Residuals Statistic
	// ResidualSample is a bounded sample of final values, for display.
	ResidualSample []float64
	// Games is the number of individual games played (two per pair).
	Games uint64
	// ShutBoxes counts games that ended with every piece down.
	ShutBoxes uint64
	Elapsed   time.Duration
}

// Runner owns one simulation run's configuration.
type Runner struct {
	threads        int
	gamesPerThread int
	masterSeed     *[32]byte
}

// NewRunner configures a run of threads workers, each playing
// gamesPerThread paired matches. Counts are taken as given; validating
// them is the caller's concern.
func NewRunner(threads, gamesPerThread int) *Runner {
	return &Runner{threads: threads, gamesPerThread: gamesPerThread}
}

// SetSeed makes the run reproducible: every worker RNG derives from the
// given master seed.
func (r *Runner) SetSeed(seed [32]byte) {
	r.masterSeed = &seed
}

// workerSeeds derives one 32-byte seed per worker, either from the master
// seed or from the system entropy pool.
func (r *Runner) workerSeeds() [][32]byte {
	seeds := make([][32]byte, r.threads)
	if r.masterSeed != nil {
		seeder := frand.NewCustom(r.masterSeed[:], 1024, 12)
		for i := range seeds {
			seeder.Read(seeds[i][:])
		}
		return seeds
	}
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

type workerResult struct {
	weights weightMap
	stats   runStats
}

// Run executes the full simulation and reduction. The board table is built
// (or reused) before any worker starts, then shared read-only. Each worker
// plays its quota of paired matches against a private weight map and hands
// the map off exactly once over a buffered channel; the coordinating
// goroutine blocks receiving one result per worker, merges them, and
// reduces. A missing worker result aborts the run: a table computed from
// incomplete aggregation would silently mislead its consumers.
func (r *Runner) Run() (*RunResult, error) {
	start := time.Now()
	boards := board.All()
	log.Info().Int("threads", r.threads).Int("gamesPerThread", r.gamesPerThread).
		Bool("seeded", r.masterSeed != nil).Msg("starting simulation run")

	seeds := r.workerSeeds()
	results := make(chan workerResult, r.threads)

	g := errgroup.Group{}
	for t := 0; t < r.threads; t++ {
		t := t // per-iteration copy; required under go <1.22 loop semantics
		g.Go(func() error {
			WorkersActive.Add(1)
			defer WorkersActive.Add(-1)

			rng := frand.NewCustom(seeds[t][:], 1024, 12)
			weights := make(weightMap)
			var stats runStats

			for i := 0; i < r.gamesPerThread; i++ {
				// Starting from a random board spreads coverage
				// over every reachable (board, roll) key.
				startBoard := &boards[rng.Intn(len(boards))]
				first, second := RunPair(startBoard, rng)

				weights.record(&first)
				weights.record(&second)
				stats.observe(&first)
				stats.observe(&second)
				PairsPlayed.Add(1)
			}

			select {
			case results <- workerResult{weights: weights, stats: stats}:
				return nil
			default:
				return errors.New("could not hand off worker results")
			}
		})
	}

	// Barrier join: every worker either sent its map or errored.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	merged := make(weightMap)
	var stats runStats
	received := 0
	for res := range results {
		received++
		merged.merge(res.weights)
		stats.merge(&res.stats)
		log.Debug().Int("worker", received).Int("of", r.threads).Msg("merged worker results")
	}
	if received != r.threads {
		return nil, fmt.Errorf("received %d of %d worker results", received, r.threads)
	}

	bestMoves, err := reduce(merged)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	log.Info().
		Uint64("games", stats.games).
		Uint64("shutBoxes", stats.shutBoxes).
		Float64("meanResidual", stats.residuals.Mean()).
		Float64("stdevResidual", stats.residuals.Stdev()).
		Int("tableEntries", len(bestMoves)).
		Dur("elapsed", elapsed).
		Msg("simulation run complete")

	return &RunResult{
		BestMoves:      bestMoves,
		Residuals:      stats.residuals,
		ResidualSample: stats.residualSample,
		Games:          stats.games,
		ShutBoxes:      stats.shutBoxes,
		Elapsed:        elapsed,
	}, nil
}

// Compute runs threads workers of gamesPerThread paired matches each and
// returns the reduced best-move table.
func Compute(threads, gamesPerThread int) (map[dice.BoardRoll]uint16, error) {
	result, err := NewRunner(threads, gamesPerThread).Run()
	if err != nil {
		return nil, err
	}
	return result.BestMoves, nil
}
