package montecarlo

import (
	"lukechampine.com/frand"

	"github.com/kgeller/shutbox/board"
)

// Result scores one game of a pair. The magnitudes keep precision through
// the integer averaging in the reduction; only their order matters.
type Result uint32

const (
	Loss Result = 0
	Draw Result = 500
	Win  Result = 1000
)

// Choice is one decision made during a game: from Root, on a roll summing
// to Roll, the player knocked down pieces leaving Chosen. Terminal marks a
// roll with no legal move, which ends the game on Root.
type Choice struct {
	Root     uint16
	Roll     uint8
	Chosen   uint16
	Terminal bool
}

// Game records a finished simulated game.
type Game struct {
	Moves []Choice
	// Value is the sum of the pieces still alive when no move remained.
	Value  uint8
	Result Result
}

// Simulate plays a single game of uniform random moves from start until no
// legal move remains. Rolls are drawn from rollRNG and move choices from
// moveRNG, so two games sharing a roll RNG seed see identical dice. Each
// move clears at least one piece, so the loop runs at most nine times.
func Simulate(start *board.Board, rollRNG, moveRNG *frand.RNG) Game {
	current := start
	var moves []Choice

	for {
		roll := current.RandomRoll(rollRNG)
		next, ok := roll.RandomSuccessor(moveRNG)
		if !ok {
			moves = append(moves, Choice{
				Root:     current.Bits(),
				Roll:     roll.Value(),
				Terminal: true,
			})
			return Game{Moves: moves, Value: current.Value(), Result: Draw}
		}
		moves = append(moves, Choice{
			Root:   current.Bits(),
			Roll:   roll.Value(),
			Chosen: next,
		})
		current = board.Get(next)
	}
}

// RunPair plays two games from start under the same sequence of dice rolls
// but independent move choices, then scores them against each other. The
// shared rolls isolate the effect of move choice from dice luck.
func RunPair(start *board.Board, rng *frand.RNG) (Game, Game) {
	var rollSeed, seedA, seedB [32]byte
	rng.Read(rollSeed[:])
	rng.Read(seedA[:])
	rng.Read(seedB[:])

	first := Simulate(start, newSeededRNG(rollSeed), newSeededRNG(seedA))
	second := Simulate(start, newSeededRNG(rollSeed), newSeededRNG(seedB))

	first.Result, second.Result = scorePair(first.Value, second.Value)
	return first, second
}

// scorePair compares final residual values; the lower value wins.
func scorePair(a, b uint8) (Result, Result) {
	switch {
	case a < b:
		return Win, Loss
	case b < a:
		return Loss, Win
	default:
		return Draw, Draw
	}
}

func newSeededRNG(seed [32]byte) *frand.RNG {
	return frand.NewCustom(seed[:], 1024, 12)
}
