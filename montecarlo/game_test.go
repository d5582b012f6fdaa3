package montecarlo

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/kgeller/shutbox/board"
)

func TestSimulateTerminates(t *testing.T) {
	is := is.New(t)
	rng := frand.New()

	for _, b := range board.All() {
		var rollSeed, moveSeed [32]byte
		rng.Read(rollSeed[:])
		rng.Read(moveSeed[:])

		game := Simulate(&b, newSeededRNG(rollSeed), newSeededRNG(moveSeed))

		is.True(len(game.Moves) > 0)
		last := game.Moves[len(game.Moves)-1]
		is.True(last.Terminal) // every game ends on a dying choice

		clearingMoves := 0
		for _, move := range game.Moves {
			if !move.Terminal {
				clearingMoves++
			}
		}
		is.True(clearingMoves <= 9)

		// The residual value is that of the board the game died on.
		is.Equal(game.Value, board.Get(last.Root).Value())
	}
}

func TestSimulateMovesChainTogether(t *testing.T) {
	is := is.New(t)

	start := board.Get(0b111111111)
	game := Simulate(start, frand.New(), frand.New())

	current := start.Bits()
	for _, move := range game.Moves {
		is.Equal(move.Root, current)
		is.True(move.Roll >= 2 && move.Roll <= 12)
		if move.Terminal {
			break
		}
		// The chosen board must be legal for the recorded roll.
		legal := false
		for _, successor := range board.Get(move.Root).Roll(move.Roll).Successors() {
			if successor == move.Chosen {
				legal = true
			}
		}
		is.True(legal)
		current = move.Chosen
	}
}

func TestPairedGamesShareRollSequence(t *testing.T) {
	is := is.New(t)

	var rollSeed, seedA, seedB [32]byte
	frand.Read(rollSeed[:])
	frand.Read(seedA[:])
	frand.Read(seedB[:])

	start := board.Get(0b111111111)
	first := Simulate(start, newSeededRNG(rollSeed), newSeededRNG(seedA))
	second := Simulate(start, newSeededRNG(rollSeed), newSeededRNG(seedB))

	// Both games draw from identical roll streams, so the i-th rolled
	// value matches for as long as both games last.
	shared := len(first.Moves)
	if len(second.Moves) < shared {
		shared = len(second.Moves)
	}
	for i := 0; i < shared; i++ {
		is.Equal(first.Moves[i].Roll, second.Moves[i].Roll)
	}
}

func TestScorePair(t *testing.T) {
	is := is.New(t)

	// Lower residual value wins.
	a, b := scorePair(3, 10)
	is.Equal(a, Win)
	is.Equal(b, Loss)

	a, b = scorePair(10, 3)
	is.Equal(a, Loss)
	is.Equal(b, Win)

	a, b = scorePair(5, 5)
	is.Equal(a, Draw)
	is.Equal(b, Draw)

	is.Equal(int(Win), 1000)
	is.Equal(int(Draw), 500)
	is.Equal(int(Loss), 0)
}

func TestRunPairScoresConsistently(t *testing.T) {
	is := is.New(t)
	rng := frand.New()

	for i := 0; i < 200; i++ {
		start := board.Random(rng)
		first, second := RunPair(start, rng)

		wantFirst, wantSecond := scorePair(first.Value, second.Value)
		is.Equal(first.Result, wantFirst)
		is.Equal(second.Result, wantSecond)
	}
}
