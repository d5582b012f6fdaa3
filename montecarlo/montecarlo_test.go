package montecarlo

import (
	"testing"

	"github.com/matryer/is"

	"github.com/kgeller/shutbox/board"
	"github.com/kgeller/shutbox/dice"
)

func TestRunProducesLegalTable(t *testing.T) {
	is := is.New(t)

	result, err := NewRunner(2, 300).Run()
	is.NoErr(err)
	is.Equal(result.Games, uint64(2*2*300)) // two games per pair
	is.True(len(result.BestMoves) > 0)

	for key, successor := range result.BestMoves {
		is.True(key.Board <= dice.MaxBoard)
		is.True(key.Roll.Valid())
		is.True(successor <= dice.MaxBoard)

		// The recommended successor must be a legal move for the key.
		legal := false
		for _, candidate := range board.Get(key.Board).Roll(key.Roll.Value()).Successors() {
			if candidate == successor {
				legal = true
			}
		}
		is.True(legal)
	}
}

func TestRunResidualStats(t *testing.T) {
	is := is.New(t)

	result, err := NewRunner(3, 100).Run()
	is.NoErr(err)
	is.Equal(result.Residuals.Iterations(), int(result.Games))
	is.True(result.Residuals.Mean() >= 0)
	is.True(result.Residuals.Mean() <= 45)
	is.True(len(result.ResidualSample) > 0)
	is.True(result.ShutBoxes <= result.Games)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	is := is.New(t)

	var seed [32]byte
	copy(seed[:], "an entirely predictable seed!!!!")

	runnerA := NewRunner(4, 150)
	runnerA.SetSeed(seed)
	resultA, err := runnerA.Run()
	is.NoErr(err)

	runnerB := NewRunner(4, 150)
	runnerB.SetSeed(seed)
	resultB, err := runnerB.Run()
	is.NoErr(err)

	is.Equal(resultA.BestMoves, resultB.BestMoves)
	is.Equal(resultA.Games, resultB.Games)
	is.Equal(resultA.ShutBoxes, resultB.ShutBoxes)
}

func TestComputeEntryPoint(t *testing.T) {
	is := is.New(t)

	moves, err := Compute(2, 50)
	is.NoErr(err)
	is.True(len(moves) > 0)
}
