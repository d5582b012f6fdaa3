package board

import (
	"math/bits"

	"lukechampine.com/frand"
)

// Roll holds a dice sum and every board reachable from its owning board by
// knocking down alive pieces totalling exactly that sum. A Roll with no
// successors is a dying move: the game ends on the owning board.
type Roll struct {
	value      uint8
	successors []uint16
}

// newRoll enumerates every subset of the alive pieces summing to the rolled
// value. Each qualifying subset clears a distinct set of pieces, so no
// deduplication is needed.
func newRoll(value uint8, board uint16) Roll {
	alive := pieces(board)
	var successors []uint16

	// Each integer below 2^len(alive) selects a subset of the alive
	// pieces by its bits.
	for subset := uint16(1); subset < 1<<len(alive); subset++ {
		if subsetSum(subset, alive) != value {
			continue
		}
		successors = append(successors, clearPieces(subset, board, alive))
	}

	return Roll{value: value, successors: successors}
}

// pieces expands a bitmask into the ascending numbers of its alive pieces.
func pieces(board uint16) []uint8 {
	alive := make([]uint8, 0, bits.OnesCount16(board))
	for i := uint8(0); i < 9; i++ {
		if board>>i&1 == 1 {
			alive = append(alive, i+1)
		}
	}
	return alive
}

// subsetSum totals the piece numbers selected by the subset bits.
func subsetSum(subset uint16, alive []uint8) uint8 {
	var sum uint8
	for i := range alive {
		if subset>>i&1 == 1 {
			sum += alive[i]
		}
	}
	return sum
}

// clearPieces returns the board with the selected pieces knocked down.
func clearPieces(subset uint16, board uint16, alive []uint8) uint16 {
	result := board
	for i := range alive {
		if subset>>i&1 == 1 {
			result &^= 1 << (alive[i] - 1)
		}
	}
	return result
}

// Value returns the dice sum this move set answers.
func (r *Roll) Value() uint8 {
	return r.value
}

// Successors returns the boards reachable by this roll. Callers must not
// mutate the returned slice.
func (r *Roll) Successors() []uint16 {
	return r.successors
}

// Terminal reports whether no legal move exists for this roll.
func (r *Roll) Terminal() bool {
	return len(r.successors) == 0
}

// RandomSuccessor draws uniformly among the reachable boards. The second
// return is false for a terminal roll.
func (r *Roll) RandomSuccessor(rng *frand.RNG) (uint16, bool) {
	if len(r.successors) == 0 {
		return 0, false
	}
	return r.successors[rng.Intn(len(r.successors))], true
}
