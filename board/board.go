// Package board models the nine-piece shut-the-box board as a 9-bit
// bitmask and precomputes, for every board, the successor boards reachable
// under every possible dice roll.
//
// Bit layout within the uint16:
//
//	0000000 | 000000000
//	0000000 | 987654321
//
// Bit i set means piece i+1 is still alive.
package board

import "lukechampine.com/frand"

// NumRolls is the number of distinct two-die sums (2 through 12).
const NumRolls = 11

// MinRoll and MaxRoll bound the possible two-die sums.
const (
	MinRoll = 2
	MaxRoll = 12
)

// Board is one of the 512 possible piece configurations, together with the
// moves legal under each possible roll. Boards are built once by the table
// in this package and never mutated, so they are safe to share across
// simulation workers.
type Board struct {
	bits  uint16
	rolls [NumRolls]Roll
}

// rollIndexes maps a uniform draw in [0,36) to a roll index (sum - 2),
// reproducing the true two-die distribution: one way to roll a 2, six ways
// to roll a 7, one way to roll a 12.
var rollIndexes = [36]uint8{
	0, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5,
	6, 6, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 10,
}

func newBoard(bits uint16) Board {
	b := Board{bits: bits}
	for sum := uint8(MinRoll); sum <= MaxRoll; sum++ {
		b.rolls[sum-MinRoll] = newRoll(sum, bits)
	}
	return b
}

// Bits returns the raw bitmask of alive pieces.
func (b *Board) Bits() uint16 {
	return b.bits
}

// Value sums the numbers of the alive pieces. It ranges 0 (box shut)
// through 45 (all pieces up).
func (b *Board) Value() uint8 {
	var total uint8
	for i := uint8(0); i < 9; i++ {
		if b.bits>>i&1 == 1 {
			total += i + 1
		}
	}
	return total
}

// Roll returns the move set for the given dice sum.
func (b *Board) Roll(sum uint8) *Roll {
	return &b.rolls[sum-MinRoll]
}

// RandomRoll draws one of the board's eleven rolls with probability equal
// to the chance of rolling that sum with two dice.
func (b *Board) RandomRoll(rng *frand.RNG) *Roll {
	idx := rollIndexes[rng.Intn(len(rollIndexes))]
	return &b.rolls[idx]
}
