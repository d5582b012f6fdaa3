package board

import (
	"sync"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// NumBoards is the size of the board universe: 2^9 bitmasks.
const NumBoards = 512

var (
	tableOnce sync.Once
	table     []Board
)

// All returns the full board universe, building and caching it on first
// use. The table is immutable after construction and safe for concurrent
// reads.
func All() []Board {
	tableOnce.Do(func() {
		table = make([]Board, NumBoards)
		for bits := range table {
			table[bits] = newBoard(uint16(bits))
		}
		log.Debug().Int("boards", NumBoards).Msg("built board table")
	})
	return table
}

// Get returns the board for the given bitmask. The mask must be below
// NumBoards; every successor produced by this package satisfies that.
func Get(bits uint16) *Board {
	return &All()[bits]
}

// Random draws a uniformly random board from the universe.
func Random(rng *frand.RNG) *Board {
	return &All()[rng.Intn(NumBoards)]
}
