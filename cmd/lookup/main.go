// lookup answers "what should I play from board B on roll R" against a
// previously computed move table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kgeller/shutbox/board"
	"github.com/kgeller/shutbox/dice"
	"github.com/kgeller/shutbox/movefile"
)

func main() {
	fs := pflag.NewFlagSet("lookup", pflag.ExitOnError)
	table := fs.String("table", "best_moves.yml", "path of the computed move table")
	boardBits := fs.Uint16("board", dice.MaxBoard, "board bitmask (bit i set = piece i+1 alive)")
	rollSum := fs.Uint8("roll", 0, "rolled dice sum, 2-12")
	fs.Parse(os.Args[1:])

	roll, err := dice.FromValue(*rollSum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *boardBits > dice.MaxBoard {
		fmt.Fprintf(os.Stderr, "board must be between 0 and %d\n", dice.MaxBoard)
		os.Exit(1)
	}

	moves, err := movefile.ReadFile(*table)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	successor, ok := moves[dice.BoardRoll{Board: *boardBits, Roll: roll}]
	if !ok {
		fmt.Printf("no recommendation for board %d on a roll of %d: the game ends here\n",
			*boardBits, *rollSum)
		return
	}

	fmt.Printf("board %d, roll %d: knock down %v, leaving board %d (value %d)\n",
		*boardBits, *rollSum, knockedDown(*boardBits, successor),
		successor, board.Get(successor).Value())
}

// knockedDown lists the piece numbers cleared between the two boards.
func knockedDown(from, to uint16) []int {
	cleared := from &^ to
	var pieces []int
	for i := 0; i < 9; i++ {
		if cleared>>i&1 == 1 {
			pieces = append(pieces, i+1)
		}
	}
	return pieces
}
