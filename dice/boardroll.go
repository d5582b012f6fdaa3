package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBoard is the largest valid board bitmask (all nine pieces alive).
const MaxBoard = 511

// BoardRoll is the lookup key of the best-move table: a board bitmask plus
// the roll made from it. The chosen successor is the mapped value, not part
// of the key.
type BoardRoll struct {
	Board uint16
	Roll  Roll
}

// String renders the key in its persisted form, "<board>-<encoded roll byte>".
func (br BoardRoll) String() string {
	return fmt.Sprintf("%d-%d", br.Board, byte(br.Roll))
}

// Parse decodes the textual form produced by String. The string is split on
// its last dash, the board must be an integer 0-511, and the roll byte must
// decode to a dice sum between 2 and 12.
func Parse(s string) (BoardRoll, error) {
	idx := strings.LastIndexByte(s, '-')
	if idx < 0 {
		return BoardRoll{}, fmt.Errorf("%q is not a board-roll key: missing dash", s)
	}
	board, err := strconv.ParseUint(s[:idx], 10, 16)
	if err != nil {
		return BoardRoll{}, fmt.Errorf("%q has an invalid board component: %w", s, err)
	}
	if board > MaxBoard {
		return BoardRoll{}, fmt.Errorf("%q has board %d above %d", s, board, MaxBoard)
	}
	raw, err := strconv.ParseUint(s[idx+1:], 10, 8)
	if err != nil {
		return BoardRoll{}, fmt.Errorf("%q has an invalid roll component: %w", s, err)
	}
	roll, err := FromRaw(byte(raw))
	if err != nil {
		return BoardRoll{}, fmt.Errorf("%q has an invalid roll: %w", s, err)
	}
	return BoardRoll{Board: uint16(board), Roll: roll}, nil
}
