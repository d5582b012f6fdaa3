// Package dice implements the packed byte encoding for a two-die roll and
// the BoardRoll key used in the best-move table.
package dice

import "fmt"

// Roll packs two die faces into one byte:
//
//	111 0 222 0
//
// where 111 is the first die (bits 5-7) and 222 the second (bits 1-3).
// The raw byte never leaves this package; consumers see only the summed
// value and the textual BoardRoll form.
type Roll byte

// New packs the two die faces. Faces outside 1-6 produce a Roll that
// fails Valid.
func New(one, two uint8) Roll {
	return Roll((one << 5) | ((two & 0b111) << 1))
}

// canonical two-die pairs for each sum 2..12.
var pairForValue = [13][2]uint8{
	2:  {1, 1},
	3:  {2, 1},
	4:  {3, 1},
	5:  {4, 1},
	6:  {5, 1},
	7:  {6, 1},
	8:  {6, 2},
	9:  {6, 3},
	10: {6, 4},
	11: {6, 5},
	12: {6, 6},
}

// FromValue returns a canonical Roll for the given dice sum.
func FromValue(sum uint8) (Roll, error) {
	if sum < 2 || sum > 12 {
		return 0, fmt.Errorf("dice sum must be between 2 and 12, got %d", sum)
	}
	p := pairForValue[sum]
	return New(p[0], p[1]), nil
}

// FromRaw validates a raw encoded byte, as read from a serialized key.
func FromRaw(b byte) (Roll, error) {
	r := Roll(b)
	if !r.Valid() {
		return 0, fmt.Errorf("byte %d does not decode to a dice sum between 2 and 12", b)
	}
	return r, nil
}

// Value returns the summed value of the two packed dice.
func (r Roll) Value() uint8 {
	one := (uint8(r) & 0b11100000) >> 5
	two := (uint8(r) & 0b00001110) >> 1
	return one + two
}

// Valid reports whether the decoded sum is a possible two-die roll.
func (r Roll) Valid() bool {
	v := r.Value()
	return v >= 2 && v <= 12
}

func (r Roll) String() string {
	return fmt.Sprintf("%d", byte(r))
}
