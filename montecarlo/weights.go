package montecarlo

import (
	"fmt"
	"sort"

	"github.com/kgeller/shutbox/dice"
)

// Weight accumulates the outcomes observed for one Choice. The raw sum and
// count are kept separate so the hot aggregation loop never divides; the
// average is taken once, during reduction.
type Weight struct {
	total uint64
	count uint64
}

func (w *Weight) add(score uint32) {
	w.total += uint64(score)
	w.count++
}

func (w *Weight) combine(other *Weight) {
	w.total += other.total
	w.count += other.count
}

// Average returns the integer mean outcome score for this weight.
func (w *Weight) Average() uint16 {
	return uint16(w.total / w.count)
}

// weightMap is one worker's private accumulation of choice outcomes.
type weightMap map[Choice]*Weight

// record folds a finished game's outcome into every non-terminal choice it
// made. Terminal choices are forced endings, not recommendable moves, so
// they carry no weight.
func (m weightMap) record(g *Game) {
	for _, move := range g.Moves {
		if move.Terminal {
			continue
		}
		w, ok := m[move]
		if !ok {
			w = &Weight{}
			m[move] = w
		}
		w.add(uint32(g.Result))
	}
}

// merge folds another worker's map into this one by summing matching
// weights.
func (m weightMap) merge(other weightMap) {
	for choice, w := range other {
		existing, ok := m[choice]
		if !ok {
			m[choice] = w
			continue
		}
		existing.combine(w)
	}
}

// reduce collapses the aggregate to the single best successor per
// (board, roll): the candidate with the strictly highest average outcome.
// Candidates are visited in sorted key order so that ties deterministically
// keep the first-seen candidate, and re-reducing the same aggregate always
// yields an identical table.
func reduce(weights weightMap) (map[dice.BoardRoll]uint16, error) {
	choices := make([]Choice, 0, len(weights))
	for choice := range weights {
		choices = append(choices, choice)
	}
	sort.Slice(choices, func(i, j int) bool {
		a, b := choices[i], choices[j]
		if a.Root != b.Root {
			return a.Root < b.Root
		}
		if a.Roll != b.Roll {
			return a.Roll < b.Roll
		}
		return a.Chosen < b.Chosen
	})

	bestMoves := make(map[dice.BoardRoll]uint16)
	bestAverages := make(map[dice.BoardRoll]uint16)

	for _, choice := range choices {
		roll, err := dice.FromValue(choice.Roll)
		if err != nil {
			return nil, fmt.Errorf("aggregated choice has impossible roll %d: %w", choice.Roll, err)
		}
		key := dice.BoardRoll{Board: choice.Root, Roll: roll}
		average := weights[choice].Average()

		if existing, ok := bestAverages[key]; ok && existing >= average {
			continue
		}
		bestAverages[key] = average
		bestMoves[key] = choice.Chosen
	}

	return bestMoves, nil
}
