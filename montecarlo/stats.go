package montecarlo

import "math"

// residualSampleCap bounds the per-run sample kept for histogram display.
const residualSampleCap = 4096

// Statistic tracks a running mean and variance with Welford's algorithm.
type Statistic struct {
	totalIterations int

	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
	}
}

func (s *Statistic) Iterations() int {
	return s.totalIterations
}

func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0.0
	}
	return s.newS / float64(s.totalIterations-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

// combine merges another running statistic into this one (Chan et al.'s
// parallel form of Welford's update).
func (s *Statistic) combine(other *Statistic) {
	if other.totalIterations == 0 {
		return
	}
	if s.totalIterations == 0 {
		*s = *other
		return
	}
	na := float64(s.totalIterations)
	nb := float64(other.totalIterations)
	delta := other.newM - s.newM
	n := na + nb

	s.newM += delta * nb / n
	s.newS += other.newS + delta*delta*na*nb/n
	s.oldM = s.newM
	s.oldS = s.newS
	s.totalIterations += other.totalIterations
}

// runStats collects per-worker outcome statistics, merged after the join.
type runStats struct {
	residuals      Statistic
	residualSample []float64
	shutBoxes      uint64
	games          uint64
}

func (rs *runStats) observe(g *Game) {
	rs.games++
	rs.residuals.Push(float64(g.Value))
	if g.Value == 0 {
		rs.shutBoxes++
	}
	if len(rs.residualSample) < residualSampleCap {
		rs.residualSample = append(rs.residualSample, float64(g.Value))
	}
}

func (rs *runStats) merge(other *runStats) {
	rs.games += other.games
	rs.shutBoxes += other.shutBoxes
	rs.residuals.combine(&other.residuals)
	room := residualSampleCap - len(rs.residualSample)
	if room > len(other.residualSample) {
		room = len(other.residualSample)
	}
	if room > 0 {
		rs.residualSample = append(rs.residualSample, other.residualSample[:room]...)
	}
}
