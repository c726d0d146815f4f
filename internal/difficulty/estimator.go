// Package difficulty grades a puzzle from solver statistics and clue
// density into discrete tiers.
package difficulty

import (
	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/ports"
)

// Tier thresholds over the combined score. Fixed so grading is a pure
// function of its inputs.
const (
	easyMax   = 4
	mediumMax = 12
	hardMax   = 24
)

// Score combines the search effort needed to solve the puzzle with how
// sparse its clue set is. Branch points dominate: a puzzle a player can
// finish by forced moves alone scores only its density term.
func Score(st ports.Stats, clueCount, gridSize int) int {
	score := 4*st.BranchPoints + 2*st.MaxDepth
	if gridSize > 0 {
		hidden := gridSize - clueCount
		if hidden < 0 {
			hidden = 0
		}
		score += (10 * hidden) / gridSize
	}
	return score
}

// Estimate maps solver statistics to a tier. Holding the statistics
// fixed, removing clues never lowers the tier.
func Estimate(st ports.Stats, clueCount, gridSize int) domain.Difficulty {
	s := Score(st, clueCount, gridSize)
	switch {
	case s <= easyMax:
		return domain.Easy
	case s <= mediumMax:
		return domain.Medium
	case s <= hardMax:
		return domain.Hard
	default:
		return domain.Expert
	}
}
