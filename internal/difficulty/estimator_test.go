package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/ports"
)

func TestEstimateTiers(t *testing.T) {
	cases := []struct {
		name      string
		stats     ports.Stats
		clueCount int
		gridSize  int
		want      domain.Difficulty
	}{
		{"full board solves easy", ports.Stats{}, 19, 19, domain.Easy},
		{"forced-only near-full", ports.Stats{ForcedMoves: 3}, 16, 19, domain.Easy},
		{"sparse but forced", ports.Stats{ForcedMoves: 12}, 7, 19, domain.Medium},
		{"light branching", ports.Stats{BranchPoints: 1, MaxDepth: 2}, 12, 19, domain.Medium},
		{"heavy branching", ports.Stats{BranchPoints: 2, MaxDepth: 4}, 8, 19, domain.Hard},
		{"deep search sparse clues", ports.Stats{BranchPoints: 6, MaxDepth: 8}, 4, 19, domain.Expert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Estimate(tc.stats, tc.clueCount, tc.gridSize))
		})
	}
}

// Holding solver statistics fixed, removing clues must never lower the tier.
func TestEstimateMonotonicInClueRemoval(t *testing.T) {
	statsSets := []ports.Stats{
		{},
		{ForcedMoves: 5},
		{BranchPoints: 2, MaxDepth: 3},
		{BranchPoints: 10, MaxDepth: 12},
	}
	const gridSize = 37
	for _, st := range statsSets {
		prev := Estimate(st, gridSize, gridSize)
		for clues := gridSize - 1; clues >= 0; clues-- {
			cur := Estimate(st, clues, gridSize)
			assert.GreaterOrEqual(t, int(cur), int(prev),
				"tier dropped from %v to %v at %d clues (stats %+v)", prev, cur, clues, st)
			prev = cur
		}
	}
}

func TestEstimateIsPure(t *testing.T) {
	st := ports.Stats{BranchPoints: 2, MaxDepth: 5, ForcedMoves: 9, Nodes: 1234}
	a := Estimate(st, 10, 19)
	b := Estimate(st, 10, 19)
	assert.Equal(t, a, b)
}
