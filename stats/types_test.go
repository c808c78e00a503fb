package stats_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/hsearch/stats"
)

func TestUnsolvable(t *testing.T) {
	r := stats.Unsolvable("run-1", "tsp", "bsharp")
	assert.False(t, r.Solved())
	assert.True(t, math.IsInf(r.Best, 1))
	assert.Nil(t, r.SolutionPath)
}

func TestMarshalJSON_RoundTripShape(t *testing.T) {
	r := stats.Report{
		RunLabel:       "run-1",
		Domain:         "unit_pancake",
		Algorithm:      "astar",
		NodesExpanded:  10,
		NodesGenerated: 20,
		Best:           4,
		Elapsed:        5 * time.Millisecond,
	}
	data, err := stats.MarshalJSON(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nodes_expanded":10`)
	assert.Contains(t, string(data), `"best":4`)
}

func TestFprintText_Astar(t *testing.T) {
	r := stats.Report{
		Algorithm:          "astar",
		NodesExpanded:      3,
		NodesGenerated:     5,
		OpenSizeForward:    1,
		ClosedSizeForward:  3,
		HeuristicWeighting: 1,
		Best:               2,
	}
	var buf strings.Builder
	require.NoError(t, stats.FprintText(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Expanded = 3")
	assert.Contains(t, out, "Heuristic weighting = 1")
	assert.NotContains(t, out, "Solution path")
}

func TestFprintText_Bsharp(t *testing.T) {
	r := stats.Report{
		Algorithm:            "bsharp",
		NodesExpanded:        3,
		AttemptedExpansions:  2,
		OpenSizeForward:      1,
		OpenSizeBackward:     1,
		ClosedSizeForward:    2,
		ClosedSizeBackward:   2,
		Best:                 4,
		SolutionPath:         []string{"(3,2,1)", "(2,3,1)"},
		HeuristicID:          "gap",
	}
	var buf strings.Builder
	require.NoError(t, stats.FprintText(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Tried expanding = 2")
	assert.Contains(t, out, "Heuristic = gap")
}
