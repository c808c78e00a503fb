package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
	"github.com/lvlath-labs/hsearch/internal/domainmock"
	"github.com/lvlath-labs/hsearch/search/astar"
)

// TestNew_UnknownHeuristicFallsBackToZero exercises astar.New against a
// mocked Domain so the fallback-to-"zero" lookup is verified
// independent of any real domain's heuristic table.
func TestNew_UnknownHeuristicFallsBackToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	zero := func(core.State, core.State, int, *core.Problem) int { return 0 }
	table := map[string]domain.HeuristicTriple{"zero": {zero, zero, zero}}

	m := domainmock.NewMockDomain(ctrl)
	m.EXPECT().Heuristics().Return(table).AnyTimes()
	m.EXPECT().Name().Return("mocked").AnyTimes()

	s := astar.New(m, "does_not_exist", astar.DefaultSettings())
	assert.NotNil(t, s)

	// Run evaluates the heuristic at the root; without the fallback the
	// searcher would hold a nil heuristic and panic here.
	start := &chainState{id: 0, max: 0}
	rep, err := s.Run(context.Background(), &core.Problem{Initial: start, Goal: start, Epsilon: 1}, "fallback")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Best)
}
