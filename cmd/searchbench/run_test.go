package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/domain"
	_ "github.com/lvlath-labs/hsearch/domains/pancake"
)

func TestNewSearcher_DispatchesByKind(t *testing.T) {
	dom, err := domain.New("unit_pancake")
	require.NoError(t, err)

	_, err = newSearcher(dom, config.SearcherConfig{Searcher: "astar", Heuristic: "gap"}, 0)
	require.NoError(t, err)

	_, err = newSearcher(dom, config.SearcherConfig{Searcher: "bsharp", Heuristic: "gap", Split: 0.5}, 0)
	require.NoError(t, err)

	_, err = newSearcher(dom, config.SearcherConfig{Searcher: "unknown"}, 0)
	require.Error(t, err)
}
