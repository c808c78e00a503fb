package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
	"github.com/lvlath-labs/hsearch/search/astar"
	"github.com/lvlath-labs/hsearch/search/bsharp"
	"github.com/lvlath-labs/hsearch/stats"
)

// searcher is the common interface astar.Searcher and bsharp.Searcher
// both satisfy, letting runConfig dispatch on config.SearcherConfig.Searcher
// without a type switch at the call site.
type searcher interface {
	Run(ctx context.Context, problem *core.Problem, label string) (*stats.Report, error)
}

// runConfig loads cfg from path, runs every configured searcher across
// every degradation value against the domain's generated problem set, and
// writes one JSON and one text report per run plus a per-group aggregate
// summary logged at info level.
func runConfig(logger *zap.Logger, path, outDir string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	dom, err := domain.New(cfg.Settings.Domain)
	if err != nil {
		return errors.Wrapf(err, "searchbench: domain %q", cfg.Settings.Domain)
	}

	problems, err := dom.GenerateProblems(cfg)
	if err != nil {
		return errors.Wrap(err, "searchbench: generating problems")
	}
	logger.Info("generated problems", zap.Int("count", len(problems)), zap.String("domain", dom.Name()))

	names := make([]string, 0, len(cfg.Searchers))
	for name := range cfg.Searchers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sc := cfg.Searchers[name]
		degradations := sc.Degradation
		if len(degradations) == 0 {
			degradations = []int{0}
		}

		for _, deg := range degradations {
			s, err := newSearcher(dom, sc, deg)
			if err != nil {
				return errors.Wrapf(err, "searchbench: Searchers.%s", name)
			}

			var reports []stats.Report
			for i, problem := range problems {
				label := fmt.Sprintf("%s_deg%d_%d", name, deg, i)
				start := time.Now()
				rep, err := s.Run(context.Background(), problem, label)
				if err != nil {
					return errors.Wrapf(err, "searchbench: %s", label)
				}
				rep.Elapsed = time.Since(start)

				if err := stats.WriteJSON(filepath.Join(outDir, label+".json"), *rep); err != nil {
					return err
				}
				if err := stats.WriteText(filepath.Join(outDir, label+".txt"), *rep); err != nil {
					return err
				}
				reports = append(reports, *rep)
			}

			agg := stats.Summarize(reports)
			logger.Info("group summary",
				zap.String("searcher", name),
				zap.Int("degradation", deg),
				zap.Int("n", agg.N),
				zap.Int("solved", agg.SolvedCount),
				zap.Float64("mean_best", agg.MeanBest),
				zap.Float64("mean_expanded", agg.MeanExpanded),
				zap.Float64("mean_elapsed_sec", agg.MeanElapsedSec),
			)
		}
	}
	return nil
}

func newSearcher(dom domain.Domain, sc config.SearcherConfig, degradation int) (searcher, error) {
	switch sc.Searcher {
	case "astar":
		return astar.New(dom, sc.Heuristic, astar.Settings{Degradation: degradation, HeuristicWeighting: sc.HeuristicWeighting}), nil
	case "bsharp":
		return bsharp.New(dom, sc.Heuristic, bsharp.Settings{Degradation: degradation, Split: sc.Split}), nil
	default:
		return nil, errors.Errorf("unknown searcher kind %q", sc.Searcher)
	}
}
