package pancake

import (
	"bufio"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
)

func init() {
	domain.Register("unit_pancake", func() domain.Domain { return &Domain{kind: unitCost, name: "unit_pancake"} })
	domain.Register("arbitrary_pancake", func() domain.Domain { return &Domain{kind: arbitraryCost, name: "arbitrary_pancake"} })
}

// Domain implements domain.Domain for one pancake-flipping variant,
// selected at construction by kind.
type Domain struct {
	kind costKind
	name string
}

func (d *Domain) Name() string { return d.name }

func (d *Domain) Successors(state core.State, problem *core.Problem) []core.Successor {
	return state.(*State).Successors(problem)
}

func (d *Domain) Cost(from, to core.State, _ *core.Problem) int {
	return from.(*State).costTo(to.(*State))
}

// Heuristics returns "zero" for both variants, plus "gap" for unit-cost
// and "largest_pancake" for arbitrary-cost, matching the two separate
// heuristic tables original_source keeps per domain module.
func (d *Domain) Heuristics() map[string]domain.HeuristicTriple {
	zero := domain.HeuristicTriple{zeroHeuristic, zeroHeuristic, zeroHeuristic}
	if d.kind == unitCost {
		return map[string]domain.HeuristicTriple{
			"zero": zero,
			"gap":  {gapHeuristic, gapHeuristic, gapHeuristic},
		}
	}
	return map[string]domain.HeuristicTriple{
		"zero":            zero,
		"largest_pancake": {largestPancakeHeuristic, largestPancakeHeuristic, largestPancakeHeuristic},
	}
}

// ParseProblem parses one whitespace-separated line of pancake sizes; the
// leftmost integer is the base, and the goal is the same multiset sorted
// in descending order (the base keeps its place when it is the largest
// value, as in generated instances).
func (d *Domain) ParseProblem(line string) (*core.Problem, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyLine
	}
	stack := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrBadToken, "token %q", f)
		}
		stack[i] = v
	}
	if len(stack) < 3 {
		return nil, ErrTooShort
	}

	goalStack := make([]int, len(stack))
	copy(goalStack, stack)
	sort.Sort(sort.Reverse(sort.IntSlice(goalStack)))

	return &core.Problem{
		Initial: newState(stack, d.kind),
		Goal:    newState(goalStack, d.kind),
		Epsilon: 1,
	}, nil
}

// GenerateProblems parses cfg.Settings.Precompiled files if given, else
// samples cfg.Settings.NProblems random permutations of 1..Param-1 under a
// fixed base of Param, per original_source's generate_problems.
func (d *Domain) GenerateProblems(cfg *config.Config) ([]*core.Problem, error) {
	if len(cfg.Settings.Precompiled) > 0 {
		var out []*core.Problem
		for _, path := range cfg.Settings.Precompiled {
			f, err := os.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "pancake: opening %s", path)
			}
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				p, err := d.ParseProblem(line)
				if err != nil {
					f.Close()
					return nil, errors.Wrapf(err, "pancake: parsing %s", path)
				}
				out = append(out, p)
			}
			f.Close()
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "pancake: reading %s", path)
			}
		}
		return out, nil
	}

	if cfg.Settings.NProblems <= 0 || cfg.Settings.Param <= 0 {
		return nil, ErrMissingParam
	}

	out := make([]*core.Problem, 0, cfg.Settings.NProblems)
	for i := 0; i < cfg.Settings.NProblems; i++ {
		x := make([]int, cfg.Settings.Param-1)
		for j := range x {
			x[j] = j + 1
		}
		rand.Shuffle(len(x), func(a, b int) { x[a], x[b] = x[b], x[a] })

		tokens := make([]string, 0, len(x)+1)
		tokens = append(tokens, strconv.Itoa(cfg.Settings.Param))
		for _, v := range x {
			tokens = append(tokens, strconv.Itoa(v))
		}
		p, err := d.ParseProblem(strings.Join(tokens, " "))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
