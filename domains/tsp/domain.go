package tsp

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
)

func init() {
	domain.Register("tsp", func() domain.Domain { return &Domain{} })
}

// Domain implements domain.Domain for the travelling-salesman problem.
type Domain struct{}

func (d *Domain) Name() string { return "tsp" }

func (d *Domain) Successors(state core.State, problem *core.Problem) []core.Successor {
	return state.(*State).Successors(problem)
}

// Cost returns the distance between the cities current in from and to,
// the two endpoints of the single edge the transition adds to the tour.
// Grounded on original_source's cost function.
func (d *Domain) Cost(from, to core.State, _ *core.Problem) int {
	f := from.(*State)
	t := to.(*State)
	fi := f.currentIndex()
	ti := t.currentIndex()
	return dist(f.cities[fi].point, t.cities[ti].point)
}

func (d *Domain) Heuristics() map[string]domain.HeuristicTriple {
	return map[string]domain.HeuristicTriple{
		"zero":     {zeroHeuristic, zeroHeuristic, zeroHeuristic},
		"edges_in": {edgesInHeuristicFw, edgesInHeuristicFw, edgesInHeuristicBw},
	}
}

// ParseProblem parses a comma-separated list of "x y" city coordinates.
// The first city is the fixed start/end of the tour: the initial state
// has it current and every other city unvisited, and the goal state has
// every other city forward-visited with the start city current again.
// Grounded on original_source's parse_problem.
func (d *Domain) ParseProblem(line string) (*core.Problem, error) {
	fields := strings.Split(line, ",")
	if len(fields) == 0 || (len(fields) == 1 && strings.TrimSpace(fields[0]) == "") {
		return nil, ErrEmptyLine
	}
	cities := make([]Point, len(fields))
	for i, f := range fields {
		coords := strings.Fields(strings.TrimSpace(f))
		if len(coords) != 2 {
			return nil, errors.Wrapf(ErrBadCoord, "field %q", f)
		}
		x, errX := strconv.ParseFloat(coords[0], 64)
		y, errY := strconv.ParseFloat(coords[1], 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrBadCoord, "field %q", f)
		}
		cities[i] = Point{X: x, Y: y}
	}
	if len(cities) < 2 {
		return nil, ErrTooFewCities
	}

	n := len(cities)
	initial := make([]cityLabel, 0, n+1)
	initial = append(initial, cityLabel{point: cities[0], visited: labelCurrent})
	for i := 1; i < n; i++ {
		initial = append(initial, cityLabel{point: cities[i], visited: labelBackward})
	}
	initial = append(initial, cityLabel{point: cities[0], visited: labelBackward})

	goal := make([]cityLabel, 0, n+1)
	goal = append(goal, cityLabel{point: cities[0], visited: labelForward})
	for i := 1; i < n; i++ {
		goal = append(goal, cityLabel{point: cities[i], visited: labelForward})
	}
	goal = append(goal, cityLabel{point: cities[0], visited: labelCurrent})

	return &core.Problem{
		Initial: newState(initial, labelForward),
		Goal:    newState(goal, labelBackward),
		Epsilon: epsilon(cities),
		Statics: cities,
	}, nil
}

func epsilon(cities []Point) int {
	best := -1
	for i, a := range cities {
		for j, b := range cities {
			if i == j {
				continue
			}
			d := dist(a, b)
			if best == -1 || d < best {
				best = d
			}
		}
	}
	if best <= 0 {
		return 1
	}
	return best
}

// GenerateProblems parses cfg.Settings.Precompiled files (each file's
// lines joined into one city list, one problem per file) if given, else
// samples cfg.Settings.NProblems random instances of cfg.Settings.Param
// cities with coordinates uniform in [0, 1000), per original_source's
// generate_problems.
func (d *Domain) GenerateProblems(cfg *config.Config) ([]*core.Problem, error) {
	if len(cfg.Settings.Precompiled) > 0 {
		var out []*core.Problem
		for _, path := range cfg.Settings.Precompiled {
			f, err := os.Open(path)
			if err != nil {
				return nil, errors.Wrapf(err, "tsp: opening %s", path)
			}
			var lines []string
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
			f.Close()
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "tsp: reading %s", path)
			}
			p, err := d.ParseProblem(strings.Join(lines, ","))
			if err != nil {
				return nil, errors.Wrapf(err, "tsp: parsing %s", path)
			}
			out = append(out, p)
		}
		return out, nil
	}

	if cfg.Settings.NProblems <= 0 || cfg.Settings.Param <= 0 {
		return nil, ErrMissingParam
	}

	out := make([]*core.Problem, 0, cfg.Settings.NProblems)
	for i := 0; i < cfg.Settings.NProblems; i++ {
		tokens := make([]string, cfg.Settings.Param)
		for j := 0; j < cfg.Settings.Param; j++ {
			x := rand.Float64() * 1000
			y := rand.Float64() * 1000
			tokens[j] = fmt.Sprintf("%.3f %.3f", x, y)
		}
		p, err := d.ParseProblem(strings.Join(tokens, ","))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
