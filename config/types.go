package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the decoded form of a harness configuration file.
type Config struct {
	Settings  Settings                  `toml:"Settings"`
	Searchers map[string]SearcherConfig `toml:"Searchers"`
}

// Settings describes the domain and problem source shared by every
// searcher run in this configuration.
type Settings struct {
	// Domain names the domain to register against, e.g. "unit_pancake",
	// "arbitrary_pancake", "tsp".
	Domain string `toml:"domain"`
	// Heuristic is the default heuristic name; individual searchers may
	// override it.
	Heuristic string `toml:"heuristic"`
	// Precompiled lists problem files to parse via Domain.ParseProblem.
	// Empty means "generate NProblems random instances instead".
	Precompiled []string `toml:"precompiled"`
	// NProblems is how many random instances to generate when Precompiled
	// is empty.
	NProblems int `toml:"n_problems"`
	// Param is a domain-specific size knob (number of pancakes, number of
	// cities, ...).
	Param int `toml:"param"`
}

// SearcherConfig describes one [Searchers.*] entry: which algorithm to run
// and with what parameters.
type SearcherConfig struct {
	// Searcher selects the algorithm: "astar" or "bsharp".
	Searcher string `toml:"searcher"`
	// Heuristic overrides Settings.Heuristic for this searcher, if set.
	Heuristic string `toml:"heuristic"`
	// Degradation lists the degradation values (each in [0, 10]) to run
	// this searcher under, one full experiment per value.
	Degradation []int `toml:"degradation"`
	// HeuristicWeighting multiplies the heuristic value for astar
	// searchers (1.0 = unweighted). Ignored by bsharp.
	HeuristicWeighting float64 `toml:"heuristic_weighting"`
	// Split is the bsharp forward-share parameter in [0, 1]. Ignored by
	// astar.
	Split float64 `toml:"split"`
}

// Load reads and decodes the TOML configuration at path, applying
// defaults (HeuristicWeighting=1.0, Split=0.5 when zero-valued) and
// validating the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}

	var cfg Config
	if err := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "config: decoding %s", path)
	}

	for name, sc := range cfg.Searchers {
		if sc.HeuristicWeighting == 0 {
			sc.HeuristicWeighting = 1.0
		}
		if sc.Searcher == "bsharp" && sc.Split == 0 {
			sc.Split = 0.5
		}
		if sc.Heuristic == "" {
			sc.Heuristic = cfg.Settings.Heuristic
		}
		cfg.Searchers[name] = sc
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants Load relies on: a domain must be named,
// at least one searcher must be configured, every searcher kind must be
// recognized, every bsharp split must lie in [0, 1], and NProblems must be
// non-negative.
func (c *Config) Validate() error {
	if c.Settings.Domain == "" {
		return ErrMissingDomain
	}
	if c.Settings.NProblems < 0 {
		return ErrBadNProblems
	}
	if len(c.Searchers) == 0 {
		return ErrNoSearchers
	}
	for name, sc := range c.Searchers {
		switch sc.Searcher {
		case "astar", "bsharp":
		default:
			return errors.Wrapf(ErrUnknownSearcherKind, "Searchers.%s", name)
		}
		if sc.Searcher == "bsharp" && (sc.Split < 0 || sc.Split > 1) {
			return errors.Wrapf(ErrBadSplit, "Searchers.%s", name)
		}
	}
	return nil
}
