package stats

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteText renders r as the human-readable log, field order matching the
// original write_out's astar/bsharp text dump, and writes it to path.
func WriteText(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "stats: creating %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := FprintText(w, r); err != nil {
		return errors.Wrapf(err, "stats: writing %s", path)
	}
	return w.Flush()
}

// FprintText writes r's human-readable form to w.
func FprintText(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w,
		"Problem = %s\n"+
			"Expanded = %d\n"+
			"Generated = %d\n",
		r.ProblemInitial, r.NodesExpanded, r.NodesGenerated)
	if err != nil {
		return err
	}

	if r.Algorithm == "bsharp" {
		_, err = fmt.Fprintf(w,
			"Tried expanding = %d\n"+
				"Open list size at end (fw) = %d\n"+
				"Open list size at end (bw) = %d\n"+
				"Closed list size at end (fw) = %d\n"+
				"Closed list size at end (bw) = %d\n",
			r.AttemptedExpansions, r.OpenSizeForward, r.OpenSizeBackward,
			r.ClosedSizeForward, r.ClosedSizeBackward)
	} else {
		_, err = fmt.Fprintf(w,
			"Open list size at end = %d\n"+
				"Closed list size at end = %d\n"+
				"Heuristic weighting = %g\n",
			r.OpenSizeForward, r.ClosedSizeForward, r.HeuristicWeighting)
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Solution length = %v\n", r.Best); err != nil {
		return err
	}
	if r.Algorithm == "bsharp" {
		if _, err := fmt.Fprintf(w, "Solution path = %v\n", r.SolutionPath); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Heuristic = %s\n", r.HeuristicID); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Elapsed = %s\n", r.Elapsed)
	return err
}
