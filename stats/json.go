package stats

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// WriteJSON serializes r to path as machine-readable JSON. goccy/go-json
// is a drop-in, faster replacement for encoding/json used here because
// stats are written once per run and a harness sweep may run thousands of
// configurations in one session.
func WriteJSON(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "stats: marshaling report for %s", r.RunLabel)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "stats: writing %s", path)
	}
	return nil
}

// MarshalJSON renders r as a JSON document without touching disk, used by
// tests and by callers that ship the report over a non-file sink.
func MarshalJSON(r Report) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "stats: marshaling report")
	}
	return data, nil
}
