// Package testdata embeds a small corpus of labeled Spark log lines used
// to validate pattern detection across the engine packages.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is one labeled log line.
type CorpusEntry struct {
	Raw              string `json:"raw"`
	ExpectedCategory string `json:"expected_category"`
	ExpectedSeverity string `json:"expected_severity"`
	Description      string `json:"description"`
}

// LoadCorpus decodes the embedded corpus.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
