// Package score holds the per-element scores visualized on the table.
package score

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scores are bounded to this range; 0 means "no data".
const (
	MinScore = 0
	MaxScore = 9
)

var (
	// ErrScoreRange is returned for a score outside MinScore..MaxScore.
	ErrScoreRange = errors.New("score: value out of range")

	// ErrEmptySymbol is returned for an entry with an empty element symbol.
	ErrEmptySymbol = errors.New("score: empty symbol")
)

//go:embed scores.yaml
var defaultYAML []byte

// Table maps element symbols to scores.
type Table map[string]int

// Lookup returns the score for symbol, or 0 when the symbol has no entry.
func (t Table) Lookup(symbol string) int {
	return t[symbol]
}

// Symbols returns the symbols with an explicit entry, sorted.
func (t Table) Symbols() []string {
	out := make([]string, 0, len(t))
	for sym := range t {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Default returns the built-in score table.
func Default() (Table, error) {
	return Parse(defaultYAML)
}

// FromFile loads a YAML score file.
func FromFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a YAML mapping of symbol to score.
func Load(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML score mapping. An empty document yields an empty table.
func Parse(data []byte) (Table, error) {
	raw := make(map[string]int)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse score file: %w", err)
	}
	t := make(Table, len(raw))
	for sym, v := range raw {
		if sym == "" {
			return nil, ErrEmptySymbol
		}
		if v < MinScore || v > MaxScore {
			return nil, fmt.Errorf("%w: %s=%d (want %d..%d)", ErrScoreRange, sym, v, MinScore, MaxScore)
		}
		t[sym] = v
	}
	return t, nil
}
