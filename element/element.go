// Package element is the reference source for chemical element properties:
// symbol, table position, atomic weight, name origin and discovery data for
// atomic numbers 1 through 118.
package element

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Count is the number of elements in the built-in dataset.
const Count = 118

//go:embed elements.json
var embeddedJSON []byte

// Element holds the chemical element data.
type Element struct {
	Number       int     `json:"number"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Group        int     `json:"group"` // 0 for f-block members without a group
	Period       int     `json:"period"`
	AtomicWeight float64 `json:"atomic_mass"`
	Category     string  `json:"category"`

	NameOrigin        string `json:"name_origin"`
	Description       string `json:"description"`
	DiscoveryLocation string `json:"discovery_location"`
	DiscoveryYear     int    `json:"discovery_year"` // 0 when unknown or ancient
}

// Source looks up elements by atomic number.
type Source interface {
	Lookup(number int) (Element, error)
	Count() int
}

// Table is an in-memory Source indexed by atomic number.
type Table struct {
	elements []Element
}

var (
	embeddedOnce  sync.Once
	embeddedTable *Table
	embeddedErr   error
)

// Embedded returns the built-in dataset. It is parsed on first use.
func Embedded() (*Table, error) {
	embeddedOnce.Do(func() {
		embeddedTable, embeddedErr = Parse(embeddedJSON)
	})
	return embeddedTable, embeddedErr
}

// FromFile loads a dataset in the same format as the built-in one.
func FromFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open element dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a dataset document of the form {"elements": [...]}.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read element dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a dataset document.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Elements []Element `json:"elements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse element dataset: %w", err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidDataset)
	}

	elements := make([]Element, len(doc.Elements))
	filled := make([]bool, len(doc.Elements))
	symbols := make(map[string]int, len(doc.Elements))
	for _, el := range doc.Elements {
		if el.Number < 1 || el.Number > len(doc.Elements) {
			return nil, fmt.Errorf("%w: atomic number %d out of range 1..%d", ErrInvalidDataset, el.Number, len(doc.Elements))
		}
		if filled[el.Number-1] {
			return nil, fmt.Errorf("%w: duplicate atomic number %d", ErrInvalidDataset, el.Number)
		}
		if el.Symbol == "" {
			return nil, fmt.Errorf("%w: element %d has no symbol", ErrInvalidDataset, el.Number)
		}
		if prev, ok := symbols[el.Symbol]; ok {
			return nil, fmt.Errorf("%w: symbol %q used by %d and %d", ErrInvalidDataset, el.Symbol, prev, el.Number)
		}
		symbols[el.Symbol] = el.Number
		elements[el.Number-1] = el
		filled[el.Number-1] = true
	}
	return &Table{elements: elements}, nil
}

// Lookup returns the element with the given atomic number.
func (t *Table) Lookup(number int) (Element, error) {
	if number < 1 || number > len(t.elements) {
		return Element{}, fmt.Errorf("%w: %d", ErrUnknownElement, number)
	}
	return t.elements[number-1], nil
}

// Count reports how many elements the table holds.
func (t *Table) Count() int {
	return len(t.elements)
}
