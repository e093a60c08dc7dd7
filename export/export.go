// Package export writes the per-element metadata table, keyed by symbol.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"periodic-heatmap/element"
)

// Year is a discovery year. It marshals as a number when known and as ""
// when zero.
type Year int

func (y Year) MarshalJSON() ([]byte, error) {
	if y == 0 {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(int(y))), nil
}

func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == `""` || string(data) == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("discovery year %s: %w", data, err)
	}
	*y = Year(n)
	return nil
}

// Record is the exported metadata of one element.
type Record struct {
	AtomicNumber      int     `json:"atomic_number"`
	NameOrigin        string  `json:"name_origin"`
	Description       string  `json:"description"`
	AtomicWeight      float64 `json:"atomic_weight"`
	DiscoveryLocation string  `json:"discovery_location"`
	DiscoveryYear     Year    `json:"discovery_year"`
}

// Entry pairs a record with its element symbol.
type Entry struct {
	Symbol string
	Record Record
}

// Catalog is an ordered list of entries. It marshals as a JSON object keyed by symbol.
type Catalog []Entry

// Collect queries src for every element it holds.
func Collect(src element.Source) (Catalog, error) {
	cat := make(Catalog, 0, src.Count())
	for n := 1; n <= src.Count(); n++ {
		el, err := src.Lookup(n)
		if err != nil {
			return nil, fmt.Errorf("collect element %d: %w", n, err)
		}
		cat = append(cat, Entry{
			Symbol: el.Symbol,
			Record: Record{
				AtomicNumber:      el.Number,
				NameOrigin:        el.NameOrigin,
				Description:       el.Description,
				AtomicWeight:      el.AtomicWeight,
				DiscoveryLocation: el.DiscoveryLocation,
				DiscoveryYear:     Year(el.DiscoveryYear),
			},
		})
	}
	return cat, nil
}

// Lookup returns the record for symbol.
func (c Catalog) Lookup(symbol string) (Record, bool) {
	for _, e := range c {
		if e.Symbol == symbol {
			return e.Record, true
		}
	}
	return Record{}, false
}

// MarshalJSON writes the entries in order, without HTML escaping.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Symbol); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(e.Record); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by symbol, keeping document order.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return err
	} else if tok != json.Delim('{') {
		return fmt.Errorf("catalog: expected object, got %v", tok)
	}

	var out Catalog
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		sym, ok := tok.(string)
		if !ok {
			return fmt.Errorf("catalog: expected symbol key, got %v", tok)
		}
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("catalog %s: %w", sym, err)
		}
		out = append(out, Entry{Symbol: sym, Record: rec})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// Write encodes the catalog as indented JSON. Non-ASCII text is written as is.
func Write(w io.Writer, c Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// WriteFile creates or truncates path and writes the catalog to it.
func WriteFile(path string, c Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile loads a catalog written by WriteFile.
func ReadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c, nil
}
