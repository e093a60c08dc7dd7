package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"periodic-heatmap/element"
	"periodic-heatmap/export"
)

var recordKeys = []string{
	"atomic_number", "name_origin", "description",
	"atomic_weight", "discovery_location", "discovery_year",
}

// ExportSuite writes the full catalog once to a temp file.
type ExportSuite struct {
	suite.Suite
	src  *element.Table
	cat  export.Catalog
	path string
	raw  []byte
}

func (s *ExportSuite) SetupSuite() {
	var err error
	s.src, err = element.Embedded()
	require.NoError(s.T(), err)
	s.cat, err = export.Collect(s.src)
	require.NoError(s.T(), err)

	s.path = filepath.Join(s.T().TempDir(), "elements.json")
	require.NoError(s.T(), export.WriteFile(s.path, s.cat))
	s.raw, err = os.ReadFile(s.path)
	require.NoError(s.T(), err)
}

// TestAllSymbolsAllKeys: 118 symbols, each with exactly the six keys.
func (s *ExportSuite) TestAllSymbolsAllKeys() {
	var doc map[string]map[string]any
	require.NoError(s.T(), json.Unmarshal(s.raw, &doc))
	require.Len(s.T(), doc, element.Count)

	for n := 1; n <= element.Count; n++ {
		el, err := s.src.Lookup(n)
		require.NoError(s.T(), err)
		rec, ok := doc[el.Symbol]
		require.True(s.T(), ok, "missing %s", el.Symbol)
		require.Len(s.T(), rec, len(recordKeys), el.Symbol)
		for _, k := range recordKeys {
			_, ok := rec[k]
			require.True(s.T(), ok, "%s lacks %s", el.Symbol, k)
		}
		require.Equal(s.T(), float64(n), rec["atomic_number"])
	}
}

// TestOptionalFieldsEmpty: absent optional data is written as "".
func (s *ExportSuite) TestOptionalFieldsEmpty() {
	var doc map[string]map[string]any
	require.NoError(s.T(), json.Unmarshal(s.raw, &doc))

	au := doc["Au"]
	require.Equal(s.T(), "", au["discovery_location"])
	require.Equal(s.T(), "", au["discovery_year"])

	og := doc["Og"]
	require.Equal(s.T(), "", og["description"])
	require.Equal(s.T(), float64(2002), og["discovery_year"])
}

// TestOrderAndEncoding: keys follow atomic number, non-ASCII stays literal.
func (s *ExportSuite) TestOrderAndEncoding() {
	out := string(s.raw)
	require.Less(s.T(), strings.Index(out, `"H":`), strings.Index(out, `"He":`))
	require.Less(s.T(), strings.Index(out, `"Og":`), len(out))
	require.Less(s.T(), strings.Index(out, `"Fe":`), strings.Index(out, `"Og":`))
	require.Contains(s.T(), out, "Röntgen")
	require.NotContains(s.T(), out, `\u00f6`)
	require.Contains(s.T(), out, "\n  \"H\": {\n")
}

// TestReadBack: ReadFile restores the collected catalog.
func (s *ExportSuite) TestReadBack() {
	back, err := export.ReadFile(s.path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.cat, back)

	o, ok := back.Lookup("O")
	require.True(s.T(), ok)
	require.Equal(s.T(), 8, o.AtomicNumber)
	require.InDelta(s.T(), 15.999, o.AtomicWeight, 1e-9)
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportSuite))
}

// TestWrite_NoHTMLEscape keeps markup characters literal.
func TestWrite_NoHTMLEscape(t *testing.T) {
	cat := export.Catalog{{Symbol: "X", Record: export.Record{AtomicNumber: 1, NameOrigin: "<a & b>", DiscoveryYear: 1900}}}
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, cat))
	assert.Contains(t, buf.String(), `"name_origin": "<a & b>"`)
	assert.Contains(t, buf.String(), `"discovery_year": 1900`)
}

// TestYear covers both encodings of the discovery year.
func TestYear(t *testing.T) {
	b, err := json.Marshal(export.Year(0))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))

	b, err = json.Marshal(export.Year(1774))
	require.NoError(t, err)
	assert.Equal(t, `1774`, string(b))

	var y export.Year
	require.NoError(t, json.Unmarshal([]byte(`""`), &y))
	assert.Zero(t, y)
	require.NoError(t, json.Unmarshal([]byte(`1898`), &y))
	assert.Equal(t, export.Year(1898), y)
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &y))
}

// TestCatalog_UnmarshalErrors rejects non-object documents.
func TestCatalog_UnmarshalErrors(t *testing.T) {
	var c export.Catalog
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{"H": {"atomic_number": "one"}}`), &c))
}

// TestWriteFile_BadPath surfaces create failures.
func TestWriteFile_BadPath(t *testing.T) {
	err := export.WriteFile(filepath.Join(t.TempDir(), "missing", "elements.json"), nil)
	assert.Error(t, err)
}
