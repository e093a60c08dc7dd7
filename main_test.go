package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-heatmap/element"
)

func tempConfig(t *testing.T) config {
	t.Helper()
	dir := t.TempDir()
	return config{
		svgPath:  filepath.Join(dir, "periodic_table.svg"),
		jsonPath: filepath.Join(dir, "elements.json"),
	}
}

// TestGenerate_Defaults writes both outputs from the built-in data.
func TestGenerate_Defaults(t *testing.T) {
	cfg := tempConfig(t)
	fig, err := generate(cfg)
	require.NoError(t, err)
	require.Len(t, fig.Rects, element.Count)

	svg, err := os.ReadFile(cfg.svgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<?xml"))
	assert.Contains(t, string(svg), "</svg>")

	raw, err := os.ReadFile(cfg.jsonPath)
	require.NoError(t, err)
	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc, element.Count)
}

// TestGenerate_ScoreFileAndPNG runs with only oxygen scored and a raster preview.
func TestGenerate_ScoreFileAndPNG(t *testing.T) {
	cfg := tempConfig(t)
	dir := filepath.Dir(cfg.svgPath)
	cfg.scoresPath = filepath.Join(dir, "scores.yaml")
	cfg.pngPath = filepath.Join(dir, "periodic_table.png")
	require.NoError(t, os.WriteFile(cfg.scoresPath, []byte("O: 9\n"), 0o644))

	fig, err := generate(cfg)
	require.NoError(t, err)

	filled := 0
	for _, r := range fig.Rects {
		if r.Fill.Valid {
			filled++
			assert.Equal(t, "O", r.Symbol)
		}
	}
	assert.Equal(t, 1, filled)

	svg, err := os.ReadFile(cfg.svgPath)
	require.NoError(t, err)
	assert.Equal(t, element.Count-1, strings.Count(string(svg), `fill="none"`))

	info, err := os.Stat(cfg.pngPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestGenerate_Errors surfaces bad inputs and unwritable outputs.
func TestGenerate_Errors(t *testing.T) {
	cfg := tempConfig(t)
	cfg.scoresPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := generate(cfg)
	assert.Error(t, err)

	cfg = tempConfig(t)
	cfg.elementsPath = filepath.Join(t.TempDir(), "missing.json")
	_, err = generate(cfg)
	assert.Error(t, err)

	cfg = tempConfig(t)
	cfg.svgPath = filepath.Join(t.TempDir(), "no", "such", "dir", "out.svg")
	_, err = generate(cfg)
	assert.Error(t, err)
	_, statErr := os.Stat(cfg.jsonPath)
	assert.True(t, os.IsNotExist(statErr), "json is not written after a failed svg")
}

// TestIsTerminal: a regular file is not a terminal.
func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
