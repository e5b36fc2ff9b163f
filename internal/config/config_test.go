package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
data_file: /srv/wcag/wcag22.json
base_url: https://www.w3.org/WAI/WCAG22/Understanding
typo_tolerance: false
max_results: 15
debug: true
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "/srv/wcag/wcag22.json", cfg.DataFile)
	assert.Equal(t, "https://www.w3.org/WAI/WCAG22/Understanding", cfg.BaseURL)
	assert.False(t, cfg.TypoTolerance)
	assert.Equal(t, 15, cfg.MaxResults)
	assert.True(t, cfg.Debug)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`max_results: 5`))
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.True(t, cfg.TypoTolerance, "typo tolerance is on unless disabled")
	assert.Equal(t, 5, cfg.MaxResults)
	assert.False(t, cfg.Debug)

	// Explicit empty strings fall back too
	cfg, err = Parse([]byte(`{version: "", data_file: "", base_url: ""}`))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Empty document
	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "negative max", yaml: `max_results: -1`},
		{name: "relative base url", yaml: `base_url: /Understanding`},
		{name: "no host", yaml: `base_url: "https://"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte("max_results: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: data/wcag.json\nmax_results: 3\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "wcag.json"), cfg.DataFile)
	assert.Equal(t, 3, cfg.MaxResults)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_results: -4\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	cfg.MaxResults = 7

	data, err := Marshal(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "data_file: wcag.json")
	assert.Contains(t, out, "typo_tolerance: true")
	assert.Contains(t, out, "max_results: 7")
}
