package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Input.Sheet = "March"
	cfg.Output.File = "march-recon.xlsx"

	path := filepath.Join(t.TempDir(), "netproof.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "March", got.Input.Sheet)
	assert.Equal(t, cfg.Input.DateLayouts, got.Input.DateLayouts)
	assert.Equal(t, "march-recon.xlsx", got.Output.File)
	assert.Equal(t, cfg.Output.UnmatchedSheet, got.Output.UnmatchedSheet)
	assert.Equal(t, cfg.Output.MatchedSheet, got.Output.MatchedSheet)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Input.Sheet)
	assert.Contains(t, cfg.Input.DateLayouts, "2006-01-02")
	assert.Equal(t, "Reconciled_Account_Report.xlsx", cfg.Output.File)
	assert.Equal(t, "Unmatched Statement", cfg.Output.UnmatchedSheet)
	assert.Equal(t, "Matched Entries", cfg.Output.MatchedSheet)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netproof.yaml")
	err := os.WriteFile(path, []byte("output:\n  file: custom.xlsx\n"), 0o644)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.xlsx", got.Output.File)
	assert.NotEmpty(t, got.Input.DateLayouts)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	got, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}
