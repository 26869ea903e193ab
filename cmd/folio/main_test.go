package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
)

func TestGenerateWritesLoadableContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", dir, "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote 6 projects")

	c, err := content.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, content.Default().Projects, c.Projects)
	assert.Equal(t, content.Default().Site.Nav, c.Site.Nav)
}

func TestGenerateRequiresDir(t *testing.T) {
	rootCmd.SetArgs([]string{"generate"})
	assert.Error(t, rootCmd.Execute())
}

func TestOpenContentFallsBackToDefault(t *testing.T) {
	rootCmd.SetArgs([]string{"generate", t.TempDir(), "--config", ""})
	require.NoError(t, rootCmd.Execute())

	cfg.Content.Dir = t.TempDir()
	source, store, err := openContent()
	require.NoError(t, err)
	assert.Nil(t, store)
	assert.Equal(t, content.Default(), source.Current())
}
