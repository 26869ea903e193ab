package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 0.2, cfg.ScrollSpy.Threshold)
	assert.Equal(t, 0.35, cfg.ScrollSpy.RootMarginBottom)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
content:
  dir: /srv/folio
  watch: false
hero:
  type_interval: 30ms
scrollspy:
  threshold: 0.5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/srv/folio", cfg.Content.Dir)
	assert.False(t, cfg.Content.Watch)
	assert.Equal(t, 30*time.Millisecond, cfg.Hero.TypeInterval)
	assert.Equal(t, 0.5, cfg.ScrollSpy.Threshold)
	// untouched keys keep their defaults
	assert.Equal(t, 0.2, cfg.ScrollSpy.RootMarginTop)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_SERVER_ADDR", ":7070")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
