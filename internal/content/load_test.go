package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"folio.dev/internal/models"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Site, c.Site)
	assert.Len(t, c.Projects, 6)
	assert.Equal(t, "Full-Stack / Tools", c.Skills[2].Category)
	assert.Equal(t, models.StatusFeatured, c.Projects[0].Status)
	assert.Equal(t, models.StatusNormal, c.Projects[1].Status)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.yaml"), `
profile:
  name: Ada
  tagline: Engineer
nav:
  - name: Home
    href: "#home"
`)
	writeFile(t, filepath.Join(dir, "skills.yml"), `
categories:
  - category: Languages
    skills: [Go, SQL]
`)
	writeFile(t, filepath.Join(dir, "projects.json"), `{"projects":[{"id":1,"title":"Engine","live":" https://x.dev "}]}`)

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Site.Profile.Name)
	assert.Equal(t, []string{"home"}, c.Site.Anchors())
	assert.Equal(t, []string{"Go", "SQL"}, c.Skills[0].Skills)
	assert.Equal(t, "https://x.dev", c.Projects[0].Live)
	assert.NotNil(t, c.Projects[0].TechStack)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.json"), `{}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no skills data file")
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.json"), `{not json`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestProjectNotes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))
	writeFile(t, filepath.Join(dir, "projects", "02-money.md"), `---
id: 2
title: Money Manager
techStack: [PHP, MySQL]
github: https://github.com/Yogesh100-design/MoneyMate
year: "2023"
---
Tracks **expenses** by month.
`)
	writeFile(t, filepath.Join(dir, "projects", "10-folio.md"), `---
id: 10
title: Folio
status: featured
description: A portfolio served from Go.
---
`)

	c, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, c.Projects, 7)

	money := c.Projects[1]
	assert.Equal(t, "Tracks **expenses** by month.", money.Description)
	assert.Equal(t, "2023", money.Year)
	assert.Equal(t, []string{"PHP", "MySQL"}, money.TechStack)

	folio := c.Projects[6]
	assert.Equal(t, 10, folio.ID)
	assert.Equal(t, "A portfolio served from Go.", folio.Description)
	assert.True(t, folio.Featured())
}

func TestProjectNoteWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.md")
	writeFile(t, path, "---\ntitle: X\n---\nbody\n")

	_, err := ParseNote(path)
	assert.Error(t, err)
}

func TestStoreReloadKeepsOldOnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))

	s, err := NewStore(dir, zap.NewNop())
	require.NoError(t, err)
	before := s.Current()

	writeFile(t, filepath.Join(dir, "projects.json"), `{broken`)
	assert.Error(t, s.Reload())
	assert.Same(t, before, s.Current())
}

func TestStatic(t *testing.T) {
	c := Default()
	assert.Same(t, c, Static{Content: c}.Current())
}
