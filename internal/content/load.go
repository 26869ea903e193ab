// Package content loads the author-supplied portfolio data and keeps the
// current copy available to the page hosts.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

// File names under the content directory. Each may be .json, .yaml or .yml.
const (
	SiteFile     = "site"
	SkillsFile   = "skills"
	ProjectsFile = "projects"
	// ProjectsDir holds optional markdown project notes with front matter
	ProjectsDir = "projects"
)

var extensions = []string{".json", ".yaml", ".yml"}

// Load reads every content file from dir
func Load(dir string) (*models.Content, error) {
	c := &models.Content{}

	if err := readData(dir, SiteFile, &c.Site); err != nil {
		return nil, err
	}

	var skills models.SkillList
	if err := readData(dir, SkillsFile, &skills); err != nil {
		return nil, err
	}
	c.Skills = skills.Categories

	var projects models.ProjectList
	if err := readData(dir, ProjectsFile, &projects); err != nil {
		return nil, err
	}
	notes, err := readNotes(filepath.Join(dir, ProjectsDir))
	if err != nil {
		return nil, err
	}
	c.Projects = mergeProjects(projects.Projects, notes)

	for i := range c.Projects {
		c.Projects[i].Normalize()
	}
	return c, nil
}

// readData decodes the first of name.json, name.yaml, name.yml found in dir
func readData(dir, name string, v any) error {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if ext == ".json" {
			err = json.Unmarshal(data, v)
		} else {
			err = yaml.Unmarshal(data, v)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no %s data file in %s: %w", name, dir, fs.ErrNotExist)
}

// readNotes loads dir/*.md. The front matter carries the project fields
// and the body, when present, replaces the description.
func readNotes(dir string) ([]models.Project, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	projects := make([]models.Project, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		p, err := ParseNote(path)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// ParseNote reads one markdown project note
func ParseNote(path string) (models.Project, error) {
	var p models.Project
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read %s: %w", path, err)
	}
	body, err := frontmatter.Parse(bytes.NewReader(data), &p)
	if err != nil {
		return p, fmt.Errorf("failed to parse front matter in %s: %w", path, err)
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		p.Description = text
	}
	if p.ID == 0 {
		return p, fmt.Errorf("project note %s has no id", path)
	}
	return p, nil
}

// mergeProjects overlays notes onto the table by id; notes with new ids
// are appended in file order.
func mergeProjects(table, notes []models.Project) []models.Project {
	out := append([]models.Project(nil), table...)
	index := make(map[int]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}
	for _, n := range notes {
		if i, ok := index[n.ID]; ok {
			out[i] = n
			continue
		}
		index[n.ID] = len(out)
		out = append(out, n)
	}
	return out
}

// Write stores c under dir as JSON, one file per section
func Write(dir string, c *models.Content) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	files := []struct {
		name string
		v    any
	}{
		{SiteFile, c.Site},
		{SkillsFile, models.SkillList{Categories: c.Skills}},
		{ProjectsFile, models.ProjectList{Projects: c.Projects}},
	}
	for _, f := range files {
		data, err := json.MarshalIndent(f.v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
