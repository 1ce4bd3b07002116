package page

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/shoesandsocks/postgraph/internal/config"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// Ext is the file extension of page templates.
const Ext = ".html"

// Template is a page template with its front matter metadata.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Content is the template body after the front matter.
	Content string `yaml:"-"`

	// Source is "project", "global", "built-in", or a file path.
	Source string `yaml:"-"`
}

// Info describes an available template for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"`
}

// Page is the data a template is executed with.
type Page struct {
	Title string
	Intro template.HTML
	Posts []postgraph.Post
}

// Load finds a template by name.
// Resolution order: project-local, user global, built-in.
func Load(name string) (*Template, error) {
	if tmpl, err := loadFromDir(projectDir(), name); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}

	if tmpl, err := loadFromDir(globalDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q not found", name)
}

// LoadFile reads a template from an explicit path.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	tmpl.Source = path
	return tmpl, nil
}

// List returns all available templates. A project or global template that
// shadows a built-in is reported once, and the built-in is marked overridden.
func List() []Info {
	seen := make(map[string]string)
	var infos []Info

	sources := []struct {
		name string
		dir  string
	}{
		{"project", projectDir()},
		{"global", globalDir()},
	}

	for _, src := range sources {
		for _, info := range listDir(src.dir, src.name) {
			if _, exists := seen[info.Name]; !exists {
				seen[info.Name] = src.name
				infos = append(infos, info)
			}
		}
	}

	for _, info := range listBuiltins() {
		if overrideSource, exists := seen[info.Name]; exists {
			info.Overrides = overrideSource
		}
		infos = append(infos, info)
	}

	return infos
}

// Execute renders the page. funcs must provide postGraph and graphOptions.
func (t *Template) Execute(w io.Writer, page Page, funcs template.FuncMap) error {
	tmpl, err := template.New(t.Name).Funcs(funcs).Parse(t.Content)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", t.Name, err)
	}
	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("executing template %s: %w", t.Name, err)
	}
	return nil
}

// projectDir returns the project-local templates directory.
func projectDir() string {
	return filepath.Join(".postgraph", "templates")
}

// globalDir returns the user's global templates directory.
func globalDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+Ext)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, err
	}
	tmpl.Name = name
	return tmpl, nil
}

func listDir(dir, source string) []Info {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		tmpl, err := parseTemplate(data)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        strings.TrimSuffix(entry.Name(), Ext),
			Description: tmpl.Description,
			Source:      source,
		})
	}
	return infos
}

// parseTemplate splits optional front matter from the template body.
func parseTemplate(raw []byte) (*Template, error) {
	var tmpl Template
	body, err := frontmatter.Parse(strings.NewReader(string(raw)), &tmpl)
	if err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	tmpl.Content = strings.TrimSpace(string(body))
	return &tmpl, nil
}
