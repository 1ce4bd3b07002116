package page

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.html
var builtinFS embed.FS

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*Template, error) {
	path := "templates/" + name + Ext
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(data)
	if err != nil {
		return nil, err
	}
	tmpl.Name = name
	return tmpl, nil
}

// listBuiltins returns info for all built-in templates.
func listBuiltins() []Info {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), Ext)
		tmpl, err := loadBuiltin(name)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Name:        name,
			Description: tmpl.Description,
			Source:      "built-in",
		})
	}
	return infos
}
