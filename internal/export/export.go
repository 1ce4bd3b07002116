package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// Format is an export encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a --format value. An empty value picks the format
// from the file extension of path, defaulting to JSON.
func ParseFormat(value, path string) (Format, error) {
	switch strings.ToLower(value) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return YAML, nil
		default:
			return JSON, nil
		}
	default:
		return "", output.NewUserError(fmt.Sprintf("unknown format %q: use json or yaml", value))
	}
}

// FormatJSON outputs the aggregate as JSON to the printer.
func FormatJSON(printer *output.Printer, data *postgraph.Data) error {
	return printer.WriteJSON(data)
}

// Marshal encodes the aggregate in the given format.
func Marshal(data *postgraph.Data, format Format) ([]byte, error) {
	switch format {
	case JSON:
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return append(raw, '\n'), nil
	case YAML:
		raw, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// WriteFile writes the aggregate to path.
func WriteFile(data *postgraph.Data, path string, format Format) error {
	raw, err := Marshal(data, format)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode aggregate", err)
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write file %s", path), err)
	}
	return nil
}
