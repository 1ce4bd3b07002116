package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shoesandsocks/postgraph/internal/content"
	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

func testData(t *testing.T) *postgraph.Data {
	t.Helper()
	agg := postgraph.NewAggregate()
	agg.Add(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	agg.Add(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	agg.Add(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	return agg.Data()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value   string
		path    string
		want    Format
		wantErr bool
	}{
		{value: "json", want: JSON},
		{value: "YAML", want: YAML},
		{value: "yml", want: YAML},
		{value: "", path: "graph.yml", want: YAML},
		{value: "", path: "graph.json", want: JSON},
		{value: "", path: "", want: JSON},
		{value: "json", path: "graph.yaml", want: JSON},
		{value: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value+"|"+tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.value, tt.path)
			if tt.wantErr {
				if output.GetExitCode(err) != output.ExitUserError {
					t.Errorf("ParseFormat() error = %v, want user error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshal_JSON(t *testing.T) {
	raw, err := Marshal(testData(t), JSON)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{
  "years": {
    "2023": {
      "offset": 6,
      "days": 365
    },
    "2024": {
      "offset": 0,
      "days": 366
    }
  },
  "counts": {
    "2023-1": 1,
    "2024-60": 2
  }
}
`
	if string(raw) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", raw, want)
	}
}

func TestMarshal_YAML(t *testing.T) {
	raw, err := Marshal(testData(t), YAML)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, want := range []string{"years:\n", "    2023:\n", "        offset: 6\n", "counts:\n", "    2024-60: 2\n"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("YAML output missing %q:\n%s", want, raw)
		}
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	if _, err := Marshal(testData(t), Format("csv")); err == nil {
		t.Error("Marshal() expected error for unknown format")
	}
}

func TestWriteFile_ReadableAsDataFile(t *testing.T) {
	for _, format := range []Format{JSON, YAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "graph."+string(format))
			if err := WriteFile(testData(t), path, format); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != 0o600 {
				t.Errorf("mode = %v, want 0600", info.Mode().Perm())
			}

			data, err := content.LoadDataFile(path)
			if err != nil {
				t.Fatalf("LoadDataFile() error = %v", err)
			}
			if data.Years[2024].Days != 366 || data.Counts["2024-60"] != 2 {
				t.Errorf("reloaded data = %+v", data)
			}
		})
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "graph.json")
	err := WriteFile(testData(t), path, JSON)

	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitSystemError {
		t.Errorf("WriteFile() error = %v, want system error", err)
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinter(&buf, true, false)

	if err := FormatJSON(printer, testData(t)); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"2024-60": 2`) {
		t.Errorf("output missing count:\n%s", buf.String())
	}
}
