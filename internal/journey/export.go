package journey

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// Supported export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// NormalizeFormat canonicalizes an export format name, accepting "md" for
// markdown. ok is false for anything Export cannot write.
func NormalizeFormat(format string) (string, bool) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case FormatJSON, FormatMarkdown:
		return f, true
	case "md":
		return FormatMarkdown, true
	default:
		return f, false
	}
}

// Export writes the report into dir once per format and returns the paths
// written, in format order. Unknown formats fail before anything is written.
func Export(r Report, dir string, formats []string) ([]string, error) {
	if strings.TrimSpace(r.SessionID) == "" {
		return nil, fmt.Errorf("journey: report has no session id")
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("journey: no export formats")
	}
	type output struct {
		path string
		data []byte
	}
	outputs := make([]output, 0, len(formats))
	base := filepath.Join(dir, "summary-"+r.SessionID)
	for _, format := range formats {
		f, ok := NormalizeFormat(format)
		if !ok {
			return nil, fmt.Errorf("journey: unknown export format %q", format)
		}
		switch f {
		case FormatJSON:
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("journey: encode json: %w", err)
			}
			outputs = append(outputs, output{path: base + ".json", data: append(data, '\n')})
		case FormatMarkdown:
			outputs = append(outputs, output{path: base + ".md", data: []byte(r.Markdown())})
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journey: ensure export dir: %w", err)
	}
	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			return paths, fmt.Errorf("journey: write %s: %w", out.path, err)
		}
		paths = append(paths, out.path)
	}
	return paths, nil
}

// ReadJSON loads a report written by Export.
func ReadJSON(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("journey: read %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("journey: decode %s: %w", path, err)
	}
	return r, nil
}
