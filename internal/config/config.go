// internal/config/config.go
//
// This package handles configuration and the .mayhem directory structure.
// Running mayhem in a directory creates a .mayhem/ folder there for the
// config file, logs and summary exports.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/dashboard-mayhem/internal/journey"
)

const (
	// MayhemDir is the name of the directory we create in the project dir
	MayhemDir = ".mayhem"

	defaultExportDir = "exports"
)

const defaultProjectConfigYAML = `# dashboard mayhem configuration
version: 1

ui:
  alt_screen: true
  # accent: "#5270ff"
  show_log: true
  word_wrap: 80

# Point content.path at a journey.yaml to replace the built-in journey.
content:
  path: ""

export:
  dir: exports
  formats: [json, markdown]
`

// UIConfig controls the terminal shell.
type UIConfig struct {
	AltScreen *bool  `yaml:"alt_screen,omitempty"`
	Accent    string `yaml:"accent,omitempty"`
	ShowLog   *bool  `yaml:"show_log,omitempty"`
	WordWrap  int    `yaml:"word_wrap,omitempty"`
}

// ContentConfig selects the journey content.
type ContentConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ExportConfig controls summary exports.
type ExportConfig struct {
	Dir     string   `yaml:"dir,omitempty"`
	Formats []string `yaml:"formats,omitempty"`
}

// ProjectConfig models .mayhem/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	UI      UIConfig      `yaml:"ui"`
	Content ContentConfig `yaml:"content"`
	Export  ExportConfig  `yaml:"export"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory mayhem was started in
	ProjectDir string

	// MayhemProjectDir is ProjectDir/.mayhem
	MayhemProjectDir string

	Project ProjectConfig
}

// InitMayhemDir creates the .mayhem directory structure in projectDir and
// writes a commented config.yaml if none exists yet.
//
// Structure created:
// .mayhem/
// ├── config.yaml
// ├── logs/     <- mayhem.log (zap) and journey.log (logbook)
// └── exports/  <- summary exports
func InitMayhemDir(projectDir string) error {
	mayhemDir := filepath.Join(projectDir, MayhemDir)
	dirs := []string{
		filepath.Join(mayhemDir, "logs"),
		filepath.Join(mayhemDir, defaultExportDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}
	return ensureProjectConfig(filepath.Join(mayhemDir, "config.yaml"))
}

// NewConfig loads .mayhem/config.yaml under projectDir, falling back to the
// defaults when the file is missing.
func NewConfig(projectDir string) (*Config, error) {
	if strings.TrimSpace(projectDir) == "" {
		projectDir = "."
	}
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", projectDir, err)
	}
	cfg := &Config{
		ProjectDir:       abs,
		MayhemProjectDir: filepath.Join(abs, MayhemDir),
		Project:          defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.MayhemProjectDir, "logs")
}

// LogPath returns the structured log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "mayhem.log")
}

// JourneyLogPath returns the human-readable journey log.
func (c *Config) JourneyLogPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// ExportDir returns the resolved export directory.
func (c *Config) ExportDir() string {
	return c.Project.Export.Dir
}

// ExportFormats returns the configured export formats.
func (c *Config) ExportFormats() []string {
	return append([]string(nil), c.Project.Export.Formats...)
}

// ContentPath returns the journey file override, or "" for the built-in one.
func (c *Config) ContentPath() string {
	return c.Project.Content.Path
}

// AltScreen reports whether the TUI takes over the full terminal.
func (c *Config) AltScreen() bool {
	return boolOr(c.Project.UI.AltScreen, true)
}

// ShowLog reports whether the journey log panel is visible.
func (c *Config) ShowLog() bool {
	return boolOr(c.Project.UI.ShowLog, true)
}

// Accent returns the configured accent color, or "" for the default.
func (c *Config) Accent() string {
	return c.Project.UI.Accent
}

// WordWrap returns the maximum content width.
func (c *Config) WordWrap() int {
	return c.Project.UI.WordWrap
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.MayhemProjectDir, "config.yaml")
}

// SetAccent updates ui.accent in config.yaml and reloads the config. The
// file is edited in place so comments and relative paths survive.
func (c *Config) SetAccent(accent string) error {
	accent = strings.TrimSpace(accent)
	if accent != "" && !strings.HasPrefix(accent, "#") {
		return fmt.Errorf("config: ui.accent must be a hex color like #5270ff")
	}
	if err := os.MkdirAll(c.MayhemProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure mayhem dir: %w", err)
	}
	path := c.ProjectConfigPath()
	if err := ensureProjectConfig(path); err != nil {
		return fmt.Errorf("config: ensure %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mappingNode()}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("config: %s is not a mapping", path)
	}
	ui := mappingValue(root, "ui")
	if ui == nil {
		ui = mappingNode()
		root.Content = append(root.Content, scalarNode("ui"), ui)
	} else if ui.Kind != yaml.MappingNode {
		*ui = *mappingNode()
	}
	if value := mappingValue(ui, "accent"); value != nil {
		*value = *scalarNode(accent)
	} else {
		ui.Content = append(ui.Content, scalarNode("accent"), scalarNode(accent))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return c.loadProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Project.normalize(c.MayhemProjectDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.MayhemProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.UI.WordWrap == 0 {
		pc.UI.WordWrap = 80
	}
	if strings.TrimSpace(pc.Export.Dir) == "" {
		pc.Export.Dir = defaultExportDir
	}
	if len(pc.Export.Formats) == 0 {
		pc.Export.Formats = []string{journey.FormatJSON, journey.FormatMarkdown}
	}
}

// normalize resolves relative paths against the .mayhem directory and
// canonicalizes format names.
func (pc *ProjectConfig) normalize(base string) {
	pc.UI.Accent = strings.TrimSpace(pc.UI.Accent)
	pc.Content.Path = resolvePath(filepath.Dir(base), pc.Content.Path)
	pc.Export.Dir = resolvePath(base, pc.Export.Dir)
	var formats []string
	for _, f := range pc.Export.Formats {
		f, _ = journey.NormalizeFormat(f)
		if f != "" && !contains(formats, f) {
			formats = append(formats, f)
		}
	}
	pc.Export.Formats = formats
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.UI.WordWrap < 20 {
		return fmt.Errorf("ui.word_wrap must be >= 20")
	}
	if pc.UI.Accent != "" && !strings.HasPrefix(pc.UI.Accent, "#") {
		return fmt.Errorf("ui.accent must be a hex color like #5270ff")
	}
	if len(pc.Export.Formats) == 0 {
		return fmt.Errorf("export.formats is required")
	}
	for i, f := range pc.Export.Formats {
		if _, ok := journey.NormalizeFormat(f); !ok {
			return fmt.Errorf("export.formats[%d]: format must be 'json' or 'markdown'", i)
		}
	}
	return nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
