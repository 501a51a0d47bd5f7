package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/dashboard-mayhem/internal/journey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	projectDir := t.TempDir()
	mayhemDir := filepath.Join(projectDir, MayhemDir)
	if err := os.MkdirAll(mayhemDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mayhemDir, "config.yaml"), []byte(strings.TrimSpace(body)), 0o644); err != nil {
		t.Fatal(err)
	}
	return projectDir
}

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if !c.AltScreen() || !c.ShowLog() {
		t.Fatalf("expected alt screen and log panel on by default")
	}
	if c.WordWrap() != 80 {
		t.Fatalf("word wrap = %d, want 80", c.WordWrap())
	}
	want := filepath.Join(projectDir, MayhemDir, "exports")
	if c.ExportDir() != want {
		t.Fatalf("export dir = %s, want %s", c.ExportDir(), want)
	}
	if got := c.ExportFormats(); len(got) != 2 || got[0] != journey.FormatJSON || got[1] != journey.FormatMarkdown {
		t.Fatalf("unexpected default formats %v", got)
	}
	if c.ContentPath() != "" {
		t.Fatalf("expected built-in content, got %s", c.ContentPath())
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	projectDir := writeConfig(t, `
version: 1
ui:
  alt_screen: false
  accent: "#ff5656"
  show_log: false
  word_wrap: 100
content:
  path: journeys/custom.yaml
export:
  dir: /tmp/mayhem-exports
  formats: [JSON, md, json]
`)
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.AltScreen() || c.ShowLog() {
		t.Fatalf("expected alt screen and log panel to be disabled")
	}
	if c.Accent() != "#ff5656" {
		t.Fatalf("accent = %q", c.Accent())
	}
	if c.WordWrap() != 100 {
		t.Fatalf("word wrap = %d, want 100", c.WordWrap())
	}
	if want := filepath.Join(projectDir, "journeys", "custom.yaml"); c.ContentPath() != want {
		t.Fatalf("content path = %s, want %s", c.ContentPath(), want)
	}
	if c.ExportDir() != "/tmp/mayhem-exports" {
		t.Fatalf("export dir = %s", c.ExportDir())
	}
	if got := c.ExportFormats(); len(got) != 2 || got[0] != journey.FormatJSON || got[1] != journey.FormatMarkdown {
		t.Fatalf("formats not normalized: %v", got)
	}
}

func TestNewConfigValidation(t *testing.T) {
	cases := map[string]string{
		"unknown format": "version: 1\nexport:\n  formats: [pdf]\n",
		"narrow wrap":    "version: 1\nui:\n  word_wrap: 5\n",
		"bad accent":     "version: 1\nui:\n  accent: blue\n",
		"bad yaml":       "version: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			projectDir := writeConfig(t, body)
			_, err := NewConfig(projectDir)
			if err == nil {
				t.Fatalf("expected validation error but got none")
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Fatalf("error %q missing package prefix", err)
			}
		})
	}
}

func TestInitMayhemDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitMayhemDir(projectDir); err != nil {
		t.Fatalf("InitMayhemDir: %v", err)
	}
	for _, dir := range []string{"logs", "exports"} {
		if info, err := os.Stat(filepath.Join(projectDir, MayhemDir, dir)); err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory: %v", dir, err)
		}
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("default config does not load: %v", err)
	}
	if c.LogPath() != filepath.Join(projectDir, MayhemDir, "logs", "mayhem.log") {
		t.Fatalf("unexpected log path %s", c.LogPath())
	}

	// a second init keeps user edits
	custom := "version: 1\nui:\n  accent: \"#123456\"\n"
	if err := os.WriteFile(c.ProjectConfigPath(), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitMayhemDir(projectDir); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(c.ProjectConfigPath())
	if string(data) != custom {
		t.Fatalf("InitMayhemDir overwrote config.yaml")
	}
}

func TestSetAccentPersists(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitMayhemDir(projectDir); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetAccent("#00ff00"); err != nil {
		t.Fatalf("SetAccent: %v", err)
	}
	if c.Accent() != "#00ff00" {
		t.Fatalf("accent = %q after SetAccent", c.Accent())
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Accent() != "#00ff00" {
		t.Fatalf("accent = %q after reload", reloaded.Accent())
	}
	if reloaded.ExportDir() != c.ExportDir() {
		t.Fatalf("export dir drifted: %s vs %s", reloaded.ExportDir(), c.ExportDir())
	}

	data, err := os.ReadFile(c.ProjectConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	if strings.Contains(body, projectDir) {
		t.Fatalf("config.yaml gained absolute paths:\n%s", body)
	}
	if !strings.Contains(body, "dir: exports") {
		t.Fatalf("relative export dir lost:\n%s", body)
	}
	if !strings.Contains(body, "# Point content.path") {
		t.Fatalf("comments lost:\n%s", body)
	}
}

func TestSetAccentWithoutConfigFile(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetAccent("  #123456 "); err != nil {
		t.Fatalf("SetAccent: %v", err)
	}
	if _, err := os.Stat(c.ProjectConfigPath()); err != nil {
		t.Fatalf("config.yaml not written: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Accent() != "#123456" {
		t.Fatalf("accent = %q after reload", reloaded.Accent())
	}
}

func TestSetAccentRejectsNonHex(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitMayhemDir(projectDir); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(c.ProjectConfigPath())
	if err := c.SetAccent("blue"); err == nil {
		t.Fatal("expected error for non-hex accent")
	}
	after, _ := os.ReadFile(c.ProjectConfigPath())
	if string(before) != string(after) {
		t.Fatal("config.yaml changed after a rejected accent")
	}
}
