package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	anagrowDir := filepath.Join(projectDir, ".anagrow")
	if err := os.MkdirAll(anagrowDir, 0o755); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AnagrowProjectDir: anagrowDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.MaxWordLen() != defaultMaxWordLen {
		t.Fatalf("expected default max word len %d, got %d", defaultMaxWordLen, c.MaxWordLen())
	}
	if c.PageRows() != defaultPageRows || c.PageWidth() != defaultPageWidth {
		t.Fatalf("expected default page geometry, got %dx%d", c.PageRows(), c.PageWidth())
	}
	if c.DictionaryPath() != "" {
		t.Fatalf("expected empty dictionary path, got %q", c.DictionaryPath())
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	anagrowDir := filepath.Join(projectDir, ".anagrow")
	if err := os.MkdirAll(anagrowDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
lexicon:
  dictionary: resources/words.txt
  max_word_len: 64
seeds: resources/seeds.txt
display:
  page_rows: 4
  page_width: 72
log_level: DEBUG
`)
	if err := os.WriteFile(filepath.Join(anagrowDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AnagrowProjectDir: anagrowDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if !strings.HasPrefix(c.DictionaryPath(), projectDir) {
		t.Fatalf("expected dictionary path to be resolved, got %s", c.DictionaryPath())
	}
	if !strings.HasPrefix(c.SeedsPath(), projectDir) {
		t.Fatalf("expected seeds path to be resolved, got %s", c.SeedsPath())
	}
	if c.MaxWordLen() != 64 {
		t.Fatalf("expected max word len 64, got %d", c.MaxWordLen())
	}
	if c.PageRows() != 4 || c.PageWidth() != 72 {
		t.Fatalf("wrong page geometry: %dx%d", c.PageRows(), c.PageWidth())
	}
	if c.LogLevel() != "debug" {
		t.Fatalf("expected normalized log level debug, got %q", c.LogLevel())
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	projectDir := t.TempDir()
	anagrowDir := filepath.Join(projectDir, ".anagrow")
	if err := os.MkdirAll(anagrowDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
display:
  page_rows: -2
`)
	if err := os.WriteFile(filepath.Join(anagrowDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AnagrowProjectDir: anagrowDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err == nil {
		t.Fatalf("expected validation error but got none")
	}
}

func TestEnvOverridesReplacePaths(t *testing.T) {
	projectDir := t.TempDir()
	t.Setenv("ANAGROW_DICTIONARY_FILE", "dict/en.txt")
	t.Setenv("ANAGROW_LOG_LEVEL", "WARN")
	if err := InitAnagrowDir(projectDir); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	want := filepath.Join(projectDir, "dict", "en.txt")
	if c.DictionaryPath() != want {
		t.Fatalf("expected env-resolved dictionary %s, got %s", want, c.DictionaryPath())
	}
	if c.LogLevel() != "warn" {
		t.Fatalf("expected log level warn, got %q", c.LogLevel())
	}
}

func TestInitAnagrowDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAnagrowDir(projectDir); err != nil {
		t.Fatalf("InitAnagrowDir returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, AnagrowDir, "logs")); err != nil {
		t.Fatalf("expected logs dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, AnagrowDir, "config.yaml")); err != nil {
		t.Fatalf("expected default config file: %v", err)
	}
	// Re-running must not clobber an existing config.
	if err := os.WriteFile(filepath.Join(projectDir, AnagrowDir, "config.yaml"), []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitAnagrowDir(projectDir); err != nil {
		t.Fatalf("second InitAnagrowDir returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(projectDir, AnagrowDir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "version: 1\n" {
		t.Fatalf("expected existing config preserved, got %q", string(data))
	}
}
