// internal/config/config.go
//
// This package handles configuration and the .anagrow directory structure.
// Every directory the game is launched from gets a .anagrow/ folder holding
// the project config and session logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AnagrowDir is the name of the directory we create per launch directory.
	AnagrowDir = ".anagrow"

	defaultPageRows   = 6
	defaultPageWidth  = 80
	defaultMaxWordLen = 128
	defaultLogLevel   = "info"
)

const defaultProjectConfigYAML = `# anagrow configuration
version: 1

# Lexical resources. Leave a path empty to use the embedded defaults.
lexicon:
  dictionary: ""
  lemmas: ""
  exceptions: ""
  # Sanity cap on looked-up word length.
  max_word_len: 128

# 3-letter seed word list for random starts. Empty uses the embedded list.
seeds: ""

display:
  # Rows of words per page in each pool panel.
  page_rows: 6
  # Fallback line width before the terminal reports its size.
  page_width: 80

log_level: info
`

// LexiconConfig points at the dictionary and morphology resources.
type LexiconConfig struct {
	Dictionary string `yaml:"dictionary,omitempty"`
	Lemmas     string `yaml:"lemmas,omitempty"`
	Exceptions string `yaml:"exceptions,omitempty"`
	MaxWordLen int    `yaml:"max_word_len,omitempty"`
}

// DisplayConfig captures pool pagination geometry.
type DisplayConfig struct {
	PageRows  int `yaml:"page_rows,omitempty"`
	PageWidth int `yaml:"page_width,omitempty"`
}

// ProjectConfig models .anagrow/config.yaml.
type ProjectConfig struct {
	Version  int           `yaml:"version"`
	Lexicon  LexiconConfig `yaml:"lexicon"`
	Seeds    string        `yaml:"seeds,omitempty"`
	Display  DisplayConfig `yaml:"display"`
	LogLevel string        `yaml:"log_level,omitempty"`
}

// Config holds the runtime configuration for a game session.
type Config struct {
	// ProjectDir is the directory the game was launched from.
	ProjectDir string

	// AnagrowProjectDir is ProjectDir/.anagrow.
	AnagrowProjectDir string

	Project ProjectConfig
}

// InitAnagrowDir creates the .anagrow directory structure in the given
// directory. Called once at startup, before any game state exists.
func InitAnagrowDir(projectDir string) error {
	anagrowDir := filepath.Join(projectDir, AnagrowDir)
	if err := os.MkdirAll(filepath.Join(anagrowDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(anagrowDir, "config.yaml"))
}

// NewConfig creates a Config populated from .anagrow/config.yaml plus
// ANAGROW_* environment overrides.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		AnagrowProjectDir: filepath.Join(projectDir, AnagrowDir),
		Project:           defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.AnagrowProjectDir, "logs")
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.AnagrowProjectDir, "config.yaml")
}

// DictionaryPath returns the configured dictionary path ("" = embedded).
func (c *Config) DictionaryPath() string { return c.Project.Lexicon.Dictionary }

// LemmaPath returns the configured lemma index path ("" = embedded).
func (c *Config) LemmaPath() string { return c.Project.Lexicon.Lemmas }

// ExceptionPath returns the configured exception list path ("" = embedded).
func (c *Config) ExceptionPath() string { return c.Project.Lexicon.Exceptions }

// SeedsPath returns the configured seed list path ("" = embedded).
func (c *Config) SeedsPath() string { return c.Project.Seeds }

// MaxWordLen returns the word-length sanity cap.
func (c *Config) MaxWordLen() int { return c.Project.Lexicon.MaxWordLen }

// PageRows returns the rows of words per pool page.
func (c *Config) PageRows() int { return c.Project.Display.PageRows }

// PageWidth returns the fallback line width for pagination.
func (c *Config) PageWidth() int { return c.Project.Display.PageWidth }

// LogLevel returns the configured log level string.
func (c *Config) LogLevel() string { return c.Project.LogLevel }

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

// applyEnvOverrides lets a .env file or the environment replace resource
// paths and the log level without editing config.yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ANAGROW_DICTIONARY_FILE"); v != "" {
		c.Project.Lexicon.Dictionary = resolvePath(c.ProjectDir, v)
	}
	if v := os.Getenv("ANAGROW_LEMMAS_FILE"); v != "" {
		c.Project.Lexicon.Lemmas = resolvePath(c.ProjectDir, v)
	}
	if v := os.Getenv("ANAGROW_EXCEPTIONS_FILE"); v != "" {
		c.Project.Lexicon.Exceptions = resolvePath(c.ProjectDir, v)
	}
	if v := os.Getenv("ANAGROW_SEEDS_FILE"); v != "" {
		c.Project.Seeds = resolvePath(c.ProjectDir, v)
	}
	if v := os.Getenv("ANAGROW_LOG_LEVEL"); v != "" {
		c.Project.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Lexicon: LexiconConfig{MaxWordLen: defaultMaxWordLen},
		Display: DisplayConfig{
			PageRows:  defaultPageRows,
			PageWidth: defaultPageWidth,
		},
		LogLevel: defaultLogLevel,
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Lexicon.MaxWordLen == 0 {
		pc.Lexicon.MaxWordLen = defaultMaxWordLen
	}
	if pc.Display.PageRows == 0 {
		pc.Display.PageRows = defaultPageRows
	}
	if pc.Display.PageWidth == 0 {
		pc.Display.PageWidth = defaultPageWidth
	}
	if strings.TrimSpace(pc.LogLevel) == "" {
		pc.LogLevel = defaultLogLevel
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Lexicon.Dictionary = resolvePath(base, pc.Lexicon.Dictionary)
	pc.Lexicon.Lemmas = resolvePath(base, pc.Lexicon.Lemmas)
	pc.Lexicon.Exceptions = resolvePath(base, pc.Lexicon.Exceptions)
	pc.Seeds = resolvePath(base, pc.Seeds)
	pc.LogLevel = strings.ToLower(strings.TrimSpace(pc.LogLevel))
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Lexicon.MaxWordLen < 3 {
		return fmt.Errorf("lexicon.max_word_len must be at least 3")
	}
	if pc.Display.PageRows < 1 {
		return fmt.Errorf("display.page_rows must be at least 1")
	}
	if pc.Display.PageWidth < 8 {
		return fmt.Errorf("display.page_width must be at least 8")
	}
	return nil
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
