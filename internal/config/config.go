package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"filesort/internal/extensions"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directories owned by filesort itself.
type Paths struct {
	LogDir  string `toml:"log_dir"`
	LockDir string `toml:"lock_dir"`
}

// Sort contains defaults for the sort and customsort commands.
type Sort struct {
	NestingLevel          int  `toml:"nesting_level"`
	UseAlt                bool `toml:"use_alt"`
	OutputRelativeToInput bool `toml:"output_relative_to_input"`
	MoveLog               bool `toml:"move_log"`
}

// Benchmark contains configuration for the synthetic benchmark.
type Benchmark struct {
	Files   int    `toml:"files"`
	DirName string `toml:"dir_name"`
}

// Logging contains configuration for application log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Extension is a user-supplied extension table entry.
type Extension struct {
	Extension string `toml:"extension"`
	Category  string `toml:"category"`
	AltName   string `toml:"alt_name"`
	SortDir   string `toml:"sort_dir"`
}

// Config encapsulates all configuration values for filesort.
//
// Configuration sections:
//   - Paths: application log and lock directories
//   - Sort: default nesting level, naming scheme, output placement, move log
//   - Benchmark: generated file count and scratch output directory
//   - Logging: log format and level
//   - Extensions: entries added to or replacing the built-in table
type Config struct {
	Paths      Paths       `toml:"paths"`
	Sort       Sort        `toml:"sort"`
	Benchmark  Benchmark   `toml:"benchmark"`
	Logging    Logging     `toml:"logging"`
	Extensions []Extension `toml:"extensions"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log and lock directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.LockDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ExtensionTable returns the built-in extension table with the configured
// entries merged over it.
func (c *Config) ExtensionTable() (*extensions.Table, error) {
	if len(c.Extensions) == 0 {
		return extensions.Default(), nil
	}
	overrides := make([]extensions.Record, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		overrides = append(overrides, extensions.Record{
			Extension: ext.Extension,
			Category:  ext.Category,
			AltName:   ext.AltName,
			SortDir:   ext.SortDir,
		})
	}
	table, err := extensions.Merge(extensions.Default(), overrides...)
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}
	return table, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
