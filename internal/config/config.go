package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Default tuning values. MinScore admits every fuzzy match; PreviewLength
// matches the dataset build's truncation limit.
const (
	DefaultMinScore      = -10000
	DefaultPreviewLength = 200
)

// Config holds the unified application configuration.
type Config struct {
	DataFile      string `json:"data_file"`
	NotesDir      string `json:"notes_dir"`
	MinScore      int    `json:"min_score"`
	PreviewLength int    `json:"preview_length"`
}

// Settings represents the config file structure. Pointer fields distinguish
// "absent" from zero values.
type Settings struct {
	DataFile      string `json:"data_file,omitempty"`
	NotesDir      string `json:"notes_dir,omitempty"`
	MinScore      *int   `json:"min_score,omitempty"`
	PreviewLength *int   `json:"preview_length,omitempty"`
}

// CLIFlags holds parsed CLI flags.
type CLIFlags struct {
	DataFile string
	NotesDir string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default.
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		MinScore:      DefaultMinScore,
		PreviewLength: DefaultPreviewLength,
	}

	// Config file provides base values.
	if configPath, err := getConfigPath(); err == nil {
		if settings, err := loadConfigFile(configPath); err == nil {
			if settings.DataFile != "" {
				cfg.DataFile = expandPath(settings.DataFile)
			}
			if settings.NotesDir != "" {
				cfg.NotesDir = expandPath(settings.NotesDir)
			}
			if settings.MinScore != nil {
				cfg.MinScore = *settings.MinScore
			}
			if settings.PreviewLength != nil {
				cfg.PreviewLength = *settings.PreviewLength
			}
		}
	}

	// Environment variables override the config file.
	if v := os.Getenv("NOTA_DATA_FILE"); v != "" {
		cfg.DataFile = expandPath(v)
	}
	if v := os.Getenv("NOTA_NOTES_DIR"); v != "" {
		cfg.NotesDir = expandPath(v)
	}

	// CLI flags override everything.
	if flags.DataFile != "" {
		cfg.DataFile = expandPath(flags.DataFile)
	}
	if flags.NotesDir != "" {
		cfg.NotesDir = expandPath(flags.NotesDir)
	}

	// Default notes directory if nothing configured.
	if cfg.DataFile == "" && cfg.NotesDir == "" {
		defaultDir, err := GetDefaultNotesDir()
		if err != nil {
			return nil, err
		}
		cfg.NotesDir = defaultDir
	}

	return cfg, nil
}

// GetDefaultNotesDir returns the default notes directory path.
func GetDefaultNotesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "nota", "notes"), nil
}

// getConfigPath returns the path to the configuration file.
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nota", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file.
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureNotesDir creates the configured notes directory if missing. No-op
// when a dataset file is configured instead.
func (c *Config) EnsureNotesDir() error {
	if c.NotesDir == "" {
		return nil
	}
	return os.MkdirAll(c.NotesDir, 0755)
}

// LogDir returns the directory the debug log should live in.
func (c *Config) LogDir() string {
	if c.NotesDir != "" {
		return c.NotesDir
	}
	if c.DataFile != "" {
		return filepath.Dir(c.DataFile)
	}
	return ""
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist.
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultNotesDir()
	if err != nil {
		return err
	}

	minScore := DefaultMinScore
	previewLen := DefaultPreviewLength
	settings := Settings{
		NotesDir:      defaultDir,
		MinScore:      &minScore,
		PreviewLength: &previewLen,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
