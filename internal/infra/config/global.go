// Where: internal/infra/config/global.go
// What: User config load/save.
// Why: Keep $FLASKGEN_HOME/config.yaml defaults and the project registry consistent.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/poruru-code/flaskgen/internal/infra/fileops"
	"github.com/poruru-code/flaskgen/internal/meta"
	"gopkg.in/yaml.v3"
)

// HomeEnv overrides the directory holding the user config.
const HomeEnv = meta.EnvPrefix + "_HOME"

// GlobalConfig represents $FLASKGEN_HOME/config.yaml.
type GlobalConfig struct {
	Version  int                     `yaml:"version"`
	Defaults Defaults                `yaml:"defaults,omitempty"`
	Projects map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// Defaults stores values used when the matching flag is not set.
type Defaults struct {
	Path string `yaml:"path,omitempty"`
}

// ProjectEntry records one generated project, keyed by its absolute root.
type ProjectEntry struct {
	Name      string   `yaml:"name"`
	Path      string   `yaml:"path"`
	Features  []string `yaml:"features,omitempty"`
	CreatedAt string   `yaml:"created_at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the user config path, honoring FLASKGEN_HOME.
func GlobalConfigPath() (string, error) {
	if home := strings.TrimSpace(os.Getenv(HomeEnv)); home != "" {
		return filepath.Join(home, meta.ConfigFilename), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(userHome, meta.HomeDir, meta.ConfigFilename), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault treats a missing file as the default config.
func LoadGlobalConfigOrDefault(path string) (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}
	if err := fileops.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create global config dir: %w", err)
	}
	if err := fileops.WriteConfigFile(path, string(payload)); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}

// SortedProjects returns recorded projects ordered by creation time, then path.
func (c GlobalConfig) SortedProjects() []ProjectEntry {
	entries := make([]ProjectEntry, 0, len(c.Projects))
	for root, entry := range c.Projects {
		if entry.Path == "" {
			entry.Path = root
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt < entries[j].CreatedAt
		}
		return entries[i].Path < entries[j].Path
	})
	return entries
}

// ProjectRecorder stores generated projects in the user config file.
type ProjectRecorder struct {
	Path string
}

// Record upserts the project at root. A later generation at the same root wins.
func (r ProjectRecorder) Record(name, root string, features []string, createdAt time.Time) error {
	if strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("config path is required")
	}
	cfg, err := LoadGlobalConfigOrDefault(r.Path)
	if err != nil {
		return err
	}
	cfg.Projects[root] = ProjectEntry{
		Name:      name,
		Path:      root,
		Features:  append([]string(nil), features...),
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
	}
	return SaveGlobalConfig(r.Path, cfg)
}
