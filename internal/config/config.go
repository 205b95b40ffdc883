package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tickbox/internal/domain"
	"tickbox/internal/selection"
)

// DefaultFileName is the catalog file looked up in the working directory.
const DefaultFileName = ".tickbox.toml"

// Config is the on-disk catalog: the checkbox options, the initially
// checked values and the items to filter.
type Config struct {
	Version int          `toml:"version"`
	Colors  []string     `toml:"colors"`
	Checked []string     `toml:"checked"`
	Items   []ItemConfig `toml:"items"`
}

// ItemConfig is one catalog entry as stored in TOML.
type ItemConfig struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Catalog converts the raw config into the domain form.
func (c *Config) Catalog() domain.Catalog {
	items := make([]domain.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.Item{Name: it.Name, Color: it.Color})
	}
	return domain.Catalog{Colors: c.Colors, Items: items}
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewService creates a config service bound to path, or to DefaultFileName
// in the working directory when path is empty.
func NewService(path string) Service {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// Load loads the configuration from the bound path, falling back to the
// default config when the file does not exist.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the bound path.
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// An absent checked key means "show everything"; an explicit empty
	// list stays empty.
	if cfg.Checked == nil {
		cfg.Checked = []string{selection.All}
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path.
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the starter catalog used when no file exists and
// written out by "tickbox init".
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Colors:  []string{"red", "green", "blue"},
		Checked: []string{selection.All},
		Items: []ItemConfig{
			{Name: "apple", Color: "red"},
			{Name: "cherry", Color: "red"},
			{Name: "leaf", Color: "green"},
			{Name: "lime", Color: "green"},
			{Name: "sky", Color: "blue"},
			{Name: "ocean", Color: "blue"},
		},
	}
}
