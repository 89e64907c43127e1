package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/siddsp02/creation-vs-initialization/internal/card"
)

// Output formats and color modes accepted in the config file
var (
	OutputFormats = []string{"text", "json", "yaml", "toml"}
	ColorModes    = []string{"auto", "always", "never"}
)

// Config represents the application configuration
type Config struct {
	Output     string            `toml:"output"`
	Color      string            `toml:"color"`
	SuitColors map[string]string `toml:"suit_colors"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Output: "text",
		Color:  "auto",
		SuitColors: map[string]string{
			card.Clubs:    "#2b2d42",
			card.Diamonds: "#e85d04",
			card.Hearts:   "#c1121f",
			card.Spades:   "#1d3557",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsmith", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

// Validate checks enumerated keys and suit colors
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("unknown output format %q (want one of %v)", c.Output, OutputFormats)
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color mode %q (want one of %v)", c.Color, ColorModes)
	}
	for suit, hex := range c.SuitColors {
		if !card.IsSuit(suit) {
			return fmt.Errorf("suit_colors: unknown suit %q", suit)
		}
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("suit_colors.%s: %w", suit, err)
		}
	}
	return nil
}

// SuitColor returns the configured color for a suit. ok is false when the
// suit has no color set.
func (c *Config) SuitColor(suit string) (colorful.Color, bool) {
	hex, ok := c.SuitColors[suit]
	if !ok {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}

// Save writes the config to the config file path
func (c *Config) Save() error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := config.Save(); err != nil {
		return nil, err
	}
	return config, nil
}
