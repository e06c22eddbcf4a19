package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fexplorer/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Display modes
const (
	DisplayTUI = "tui"
	DisplayWeb = "web"
	DisplayGUI = "gui"
)

// Config represents the application configuration structure.
// It defines where browsing starts, how selections are addressed, which
// entries are hidden and how the listing is displayed.
type Config struct {
	Browser struct {
		StartingFolder string `yaml:"starting_folder"` // Directory browsing starts in
		Origin         string `yaml:"origin"`          // Prefix of every link URL
		GoUp           string `yaml:"go_up"`           // Reserved link name for the parent directory
	} `yaml:"browser"`
	Listing struct {
		Hide []string `yaml:"hide"` // Glob patterns of base names to leave out
	} `yaml:"listing"`
	Display struct {
		Mode   string `yaml:"mode"`   // tui, web or gui
		Listen string `yaml:"listen"` // Listen address for the web display
		Title  string `yaml:"title"`  // Window and page title
	} `yaml:"display"`
	Theme struct {
		Name    string `yaml:"name"`    // Theme name (default, dark, light, etc.)
		Primary string `yaml:"primary"` // Primary color for titles and borders
		Success string `yaml:"success"` // Color of directories and the selection
		Info    string `yaml:"info"`    // Color of the current location
		Muted   string `yaml:"muted"`   // Color of files and help text
		Error   string `yaml:"error"`   // Error message color
	} `yaml:"theme"`
}

// DefaultPath returns ~/.config/fexplorer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(home, ".config", "fexplorer", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/fexplorer/config.yaml).
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Browser.StartingFolder != "" {
		cfg.Browser.StartingFolder = tempCfg.Browser.StartingFolder
	}
	if tempCfg.Browser.Origin != "" {
		cfg.Browser.Origin = tempCfg.Browser.Origin
	}
	if tempCfg.Browser.GoUp != "" {
		cfg.Browser.GoUp = tempCfg.Browser.GoUp
	}
	if len(tempCfg.Listing.Hide) > 0 {
		cfg.Listing.Hide = tempCfg.Listing.Hide
	}
	if tempCfg.Display.Mode != "" {
		cfg.Display.Mode = tempCfg.Display.Mode
	}
	if tempCfg.Display.Listen != "" {
		cfg.Display.Listen = tempCfg.Display.Listen
	}
	if tempCfg.Display.Title != "" {
		cfg.Display.Title = tempCfg.Display.Title
	}
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	mergeColor(&cfg.Theme.Primary, tempCfg.Theme.Primary)
	mergeColor(&cfg.Theme.Success, tempCfg.Theme.Success)
	mergeColor(&cfg.Theme.Info, tempCfg.Theme.Info)
	mergeColor(&cfg.Theme.Muted, tempCfg.Theme.Muted)
	mergeColor(&cfg.Theme.Error, tempCfg.Theme.Error)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeColor(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Browser.StartingFolder = "/"
	cfg.Browser.Origin = "http://localhost/"
	cfg.Browser.GoUp = "go_up"

	cfg.Listing.Hide = []string{}

	cfg.Display.Mode = DisplayTUI
	cfg.Display.Listen = "127.0.0.1:0"
	cfg.Display.Title = "File Explorer"

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create config directory %s", dir)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Browser.StartingFolder == "" {
		return errors.NewConfigError("starting folder is required", "browser.starting_folder", errors.InvalidConfig, nil)
	}
	if !strings.Contains(c.Browser.StartingFolder, "/") && !strings.HasSuffix(c.Browser.StartingFolder, ":") {
		return errors.NewConfigError("starting folder must be an absolute path", "browser.starting_folder", errors.InvalidConfig, nil)
	}
	if c.Browser.Origin == "" || !strings.HasSuffix(c.Browser.Origin, "/") {
		return errors.NewConfigError("origin must end with a slash", "browser.origin", errors.InvalidConfig, nil)
	}
	if c.Browser.GoUp == "" || strings.Contains(c.Browser.GoUp, "/") {
		return errors.NewConfigError("go_up must be a single path segment", "browser.go_up", errors.InvalidConfig, nil)
	}

	for _, pattern := range c.Listing.Hide {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid hide pattern", "listing.hide", errors.InvalidConfig, err)
		}
	}

	switch c.Display.Mode {
	case DisplayTUI, DisplayWeb, DisplayGUI:
	default:
		return errors.NewConfigError(fmt.Sprintf("unknown display mode %q", c.Display.Mode), "display.mode", errors.InvalidConfig, nil)
	}
	if c.Display.Mode == DisplayWeb && c.Display.Listen == "" {
		return errors.NewConfigError("listen address is required for the web display", "display.listen", errors.InvalidConfig, nil)
	}

	return nil
}

// New returns a configuration with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary": "#7B61FF", // Purple
			"success": "#73F59F", // Green
			"info":    "#5A9",    // Teal
			"muted":   "#666666", // Grey
			"error":   "#FF6B6B", // Red
		},
		"dark": {
			"primary": "105", // Dark Blue
			"success": "78",  // Dark Green
			"info":    "33",  // Dark Blue
			"muted":   "241", // Medium Grey
			"error":   "160", // Dark Red
		},
		"light": {
			"primary": "135", // Light Purple
			"success": "28",  // Green
			"info":    "25",  // Blue
			"muted":   "244", // Grey
			"error":   "160", // Red
		},
		"monochrome": {
			"primary": "255", // Bright White
			"success": "252", // White
			"info":    "248", // Grey
			"muted":   "241", // Medium Grey
			"error":   "245", // Light Grey
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Info = theme["info"]
	c.Theme.Muted = theme["muted"]
	c.Theme.Error = theme["error"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
