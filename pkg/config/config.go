package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/younisrahman/appheader/pkg/ui/icons"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil config is passed where one is required.
var ErrNilConfig = errors.New("nil config")

// EnvPrefix is the prefix of every environment variable read by Config.
const EnvPrefix = "APPHEADER_"

// IconConfig configures one side of the header.
type IconConfig struct {
	// Icon is the glyph name within the family.
	Icon string `env:"ICON" yaml:"icon"`

	// Family is the icon family, e.g. "Feather".
	Family string `env:"ICON_FAMILY" yaml:"icon_family"`

	// Size is the icon size. Sizes of 24 and up render bold.
	Size int `env:"ICON_SIZE" yaml:"icon_size"`

	// Color is a color name, hex value, or ANSI index.
	Color string `env:"ICON_COLOR" yaml:"icon_color"`

	// Disabled disables presses on this side.
	Disabled bool `env:"DISABLED" yaml:"disabled"`
}

// HeaderConfig is the header configuration.
type HeaderConfig struct {
	// Title overrides the title derived from the focused screen.
	Title string `env:"TITLE" yaml:"title"`

	// Left configures the left control.
	Left IconConfig `envPrefix:"LEFT_" yaml:"left"`

	// Right configures the right control.
	Right IconConfig `envPrefix:"RIGHT_" yaml:"right"`
}

// UIConfig is the terminal UI configuration.
type UIConfig struct {
	// FPS is the press animation frame rate.
	FPS int `env:"FPS" yaml:"fps"`

	// AlertTimeout is how long alerts stay on screen. Zero keeps them.
	AlertTimeout time.Duration `env:"ALERT_TIMEOUT" yaml:"alert_timeout"`

	// Mouse enables mouse support.
	Mouse bool `env:"MOUSE" yaml:"mouse"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// ScreenConfig describes a screen listed in the drawer.
type ScreenConfig struct {
	Name            string `yaml:"name"`
	Label           string `yaml:"label,omitempty"`
	Title           string `yaml:"title,omitempty"`
	Body            string `yaml:"body,omitempty"`
	LeftIcon        string `yaml:"left_icon,omitempty"`
	LeftIconFamily  string `yaml:"left_icon_family,omitempty"`
	LeftIconSize    int    `yaml:"left_icon_size,omitempty"`
	LeftIconColor   string `yaml:"left_icon_color,omitempty"`
	RightIcon       string `yaml:"right_icon,omitempty"`
	RightIconFamily string `yaml:"right_icon_family,omitempty"`
	RightIconSize   int    `yaml:"right_icon_size,omitempty"`
	RightIconColor  string `yaml:"right_icon_color,omitempty"`
}

// Config is the configuration for appheader.
type Config struct {
	// Name is the application name shown on the status bar.
	Name string `env:"NAME" yaml:"name"`

	// Header is the header configuration.
	Header HeaderConfig `envPrefix:"HEADER_" yaml:"header"`

	// UI is the terminal UI configuration.
	UI UIConfig `envPrefix:"UI_" yaml:"ui"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// Glyphs adds glyphs to icon families, keyed by family then name.
	Glyphs map[string]map[string]string `yaml:"glyphs,omitempty"`

	// Screens are the screens listed in the drawer. The first one is shown
	// first.
	Screens []ScreenConfig `yaml:"screens"`

	// DataPath is the path to the directory holding the config file.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{}
	if c == nil {
		return envs
	}

	envs = append(envs, []string{
		fmt.Sprintf("APPHEADER_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("APPHEADER_NAME=%s", c.Name),
		fmt.Sprintf("APPHEADER_HEADER_TITLE=%s", c.Header.Title),
	}...)
	for side, ic := range map[string]IconConfig{"LEFT": c.Header.Left, "RIGHT": c.Header.Right} {
		envs = append(envs, []string{
			fmt.Sprintf("APPHEADER_HEADER_%s_ICON=%s", side, ic.Icon),
			fmt.Sprintf("APPHEADER_HEADER_%s_ICON_FAMILY=%s", side, ic.Family),
			fmt.Sprintf("APPHEADER_HEADER_%s_ICON_SIZE=%d", side, ic.Size),
			fmt.Sprintf("APPHEADER_HEADER_%s_ICON_COLOR=%s", side, ic.Color),
			fmt.Sprintf("APPHEADER_HEADER_%s_DISABLED=%t", side, ic.Disabled),
		}...)
	}
	envs = append(envs, []string{
		fmt.Sprintf("APPHEADER_UI_FPS=%d", c.UI.FPS),
		fmt.Sprintf("APPHEADER_UI_ALERT_TIMEOUT=%s", c.UI.AlertTimeout),
		fmt.Sprintf("APPHEADER_UI_MOUSE=%t", c.UI.Mouse),
		fmt.Sprintf("APPHEADER_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("APPHEADER_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("APPHEADER_LOG_PATH=%s", c.Log.Path),
	}...)

	return envs
}

// IsDebug returns true if appheader is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("APPHEADER_DEBUG"))
	return debug
}

// IsVerbose returns true if appheader is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("APPHEADER_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// ParseConfig parses the config from the given file path.
func ParseConfig(cfg *Config, path string) error {
	if cfg == nil {
		return ErrNilConfig
	}
	return parseFile(cfg, path)
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	// Override with environment variables
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: EnvPrefix,
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment
// variables. A missing config file is not an error.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o644) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the APPHEADER_DATA_PATH environment variable if set, otherwise the
// user config directory, otherwise "data".
func DefaultDataPath() string {
	if dp := os.Getenv("APPHEADER_DATA_PATH"); dp != "" {
		return dp
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "appheader")
	}
	return "data"
}

// ConfigPath returns the path to the config file. The
// APPHEADER_CONFIG_LOCATION environment variable takes precedence when it
// points at an existing file.
func (c *Config) ConfigPath() string { // nolint:revive
	if path := os.Getenv("APPHEADER_CONFIG_LOCATION"); path != "" && exist(path) {
		return path
	}
	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(c.ConfigPath())
}

// DefaultConfig returns the default Config.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Name:     "appheader",
		DataPath: DefaultDataPath(),
		Header: HeaderConfig{
			Left: IconConfig{
				Icon:   "menu",
				Family: "MaterialIcons",
				Size:   28,
				Color:  "#007AFF",
			},
			Right: IconConfig{
				Icon:   "bell",
				Family: "Feather",
			},
		},
		UI: UIConfig{
			FPS:          60,
			AlertTimeout: 3 * time.Second,
			Mouse:        true,
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		Screens: []ScreenConfig{
			{Name: "Home", LeftIcon: "home", LeftIconFamily: "Feather", Body: "Welcome home."},
			{Name: "Profile", LeftIcon: "user", LeftIconFamily: "Feather", Body: "Your profile."},
			{Name: "Settings", LeftIcon: "settings", LeftIconFamily: "Feather", Body: "Tweak things here."},
		},
	}
}

// Validate validates the configuration.
// It updates the configuration with absolute paths.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	// Use absolute paths
	if c.DataPath != "" && !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	if c.Log.Path != "" && !filepath.IsAbs(c.Log.Path) {
		c.Log.Path = filepath.Join(c.DataPath, c.Log.Path)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "logfmt", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}

	if c.UI.FPS < 0 || c.UI.FPS > 240 {
		return fmt.Errorf("invalid fps %d: must be between 0 and 240", c.UI.FPS)
	}

	if c.UI.AlertTimeout < 0 {
		return fmt.Errorf("invalid alert timeout %s", c.UI.AlertTimeout)
	}

	for side, ic := range map[string]IconConfig{"left": c.Header.Left, "right": c.Header.Right} {
		if err := validateFamily(ic.Family); err != nil {
			return fmt.Errorf("header %s: %w", side, err)
		}
		if ic.Size < 0 {
			return fmt.Errorf("header %s: invalid icon size %d", side, ic.Size)
		}
	}

	for family := range c.Glyphs {
		if err := validateFamily(family); err != nil {
			return fmt.Errorf("glyphs: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(c.Screens))
	for i, s := range c.Screens {
		if s.Name == "" {
			return fmt.Errorf("screen %d: missing name", i)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("screen %q: duplicate name", s.Name)
		}
		seen[s.Name] = struct{}{}
		if err := validateFamily(s.LeftIconFamily); err != nil {
			return fmt.Errorf("screen %q: %w", s.Name, err)
		}
		if err := validateFamily(s.RightIconFamily); err != nil {
			return fmt.Errorf("screen %q: %w", s.Name, err)
		}
	}

	return nil
}

// validateFamily rejects family names outside the supported set. An empty
// name is allowed and resolves to the default family.
func validateFamily(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := icons.ParseFamily(name); !ok {
		return fmt.Errorf("unknown icon family %q", name)
	}
	return nil
}
