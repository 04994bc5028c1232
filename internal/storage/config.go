package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	pkgconfig "github.com/vidyasagar/navhist/pkg/config"

	"github.com/vidyasagar/navhist/internal/browser"
	"github.com/vidyasagar/navhist/internal/theme"
)

const appName = "navhist"

// Config holds navhist configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	History HistoryConfig `yaml:"history"`
	UI      UIConfig      `yaml:"ui"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.History.Validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// AppConfig holds logging configuration.
type AppConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`
}

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error", "none")),
		validation.Field(&c.LogFormat, validation.Required, validation.In("text", "json")),
	)
}

// HistoryConfig describes the seed file and navigation behavior.
type HistoryConfig struct {
	File                string `yaml:"file"`
	Delimiter           string `yaml:"delimiter"`
	MalformedRecords    string `yaml:"malformed_records"`
	ClearForwardOnVisit bool   `yaml:"clear_forward_on_visit"`
	SaveOnExit          bool   `yaml:"save_on_exit"`
}

// Validate validates the history configuration.
func (c *HistoryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.File, validation.Required),
		validation.Field(&c.Delimiter, validation.Required, validation.By(singleRune)),
		validation.Field(&c.MalformedRecords, validation.Required,
			validation.In(string(browser.PolicyAbort), string(browser.PolicySkip))),
	)
}

// DelimiterRune returns the record delimiter.
func (c *HistoryConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Policy returns the malformed record policy.
func (c *HistoryConfig) Policy() browser.MalformedPolicy {
	return browser.MalformedPolicy(c.MalformedRecords)
}

// UIConfig holds interactive settings.
type UIConfig struct {
	Theme      string `yaml:"theme"`
	RecentURLs int    `yaml:"recent_urls"`
	Timezone   string `yaml:"timezone"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Theme, validation.Required, validation.By(knownTheme)),
		validation.Field(&c.RecentURLs, validation.Required, validation.Min(1), validation.Max(1000)),
		validation.Field(&c.Timezone, validation.Required, validation.By(knownZone)),
	)
}

// Location resolves the configured timezone.
func (c *UIConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func singleRune(value interface{}) error {
	s, _ := value.(string)
	if utf8.RuneCountInString(s) != 1 {
		return errors.New("must be exactly one character")
	}
	if s == "\n" || s == "\r" {
		return errors.New("must not be a line break")
	}
	return nil
}

func knownTheme(value interface{}) error {
	name, _ := value.(string)
	if !theme.Exists(name) {
		return fmt.Errorf("unknown theme %q (available: %v)", name, theme.List())
	}
	return nil
}

func knownZone(value interface{}) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}

// DefaultConfig returns the default configuration. Paths point into the
// per-user data directory, or the working directory if it cannot be found.
func DefaultConfig() *Config {
	dir, err := DataDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		App: AppConfig{
			LogLevel:  "info",
			LogFormat: "text",
			LogFile:   filepath.Join(dir, appName+".log"),
		},
		History: HistoryConfig{
			File:             filepath.Join(dir, "history.txt"),
			Delimiter:        string(browser.DefaultDelimiter),
			MalformedRecords: string(browser.PolicyAbort),
		},
		UI: UIConfig{
			Theme:      "default",
			RecentURLs: 50,
			Timezone:   "Local",
		},
	}
}

// LoadConfig loads configuration from path on top of the defaults. An empty
// path means DefaultConfigPath. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	if err := pkgconfig.LoadOptional(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".yaml"), nil
}

// DataDir returns the data directory for persistent storage.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, appName)
		} else {
			dir = filepath.Join(home, "."+appName)
		}
	default: // Linux, BSD, etc.
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			dir = filepath.Join(xdgData, appName)
		} else {
			dir = filepath.Join(home, ".local", "share", appName)
		}
	}

	return dir, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, appName)
		} else {
			dir = filepath.Join(home, "."+appName)
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, appName)
		} else {
			dir = filepath.Join(home, ".config", appName)
		}
	}

	return dir, nil
}
