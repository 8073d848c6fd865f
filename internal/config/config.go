// internal/config/config.go
//
// Settings for the roster viewer. Everything has a default, so the YAML file
// is optional and usually only overrides the timezone or the shift keywords.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

const (
	// DefaultTimezone is the zone "today" is computed in.
	DefaultTimezone = "Asia/Tokyo"

	appDirName     = "manning"
	defaultLogName = "manning.log"
)

// Config models the optional YAML settings file.
type Config struct {
	Timezone      string             `yaml:"timezone"`
	Separator     string             `yaml:"separator"`
	Shifts        []models.ShiftRule `yaml:"shifts"`
	Font          string             `yaml:"font,omitempty"`
	LogFile       string             `yaml:"log_file,omitempty"`
	ScreenshotDir string             `yaml:"screenshot_dir,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Timezone:  DefaultTimezone,
		Separator: models.DefaultSeparator,
		Shifts:    models.DefaultShiftRules(),
	}
}

// Load reads path over the defaults. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the shift table.
func (c *Config) Validate() error {
	if len(c.Shifts) != models.ShiftCount {
		return fmt.Errorf("config: shifts must list %d entries, got %d", models.ShiftCount, len(c.Shifts))
	}
	for i, s := range c.Shifts {
		if strings.TrimSpace(s.Keyword) == "" {
			return fmt.Errorf("config: shift %d has an empty keyword", i+1)
		}
		if strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("config: shift %d has an empty label", i+1)
		}
	}
	return nil
}

// Location resolves the configured timezone. The tz database is embedded in
// the binary; a fixed +09:00 zone covers Asia/Tokyo if lookup still fails.
func (c *Config) Location() *time.Location {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if strings.EqualFold(name, DefaultTimezone) {
		return time.FixedZone("JST", 9*3600)
	}
	return time.Local
}

// Now returns the current time in the configured zone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}

// JoinSeparator returns the separator for several names in one slot.
func (c *Config) JoinSeparator() string {
	if c.Separator == "" {
		return models.DefaultSeparator
	}
	return c.Separator
}

// LogPath returns where diagnostics are written.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(stateDir(), defaultLogName)
}

// SnapshotDir returns the default folder for screenshots.
func (c *Config) SnapshotDir() string {
	if c.ScreenshotDir != "" {
		return c.ScreenshotDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func stateDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(os.TempDir(), appDirName)
}
