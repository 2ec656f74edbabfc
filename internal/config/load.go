package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads defaults merged with path, ignoring command-line flags. An
// empty path searches the standard locations.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Motor.RPM < 0 {
		errs = append(errs, fmt.Errorf("motor.rpm must not be negative, got %g", c.Motor.RPM))
	}
	if c.Motor.Segments < 3 {
		errs = append(errs, fmt.Errorf("motor.segments must be at least 3, got %d", c.Motor.Segments))
	}
	if c.Motor.CutEndDeg <= c.Motor.CutStartDeg || c.Motor.CutEndDeg-c.Motor.CutStartDeg >= 360 {
		errs = append(errs, fmt.Errorf("motor cut arc [%g, %g) must span (0, 360) degrees",
			c.Motor.CutStartDeg, c.Motor.CutEndDeg))
	}
	if c.Camera.MinRadius <= 0 || c.Camera.MaxRadius < c.Camera.MinRadius {
		errs = append(errs, fmt.Errorf("camera radius bounds [%g, %g] are invalid",
			c.Camera.MinRadius, c.Camera.MaxRadius))
	}
	if c.Telemetry.Samples < 2 {
		errs = append(errs, fmt.Errorf("telemetry.samples must be at least 2, got %d", c.Telemetry.Samples))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./motorscope.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Motorscope")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Motorscope")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "motorscope")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "motorscope")
	}
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
