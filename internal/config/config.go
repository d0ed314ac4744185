package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/ucum/internal/ucum"
	"github.com/banshee-data/ucum/internal/units"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/ucum.defaults.json"

// Config holds CLI settings. Fields omitted from the JSON keep their
// defaults via the Get* accessors.
type Config struct {
	DatabasePath *string `json:"database_path,omitempty"`
	Precision    *int    `json:"precision,omitempty"`
	Verbose      *bool   `json:"verbose,omitempty"`

	// DisplayUnit is the UCUM expression "list" converts into when no unit
	// is given. Empty means records are listed as stored.
	DisplayUnit *string `json:"display_unit,omitempty"`

	// SpeedUnit is one of the units package names (mps, mph, kmph, kph).
	// Speeds given by name on the command line resolve through it.
	SpeedUnit *string `json:"speed_unit,omitempty"`
}

// Helper functions to create pointers
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }
func ptrBool(v bool) *bool       { return &v }

// EmptyConfig returns a Config with all fields set to nil.
func EmptyConfig() *Config {
	return &Config{}
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath: ptrString("ucum.db"),
		Precision:    ptrInt(12),
		Verbose:      ptrBool(false),
		DisplayUnit:  ptrString(""),
		SpeedUnit:    ptrString(units.MPS),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching parent
// directories so tests can run from any package. Panics if not found.
func MustLoadDefaultConfig() *Config {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > 100) {
		return fmt.Errorf("precision must be between 0 and 100, got %d", *c.Precision)
	}
	if c.DisplayUnit != nil && *c.DisplayUnit != "" {
		if _, err := ucum.Parse(*c.DisplayUnit); err != nil {
			return fmt.Errorf("invalid display_unit: %w", err)
		}
	}
	if c.SpeedUnit != nil && !units.IsValid(*c.SpeedUnit) {
		return fmt.Errorf("invalid speed_unit %q, must be one of: %s", *c.SpeedUnit, units.GetValidUnitsString())
	}
	return nil
}

// GetDatabasePath returns the database_path value or the default.
func (c *Config) GetDatabasePath() string {
	if c.DatabasePath == nil || *c.DatabasePath == "" {
		return "ucum.db"
	}
	return *c.DatabasePath
}

// GetPrecision returns the precision value or the default.
func (c *Config) GetPrecision() int {
	if c.Precision == nil {
		return 12
	}
	return *c.Precision
}

// GetVerbose returns the verbose value or the default.
func (c *Config) GetVerbose() bool {
	if c.Verbose == nil {
		return false
	}
	return *c.Verbose
}

// GetDisplayUnit returns the parsed display unit, or false when unset.
func (c *Config) GetDisplayUnit() (ucum.Unit, bool) {
	if c.DisplayUnit == nil || *c.DisplayUnit == "" {
		return ucum.Unit{}, false
	}
	u, err := ucum.Parse(*c.DisplayUnit)
	if err != nil {
		return ucum.Unit{}, false
	}
	return u, true
}

// GetSpeedUnit returns the speed_unit value or the default.
func (c *Config) GetSpeedUnit() string {
	if c.SpeedUnit == nil {
		return units.MPS
	}
	return *c.SpeedUnit
}
