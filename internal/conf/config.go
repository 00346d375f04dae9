// Package conf loads and validates the application configuration.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// MainSettings contains application-wide settings
type MainSettings struct {
	Name     string `yaml:"name"`     // Application name used in logs
	LogLevel string `yaml:"loglevel"` // trace, debug, info, warn, error
}

// DataserviceSettings describes the remote data service the telemetry
// datasets are loaded from.
type DataserviceSettings struct {
	BaseURL    string        `yaml:"baseurl"`    // Base URL of the data service API
	Timeout    time.Duration `yaml:"timeout"`    // Per-request timeout
	MaxRetries int           `yaml:"maxretries"` // Attempts per dataset fetch
	RetryDelay time.Duration `yaml:"retrydelay"` // Delay between attempts
}

// UnitSettings describes the physical growing unit's location, used for
// estimating daylight when the sun dataset is unavailable.
type UnitSettings struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// ForecastSettings holds the growth projection tunables. The projection is a
// multiplicative random walk for display purposes only, it has no predictive
// validity.
type ForecastSettings struct {
	Horizon        int     `yaml:"horizon"`        // Number of future days to generate
	GrowthRate     float64 `yaml:"growthrate"`     // Base multiplicative growth per day
	NoiseAmplitude float64 `yaml:"noiseamplitude"` // Uniform noise bound added to the rate
	Seed           int64   `yaml:"seed"`           // Random seed, 0 selects a time-based seed
}

// EC alert source selection
const (
	ECSourceFixed = "fixed" // Use the configured constant
	ECSourceLive  = "live"  // Mean of EC readings from the measurements dataset
)

// AlertsSettings controls the health alert evaluation.
type AlertsSettings struct {
	ECSource     string  `yaml:"ecsource"`     // "fixed" or "live"
	ECFixedValue float64 `yaml:"ecfixedvalue"` // Constant used when ecsource is "fixed"
}

// WebServerSettings configures the JSON API listener.
type WebServerSettings struct {
	Enabled bool   `yaml:"enabled"`
	Port    string `yaml:"port"`
}

// Settings is the top-level configuration structure
type Settings struct {
	Debug bool `yaml:"debug"` // Enable debug logging

	Main        MainSettings        `yaml:"main"`
	Dataservice DataserviceSettings `yaml:"dataservice"`
	Unit        UnitSettings        `yaml:"unit"`
	Forecast    ForecastSettings    `yaml:"forecast"`
	Alerts      AlertsSettings      `yaml:"alerts"`
	WebServer   WebServerSettings   `yaml:"webserver"`
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a new
// Settings instance and stores it as the current instance.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter,
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig writes a config file populated with the defaults to the
// first default config path and re-reads it.
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := viper.SafeWriteConfigAs(configPath); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}

// GetDefaultConfigPaths returns the paths searched for the config file, in
// order of precedence: working directory, then the user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	paths := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, "atlas-go"))
	}
	return paths, nil
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// Setting is a shorthand for GetSettings
func Setting() *Settings {
	return GetSettings()
}
