package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Database
	DatabaseURL string
	DBDriver    string
	Schema      string

	// Metadata sources
	DataDir         string
	ManifestURL     string
	SocrataAppToken string
	HTTPTimeout     time.Duration

	// Documentation
	WrapWidth int

	// Logging configuration. LogLevel comes from --log-level and
	// EnvLogLevel from LOG_LEVEL.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.nycdb-schema.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "cannot read "+path, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".nycdb-schema")

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DatabaseURL: v.GetString("database_url"),
		DBDriver:    v.GetString("db_driver"),
		Schema:      v.GetString("schema"),

		DataDir:         v.GetString("data_dir"),
		ManifestURL:     v.GetString("manifest_url"),
		SocrataAppToken: v.GetString("socrata_app_token"),
		HTTPTimeout:     v.GetDuration("http_timeout"),

		WrapWidth: v.GetInt("wrap_width"),

		// Logging configuration
		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_driver", constants.DefaultDBDriver)
	v.SetDefault("schema", constants.DefaultSchema)
	v.SetDefault("data_dir", constants.DefaultDataDir)
	v.SetDefault("manifest_url", constants.ManifestURL)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("wrap_width", constants.DefaultWrapWidth)
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	valid := false
	for _, d := range constants.DBDrivers {
		if c.DBDriver == d {
			valid = true
		}
	}
	if !valid {
		return errors.NewValidationError("db_driver", c.DBDriver,
			"must be one of "+strings.Join(constants.DBDrivers, ", "))
	}
	if c.WrapWidth < constants.MinWrapWidth {
		return errors.NewValidationError("wrap_width", c.WrapWidth, "is too narrow")
	}
	if c.HTTPTimeout <= 0 {
		return errors.NewValidationError("http_timeout", c.HTTPTimeout, "must be positive")
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	c.Verbose = flags.Verbose
	c.Quiet = flags.Quiet
	c.NoColor = flags.NoColor
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
