package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Shopify struct {
		Shop       string `mapstructure:"shop" yaml:"shop"`
		Token      string `mapstructure:"token" yaml:"-"` // Never serialize token
		APIVersion string `mapstructure:"api_version" yaml:"api_version"`
	} `mapstructure:"shopify" yaml:"shopify"`

	SFTP struct {
		Host       string `mapstructure:"host" yaml:"host"`
		Port       int    `mapstructure:"port" yaml:"port"`
		User       string `mapstructure:"user" yaml:"user"`
		Password   string `mapstructure:"password" yaml:"-"` // Never serialize password
		RemotePath string `mapstructure:"remote_path" yaml:"remote_path"`
	} `mapstructure:"sftp" yaml:"sftp"`

	Data struct {
		PathsFile    string `mapstructure:"paths_file" yaml:"paths_file"`
		ProductsFile string `mapstructure:"products_file" yaml:"products_file"`
		CSVFile      string `mapstructure:"csv_file" yaml:"csv_file"`
		NavFile      string `mapstructure:"nav_file" yaml:"nav_file"`
		Extension    string `mapstructure:"extension" yaml:"extension"`
		Vendor       string `mapstructure:"vendor" yaml:"vendor"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then environment overrides.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.shopflow")
	v.AddConfigPath(".shopflow")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHOPFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// Credentials keep their historical, unprefixed env names so existing
	// .env files continue to work.
	bindings := map[string]string{
		"shopify.shop":     "SHOPIFY_SHOP",
		"shopify.token":    "SHOPIFY_TOKEN",
		"ai.api_key":       "GEMINI_API_KEY",
		"sftp.host":        "SFTP_HOST",
		"sftp.port":        "SFTP_PORT",
		"sftp.user":        "SFTP_USER",
		"sftp.password":    "SFTP_PASS",
		"sftp.remote_path": "REMOTE_PRODUCTS_PATH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			Logger.Warnf("Failed to bind %s environment variable: %v", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")

	v.SetDefault("shopify.api_version", "2024-04")

	v.SetDefault("sftp.port", 22)

	v.SetDefault("data.paths_file", "valid_category_paths.yaml")
	v.SetDefault("data.products_file", "products.js")
	v.SetDefault("data.csv_file", "shopify_upload.csv")
	v.SetDefault("data.nav_file", "nav/nav.html")
	v.SetDefault("data.extension", ".png")
	v.SetDefault("data.vendor", "Rewind the Finds")
}

func validateConfig(config *Config) error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.SFTP.Port <= 0 || config.SFTP.Port > 65535 {
		return fmt.Errorf("invalid SFTP port: %d", config.SFTP.Port)
	}

	return nil
}
