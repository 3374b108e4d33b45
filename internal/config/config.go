package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Device     DeviceConfig
	LogService LogServiceConfig
	Poller     PollerConfig
	Capacity   CapacityConfig
	Logs       LogsConfig
	Settings   SettingsConfig
	Redis      RedisConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DeviceConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	CameraURL      string        `mapstructure:"camera_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogServiceConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type PollerConfig struct {
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold int           `mapstructure:"failure_threshold"`
}

type CapacityConfig struct {
	RefillRatio     float64 `mapstructure:"refill_ratio"`
	EmptyThresholdG float64 `mapstructure:"empty_threshold_g"`
}

type LogsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type SettingsConfig struct {
	Backend  string `mapstructure:"backend"`
	FilePath string `mapstructure:"file_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MonitoringConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("FEEDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Device defaults
	viper.SetDefault("device.request_timeout", "2s")

	// Log service defaults
	viper.SetDefault("logservice.request_timeout", "5s")

	// Poller defaults
	viper.SetDefault("poller.interval", "3s")
	viper.SetDefault("poller.timeout", "2s")
	viper.SetDefault("poller.failure_threshold", 3)

	// Capacity defaults
	viper.SetDefault("capacity.refill_ratio", 0.9)
	viper.SetDefault("capacity.empty_threshold_g", 30.0)

	// Log panel defaults
	viper.SetDefault("logs.page_size", 5)

	// Settings store defaults
	viper.SetDefault("settings.backend", "file")
	viper.SetDefault("settings.file_path", "./data/settings")

	// Redis defaults
	viper.SetDefault("redis.db", 0)

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Device.BaseURL == "" {
		return fmt.Errorf("device base_url is required")
	}
	if config.LogService.BaseURL == "" {
		return fmt.Errorf("logservice base_url is required")
	}
	if config.Poller.FailureThreshold < 1 {
		return fmt.Errorf("poller failure_threshold must be at least 1")
	}
	if config.Capacity.RefillRatio <= 0 || config.Capacity.RefillRatio > 1 {
		return fmt.Errorf("capacity refill_ratio must be in (0, 1]")
	}
	if config.Logs.PageSize < 1 {
		return fmt.Errorf("logs page_size must be at least 1")
	}
	switch config.Settings.Backend {
	case "redis":
		if config.Redis.Host == "" {
			return fmt.Errorf("redis host is required for the redis settings backend")
		}
	case "file":
		if config.Settings.FilePath == "" {
			return fmt.Errorf("settings file_path is required for the file settings backend")
		}
	default:
		return fmt.Errorf("unknown settings backend %q", config.Settings.Backend)
	}
	return nil
}
