package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/logger"
)

// AppConfig is the root configuration for the admin gateway.
type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Upstream *UpstreamConfig `mapstructure:"upstream"`
	Session  *SessionConfig  `mapstructure:"session"`
}

// APIConfig configures the gateway's own HTTP surface.
type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	GinMode            string   `mapstructure:"gin_mode"`
	LogLevel           string   `mapstructure:"log_level"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

// UpstreamConfig points at the lottery platform REST API.
type UpstreamConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SessionConfig configures the operator session.
type SessionConfig struct {
	// TokenFile is the fixed location of the persisted bearer token,
	// the gateway's analogue of the dashboard's local-storage key.
	TokenFile string `mapstructure:"token_file"`
}

// Load reads the yaml config at path, applies environment overrides,
// and starts watching the file for changes.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Environment variables alone are a valid configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
		}
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	watch(v, &conf)

	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.base_url", "localhost:8090")
	v.SetDefault("api.port", "8090")
	v.SetDefault("api.gin_mode", "debug")
	v.SetDefault("api.log_level", "info")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("upstream.base_url", "http://localhost:5000/api")
	v.SetDefault("upstream.timeout_seconds", 15)
	v.SetDefault("session.token_file", ".admin_token")
}

// watch re-reads the log level when the config file changes on disk.
func watch(v *viper.Viper, conf *AppConfig) {
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		conf.API.LogLevel = v.GetString("api.log_level")
		if err := logger.SetLevel(conf.API.LogLevel); err != nil {
			zap.L().Warn("ignoring invalid log level from config", zap.Error(err))
		}
	})
	v.WatchConfig()
}
