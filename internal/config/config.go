package config

import (
	"github.com/spf13/viper"

	"momentum/internal/storage"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the optional config file (~/.momentum.yaml or ./.momentum.yaml)
// and environment overrides. A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName(".momentum")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	_ = viper.BindEnv("storage.path", "MOMENTUM_DB_PATH")
	_ = viper.BindEnv("log.level", "MOMENTUM_LOG_LEVEL")

	viper.SetDefault("storage.path", "")
	viper.SetDefault("log.level", "warn")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBPath resolves the database location: config/env override first,
// otherwise the default under the home directory.
func (c *Config) DBPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return storage.DefaultDBPath()
}
