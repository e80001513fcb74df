package config

import (
	"fmt"
	"path/filepath"
	"strings"

	internal "github.com/dirforge/dirindex/dirindex"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DirIndex DirIndexConfig `mapstructure:"dirindex"`
}

// DirIndexConfig stores indexing and output configurations.
type DirIndexConfig struct {
	OutputDir           string       `mapstructure:"outputDir"`
	Formats             []string     `mapstructure:"formats"`
	BuilderBatchSize    int          `mapstructure:"builderBatchSize"`
	SerializerBatchSize int          `mapstructure:"serializerBatchSize"`
	IgnoreFile          string       `mapstructure:"ignoreFile"`
	Server              ServerConfig `mapstructure:"server"`
}

// ServerConfig stores the HTTP front-end configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join("etc", internal.DefaultAppName))
		viper.AddConfigPath(internal.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("dirindex.outputDir", ".")
	viper.SetDefault("dirindex.formats", []string{"json", "xml", "txt"})
	viper.SetDefault("dirindex.builderBatchSize", internal.DefaultBuilderBatchSize)
	viper.SetDefault("dirindex.serializerBatchSize", internal.DefaultSerializerBatchSize)
	viper.SetDefault("dirindex.ignoreFile", "")
	viper.SetDefault("dirindex.server.addr", internal.DefaultServerAddr)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. dirindex.server.addr becomes DIRINDEX_SERVER_ADDR

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
