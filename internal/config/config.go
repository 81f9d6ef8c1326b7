// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml. Command-line
// arguments take precedence over everything here.
type Config struct {
	// Source is the folder scanned for .cbz comic files.
	Source string `mapstructure:"source"`
	// Target is the folder that receives the link tree.
	Target string `mapstructure:"target"`
	// ScanInterval is the periodic full-sync interval in minutes used by
	// watch mode. 0 disables the periodic sync.
	ScanInterval int `mapstructure:"scan_interval"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")
	viper.AddConfigPath(".") // looking for config in the current directory

	// Environment variable overrides, e.g. COMICLINKS_SOURCE overrides
	// the `source` key.
	viper.SetEnvPrefix("COMICLINKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("source", "")
	viper.SetDefault("target", "")
	viper.SetDefault("scan_interval", 60)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
