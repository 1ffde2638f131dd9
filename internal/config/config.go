package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the clue generator.
type Config struct {
	Words  WordsConfig  `mapstructure:"words"`
	Puzzle PuzzleConfig `mapstructure:"puzzle"`
	Output OutputConfig `mapstructure:"output"`
}

// WordsConfig holds word list related configuration.
type WordsConfig struct {
	Path string `mapstructure:"path"`
}

// PuzzleConfig holds puzzle API related configuration.
type PuzzleConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig holds result output related configuration.
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("words.path", "cleaned_words.txt")
	v.SetDefault("puzzle.url", "https://www.dailyscroggle.com/api/scroggle/puzzle")
	v.SetDefault("puzzle.timeout", 15*time.Second)
	v.SetDefault("output.path", "clue.txt")
}
