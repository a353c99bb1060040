package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the game reads,
// e.g. DETECTIVE_LOG_LEVEL.
const EnvPrefix = "DETECTIVE"

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all configuration for the game
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Game   GameConfig   `mapstructure:"game"`
	Locale LocaleConfig `mapstructure:"locale"`
}

// LogConfig holds diagnostics related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// GameConfig selects which parts of the game are played
type GameConfig struct {
	// Clues places the clues in the rooms; without them only the map is walked.
	Clues bool `mapstructure:"clues"`
	// Accusation ends the game with an accusation instead of a clue listing.
	Accusation bool `mapstructure:"accusation"`
}

// LocaleConfig holds gettext catalog configuration
type LocaleConfig struct {
	Dir      string `mapstructure:"dir"`
	Language string `mapstructure:"language"`
	Domain   string `mapstructure:"domain"`
}

// Load reads configuration from defaults, an optional config file, an
// optional .env file and the environment, in increasing priority. An empty
// configPath searches the default locations.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("detective")
		v.SetConfigType("yaml")
		for _, path := range searchPaths() {
			v.AddConfigPath(path)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func searchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "detective"))
	}
	return paths
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)

	v.SetDefault("game.clues", true)
	v.SetDefault("game.accusation", true)

	v.SetDefault("locale.dir", "locales")
	v.SetDefault("locale.language", "en_US")
	v.SetDefault("locale.domain", "detective")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Locale.Language == "" {
		return fmt.Errorf("locale language cannot be empty")
	}
	return nil
}
