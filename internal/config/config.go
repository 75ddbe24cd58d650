package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage           string
	Port            int
	LogLevel        string
	RandomFleet     bool
	GameMaxAge      time.Duration
	CleanupInterval time.Duration
}

// Load reads the env file (skipped in prod, optional otherwise), then resolves
// every setting from the environment with defaults.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("stage", StageDev)
	v.SetDefault("port", 9191)
	v.SetDefault("log_level", "info")
	v.SetDefault("random_fleet", false)
	v.SetDefault("game_max_age", time.Minute*30)
	v.SetDefault("cleanup_interval", time.Minute*5)
	v.AutomaticEnv()

	cfg := Config{
		Stage:           v.GetString("stage"),
		Port:            v.GetInt("port"),
		LogLevel:        v.GetString("log_level"),
		RandomFleet:     v.GetBool("random_fleet"),
		GameMaxAge:      v.GetDuration("game_max_age"),
		CleanupInterval: v.GetDuration("cleanup_interval"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return fmt.Errorf("stage must be either dev or prod\tgot: %s", c.Stage)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.GameMaxAge <= 0 || c.CleanupInterval <= 0 {
		return fmt.Errorf("game max age and cleanup interval must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
