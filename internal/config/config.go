package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/shipkombat/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	envFile = ".env"
)

type Config struct {
	Stage       string
	LogLevel    log.Level
	DatabaseURL string

	// Seed for the automated side, only used when HasSeed is set
	Seed    int64
	HasSeed bool
}

// Load reads the process environment. Outside prod a .env file is
// loaded first when present.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:       os.Getenv("STAGE"),
		LogLevel:    log.InfoLevel,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrStage(cfg.Stage)
	}

	if levelEnv := os.Getenv("LOG_LEVEL"); levelEnv != "" {
		level, err := log.ParseLevel(levelEnv)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if seedEnv := os.Getenv("GAME_SEED"); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}
	return cfg, nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseURL != ""
}
