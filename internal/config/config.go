package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds everything the client needs to reach the API and keep its
// local state (preferences, logs).
type Config struct {
	APIURL    string
	Timeout   time.Duration
	ConfigDir string
	LogFile   string
}

// Load reads configuration from the environment (and a .env file when
// present). Missing values fall back to defaults; a missing home directory
// leaves ConfigDir empty, which disables preference persistence.
func Load() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("MOVIECLI_API_URL", "http://localhost:5000")
	viper.SetDefault("MOVIECLI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MOVIECLI_CONFIG_DIR", "")
	viper.SetDefault("MOVIECLI_LOG_FILE", "")

	dir := strings.TrimSpace(viper.GetString("MOVIECLI_CONFIG_DIR"))
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".moviecli")
		}
	}

	return Config{
		APIURL:    strings.TrimRight(strings.TrimSpace(viper.GetString("MOVIECLI_API_URL")), "/"),
		Timeout:   time.Duration(viper.GetInt("MOVIECLI_TIMEOUT_SECONDS")) * time.Second,
		ConfigDir: dir,
		LogFile:   strings.TrimSpace(viper.GetString("MOVIECLI_LOG_FILE")),
	}
}

// SetupLogging routes the global zerolog logger to the configured file.
// The TUI owns the terminal, so without a log file everything is discarded.
func SetupLogging(cfg Config) {
	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
}
