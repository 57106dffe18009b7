package api

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                 string
	Environment          string
	LogLevel             string
	PostgresDSN          string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	TemporalAddress      string
	TemporalNamespace    string
	TemporalDisabled     bool
	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration
	// Location bounds "today" for the scheduling rule and reads date-only scheduled dates.
	Location *time.Location
}

// LoadDotEnv loads variables from the given files (default .env) without overriding the real
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		Environment:       envDefault("ENVIRONMENT", "local"),
		LogLevel:          envDefault("LOG_LEVEL", "info"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		SessionTTL:        24 * time.Hour,
		Location:          time.Local,
	}
	var errs []error
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil || db < 0 {
			errs = append(errs, fmt.Errorf("REDIS_DB must be a non-negative integer"))
		}
		cfg.RedisDB = db
	}
	if hours, ok, err := positiveInt("SESSION_TTL_HOURS"); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	if minutes, ok, err := positiveInt("SESSION_PURGE_INTERVAL_MINUTES"); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.SessionPurgeInterval = time.Duration(minutes) * time.Minute
	}
	if name := strings.TrimSpace(os.Getenv("TIMEZONE")); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", name, err))
		} else {
			cfg.Location = loc
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func positiveInt(key string) (int, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, true, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
