package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Security SecurityConfig
	Seed     SeedConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type SessionConfig struct {
	TimeoutTicks      int
	TickInterval      time.Duration
	LoanApprovalDelay time.Duration
}

type SecurityConfig struct {
	PINHashCost        int
	LoginRatePerSecond float64
	LoginRateBurst     int
}

type SeedConfig struct {
	GeneratedAccounts int
	FakerSeed         uint64
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. Files named in
// envFiles are loaded first when present; variables already set win.
func Load(envFiles ...string) *Config {
	loadEnvFiles(envFiles...)

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			TimeoutTicks:      getIntEnv("SESSION_TIMEOUT_TICKS", 120),
			TickInterval:      getDurationEnv("SESSION_TICK_INTERVAL", time.Second),
			LoanApprovalDelay: getDurationEnv("LOAN_APPROVAL_DELAY", 2500*time.Millisecond),
		},
		Security: SecurityConfig{
			PINHashCost:        getIntEnv("PIN_HASH_COST", bcrypt.DefaultCost),
			LoginRatePerSecond: getFloatEnv("LOGIN_RATE_PER_SECOND", 1),
			LoginRateBurst:     getIntEnv("LOGIN_RATE_BURST", 5),
		},
		Seed: SeedConfig{
			GeneratedAccounts: getIntEnv("SEED_GENERATED_ACCOUNTS", 2),
			FakerSeed:         uint64(getIntEnv("SEED_FAKER_SEED", 0)),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	var errs []error

	if c.Session.TimeoutTicks <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TIMEOUT_TICKS must be positive, got %d", c.Session.TimeoutTicks))
	}
	if c.Session.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TICK_INTERVAL must be positive, got %s", c.Session.TickInterval))
	}
	if c.Session.LoanApprovalDelay < 0 {
		errs = append(errs, fmt.Errorf("LOAN_APPROVAL_DELAY must not be negative, got %s", c.Session.LoanApprovalDelay))
	}
	if c.Security.PINHashCost < bcrypt.MinCost || c.Security.PINHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("PIN_HASH_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Security.PINHashCost))
	}
	if c.Seed.GeneratedAccounts < 0 {
		errs = append(errs, fmt.Errorf("SEED_GENERATED_ACCOUNTS must not be negative, got %d", c.Seed.GeneratedAccounts))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadEnvFiles(files ...string) {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			slog.Warn("failed to load env file", "file", file, "error", err)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
