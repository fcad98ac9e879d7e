package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by INTERLOCK_ENV (or .env by
// default), then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("INTERLOCK_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// AdvisoryRetention returns how long published advisories are kept.
// Defaults to 30 days if not set.
func AdvisoryRetention() time.Duration {
	d, err := time.ParseDuration(os.Getenv("ADVISORY_RETENTION"))
	if err != nil || d <= 0 {
		return 30 * 24 * time.Hour
	}
	return d
}

// RetentionSweepInterval returns how often the retention sweep runs.
// Defaults to 1 hour if not set.
func RetentionSweepInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("RETENTION_SWEEP_INTERVAL"))
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// SaturationLimit returns the clause arena cap for consistency checks.
// Defaults to 0, which lets the engine use its built-in limit.
func SaturationLimit() int {
	n, err := strconv.Atoi(os.Getenv("SATURATION_LIMIT"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
