// Package config holds the flags the banking core is constructed with.
//
// There is no process-wide singleton: Load (or Default) produces a value
// that callers pass into the service and observer constructors at startup.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config carries the observer flags and business bounds of the banking core.
type Config struct {
	// AuditEnabled registers the audit log observer at startup.
	AuditEnabled bool
	// EmailNotificationsEnabled turns on the simulated email side channel.
	EmailNotificationsEnabled bool
	// MaxTransactionAmount is the advisory per-transaction ceiling.
	MaxTransactionAmount decimal.Decimal
	// MinAccountBalance is the advisory balance floor.
	MinAccountBalance decimal.Decimal
	// MaxAccountBalance is the advisory balance ceiling.
	MaxAccountBalance decimal.Decimal
	// LogLevel selects the structured logger verbosity.
	LogLevel string
}

// Default returns the configuration defaults: audit on, email off.
func Default() Config {
	return Config{
		AuditEnabled:              true,
		EmailNotificationsEnabled: false,
		MaxTransactionAmount:      decimal.NewFromInt(10000),
		MinAccountBalance:         decimal.Zero,
		MaxAccountBalance:         decimal.NewFromInt(1000000),
		LogLevel:                  "info",
	}
}

// Load reads a .env file when present, then the process environment, and
// returns the resulting configuration. Unset or malformed variables keep
// their defaults.
func Load() Config {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := Default()
	cfg.AuditEnabled = getBool("BANKCORE_AUDIT_ENABLED", cfg.AuditEnabled)
	cfg.EmailNotificationsEnabled = getBool("BANKCORE_EMAIL_NOTIFICATIONS_ENABLED", cfg.EmailNotificationsEnabled)
	cfg.MaxTransactionAmount = getDecimal("BANKCORE_MAX_TRANSACTION_AMOUNT", cfg.MaxTransactionAmount)
	cfg.MinAccountBalance = getDecimal("BANKCORE_MIN_ACCOUNT_BALANCE", cfg.MinAccountBalance)
	cfg.MaxAccountBalance = getDecimal("BANKCORE_MAX_ACCOUNT_BALANCE", cfg.MaxAccountBalance)
	cfg.LogLevel = getEnv("BANKCORE_LOG_LEVEL", cfg.LogLevel)

	return cfg
}

// BuildLogger constructs the structured logger for the configured level.
func (c Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// getEnv returns the environment value for key, or fallback when unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return fallback
	}

	return parsed
}
