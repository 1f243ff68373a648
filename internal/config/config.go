package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Admin     AdminConfig
	Payroll   PayrollConfig
	Scheduler SchedulerConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AdminConfig seeds the bootstrap admin account at startup. Registration
// itself is admin-gated, so this is the only way the first admin exists.
type AdminConfig struct {
	Email    string
	Password string
}

// PayrollConfig holds the settlement tunables. The flat profile deduction
// and the holding day count feed the cut-group rules; RoundDecimals is the
// monetary precision every term is rounded to.
type PayrollConfig struct {
	RoundDecimals       int32
	FlatDeductionAmount decimal.Decimal
	HoldingDays         decimal.Decimal
}

type SchedulerConfig struct {
	Enabled bool
	Tick    time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "paydesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Bootstrap admin account
	config.Admin = AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", ""),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Payroll calculation configuration
	roundDecimals, err := strconv.Atoi(getEnv("ROUND_DECIMALS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROUND_DECIMALS: %w", err)
	}
	flatAmount, err := decimal.NewFromString(getEnv("FLAT_DEDUCTION_AMOUNT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid FLAT_DEDUCTION_AMOUNT: %w", err)
	}
	holdingDays, err := decimal.NewFromString(getEnv("HOLDING_DAYS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLDING_DAYS: %w", err)
	}

	config.Payroll = PayrollConfig{
		RoundDecimals:       int32(roundDecimals),
		FlatDeductionAmount: flatAmount,
		HoldingDays:         holdingDays,
	}

	// Scheduler configuration
	tick, err := time.ParseDuration(getEnv("SCHEDULER_TICK", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_TICK: %w", err)
	}
	config.Scheduler = SchedulerConfig{
		Enabled: getEnv("SCHEDULER_ENABLED", "true") == "true",
		Tick:    tick,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.Email != "" && len(c.Admin.Password) < 8 {
		return fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters when ADMIN_EMAIL is set")
	}
	if c.Payroll.RoundDecimals < 0 || c.Payroll.RoundDecimals > 6 {
		return fmt.Errorf("ROUND_DECIMALS must be between 0 and 6")
	}
	if c.Payroll.FlatDeductionAmount.IsNegative() {
		return fmt.Errorf("FLAT_DEDUCTION_AMOUNT must be non-negative")
	}
	if c.Payroll.HoldingDays.IsNegative() {
		return fmt.Errorf("HOLDING_DAYS must be non-negative")
	}
	if c.Scheduler.Tick < time.Minute {
		return fmt.Errorf("SCHEDULER_TICK must be at least 1m")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
