package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// JWTConfig holds the token-verification settings. This service does not
// issue credentials itself; tokens come from the company identity provider
// signed with the shared secret.
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// PayrollConfig carries the compensation constants that used to live as
// ambient env reads: the monthly-hours divisor behind salary_per_hour, the
// attendance-bonus rule parameters and the referral-notification owner.
type PayrollConfig struct {
	MonthlyHours          int
	AttendanceTarget      int
	AttendanceBonusAmount decimal.Decimal
	ReferralPaidCycles    int
	OwnerEmail            string
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASS", ""),
		From:     getEnv("MAIL_FROM", "no-reply@leo-edge.example"),
		FromName: getEnv("MAIL_FROM_NAME", "HR & Payroll"),
	}

	monthlyHours, err := strconv.Atoi(getEnv("PAYROLL_MONTHLY_HOURS", "180"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MONTHLY_HOURS: %w", err)
	}
	attendanceTarget, err := strconv.Atoi(getEnv("ATTENDANCE_BONUS_TARGET", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_BONUS_TARGET: %w", err)
	}
	bonusAmount, err := decimal.NewFromString(getEnv("ATTENDANCE_BONUS_AMOUNT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_BONUS_AMOUNT: %w", err)
	}
	referralCycles, err := strconv.Atoi(getEnv("REFERRAL_PAID_CYCLES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFERRAL_PAID_CYCLES: %w", err)
	}

	config.Payroll = PayrollConfig{
		MonthlyHours:          monthlyHours,
		AttendanceTarget:      attendanceTarget,
		AttendanceBonusAmount: bonusAmount,
		ReferralPaidCycles:    referralCycles,
		OwnerEmail:            getEnv("OWNER_EMAIL", ""),
	}

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
	if c.Payroll.MonthlyHours <= 0 {
		return fmt.Errorf("PAYROLL_MONTHLY_HOURS must be positive")
	}
	if c.Payroll.AttendanceTarget <= 0 {
		return fmt.Errorf("ATTENDANCE_BONUS_TARGET must be positive")
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
