package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Calendar CalendarConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// CalendarConfig holds the work-calendar policy settings. The values feed
// calendar.Policy and are fixed for the lifetime of the process.
type CalendarConfig struct {
	StandardHoursPerDay  int
	OvertimeMultiplier   float64
	WeekendDays          []time.Weekday
	PublicHolidays       []string // YYYY-MM-DD
	AnnualLeaveAllowance float64
}

func Load() (*Config, error) {
	// A missing .env file is fine in production where env vars are injected.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	standardHours, err := strconv.Atoi(getEnv("WORK_HOURS_PER_DAY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_HOURS_PER_DAY: %w", err)
	}

	overtimeMultiplier, err := strconv.ParseFloat(getEnv("OVERTIME_MULTIPLIER", "1.25"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_MULTIPLIER: %w", err)
	}

	annualAllowance, err := strconv.ParseFloat(getEnv("ANNUAL_LEAVE_ALLOWANCE", "26"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ANNUAL_LEAVE_ALLOWANCE: %w", err)
	}

	weekendDays, err := parseWeekendDays(getEnv("WEEKEND_DAYS", "Saturday,Sunday"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}

	config.Calendar = CalendarConfig{
		StandardHoursPerDay:  standardHours,
		OvertimeMultiplier:   overtimeMultiplier,
		WeekendDays:          weekendDays,
		PublicHolidays:       getEnvSlice("PUBLIC_HOLIDAYS"),
		AnnualLeaveAllowance: annualAllowance,
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
	if c.Calendar.StandardHoursPerDay <= 0 || c.Calendar.StandardHoursPerDay > 24 {
		return fmt.Errorf("WORK_HOURS_PER_DAY must be between 1 and 24")
	}
	if c.Calendar.OvertimeMultiplier < 1 {
		return fmt.Errorf("OVERTIME_MULTIPLIER must be at least 1")
	}
	for _, h := range c.Calendar.PublicHolidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return fmt.Errorf("PUBLIC_HOLIDAYS entry %q is not a YYYY-MM-DD date", h)
		}
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekendDays(value string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, day)
	}
	return days, nil
}
