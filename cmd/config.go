package cmd

import (
	"fmt"
	"strconv"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StrictAvailability rejects cart entries for menu items marked unavailable.
	StrictAvailability bool
	// TransactionalPlacement builds an order inside one transaction instead of
	// relying on a compensating delete.
	TransactionalPlacement bool
	// BlockTerminal rejects status changes out of terminal states.
	BlockTerminal bool

	ReportSchedule        string
	WeeklyReportSchedule  string
	MonthlyReportSchedule string
	RecentOrdersLimit     int
}

// LoadConfig reads the configuration through getenv. Empty values fall back
// to defaults; values that do not parse are an error.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:              withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:                getenv("DB_HOST"),
		DBPort:                withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             withDefault(getenv("DB_SSLMODE"), "disable"),
		ReportSchedule:        withDefault(getenv("REPORT_SCHEDULE"), jobs.DefaultReportSchedule),
		WeeklyReportSchedule:  withDefault(getenv("REPORT_SCHEDULE_WEEKLY"), jobs.DefaultWeeklyReportSchedule),
		MonthlyReportSchedule: withDefault(getenv("REPORT_SCHEDULE_MONTHLY"), jobs.DefaultMonthlyReportSchedule),
	}

	var err error
	if config.StrictAvailability, err = parseBool(getenv, "ORDER_STRICT_AVAILABILITY"); err != nil {
		return Config{}, err
	}
	if config.TransactionalPlacement, err = parseBool(getenv, "ORDER_TRANSACTIONAL_PLACEMENT"); err != nil {
		return Config{}, err
	}
	if config.BlockTerminal, err = parseBool(getenv, "STATUS_BLOCK_TERMINAL"); err != nil {
		return Config{}, err
	}

	config.RecentOrdersLimit = queries.DefaultRecentOrdersLimit
	if raw := getenv("RECENT_ORDERS_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("RECENT_ORDERS_LIMIT: %w", err)
		}
		if limit < 1 || limit > queries.MaxRecentOrdersLimit {
			return Config{}, fmt.Errorf("RECENT_ORDERS_LIMIT: %d is outside 1..%d", limit, queries.MaxRecentOrdersLimit)
		}
		config.RecentOrdersLimit = limit
	}

	return config, nil
}

// ReportSchedules groups the snapshot schedules for the job manager.
func (c Config) ReportSchedules() jobs.ReportSchedules {
	return jobs.ReportSchedules{
		Daily:   c.ReportSchedule,
		Weekly:  c.WeeklyReportSchedule,
		Monthly: c.MonthlyReportSchedule,
	}
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func parseBool(getenv func(string) string, key string) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
