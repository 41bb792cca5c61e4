package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/logger"
)

var ErrJWTSecretIsRequired = errors.New("JWT_SECRET must be set")

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBTimeZone string

	// DBSlowQuery is the duration above which statements are logged as slow.
	DBSlowQuery time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	Log logger.Config

	AdminName     string
	AdminEmail    string
	AdminPassword string
	SeedDemo      bool

	CORSAllowOrigins []string

	// ExportMaxRows caps a spreadsheet export.
	ExportMaxRows int
}

// ConfigFromEnv reads the configuration from the environment, falling back to
// development defaults. Only JWT_SECRET has no default.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "tms"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		Log: logger.Config{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},

		AdminName:     getEnv("ADMIN_NAME", "Administrador"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@tms.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password"),

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	var errList []error
	var err error

	if cfg.DBSlowQuery, err = getDuration("DB_SLOW_QUERY", 200*time.Millisecond); err != nil {
		errList = append(errList, err)
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 8*time.Hour); err != nil {
		errList = append(errList, err)
	}
	if cfg.SeedDemo, err = getBool("SEED_DEMO", false); err != nil {
		errList = append(errList, err)
	}
	if cfg.Log.MaxSizeMB, err = getInt("LOG_MAX_SIZE_MB", 0); err != nil {
		errList = append(errList, err)
	}
	if cfg.Log.MaxBackups, err = getInt("LOG_MAX_BACKUPS", 0); err != nil {
		errList = append(errList, err)
	}
	if cfg.Log.MaxAgeDays, err = getInt("LOG_MAX_AGE_DAYS", 0); err != nil {
		errList = append(errList, err)
	}
	if cfg.ExportMaxRows, err = getInt("EXPORT_MAX_ROWS", queries.MaxExportRows); err != nil {
		errList = append(errList, err)
	}
	if cfg.JWTSecret == "" {
		errList = append(errList, ErrJWTSecretIsRequired)
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSslMode, c.DBTimeZone,
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: %q is not a positive duration", key, raw)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: %q is not a non-negative integer", key, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
