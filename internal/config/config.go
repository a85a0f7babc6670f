package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string
	DbMigrate bool

	Log      string
	LogLevel string
	Env      string // dev|prod

	Storage string // postgres|memory

	SearchCaseSensitive bool
	SearchLimit         int

	CORSOrigins []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует: чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	searchLimit, err := strconv.Atoi(def(os.Getenv("SEARCH_LIMIT"), "20"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_LIMIT: %w", err)
	}
	caseSensitive, err := strconv.ParseBool(def(os.Getenv("SEARCH_CASE_SENSITIVE"), "false"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_CASE_SENSITIVE: %w", err)
	}
	migrate, err := strconv.ParseBool(def(os.Getenv("DB_MIGRATE"), "true"))
	if err != nil {
		return nil, fmt.Errorf("DB_MIGRATE: %w", err)
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),
		DbMigrate: migrate,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		Storage: strings.ToLower(def(os.Getenv("STORAGE"), StoragePostgres)),

		SearchCaseSensitive: caseSensitive,
		SearchLimit:         searchLimit,

		CORSOrigins: splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	switch c.Storage {
	case StoragePostgres:
		// Критичные: БД
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	case StorageMemory:
		warnings = append(warnings, "STORAGE=memory, data is lost on restart")
	default:
		return nil, fmt.Errorf("unknown STORAGE %q (postgres|memory)", c.Storage)
	}

	if c.SearchLimit <= 0 {
		warnings = append(warnings, "SEARCH_LIMIT is not positive, search results are not capped")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
