package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultDueDays         = 30
	defaultStaticDir       = "static" // STATIC_DIR set to "" turns static serving off
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	BasePath          string
	DatabaseURL       string
	DefaultDueDays    int
	StaticDir         string
	TranslationFolder string
	TrustedProxies    []string
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:           getEnv("APP_NAME", "todo"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AppPort:           getEnv("APP_PORT", "8080"),
		BasePath:          normalizeBasePath(os.Getenv("APP_BASE_PATH")),
		DatabaseURL:       getEnv("DATABASE_URL", "file:todo.db?_busy_timeout=5000"),
		DefaultDueDays:    parseDueDays(os.Getenv("DEFAULT_DUE_DAYS")),
		StaticDir:         getEnv("STATIC_DIR", defaultStaticDir),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		ShutdownTimeout:   parseDuration(os.Getenv("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// parseDueDays falls back to DefaultDueDays when the value is unset or not an integer.
func parseDueDays(value string) int {
	days, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return DefaultDueDays
	}
	return days
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// normalizeBasePath returns a path with a leading and trailing slash.
func normalizeBasePath(value string) string {
	value = strings.Trim(strings.TrimSpace(value), "/")
	if value == "" {
		return "/"
	}
	return "/" + value + "/"
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
