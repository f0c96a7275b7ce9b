package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	defaultDBURL  = "mongodb://127.0.0.1/product-env-metrics"
	defaultDBName = "product-env-metrics"
	resourceName  = "product-env-metrics"
)

// Config is built once at startup and passed by value; nothing mutates it afterwards.
type Config struct {
	Port              string
	DBURL             string
	DBName            string
	APIEndpoint       string
	APIVersion        string
	StrictStatusCodes bool
	StoreDriver       string
	LogMode           string
	LogFile           string
	MetricsEnabled    bool
	ShutdownTimeout   time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() Config {
	dbURL := getEnvOrDefault("DB_URL", defaultDBURL)
	return Config{
		Port:              getEnvOrDefault("PORT", "3000"),
		DBURL:             dbURL,
		DBName:            getEnvOrDefault("DB_NAME", databaseFromURL(dbURL)),
		APIEndpoint:       getEnvOrDefault("API_ENDPOINT", "api"),
		APIVersion:        getEnvOrDefault("API_VERSION", "v1"),
		StrictStatusCodes: getBoolEnv("STRICT_STATUS_CODES", false),
		StoreDriver:       strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverMongo)),
		LogMode:           strings.ToLower(getEnvOrDefault("LOG_MODE", "development")),
		LogFile:           getEnvOrDefault("LOG_FILE", ""),
		MetricsEnabled:    getBoolEnv("METRICS_ENABLED", true),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 10, time.Second),
	}
}

// BasePath is the prefix every product route is mounted under.
func (c Config) BasePath() string {
	return "/" + strings.Trim(c.APIEndpoint, "/") + "/" + strings.Trim(c.APIVersion, "/") + "/" + resourceName
}

func (c Config) Validate() []error {
	var errs []error
	if strings.TrimSpace(c.DBURL) == "" && c.StoreDriver == DriverMongo {
		errs = append(errs, fmt.Errorf("DB_URL: cannot be empty"))
	}
	if strings.TrimSpace(c.DBName) == "" && c.StoreDriver == DriverMongo {
		errs = append(errs, fmt.Errorf("DB_NAME: cannot be empty"))
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: must be an integer between 1 and 65535"))
	}
	if c.StoreDriver != DriverMongo && c.StoreDriver != DriverMemory {
		errs = append(errs, fmt.Errorf("STORE_DRIVER: must be one of: [%s %s]", DriverMongo, DriverMemory))
	}
	if c.LogMode != "development" && c.LogMode != "production" {
		errs = append(errs, fmt.Errorf("LOG_MODE: must be one of: [development production]"))
	}
	if strings.Trim(c.APIEndpoint, "/") == "" || strings.Trim(c.APIVersion, "/") == "" {
		errs = append(errs, fmt.Errorf("API_ENDPOINT/API_VERSION: cannot be empty"))
	}
	return errs
}

// databaseFromURL returns the path segment of a mongo connection string,
// the same database the original connection string selected.
func databaseFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return defaultDBName
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return defaultDBName
	}
	return name
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
