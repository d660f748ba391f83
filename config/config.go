package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Static    StaticConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Metrics   MetricsConfig
	App       AppConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// DataConfig locates the static documents served by the API.
type DataConfig struct {
	Dir           string
	ProjectsFile  string
	CompaniesFile string
	CheckSchedule string
}

type StaticConfig struct {
	PublicDir      string
	ClientBuildDir string
	DevClientURL   string
}

type CORSConfig struct {
	// AllowedOrigins empty means every origin is allowed.
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	PreferencesTTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

type AppConfig struct {
	ServiceName string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5001"),
			ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Data: DataConfig{
			Dir:           getEnv("DATA_DIR", "./data"),
			ProjectsFile:  getEnv("PROJECTS_FILE", "projects.json"),
			CompaniesFile: getEnv("COMPANIES_FILE", "companies.json"),
			CheckSchedule: os.Getenv("DATA_CHECK_SCHEDULE"),
		},
		Static: StaticConfig{
			PublicDir:      getEnv("PUBLIC_DIR", "./public/static"),
			ClientBuildDir: os.Getenv("CLIENT_BUILD_DIR"),
			DevClientURL:   getEnv("DEV_CLIENT_URL", "http://localhost:3000"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Redis: RedisConfig{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             getEnvAsInt("REDIS_DB", 0),
			PreferencesTTL: time.Duration(getEnvAsInt("PREFERENCES_TTL_HOURS", 720)) * time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		App: AppConfig{
			ServiceName: getEnv("SERVICE_NAME", "portfolio-api"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if _, ok := os.LookupEnv("DATA_CHECK_SCHEDULE"); !ok {
		cfg.Data.CheckSchedule = "@every 5m"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.Data.ProjectsFile == "" || c.Data.CompaniesFile == "" {
		return fmt.Errorf("PROJECTS_FILE and COMPANIES_FILE are required")
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}

	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
