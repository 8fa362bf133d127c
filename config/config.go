package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HTTP server defaults
const HTTP_ADDR = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Listings refresher defaults
const LISTINGS_REFRESHER_SCHEDULE_MINUTES = 60
const NEARBY_RADIUS_KM = 50

// Page limits
const HOME_TOP_CITIES_LIMIT = 12
const HOME_TOP_STATES_LIMIT = 16
const NEARBY_BUSINESSES_LIMIT = 3

// Site
const SITE_NAME = "ElectrolysisHairRemovalNearMe.com"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const LISTINGS_RESOURCE = "listings.json"

// Config is the runtime configuration: the defaults above, overridden by
// environment variables (optionally loaded from a .env file).
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ListingsSourceURL string
	ListingsFile      string
	RefreshInterval   time.Duration
	NearbyRadiusKm    float64

	LogLevel slog.Level
	LogJSON  bool
}

// Load reads the optional .env files and builds a Config. A missing .env is
// not an error.
func Load(envPaths ...string) *Config {
	_ = godotenv.Load(envPaths...)

	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", HTTP_ADDR),
		ShutdownTimeout:   time.Duration(getEnvAsPositiveInt("HTTP_SHUTDOWN_TIMEOUT_SECONDS", HTTP_SHUTDOWN_TIMEOUT_SECONDS)) * time.Second,
		RedisAddr:         getEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:     getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:           getEnvAsInt("REDIS_DB", REDIS_DB),
		ListingsSourceURL: getEnv("LISTINGS_SOURCE_URL", ""),
		ListingsFile:      getEnv("LISTINGS_FILE", GetResourcePath(LISTINGS_RESOURCE)),
		RefreshInterval:   time.Duration(getEnvAsPositiveInt("REFRESH_INTERVAL_MINUTES", LISTINGS_REFRESHER_SCHEDULE_MINUTES)) * time.Minute,
		NearbyRadiusKm:    getEnvAsFloat("NEARBY_RADIUS_KM", NEARBY_RADIUS_KM),
		LogLevel:          parseLevel(getEnv("LOG_LEVEL", "info")),
		LogJSON:           getEnvAsBool("LOG_JSON", false),
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

// getEnvAsPositiveInt is getEnvAsInt for durations: zero or negative values
// fall back to the default.
func getEnvAsPositiveInt(key string, fallback int) int {
	if v := getEnvAsInt(key, fallback); v > 0 {
		return v
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
