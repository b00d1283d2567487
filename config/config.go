package config

import (
	"os"
	"strconv"
	"strings"
)

// Service configuration. The data sheets are served either from a local
// directory baked into the image (DATA_DIR) or from a static file host
// (DATA_BASE_URL); when both are set the local directory wins.

func GetPort() string {
	return getEnvWithDefault("PORT", "8080")
}

func GetDataDir() string {
	return os.Getenv("DATA_DIR")
}

func GetDataBaseURL() string {
	return getEnvWithDefault("DATA_BASE_URL", "http://localhost:3000")
}

func GetAllowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"https://keralamap.bjpmission2025.in",
		"https://www.keralamap.bjpmission2025.in",
	}
}

// GetReportCacheMinutes controls how long resolved report bundles stay
// cached before being rebuilt on demand.
func GetReportCacheMinutes() int {
	return getEnvAsInt("REPORT_CACHE_MINUTES", 5)
}

// GetCORSDebug enables the verbose CORS request logging middleware.
func GetCORSDebug() bool {
	return getEnvAsBool("CORS_DEBUG", false)
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
