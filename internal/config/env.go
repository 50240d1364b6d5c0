package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/strsimnet/internal/logger"
)

// loadDotEnv loads .env from the working directory. Variables already set in
// the process environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

func getEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("ignoring malformed integer", "key", key, "value", value)
		return defaultValue
	}

	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logger.Warn("ignoring malformed boolean", "key", key, "value", value)
		return defaultValue
	}

	return b
}
