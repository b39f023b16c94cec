package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getStringEnv(key string, defaultValue string) string {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getDurationEnv reads either a bare number, taken in unit, or a Go duration
// string such as "1m30s". Every duration here feeds a ticker, timeout or TTL, so
// zero and negative values fall back to the default.
func getDurationEnv(key string, defaultValue, unit time.Duration) time.Duration {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if n, convErr := strconv.Atoi(value); convErr == nil {
		d, err = time.Duration(n)*unit, nil
	}
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
