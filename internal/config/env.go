package config

import (
	"os"
	"strconv"
	"strings"
)

// truthyValues is the complete set of values GetBoolEnv treats as true.
// Anything else, including "y" and "t", is false.
var truthyValues = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"on":   {},
}

// GetEnv returns the environment variable value or a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolEnv returns a boolean environment variable or a default.
// A set variable is true only if it trims and lowercases to one of
// "1", "true", "yes" or "on"; every other value, empty included, is false.
func GetBoolEnv(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	_, truthy := truthyValues[strings.ToLower(strings.TrimSpace(value))]
	return truthy
}

// GetIntEnv returns an integer environment variable or a default.
// Values that do not parse as a base-10 integer fall back to the default.
func GetIntEnv(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	intVal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return intVal
}

// isSet reports whether the environment variable is present at all.
func isSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
