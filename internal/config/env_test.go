package config

import (
	"os"
	"testing"
)

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset %s: %v", key, err)
	}
}

func TestGetEnv(t *testing.T) {
	// Test default value
	result := GetEnv("TEST_NONEXISTENT_VAR", "default")
	if result != "default" {
		t.Errorf("Expected 'default', got %q", result)
	}

	// Test with set value
	t.Setenv("TEST_GET_ENV", "custom")

	result = GetEnv("TEST_GET_ENV", "default")
	if result != "custom" {
		t.Errorf("Expected 'custom', got %q", result)
	}

	// Empty counts as unset
	t.Setenv("TEST_GET_ENV_EMPTY", "")

	result = GetEnv("TEST_GET_ENV_EMPTY", "default")
	if result != "default" {
		t.Errorf("Expected 'default' for empty value, got %q", result)
	}
}

func TestGetBoolEnv_Unset(t *testing.T) {
	unsetEnv(t, "TEST_NONEXISTENT_BOOL")

	for _, def := range []bool{true, false} {
		if got := GetBoolEnv("TEST_NONEXISTENT_BOOL", def); got != def {
			t.Errorf("Expected default %v, got %v", def, got)
		}
	}
}

func TestGetBoolEnv_Truthy(t *testing.T) {
	values := []string{"1", "true", "yes", "on", "TRUE", " yes ", "On", "\tON\n"}

	for _, value := range values {
		t.Setenv("TEST_BOOL_ENV", value)
		for _, def := range []bool{true, false} {
			if got := GetBoolEnv("TEST_BOOL_ENV", def); !got {
				t.Errorf("GetBoolEnv(%q, %v) = false, want true", value, def)
			}
		}
	}
}

func TestGetBoolEnv_Falsy(t *testing.T) {
	values := []string{"", "0", "false", "no", "off", "banana", "y", "t", "2", "yes please"}

	for _, value := range values {
		t.Setenv("TEST_BOOL_ENV", value)
		for _, def := range []bool{true, false} {
			if got := GetBoolEnv("TEST_BOOL_ENV", def); got {
				t.Errorf("GetBoolEnv(%q, %v) = true, want false", value, def)
			}
		}
	}
}

func TestGetIntEnv(t *testing.T) {
	// Test default value
	unsetEnv(t, "TEST_NONEXISTENT_INT")
	result := GetIntEnv("TEST_NONEXISTENT_INT", 42)
	if result != 42 {
		t.Errorf("Expected 42, got %d", result)
	}

	tests := []struct {
		value    string
		expected int
	}{
		{"123", 123},
		{"42", 42},
		{"-7", -7},
		{"+5", 5},
		{"0", 0},
		{" 90 ", 90},
		// Invalid input falls back to the default
		{"abc", 42},
		{"", 42},
		{"4.5", 42},
		{"1e3", 42},
		{"0x10", 42},
		{"99999999999999999999999", 42},
	}

	for _, tt := range tests {
		t.Setenv("TEST_INT_ENV", tt.value)
		result := GetIntEnv("TEST_INT_ENV", 42)
		if result != tt.expected {
			t.Errorf("GetIntEnv(%q) = %d, want %d", tt.value, result, tt.expected)
		}
	}
}
