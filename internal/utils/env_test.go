package utils

import (
	"os"
	"testing"
)

func TestSafeEnv(t *testing.T) {
	const key = "_STRESSCHECK_TEST_SAFEENV"
	os.Unsetenv(key)
	if got := SafeEnv(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	os.Setenv(key, "value")
	if got := SafeEnv(key, "fallback"); got != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
}

func TestSafeEnvInt(t *testing.T) {
	const key = "_STRESSCHECK_TEST_SAFEENVINT"
	os.Unsetenv(key)
	if got := SafeEnvInt(key, 10); got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}
	os.Setenv(key, "25")
	if got := SafeEnvInt(key, 10); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	os.Setenv(key, "garbage")
	if got := SafeEnvInt(key, 10); got != 10 {
		t.Fatalf("expected fallback on garbage, got %d", got)
	}
	os.Setenv(key, "-3")
	if got := SafeEnvInt(key, 10); got != 10 {
		t.Fatalf("expected fallback on non-positive, got %d", got)
	}
}
