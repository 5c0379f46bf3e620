package env

import (
	"os"
	"testing"
)

func TestLookup(t *testing.T) {
	os.Setenv("SHOE_ENV_TEST", "value")
	defer os.Unsetenv("SHOE_ENV_TEST")

	got, ok := Lookup("SHOE_ENV_TEST")
	if !ok || got != "value" {
		t.Fatalf("Lookup(SHOE_ENV_TEST) = %q, %v; want %q, true", got, ok, "value")
	}

	if _, ok := Lookup("SHOE_ENV_TEST_UNSET_XYZ"); ok {
		t.Fatalf("expected unset variable to report false")
	}
}

func TestHomeNonEmpty(t *testing.T) {
	if os.Getenv("HOME") == "" && os.Getenv("USERPROFILE") == "" {
		t.Skip("no HOME/USERPROFILE in this environment")
	}
	if Home() == "" {
		t.Fatalf("expected non-empty home directory")
	}
}
