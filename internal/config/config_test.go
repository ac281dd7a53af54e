package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
)

func TestGet(t *testing.T) {
	t.Setenv("TRIP_TEST_KEY", "set")
	if got := Get("TRIP_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("got %q, want %q", got, "set")
	}

	if got := Get("TRIP_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want %q", got, "fallback")
	}
}

func TestLoadStayTimes(t *testing.T) {
	original := domain.AverageStayTime([]domain.Category{domain.CategoryZoo})
	defer domain.SetStayTimeOverrides(map[domain.Category]time.Duration{domain.CategoryZoo: original})

	path := filepath.Join(t.TempDir(), "stay_times.yaml")
	if err := os.WriteFile(path, []byte("ZOO: 240\n"), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	if err := LoadStayTimes(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := domain.AverageStayTime([]domain.Category{domain.CategoryZoo}); got != 4*time.Hour {
		t.Fatalf("zoo stay = %v, want %v", got, 4*time.Hour)
	}
}

func TestLoadStayTimesMissingFile(t *testing.T) {
	if err := LoadStayTimes(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}

func TestLoadStayTimesRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stay_times.yaml")
	if err := os.WriteFile(path, []byte("ZOO: -5\n"), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	if err := LoadStayTimes(path); err == nil {
		t.Fatal("expected error for negative minutes")
	}
}
