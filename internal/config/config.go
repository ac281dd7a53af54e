package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"trip-planner-service/internal/domain"
)

// Get returns the value of the environment variable, or the fallback
// when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadStayTimes reads per-category stay-time overrides from a YAML file
// mapping category names to minutes, and installs them as the active
// stay table. A missing file is not an error; the built-in defaults stay
// in effect.
func LoadStayTimes(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stay times: read %q: %w", path, err)
	}

	var minutes map[string]int
	if err := yaml.Unmarshal(raw, &minutes); err != nil {
		return fmt.Errorf("load stay times: parse %q: %w", path, err)
	}

	overrides := make(map[domain.Category]time.Duration, len(minutes))
	for name, m := range minutes {
		if m < 0 {
			return fmt.Errorf("load stay times: category %q: negative minutes %d", name, m)
		}
		overrides[domain.Category(name)] = time.Duration(m) * time.Minute
	}

	domain.SetStayTimeOverrides(overrides)
	return nil
}
