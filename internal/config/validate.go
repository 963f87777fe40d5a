package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate checks the configuration for values that cannot work at runtime.
func (c *Config) Validate() error {
	var problems []string

	if !validLogLevels[c.Logging.Level] {
		problems = append(problems, fmt.Sprintf("logging.level: unsupported value %q", c.Logging.Level))
	}
	if !validLogFormats[c.Logging.Format] {
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q", c.Logging.Format))
	}
	if c.Search.TimeoutSeconds <= 0 {
		problems = append(problems, "search.timeout_seconds: must be positive")
	}
	if c.Search.BaseURL == "" {
		problems = append(problems, "search.base_url: must not be empty")
	}
	if c.Images.ScaleWidth < 0 {
		problems = append(problems, "images.scale_width: must not be negative")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		problems = append(problems, "cache.path: required when cache is enabled")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
