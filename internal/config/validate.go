package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	c.Catalogue.Path = strings.TrimSpace(c.Catalogue.Path)
	if c.Catalogue.Path == "" {
		c.Catalogue.Path = DefaultCataloguePath
	}
	expanded, err := expandPath(c.Catalogue.Path)
	if err != nil {
		return err
	}
	c.Catalogue.Path = expanded
	return nil
}

// Validate checks the configuration for values the CLI cannot honour.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
