package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json", "yaml"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validOutputs, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("output must be one of %s, got %q", strings.Join(validOutputs, "|"), c.OutputFormat))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format must be one of %s, got %q", strings.Join(validLogFormats, "|"), c.LogFormat))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	if c.Report.Enabled && strings.TrimSpace(c.Report.Path) == "" {
		errs = append(errs, errors.New("report.path is required when report.enabled is true"))
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			errs = append(errs, errors.New("extensions must not contain empty entries"))
			break
		}
	}

	return errors.Join(errs...)
}
