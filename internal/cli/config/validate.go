package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/querykit/internal/cli/output"
	"github.com/leapstack-labs/querykit/pkg/dialect"
)

// Validate checks if the configuration is valid. Dialect names must be
// registered, so callers import the dialect packages first.
func (c *Config) Validate() error {
	if len(c.Dialects) == 0 {
		return errors.New("at least one dialect is required")
	}
	for _, name := range c.Dialects {
		if _, err := dialect.Lookup(name); err != nil {
			return fmt.Errorf("invalid dialects: %w", err)
		}
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
