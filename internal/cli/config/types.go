// Package config loads querykit CLI configuration.
//
// Sources are layered with koanf, lowest precedence first: built-in
// defaults, querykit.yaml, QUERYKIT_* environment variables and flags
// set on the command line.
package config

import "runtime"

// Config holds all CLI configuration options.
type Config struct {
	// Dialects are the registry names rendered by default.
	Dialects []string `koanf:"dialects"`
	// Inline renders literals instead of placeholders.
	Inline bool `koanf:"inline"`
	// Strict fails the command on the first render error.
	Strict       bool   `koanf:"strict"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	// Concurrency caps the renders running at once.
	Concurrency int `koanf:"concurrency"`
}

// Default configuration values.
const (
	DefaultDialect = "postgres"
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix      = "QUERYKIT_"
)

// ConfigFileNames are searched, in order, when no file is given.
var ConfigFileNames = []string{"querykit.yaml", "querykit.yml"}

// DefaultConcurrency is the number of renders run at once.
func DefaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}
