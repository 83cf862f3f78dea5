// Package config loads CLI configuration with layered precedence:
// defaults, then a sqlstream.yaml file, then SQLSTREAM_* environment
// variables, then command line flags.
package config

// Config holds the CLI settings.
type Config struct {
	Output  string `koanf:"output"`  // table|json
	Verbose bool   `koanf:"verbose"` // debug diagnostics on stderr
}

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Output: OutputTable}
}
