package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables read by the loader,
// e.g. SQLSTREAM_OUTPUT=json.
const envPrefix = "SQLSTREAM_"

// configFileUsed tracks the file the last Load call read, for verbose
// diagnostics.
var configFileUsed string

// findConfigFile picks the config file to use.
// Priority: explicit path > sqlstream.yaml > sqlstream.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlstream.yaml", "sqlstream.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration from defaults, config file, environment,
// and the given flag set. A missing implicit config file is fine; an
// explicit one that cannot be read is an error.
func Load(explicit string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  defaults.Output,
		"verbose": defaults.Verbose,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = ""
	if path := findConfigFile(explicit); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit != "" {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		} else {
			configFileUsed = path
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Output != OutputTable && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("invalid output format %q (want %s or %s)", cfg.Output, OutputTable, OutputJSON)
	}

	return &cfg, nil
}

// FileUsed returns the config file read by the last Load call, if any.
func FileUsed() string {
	return configFileUsed
}
