package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/sqlstream/internal/cli/config"
	"github.com/spf13/cobra"
)

// cfg is the configuration the root command loaded before running a
// subcommand. Commands constructed without the root (tests) fall back to
// the defaults.
var cfg = config.Default()

// SetConfig installs the loaded configuration for subsequent commands.
func SetConfig(c *config.Config) {
	cfg = c
}

// readInput reads the SQL to process: the named file, or stdin when the
// argument is missing or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
