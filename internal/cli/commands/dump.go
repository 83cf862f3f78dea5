package commands

import (
	"encoding/json"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlstream/internal/cli/config"
	"github.com/leapstack-labs/sqlstream/pkg/lexer"
	"github.com/leapstack-labs/sqlstream/pkg/token"
	"github.com/spf13/cobra"
)

// DumpOptions holds options for the dump command.
type DumpOptions struct {
	SkipWhitespace bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	opts := &DumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Tokenize SQL and print the token stream",
		Long: `Tokenize a SQL file (or stdin) and print every token with its type,
value, and inclusive source span. Tokens recovered from incomplete
constructs, like an unterminated comment, are marked invalid.`,
		Example: `  # Dump a file as a table
  sqlstream dump query.sql

  # Dump stdin as JSON, without whitespace and comments
  echo "SELECT 1" | sqlstream dump --skip-whitespace -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.SkipWhitespace, "skip-whitespace", false, "Hide whitespace and comment tokens")

	return cmd
}

// dumpRow is the JSON shape of one dumped token.
type dumpRow struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Start   int64  `json:"start"`
	End     int64  `json:"end"`
	Invalid bool   `json:"invalid,omitempty"`
}

func runDump(cmd *cobra.Command, args []string, opts *DumpOptions) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	lx := lexer.New(input)
	list := lx.All()

	invalid := make(map[*token.Token]bool, len(lx.Tolerant))
	for _, tol := range lx.Tolerant {
		invalid[tol.Token] = tol.Invalid
	}

	slog.Debug("tokenized input", "tokens", len(list), "invalid", len(lx.Tolerant))

	if opts.SkipWhitespace {
		list = list.WithoutWhitespace()
	}

	if cfg.Output == config.OutputJSON {
		rows := make([]dumpRow, len(list))
		for i, tok := range list {
			rows[i] = dumpRow{
				Type:    tok.Type.String(),
				Value:   tok.Value,
				Start:   tok.Start,
				End:     tok.End,
				Invalid: invalid[tok],
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.AppendHeader(table.Row{"#", "Type", "Value", "Start", "End", "Invalid"})
	for i, tok := range list {
		mark := ""
		if invalid[tok] {
			mark = "yes"
		}
		w.AppendRow(table.Row{i, tok.Type.String(), tok.Value, tok.Start, tok.End, mark})
	}
	w.Render()

	return nil
}
