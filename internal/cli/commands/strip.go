package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlstream/pkg/lexer"
	"github.com/leapstack-labs/sqlstream/pkg/token"
	"github.com/spf13/cobra"
)

// StripOptions holds options for the strip command.
type StripOptions struct {
	Collapse bool
}

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	opts := &StripOptions{}

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove comments from SQL",
		Long: `Tokenize a SQL file (or stdin), replace every comment with a single
space, trim the ends, and print the reconstructed text. With --collapse,
whitespace runs are also folded into single spaces.`,
		Example: `  # Strip comments from a file
  sqlstream strip query.sql

  # Normalize whitespace too
  sqlstream strip --collapse query.sql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Collapse, "collapse", false, "Collapse whitespace runs into single spaces")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, opts *StripOptions) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	list := lexer.Tokenize(input)
	stripped := 0
	for {
		idx := list.IndexOfType(token.Comment)
		if idx < 0 {
			break
		}
		list.Replace(idx, 1, token.New(token.Space, " "))
		stripped++
	}

	if opts.Collapse {
		collapseWhitespace(&list)
	}
	list.Trim()

	slog.Debug("stripped comments", "comments", stripped, "tokens", len(list))

	fmt.Fprintln(cmd.OutOrStdout(), list.Detokenize())
	return nil
}

// collapseWhitespace folds adjacent whitespace tokens and multi-character
// space runs into single-space tokens.
func collapseWhitespace(list *token.List) {
	for i := 0; i < len(*list); i++ {
		if !(*list)[i].IsWhitespace() {
			continue
		}
		run := 1
		for i+run < len(*list) && (*list)[i+run].IsWhitespace() {
			run++
		}
		if run > 1 || (*list)[i].Value != " " {
			list.Replace(i, run, token.New(token.Space, " "))
		}
	}
}
