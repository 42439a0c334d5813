package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/retrojanet/format"
	"github.com/dhamidi/retrojanet/java"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <source file>",
		Short: "Dump the syntax tree of a .java file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			root, err := java.SyntaxTree(data)
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}

			if err := format.NewASTJSONEncoder(cmd.OutOrStdout(), data).Encode(root); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	return cmd
}
