package main

import (
	"fmt"

	"github.com/dhamidi/retrojanet/convert"
	"github.com/dhamidi/retrojanet/format"
	"github.com/dhamidi/retrojanet/java"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var planFormat string
	var packageName string

	cmd := &cobra.Command{
		Use:   "plan <source file>",
		Short: "Print the action classes a conversion would write, without writing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := java.CompilationUnitFromFile(args[0])
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}

			out := cmd.OutOrStdout()
			var enc format.Encoder
			switch planFormat {
			case "line":
				enc = format.NewLineEncoder(out)
			case "java":
				enc = format.NewJavaEncoder(out)
			case "json":
				enc = format.NewJSONEncoder(out)
			default:
				return fmt.Errorf("unknown format: %s (expected line, java, or json)", planFormat)
			}

			for _, decl := range convert.New(convert.WithPackage(packageName)).Plan(unit) {
				if err := enc.Encode(decl); err != nil {
					return fmt.Errorf("encode %s: %w", planFormat, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&planFormat, "format", "f", "line", "output format (line, java, json)")
	cmd.Flags().StringVarP(&packageName, "package", "p", "", "package of the generated classes (default: package of the source file)")

	return cmd
}
