package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/retrojanet/convert"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const reviewNotice = "Check files before using them!"

func newRootCmd() *cobra.Command {
	var packageName string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "retrojanet <source file>",
		Short: "Convert a Retrofit service interface into Janet HTTP action classes",
		Long: `Convert a Retrofit service interface into Janet HTTP action classes.

Every method annotated with an HTTP verb becomes one <Method>Action.java file
in the output directory. Methods without a verb annotation are skipped.
Parameters that have no Janet equivalent are marked with a !!!//TODO
placeholder; review every generated file before using it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolve working directory: %w", err)
				}
				outputDir = wd
			}

			out := cmd.OutOrStdout()
			conv := convert.New(
				convert.WithPackage(packageName),
				convert.WithOutputDir(outputDir),
				convert.WithSavedHook(func(path string) {
					printSaved(out, path)
				}),
			)

			if _, err := conv.ConvertFile(args[0]); err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&packageName, "package", "p", "", "package of the generated classes (default: package of the source file)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: current directory)")

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newParseCmd())

	return cmd
}

func printSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "File %s saved\n", path)
	color.New(color.FgYellow).Fprintln(w, reviewNotice)
}
