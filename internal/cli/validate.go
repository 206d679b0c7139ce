package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/blueprintgo/internal/app"
	"github.com/vk/blueprintgo/internal/graph"
)

func newValidateCmd(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Check a blueprint's structure and graph invariants",
		Long: `validate parses and schema-checks each blueprint, then runs the graph
checks: dangling edges, entry resolution, cycles, unreachable nodes, dead ends
and missing definition references. PATH is a single document, or a directory
searched recursively for *.blueprint and *.blueprint.json files. Errors exit
1; warnings alone exit 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPath(args[0])
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}

			failed := 0
			for _, path := range paths {
				a, err := app.New(errW, app.Config{
					Path:      path,
					LogLevel:  opts.logLevel,
					LogFormat: opts.logFormat,
				})
				if err != nil {
					return &ExitError{Code: 2, Message: err.Error()}
				}
				ctx := a.Context(cmd.Context())

				doc, err := a.LoadDocument(ctx)
				if err != nil {
					return &ExitError{Code: 1, Message: err.Error()}
				}

				report := graph.Validate(doc)
				printDiagnostics(outW, report)

				if !report.OK {
					failed++
					fmt.Fprintf(outW, "%s: %d error(s)\n", path, len(report.Errors))
					continue
				}
				fmt.Fprintf(outW, "%s: ok (%d warning(s))\n", path, len(report.Warnings))
			}

			if failed > 0 {
				return &ExitError{
					Code:    1,
					Message: fmt.Sprintf("%d of %d document(s) failed validation", failed, len(paths)),
				}
			}
			return nil
		},
	}
}

// printDiagnostics renders a report with errors first, matching the order
// callers act on them.
func printDiagnostics(w io.Writer, report graph.Report) {
	for _, d := range report.Errors {
		fmt.Fprintf(w, "error   %-26s %s\n", d.Kind, d.Message)
	}
	for _, d := range report.Warnings {
		fmt.Fprintf(w, "warning %-26s %s\n", d.Kind, d.Message)
	}
}
