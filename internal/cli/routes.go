package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/blueprintgo/internal/app"
	"github.com/vk/blueprintgo/internal/graph"
)

func newRoutesCmd(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	var fromNodeID string

	cmd := &cobra.Command{
		Use:   "routes FILE",
		Short: "Enumerate structural routes through a blueprint",
		Long: `routes lists every simple path from the entry node (or --from) to the
edges of the graph. Access-gate semantics are ignored; this is structural
reachability only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(errW, app.Config{
				Path:      args[0],
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

			routes := graph.Routes(doc, fromNodeID)
			if len(routes) == 0 {
				fmt.Fprintln(outW, "no routes")
				return nil
			}
			for _, route := range routes {
				fmt.Fprintln(outW, formatRoute(route))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromNodeID, "from", "", "Node id to start from instead of the entry node.")
	return cmd
}

func formatRoute(route []graph.RouteStep) string {
	parts := make([]string, len(route))
	for i, step := range route {
		label := step.Label
		if label == "" {
			label = step.NodeID
		}
		parts[i] = fmt.Sprintf("%s (%s)", label, step.Type)
	}
	return strings.Join(parts, " -> ")
}
