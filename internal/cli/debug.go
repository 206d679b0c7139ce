package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/blueprintgo/internal/access"
	"github.com/vk/blueprintgo/internal/app"
	"github.com/vk/blueprintgo/internal/session"
	"github.com/vk/blueprintgo/internal/tui"
)

func newDebugCmd(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	var roles []string
	var hclGates bool

	cmd := &cobra.Command{
		Use:   "debug FILE",
		Short: "Step a session through a blueprint interactively",
		Long: `debug opens an interactive stepper. Each step follows the first outgoing
edge from the current node and shows whether the session's roles passed the
access gates along the way.`,
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

			ev := access.New()
			if hclGates {
				ev = access.NewWithExpressions(access.HCLEvaluator{})
			}
			sess := session.Context{Roles: roles}

			if err := tui.Run(doc, sess, ev); err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&roles, "role", nil, "Role held by the debugged session (repeatable).")
	cmd.Flags().BoolVar(&hclGates, "hcl-gates", false,
		"Interpret gate expressions as HCL instead of the literal placeholder semantics.")
	return cmd
}
