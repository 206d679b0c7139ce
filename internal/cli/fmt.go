package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vk/blueprintgo/internal/app"
	"github.com/vk/blueprintgo/internal/codec"
)

func newFmtCmd(opts *rootOptions, outW, errW io.Writer) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt PATH",
		Short: "Rewrite blueprints in canonical pretty-printed form",
		Long: `fmt prints each blueprint in canonical form, or rewrites it in place with
--write. PATH is a single document, or a directory searched recursively for
*.blueprint and *.blueprint.json files (directories require --write).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandPath(args[0])
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			if len(paths) > 1 && !write {
				return &ExitError{Code: 2, Message: "formatting a directory requires --write"}
			}

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

				if write {
					if err := a.SaveDocument(ctx, path, doc); err != nil {
						return &ExitError{Code: 1, Message: err.Error()}
					}
					continue
				}
				fmt.Fprint(outW, codec.Stringify(doc))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the file instead of stdout.")
	return cmd
}
