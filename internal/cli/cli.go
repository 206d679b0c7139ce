package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vk/blueprintgo/internal/fsutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// rootOptions holds flag values shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCmd builds the blueprint command tree. Command output goes to outW;
// logs go to errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "blueprint",
		Short: "Inspect and edit app blueprint documents",
		Long: `blueprint works with app blueprint documents: navigation/access-control
graphs persisted as JSON. It validates their structure, enumerates routes,
normalizes formatting and steps a session through the graph interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info",
		"Logging level: 'debug', 'info', 'warn' or 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text",
		"Log output format: 'text' or 'json'.")

	root.AddCommand(
		newValidateCmd(opts, outW, errW),
		newRoutesCmd(opts, outW, errW),
		newFmtCmd(opts, outW, errW),
		newDebugCmd(opts, outW, errW),
	)

	return root
}

// expandPath resolves a PATH argument into concrete blueprint files: a file
// argument is taken as-is, a directory is searched recursively for documents
// following the blueprint naming convention.
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindBlueprints(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no blueprint documents under %s", path)
	}
	return files, nil
}
