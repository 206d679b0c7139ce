package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/blueprintgo/internal/cli"
)

// main is the entrypoint for the blueprint application.
func main() {
	// Use a minimal logger until a command configures the full one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	root := cli.NewRootCmd(outW, errW)
	root.SetArgs(args)
	return root.Execute()
}
