// Package main is the roster admin CLI. It operates on the configured member
// store through the same service as the web server, so names are validated
// identically.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(stderr, "Error:", ee.msg)
			return ee.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
	return exitOK
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "roster",
		Short:         "Manage the member roster",
		Long:          "roster lists, adds, renames and removes members in the configured store, and migrates the Postgres schema.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.profile, "profile", defaultProfile(), "Config profile (local, dev, prod); defaults to $APP_PROFILE")
	f.StringVar(&opts.configDir, "config-dir", "configs", "Directory holding base.yaml and the profile files")
	f.BoolVar(&opts.verbose, "verbose", false, "Log store operations to stderr")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newRenameCmd(opts),
		newRemoveCmd(opts),
		newMigrateCmd(opts),
	)
	return root
}

func defaultProfile() string {
	if p := os.Getenv("APP_PROFILE"); p != "" {
		return p
	}
	return "local"
}
