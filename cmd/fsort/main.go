// Command fsort sorts the fields within each line of its input.
//
//	fsort [flags] [input] [output]
//
// Input and output default to stdin and stdout, "-" selects them explicitly.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/askiada/go-fsort/pkg/fsort"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitNotSorted = 255
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and maps its outcome to an exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// cobra reads os.Args when the arguments are nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	var checkErr *fsort.CheckError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &checkErr):
		fmt.Fprintln(stderr, checkErr.Error())

		return exitNotSorted
	default:
		fmt.Fprintf(stderr, "fsort: %v\n", err)

		return exitFailure
	}
}
