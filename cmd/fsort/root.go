package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-fsort/internal/config"
	"github.com/askiada/go-fsort/pkg/fsort"
	"github.com/askiada/go-fsort/pkg/fsort/drawer"
	"github.com/askiada/go-fsort/pkg/fsort/measure"
	"github.com/askiada/go-fsort/pkg/fsort/model"
)

const version = "0.1.0"

const stdStream = "-"

type rootFlags struct {
	delim      string
	whiteSpace bool
	foldCase   bool
	numeric    bool
	reverse    bool
	check      bool
	configPath string
	reportPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fsort [flags] [input] [output]",
		Short:         "Sort fields within each line",
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.delim, "delim", "d", string(fsort.DefaultDelimiter), "field delimiter character")
	f.BoolVarP(&flags.whiteSpace, "white-space", "w", false, "separate fields by white space, -d sets the output delimiter")
	f.BoolVarP(&flags.foldCase, "fold-case", "f", false, "fold to upper case when comparing")
	f.BoolVarP(&flags.numeric, "numeric", "n", false, "compare according to numerical value (reserved, no effect)")
	f.BoolVarP(&flags.reverse, "reverse", "r", false, "reverse the result of comparisons")
	f.BoolVarP(&flags.check, "check", "c", false, "check each line is sorted")
	f.StringVar(&flags.configPath, "config", "", "TOML config file, defaults to $"+config.EnvPath)
	f.StringVar(&flags.reportPath, "report", "", "write a DOT graph of the stage timings to this file")

	return cmd
}

// options resolves the defaults, the config file and the flags set on the command line, in that order.
func (rf *rootFlags) options(cmd *cobra.Command) (fsort.Options, error) {
	opts, err := config.Load(config.Path(rf.configPath))
	if err != nil {
		return opts, err
	}

	f := cmd.Flags()
	if f.Changed("delim") {
		opts.Delimiter, err = config.ParseDelimiter(rf.delim)
		if err != nil {
			return opts, err
		}
	}
	if f.Changed("white-space") {
		opts.Whitespace = rf.whiteSpace
	}
	if f.Changed("fold-case") {
		opts.FoldCase = rf.foldCase
	}
	if f.Changed("numeric") {
		opts.Numeric = rf.numeric
	}
	if f.Changed("reverse") {
		opts.Reverse = rf.reverse
	}
	if f.Changed("check") {
		opts.Check = rf.check
	}

	return opts, nil
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) (err error) {
	opts, err := flags.options(cmd)
	if err != nil {
		return err
	}

	var hooks []model.DriverHook
	if flags.reportPath != "" {
		msr := measure.NewDefaultMeasure()
		hooks = append(hooks,
			measure.DriverMeasure(msr),
			drawer.DriverDrawer(drawer.NewDOTDrawer(flags.reportPath), msr),
		)
	}

	drv, err := fsort.NewDriver(opts, hooks...)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(cmd, argAt(args, 0))
	if err != nil {
		return err
	}
	defer closeInput()

	// Check mode never writes, so the output file is left untouched.
	var output io.Writer
	if !opts.Check {
		var closeOutput func() error
		output, closeOutput, err = createOutput(cmd, argAt(args, 1))
		if err != nil {
			return err
		}
		defer func() {
			closeErr := closeOutput()
			if err == nil && closeErr != nil {
				err = errors.Wrap(closeErr, "unable to close output")
			}
		}()
	}

	return drv.Run(cmd.Context(), input, output)
}

func argAt(args []string, idx int) string {
	if idx < len(args) {
		return args[idx]
	}

	return stdStream
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == stdStream {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open input")
	}

	return file, func() { _ = file.Close() }, nil
}

func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == stdStream {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create output")
	}

	return file, file.Close, nil
}
