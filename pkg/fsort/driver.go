package fsort

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-fsort/pkg/fsort/model"
)

// Driver runs a Processor over a stream of lines.
type Driver struct {
	opts  Options
	proc  *Processor
	hooks []model.DriverHook

	read, process, write *model.StageInfo
}

// NewDriver validates opts and prepares the hooks for the stages the run will use.
func NewDriver(opts Options, hooks ...model.DriverHook) (*Driver, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	drv := &Driver{
		opts:  opts,
		proc:  NewProcessor(opts),
		hooks: hooks,
		read:  &model.StageInfo{Name: model.ReadStageName},
	}
	links := [][2]*model.StageInfo{}
	if opts.Check {
		drv.process = &model.StageInfo{Name: model.CheckStageName}
		links = append(links,
			[2]*model.StageInfo{model.StartStage, drv.read},
			[2]*model.StageInfo{drv.read, drv.process},
			[2]*model.StageInfo{drv.process, model.EndStage},
		)
	} else {
		drv.process = &model.StageInfo{Name: model.SortStageName}
		drv.write = &model.StageInfo{Name: model.WriteStageName}
		links = append(links,
			[2]*model.StageInfo{model.StartStage, drv.read},
			[2]*model.StageInfo{drv.read, drv.process},
			[2]*model.StageInfo{drv.process, drv.write},
			[2]*model.StageInfo{drv.write, model.EndStage},
		)
	}

	for _, hook := range hooks {
		err := hook.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to initialise driver hook")
		}
		for _, link := range links {
			err := hook.PrepareStage(link[0], link[1])
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare stage %s", link[1].Name)
			}
		}
	}

	return drv, nil
}

// Options returns the options the driver was built with.
func (d *Driver) Options() Options {
	return d.opts
}

// Run processes r line by line. In sort mode every line is written to w followed by a line feed. In check mode
// nothing is written, w may be nil, and Run returns a *CheckError for the first line that is not sorted without
// reading any further.
//
// Line numbers start at 1. A last line without a trailing line feed is processed like any other.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) (err error) {
	if r == nil {
		return ErrReaderMustBeSet
	}
	if w == nil && !d.opts.Check {
		return ErrWriterMustBeSet
	}

	startTime := time.Now()
	defer func() {
		finishErr := d.finish(time.Since(startTime))
		if err == nil {
			err = finishErr
		}
	}()

	var bw *bufio.Writer
	if w != nil {
		bw = bufio.NewWriter(w)
		defer func() {
			flushErr := bw.Flush()
			if err == nil && flushErr != nil {
				err = errors.Wrap(flushErr, "unable to flush output")
			}
		}()
	}

	return d.run(ctx, bufio.NewReader(r), bw)
}

func (d *Driver) run(ctx context.Context, br *bufio.Reader, bw *bufio.Writer) error {
	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped before line %d", number)
		}

		start := time.Now()
		text, ok, err := readLine(br)
		if err != nil {
			return errors.Wrapf(err, "unable to read line %d", number)
		}
		if !ok {
			return nil
		}
		err = d.emit(model.StartStage, d.read, time.Since(start))
		if err != nil {
			return err
		}

		start = time.Now()
		out, err := d.proc.Process(Line{Number: number, Text: text})
		if err != nil {
			return err
		}
		err = d.emit(d.read, d.process, time.Since(start))
		if err != nil {
			return err
		}

		if d.opts.Check {
			continue
		}

		start = time.Now()
		_, err = bw.WriteString(out)
		if err == nil {
			err = bw.WriteByte('\n')
		}
		if err != nil {
			return errors.Wrapf(err, "unable to write line %d", number)
		}
		err = d.emit(d.process, d.write, time.Since(start))
		if err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. ok is false once the input is exhausted.
func readLine(br *bufio.Reader) (line string, ok bool, err error) {
	line, err = br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}

		return line, true, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true, nil
}

func (d *Driver) emit(parent, stage *model.StageInfo, elapsed time.Duration) error {
	for _, hook := range d.hooks {
		err := hook.OnStageOutput(parent, stage, elapsed)
		if err != nil {
			return errors.Wrapf(err, "unable to run hook on stage %s", stage.Name)
		}
	}

	return nil
}

func (d *Driver) finish(total time.Duration) error {
	for _, hook := range d.hooks {
		err := hook.Finish(total)
		if err != nil {
			return errors.Wrap(err, "unable to finish driver hook")
		}
	}

	return nil
}
