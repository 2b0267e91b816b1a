// Package reverser writes the first line of an input, reversed, to an output.
//
// By default the input is input.txt and the output is output.txt, both relative to the
// working directory. A missing or unreadable input is read as an empty line and an
// output that cannot be written is skipped, so Run returns nil unless strict mode is set.
package reverser

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/askiada/go-linereverser/pkg/pipeline"
	"github.com/askiada/go-linereverser/pkg/pipeline/model"
	"github.com/askiada/go-linereverser/pkg/reverse"
)

const (
	readStepName    = "read input"
	reverseStepName = "reverse"
	writeStepName   = "write output"
)

type LineReverser struct {
	input        Source
	output       Destination
	unit         reverse.Unit
	strict       bool
	logger       zerolog.Logger
	pipelineOpts []model.PipelineOption
}

func New(opts ...Option) *LineReverser {
	lr := &LineReverser{
		input:  FileSource(DefaultInputPath),
		output: FileDestination(DefaultOutputPath),
		unit:   reverse.Byte,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(lr)
	}

	return lr
}

// Run reads the first line of the input, reverses it and writes it to the output.
func (lr *LineReverser) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pipe, err := pipeline.New(ctx, lr.pipelineOpts...)
	if err != nil {
		return errors.Wrap(err, "unable to create pipeline")
	}
	defer pipe.Close()

	lines, err := pipeline.AddRootStep(pipe, readStepName, lr.read)
	if err != nil {
		return errors.Wrap(err, "unable to add read step")
	}

	reversed, err := pipeline.AddStepOneToOne(pipe, reverseStepName, lines, lr.reverse)
	if err != nil {
		return errors.Wrap(err, "unable to add reverse step")
	}

	err = pipeline.AddSink(pipe, writeStepName, reversed, lr.write)
	if err != nil {
		return errors.Wrap(err, "unable to add write step")
	}

	err = pipe.Run()
	if err != nil {
		lr.logger.Error().Err(err).Msg("line reversal failed")

		return err
	}

	return nil
}

// read emits exactly one line, empty when the input could not be read in lenient mode.
func (lr *LineReverser) read(ctx context.Context, rootChan chan<- InputLine) error {
	line := ReadInput(lr.input)
	if line.Err != nil {
		if lr.strict {
			return line.Err
		}
		lr.logger.Warn().Err(line.Err).Str("input", fmt.Sprint(lr.input)).Msg("reading empty line instead")
		line.Err = nil
	}
	lr.logger.Debug().Int("bytes", len(line.Text)).Msg("line read")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case rootChan <- line:
	}

	return nil
}

func (lr *LineReverser) reverse(_ context.Context, line InputLine) (ReversedLine, error) {
	return ReversedLine(reverse.String(line.Text, lr.unit)), nil
}

func (lr *LineReverser) write(_ context.Context, line ReversedLine) error {
	err := writeOutput(lr.output, line)
	if err == nil {
		lr.logger.Debug().Int("bytes", len(line)).Msg("line written")

		return nil
	}
	if lr.strict {
		return err
	}
	lr.logger.Warn().Err(err).Str("output", fmt.Sprint(lr.output)).Msg("dropping reversed line")

	return nil
}

func writeOutput(dst Destination, line ReversedLine) (err error) {
	wc, err := dst.Create()
	if err != nil {
		return errors.Wrap(ErrOpenOutput, err.Error())
	}
	defer func() {
		closeErr := wc.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrap(ErrWriteOutput, closeErr.Error())
		}
	}()

	_, err = io.WriteString(wc, string(line))
	if err != nil {
		return errors.Wrap(ErrWriteOutput, err.Error())
	}

	return nil
}
