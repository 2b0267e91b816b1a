package reverser

import (
	"github.com/rs/zerolog"

	"github.com/askiada/go-linereverser/pkg/pipeline/model"
	"github.com/askiada/go-linereverser/pkg/reverse"
)

const (
	DefaultInputPath  = "input.txt"
	DefaultOutputPath = "output.txt"
)

type Option func(lr *LineReverser)

func WithInput(src Source) Option {
	return func(lr *LineReverser) {
		lr.input = src
	}
}

func WithOutput(dst Destination) Option {
	return func(lr *LineReverser) {
		lr.output = dst
	}
}

func WithInputPath(path string) Option {
	return WithInput(FileSource(path))
}

func WithOutputPath(path string) Option {
	return WithOutput(FileDestination(path))
}

func WithUnit(unit reverse.Unit) Option {
	return func(lr *LineReverser) {
		lr.unit = unit
	}
}

// WithStrict makes Run return resource faults instead of absorbing them.
func WithStrict(strict bool) Option {
	return func(lr *LineReverser) {
		lr.strict = strict
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(lr *LineReverser) {
		lr.logger = logger
	}
}

// WithPipelineOptions attaches options such as a measure or a drawer to the pipeline built by Run.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(lr *LineReverser) {
		lr.pipelineOpts = append(lr.pipelineOpts, opts...)
	}
}
