// Command linereverser writes the first line of input.txt, reversed, to output.txt.
//
// Without flags it reads nothing but those two files, prints nothing and always exits 0.
// Flags and an optional YAML file change the paths, the reversal unit and the
// reporting; -strict makes resource faults exit 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/askiada/go-linereverser/internal/config"
	"github.com/askiada/go-linereverser/pkg/pipeline/drawer"
	"github.com/askiada/go-linereverser/pkg/pipeline/measure"
	"github.com/askiada/go-linereverser/pkg/pipeline/model"
	"github.com/askiada/go-linereverser/pkg/reverser"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("linereverser", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to an optional YAML configuration file")
	input := fs.String("input", reverser.DefaultInputPath, "file whose first line is reversed")
	output := fs.String("output", reverser.DefaultOutputPath, "file receiving the reversed line")
	unit := fs.String("unit", "byte", "reversal unit: byte, rune or cluster")
	strict := fs.Bool("strict", false, "exit 1 when the input or the output cannot be used")
	logLevel := fs.String("log-level", zerolog.Disabled.String(), "stderr log level")
	graph := fs.String("graph", "", "write a Graphviz DOT description of the run to this file")
	withMeasure := fs.Bool("measure", false, "log step durations")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "output":
			cfg.Output = *output
		case "unit":
			cfg.Unit = *unit
		case "strict":
			cfg.Strict = *strict
		case "log-level":
			cfg.LogLevel = *logLevel
		case "graph":
			cfg.Graph = *graph
		case "measure":
			cfg.Measure = *withMeasure
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2
	}

	return execute(context.Background(), cfg)
}

func execute(ctx context.Context, cfg *config.Config) int {
	level, _ := cfg.Level()
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	unit, _ := cfg.ReverseUnit()

	var msr *measure.DefaultMeasure
	var pipeOpts []model.PipelineOption
	if cfg.Measure {
		msr = measure.NewDefaultMeasure()
		pipeOpts = append(pipeOpts, measure.PipelineMeasure(msr))
	}
	if cfg.Graph != "" {
		var m measure.Measure
		if msr != nil {
			m = msr
		}
		pipeOpts = append(pipeOpts, drawer.PipelineDrawer(drawer.NewDOTDrawer(cfg.Graph), m))
	}

	lr := reverser.New(
		reverser.WithInputPath(cfg.Input),
		reverser.WithOutputPath(cfg.Output),
		reverser.WithUnit(unit),
		reverser.WithStrict(cfg.Strict),
		reverser.WithLogger(logger),
		reverser.WithPipelineOptions(pipeOpts...),
	)

	err := lr.Run(ctx)
	if msr != nil {
		logMeasure(logger, msr)
	}
	if err != nil && cfg.Strict {
		return 1
	}

	return 0
}

func logMeasure(logger zerolog.Logger, msr *measure.DefaultMeasure) {
	for _, name := range msr.StepNames() {
		mt := msr.GetMetric(name)
		event := logger.Debug().
			Str("step", name).
			Int64("total", mt.Total()).
			Dur("avg", mt.AVGDuration()).
			Dur("end", mt.GetTotalDuration())
		for input, info := range mt.AVGTransportDuration() {
			event = event.Dur("from "+input, info.Elapsed)
		}
		event.Msg("step measure")
	}
}
