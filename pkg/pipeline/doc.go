// Package pipeline provides a pipeline for processing data.
//
// The pipeline is a series of steps connected by channels. A root step produces elements, normal steps
// transform them and a sink consumes them. Every step runs in its own go routine, and a one-to-one step can
// run several workers concurrently.
//
// The pipeline stops on the first encountered error. The error is wrapped with the name of the step that
// produced it, and the context shared by all the steps is cancelled so that the remaining steps stop.
//
// Options implementing [model.PipelineOption] observe the pipeline while it is built and while it runs. The
// measure and drawer packages provide such options.
package pipeline
