// Package model provides the data structures shared by the pipeline package and its options.
// It defines the step descriptions passed between the pipeline and its options,
// and the hooks an option implements to observe the pipeline.
package model
