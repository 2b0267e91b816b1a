package reverser

import "github.com/pkg/errors"

var (
	ErrOpenInput   = errors.New("unable to open input")
	ErrReadInput   = errors.New("unable to read input")
	ErrOpenOutput  = errors.New("unable to open output")
	ErrWriteOutput = errors.New("unable to write output")
)
