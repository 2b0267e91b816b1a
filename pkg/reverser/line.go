package reverser

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// InputLine is the first line of the input, without its terminator.
// Text is empty whenever Err is set.
type InputLine struct {
	Text string
	Err  error
}

// ReversedLine is an InputLine read back to front.
type ReversedLine string

// ReadFirstLine reads r up to the first '\n', or to the end of r if there is none.
// The '\n' is dropped; a '\r' before it is kept.
func ReadFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	switch {
	case err == nil:
		return line[:len(line)-1], nil
	case errors.Is(err, io.EOF):
		return line, nil
	default:
		return "", err
	}
}

// ReadInput opens src and reads its first line.
// A failure is reported in the returned InputLine instead of as an error.
func ReadInput(src Source) InputLine {
	rc, err := src.Open()
	if err != nil {
		return InputLine{Err: errors.Wrap(ErrOpenInput, err.Error())}
	}
	defer rc.Close()

	text, err := ReadFirstLine(rc)
	if err != nil {
		return InputLine{Err: errors.Wrap(ErrReadInput, err.Error())}
	}

	return InputLine{Text: text}
}
