package reverser

import (
	"io"
	"os"
)

// Source is where the input line is read from.
type Source interface {
	Open() (io.ReadCloser, error)
}

// Destination is where the reversed line is written to.
type Destination interface {
	// Create returns a writer on an empty destination, discarding any previous content.
	Create() (io.WriteCloser, error)
}

// FileSource reads from a file path, resolved against the working directory when relative.
type FileSource string

func (f FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

func (f FileSource) String() string {
	return string(f)
}

// FileDestination creates or truncates a file path.
type FileDestination string

func (f FileDestination) Create() (io.WriteCloser, error) {
	return os.OpenFile(string(f), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

func (f FileDestination) String() string {
	return string(f)
}
