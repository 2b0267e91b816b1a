package reverser_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-linereverser/pkg/pipeline/model"
)

type stringSource string

func (s stringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

type failingSource struct{}

func (failingSource) Open() (io.ReadCloser, error) {
	return nil, os.ErrPermission
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

type brokenSource struct{}

func (brokenSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(failingReader{}), nil
}

type bufferDestination struct {
	buf    bytes.Buffer
	closed bool
}

func (b *bufferDestination) Create() (io.WriteCloser, error) {
	b.buf.Reset()

	return b, nil
}

func (b *bufferDestination) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *bufferDestination) Close() error {
	b.closed = true

	return nil
}

type failingDestination struct{}

func (failingDestination) Create() (io.WriteCloser, error) {
	return nil, os.ErrPermission
}

// faultyDestination opens fine, then fails on Write when writeErr is set and on Close when closeErr is set.
type faultyDestination struct {
	writeErr error
	closeErr error
	closed   bool
}

func (f *faultyDestination) Create() (io.WriteCloser, error) {
	return f, nil
}

func (f *faultyDestination) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}

	return len(p), nil
}

func (f *faultyDestination) Close() error {
	f.closed = true

	return f.closeErr
}

// sinkRefusal rejects the sink while the pipeline is being assembled.
type sinkRefusal struct{}

func (sinkRefusal) New() error                                                  { return nil }
func (sinkRefusal) PrepareStep(_, _ *model.StepInfo) error                      { return nil }
func (sinkRefusal) OnStepOutput(_, _ *model.StepInfo, _, _ time.Duration) error { return nil }
func (sinkRefusal) PrepareSink(_, _ *model.StepInfo) error                      { return os.ErrInvalid }
func (sinkRefusal) OnSinkOutput(_, _ *model.StepInfo, _, _ time.Duration) error { return nil }
func (sinkRefusal) AfterSink(_ *model.StepInfo, _ time.Duration) error          { return nil }
func (sinkRefusal) Finish() error                                               { return nil }

// chdir moves the test into a fresh directory, holding input as input.txt unless input is nil.
func chdir(t *testing.T, input *string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	if input != nil {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte(*input), 0o600))
	}

	return dir
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()

	got, err := os.ReadFile(filepath.Join(dir, "output.txt"))
	require.NoError(t, err)

	return string(got)
}

func ptr(s string) *string {
	return &s
}
