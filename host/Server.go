package host

import (
	"fmt"
	"io"
	"os/exec"

	"go.uber.org/multierr"
)

// Stream is the jsonrpc transport over a spawned server's stdio pipes.
type Stream struct {
	Reader io.ReadCloser
	Writer io.WriteCloser
}

// ServerStream wires cmd's stdin/stdout into a Stream. Must be called
// before the command is started.
func ServerStream(cmd *exec.Cmd) (*Stream, error) {
	stdin, err := cmd.StdinPipe()

	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	stdout, err := cmd.StdoutPipe()

	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	return &Stream{
		Reader: stdout,
		Writer: stdin,
	}, nil
}

func (s *Stream) Read(b []byte) (int, error) {
	return s.Reader.Read(b)
}

func (s *Stream) Write(b []byte) (int, error) {
	return s.Writer.Write(b)
}

func (s *Stream) Close() error {
	return multierr.Append(s.Reader.Close(), s.Writer.Close())
}
