package host

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestStreamBridges(t *testing.T) {
	inReader, inWriter := io.Pipe()
	outReader, outWriter := io.Pipe()

	stream := &Stream{Reader: inReader, Writer: outWriter}

	go func() {
		inWriter.Write([]byte("ping"))
		inWriter.Close()
	}()

	data, err := io.ReadAll(stream)

	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if string(data) != "ping" {
		t.Errorf("read %q expected ping", data)
	}

	go func() {
		stream.Write([]byte("pong"))
		outWriter.Close()
	}()

	data, err = io.ReadAll(outReader)

	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if string(data) != "pong" {
		t.Errorf("read %q expected pong", data)
	}
}

type failReadCloser struct{}

func (failReadCloser) Read(p []byte) (int, error) { return 0, io.EOF }
func (failReadCloser) Close() error               { return errors.New("reader close") }

type failWriteCloser struct{}

func (failWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (failWriteCloser) Close() error                { return errors.New("writer close") }

func TestStreamCloseCombinesErrors(t *testing.T) {
	stream := &Stream{Reader: failReadCloser{}, Writer: failWriteCloser{}}
	err := stream.Close()

	if err == nil {
		t.Fatalf("should return error")
	}

	if !strings.Contains(err.Error(), "reader close") || !strings.Contains(err.Error(), "writer close") {
		t.Errorf("error %q should carry both close errors", err.Error())
	}
}
