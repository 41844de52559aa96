package vos

import (
	"io"
	"os"
)

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VIOAdapter is a VIO over fixed streams.
type VIOAdapter struct {
	in       io.ReadCloser
	out, err io.WriteCloser
}

var _ VIO = (*VIOAdapter)(nil)

// NewVIOAdapter wraps the given streams. A nil stream reads as empty and
// swallows writes. Streams that can already be closed pass through untouched,
// so an *os.File stays an *os.File and a child process can inherit it.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		in:  readCloser(stdin),
		out: writeCloser(stdout),
		err: writeCloser(stderr),
	}
}

// Stdin implements VIO.Stdin.
func (a *VIOAdapter) Stdin() io.ReadCloser { return a.in }

// Stdout implements VIO.Stdout.
func (a *VIOAdapter) Stdout() io.WriteCloser { return a.out }

// Stderr implements VIO.Stderr.
func (a *VIOAdapter) Stderr() io.WriteCloser { return a.err }

func readCloser(r io.Reader) io.ReadCloser {
	switch v := r.(type) {
	case nil:
		return nullStream{}
	case io.ReadCloser:
		return v
	default:
		return io.NopCloser(v)
	}
}

func writeCloser(w io.Writer) io.WriteCloser {
	switch v := w.(type) {
	case nil:
		return nullStream{}
	case io.WriteCloser:
		return v
	default:
		return unclosable{v}
	}
}

type unclosable struct {
	io.Writer
}

func (unclosable) Close() error { return nil }

// nullStream is empty when read and discards writes.
type nullStream struct{}

func (nullStream) Read([]byte) (int, error)    { return 0, io.EOF }
func (nullStream) Write(b []byte) (int, error) { return len(b), nil }
func (nullStream) Close() error                { return nil }

// hostIO exposes the real standard streams of the shell process.
type hostIO struct{}

var _ VIO = hostIO{}

func (hostIO) Stdin() io.ReadCloser   { return os.Stdin }
func (hostIO) Stdout() io.WriteCloser { return os.Stdout }
func (hostIO) Stderr() io.WriteCloser { return os.Stderr }
