package qoi

import (
	"io"

	"github.com/pkg/errors"
)

// readExact reads exactly len(buf) bytes from r. A short read at any
// point where more bytes were required is reported as UnexpectedEOF;
// any other failure is reported as IOError.
func readExact(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return errUnexpectedEOF
	default:
		return ioErr(err)
	}
}

// writeAll writes buf to w in full, reporting any failure (including a
// short write that returns no error) as IOError.
func writeAll(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err != nil {
		return n, ioErr(err)
	}
	if n != len(buf) {
		return n, ioErr(io.ErrShortWrite)
	}
	return n, nil
}
