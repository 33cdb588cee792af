package qoi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind discriminates the codec's error taxonomy. Every fallible
// call site in this package returns an *Error with one of these kinds
// rather than an ad hoc error value.
type ErrorKind int

const (
	// InvalidHeader: magic mismatch, or channels byte not in {3, 4}.
	InvalidHeader ErrorKind = iota
	// InvalidDimensions: width == 0 or height == 0, width*height over
	// maxPixels, or (Encode) a pixel slice whose length is not
	// width*height.
	InvalidDimensions
	// InvalidColorspace: colorspace byte not in {0, 1}. Value holds
	// the offending byte.
	InvalidColorspace
	// InvalidIndex is defensive: the 6-bit index field computed from a
	// tag byte is always in [0,63], so this is reserved for corrupt
	// implementations, and is also used for a RUN chunk whose length
	// would overrun the remaining pixel count.
	InvalidIndex
	// UnknownTag: the 8 bytes after the pixel stream are not the end
	// marker. Value holds the last of those bytes. A stream that ends
	// before those 8 bytes is UnexpectedEOF instead.
	UnknownTag
	// UnexpectedEOF: the byte source was exhausted mid-header or
	// mid-chunk.
	UnexpectedEOF
	// IOError wraps a failure returned by the caller's io.Reader or
	// io.Writer that isn't EOF.
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidHeader:
		return "invalid header"
	case InvalidDimensions:
		return "invalid dimensions"
	case InvalidColorspace:
		return "invalid colorspace"
	case InvalidIndex:
		return "invalid index"
	case UnknownTag:
		return "unknown tag"
	case UnexpectedEOF:
		return "unexpected eof"
	case IOError:
		return "i/o error"
	default:
		return "qoi error"
	}
}

// Error is the single error type this package returns.
type Error struct {
	Kind  ErrorKind
	Value int   // offending byte/length, when the kind carries one
	Err   error // wrapped underlying error, set only for IOError
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidColorspace:
		return fmt.Sprintf("%s: %d", e.Kind, e.Value)
	case InvalidIndex:
		return fmt.Sprintf("%s: %d", e.Kind, e.Value)
	case UnknownTag:
		return fmt.Sprintf("%s: 0x%02x", e.Kind, e.Value)
	case IOError:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the wrapped I/O failure to errors.Is / errors.As,
// including pkg/errors' stack-annotated wrapper.
func (e *Error) Unwrap() error { return e.Err }

var errUnexpectedEOF = &Error{Kind: UnexpectedEOF}

// ioErr wraps a non-EOF failure from the caller's reader/writer with a
// stack trace, the way simple-png's readChunk/ParsePng wrap every I/O
// call site with errors.WithStack. The trace is carried by the wrapped
// Err: printing Err with %+v shows it, while the *Error itself prints
// only the kind and the underlying message.
func ioErr(err error) error {
	return &Error{Kind: IOError, Err: errors.WithStack(err)}
}
