package qoi

import (
	"bytes"
	"testing"
)

// addMinimalSeeds seeds the corpus with small hand-built streams that
// between them contain RGB, RGBA, INDEX, LUMA and RUN chunks (no seed
// produces a DIFF chunk), plus a few degenerate inputs (empty,
// magic-only, a zeroed header-sized buffer) so the fuzzer starts from
// valid structure instead of discovering it from scratch.
func addMinimalSeeds(f *testing.F) {
	f.Helper()

	seed := func(h Header, pixels []Pixel) {
		var buf bytes.Buffer
		if _, err := Encode(&buf, h, pixels); err != nil {
			f.Fatalf("seeding fixture: %v", err)
		}
		f.Add(buf.Bytes())
	}

	seed(Header{Width: 1, Height: 1, Channels: Rgb, Colorspace: SRGB},
		[]Pixel{{R: 10, G: 20, B: 30, A: 255}})
	seed(Header{Width: 1, Height: 4, Channels: Rgb, Colorspace: SRGB},
		[]Pixel{seedPixel, seedPixel, seedPixel, seedPixel})
	seed(Header{Width: 3, Height: 1, Channels: Rgba, Colorspace: Linear},
		[]Pixel{{5, 5, 5, 255}, {0, 0, 0, 255}, {5, 5, 5, 255}})
	seed(Header{Width: 2, Height: 1, Channels: Rgba, Colorspace: SRGB},
		[]Pixel{{1, 2, 3, 255}, {1, 2, 3, 10}})

	f.Add([]byte{})
	f.Add([]byte("qoif"))
	f.Add(make([]byte, headerSize))
}

// FuzzDecode asserts the decoder's total-function contract: for any
// input bytes, Decode either succeeds or returns a *qoi.Error. It must
// never panic.
func FuzzDecode(f *testing.F) {
	addMinimalSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Decode panicked on input of length %d: %v", len(data), r)
			}
		}()

		h, pixels, err := Decode(bytes.NewReader(data))
		if err != nil {
			var e *Error
			if !asErr(err, &e) {
				t.Fatalf("Decode returned a non-*qoi.Error: %v", err)
			}
			return
		}
		if len(pixels) != h.pixelCount() {
			t.Fatalf("Decode returned %d pixels for header %+v", len(pixels), h)
		}
	})
}
