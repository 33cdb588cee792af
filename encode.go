package qoi

import "io"

// Encode writes h and pixels to w as a complete QOI byte stream: the
// 14-byte header, zero or more chunks, and the 8-byte end marker. It
// returns the total number of bytes written, even when it returns an
// error partway through (that partial output carries no recovery
// semantics and must be discarded by the caller).
//
// pixels must have exactly h.Width*h.Height elements. Each pixel's
// alpha is expected to be 255 when h.Channels is Rgb; Encode does not
// enforce this, but a conformant Rgb-declaring file should hold it —
// otherwise Encode still emits RGBA chunks, which Decode accepts
// regardless of the declared channel count.
func Encode(w io.Writer, h Header, pixels []Pixel) (int, error) {
	if err := h.validate(); err != nil {
		return 0, err
	}
	if len(pixels) != h.pixelCount() {
		return 0, &Error{Kind: InvalidDimensions}
	}

	total := 0
	n, err := writeAll(w, encodeHeader(h))
	total += n
	if err != nil {
		return total, err
	}

	e := &encoder{w: w, prev: seedPixel}
	for i, px := range pixels {
		n, err := e.step(px, i == len(pixels)-1)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = writeAll(w, endMarker[:])
	total += n
	return total, err
}

// encoder holds the state an Encode call owns for its duration: the
// previous-pixel register, the running index, and a pending RUN
// counter.
type encoder struct {
	w    io.Writer
	prev Pixel
	idx  index
	run  int
}

// step processes one incoming pixel against the current prev/index
// state, writing whatever chunk bytes that requires. isLast forces a
// pending RUN to flush at the end of the stream even if it hasn't hit
// the 62-pixel cap.
func (e *encoder) step(px Pixel, isLast bool) (int, error) {
	if px == e.prev {
		e.run++
		if e.run == maxRunLen || isLast {
			return e.flushRun()
		}
		return 0, nil
	}

	written := 0
	if e.run > 0 {
		n, err := e.flushRun()
		written += n
		if err != nil {
			return written, err
		}
	}

	n, err := e.emit(px)
	written += n
	return written, err
}

func (e *encoder) flushRun() (int, error) {
	n, err := writeAll(e.w, []byte{tagRunFamily | byte(e.run-1)})
	e.run = 0
	return n, err
}

// emit chooses and writes the chunk for a pixel that differs from
// prev, in the priority order the encoding policy specifies: INDEX,
// then (alpha unchanged) DIFF, LUMA, RGB, else RGBA. It always ends by
// writing px into the index and updating prev — a RUN never reaches
// this path, so those updates only ever happen for a "new" pixel.
func (e *encoder) emit(px Pixel) (int, error) {
	defer func() {
		e.idx.put(px)
		e.prev = px
	}()

	slot := px.hash()
	if e.idx.at(slot) == px {
		return writeAll(e.w, []byte{tagIndexFamily | slot})
	}

	if px.A != e.prev.A {
		return writeAll(e.w, []byte{tagRGBA, px.R, px.G, px.B, px.A})
	}

	dr := int8(px.R - e.prev.R)
	dg := int8(px.G - e.prev.G)
	db := int8(px.B - e.prev.B)

	if in2(dr) && in2(dg) && in2(db) {
		b := tagDiffFamily | byte(dr+2)<<4 | byte(dg+2)<<2 | byte(db+2)
		return writeAll(e.w, []byte{b})
	}

	drg := dr - dg
	dbg := db - dg
	if in6(dg) && in4(drg) && in4(dbg) {
		b0 := tagLumaFamily | byte(dg+32)
		b1 := byte(drg+8)<<4 | byte(dbg+8)
		return writeAll(e.w, []byte{b0, b1})
	}

	return writeAll(e.w, []byte{tagRGB, px.R, px.G, px.B})
}

func in2(d int8) bool { return d >= -2 && d <= 1 }
func in4(d int8) bool { return d >= -8 && d <= 7 }
func in6(d int8) bool { return d >= -32 && d <= 31 }
