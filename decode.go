package qoi

import "io"

// Decode reads a complete QOI byte stream from r: the 14-byte header,
// a chunk stream, and the 8-byte end marker. It returns the parsed
// header and exactly Width*Height pixels, then stops — trailing bytes
// after the end marker are ignored.
func Decode(r io.Reader) (Header, []Pixel, error) {
	hdrBuf := make([]byte, headerSize)
	if err := readExact(r, hdrBuf); err != nil {
		return Header{}, nil, err
	}
	h, err := decodeHeader(hdrBuf)
	if err != nil {
		return Header{}, nil, err
	}

	d := &decoder{r: r, prev: seedPixel}
	pixels := make([]Pixel, h.pixelCount())

	for produced := 0; produced < len(pixels); {
		n, err := d.next(pixels[produced:])
		if err != nil {
			return Header{}, nil, err
		}
		produced += n
	}

	var marker [8]byte
	if err := readExact(r, marker[:]); err != nil {
		return Header{}, nil, err
	}
	if marker != endMarker {
		return Header{}, nil, &Error{Kind: UnknownTag, Value: int(marker[7])}
	}

	return h, pixels, nil
}

// decoder holds the state a Decode call owns for its duration: the
// previous-pixel register and the running index.
type decoder struct {
	r    io.Reader
	prev Pixel
	idx  index
}

func (d *decoder) readByte() (byte, error) {
	var b [1]byte
	if err := readExact(d.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// emit records a freshly decoded pixel (RGB/RGBA/DIFF/LUMA) into dst,
// the index, and prev. INDEX and RUN chunks do not go through this
// path: INDEX must not rewrite the slot it just read from (it would be
// a no-op, but prev still needs updating), and RUN's pixels already
// equal prev so neither index nor prev change.
func (d *decoder) emit(p Pixel, dst []Pixel) {
	dst[0] = p
	d.idx.put(p)
	d.prev = p
}

// next decodes one chunk starting at the next unread byte, writing
// its pixel(s) into dst (which must have room for at least 1, or for a
// RUN chunk's full length), and returns how many pixels it produced.
func (d *decoder) next(dst []Pixel) (int, error) {
	tag, err := d.readByte()
	if err != nil {
		return 0, err
	}

	switch classify(tag) {
	case classRGB:
		var buf [3]byte
		if err := readExact(d.r, buf[:]); err != nil {
			return 0, err
		}
		d.emit(Pixel{R: buf[0], G: buf[1], B: buf[2], A: d.prev.A}, dst)
		return 1, nil

	case classRGBA:
		var buf [4]byte
		if err := readExact(d.r, buf[:]); err != nil {
			return 0, err
		}
		d.emit(Pixel{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}, dst)
		return 1, nil

	case classIndex:
		p := d.idx.at(tag)
		dst[0] = p
		d.prev = p
		return 1, nil

	case classDiff:
		dr := int8((tag>>4)&0x03) - 2
		dg := int8((tag>>2)&0x03) - 2
		db := int8(tag&0x03) - 2
		d.emit(Pixel{
			R: d.prev.R + uint8(dr),
			G: d.prev.G + uint8(dg),
			B: d.prev.B + uint8(db),
			A: d.prev.A,
		}, dst)
		return 1, nil

	case classLuma:
		rb, err := d.readByte()
		if err != nil {
			return 0, err
		}
		dg := int8(tag&0x3f) - 32
		drg := int8((rb>>4)&0x0f) - 8
		dbg := int8(rb&0x0f) - 8
		d.emit(Pixel{
			R: d.prev.R + uint8(dg+drg),
			G: d.prev.G + uint8(dg),
			B: d.prev.B + uint8(dg+dbg),
			A: d.prev.A,
		}, dst)
		return 1, nil

	default: // classRun
		length := int(tag&0x3f) + 1
		if length > len(dst) {
			return 0, &Error{Kind: InvalidIndex, Value: length}
		}
		for i := 0; i < length; i++ {
			dst[i] = d.prev
		}
		return length, nil
	}
}
