package qoi

import (
	"image"
	"image/color"
	"image/draw"
	"io"
)

// ImageEncode is the package's image.Image-interop boundary, matching
// the convention image/png and other codecs in this ecosystem follow.
// It converts m to image.NRGBA (via image/draw, if it isn't one
// already) and writes it as an Rgba/SRGB QOI stream.
func ImageEncode(w io.Writer, m image.Image) error {
	nrgba := asNRGBA(m)
	h := Header{
		Width:      uint32(nrgba.Rect.Dx()),
		Height:     uint32(nrgba.Rect.Dy()),
		Channels:   Rgba,
		Colorspace: SRGB,
	}
	_, err := Encode(w, h, pixelsFromNRGBA(nrgba))
	return err
}

func asNRGBA(m image.Image) *image.NRGBA {
	if nrgba, ok := m.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	dst := image.NewNRGBA(image.Rect(0, 0, m.Bounds().Dx(), m.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), m, m.Bounds().Min, draw.Src)
	return dst
}

func pixelsFromNRGBA(m *image.NRGBA) []Pixel {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	pixels := make([]Pixel, 0, w*h)
	for y := 0; y < h; y++ {
		off := y * m.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			pixels = append(pixels, Pixel{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]})
		}
	}
	return pixels
}

// ImageDecode reads a QOI stream from r and materializes it as an
// *image.NRGBA.
func ImageDecode(r io.Reader) (image.Image, error) {
	h, pixels, err := Decode(r)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(h.Width), int(h.Height)))
	width := int(h.Width)
	for i, px := range pixels {
		img.SetNRGBA(i%width, i/width, color.NRGBA{R: px.R, G: px.G, B: px.B, A: px.A})
	}
	return img, nil
}

// DecodeConfig peeks at a QOI header without decoding the pixel
// stream, for use with image.DecodeConfig.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if err := readExact(r, buf); err != nil {
		return image.Config{}, err
	}
	h, err := decodeHeader(buf)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

func init() {
	image.RegisterFormat("qoi", magic, ImageDecode, DecodeConfig)
}
