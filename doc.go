// Package qoi implements a complete encoder and decoder for the QOI
// ("Quite OK Image") lossless raster image format: the header and
// end-marker layout, the RGB/RGBA/INDEX/DIFF/LUMA/RUN chunk types, and
// the 64-entry running pixel index shared between encoder and decoder.
//
// Encoding and decoding are synchronous and single-threaded. An Encode
// or Decode call owns its previous-pixel register and index array for
// the duration of that call only; neither is retained afterward.
//
//	n, err := qoi.Encode(w, header, pixels)
//	header, pixels, err := qoi.Decode(r)
//
// Errors returned by this package are always of type *qoi.Error and
// carry one of the ErrorKind values documented on that type.
package qoi
