package qoi

// Pixel is a single four-channel RGBA sample. Equality is channel-wise
// (Go's built-in == is sufficient since Pixel holds only comparable
// uint8 fields).
type Pixel struct {
	R, G, B, A uint8
}

// seedPixel is the previous-pixel register's value before any chunk
// has been processed: opaque black. This is deliberately not the zero
// value of Pixel — the index array's seed is (§ index, below) — the
// asymmetry is part of the wire contract, not an oversight.
var seedPixel = Pixel{R: 0, G: 0, B: 0, A: 255}

// hash is the wire-format pixel hash. It is part of the QOI contract
// and must never change: encoder and decoder diverge instantly if
// their hash functions disagree. All arithmetic wraps at 8 bits.
func (p Pixel) hash() uint8 {
	return (p.R*3 + p.G*5 + p.B*7 + p.A*11) & 0x3f
}

// index is the 64-slot, hash-addressed cache of recently seen pixels
// shared between encoder and decoder. The zero value is the correct
// initial state: every slot starts as the zero pixel (0,0,0,0), fully
// transparent black, which differs from seedPixel above.
type index [64]Pixel

// put overwrites the slot pixel p hashes to. Collisions are resolved
// by overwrite: the slot always holds the most recently seen pixel
// with that hash.
func (idx *index) put(p Pixel) {
	idx[p.hash()] = p
}

// at returns the pixel held at the given 6-bit slot.
func (idx *index) at(slot uint8) Pixel {
	return idx[slot&0x3f]
}
