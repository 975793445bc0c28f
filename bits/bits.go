// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bits converts between byte streams and streams of 11-bit
// groups. The most general highest-bits-first order is used: the first
// group read from the bytes 0x8f, 0x55 holds the top 11 bits of the
// 16-bit big-endian value 0x8f55.
//
// The 11-bit group width matches the size of a dictionary word, so a
// Reader turns a packed buffer into word indices and a Writer turns
// word indices back into a packed buffer.
package bits

// GroupBits is the width of one group, the number of bits carried by
// a single word index.
const GroupBits = 11

// ByteCount returns the number of bytes needed to hold the given bit count.
func ByteCount(bitCount int) int {
	return (bitCount + 7) / 8
}

// A Reader yields successive 11-bit groups from a byte stream,
// most significant bit first. The zero Reader is empty; bytes are
// supplied incrementally with Feed.
type Reader struct {
	acc uint32 // pending bits, right-aligned
	n   uint   // number of pending bits, 0..=10 after a Read11
}

// Feed appends the 8 bits of b to the pending bit string.
// At most 18 bits are ever pending, so feeding one byte between
// reads never overflows the accumulator.
func (r *Reader) Feed(b byte) {
	r.acc = r.acc<<8 | uint32(b)
	r.n += 8
}

// Read11 removes and returns the leading 11 pending bits.
// The second return value reports whether 11 bits were pending;
// if false, the Reader is unchanged and the caller must Feed more
// bytes before retrying.
func (r *Reader) Read11() (uint16, bool) {
	if r.n < GroupBits {
		return 0, false
	}
	r.n -= GroupBits
	v := uint16(r.acc >> r.n)
	r.acc &= 1<<r.n - 1
	return v, true
}

// A Writer packs successive 11-bit groups into a byte stream,
// most significant bit first. The zero Writer is ready for use.
type Writer struct {
	out []byte
	acc uint32 // pending bits, right-aligned
	n   uint   // number of pending bits, 0..=7 between writes
}

// Write11 appends the low 11 bits of v to the bit string.
// Higher bits of v are ignored.
func (w *Writer) Write11(v uint16) {
	w.acc = w.acc<<GroupBits | uint32(v&(1<<GroupBits-1))
	w.n += GroupBits
	for w.n >= 8 {
		w.n -= 8
		w.out = append(w.out, byte(w.acc>>w.n))
		w.acc &= 1<<w.n - 1
	}
}

// Bytes flushes any pending bits, padded with trailing zeros to a
// byte boundary, and returns the accumulated byte stream. The Writer
// must not be used after Bytes.
func (w *Writer) Bytes() []byte {
	if w.n > 0 {
		w.out = append(w.out, byte(w.acc<<(8-w.n)))
		w.acc, w.n = 0, 0
	}
	return w.out
}
