// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec converts entropy buffers to and from sequences of
// word indices. An encoded sequence is the entropy followed by the
// leading bits of its SHA-256 digest, read as one bit string and
// split into 11-bit groups; the digest bits let a decoder detect
// transcription errors.
package codec

import (
	"crypto/sha256"

	"wordbit.io/bits"
	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

// Encode packs entropy into a sequence of exactly words indices under
// the given mode. The word count must be one whose canonical plan
// (see PlanWords) matches the entropy length; otherwise Encode fails
// with a WordCount error.
func Encode(entropy []byte, words int, mode wordbit.Mode) ([]wordbit.Index, error) {
	const op = "codec.Encode"
	p, err := planFor(op, len(entropy), words, mode)
	if err != nil {
		return nil, err
	}
	return encode(entropy, p), nil
}

// EncodeSplit packs entropy into indices using an explicit checksum
// length. It admits every balanced decomposition, including checksums
// longer than a byte; the entropy length and checksum bit count must
// together fill a whole number of words.
func EncodeSplit(entropy []byte, checksumBits int) ([]wordbit.Index, error) {
	const op = "codec.EncodeSplit"
	p, err := PlanSplit(len(entropy), checksumBits)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return encode(entropy, p), nil
}

// Decode unpacks a sequence of indices into the entropy it encodes,
// deriving the plan from the index count under the given mode, and
// verifies the embedded checksum.
//
// On a checksum mismatch Decode returns the decoded entropy bytes
// together with a Checksum error: the bytes are whatever the indices
// spell out and must not be trusted, but callers treating the
// checksum as advisory may still inspect them.
func Decode(indices []wordbit.Index, mode wordbit.Mode) ([]byte, error) {
	const op = "codec.Decode"
	p, err := PlanWords(len(indices), mode)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return decode(op, indices, p)
}

// DecodeSplit unpacks indices using an explicit checksum length,
// the inverse of EncodeSplit. The index count must match the plan's
// word count exactly.
func DecodeSplit(indices []wordbit.Index, entropyBytes, checksumBits int) ([]byte, error) {
	const op = "codec.DecodeSplit"
	p, err := PlanSplit(entropyBytes, checksumBits)
	if err != nil {
		return nil, errors.E(op, err)
	}
	if p.Words() != len(indices) {
		return nil, errors.E(op, errors.WordCount,
			errors.Errorf("plan spans %d words but %d indices were given", p.Words(), len(indices)))
	}
	return decode(op, indices, p)
}

// encode reads the bit string entropy||digest through an 11-bit
// grouper until the plan's word count is met. The plan guarantees the
// group boundary lands exactly at EntropyBytes*8+ChecksumBits bits,
// and the digest is always long enough to cover the checksum.
func encode(entropy []byte, p Plan) []wordbit.Index {
	digest := sha256.Sum256(entropy)

	words := p.Words()
	indices := make([]wordbit.Index, 0, words)
	var r bits.Reader
	next := 0
	for len(indices) < words {
		v, ok := r.Read11()
		if !ok {
			if next < len(entropy) {
				r.Feed(entropy[next])
			} else {
				r.Feed(digest[next-len(entropy)])
			}
			next++
			continue
		}
		indices = append(indices, wordbit.Index(v))
	}
	return indices
}

// decode packs the indices back into bytes, splits entropy from
// checksum at the plan's boundary, and compares the checksum against
// the recomputed digest bit for bit.
func decode(op string, indices []wordbit.Index, p Plan) ([]byte, error) {
	var w bits.Writer
	for _, idx := range indices {
		if idx > wordbit.MaxIndex {
			// The dictionary lookup upstream rejects these; this
			// guards raw index sequences handed to us directly.
			return nil, errors.E(op, errors.Index,
				errors.Errorf("index %d exceeds %d", idx, wordbit.MaxIndex))
		}
		w.Write11(uint16(idx))
	}
	packed := w.Bytes()

	entropy := make([]byte, p.EntropyBytes)
	copy(entropy, packed)
	checksum := packed[p.EntropyBytes:]

	digest := sha256.Sum256(entropy)
	if !checksumMatches(checksum, digest[:], p.ChecksumBits) {
		return entropy, errors.E(op, errors.Checksum)
	}
	return entropy, nil
}

// checksumMatches compares the leading n bits of got and want.
// Whole bytes are compared directly; a trailing partial byte is
// compared under a mask so the Writer's zero padding is ignored.
func checksumMatches(got, want []byte, n int) bool {
	ofs := 0
	for ; n >= 8; n -= 8 {
		if got[ofs] != want[ofs] {
			return false
		}
		ofs++
	}
	if n > 0 {
		mask := byte(0xff) << (8 - n)
		if got[ofs]&mask != want[ofs]&mask {
			return false
		}
	}
	return true
}
