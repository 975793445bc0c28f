// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"testing"

	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

// The zero-entropy reference vector: 16 zero bytes encode as eleven
// copies of index 0 and a final index 3 (the first four bits of
// SHA-256 of the zero buffer are 0011).
func TestEncodeZeroEntropy(t *testing.T) {
	entropy := make([]byte, 16)
	indices, err := Encode(entropy, 12, wordbit.Standard)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []wordbit.Index{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3}
	if len(indices) != len(want) {
		t.Fatalf("got %d indices, want %d", len(indices), len(want))
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, indices[i], want[i])
		}
	}

	got, err := Decode(indices, wordbit.Standard)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, entropy) {
		t.Errorf("Decode: got %x, want %x", got, entropy)
	}
}

// fill produces a deterministic non-trivial entropy buffer.
func fill(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*37 + 11)
	}
	return b
}

func TestRoundTripRelaxed(t *testing.T) {
	// For each entropy length that admits a minimal relaxed plan,
	// encoding and decoding must reproduce the entropy exactly.
	for words := 1; words <= 47; words++ {
		p, err := PlanWords(words, wordbit.Relaxed)
		if err != nil {
			t.Fatalf("PlanWords(%d): %v", words, err)
		}
		entropy := fill(p.EntropyBytes)
		indices, err := Encode(entropy, words, wordbit.Relaxed)
		if err != nil {
			t.Fatalf("Encode(%d bytes, %d words): %v", p.EntropyBytes, words, err)
		}
		if len(indices) != words {
			t.Fatalf("Encode(%d words): got %d indices", words, len(indices))
		}
		got, err := Decode(indices, wordbit.Relaxed)
		if err != nil {
			t.Fatalf("Decode(%d words): %v", words, err)
		}
		if !bytes.Equal(got, entropy) {
			t.Errorf("round trip at %d words: got %x, want %x", words, got, entropy)
		}
	}
}

func TestRoundTripStandard(t *testing.T) {
	for _, words := range []int{9, 12, 15, 18, 21, 24} {
		p, _ := PlanWords(words, wordbit.Standard)
		entropy := fill(p.EntropyBytes)
		indices, err := Encode(entropy, words, wordbit.Standard)
		if err != nil {
			t.Fatalf("Encode(%d words): %v", words, err)
		}
		got, err := Decode(indices, wordbit.Standard)
		if err != nil {
			t.Fatalf("Decode(%d words): %v", words, err)
		}
		if !bytes.Equal(got, entropy) {
			t.Errorf("round trip at %d words: got %x, want %x", words, got, entropy)
		}
	}
}

func TestRoundTripSplit(t *testing.T) {
	// Every entropy length from 1 to 32 bytes admits explicit plans;
	// try the two shortest checksum lengths for each.
	for n := 1; n <= 32; n++ {
		cs0 := (wordbit.WordBits - n*8%wordbit.WordBits) % wordbit.WordBits
		for _, cs := range []int{cs0, cs0 + wordbit.WordBits} {
			if cs > wordbit.MaxChecksumBits {
				continue
			}
			entropy := fill(n)
			indices, err := EncodeSplit(entropy, cs)
			if err != nil {
				t.Fatalf("EncodeSplit(%d bytes, %d bits): %v", n, cs, err)
			}
			got, err := DecodeSplit(indices, n, cs)
			if err != nil {
				t.Fatalf("DecodeSplit(%d bytes, %d bits): %v", n, cs, err)
			}
			if !bytes.Equal(got, entropy) {
				t.Errorf("split round trip (%d bytes, %d bits): got %x, want %x", n, cs, got, entropy)
			}
		}
	}
}

func TestEncodeWordCountMismatch(t *testing.T) {
	tests := []struct {
		entropyBytes, words int
		mode                wordbit.Mode
	}{
		{20, 12, wordbit.Standard}, // 12 words hold 16 bytes, not 20
		{16, 24, wordbit.Standard},
		{16, 13, wordbit.Standard}, // 13 is not a standard count at all
		{16, 13, wordbit.Relaxed},  // 13 relaxed words hold 17 bytes
		{5, 2, wordbit.Relaxed},    // 2 relaxed words hold 2 bytes
	}
	for _, test := range tests {
		_, err := Encode(fill(test.entropyBytes), test.words, test.mode)
		if !errors.Is(errors.WordCount, err) {
			t.Errorf("Encode(%d bytes, %d words, %s): got %v, want WordCount error",
				test.entropyBytes, test.words, test.mode, err)
		}
	}
}

func TestDecodeWordCountMismatch(t *testing.T) {
	indices := make([]wordbit.Index, 13)
	if _, err := Decode(indices, wordbit.Standard); !errors.Is(errors.WordCount, err) {
		t.Errorf("Decode(13 words, standard): got %v, want WordCount error", err)
	}
	if _, err := Decode(nil, wordbit.Relaxed); !errors.Is(errors.WordCount, err) {
		t.Errorf("Decode(no words, relaxed): got %v, want WordCount error", err)
	}
}

func TestDecodeBadIndex(t *testing.T) {
	indices := make([]wordbit.Index, 12)
	indices[7] = wordbit.MaxIndex + 1
	if _, err := Decode(indices, wordbit.Standard); !errors.Is(errors.Index, err) {
		t.Errorf("got %v, want Index error", err)
	}
}

func TestChecksumSensitivity(t *testing.T) {
	entropy := fill(16)
	indices, err := Encode(entropy, 12, wordbit.Standard)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// The last four bits of the last index are the checksum; flipping
	// any one of them must be detected, and the decoded entropy must
	// still come back for inspection.
	for bit := 0; bit < 4; bit++ {
		flipped := make([]wordbit.Index, len(indices))
		copy(flipped, indices)
		flipped[len(flipped)-1] ^= 1 << bit

		got, err := Decode(flipped, wordbit.Standard)
		if !errors.Is(errors.Checksum, err) {
			t.Fatalf("bit %d: got %v, want Checksum error", bit, err)
		}
		if !bytes.Equal(got, entropy) {
			t.Errorf("bit %d: flagged entropy %x, want %x", bit, got, entropy)
		}
	}

	// Flipping an entropy bit changes the decoded bytes, so the
	// embedded checksum no longer matches the recomputed digest.
	flipped := make([]wordbit.Index, len(indices))
	copy(flipped, indices)
	flipped[0] ^= 1 << 10
	got, err := Decode(flipped, wordbit.Standard)
	if !errors.Is(errors.Checksum, err) {
		t.Fatalf("entropy flip: got %v, want Checksum error", err)
	}
	if bytes.Equal(got, entropy) {
		t.Errorf("entropy flip: decoded bytes unchanged")
	}
}

func TestDecodeSplitLengthMismatch(t *testing.T) {
	indices := make([]wordbit.Index, 2)
	if _, err := DecodeSplit(indices, 1, 3); !errors.Is(errors.WordCount, err) {
		t.Errorf("got %v, want WordCount error", err)
	}
}

// A 17-bit checksum spreads across word boundaries; corruption in its
// second byte must still be caught.
func TestLongChecksumSensitivity(t *testing.T) {
	entropy := fill(2)
	indices, err := EncodeSplit(entropy, 17)
	if err != nil {
		t.Fatalf("EncodeSplit: %v", err)
	}
	if len(indices) != 3 {
		t.Fatalf("got %d indices, want 3", len(indices))
	}
	flipped := make([]wordbit.Index, len(indices))
	copy(flipped, indices)
	flipped[2] ^= 1 << 0 // the very last checksum bit
	if _, err := DecodeSplit(flipped, 2, 17); !errors.Is(errors.Checksum, err) {
		t.Errorf("got %v, want Checksum error", err)
	}
}
