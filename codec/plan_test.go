// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"testing"

	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

// The six canonical word counts and their fixed plans.
var standardPlans = map[int]Plan{
	9:  {EntropyBytes: 12, ChecksumBits: 3},
	12: {EntropyBytes: 16, ChecksumBits: 4},
	15: {EntropyBytes: 20, ChecksumBits: 5},
	18: {EntropyBytes: 24, ChecksumBits: 6},
	21: {EntropyBytes: 28, ChecksumBits: 7},
	24: {EntropyBytes: 32, ChecksumBits: 8},
}

func TestPlanWordsStandard(t *testing.T) {
	for words := 1; words <= 27; words++ {
		p, err := PlanWords(words, wordbit.Standard)
		want, ok := standardPlans[words]
		if !ok {
			if !errors.Is(errors.WordCount, err) {
				t.Errorf("words=%d: got %v, want WordCount error", words, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("words=%d: unexpected error %v", words, err)
			continue
		}
		if p != want {
			t.Errorf("words=%d: got %+v, want %+v", words, p, want)
		}
	}
}

func TestPlanWordsRelaxed(t *testing.T) {
	for words := 1; words <= 50; words++ {
		p, err := PlanWords(words, wordbit.Relaxed)
		if err != nil {
			t.Fatalf("words=%d: unexpected error %v", words, err)
		}
		if p.ChecksumBits != words*11%8 {
			t.Errorf("words=%d: checksum %d bits, want %d", words, p.ChecksumBits, words*11%8)
		}
		if p.ChecksumBits < 0 || p.ChecksumBits > wordbit.MaxChecksumBits {
			t.Errorf("words=%d: checksum %d bits out of range", words, p.ChecksumBits)
		}
		if got := p.EntropyBytes*8 + p.ChecksumBits; got != words*wordbit.WordBits {
			t.Errorf("words=%d: accounts for %d bits, want %d", words, got, words*wordbit.WordBits)
		}
		if p.Words() != words {
			t.Errorf("words=%d: plan spans %d words", words, p.Words())
		}
	}

	if _, err := PlanWords(0, wordbit.Relaxed); !errors.Is(errors.WordCount, err) {
		t.Errorf("words=0: got %v, want WordCount error", err)
	}
	if _, err := PlanWords(-3, wordbit.Relaxed); !errors.Is(errors.WordCount, err) {
		t.Errorf("words=-3: got %v, want WordCount error", err)
	}
}

func TestPlanSplit(t *testing.T) {
	tests := []struct {
		entropyBytes, checksumBits int
		words                      int // 0 means an error is expected
	}{
		{1, 3, 1},   // 8 + 3 = 11
		{2, 6, 2},   // 16 + 6 = 22
		{2, 17, 3},  // 16 + 17 = 33, checksum longer than a byte
		{11, 0, 8},  // whole-byte mnemonic, no checksum
		{16, 4, 12}, // the standard 12-word shape
		{32, 8, 24}, // the standard 24-word shape
		{48, 12, 36},
		{1, 2, 0},    // 10 bits, not a whole word
		{0, 11, 0},   // empty entropy
		{1, -1, 0},   // negative checksum
		{33, 257, 0}, // checksum beyond the digest
	}
	for _, test := range tests {
		p, err := PlanSplit(test.entropyBytes, test.checksumBits)
		if test.words == 0 {
			if !errors.Is(errors.WordCount, err) {
				t.Errorf("PlanSplit(%d, %d): got %v, want WordCount error",
					test.entropyBytes, test.checksumBits, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("PlanSplit(%d, %d): unexpected error %v",
				test.entropyBytes, test.checksumBits, err)
			continue
		}
		if p.Words() != test.words {
			t.Errorf("PlanSplit(%d, %d): spans %d words, want %d",
				test.entropyBytes, test.checksumBits, p.Words(), test.words)
		}
	}
}

func TestPlanWordsUnknownMode(t *testing.T) {
	if _, err := PlanWords(12, wordbit.Mode(42)); !errors.Is(errors.Invalid, err) {
		t.Errorf("got %v, want Invalid error", err)
	}
}
