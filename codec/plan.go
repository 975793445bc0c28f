// Copyright 2026 The Wordbit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"wordbit.io/errors"
	"wordbit.io/wordbit"
)

// A Plan fixes the bit accounting for one mnemonic shape: how many
// whole bytes of entropy and how many trailing checksum bits make up
// the words*11 bit string. Encoding and decoding derive their plans
// from the same functions, so the split point is always recomputed,
// never searched.
type Plan struct {
	// EntropyBytes is the number of whole bytes of entropy.
	EntropyBytes int
	// ChecksumBits is the number of digest bits appended to the
	// entropy, in 0..=wordbit.MaxChecksumBits.
	ChecksumBits int
}

// Words returns the number of words the plan spans.
func (p Plan) Words() int {
	return (p.EntropyBytes*8 + p.ChecksumBits) / wordbit.WordBits
}

// PlanWords returns the canonical plan for the given word count under
// the given mode.
//
// In Standard mode only the six canonical word counts 9, 12, 15, 18,
// 21 and 24 are accepted; the checksum is words/3 bits and the entropy
// 4*words/3 bytes.
//
// In Relaxed mode any word count of at least one word is accepted.
// The entropy takes every whole byte that fits and the checksum the
// remainder: EntropyBytes = words*11/8, ChecksumBits = words*11 mod 8.
func PlanWords(words int, mode wordbit.Mode) (Plan, error) {
	const op = "codec.PlanWords"
	switch mode {
	case wordbit.Standard:
		if words < 9 || words > 24 || words%3 != 0 {
			return Plan{}, errors.E(op, errors.WordCount,
				errors.Errorf("no standard mnemonic has %d words", words))
		}
		return Plan{EntropyBytes: words * 4 / 3, ChecksumBits: words / 3}, nil
	case wordbit.Relaxed:
		if words < 1 {
			return Plan{}, errors.E(op, errors.WordCount,
				errors.Errorf("word count %d is not positive", words))
		}
		totalBits := words * wordbit.WordBits
		return Plan{EntropyBytes: totalBits / 8, ChecksumBits: totalBits % 8}, nil
	}
	return Plan{}, errors.E(op, errors.Invalid, errors.Errorf("unknown mode %d", mode))
}

// PlanSplit returns the plan for an explicit split into entropyBytes
// bytes of entropy and checksumBits checksum bits. Unlike the minimal
// plans of PlanWords, this admits any decomposition whose bit total is
// a whole number of words, such as 2 bytes of entropy with a 17-bit
// checksum making 3 words.
func PlanSplit(entropyBytes, checksumBits int) (Plan, error) {
	const op = "codec.PlanSplit"
	if entropyBytes < 1 {
		return Plan{}, errors.E(op, errors.WordCount,
			errors.Errorf("entropy of %d bytes is empty", entropyBytes))
	}
	if checksumBits < 0 || checksumBits > wordbit.MaxChecksumBits {
		return Plan{}, errors.E(op, errors.WordCount,
			errors.Errorf("checksum of %d bits outside 0..=%d", checksumBits, wordbit.MaxChecksumBits))
	}
	if (entropyBytes*8+checksumBits)%wordbit.WordBits != 0 {
		return Plan{}, errors.E(op, errors.WordCount,
			errors.Errorf("%d entropy bytes and %d checksum bits do not fill whole words",
				entropyBytes, checksumBits))
	}
	return Plan{EntropyBytes: entropyBytes, ChecksumBits: checksumBits}, nil
}

// planFor returns the plan used to encode entropy of the given length
// into the given word count under mode. The plan is the canonical one
// for the word count; if its entropy length disagrees with the
// caller's, no balanced plan exists for the pair and planFor fails
// with a WordCount error.
func planFor(op string, entropyBytes, words int, mode wordbit.Mode) (Plan, error) {
	p, err := PlanWords(words, mode)
	if err != nil {
		return Plan{}, errors.E(op, err)
	}
	if p.EntropyBytes != entropyBytes {
		return Plan{}, errors.E(op, errors.WordCount,
			errors.Errorf("%d words hold %d bytes of entropy in %s mode, not %d",
				words, p.EntropyBytes, mode, entropyBytes))
	}
	return p, nil
}
